package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"motolog-api/models"
	"motolog-api/repositories"
	"motolog-api/utils"
)

var requiredEventFields = []string{"date", "kilometers", "type", "title"}

// EventService manages logged events. An event can raise the odometer.
type EventService struct {
	events *repositories.EventRepository
	garage *GarageService
}

// NewEventService returns an EventService attached to the motorcycle managed by garage.
func NewEventService(events *repositories.EventRepository, garage *GarageService) *EventService {
	return &EventService{
		events: events,
		garage: garage,
	}
}

func (s *EventService) List(ctx context.Context, ownerID string) ([]models.EventDetail, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.events.ListByMotorcycle(ctx, s.garage.MotorcycleID())
}

func (s *EventService) Get(ctx context.Context, id string) (*models.EventDetail, error) {
	return s.events.FindDetail(ctx, id)
}

func (s *EventService) Create(ctx context.Context, ownerID string, body utils.Payload) (*models.Event, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}

	if missing := body.Missing(requiredEventFields...); len(missing) > 0 {
		return nil, missingFields(missing)
	}

	event := models.Event{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := applyEventBody(&event, body); err != nil {
		return nil, err
	}
	event.MotorcycleID = s.garage.MotorcycleID()

	if err := s.events.Create(ctx, &event); err != nil {
		return nil, err
	}
	if err := s.garage.RecordKilometers(ctx, event.Kilometers); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Update(ctx context.Context, id string, body utils.Payload) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyEventBody(event, body); err != nil {
		return nil, err
	}
	event.MotorcycleID = s.garage.MotorcycleID()

	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}
	if err := s.garage.RecordKilometers(ctx, event.Kilometers); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

func applyEventBody(event *models.Event, body utils.Payload) error {
	if err := mergeRequiredTime(body, "date", &event.Date); err != nil {
		return err
	}
	if err := mergeRequiredKilometers(body, "kilometers", &event.Kilometers); err != nil {
		return err
	}
	if err := mergeEnum(body, "type", models.EventTypes, &event.Type); err != nil {
		return err
	}
	if err := mergeRequiredString(body, "title", &event.Title); err != nil {
		return err
	}
	if err := mergeOptionalString(body, "description", &event.Description); err != nil {
		return err
	}
	if err := mergeOptionalDecimal(body, "cost", &event.Cost); err != nil {
		return err
	}
	return mergeOptionalString(body, "location", &event.Location)
}
