package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"motolog-api/models"
	"motolog-api/repositories"
	"motolog-api/utils"
)

var requiredServiceFields = []string{"date", "kilometers", "type"}

// ServiceRecordService manages the maintenance log.
type ServiceRecordService struct {
	services *repositories.ServiceRepository
	garage   *GarageService
}

// NewServiceRecordService returns a ServiceRecordService attached to the motorcycle managed by garage.
func NewServiceRecordService(services *repositories.ServiceRepository, garage *GarageService) *ServiceRecordService {
	return &ServiceRecordService{
		services: services,
		garage:   garage,
	}
}

func (s *ServiceRecordService) List(ctx context.Context, ownerID string) ([]models.ServiceDetail, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.services.ListByMotorcycle(ctx, s.garage.MotorcycleID())
}

func (s *ServiceRecordService) Get(ctx context.Context, id string) (*models.ServiceDetail, error) {
	return s.services.FindDetail(ctx, id)
}

// Create stores a new service and raises the odometer to its kilometers.
func (s *ServiceRecordService) Create(ctx context.Context, ownerID string, body utils.Payload) (*models.Service, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}

	if missing := body.Missing(requiredServiceFields...); len(missing) > 0 {
		return nil, missingFields(missing)
	}

	service := models.Service{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := applyServiceBody(&service, body); err != nil {
		return nil, err
	}
	service.MotorcycleID = s.garage.MotorcycleID()

	if err := s.services.Create(ctx, &service); err != nil {
		return nil, err
	}
	if err := s.garage.RecordKilometers(ctx, service.Kilometers); err != nil {
		return nil, err
	}
	return &service, nil
}

// Update merges body over the stored service. The motorcycle reference is always reset.
func (s *ServiceRecordService) Update(ctx context.Context, id string, body utils.Payload) (*models.Service, error) {
	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyServiceBody(service, body); err != nil {
		return nil, err
	}
	service.MotorcycleID = s.garage.MotorcycleID()

	if err := s.services.Save(ctx, service); err != nil {
		return nil, err
	}
	if err := s.garage.RecordKilometers(ctx, service.Kilometers); err != nil {
		return nil, err
	}
	return service, nil
}

// Delete removes the service. The odometer is left as it is.
func (s *ServiceRecordService) Delete(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

func applyServiceBody(service *models.Service, body utils.Payload) error {
	if err := mergeRequiredTime(body, "date", &service.Date); err != nil {
		return err
	}
	if err := mergeRequiredKilometers(body, "kilometers", &service.Kilometers); err != nil {
		return err
	}
	if err := mergeEnum(body, "type", models.ServiceTypes, &service.Type); err != nil {
		return err
	}
	if err := mergeOptionalString(body, "description", &service.Description); err != nil {
		return err
	}
	if err := mergeOptionalDecimal(body, "cost", &service.Cost); err != nil {
		return err
	}
	if err := mergeOptionalString(body, "location", &service.Location); err != nil {
		return err
	}
	return mergeOptionalInt(body, "nextServiceKm", &service.NextServiceKm)
}
