package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"motolog-api/models"
	"motolog-api/repositories"
	"motolog-api/utils"
)

var requiredModificationFields = []string{"name", "type", "installDate"}

// ModificationService manages installed parts. Modifications do not touch the odometer.
type ModificationService struct {
	modifications *repositories.ModificationRepository
	garage        *GarageService
}

// NewModificationService returns a ModificationService attached to the motorcycle managed by garage.
func NewModificationService(modifications *repositories.ModificationRepository, garage *GarageService) *ModificationService {
	return &ModificationService{
		modifications: modifications,
		garage:        garage,
	}
}

func (s *ModificationService) List(ctx context.Context, ownerID string) ([]models.Modification, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.modifications.ListByMotorcycle(ctx, s.garage.MotorcycleID())
}

func (s *ModificationService) Get(ctx context.Context, id string) (*models.Modification, error) {
	return s.modifications.FindByID(ctx, id)
}

func (s *ModificationService) Create(ctx context.Context, ownerID string, body utils.Payload) (*models.Modification, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}

	if missing := body.Missing(requiredModificationFields...); len(missing) > 0 {
		return nil, missingFields(missing)
	}

	modification := models.Modification{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := applyModificationBody(&modification, body); err != nil {
		return nil, err
	}
	modification.MotorcycleID = s.garage.MotorcycleID()

	if err := s.modifications.Create(ctx, &modification); err != nil {
		return nil, err
	}
	return &modification, nil
}

func (s *ModificationService) Update(ctx context.Context, id string, body utils.Payload) (*models.Modification, error) {
	modification, err := s.modifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyModificationBody(modification, body); err != nil {
		return nil, err
	}
	modification.MotorcycleID = s.garage.MotorcycleID()

	if err := s.modifications.Save(ctx, modification); err != nil {
		return nil, err
	}
	return modification, nil
}

func (s *ModificationService) Delete(ctx context.Context, id string) error {
	return s.modifications.Delete(ctx, id)
}

func applyModificationBody(modification *models.Modification, body utils.Payload) error {
	if err := mergeRequiredString(body, "name", &modification.Name); err != nil {
		return err
	}
	if err := mergeEnum(body, "type", models.ModificationTypes, &modification.Type); err != nil {
		return err
	}
	if err := mergeOptionalString(body, "description", &modification.Description); err != nil {
		return err
	}
	if err := mergeRequiredTime(body, "installDate", &modification.InstallDate); err != nil {
		return err
	}
	return mergeOptionalDecimal(body, "cost", &modification.Cost)
}
