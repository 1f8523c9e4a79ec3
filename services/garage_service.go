// Package services holds the business rules between the HTTP controllers and the repositories.
package services

import (
	"context"
	"fmt"
	"log"

	"motolog-api/models"
	"motolog-api/repositories"
	"motolog-api/utils"
)

// GarageService manages the one motorcycle this deployment tracks.
type GarageService struct {
	motorcycles    *repositories.MotorcycleRepository
	profile        models.MotorcycleProfile
	defaultOwnerID string
}

// NewGarageService returns a GarageService for profile. Motorcycles created without a
// signed-in user belong to defaultOwnerID.
func NewGarageService(motorcycles *repositories.MotorcycleRepository, profile models.MotorcycleProfile, defaultOwnerID string) *GarageService {
	return &GarageService{
		motorcycles:    motorcycles,
		profile:        profile,
		defaultOwnerID: defaultOwnerID,
	}
}

// MotorcycleID is the fixed id every record is attached to.
func (s *GarageService) MotorcycleID() string {
	return s.profile.ID
}

// Profile returns the defaults the motorcycle row is created from.
func (s *GarageService) Profile() models.MotorcycleProfile {
	return s.profile
}

// EnsureMotorcycle creates the motorcycle from the profile if it does not exist yet.
// An empty ownerID falls back to the configured default owner.
func (s *GarageService) EnsureMotorcycle(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		ownerID = s.defaultOwnerID
	}

	motorcycle := s.profile.NewMotorcycle(ownerID)
	created, err := s.motorcycles.EnsureExists(ctx, &motorcycle)
	if err != nil {
		return fmt.Errorf("ensure motorcycle %s: %w", s.profile.ID, err)
	}
	if created {
		log.Printf("Created motorcycle %s (%s %s %d) for owner %s",
			motorcycle.ID, motorcycle.Brand, motorcycle.Model, motorcycle.Year, ownerID)
	}
	return nil
}

func (s *GarageService) GetMotorcycle(ctx context.Context, ownerID string) (*models.Motorcycle, error) {
	if err := s.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.motorcycles.FindByID(ctx, s.profile.ID)
}

// UpdateMotorcycle applies licensePlate and currentKilometers from the body.
// Every other key is ignored. A null plate clears it, an empty one is stored as
// sent, and a blank currentKilometers keeps the stored value.
func (s *GarageService) UpdateMotorcycle(ctx context.Context, ownerID string, body utils.Payload) (*models.Motorcycle, error) {
	if err := s.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}

	update, err := parseMotorcycleUpdate(body)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.SetLicensePlate {
		updates["license_plate"] = update.LicensePlate
	}
	if update.CurrentKilometers != nil {
		updates["current_kilometers"] = *update.CurrentKilometers
	}

	return s.motorcycles.Update(ctx, s.profile.ID, updates)
}

func parseMotorcycleUpdate(body utils.Payload) (models.MotorcycleUpdate, error) {
	var update models.MotorcycleUpdate

	if body.Has("licensePlate") {
		plate, err := body.String("licensePlate")
		if err != nil {
			return update, invalidField("licensePlate", err)
		}
		update.SetLicensePlate = true
		update.LicensePlate = plate
	}

	km, err := body.Int("currentKilometers")
	if err != nil {
		return update, invalidField("currentKilometers", err)
	}
	if km != nil && !utils.IsValidKilometers(*km) {
		return update, &ValidationError{Fields: []string{"currentKilometers"}, Message: "currentKilometers must not be negative"}
	}
	update.CurrentKilometers = km

	return update, nil
}

// RecordKilometers raises the odometer to km when km is higher than the stored reading.
// It never lowers it.
func (s *GarageService) RecordKilometers(ctx context.Context, km int) error {
	raised, err := s.motorcycles.RaiseKilometers(ctx, s.profile.ID, km)
	if err != nil {
		return fmt.Errorf("record kilometers: %w", err)
	}
	if raised {
		log.Printf("Odometer of motorcycle %s raised to %d km", s.profile.ID, km)
	}
	return nil
}
