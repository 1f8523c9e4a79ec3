// File: /models/motorcycle.go
package models

import (
	"time"
)

type Motorcycle struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	UserID            string    `json:"userId" gorm:"column:user_id;not null;size:191"`
	Name              string    `json:"name" gorm:"not null;size:100"`
	Brand             string    `json:"brand" gorm:"not null;size:50"`
	Model             string    `json:"model" gorm:"not null;size:50"`
	Year              int       `json:"year" gorm:"not null"`
	CurrentKilometers int       `json:"currentKilometers" gorm:"not null;default:0"`
	EngineSize        *int      `json:"engineSize"` // in cc
	Color             *string   `json:"color" gorm:"size:30"`
	LicensePlate      *string   `json:"licensePlate" gorm:"size:20"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	Services      []Service      `json:"-" gorm:"foreignKey:MotorcycleID;constraint:OnDelete:CASCADE"`
	Events        []Event        `json:"-" gorm:"foreignKey:MotorcycleID;constraint:OnDelete:CASCADE"`
	Modifications []Modification `json:"-" gorm:"foreignKey:MotorcycleID;constraint:OnDelete:CASCADE"`
}

// MotorcycleProfile is the default record the singleton motorcycle is created from.
type MotorcycleProfile struct {
	ID                string
	Name              string
	Brand             string
	Model             string
	Year              int
	CurrentKilometers int
	EngineSize        int
	Color             string
	LicensePlate      string
}

// DefaultMotorcycleProfile describes the Kawasaki Z900 2025 "Nyiu".
func DefaultMotorcycleProfile() MotorcycleProfile {
	return MotorcycleProfile{
		ID:                "550e8400-e29b-41d4-a716-446655440000",
		Name:              "Nyiu",
		Brand:             "Kawasaki",
		Model:             "Z900",
		Year:              2025,
		CurrentKilometers: 0,
		EngineSize:        948,
		Color:             "Black",
		LicensePlate:      "",
	}
}

// NewMotorcycle returns a fresh row for the profile owned by userID.
// Pointer fields are copied so callers never share state with the profile.
func (p MotorcycleProfile) NewMotorcycle(userID string) Motorcycle {
	engineSize := p.EngineSize
	color := p.Color
	licensePlate := p.LicensePlate

	return Motorcycle{
		ID:                p.ID,
		UserID:            userID,
		Name:              p.Name,
		Brand:             p.Brand,
		Model:             p.Model,
		Year:              p.Year,
		CurrentKilometers: p.CurrentKilometers,
		EngineSize:        &engineSize,
		Color:             &color,
		LicensePlate:      &licensePlate,
	}
}

// MotorcycleUpdate carries the only fields the owner may edit.
// A set plate with a nil value clears the column; an empty string is stored as is.
type MotorcycleUpdate struct {
	SetLicensePlate   bool
	LicensePlate      *string
	CurrentKilometers *int
}
