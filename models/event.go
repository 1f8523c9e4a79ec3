package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is something that happened in the motorcycle's life: a trip, an accident, a purchase.
type Event struct {
	ID           string              `json:"id" gorm:"primaryKey;size:36"`
	MotorcycleID string              `json:"motorcycleId" gorm:"not null;size:36;index:idx_events_motorcycle_date,priority:1"`
	Date         time.Time           `json:"date" gorm:"not null;index:idx_events_motorcycle_date,priority:2,sort:desc"`
	Kilometers   int                 `json:"kilometers" gorm:"not null"`
	Type         EventType           `json:"type" gorm:"not null;size:32;check:chk_events_type,type IN ('trip','accident','modification','purchase','insurance','registration','other')"`
	Title        string              `json:"title" gorm:"not null;size:100"`
	Description  *string             `json:"description" gorm:"type:text"`
	Cost         decimal.NullDecimal `json:"cost" gorm:"type:decimal(10,2)"`
	Location     *string             `json:"location" gorm:"size:100"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type EventDetail struct {
	Event
	MotorcycleName  *string `json:"motorcycleName"`
	MotorcycleBrand *string `json:"motorcycleBrand"`
	MotorcycleModel *string `json:"motorcycleModel"`
}
