package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a maintenance record.
type Service struct {
	ID            string              `json:"id" gorm:"primaryKey;size:36"`
	MotorcycleID  string              `json:"motorcycleId" gorm:"not null;size:36;index:idx_services_motorcycle_date,priority:1"`
	Date          time.Time           `json:"date" gorm:"not null;index:idx_services_motorcycle_date,priority:2,sort:desc"`
	Kilometers    int                 `json:"kilometers" gorm:"not null"`
	Type          ServiceType         `json:"type" gorm:"not null;size:32;check:chk_services_type,type IN ('oil_change','tire_change','brake_service','chain_maintenance','general_maintenance','repair','inspection','other')"`
	Description   *string             `json:"description" gorm:"type:text"`
	Cost          decimal.NullDecimal `json:"cost" gorm:"type:decimal(10,2)"`
	Location      *string             `json:"location" gorm:"size:100"`
	NextServiceKm *int                `json:"nextServiceKm"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ServiceDetail is a service row joined with the motorcycle's display fields.
type ServiceDetail struct {
	Service
	MotorcycleName  *string `json:"motorcycleName"`
	MotorcycleBrand *string `json:"motorcycleBrand"`
	MotorcycleModel *string `json:"motorcycleModel"`
}
