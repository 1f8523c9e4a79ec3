package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Modification struct {
	ID           string              `json:"id" gorm:"primaryKey;size:36"`
	MotorcycleID string              `json:"motorcycleId" gorm:"not null;size:36;index:idx_modifications_motorcycle_install,priority:1"`
	Name         string              `json:"name" gorm:"not null;size:100"`
	Type         ModificationType    `json:"type" gorm:"not null;size:32;check:chk_modifications_type,type IN ('protection','performance','aesthetic','comfort','storage','electronics','other')"`
	Description  *string             `json:"description" gorm:"type:text"`
	InstallDate  time.Time           `json:"installDate" gorm:"not null;index:idx_modifications_motorcycle_install,priority:2"`
	Cost         decimal.NullDecimal `json:"cost" gorm:"type:decimal(10,2)"`
	CreatedAt    time.Time           `json:"createdAt"`
}
