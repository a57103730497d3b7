package model

import (
	"time"

	"gorm.io/gorm"
)

// Component represents one canonical supplier catalog entry
type Component struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	InternalSKU    string         `json:"internal_sku" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description    string         `json:"description" gorm:"type:varchar(500)"`
	Brand          string         `json:"brand" gorm:"type:varchar(100)"`
	CostExVATPence int            `json:"cost_ex_vat_pence" gorm:"not null;default:0"`
	IsActive       bool           `json:"is_active" gorm:"default:true"`
	SourceFile     string         `json:"source_file" gorm:"type:varchar(50);comment:'Supplier cost file this row came from'"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (Component) TableName() string {
	return "components"
}
