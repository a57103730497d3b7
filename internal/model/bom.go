package model

import (
	"time"

	"gorm.io/gorm"
)

// BOM represents a marketplace bundle: which listing SKU it stands for and
// a display description taken from the listing title
type BOM struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	BundleSKU   string         `json:"bundle_sku" gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:varchar(500)"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (BOM) TableName() string {
	return "boms"
}

// BOMComponent links one catalog component into a bundle with the quantity
// the bundle requires. MatchTier records which heuristic produced the link
// so low-precision matches can be reviewed.
type BOMComponent struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	BOMSKU       string    `json:"bom_sku" gorm:"type:varchar(255);not null;uniqueIndex:idx_bom_component"`
	ComponentSKU string    `json:"component_sku" gorm:"type:varchar(100);not null;uniqueIndex:idx_bom_component"`
	QtyRequired  int       `json:"qty_required" gorm:"not null;default:1"`
	MatchTier    string    `json:"match_tier" gorm:"type:varchar(20)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (BOMComponent) TableName() string {
	return "bom_components"
}
