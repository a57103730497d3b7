package model

import (
	"time"

	"gorm.io/gorm"
)

// ListingMemory remembers how a marketplace listing resolved to a BOM.
// The fingerprint hash gives a stable lookup key for a listing title that
// survives punctuation and casing changes.
type ListingMemory struct {
	ID                   uint           `json:"id" gorm:"primarykey"`
	ASIN                 *string        `json:"asin,omitempty" gorm:"type:varchar(20);index"`
	SKU                  string         `json:"sku" gorm:"type:varchar(255);not null;index"`
	TitleFingerprint     string         `json:"title_fingerprint" gorm:"type:text"`
	TitleFingerprintHash string         `json:"title_fingerprint_hash" gorm:"type:varchar(64);index"`
	BOMSKU               string         `json:"bom_sku" gorm:"type:varchar(255);not null;index"`
	ResolutionSource     string         `json:"resolution_source" gorm:"type:varchar(20);not null"`
	IsActive             bool           `json:"is_active" gorm:"default:true"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (ListingMemory) TableName() string {
	return "listing_memory"
}

// UnmatchedListing is a listing whose SKU decomposition and title fallback
// both found no catalog component. Rows are refreshed on every import run
// and exist purely for manual review.
type UnmatchedListing struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	SellerSKU string    `json:"seller_sku" gorm:"type:varchar(255);not null;index"`
	ItemName  string    `json:"item_name" gorm:"type:varchar(500)"`
	ASIN      string    `json:"asin" gorm:"type:varchar(20)"`
	RunID     string    `json:"run_id" gorm:"type:varchar(36);index;comment:'Import run that flagged this listing'"`
	CreatedAt time.Time `json:"created_at"`
}

func (UnmatchedListing) TableName() string {
	return "unmatched_listings"
}
