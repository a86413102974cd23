package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RedemptionCode is a single-use gift code. Once Active flips to false it
// never flips back; consumed codes stay in the table for the audit trail.
type RedemptionCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"`
	Value     int       `gorm:"not null" json:"value"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (rc *RedemptionCode) BeforeCreate(tx *gorm.DB) error {
	if rc.ID == uuid.Nil {
		rc.ID = uuid.New()
	}
	return nil
}

// NormalizeCode maps user input to the stored form: uppercase with all
// whitespace stripped. "gift 50" and "GIFT50" are the same code.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}
