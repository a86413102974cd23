package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionKind string

const (
	TransactionEarn  TransactionKind = "earn"
	TransactionSpend TransactionKind = "spend"
)

// PointTransaction is one immutable ledger entry. Rows are only ever
// inserted; nothing in the codebase updates or deletes them.
type PointTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User        User            `gorm:"foreignKey:UserID" json:"-"`
	Kind        TransactionKind `gorm:"not null" json:"kind"`
	Amount      int             `gorm:"not null" json:"amount"` // positive for earn, negative for spend
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (t *PointTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
