package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `json:"name"`
	Role     string    `gorm:"default:user" json:"role"` // user, admin
	Balance  int       `gorm:"default:0" json:"balance"`
	// LastRewardDate is the calendar day (YYYY-MM-DD, store timezone) of the
	// most recent successful wheel spin. Empty means never spun.
	LastRewardDate string `json:"last_reward_date"`
	// RewardCountToday only has meaning while LastRewardDate equals today;
	// any other stored date counts as zero.
	RewardCountToday int            `gorm:"default:0" json:"reward_count_today"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
