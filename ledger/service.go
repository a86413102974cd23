package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lovestore-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service is the points ledger: the one place that mutates balances,
// reward quotas and redemption codes. All mutations to a single account
// run under a row-level lock on that account, so concurrent callers are
// serialized per account while different accounts proceed in parallel.
type Service struct {
	DB         *gorm.DB
	DailyLimit int
	Notifier   Notifier

	// Now and Location are injectable for tests; "today" is always
	// computed once per operation as a calendar date in Location.
	Now      func() time.Time
	Location *time.Location
}

// CartLine is one checkout line already resolved by the catalog: the
// engine never looks prices up itself.
type CartLine struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

func NewService(db *gorm.DB, dailyLimit int) *Service {
	return &Service{
		DB:         db,
		DailyLimit: dailyLimit,
		Now:        time.Now,
		Location:   time.Local,
	}
}

func (s *Service) today() string {
	return s.Now().In(s.Location).Format(DateLayout)
}

// storageErr wraps unexpected persistence failures so callers can match
// on ErrStorageUnavailable and safely retry.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// GetAccount returns the account with its transaction history, newest
// entries first.
func (s *Service) GetAccount(ctx context.Context, accountID uuid.UUID) (*models.User, []models.PointTransaction, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("id = ?", accountID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAccountNotFound
		}
		return nil, nil, storageErr(err)
	}

	var history []models.PointTransaction
	if err := s.DB.WithContext(ctx).Where("user_id = ?", accountID).
		Order("created_at DESC, id DESC").Find(&history).Error; err != nil {
		return nil, nil, storageErr(err)
	}
	return &user, history, nil
}

// QuotaStatus reports whether the account may still claim today and how
// many claims remain.
func (s *Service) QuotaStatus(ctx context.Context, accountID uuid.UUID) (eligible bool, remaining int, err error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("id = ?", accountID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrAccountNotFound
		}
		return false, 0, storageErr(err)
	}
	eligible, remaining = EvaluateQuota(user.LastRewardDate, user.RewardCountToday, s.DailyLimit, s.today())
	return eligible, remaining, nil
}

// ClaimDailyReward credits an already-drawn prize amount against the daily
// quota. The read-check-write sequence runs under the account row lock, so
// two concurrent claims can never both see "not yet claimed today".
func (s *Service) ClaimDailyReward(ctx context.Context, accountID uuid.UUID, amount int) (*models.User, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: reward amount must be positive, got %d", ErrInvariantViolation, amount)
	}

	today := s.today()
	var user models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return storageErr(err)
		}

		eligible, _ := EvaluateQuota(user.LastRewardDate, user.RewardCountToday, s.DailyLimit, today)
		if !eligible {
			return ErrQuotaExceeded
		}

		nextCount := 1
		if user.LastRewardDate == today {
			nextCount = user.RewardCountToday + 1
		}

		user.Balance += amount
		user.LastRewardDate = today
		user.RewardCountToday = nextCount
		if err := tx.Save(&user).Error; err != nil {
			return storageErr(err)
		}

		entry := models.PointTransaction{
			UserID:      user.ID,
			Kind:        models.TransactionEarn,
			Amount:      amount,
			Description: "Daily wheel spin",
		}
		if err := tx.Create(&entry).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateCode registers a new redemption code. The key is normalized before
// storage and must be unique across active and consumed codes alike.
func (s *Service) CreateCode(ctx context.Context, rawCode string, value int) (*models.RedemptionCode, error) {
	code := models.NormalizeCode(rawCode)
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrInvalidOrUsedCode)
	}
	if value <= 0 {
		return nil, fmt.Errorf("%w: code value must be positive, got %d", ErrInvariantViolation, value)
	}

	rc := models.RedemptionCode{Code: code, Value: value, Active: true}
	if err := s.DB.WithContext(ctx).Create(&rc).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCode
		}
		return nil, storageErr(err)
	}
	return &rc, nil
}

// ListCodes returns every code, consumed ones included, newest first.
func (s *Service) ListCodes(ctx context.Context) ([]models.RedemptionCode, error) {
	var codes []models.RedemptionCode
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&codes).Error; err != nil {
		return nil, storageErr(err)
	}
	return codes, nil
}

// DeleteCode removes a code entirely. This is an admin operation; normal
// consumption never deletes, it only deactivates.
func (s *Service) DeleteCode(ctx context.Context, rawCode string) error {
	code := models.NormalizeCode(rawCode)
	res := s.DB.WithContext(ctx).Where("code = ?", code).Delete(&models.RedemptionCode{})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrInvalidOrUsedCode
	}
	return nil
}

// RedeemCode consumes a single-use code and credits its value. Consumption
// and credit are two separate atomic operations; a crash between them can
// burn a code without crediting the account. That window is accepted and
// the consumption commit is logged so it can be reconciled by hand.
func (s *Service) RedeemCode(ctx context.Context, accountID uuid.UUID, rawCode string) (int, error) {
	code := models.NormalizeCode(rawCode)
	if code == "" {
		return 0, ErrInvalidOrUsedCode
	}

	// Cheap existence check first so a typo'd account id cannot burn a code.
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", accountID).Count(&count).Error; err != nil {
		return 0, storageErr(err)
	}
	if count == 0 {
		return 0, ErrAccountNotFound
	}

	value, err := s.consumeCode(ctx, code)
	if err != nil {
		return 0, err
	}
	log.Printf("ledger: code %s consumed for account %s (%d points)", code, accountID, value)

	if _, err := s.applyMutation(ctx, accountID, value, models.TransactionEarn, "Gift code: "+code); err != nil {
		// The code is already gone. Do not hide it: this is the documented
		// two-step risk window.
		log.Printf("ledger: ALERT code %s consumed but credit to %s failed: %v", code, accountID, err)
		return 0, err
	}
	return value, nil
}

// consumeCode flips a code from active to consumed exactly once. The
// guarded UPDATE makes losers of a concurrent race observe the winner's
// commit rather than their own stale read.
func (s *Service) consumeCode(ctx context.Context, code string) (int, error) {
	var value int
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rc models.RedemptionCode
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", code).First(&rc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidOrUsedCode
			}
			return storageErr(err)
		}
		if !rc.Active {
			return ErrInvalidOrUsedCode
		}

		res := tx.Model(&models.RedemptionCode{}).
			Where("id = ? AND active = ?", rc.ID, true).
			Update("active", false)
		if res.Error != nil {
			return storageErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInvalidOrUsedCode
		}
		value = rc.Value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Checkout debits a cart purchase. The declared total is never trusted:
// the engine recomputes it from the lines before touching the balance.
// The notification fires only after the debit has committed.
func (s *Service) Checkout(ctx context.Context, accountID uuid.UUID, items []CartLine, declaredTotal int) (*models.User, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidCart)
	}
	total := 0
	for _, line := range items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity %d for %q", ErrInvalidCart, line.Quantity, line.Title)
		}
		if line.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: negative unit price for %q", ErrInvalidCart, line.Title)
		}
		total += line.UnitPrice * line.Quantity
	}
	if total != declaredTotal {
		return nil, fmt.Errorf("%w: declared %d, computed %d", ErrCostMismatch, declaredTotal, total)
	}

	user, err := s.applyMutation(ctx, accountID, -total, models.TransactionSpend, "Order: "+summarizeCart(items))
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyOrder(user.Name, total, itemizeCart(items))
	}
	return user, nil
}

// applyMutation is the single write path to a balance: locked load,
// non-negativity check, balance update and history append in one
// transaction. delta is positive for credits and negative for debits.
func (s *Service) applyMutation(ctx context.Context, accountID uuid.UUID, delta int, kind models.TransactionKind, description string) (*models.User, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: zero-amount transaction", ErrInvariantViolation)
	}

	var user models.User
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", accountID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return storageErr(err)
		}

		newBalance := user.Balance + delta
		if newBalance < 0 {
			if kind == models.TransactionSpend {
				return ErrInsufficientBalance
			}
			log.Printf("ledger: FATAL balance for %s would become %d via %s", accountID, newBalance, kind)
			return ErrInvariantViolation
		}

		user.Balance = newBalance
		if err := tx.Save(&user).Error; err != nil {
			return storageErr(err)
		}

		entry := models.PointTransaction{
			UserID:      user.ID,
			Kind:        kind,
			Amount:      delta,
			Description: description,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// summarizeCart renders the single-line history description, e.g.
// "Massage (1x), Coffee (2x)".
func summarizeCart(items []CartLine) string {
	parts := make([]string, len(items))
	for i, line := range items {
		parts[i] = fmt.Sprintf("%s (%dx)", line.Title, line.Quantity)
	}
	return strings.Join(parts, ", ")
}

// itemizeCart renders the multi-line summary passed to the notifier.
func itemizeCart(items []CartLine) string {
	parts := make([]string, len(items))
	for i, line := range items {
		parts[i] = fmt.Sprintf("- %s (%dx)", line.Title, line.Quantity)
	}
	return strings.Join(parts, "\n")
}

// isUniqueViolation matches duplicate-key errors from both backends we
// run on (Postgres in production, SQLite in tests).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
