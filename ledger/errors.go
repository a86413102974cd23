package ledger

import "errors"

// Typed failures surfaced by the ledger core. None of them are transient
// except ErrStorageUnavailable; retrying is always the caller's decision.
var (
	// ErrAccountNotFound means the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateCode means a code with the same key already exists,
	// whether it is still active or already consumed.
	ErrDuplicateCode = errors.New("code already exists")

	// ErrInvalidOrUsedCode covers both a code that never existed and a code
	// that was already consumed. Callers get one error for both so the API
	// does not leak which codes are real.
	ErrInvalidOrUsedCode = errors.New("code is invalid or already used")

	// ErrQuotaExceeded means the daily reward limit was reached for the
	// current calendar day.
	ErrQuotaExceeded = errors.New("daily reward quota exceeded")

	// ErrInsufficientBalance means the checkout total exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrCostMismatch means the declared cart total does not equal the
	// recomputed sum of unit price times quantity.
	ErrCostMismatch = errors.New("declared total does not match cart contents")

	// ErrInvalidCart means the cart failed boundary validation: empty, a
	// quantity below 1, or a negative unit price.
	ErrInvalidCart = errors.New("invalid cart contents")

	// ErrInvariantViolation means a computed balance would go negative
	// outside the checked path. It is a programming error, never expected
	// in correct operation.
	ErrInvariantViolation = errors.New("ledger invariant violation")

	// ErrStorageUnavailable wraps transient persistence failures. State is
	// left unchanged and the caller may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
