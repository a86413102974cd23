package ledger

// DateLayout is the stored form of a calendar day. Days are compared as
// year/month/day in the service's configured time zone, never as full
// timestamps, so eligibility rolls over at midnight rather than 24 hours
// after the last claim.
const DateLayout = "2006-01-02"

// EvaluateQuota decides daily-reward eligibility from an account snapshot.
// It is a pure function: lastRewardDate and today are YYYY-MM-DD strings,
// countToday is the stored counter. The stored counter only applies when
// the stored date equals today; on any other date the account is treated
// as having zero claims.
func EvaluateQuota(lastRewardDate string, countToday, limit int, today string) (eligible bool, remaining int) {
	if lastRewardDate != today {
		return limit > 0, limit
	}
	remaining = limit - countToday
	if remaining < 0 {
		remaining = 0
	}
	return countToday < limit, remaining
}
