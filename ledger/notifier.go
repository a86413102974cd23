package ledger

// Notifier receives a best-effort message after a checkout has been
// committed. Implementations must not block the caller on delivery and
// must swallow their own failures; the ledger never inspects the outcome.
type Notifier interface {
	NotifyOrder(accountName string, totalCost int, itemSummary string)
}
