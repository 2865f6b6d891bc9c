package constant

// Normalised (lower case) order statuses recognised by reconciliation.
const (
	OrderStatusPending     = "pending"
	OrderStatusProcessing  = "processing"
	OrderStatusConfirmed   = "confirmed"
	OrderStatusDepositPaid = "depositpaid"
	OrderStatusDeposited   = "deposited"
	OrderStatusCompleted   = "completed"
	OrderStatusCancelled   = "cancelled"
	OrderStatusCanceled    = "canceled"
	OrderStatusFailed      = "failed"
	OrderStatusRejected    = "rejected"
)

var KnownOrderStatuses = map[string]bool{
	OrderStatusPending:     true,
	OrderStatusProcessing:  true,
	OrderStatusConfirmed:   true,
	OrderStatusDepositPaid: true,
	OrderStatusDeposited:   true,
	OrderStatusCompleted:   true,
	OrderStatusCancelled:   true,
	OrderStatusCanceled:    true,
	OrderStatusFailed:      true,
	OrderStatusRejected:    true,
}

// OrderStatusPriority ranks statuses for deduplication; anything missing ranks 0.
var OrderStatusPriority = map[string]int{
	OrderStatusCompleted:   3,
	OrderStatusDeposited:   2,
	OrderStatusDepositPaid: 2,
	OrderStatusPending:     1,
	OrderStatusProcessing:  1,
	OrderStatusConfirmed:   1,
	OrderStatusCancelled:   0,
	OrderStatusCanceled:    0,
	OrderStatusFailed:      0,
}
