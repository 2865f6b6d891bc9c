package constant

type NotificationType string

const (
	NotificationPostApproved          NotificationType = "post_approved"
	NotificationPostRejected          NotificationType = "post_rejected"
	NotificationVerificationCompleted NotificationType = "verification_completed"
	NotificationVerificationRejected  NotificationType = "verification_rejected"
	NotificationPaymentSuccess        NotificationType = "payment_success"
	NotificationAccountStatusChanged  NotificationType = "account_status_changed"
	NotificationSystem                NotificationType = "system"
)

var NotificationTypes = map[NotificationType]bool{
	NotificationPostApproved:          true,
	NotificationPostRejected:          true,
	NotificationVerificationCompleted: true,
	NotificationVerificationRejected:  true,
	NotificationPaymentSuccess:        true,
	NotificationAccountStatusChanged:  true,
	NotificationSystem:                true,
}
