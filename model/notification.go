package model

import (
	"encoding/json"

	"github.com/muhammadheryan/ev-admin/constant"
)

type Notification struct {
	NotificationID   int64                     `json:"notificationId" alias:"id"`
	UserID           int64                     `json:"userId"`
	NotificationType constant.NotificationType `json:"notificationType" alias:"type"`
	Title            string                    `json:"title"`
	Content          string                    `json:"content" alias:"message,body"`
	Metadata         json.RawMessage           `json:"metadata,omitempty"`
	IsRead           bool                      `json:"isRead" alias:"read"`
	CreatedDate      FlexTime                  `json:"createdDate" alias:"createdAt"`
	// Simulated marks a read state applied locally after the backend refused the update.
	Simulated bool `json:"simulated,omitempty"`
}

type NotificationRequest struct {
	ReferenceID      string                    `json:"referenceId,omitempty"`
	UserID           int64                     `json:"userId" validate:"required,gt=0"`
	NotificationType constant.NotificationType `json:"notificationType" validate:"required"`
	Title            string                    `json:"title" validate:"required"`
	Content          string                    `json:"content" validate:"required"`
	Metadata         json.RawMessage           `json:"metadata,omitempty"`
}

// NotificationSendRequest is an operator-composed notification; the recipient comes from the path.
type NotificationSendRequest struct {
	NotificationType constant.NotificationType `json:"notificationType"`
	Title            string                    `json:"title" validate:"notblank"`
	Content          string                    `json:"content" validate:"notblank"`
	Metadata         json.RawMessage           `json:"metadata,omitempty"`
}
