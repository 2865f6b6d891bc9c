package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/ev-admin/model"
)

type NotificationAPI interface {
	Create(ctx context.Context, req *model.NotificationRequest) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	// MarkRead sends the read transition with the given verb (PUT or PATCH).
	MarkRead(ctx context.Context, id int64, method string) (*model.Notification, error)
}

type notificationAPI struct {
	client *Client
}

func NewNotificationAPI(client *Client) NotificationAPI {
	return &notificationAPI{client: client}
}

func (n *notificationAPI) Create(ctx context.Context, req *model.NotificationRequest) (*model.Notification, error) {
	var out model.Notification
	if err := n.client.do(ctx, http.MethodPost, "/api/Notification", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (n *notificationAPI) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	var out []model.Notification
	if err := n.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Notification/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (n *notificationAPI) MarkRead(ctx context.Context, id int64, method string) (*model.Notification, error) {
	var out model.Notification
	if err := n.client.do(ctx, method, fmt.Sprintf("/api/Notification/%d/read", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
