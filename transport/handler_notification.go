package transport

import (
	"net/http"
	"strings"

	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	"github.com/muhammadheryan/ev-admin/utils/errors"
	validatorx "github.com/muhammadheryan/ev-admin/utils/validator"
)

type markAllReadResponse struct {
	Marked int `json:"marked"`
}

type notifiedResponse struct {
	Notified bool `json:"notified"`
}

// payment statuses that count towards the notified amount
var paidStatuses = map[string]bool{"success": true, "succeeded": true, "completed": true, "paid": true}

// paidAmount sums the settled payments of an order, falling back to the order total.
func paidAmount(detail *model.OrderDetail) float64 {
	var sum float64
	for _, p := range detail.Payments {
		if paidStatuses[strings.ToLower(strings.TrimSpace(p.Status))] {
			sum += p.Amount
		}
	}
	if sum > 0 {
		return sum
	}
	return detail.Order.TotalAmount
}

// UserNotifications handler
// @Summary Notifications of one user
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} transport.SuccessResponse{data=[]model.Notification}
// @Router /admin/users/{id}/notifications [get]
func (s *RestHandler) UserNotifications(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.Dispatcher.ListForUser(r.Context(), id))
}

// MarkAllNotificationsRead handler
// @Summary Mark every unread notification of a user as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} transport.SuccessResponse{data=transport.markAllReadResponse}
// @Router /admin/users/{id}/notifications/read-all [post]
func (s *RestHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, markAllReadResponse{Marked: s.Dispatcher.MarkAllRead(r.Context(), id)})
}

// MarkNotificationRead handler
// @Summary Mark one notification as read
// @Description Always answers with a read notification; simulated when the backend refused the update
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "notification id"
// @Success 200 {object} transport.SuccessResponse{data=model.Notification}
// @Router /admin/notifications/{id}/read [put]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.Dispatcher.MarkRead(r.Context(), id))
}

// SendNotification handler
// @Summary Send a notification to one user
// @Description The type defaults to system. Delivery failures are reported as notified=false
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param request body model.NotificationSendRequest true "Notification"
// @Success 200 {object} transport.SuccessResponse{data=transport.notifiedResponse}
// @Failure 400 {object} transport.ErrorResponse
// @Router /admin/users/{id}/notifications [post]
func (s *RestHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.NotificationSendRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.NotificationType == "" {
		req.NotificationType = constant.NotificationSystem
	}
	if err := validatorx.ValidateStruct(&req); err != nil || !constant.NotificationTypes[req.NotificationType] {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	notified := s.Dispatcher.Send(r.Context(), &model.NotificationRequest{
		UserID:           id,
		NotificationType: req.NotificationType,
		Title:            strings.TrimSpace(req.Title),
		Content:          strings.TrimSpace(req.Content),
		Metadata:         req.Metadata,
	})
	writeSuccess(w, notifiedResponse{Notified: notified})
}

// PaymentNotification handler
// @Summary Tell the buyer that an order payment went through
// @Description Amount is the sum of settled payments, or the order total when none is settled
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} transport.SuccessResponse{data=transport.notifiedResponse}
// @Failure 404 {object} transport.ErrorResponse
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/orders/{id}/payment-notification [post]
func (s *RestHandler) PaymentNotification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := s.DashboardApp.OrderDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if detail.Order.BuyerID <= 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	notified := s.Dispatcher.PaymentSuccess(r.Context(), detail.Order.BuyerID, id, paidAmount(detail))
	writeSuccess(w, notifiedResponse{Notified: notified})
}
