package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	"github.com/muhammadheryan/ev-admin/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	validatorx "github.com/muhammadheryan/ev-admin/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const markAllConcurrency = 8

// Publisher hands notifications to the queue instead of delivering them inline.
type Publisher interface {
	PublishNotification(ctx context.Context, req *model.NotificationRequest) error
}

// Dispatcher sends user-facing notifications for moderation events. Every method
// swallows delivery failures: notifications never block the action they accompany.
type Dispatcher interface {
	Send(ctx context.Context, req *model.NotificationRequest) bool
	Deliver(ctx context.Context, req *model.NotificationRequest) error

	PostApproved(ctx context.Context, userID, productID int64, productTitle string) bool
	PostRejected(ctx context.Context, userID, productID int64, productTitle, reason string) bool
	VerificationCompleted(ctx context.Context, userID, productID int64, productTitle string) bool
	VerificationRejected(ctx context.Context, userID, productID int64, productTitle, reason string) bool
	PaymentSuccess(ctx context.Context, userID, orderID int64, amount float64) bool
	AccountStatusChanged(ctx context.Context, userID int64, status, reason string) bool

	ListForUser(ctx context.Context, userID int64) []model.Notification
	MarkRead(ctx context.Context, id int64) model.Notification
	MarkAllRead(ctx context.Context, userID int64) int
}

type dispatcherImpl struct {
	api       marketplace.NotificationAPI
	publisher Publisher
}

// NewDispatcher builds a dispatcher. publisher may be nil for inline delivery.
func NewDispatcher(api marketplace.NotificationAPI, publisher Publisher) Dispatcher {
	return &dispatcherImpl{api: api, publisher: publisher}
}

func (d *dispatcherImpl) Send(ctx context.Context, req *model.NotificationRequest) bool {
	if err := validatorx.ValidateStruct(req); err != nil || !constant.NotificationTypes[req.NotificationType] {
		logger.Warn("[Send] invalid notification", zap.Int64("user_id", req.UserID), zap.String("type", string(req.NotificationType)))
		return false
	}
	if req.ReferenceID == "" {
		req.ReferenceID = uuid.NewString()
	}

	if d.publisher != nil {
		err := d.publisher.PublishNotification(ctx, req)
		if err == nil {
			return true
		}
		logger.Warn("[Send] err publisher.PublishNotification, delivering inline",
			zap.String("reference_id", req.ReferenceID), zap.String("error", err.Error()))
	}

	if err := d.Deliver(ctx, req); err != nil {
		logger.Error("[Send] err Deliver", zap.String("reference_id", req.ReferenceID),
			zap.Int64("user_id", req.UserID), zap.String("error", err.Error()))
		return false
	}
	return true
}

// Deliver posts the notification to the backend. The queue consumer calls it too.
func (d *dispatcherImpl) Deliver(ctx context.Context, req *model.NotificationRequest) error {
	_, err := d.api.Create(ctx, req)
	return err
}

func (d *dispatcherImpl) compose(ctx context.Context, userID int64, typ constant.NotificationType, title, content string, metadata map[string]interface{}) bool {
	raw, err := json.Marshal(metadata)
	if err != nil {
		logger.Error("[compose] err marshal metadata", zap.String("error", err.Error()))
		raw = nil
	}
	return d.Send(ctx, &model.NotificationRequest{
		UserID:           userID,
		NotificationType: typ,
		Title:            title,
		Content:          content,
		Metadata:         raw,
	})
}

func (d *dispatcherImpl) PostApproved(ctx context.Context, userID, productID int64, productTitle string) bool {
	return d.compose(ctx, userID, constant.NotificationPostApproved,
		"✅ Bài đăng đã được duyệt",
		fmt.Sprintf("Bài đăng \"%s\" của bạn đã được duyệt và đang hiển thị trên sàn.", productTitle),
		map[string]interface{}{"productId": productID, "productTitle": productTitle, "status": constant.ProductStatusActive})
}

func (d *dispatcherImpl) PostRejected(ctx context.Context, userID, productID int64, productTitle, reason string) bool {
	return d.compose(ctx, userID, constant.NotificationPostRejected,
		"❌ Bài đăng bị từ chối",
		fmt.Sprintf("Bài đăng \"%s\" của bạn đã bị từ chối. Lý do: %s", productTitle, reason),
		map[string]interface{}{"productId": productID, "productTitle": productTitle, "status": constant.ProductStatusRejected, "reason": reason})
}

func (d *dispatcherImpl) VerificationCompleted(ctx context.Context, userID, productID int64, productTitle string) bool {
	return d.compose(ctx, userID, constant.NotificationVerificationCompleted,
		"🔍 Kiểm định xe hoàn tất",
		fmt.Sprintf("Xe \"%s\" đã được kiểm định và gắn nhãn ĐÃ KIỂM ĐỊNH.", productTitle),
		map[string]interface{}{"productId": productID, "productTitle": productTitle, "verificationStatus": constant.VerificationVerified})
}

func (d *dispatcherImpl) VerificationRejected(ctx context.Context, userID, productID int64, productTitle, reason string) bool {
	return d.compose(ctx, userID, constant.NotificationVerificationRejected,
		"⚠️ Yêu cầu kiểm định bị từ chối",
		fmt.Sprintf("Yêu cầu kiểm định cho \"%s\" không được chấp nhận. Lý do: %s", productTitle, reason),
		map[string]interface{}{"productId": productID, "productTitle": productTitle, "verificationStatus": constant.VerificationRejected, "reason": reason})
}

func (d *dispatcherImpl) PaymentSuccess(ctx context.Context, userID, orderID int64, amount float64) bool {
	return d.compose(ctx, userID, constant.NotificationPaymentSuccess,
		"💰 Thanh toán thành công",
		fmt.Sprintf("Thanh toán %s ₫ cho đơn hàng #%d đã được xác nhận.", FormatVND(amount), orderID),
		map[string]interface{}{"orderId": orderID, "amount": amount})
}

func (d *dispatcherImpl) AccountStatusChanged(ctx context.Context, userID int64, status, reason string) bool {
	content := "Tài khoản của bạn đã được kích hoạt trở lại."
	switch status {
	case constant.UserStatusSuspended:
		content = "Tài khoản của bạn đã bị tạm khóa."
	case constant.UserStatusDeleted:
		content = "Tài khoản của bạn đã bị xóa khỏi hệ thống."
	}
	if reason != "" && status != constant.UserStatusActive {
		content += " Lý do: " + reason
	}
	return d.compose(ctx, userID, constant.NotificationAccountStatusChanged,
		"🔔 Trạng thái tài khoản thay đổi", content,
		map[string]interface{}{"status": status, "reason": reason})
}

func (d *dispatcherImpl) ListForUser(ctx context.Context, userID int64) []model.Notification {
	items, err := d.api.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListForUser] err api.ListByUser", zap.Int64("user_id", userID), zap.String("error", err.Error()))
		return []model.Notification{}
	}
	if items == nil {
		items = []model.Notification{}
	}
	return items
}

// MarkRead tries PUT, then PATCH when the backend rejects the verb or rights, and
// finally reports a locally simulated read state.
func (d *dispatcherImpl) MarkRead(ctx context.Context, id int64) model.Notification {
	n, err := d.markRead(ctx, id)
	if err != nil {
		logger.Warn("[MarkRead] backend refused, simulating read state", zap.Int64("notification_id", id), zap.String("error", err.Error()))
		return model.Notification{NotificationID: id, IsRead: true, Simulated: true}
	}
	return *n
}

func (d *dispatcherImpl) markRead(ctx context.Context, id int64) (*model.Notification, error) {
	n, err := d.api.MarkRead(ctx, id, http.MethodPut)
	if err != nil && marketplace.IsMethodProblem(err) {
		logger.Debug("[markRead] PUT refused, retrying with PATCH", zap.Int64("notification_id", id), zap.String("error", err.Error()))
		n, err = d.api.MarkRead(ctx, id, http.MethodPatch)
	}
	if err != nil {
		return nil, err
	}
	if n == nil {
		n = &model.Notification{}
	}
	if n.NotificationID == 0 {
		n.NotificationID = id
	}
	n.IsRead = true
	return n, nil
}

// MarkAllRead marks every unread notification of a user and returns how many were
// marked. When every attempt fails it still reports the attempted count.
func (d *dispatcherImpl) MarkAllRead(ctx context.Context, userID int64) int {
	items, err := d.api.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[MarkAllRead] err api.ListByUser", zap.Int64("user_id", userID), zap.String("error", err.Error()))
		return 0
	}

	unread := make([]int64, 0, len(items))
	for _, n := range items {
		if !n.IsRead {
			unread = append(unread, n.NotificationID)
		}
	}
	if len(unread) == 0 {
		return 0
	}

	var marked int64
	var g errgroup.Group
	g.SetLimit(markAllConcurrency)
	for _, id := range unread {
		g.Go(func() error {
			if _, err := d.markRead(ctx, id); err != nil {
				logger.Warn("[MarkAllRead] err markRead", zap.Int64("notification_id", id), zap.String("error", err.Error()))
				return nil
			}
			atomic.AddInt64(&marked, 1)
			return nil
		})
	}
	_ = g.Wait()

	if marked == 0 {
		return len(unread)
	}
	return int(marked)
}

// FormatVND renders an amount the Vietnamese way: 1.200.000
func FormatVND(amount float64) string {
	return humanize.FormatInteger("#.###,", int(math.Round(amount)))
}
