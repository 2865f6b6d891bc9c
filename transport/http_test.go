package transport_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/muhammadheryan/ev-admin/constant"
	dashboardmocks "github.com/muhammadheryan/ev-admin/mocks/application/dashboard"
	feemocks "github.com/muhammadheryan/ev-admin/mocks/application/fee"
	moderationmocks "github.com/muhammadheryan/ev-admin/mocks/application/moderation"
	notificationmocks "github.com/muhammadheryan/ev-admin/mocks/application/notification"
	usermocks "github.com/muhammadheryan/ev-admin/mocks/application/user"
	"github.com/muhammadheryan/ev-admin/model"
	"github.com/muhammadheryan/ev-admin/transport"
	cerr "github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const internalKey = "internal-secret"

var (
	adminSession    = &model.Session{UserID: 1, Email: "admin@ev.vn", Role: "admin", BackendToken: "backend"}
	subAdminSession = &model.Session{UserID: 2, Email: "mod@ev.vn", Role: "sub_admin", BackendToken: "backend"}
)

type fields struct {
	userApp       *usermocks.UserApp
	dashboardApp  *dashboardmocks.DashboardApp
	moderationApp *moderationmocks.ModerationApp
	feeApp        *feemocks.FeeApp
	dispatcher    *notificationmocks.Dispatcher
}

func newFields(t *testing.T) fields {
	logger.Replace(zap.NewNop())
	return fields{
		userApp:       usermocks.NewUserApp(t),
		dashboardApp:  dashboardmocks.NewDashboardApp(t),
		moderationApp: moderationmocks.NewModerationApp(t),
		feeApp:        feemocks.NewFeeApp(t),
		dispatcher:    notificationmocks.NewDispatcher(t),
	}
}

func (f fields) handler() http.Handler {
	return transport.NewTransport(&transport.RestHandler{
		UserApp:       f.userApp,
		DashboardApp:  f.dashboardApp,
		ModerationApp: f.moderationApp,
		FeeApp:        f.feeApp,
		Dispatcher:    f.dispatcher,
	}, internalKey)
}

func (f fields) loginAs(token string, session *model.Session) {
	f.userApp.On("ValidateToken", mock.Anything, token).Return(session, nil)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) transport.ErrorResponse {
	t.Helper()
	var body transport.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestTransport_Errors(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		header   map[string]string
		body     string
		mockCall func(f fields)
		wantCode int
		wantErr  constant.ErrorType
	}{
		{
			name:     "missing bearer token",
			method:   http.MethodGet,
			path:     "/admin/dashboard",
			wantCode: http.StatusUnauthorized,
			wantErr:  constant.ErrUnauthorize,
		},
		{
			name:   "expired session",
			method: http.MethodGet,
			path:   "/admin/dashboard",
			header: map[string]string{"Authorization": "Bearer stale"},
			mockCall: func(f fields) {
				f.userApp.On("ValidateToken", mock.Anything, "stale").
					Return(nil, cerr.SetCustomError(constant.ErrUnauthorize))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  constant.ErrUnauthorize,
		},
		{
			name:     "sub admin cannot update fees",
			method:   http.MethodPut,
			path:     "/admin/fees/1",
			header:   map[string]string{"Authorization": "Bearer mod"},
			body:     `{"feeValue": 3}`,
			mockCall: func(f fields) { f.loginAs("mod", subAdminSession) },
			wantCode: http.StatusForbidden,
			wantErr:  constant.ErrForbidden,
		},
		{
			name:     "sub admin cannot change roles",
			method:   http.MethodPut,
			path:     "/admin/users/9/role",
			header:   map[string]string{"Authorization": "Bearer mod"},
			body:     `{"role": "admin"}`,
			mockCall: func(f fields) { f.loginAs("mod", subAdminSession) },
			wantCode: http.StatusForbidden,
			wantErr:  constant.ErrForbidden,
		},
		{
			name:     "internal route without key",
			method:   http.MethodPost,
			path:     "/internal/v1/cache/invalidate",
			wantCode: http.StatusForbidden,
			wantErr:  constant.ErrForbidden,
		},
		{
			name:     "internal route with wrong key",
			method:   http.MethodPost,
			path:     "/internal/v1/cache/invalidate",
			header:   map[string]string{"Authorization": "Bearer nope"},
			wantCode: http.StatusForbidden,
			wantErr:  constant.ErrForbidden,
		},
		{
			name:     "approve with non numeric id",
			method:   http.MethodPost,
			path:     "/admin/products/abc/approve",
			header:   map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) { f.loginAs("admin", adminSession) },
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrMissingProductID,
		},
		{
			name:     "malformed login body",
			method:   http.MethodPost,
			path:     "/auth/login",
			body:     `{"email":`,
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
		{
			name:   "reject without body reaches the app",
			method: http.MethodPost,
			path:   "/admin/products/7/reject",
			header: map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.moderationApp.On("Reject", mock.Anything, adminSession, int64(7), &model.RejectRequest{}).
					Return(nil, cerr.SetCustomError(constant.ErrMissingReason))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrMissingReason,
		},
		{
			name:   "upstream failure maps to bad gateway",
			method: http.MethodGet,
			path:   "/admin/fees",
			header: map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.feeApp.On("List", mock.Anything).Return(nil, cerr.SetCustomError(constant.ErrUpstream))
			},
			wantCode: http.StatusBadGateway,
			wantErr:  constant.ErrUpstream,
		},
		{
			name:   "payment notification for unknown order",
			method: http.MethodPost,
			path:   "/admin/orders/404/payment-notification",
			header: map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.dashboardApp.On("OrderDetail", mock.Anything, int64(404)).Return(nil, cerr.SetCustomError(constant.ErrNotFound))
			},
			wantCode: http.StatusNotFound,
			wantErr:  constant.ErrNotFound,
		},
		{
			name:   "payment notification without buyer",
			method: http.MethodPost,
			path:   "/admin/orders/8/payment-notification",
			header: map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.dashboardApp.On("OrderDetail", mock.Anything, int64(8)).
					Return(&model.OrderDetail{Order: model.Order{OrderID: 8, TotalAmount: 1000}}, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
		{
			name:     "send notification with unknown type",
			method:   http.MethodPost,
			path:     "/admin/users/9/notifications",
			header:   map[string]string{"Authorization": "Bearer admin"},
			body:     `{"notificationType":"promo","title":"Sale","content":"50%"}`,
			mockCall: func(f fields) { f.loginAs("admin", adminSession) },
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
		{
			name:     "send notification with blank title",
			method:   http.MethodPost,
			path:     "/admin/users/9/notifications",
			header:   map[string]string{"Authorization": "Bearer admin"},
			body:     `{"title":"  ","content":"Bảo trì hệ thống"}`,
			mockCall: func(f fields) { f.loginAs("admin", adminSession) },
			wantCode: http.StatusBadRequest,
			wantErr:  constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			f.handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decodeError(t, rec)
			assert.Equal(t, constant.ErrorTypeCode[tt.wantErr], body.Code)
			assert.Equal(t, constant.ErrorTypeMessage[tt.wantErr], body.Message)
		})
	}
}

func TestTransport_Success(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		header   map[string]string
		body     string
		mockCall func(f fields)
		wantData string
	}{
		{
			name:   "approve product",
			method: http.MethodPost,
			path:   "/admin/products/7/approve",
			header: map[string]string{"Authorization": "Bearer mod"},
			mockCall: func(f fields) {
				f.loginAs("mod", subAdminSession)
				f.moderationApp.On("Approve", mock.Anything, subAdminSession, int64(7)).
					Return(&model.ModerationResult{ProductID: 7, Status: "Active", Notified: true}, nil)
			},
			wantData: `{"productId":7,"status":"Active","notified":true}`,
		},
		{
			name:   "internal cache invalidation",
			method: http.MethodPost,
			path:   "/internal/v1/cache/invalidate",
			header: map[string]string{"Authorization": "Bearer " + internalKey},
			mockCall: func(f fields) {
				f.dashboardApp.On("InvalidateCache", mock.Anything).Return(nil)
			},
			wantData: `null`,
		},
		{
			name:   "mark all notifications read",
			method: http.MethodPost,
			path:   "/admin/users/5/notifications/read-all",
			header: map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.dispatcher.On("MarkAllRead", mock.Anything, int64(5)).Return(3)
			},
			wantData: `{"marked":3}`,
		},
		{
			name:   "payment notification sums settled payments",
			method: http.MethodPost,
			path:   "/admin/orders/7/payment-notification",
			header: map[string]string{"Authorization": "Bearer mod"},
			mockCall: func(f fields) {
				f.loginAs("mod", subAdminSession)
				f.dashboardApp.On("OrderDetail", mock.Anything, int64(7)).Return(&model.OrderDetail{
					Order: model.Order{OrderID: 7, BuyerID: 5, TotalAmount: 2000000},
					Payments: []model.Payment{
						{PaymentID: 1, Amount: 500000, Status: "Success"},
						{PaymentID: 2, Amount: 300000, Status: "completed"},
						{PaymentID: 3, Amount: 999, Status: "Failed"},
					},
				}, nil)
				f.dispatcher.On("PaymentSuccess", mock.Anything, int64(5), int64(7), 800000.0).Return(true)
			},
			wantData: `{"notified":true}`,
		},
		{
			name:   "payment notification falls back to order total",
			method: http.MethodPost,
			path:   "/admin/orders/7/payment-notification",
			header: map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.dashboardApp.On("OrderDetail", mock.Anything, int64(7)).Return(&model.OrderDetail{
					Order:    model.Order{OrderID: 7, BuyerID: 5, TotalAmount: 2000000},
					Payments: []model.Payment{},
				}, nil)
				f.dispatcher.On("PaymentSuccess", mock.Anything, int64(5), int64(7), 2000000.0).Return(false)
			},
			wantData: `{"notified":false}`,
		},
		{
			name:   "send notification defaults to system type",
			method: http.MethodPost,
			path:   "/admin/users/9/notifications",
			header: map[string]string{"Authorization": "Bearer admin"},
			body:   `{"title":" Bảo trì ","content":"Hệ thống bảo trì lúc 22h","metadata":{"window":"22:00"}}`,
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.dispatcher.On("Send", mock.Anything, mock.MatchedBy(func(req *model.NotificationRequest) bool {
					return req.UserID == 9 &&
						req.NotificationType == constant.NotificationSystem &&
						req.Title == "Bảo trì" &&
						string(req.Metadata) == `{"window":"22:00"}`
				})).Return(true)
			},
			wantData: `{"notified":true}`,
		},
		{
			name:   "admin updates fee",
			method: http.MethodPut,
			path:   "/admin/fees/2",
			header: map[string]string{"Authorization": "Bearer admin"},
			body:   `{"feeValue": 4.5}`,
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.feeApp.On("Update", mock.Anything, adminSession, int64(2), mock.MatchedBy(func(req *model.FeeUpdateRequest) bool {
					return req.FeeValue != nil && *req.FeeValue == 4.5
				})).Return(&model.FeeSetting{FeeID: 2, FeeType: "Commission", FeeValue: 4.5}, nil)
			},
			wantData: `{"feeId":2,"feeType":"Commission","feeValue":4.5,"isActive":false}`,
		},
		{
			name:   "audit trail filtered by target",
			method: http.MethodGet,
			path:   "/admin/audit?targetType=product&targetId=7",
			header: map[string]string{"Authorization": "Bearer admin"},
			mockCall: func(f fields) {
				f.loginAs("admin", adminSession)
				f.moderationApp.On("AuditFor", mock.Anything, "product", int64(7)).Return([]model.AuditEntry{}, nil)
			},
			wantData: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			f.handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var body struct {
				Data json.RawMessage `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.JSONEq(t, tt.wantData, string(body.Data))
		})
	}
}

func TestTransport_CompleteInspection(t *testing.T) {
	f := newFields(t)
	f.loginAs("mod", subAdminSession)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("fields", `{"batteryHealth": 92.5}`))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="images"; filename="front.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	f.moderationApp.On("CompleteInspection", mock.Anything, subAdminSession, int64(11), mock.MatchedBy(func(req *model.InspectionRequest) bool {
		return req.Fields != nil && req.Fields.BatteryHealth != nil && *req.Fields.BatteryHealth == 92.5 &&
			len(req.Images) == 1 && req.Images[0].Filename == "front.png" &&
			req.Images[0].ContentType == "image/png" && string(req.Images[0].Data) == "png-bytes"
	})).Return(&model.InspectionResult{ProductID: 11, Verified: true, ImagesUploaded: 1, FieldsUpdated: true, Notified: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/products/11/inspection", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer mod")
	rec := httptest.NewRecorder()
	f.handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"imagesUploaded":1`)
}

type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestTransport_CompleteInspection_BodyTooLarge(t *testing.T) {
	f := newFields(t)
	f.loginAs("mod", subAdminSession)

	const boundary = "inspection-boundary"
	body := io.MultiReader(
		strings.NewReader("--"+boundary+"\r\n"+
			`Content-Disposition: form-data; name="images"; filename="huge.png"`+"\r\n"+
			"Content-Type: image/png\r\n\r\n"),
		io.LimitReader(zeros{}, transport.MaxInspectionBody+1),
		strings.NewReader("\r\n--"+boundary+"--\r\n"),
	)

	req := httptest.NewRequest(http.MethodPost, "/admin/products/11/inspection", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	req.Header.Set("Authorization", "Bearer mod")
	rec := httptest.NewRecorder()
	f.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], decodeError(t, rec).Code)
	f.moderationApp.AssertNotCalled(t, "CompleteInspection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
