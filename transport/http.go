package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	dashboardapp "github.com/muhammadheryan/ev-admin/application/dashboard"
	feeapp "github.com/muhammadheryan/ev-admin/application/fee"
	moderationapp "github.com/muhammadheryan/ev-admin/application/moderation"
	"github.com/muhammadheryan/ev-admin/application/notification"
	userapp "github.com/muhammadheryan/ev-admin/application/user"
	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	"github.com/muhammadheryan/ev-admin/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp       userapp.UserApp
	DashboardApp  dashboardapp.DashboardApp
	ModerationApp moderationapp.ModerationApp
	FeeApp        feeapp.FeeApp
	Dispatcher    notification.Dispatcher
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)

	admin := mux.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/listings", rh.Listings).Methods(http.MethodGet)
	admin.HandleFunc("/orders", rh.Orders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", rh.OrderDetail).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/payment-notification", rh.PaymentNotification).Methods(http.MethodPost)

	admin.HandleFunc("/products/{id}/approve", rh.ApproveProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}/reject", rh.RejectProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}/inspection", rh.InspectionForm).Methods(http.MethodGet)
	admin.HandleFunc("/products/{id}/inspection", rh.CompleteInspection).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}/reviews", rh.Reviews).Methods(http.MethodGet)

	admin.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/status", rh.ChangeUserStatus).Methods(http.MethodPut)
	admin.Handle("/users/{id}/role", RequireAdmin(http.HandlerFunc(rh.ChangeUserRole))).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}/favorites", rh.Favorites).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/chats", rh.Chats).Methods(http.MethodGet)
	admin.HandleFunc("/chats/{id}/messages", rh.Messages).Methods(http.MethodGet)

	admin.HandleFunc("/users/{id}/notifications", rh.UserNotifications).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/notifications", rh.SendNotification).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/notifications/read-all", rh.MarkAllNotificationsRead).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{id}/read", rh.MarkNotificationRead).Methods(http.MethodPut)

	admin.HandleFunc("/fees", rh.ListFees).Methods(http.MethodGet)
	admin.Handle("/fees/{id}", RequireAdmin(http.HandlerFunc(rh.UpdateFee))).Methods(http.MethodPut)

	admin.HandleFunc("/categories", rh.Categories).Methods(http.MethodGet)
	admin.HandleFunc("/audit", rh.AuditLog).Methods(http.MethodGet)
	admin.HandleFunc("/preferences/active-tab", rh.GetActiveTab).Methods(http.MethodGet)
	admin.HandleFunc("/preferences/active-tab", rh.SetActiveTab).Methods(http.MethodPut)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/cache/invalidate", rh.InvalidateCache).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Login handler
// @Summary Admin login
// @Description Login through the marketplace backend; only admin and sub_admin roles are accepted
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} transport.SuccessResponse{data=model.LoginResponse}
// @Failure 400 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.SuccessResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// InvalidateCache handler
// @Summary Drop dashboard snapshots
// @Description Internal endpoint guarded by the static internal API key
// @Tags Internal
// @Produce json
// @Success 200 {object} transport.SuccessResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /internal/v1/cache/invalidate [post]
func (s *RestHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	if err := s.DashboardApp.InvalidateCache(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
