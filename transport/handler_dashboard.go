package transport

import (
	"net/http"

	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	utilsContext "github.com/muhammadheryan/ev-admin/utils/context"
	"github.com/muhammadheryan/ev-admin/utils/errors"
)

// Dashboard handler
// @Summary Dashboard overview
// @Description Reconciled listings, deduplicated orders and stats; each collection reports its source
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.SuccessResponse{data=model.DashboardView}
// @Router /admin/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.DashboardApp.Overview(r.Context()))
}

// Listings handler
// @Summary Filtered listings
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param status query string false "display or product status"
// @Param productType query string false "Vehicle or Battery"
// @Param verificationStatus query string false "verification status"
// @Param q query string false "title, brand, model or seller name"
// @Success 200 {object} transport.SuccessResponse{data=model.ListingView}
// @Router /admin/listings [get]
func (s *RestHandler) Listings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.ListingFilter{
		Status:             q.Get("status"),
		ProductType:        q.Get("productType"),
		VerificationStatus: q.Get("verificationStatus"),
		Query:              q.Get("q"),
	}
	writeSuccess(w, s.DashboardApp.Listings(r.Context(), filter))
}

// Orders handler
// @Summary Deduplicated orders
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param status query string false "order status"
// @Param productId query int false "product id"
// @Param buyerId query int false "buyer id"
// @Success 200 {object} transport.SuccessResponse{data=model.OrderView}
// @Router /admin/orders [get]
func (s *RestHandler) Orders(w http.ResponseWriter, r *http.Request) {
	filter := &model.OrderFilter{
		Status:    r.URL.Query().Get("status"),
		ProductID: queryInt64(r, "productId"),
		BuyerID:   queryInt64(r, "buyerId"),
	}
	writeSuccess(w, s.DashboardApp.Orders(r.Context(), filter))
}

// OrderDetail handler
// @Summary Order with product and payments
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param id path int true "order id"
// @Success 200 {object} transport.SuccessResponse{data=model.OrderDetail}
// @Failure 404 {object} transport.ErrorResponse
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/orders/{id} [get]
func (s *RestHandler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.DashboardApp.OrderDetail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetActiveTab handler
// @Summary Remembered dashboard tab
// @Tags Preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.SuccessResponse{data=model.ActiveTabRequest}
// @Router /admin/preferences/active-tab [get]
func (s *RestHandler) GetActiveTab(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	writeSuccess(w, model.ActiveTabRequest{Tab: s.DashboardApp.ActiveTab(r.Context(), session.UserID)})
}

// SetActiveTab handler
// @Summary Remember dashboard tab
// @Tags Preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ActiveTabRequest true "tab"
// @Success 200 {object} transport.SuccessResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /admin/preferences/active-tab [put]
func (s *RestHandler) SetActiveTab(w http.ResponseWriter, r *http.Request) {
	session, ok := utilsContext.GetSession(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	var req model.ActiveTabRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.DashboardApp.SetActiveTab(r.Context(), session.UserID, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, req)
}

// Categories handler
// @Summary Product categories
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.SuccessResponse{data=[]model.Category}
// @Router /admin/categories [get]
func (s *RestHandler) Categories(w http.ResponseWriter, r *http.Request) {
	res, err := s.DashboardApp.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Favorites handler
// @Summary Favorites of a user
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} transport.SuccessResponse{data=[]model.Favorite}
// @Router /admin/users/{id}/favorites [get]
func (s *RestHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.DashboardApp.Favorites(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Chats handler
// @Summary Chats of a user
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} transport.SuccessResponse{data=[]model.Chat}
// @Router /admin/users/{id}/chats [get]
func (s *RestHandler) Chats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.DashboardApp.Chats(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Messages handler
// @Summary Messages of a chat
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Param id path int true "chat id"
// @Success 200 {object} transport.SuccessResponse{data=[]model.Message}
// @Router /admin/chats/{id}/messages [get]
func (s *RestHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.DashboardApp.Messages(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Reviews handler
// @Summary Reviews of a product
// @Tags Community
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 200 {object} transport.SuccessResponse{data=[]model.Review}
// @Router /admin/products/{id}/reviews [get]
func (s *RestHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.DashboardApp.Reviews(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
