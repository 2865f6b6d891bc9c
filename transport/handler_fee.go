package transport

import (
	"net/http"

	"github.com/muhammadheryan/ev-admin/model"
	utilsContext "github.com/muhammadheryan/ev-admin/utils/context"
)

// ListFees handler
// @Summary Platform fee settings
// @Tags Fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.SuccessResponse{data=[]model.FeeSetting}
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/fees [get]
func (s *RestHandler) ListFees(w http.ResponseWriter, r *http.Request) {
	res, err := s.FeeApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateFee handler
// @Summary Update one fee setting
// @Description Admin only
// @Tags Fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "fee id"
// @Param request body model.FeeUpdateRequest true "new value"
// @Success 200 {object} transport.SuccessResponse{data=model.FeeSetting}
// @Failure 400 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /admin/fees/{id} [put]
func (s *RestHandler) UpdateFee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.FeeUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	session, _ := utilsContext.GetSession(r.Context())

	res, err := s.FeeApp.Update(r.Context(), session, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
