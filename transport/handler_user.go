package transport

import (
	"net/http"

	"github.com/muhammadheryan/ev-admin/model"
	utilsContext "github.com/muhammadheryan/ev-admin/utils/context"
)

// ListUsers handler
// @Summary Marketplace users
// @Description Falls back to the cached snapshot when the backend is unreachable
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.SuccessResponse{data=model.UserList}
// @Router /admin/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.UserApp.ListUsers(r.Context()))
}

// ChangeUserStatus handler
// @Summary Lock, unlock or activate a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param request body model.ChangeStatusRequest true "new status"
// @Success 200 {object} transport.SuccessResponse{data=model.User}
// @Failure 400 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/users/{id}/status [put]
func (s *RestHandler) ChangeUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangeStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	session, _ := utilsContext.GetSession(r.Context())

	res, err := s.UserApp.ChangeStatus(r.Context(), session, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ChangeUserRole handler
// @Summary Change a user's role
// @Description Admin only
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param request body model.ChangeRoleRequest true "new role"
// @Success 200 {object} transport.SuccessResponse{data=model.User}
// @Failure 400 {object} transport.ErrorResponse
// @Failure 403 {object} transport.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (s *RestHandler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangeRoleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	session, _ := utilsContext.GetSession(r.Context())

	res, err := s.UserApp.ChangeRole(r.Context(), session, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
