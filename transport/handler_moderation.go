package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	utilsContext "github.com/muhammadheryan/ev-admin/utils/context"
	"github.com/muhammadheryan/ev-admin/utils/errors"
)

const (
	// MaxInspectionBody caps the whole multipart request, files included.
	MaxInspectionBody   = 64 << 20
	maxInspectionUpload = 32 << 20
	inspectionFileField = "images"
	inspectionFormField = "fields"
)

func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.SetCustomError(constant.ErrMissingProductID)
	}
	return id, nil
}

// ApproveProduct handler
// @Summary Approve a pending listing
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 200 {object} transport.SuccessResponse{data=model.ModerationResult}
// @Failure 400 {object} transport.ErrorResponse
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/products/{id}/approve [post]
func (s *RestHandler) ApproveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	session, _ := utilsContext.GetSession(r.Context())

	res, err := s.ModerationApp.Approve(r.Context(), session, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RejectProduct handler
// @Summary Reject a listing with a reason
// @Tags Moderation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Param request body model.RejectRequest true "reason"
// @Success 200 {object} transport.SuccessResponse{data=model.ModerationResult}
// @Failure 400 {object} transport.ErrorResponse
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/products/{id}/reject [post]
func (s *RestHandler) RejectProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !stderrors.Is(err, io.EOF) {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	session, _ := utilsContext.GetSession(r.Context())

	res, err := s.ModerationApp.Reject(r.Context(), session, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InspectionForm handler
// @Summary Pre-filled inspection form
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 200 {object} transport.SuccessResponse{data=model.InspectionForm}
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/products/{id}/inspection [get]
func (s *RestHandler) InspectionForm(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ModerationApp.InspectionForm(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CompleteInspection handler
// @Summary Complete a vehicle inspection
// @Description Watermarks and uploads the images, marks the product verified, applies edited fields and notifies the seller
// @Tags Moderation
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Param fields formData string false "JSON encoded model.ProductUpdate"
// @Param images formData file false "inspection photos"
// @Success 200 {object} transport.SuccessResponse{data=model.InspectionResult}
// @Failure 400 {object} transport.ErrorResponse
// @Failure 502 {object} transport.ErrorResponse
// @Router /admin/products/{id}/inspection [post]
func (s *RestHandler) CompleteInspection(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxInspectionBody)
	req, err := readInspection(r)
	if err != nil {
		writeError(w, err)
		return
	}
	session, _ := utilsContext.GetSession(r.Context())

	res, err := s.ModerationApp.CompleteInspection(r.Context(), session, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func readInspection(r *http.Request) (*model.InspectionRequest, error) {
	if err := r.ParseMultipartForm(maxInspectionUpload); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	req := &model.InspectionRequest{}
	if raw := r.FormValue(inspectionFormField); raw != "" {
		var fields model.ProductUpdate
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		req.Fields = &fields
	}

	for _, header := range r.MultipartForm.File[inspectionFileField] {
		f, err := header.Open()
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		req.Images = append(req.Images, model.ImageFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return req, nil
}

// AuditLog handler
// @Summary Moderation audit trail
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param limit query int false "max entries, default 50"
// @Param targetType query string false "product, user or fee"
// @Param targetId query int false "target id, requires targetType"
// @Success 200 {object} transport.SuccessResponse{data=[]model.AuditEntry}
// @Router /admin/audit [get]
func (s *RestHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	var (
		res []model.AuditEntry
		err error
	)
	if targetType := r.URL.Query().Get("targetType"); targetType != "" {
		res, err = s.ModerationApp.AuditFor(r.Context(), targetType, queryInt64(r, "targetId"))
	} else {
		res, err = s.ModerationApp.AuditLog(r.Context(), int(queryInt64(r, "limit")))
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
