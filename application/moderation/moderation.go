package moderation

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/ev-admin/application/notification"
	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	auditrepo "github.com/muhammadheryan/ev-admin/repository/audit"
	redisrepo "github.com/muhammadheryan/ev-admin/repository/redis"
	"github.com/muhammadheryan/ev-admin/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	validatorx "github.com/muhammadheryan/ev-admin/utils/validator"
	"github.com/muhammadheryan/ev-admin/utils/watermark"
	"go.uber.org/zap"
)

const (
	ActionApprove = "product.approve"
	ActionReject  = "product.reject"
	ActionVerify  = "product.verify"

	TargetProduct = "product"
)

type ModerationApp interface {
	Approve(ctx context.Context, admin *model.Session, productID int64) (*model.ModerationResult, error)
	Reject(ctx context.Context, admin *model.Session, productID int64, req *model.RejectRequest) (*model.ModerationResult, error)
	InspectionForm(ctx context.Context, productID int64) (*model.InspectionForm, error)
	CompleteInspection(ctx context.Context, admin *model.Session, productID int64, req *model.InspectionRequest) (*model.InspectionResult, error)
	AuditLog(ctx context.Context, limit int) ([]model.AuditEntry, error)
	AuditFor(ctx context.Context, targetType string, targetID int64) ([]model.AuditEntry, error)
}

type moderationAppImpl struct {
	productAPI marketplace.ProductAPI
	dispatcher notification.Dispatcher
	auditRepo  auditrepo.AuditRepository
	cache      redisrepo.Repository
}

func NewModerationApp(productAPI marketplace.ProductAPI, dispatcher notification.Dispatcher, auditRepo auditrepo.AuditRepository, cache redisrepo.Repository) ModerationApp {
	return &moderationAppImpl{productAPI: productAPI, dispatcher: dispatcher, auditRepo: auditRepo, cache: cache}
}

func (s *moderationAppImpl) Approve(ctx context.Context, admin *model.Session, productID int64) (*model.ModerationResult, error) {
	if productID <= 0 {
		return nil, errors.SetCustomError(constant.ErrMissingProductID)
	}

	if err := s.productAPI.Approve(ctx, productID); err != nil {
		logger.Error("[Approve] err productAPI.Approve", zap.Int64("product_id", productID), zap.String("error", err.Error()))
		return nil, upstreamError(err)
	}

	s.patchListing(ctx, productID, func(l *model.Listing) {
		l.Status = constant.ProductStatusActive
		l.DisplayStatus = constant.ProductStatusActive
		l.RejectionReason = ""
	})

	result := &model.ModerationResult{ProductID: productID, Status: constant.ProductStatusActive}
	if product := s.lookupProduct(ctx, productID); product != nil && product.SellerID > 0 {
		result.Notified = s.dispatcher.PostApproved(ctx, product.SellerID, productID, product.Title)
	}

	s.record(ctx, admin, ActionApprove, productID, "")
	return result, nil
}

func (s *moderationAppImpl) Reject(ctx context.Context, admin *model.Session, productID int64, req *model.RejectRequest) (*model.ModerationResult, error) {
	if productID <= 0 {
		return nil, errors.SetCustomError(constant.ErrMissingProductID)
	}
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrMissingReason)
	}
	reason := strings.TrimSpace(req.Reason)
	if err := validatorx.ValidateVar(reason, "required,notblank"); err != nil {
		return nil, errors.SetCustomError(constant.ErrMissingReason)
	}

	if err := s.productAPI.Reject(ctx, productID, reason); err != nil {
		logger.Error("[Reject] err productAPI.Reject", zap.Int64("product_id", productID), zap.String("error", err.Error()))
		return nil, upstreamError(err)
	}

	s.patchListing(ctx, productID, func(l *model.Listing) {
		l.Status = constant.ProductStatusRejected
		l.DisplayStatus = constant.ProductStatusRejected
		l.RejectionReason = reason
	})

	result := &model.ModerationResult{ProductID: productID, Status: constant.ProductStatusRejected}
	if product := s.lookupProduct(ctx, productID); product != nil && product.SellerID > 0 {
		posted := s.dispatcher.PostRejected(ctx, product.SellerID, productID, product.Title, reason)
		verified := s.dispatcher.VerificationRejected(ctx, product.SellerID, productID, product.Title, reason)
		result.Notified = posted && verified
	}

	s.record(ctx, admin, ActionReject, productID, reason)
	return result, nil
}

func (s *moderationAppImpl) InspectionForm(ctx context.Context, productID int64) (*model.InspectionForm, error) {
	if productID <= 0 {
		return nil, errors.SetCustomError(constant.ErrMissingProductID)
	}

	product, err := s.productAPI.Get(ctx, productID)
	if err != nil {
		logger.Error("[InspectionForm] err productAPI.Get", zap.Int64("product_id", productID), zap.String("error", err.Error()))
		return nil, upstreamError(err)
	}

	images, err := s.productAPI.ListImages(ctx, productID)
	if err != nil {
		logger.Warn("[InspectionForm] err productAPI.ListImages", zap.Int64("product_id", productID), zap.String("error", err.Error()))
	}
	if images == nil {
		images = []model.ProductImage{}
	}

	return &model.InspectionForm{Product: *product, Images: images}, nil
}

// CompleteInspection runs the inspection steps in order. Only the verify step can fail
// the whole call; every other failure is reported as a warning.
func (s *moderationAppImpl) CompleteInspection(ctx context.Context, admin *model.Session, productID int64, req *model.InspectionRequest) (*model.InspectionResult, error) {
	if productID <= 0 {
		return nil, errors.SetCustomError(constant.ErrMissingProductID)
	}
	if req == nil {
		req = &model.InspectionRequest{}
	}
	hasFields := req.Fields != nil && !req.Fields.IsEmpty()
	if hasFields {
		if err := validatorx.ValidateStruct(req.Fields); err != nil {
			logger.Info("[CompleteInspection] invalid fields", zap.Int64("product_id", productID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	result := &model.InspectionResult{ProductID: productID}

	stamped := make([]model.ImageFile, 0, len(req.Images))
	for _, img := range req.Images {
		data, contentType, err := watermark.Apply(img.Data)
		if err != nil {
			logger.Warn("[CompleteInspection] err watermark.Apply", zap.String("filename", img.Filename), zap.String("error", err.Error()))
			warning := fmt.Sprintf("Không thể đóng dấu ảnh %s, ảnh đã bị bỏ qua", img.Filename)
			if stderrors.Is(err, watermark.ErrTooLarge) {
				warning = fmt.Sprintf("Ảnh %s có kích thước quá lớn, ảnh đã bị bỏ qua", img.Filename)
			}
			result.Warnings = append(result.Warnings, warning)
			continue
		}
		stamped = append(stamped, model.ImageFile{
			Filename:    uuid.NewString() + extension(contentType),
			ContentType: contentType,
			Data:        data,
		})
	}

	if len(stamped) > 0 {
		uploaded, err := s.productAPI.UploadImages(ctx, productID, stamped)
		if err != nil {
			logger.Warn("[CompleteInspection] err productAPI.UploadImages", zap.Int64("product_id", productID), zap.String("error", err.Error()))
			result.Warnings = append(result.Warnings, "Tải ảnh kiểm định lên thất bại")
		} else {
			result.ImagesUploaded = len(stamped)
			if len(uploaded) > 0 {
				result.ImagesUploaded = len(uploaded)
			}
		}
	}

	if err := s.productAPI.Verify(ctx, productID); err != nil {
		logger.Error("[CompleteInspection] err productAPI.Verify", zap.Int64("product_id", productID), zap.String("error", err.Error()))
		return nil, upstreamError(err)
	}
	result.Verified = true

	if hasFields {
		if err := s.productAPI.AdminUpdate(ctx, productID, req.Fields); err != nil {
			logger.Warn("[CompleteInspection] err productAPI.AdminUpdate", zap.Int64("product_id", productID), zap.String("error", err.Error()))
			result.Warnings = append(result.Warnings, "Cập nhật thông tin xe thất bại")
		} else {
			result.FieldsUpdated = true
		}
	}

	if product := s.lookupProduct(ctx, productID); product != nil && product.SellerID > 0 {
		result.Notified = s.dispatcher.VerificationCompleted(ctx, product.SellerID, productID, product.Title)
	}
	if !result.Notified {
		result.Warnings = append(result.Warnings, "Không thể gửi thông báo cho người bán")
	}

	s.record(ctx, admin, ActionVerify, productID, fmt.Sprintf("images=%d fields=%t", result.ImagesUploaded, result.FieldsUpdated))
	s.patchListing(ctx, productID, func(l *model.Listing) {
		l.VerificationStatus = constant.VerificationVerified
	})

	return result, nil
}

func (s *moderationAppImpl) AuditLog(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	return s.listAudit(ctx, &model.AuditFilter{Limit: limit})
}

func (s *moderationAppImpl) AuditFor(ctx context.Context, targetType string, targetID int64) ([]model.AuditEntry, error) {
	if targetType == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.listAudit(ctx, &model.AuditFilter{TargetType: targetType, TargetID: targetID})
}

func (s *moderationAppImpl) listAudit(ctx context.Context, filter *model.AuditFilter) ([]model.AuditEntry, error) {
	entries, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[listAudit] err auditRepo.List", zap.String("target_type", filter.TargetType), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}
	return entries, nil
}

// lookupProduct reads the product from the backend and falls back to the processed
// listings snapshot. nil means the seller cannot be resolved.
func (s *moderationAppImpl) lookupProduct(ctx context.Context, productID int64) *model.Product {
	product, err := s.productAPI.Get(ctx, productID)
	if err == nil && product != nil {
		return product
	}
	if err != nil {
		logger.Warn("[lookupProduct] err productAPI.Get", zap.Int64("product_id", productID), zap.String("error", err.Error()))
	}

	var listings []model.Listing
	if _, ok, err := s.cache.LoadSnapshot(ctx, constant.CacheKeyProcessedListings, &listings); err != nil || !ok {
		return nil
	}
	for i := range listings {
		if listings[i].ProductID == productID {
			return &listings[i].Product
		}
	}
	return nil
}

// patchListing rewrites one listing in the processed listings snapshot, if cached.
func (s *moderationAppImpl) patchListing(ctx context.Context, productID int64, patch func(l *model.Listing)) {
	var listings []model.Listing
	_, err := s.cache.PatchSnapshot(ctx, constant.CacheKeyProcessedListings, &listings, func() (bool, error) {
		changed := false
		for i := range listings {
			if listings[i].ProductID == productID {
				patch(&listings[i])
				changed = true
			}
		}
		return changed, nil
	})
	if err != nil {
		logger.Warn("[patchListing] err cache.PatchSnapshot", zap.Int64("product_id", productID), zap.String("error", err.Error()))
	}
}

func (s *moderationAppImpl) record(ctx context.Context, admin *model.Session, action string, productID int64, detail string) {
	entry := &model.AuditEntry{Action: action, TargetType: TargetProduct, TargetID: productID, Detail: detail}
	if admin != nil {
		entry.ActorID = admin.UserID
		entry.ActorEmail = admin.Email
	}
	if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
		logger.Error("[record] err auditRepo.Insert", zap.String("action", action), zap.Int64("product_id", productID), zap.String("error", err.Error()))
	}
}

func upstreamError(err error) error {
	if marketplace.IsNotFound(err) {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return errors.SetCustomError(constant.ErrUpstream)
}

func extension(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
