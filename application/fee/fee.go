package fee

import (
	"context"
	"fmt"
	"strings"

	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	auditrepo "github.com/muhammadheryan/ev-admin/repository/audit"
	"github.com/muhammadheryan/ev-admin/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	validatorx "github.com/muhammadheryan/ev-admin/utils/validator"
	"go.uber.org/zap"
)

const (
	ActionUpdate = "fee.update"
	TargetFee    = "fee"

	maxPercentage = 100
)

type FeeApp interface {
	List(ctx context.Context) ([]model.FeeSetting, error)
	Update(ctx context.Context, admin *model.Session, feeID int64, req *model.FeeUpdateRequest) (*model.FeeSetting, error)
}

type feeAppImpl struct {
	feeAPI    marketplace.FeeAPI
	auditRepo auditrepo.AuditRepository
}

func NewFeeApp(feeAPI marketplace.FeeAPI, auditRepo auditrepo.AuditRepository) FeeApp {
	return &feeAppImpl{feeAPI: feeAPI, auditRepo: auditRepo}
}

func (s *feeAppImpl) List(ctx context.Context) ([]model.FeeSetting, error) {
	fees, err := s.feeAPI.List(ctx)
	if err != nil {
		logger.Error("[List] err feeAPI.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUpstream)
	}
	if fees == nil {
		fees = []model.FeeSetting{}
	}
	return fees, nil
}

func (s *feeAppImpl) Update(ctx context.Context, admin *model.Session, feeID int64, req *model.FeeUpdateRequest) (*model.FeeSetting, error) {
	if !admin.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if feeID <= 0 || req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil || *req.FeeValue < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidFeeValue)
	}

	fees, err := s.feeAPI.List(ctx)
	if err != nil {
		logger.Error("[Update] err feeAPI.List", zap.Int64("fee_id", feeID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUpstream)
	}
	var current *model.FeeSetting
	for i := range fees {
		if fees[i].FeeID == feeID {
			current = &fees[i]
			break
		}
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if strings.EqualFold(current.FeeType, constant.FeeTypeDepositPercentage) && *req.FeeValue > maxPercentage {
		return nil, errors.SetCustomError(constant.ErrInvalidFeeValue)
	}

	next := *current
	next.FeeValue = *req.FeeValue
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	}
	if err := s.feeAPI.Update(ctx, &next); err != nil {
		logger.Error("[Update] err feeAPI.Update", zap.Int64("fee_id", feeID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUpstream)
	}

	entry := &model.AuditEntry{
		ActorID:    admin.UserID,
		ActorEmail: admin.Email,
		Action:     ActionUpdate,
		TargetType: TargetFee,
		TargetID:   feeID,
		Detail:     fmt.Sprintf("%s %v -> %v active=%t", current.FeeType, current.FeeValue, next.FeeValue, next.IsActive),
	}
	if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
		logger.Error("[Update] err auditRepo.Insert", zap.Int64("fee_id", feeID), zap.String("error", err.Error()))
	}

	return &next, nil
}
