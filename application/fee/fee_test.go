package fee_test

import (
	"context"
	"errors"
	"testing"

	appfee "github.com/muhammadheryan/ev-admin/application/fee"
	"github.com/muhammadheryan/ev-admin/constant"
	auditmocks "github.com/muhammadheryan/ev-admin/mocks/repository/audit"
	marketplacemocks "github.com/muhammadheryan/ev-admin/mocks/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/model"
	cerr "github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var fees = []model.FeeSetting{
	{FeeID: 1, FeeType: constant.FeeTypeDepositPercentage, FeeValue: 10, IsActive: true},
	{FeeID: 2, FeeType: constant.FeeTypeVerificationFee, FeeValue: 500000, IsActive: true},
}

func TestFeeApp_Update(t *testing.T) {
	type fields struct {
		feeAPI    *marketplacemocks.FeeAPI
		auditRepo *auditmocks.AuditRepository
	}
	admin := &model.Session{UserID: 1, Email: "admin@evmarket.vn", Role: constant.RoleAdmin}
	tests := []struct {
		name     string
		session  *model.Session
		feeID    int64
		req      *model.FeeUpdateRequest
		mockCall func(f fields)
		want     *model.FeeSetting
		errCode  constant.ErrorType
	}{
		{
			name:    "success: deposit percentage updated and audited",
			session: admin,
			feeID:   1,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(15.0)},
			mockCall: func(f fields) {
				f.feeAPI.On("List", mock.Anything).Return(fees, nil).Once()
				f.feeAPI.
					On("Update", mock.Anything, &model.FeeSetting{FeeID: 1, FeeType: constant.FeeTypeDepositPercentage, FeeValue: 15, IsActive: true}).
					Return(nil).
					Once()
				f.auditRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
						return e.Action == appfee.ActionUpdate && e.TargetID == 1
					})).
					Return(int64(1), nil).
					Once()
			},
			want: &model.FeeSetting{FeeID: 1, FeeType: constant.FeeTypeDepositPercentage, FeeValue: 15, IsActive: true},
		},
		{
			name:    "success: flat fee above one hundred and deactivated",
			session: admin,
			feeID:   2,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(750000.0), IsActive: ptr(false)},
			mockCall: func(f fields) {
				f.feeAPI.On("List", mock.Anything).Return(fees, nil).Once()
				f.feeAPI.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
				f.auditRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(2), nil).Once()
			},
			want: &model.FeeSetting{FeeID: 2, FeeType: constant.FeeTypeVerificationFee, FeeValue: 750000, IsActive: false},
		},
		{
			name:    "error: percentage above one hundred",
			session: admin,
			feeID:   1,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(101.0)},
			mockCall: func(f fields) {
				f.feeAPI.On("List", mock.Anything).Return(fees, nil).Once()
			},
			errCode: constant.ErrInvalidFeeValue,
		},
		{
			name:    "error: percentage cap ignores fee type casing",
			session: admin,
			feeID:   3,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(120.0)},
			mockCall: func(f fields) {
				f.feeAPI.
					On("List", mock.Anything).
					Return([]model.FeeSetting{{FeeID: 3, FeeType: "depositPercentage", FeeValue: 10, IsActive: true}}, nil).
					Once()
			},
			errCode: constant.ErrInvalidFeeValue,
		},
		{
			name:    "success: PascalCase admin role on the session",
			session: &model.Session{UserID: 1, Role: "Admin"},
			feeID:   2,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(600000.0)},
			mockCall: func(f fields) {
				f.feeAPI.On("List", mock.Anything).Return(fees, nil).Once()
				f.feeAPI.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
				f.auditRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(3), nil).Once()
			},
			want: &model.FeeSetting{FeeID: 2, FeeType: constant.FeeTypeVerificationFee, FeeValue: 600000, IsActive: true},
		},
		{
			name:    "error: negative value",
			session: admin,
			feeID:   2,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(-1.0)},
			errCode: constant.ErrInvalidFeeValue,
		},
		{
			name:    "error: missing value",
			session: admin,
			feeID:   2,
			req:     &model.FeeUpdateRequest{},
			errCode: constant.ErrInvalidFeeValue,
		},
		{
			name:    "error: sub admin",
			session: &model.Session{UserID: 2, Role: constant.RoleSubAdmin},
			feeID:   1,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(5.0)},
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: unknown fee",
			session: admin,
			feeID:   9,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(5.0)},
			mockCall: func(f fields) {
				f.feeAPI.On("List", mock.Anything).Return(fees, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name:    "error: backend update fails",
			session: admin,
			feeID:   1,
			req:     &model.FeeUpdateRequest{FeeValue: ptr(5.0)},
			mockCall: func(f fields) {
				f.feeAPI.On("List", mock.Anything).Return(fees, nil).Once()
				f.feeAPI.On("Update", mock.Anything, mock.Anything).Return(errors.New("500")).Once()
			},
			errCode: constant.ErrUpstream,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				feeAPI:    marketplacemocks.NewFeeAPI(t),
				auditRepo: auditmocks.NewAuditRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := appfee.NewFeeApp(f.feeAPI, f.auditRepo).Update(context.Background(), tt.session, tt.feeID, tt.req)
			if tt.want == nil {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeeApp_List(t *testing.T) {
	api := marketplacemocks.NewFeeAPI(t)
	api.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()

	_, err := appfee.NewFeeApp(api, auditmocks.NewAuditRepository(t)).List(context.Background())
	assert.True(t, cerr.IsType(err, constant.ErrUpstream))
}
