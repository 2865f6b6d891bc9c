package user_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appuser "github.com/muhammadheryan/ev-admin/application/user"
	"github.com/muhammadheryan/ev-admin/cmd/config"
	"github.com/muhammadheryan/ev-admin/constant"
	notificationmocks "github.com/muhammadheryan/ev-admin/mocks/application/notification"
	auditmocks "github.com/muhammadheryan/ev-admin/mocks/repository/audit"
	redismocks "github.com/muhammadheryan/ev-admin/mocks/repository/redis"
	marketplacemocks "github.com/muhammadheryan/ev-admin/mocks/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/model"
	"github.com/muhammadheryan/ev-admin/thirdparty/marketplace"
	cerr "github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret-key-for-jwt-signing"

type fields struct {
	config     *config.Config
	userAPI    *marketplacemocks.UserAPI
	redisRepo  *redismocks.RedisRepository
	auditRepo  *auditmocks.AuditRepository
	dispatcher *notificationmocks.Dispatcher
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:      testSecret,
				JWTExpiration:  time.Hour,
				SessionExpTime: time.Hour,
			},
		},
		userAPI:    marketplacemocks.NewUserAPI(t),
		redisRepo:  redismocks.NewRedisRepository(t),
		auditRepo:  auditmocks.NewAuditRepository(t),
		dispatcher: notificationmocks.NewDispatcher(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.config, f.userAPI, f.redisRepo, f.auditRepo, f.dispatcher)
}

func checkErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func signToken(t *testing.T, secret, subject, jti string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ID:        jti,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestUserApp_Login(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	validReq := &model.LoginRequest{Email: "admin@evmarket.vn", Password: "password123"}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: admin login stores session",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(&model.BackendLogin{
						Token: "backend-token",
						User:  model.User{UserID: 1, FullName: "Quản trị", Email: "admin@evmarket.vn", Role: constant.RoleAdmin},
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(s *model.Session) bool {
						return s.UserID == 1 && s.Role == constant.RoleAdmin && s.BackendToken == "backend-token"
					}), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{UserID: 1, FullName: "Quản trị", Email: "admin@evmarket.vn", Role: constant.RoleAdmin},
		},
		{
			name: "success: sub admin may enter",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(&model.BackendLogin{Token: "t", User: model.User{UserID: 2, Role: constant.RoleSubAdmin}}, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), mock.Anything, time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{UserID: 2, Role: constant.RoleSubAdmin},
		},
		{
			name: "success: role casing from backend is normalized",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(&model.BackendLogin{Token: "t", User: model.User{UserID: 4, Role: " Admin"}}, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(s *model.Session) bool {
						return s.UserID == 4 && s.Role == constant.RoleAdmin && s.IsAdmin()
					}), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{UserID: 4, Role: constant.RoleAdmin},
		},
		{
			name: "success: PascalCase sub admin may enter",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(&model.BackendLogin{Token: "t", User: model.User{UserID: 5, Role: "Sub_Admin"}}, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), mock.Anything, time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{UserID: 5, Role: constant.RoleSubAdmin},
		},
		{
			name:    "error: malformed email",
			args:    args{ctx: context.Background(), req: &model.LoginRequest{Email: "admin", Password: "x"}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: backend rejects credentials",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(nil, &marketplace.APIError{StatusCode: http.StatusUnauthorized}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredential,
		},
		{
			name: "error: backend unavailable",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(nil, errors.New("dial tcp: connection refused")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
		{
			name: "error: regular user cannot enter",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(&model.BackendLogin{Token: "t", User: model.User{UserID: 3, Role: constant.RoleUser}}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: redis SetSession fails",
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.userAPI.
					On("Login", mock.Anything, validReq).
					Return(&model.BackendLogin{Token: "t", User: model.User{UserID: 1, Role: constant.RoleAdmin}}, nil).
					Once()
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), mock.Anything, time.Hour).
					Return(errors.New("redis error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}

			if got.UserID != tt.want.UserID || got.Email != tt.want.Email || got.Role != tt.want.Role || got.FullName != tt.want.FullName {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	session := &model.Session{UserID: 1, Role: constant.RoleAdmin, BackendToken: "backend-token"}
	tests := []struct {
		name        string
		tokenString string
		mockCall    func(f fields)
		want        *model.Session
		wantErr     bool
	}{
		{
			name:        "success: valid token",
			tokenString: signToken(t, testSecret, "1", "jti-1"),
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, "jti-1").Return(session, nil).Once()
			},
			want: session,
		},
		{
			name:        "error: invalid token format",
			tokenString: "invalid.token.string",
			wantErr:     true,
		},
		{
			name:        "error: signed with another secret",
			tokenString: signToken(t, "other-secret", "1", "jti-1"),
			wantErr:     true,
		},
		{
			name:        "error: token without jti",
			tokenString: signToken(t, testSecret, "1", ""),
			wantErr:     true,
		},
		{
			name:        "error: session not found in redis",
			tokenString: signToken(t, testSecret, "1", "jti-2"),
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, "jti-2").Return(nil, errors.New("redis: nil")).Once()
			},
			wantErr: true,
		},
		{
			name:        "error: session belongs to another user",
			tokenString: signToken(t, testSecret, "9", "jti-1"),
			mockCall: func(f fields) {
				f.redisRepo.On("GetSession", mock.Anything, "jti-1").Return(session, nil).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ValidateToken(context.Background(), tt.tokenString)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ValidateToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	f := newFields(t)
	f.redisRepo.On("DeleteSession", mock.Anything, "jti-1").Return(nil).Once()

	if err := f.app().Logout(context.Background(), signToken(t, testSecret, "1", "jti-1")); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	checkErrCode(t, f.app().Logout(context.Background(), "garbage"), constant.ErrUnauthorize)
}

func TestUserApp_ListUsers(t *testing.T) {
	f := newFields(t)
	f.userAPI.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()
	f.redisRepo.
		On("LoadSnapshot", mock.Anything, constant.CacheKeyUsers, mock.AnythingOfType("*[]model.User")).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*[]model.User) = []model.User{{UserID: 4}}
		}).
		Return(time.Now().Add(-24*time.Hour), true, nil).
		Once()

	got := f.app().ListUsers(context.Background())
	if got.Source != model.SourceCache || len(got.Users) != 1 || got.Warning == "" {
		t.Fatalf("ListUsers() = %+v, want one cached user with a warning", got)
	}
}

func cachedUsers(f fields, users []model.User) {
	f.redisRepo.
		On("LoadSnapshot", mock.Anything, constant.CacheKeyUsers, mock.AnythingOfType("*[]model.User")).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*[]model.User) = users
		}).
		Return(time.Now(), true, nil).
		Once()
}

func TestUserApp_ChangeStatus(t *testing.T) {
	admin := &model.Session{UserID: 1, Email: "admin@evmarket.vn", Role: constant.RoleSubAdmin}
	users := []model.User{
		{UserID: 1, Status: constant.UserStatusActive},
		{UserID: 7, FullName: "Nguyễn Văn A", Status: constant.UserStatusActive},
	}
	type args struct {
		userID int64
		req    *model.ChangeStatusRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.User
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: suspend with optimistic snapshot, notify and audit",
			args: args{userID: 7, req: &model.ChangeStatusRequest{Status: constant.UserStatusSuspended, ReasonCode: "spam", ReasonNote: "đăng tin rác"}},
			mockCall: func(f fields) {
				cachedUsers(f, users)
				f.redisRepo.
					On("SaveSnapshot", mock.Anything, constant.CacheKeyUsers, mock.MatchedBy(func(u []model.User) bool {
						return u[1].Status == constant.UserStatusSuspended
					})).
					Return(nil).
					Once()
				f.userAPI.On("UpdateStatus", mock.Anything, int64(7), mock.AnythingOfType("*model.ChangeStatusRequest")).Return(nil).Once()
				f.dispatcher.On("AccountStatusChanged", mock.Anything, int64(7), constant.UserStatusSuspended, "spam: đăng tin rác").Return(true).Once()
				f.auditRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(e *model.AuditEntry) bool {
						return e.Action == appuser.ActionStatus && e.TargetID == 7 && e.ActorID == 1
					})).
					Return(int64(1), nil).
					Once()
			},
			want: &model.User{UserID: 7, FullName: "Nguyễn Văn A", Status: constant.UserStatusSuspended, ReasonCode: "spam", ReasonNote: "đăng tin rác"},
		},
		{
			name: "error: backend failure restores the snapshot",
			args: args{userID: 7, req: &model.ChangeStatusRequest{Status: constant.UserStatusDeleted, ReasonCode: "fraud"}},
			mockCall: func(f fields) {
				cachedUsers(f, users)
				f.redisRepo.
					On("SaveSnapshot", mock.Anything, constant.CacheKeyUsers, mock.MatchedBy(func(u []model.User) bool {
						return u[1].Status == constant.UserStatusDeleted
					})).
					Return(nil).
					Once()
				f.userAPI.On("UpdateStatus", mock.Anything, int64(7), mock.Anything).
					Return(&marketplace.APIError{StatusCode: http.StatusInternalServerError}).Once()
				f.redisRepo.
					On("SaveSnapshot", mock.Anything, constant.CacheKeyUsers, mock.MatchedBy(func(u []model.User) bool {
						return u[1].Status == constant.UserStatusActive
					})).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrUpstream,
		},
		{
			name:    "error: reason code required unless reactivating",
			args:    args{userID: 7, req: &model.ChangeStatusRequest{Status: constant.UserStatusSuspended}},
			wantErr: true,
			errCode: constant.ErrInvalidStatus,
		},
		{
			name:    "error: unknown status",
			args:    args{userID: 7, req: &model.ChangeStatusRequest{Status: "banned", ReasonCode: "x"}},
			wantErr: true,
			errCode: constant.ErrInvalidStatus,
		},
		{
			name:    "error: admins cannot change their own status",
			args:    args{userID: 1, req: &model.ChangeStatusRequest{Status: constant.UserStatusActive}},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ChangeStatus(context.Background(), admin, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ChangeStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}
			if *got != *tt.want {
				t.Fatalf("ChangeStatus() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_ChangeRole(t *testing.T) {
	tests := []struct {
		name     string
		admin    *model.Session
		userID   int64
		role     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: admin promotes user without cached snapshot",
			admin:  &model.Session{UserID: 1, Role: constant.RoleAdmin},
			userID: 7,
			role:   constant.RoleSubAdmin,
			mockCall: func(f fields) {
				f.redisRepo.On("LoadSnapshot", mock.Anything, constant.CacheKeyUsers, mock.Anything).Return(time.Time{}, false, nil).Once()
				f.userAPI.On("UpdateRole", mock.Anything, int64(7), constant.RoleSubAdmin).Return(nil).Once()
				f.auditRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
			},
		},
		{
			name:    "error: sub admin cannot change roles",
			admin:   &model.Session{UserID: 2, Role: constant.RoleSubAdmin},
			userID:  7,
			role:    constant.RoleAdmin,
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: unknown role",
			admin:   &model.Session{UserID: 1, Role: constant.RoleAdmin},
			userID:  7,
			role:    "owner",
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().ChangeRole(context.Background(), tt.admin, tt.userID, &model.ChangeRoleRequest{Role: tt.role})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ChangeRole() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}
			if got.UserID != tt.userID || got.Role != tt.role {
				t.Fatalf("ChangeRole() = %+v", got)
			}
		})
	}
}
