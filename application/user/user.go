package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/ev-admin/application/fallback"
	"github.com/muhammadheryan/ev-admin/application/notification"
	"github.com/muhammadheryan/ev-admin/cmd/config"
	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	auditrepo "github.com/muhammadheryan/ev-admin/repository/audit"
	redisrepo "github.com/muhammadheryan/ev-admin/repository/redis"
	"github.com/muhammadheryan/ev-admin/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	"github.com/muhammadheryan/ev-admin/utils/optimistic"
	validatorx "github.com/muhammadheryan/ev-admin/utils/validator"
	"go.uber.org/zap"
)

const (
	ActionStatus = "user.status"
	ActionRole   = "user.role"

	TargetUser = "user"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Session, error)
	Logout(ctx context.Context, tokenString string) error
	ListUsers(ctx context.Context) *model.UserList
	ChangeStatus(ctx context.Context, admin *model.Session, userID int64, req *model.ChangeStatusRequest) (*model.User, error)
	ChangeRole(ctx context.Context, admin *model.Session, userID int64, req *model.ChangeRoleRequest) (*model.User, error)
}

type UserAppImpl struct {
	config     *config.Config
	userAPI    marketplace.UserAPI
	redisRepo  redisrepo.Repository
	auditRepo  auditrepo.AuditRepository
	dispatcher notification.Dispatcher
}

func NewUserApp(config *config.Config, userAPI marketplace.UserAPI, redisRepo redisrepo.Repository, auditRepo auditrepo.AuditRepository, dispatcher notification.Dispatcher) UserApp {
	return &UserAppImpl{
		config:     config,
		userAPI:    userAPI,
		redisRepo:  redisRepo,
		auditRepo:  auditRepo,
		dispatcher: dispatcher,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	login, err := s.userAPI.Login(ctx, req)
	if err != nil {
		if marketplace.IsCredentialRejected(err) {
			return nil, errors.SetCustomError(constant.ErrInvalidCredential)
		}
		logger.Error("[Login] err userAPI.Login", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUpstream)
	}

	// only console roles may enter, the backend is not consistent about casing
	role := strings.ToLower(strings.TrimSpace(login.User.Role))
	if role != constant.RoleAdmin && role != constant.RoleSubAdmin {
		logger.Info("[Login] role not allowed", zap.Int64("user_id", login.User.UserID), zap.String("role", login.User.Role))
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	// Generate JWT token
	token, jti, err := s.generateJWT(login.User.UserID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	session := &model.Session{
		UserID:       login.User.UserID,
		Email:        login.User.Email,
		Role:         role,
		BackendToken: login.Token,
	}
	err = s.redisRepo.SetSession(ctx, jti, session, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		UserID:   login.User.UserID,
		FullName: login.User.FullName,
		Email:    login.User.Email,
		Role:     role,
		Token:    token,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Session, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	// Extract userID from Subject
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	// Check Redis session key
	session, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil || session == nil {
		return nil, fmt.Errorf("invalid or expired session")
	}

	// Compare Redis userID with claims.Subject
	if session.UserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	return session, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) *model.UserList {
	users, outcome := fallback.Fetch(ctx, s.redisRepo, constant.CacheKeyUsers, 0, s.userAPI.List)
	if users == nil {
		users = []model.User{}
	}
	return &model.UserList{Users: users, Source: outcome.Source, Warning: outcome.Warning}
}

func (s *UserAppImpl) ChangeStatus(ctx context.Context, admin *model.Session, userID int64, req *model.ChangeStatusRequest) (*model.User, error) {
	if userID <= 0 || req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Info("[ChangeStatus] invalid request", zap.Int64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}
	if admin == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if admin.UserID == userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	updated := &model.User{UserID: userID}
	err := optimistic.Run(ctx, s.usersMutation(
		func(u *model.User) {
			u.Status = req.Status
			u.ReasonCode = req.ReasonCode
			u.ReasonNote = req.ReasonNote
			*updated = *u
		},
		func(ctx context.Context) error {
			return s.userAPI.UpdateStatus(ctx, userID, req)
		},
		userID,
	))
	if err != nil {
		logger.Error("[ChangeStatus] err userAPI.UpdateStatus", zap.Int64("user_id", userID), zap.String("error", err.Error()))
		return nil, upstreamError(err)
	}
	updated.Status = req.Status
	updated.ReasonCode = req.ReasonCode
	updated.ReasonNote = req.ReasonNote

	reason := req.ReasonCode
	if req.ReasonNote != "" {
		reason = fmt.Sprintf("%s: %s", req.ReasonCode, req.ReasonNote)
	}
	s.dispatcher.AccountStatusChanged(ctx, userID, req.Status, reason)
	s.record(ctx, admin, ActionStatus, userID, req.Status+" "+reason)

	return updated, nil
}

func (s *UserAppImpl) ChangeRole(ctx context.Context, admin *model.Session, userID int64, req *model.ChangeRoleRequest) (*model.User, error) {
	if !admin.IsAdmin() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if userID <= 0 || req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if admin.UserID == userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	updated := &model.User{UserID: userID}
	err := optimistic.Run(ctx, s.usersMutation(
		func(u *model.User) {
			u.Role = req.Role
			*updated = *u
		},
		func(ctx context.Context) error {
			return s.userAPI.UpdateRole(ctx, userID, req.Role)
		},
		userID,
	))
	if err != nil {
		logger.Error("[ChangeRole] err userAPI.UpdateRole", zap.Int64("user_id", userID), zap.String("error", err.Error()))
		return nil, upstreamError(err)
	}
	updated.Role = req.Role

	s.record(ctx, admin, ActionRole, userID, req.Role)
	return updated, nil
}

// usersMutation applies change to userID inside the cached users snapshot.
func (s *UserAppImpl) usersMutation(change func(u *model.User), commit func(ctx context.Context) error, userID int64) optimistic.Mutation[[]model.User] {
	return optimistic.Mutation[[]model.User]{
		Load: func(ctx context.Context) ([]model.User, error) {
			var users []model.User
			_, ok, err := s.redisRepo.LoadSnapshot(ctx, constant.CacheKeyUsers, &users)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("no cached users")
			}
			return users, nil
		},
		Store: func(ctx context.Context, users []model.User) error {
			return s.redisRepo.SaveSnapshot(ctx, constant.CacheKeyUsers, users)
		},
		Apply: func(users []model.User) []model.User {
			next := make([]model.User, len(users))
			copy(next, users)
			for i := range next {
				if next[i].UserID == userID {
					change(&next[i])
				}
			}
			return next
		},
		Commit: commit,
	}
}

func (s *UserAppImpl) record(ctx context.Context, admin *model.Session, action string, userID int64, detail string) {
	entry := &model.AuditEntry{
		ActorID:    admin.UserID,
		ActorEmail: admin.Email,
		Action:     action,
		TargetType: TargetUser,
		TargetID:   userID,
		Detail:     detail,
	}
	if _, err := s.auditRepo.Insert(ctx, entry); err != nil {
		logger.Error("[record] err auditRepo.Insert", zap.String("action", action), zap.Int64("user_id", userID), zap.String("error", err.Error()))
	}
}

func (s *UserAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	// Extract claims
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	// Extract JTI (Token ID)
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the admin
func (s *UserAppImpl) generateJWT(userID int64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func upstreamError(err error) error {
	if marketplace.IsNotFound(err) {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return errors.SetCustomError(constant.ErrUpstream)
}
