package context

import (
	"context"

	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
)

func WithSession(ctx context.Context, session *model.Session) context.Context {
	ctx = context.WithValue(ctx, constant.SessionKey, session)
	if session != nil && session.BackendToken != "" {
		ctx = WithBackendToken(ctx, session.BackendToken)
	}
	return ctx
}

func GetSession(ctx context.Context) (*model.Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return nil, false
	}
	s, ok := v.(*model.Session)
	return s, ok && s != nil
}

// WithBackendToken sets the bearer token forwarded to the marketplace backend.
func WithBackendToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constant.BackendTokenKey, token)
}

func GetBackendToken(ctx context.Context) string {
	v, _ := ctx.Value(constant.BackendTokenKey).(string)
	return v
}
