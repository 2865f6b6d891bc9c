package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/ev-admin/model"
)

type UserAPI interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.BackendLogin, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	UpdateStatus(ctx context.Context, id int64, req *model.ChangeStatusRequest) error
	UpdateRole(ctx context.Context, id int64, role string) error
}

type userAPI struct {
	client *Client
}

func NewUserAPI(client *Client) UserAPI {
	return &userAPI{client: client}
}

func (u *userAPI) Login(ctx context.Context, req *model.LoginRequest) (*model.BackendLogin, error) {
	var out model.BackendLogin
	if err := u.client.do(ctx, http.MethodPost, "/api/User/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *userAPI) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := u.client.do(ctx, http.MethodGet, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *userAPI) Get(ctx context.Context, id int64) (*model.User, error) {
	var out model.User
	if err := u.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/User/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *userAPI) UpdateStatus(ctx context.Context, id int64, req *model.ChangeStatusRequest) error {
	return u.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/status", id), req, nil)
}

func (u *userAPI) UpdateRole(ctx context.Context, id int64, role string) error {
	body := model.ChangeRoleRequest{Role: role}
	return u.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", id), body, nil)
}
