package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/ev-admin/model"
)

type FeeAPI interface {
	List(ctx context.Context) ([]model.FeeSetting, error)
	Update(ctx context.Context, fee *model.FeeSetting) error
}

type feeAPI struct {
	client *Client
}

func NewFeeAPI(client *Client) FeeAPI {
	return &feeAPI{client: client}
}

func (f *feeAPI) List(ctx context.Context) ([]model.FeeSetting, error) {
	var out []model.FeeSetting
	if err := f.client.do(ctx, http.MethodGet, "/api/FeeSetting", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *feeAPI) Update(ctx context.Context, fee *model.FeeSetting) error {
	return f.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/FeeSetting/%d", fee.FeeID), fee, nil)
}
