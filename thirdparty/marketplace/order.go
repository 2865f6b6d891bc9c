package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/ev-admin/model"
)

type OrderAPI interface {
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
}

type PaymentAPI interface {
	ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
}

var paymentsByOrderCapability = Capability{
	Name: "payment.byOrder",
	Candidates: []Endpoint{
		{Method: http.MethodGet, Path: "/api/Payment/order/%d"},
		{Method: http.MethodGet, Path: "/api/Payment/by-order/%d"},
		{Method: http.MethodGet, Path: "/api/Payment?orderId=%d"},
		{Method: http.MethodGet, Path: "/api/Payment/%d/payments"},
	},
}

type orderAPI struct {
	client *Client
}

func NewOrderAPI(client *Client) OrderAPI {
	return &orderAPI{client: client}
}

func (o *orderAPI) List(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	if err := o.client.do(ctx, http.MethodGet, "/api/Order", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orderAPI) Get(ctx context.Context, id int64) (*model.Order, error) {
	var out model.Order
	if err := o.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Order/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type paymentAPI struct {
	client *Client
}

func NewPaymentAPI(client *Client) PaymentAPI {
	return &paymentAPI{client: client}
}

func (p *paymentAPI) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	var out []model.Payment
	if err := p.client.call(ctx, paymentsByOrderCapability, orderID, &out); err != nil {
		return nil, err
	}
	return out, nil
}
