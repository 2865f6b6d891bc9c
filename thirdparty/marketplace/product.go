package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
)

type ProductAPI interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64, reason string) error
	Verify(ctx context.Context, id int64) error
	AdminUpdate(ctx context.Context, id int64, req *model.ProductUpdate) error
	UploadImages(ctx context.Context, id int64, files []model.ImageFile) ([]model.ProductImage, error)
	ListImages(ctx context.Context, id int64) ([]model.ProductImage, error)
}

var verifiedBody = map[string]string{"verificationStatus": constant.VerificationVerified}

// verifyCapability lists the shapes the verify transition has had on the backend.
var verifyCapability = Capability{
	Name: "product.verify",
	Candidates: []Endpoint{
		{Method: http.MethodPut, Path: "/api/Product/verify/%d"},
		{Method: http.MethodPut, Path: "/api/Product/%d/verification", Body: verifiedBody},
		{Method: http.MethodPut, Path: "/api/Product/admin/%d", Body: verifiedBody},
	},
}

type productAPI struct {
	client *Client
}

func NewProductAPI(client *Client) ProductAPI {
	return &productAPI{client: client}
}

func (p *productAPI) List(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := p.client.do(ctx, http.MethodGet, "/api/Product", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *productAPI) Get(ctx context.Context, id int64) (*model.Product, error) {
	var out model.Product
	if err := p.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Product/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *productAPI) Approve(ctx context.Context, id int64) error {
	return p.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/Product/approve/%d", id), nil, nil)
}

func (p *productAPI) Reject(ctx context.Context, id int64, reason string) error {
	body := model.RejectRequest{Reason: reason}
	return p.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/Product/reject/%d", id), body, nil)
}

func (p *productAPI) Verify(ctx context.Context, id int64) error {
	return p.client.call(ctx, verifyCapability, id, nil)
}

func (p *productAPI) AdminUpdate(ctx context.Context, id int64, req *model.ProductUpdate) error {
	return p.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/Product/admin/%d", id), req, nil)
}

func (p *productAPI) UploadImages(ctx context.Context, id int64, files []model.ImageFile) ([]model.ProductImage, error) {
	var out []model.ProductImage
	fields := map[string]string{"productId": strconv.FormatInt(id, 10)}
	if err := p.client.upload(ctx, "/api/ProductImage/multiple", fields, "images", files, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *productAPI) ListImages(ctx context.Context, id int64) ([]model.ProductImage, error) {
	var out []model.ProductImage
	if err := p.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/ProductImage/product/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
