package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"github.com/muhammadheryan/ev-admin/model"
)

// CommunityAPI covers the read-only side endpoints the moderators browse.
type CommunityAPI interface {
	Categories(ctx context.Context) ([]model.Category, error)
	FavoritesByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
	ChatsByUser(ctx context.Context, userID int64) ([]model.Chat, error)
	MessagesByChat(ctx context.Context, chatID int64) ([]model.Message, error)
	ReviewsByProduct(ctx context.Context, productID int64) ([]model.Review, error)
}

type communityAPI struct {
	client *Client
}

func NewCommunityAPI(client *Client) CommunityAPI {
	return &communityAPI{client: client}
}

func (c *communityAPI) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.client.do(ctx, http.MethodGet, "/api/Category", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *communityAPI) FavoritesByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	var out []model.Favorite
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Favorite/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *communityAPI) ChatsByUser(ctx context.Context, userID int64) ([]model.Chat, error) {
	var out []model.Chat
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Chat/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *communityAPI) MessagesByChat(ctx context.Context, chatID int64) ([]model.Message, error) {
	var out []model.Message
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Message/chat/%d", chatID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *communityAPI) ReviewsByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	var out []model.Review
	if err := c.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Review/product/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
