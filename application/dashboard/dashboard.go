package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/ev-admin/application/fallback"
	"github.com/muhammadheryan/ev-admin/application/reconcile"
	"github.com/muhammadheryan/ev-admin/cmd/config"
	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	redisrepo "github.com/muhammadheryan/ev-admin/repository/redis"
	"github.com/muhammadheryan/ev-admin/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	SourceProducts = "products"
	SourceUsers    = "users"
	SourceOrders   = "orders"
)

type DashboardApp interface {
	Overview(ctx context.Context) *model.DashboardView
	Listings(ctx context.Context, filter *model.ListingFilter) *model.ListingView
	Orders(ctx context.Context, filter *model.OrderFilter) *model.OrderView
	OrderDetail(ctx context.Context, orderID int64) (*model.OrderDetail, error)
	InvalidateCache(ctx context.Context) error

	ActiveTab(ctx context.Context, userID int64) string
	SetActiveTab(ctx context.Context, userID int64, req *model.ActiveTabRequest) error

	Categories(ctx context.Context) ([]model.Category, error)
	Favorites(ctx context.Context, userID int64) ([]model.Favorite, error)
	Chats(ctx context.Context, userID int64) ([]model.Chat, error)
	Messages(ctx context.Context, chatID int64) ([]model.Message, error)
	Reviews(ctx context.Context, productID int64) ([]model.Review, error)
}

type dashboardAppImpl struct {
	config       *config.Config
	productAPI   marketplace.ProductAPI
	userAPI      marketplace.UserAPI
	orderAPI     marketplace.OrderAPI
	paymentAPI   marketplace.PaymentAPI
	communityAPI marketplace.CommunityAPI
	cache        redisrepo.Repository
}

func NewDashboardApp(config *config.Config, productAPI marketplace.ProductAPI, userAPI marketplace.UserAPI, orderAPI marketplace.OrderAPI,
	paymentAPI marketplace.PaymentAPI, communityAPI marketplace.CommunityAPI, cache redisrepo.Repository) DashboardApp {
	return &dashboardAppImpl{
		config:       config,
		productAPI:   productAPI,
		userAPI:      userAPI,
		orderAPI:     orderAPI,
		paymentAPI:   paymentAPI,
		communityAPI: communityAPI,
		cache:        cache,
	}
}

// Overview loads the three collections concurrently, each falling back to its own
// snapshot, and reconciles them into listings, deduplicated orders and stats.
func (s *dashboardAppImpl) Overview(ctx context.Context) *model.DashboardView {
	var (
		products                      []model.Product
		users                         []model.User
		orders                        []model.Order
		productOut, userOut, orderOut fallback.Outcome
	)

	var g errgroup.Group
	g.Go(func() error {
		products, productOut = fallback.Fetch(ctx, s.cache, constant.CacheKeyProducts, s.productMaxAge(), s.productAPI.List)
		return nil
	})
	g.Go(func() error {
		users, userOut = fallback.Fetch(ctx, s.cache, constant.CacheKeyUsers, 0, s.userAPI.List)
		return nil
	})
	g.Go(func() error {
		orders, orderOut = fallback.Fetch(ctx, s.cache, constant.CacheKeyOrders, 0, s.orderAPI.List)
		return nil
	})
	_ = g.Wait()

	result := reconcile.Reconcile(products, orders, users)
	if productOut.Source != model.SourceNone {
		if err := s.cache.SaveSnapshot(ctx, constant.CacheKeyProcessedListings, result.Listings); err != nil {
			logger.Warn("[Overview] err cache.SaveSnapshot listings", zap.String("error", err.Error()))
		}
	}

	return &model.DashboardView{
		Listings: result.Listings,
		Orders:   result.Orders,
		Stats:    result.Stats,
		Sources: map[string]model.DataSource{
			SourceProducts: productOut.Source,
			SourceUsers:    userOut.Source,
			SourceOrders:   orderOut.Source,
		},
		Warnings: warnings(productOut, userOut, orderOut),
	}
}

func (s *dashboardAppImpl) Listings(ctx context.Context, filter *model.ListingFilter) *model.ListingView {
	view := s.Overview(ctx)
	if filter == nil {
		filter = &model.ListingFilter{}
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	listings := make([]model.Listing, 0, len(view.Listings))
	for _, l := range view.Listings {
		if filter.Status != "" && !strings.EqualFold(l.DisplayStatus, filter.Status) && !strings.EqualFold(l.Status, filter.Status) {
			continue
		}
		if filter.ProductType != "" && !strings.EqualFold(l.ProductType, filter.ProductType) {
			continue
		}
		if filter.VerificationStatus != "" && !strings.EqualFold(l.VerificationStatus, filter.VerificationStatus) {
			continue
		}
		if query != "" && !matches(query, l.Title, l.Brand, l.Model, l.SellerName) {
			continue
		}
		listings = append(listings, l)
	}

	return &model.ListingView{Listings: listings, Sources: view.Sources, Warnings: view.Warnings}
}

func (s *dashboardAppImpl) Orders(ctx context.Context, filter *model.OrderFilter) *model.OrderView {
	orders, outcome := fallback.Fetch(ctx, s.cache, constant.CacheKeyOrders, 0, s.orderAPI.List)
	if filter == nil {
		filter = &model.OrderFilter{}
	}

	deduped := reconcile.DedupOrders(orders)
	filtered := make([]model.Order, 0, len(deduped))
	for _, o := range deduped {
		if filter.Status != "" && reconcile.NormalizeStatus(o.Status) != reconcile.NormalizeStatus(filter.Status) {
			continue
		}
		if filter.ProductID != 0 && o.ProductID != filter.ProductID {
			continue
		}
		if filter.BuyerID != 0 && o.BuyerID != filter.BuyerID {
			continue
		}
		filtered = append(filtered, o)
	}

	return &model.OrderView{
		Orders:   filtered,
		Sources:  map[string]model.DataSource{SourceOrders: outcome.Source},
		Warnings: warnings(outcome),
	}
}

// OrderDetail joins an order with its product and payments. Product and payment
// failures only leave those parts empty.
func (s *dashboardAppImpl) OrderDetail(ctx context.Context, orderID int64) (*model.OrderDetail, error) {
	if orderID <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	order, err := s.orderAPI.Get(ctx, orderID)
	if err != nil {
		logger.Error("[OrderDetail] err orderAPI.Get", zap.Int64("order_id", orderID), zap.String("error", err.Error()))
		if marketplace.IsNotFound(err) {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		return nil, errors.SetCustomError(constant.ErrUpstream)
	}

	detail := &model.OrderDetail{Order: *order, Payments: []model.Payment{}}

	var g errgroup.Group
	if order.ProductID > 0 {
		g.Go(func() error {
			product, err := s.productAPI.Get(ctx, order.ProductID)
			if err != nil {
				logger.Warn("[OrderDetail] err productAPI.Get", zap.Int64("product_id", order.ProductID), zap.String("error", err.Error()))
				return nil
			}
			detail.Product = product
			return nil
		})
	}
	g.Go(func() error {
		payments, err := s.paymentAPI.ListByOrder(ctx, orderID)
		if err != nil {
			logger.Warn("[OrderDetail] err paymentAPI.ListByOrder", zap.Int64("order_id", orderID), zap.String("error", err.Error()))
			return nil
		}
		if payments != nil {
			detail.Payments = payments
		}
		return nil
	})
	_ = g.Wait()

	if detail.Order.SellerID == 0 && detail.Product != nil {
		detail.Order.SellerID = detail.Product.SellerID
	}
	return detail, nil
}

// InvalidateCache drops every dashboard snapshot so the next read goes remote.
func (s *dashboardAppImpl) InvalidateCache(ctx context.Context) error {
	err := s.cache.Delete(ctx,
		constant.CacheKeyProducts,
		constant.CacheKeyUsers,
		constant.CacheKeyOrders,
		constant.CacheKeyProcessedListings,
		constant.CacheKeyTimestamp,
	)
	if err != nil {
		logger.Error("[InvalidateCache] err cache.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *dashboardAppImpl) ActiveTab(ctx context.Context, userID int64) string {
	tab, err := s.cache.Get(ctx, activeTabKey(userID))
	if err != nil {
		logger.Warn("[ActiveTab] err cache.Get", zap.Int64("user_id", userID), zap.String("error", err.Error()))
		return constant.DefaultActiveTab
	}
	if !constant.ActiveTabs[tab] {
		return constant.DefaultActiveTab
	}
	return tab
}

func (s *dashboardAppImpl) SetActiveTab(ctx context.Context, userID int64, req *model.ActiveTabRequest) error {
	if req == nil || !constant.ActiveTabs[req.Tab] {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.cache.SetWithTTL(ctx, activeTabKey(userID), req.Tab, 0); err != nil {
		logger.Error("[SetActiveTab] err cache.SetWithTTL", zap.Int64("user_id", userID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *dashboardAppImpl) Categories(ctx context.Context) ([]model.Category, error) {
	return passThrough("Categories", 0, func() ([]model.Category, error) {
		return s.communityAPI.Categories(ctx)
	})
}

func (s *dashboardAppImpl) Favorites(ctx context.Context, userID int64) ([]model.Favorite, error) {
	return passThrough("Favorites", userID, func() ([]model.Favorite, error) {
		return s.communityAPI.FavoritesByUser(ctx, userID)
	})
}

func (s *dashboardAppImpl) Chats(ctx context.Context, userID int64) ([]model.Chat, error) {
	return passThrough("Chats", userID, func() ([]model.Chat, error) {
		return s.communityAPI.ChatsByUser(ctx, userID)
	})
}

func (s *dashboardAppImpl) Messages(ctx context.Context, chatID int64) ([]model.Message, error) {
	return passThrough("Messages", chatID, func() ([]model.Message, error) {
		return s.communityAPI.MessagesByChat(ctx, chatID)
	})
}

func (s *dashboardAppImpl) Reviews(ctx context.Context, productID int64) ([]model.Review, error) {
	return passThrough("Reviews", productID, func() ([]model.Review, error) {
		return s.communityAPI.ReviewsByProduct(ctx, productID)
	})
}

func (s *dashboardAppImpl) productMaxAge() time.Duration {
	if s.config == nil || s.config.Cache.ProductMaxAge <= 0 {
		return constant.DefaultProductCacheMaxAge
	}
	return s.config.Cache.ProductMaxAge
}

func passThrough[T any](method string, id int64, fetch func() ([]T, error)) ([]T, error) {
	items, err := fetch()
	if err != nil {
		logger.Error("["+method+"] err communityAPI", zap.Int64("id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrUpstream)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func warnings(outcomes ...fallback.Outcome) []string {
	var out []string
	for _, o := range outcomes {
		if o.Warning != "" {
			out = append(out, o.Warning)
		}
	}
	return out
}

func matches(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func activeTabKey(userID int64) string {
	return constant.CacheKeyActiveTab + ":" + strconv.FormatInt(userID, 10)
}
