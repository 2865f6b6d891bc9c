package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appdashboard "github.com/muhammadheryan/ev-admin/application/dashboard"
	"github.com/muhammadheryan/ev-admin/cmd/config"
	"github.com/muhammadheryan/ev-admin/constant"
	redismocks "github.com/muhammadheryan/ev-admin/mocks/repository/redis"
	marketplacemocks "github.com/muhammadheryan/ev-admin/mocks/thirdparty/marketplace"
	"github.com/muhammadheryan/ev-admin/model"
	cerr "github.com/muhammadheryan/ev-admin/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	productAPI   *marketplacemocks.ProductAPI
	userAPI      *marketplacemocks.UserAPI
	orderAPI     *marketplacemocks.OrderAPI
	paymentAPI   *marketplacemocks.PaymentAPI
	communityAPI *marketplacemocks.CommunityAPI
	cache        *redismocks.RedisRepository
}

func newFields(t *testing.T) fields {
	return fields{
		productAPI:   marketplacemocks.NewProductAPI(t),
		userAPI:      marketplacemocks.NewUserAPI(t),
		orderAPI:     marketplacemocks.NewOrderAPI(t),
		paymentAPI:   marketplacemocks.NewPaymentAPI(t),
		communityAPI: marketplacemocks.NewCommunityAPI(t),
		cache:        redismocks.NewRedisRepository(t),
	}
}

func (f fields) app() appdashboard.DashboardApp {
	cfg := &config.Config{Cache: config.CacheConfig{ProductMaxAge: 5 * time.Minute}}
	return appdashboard.NewDashboardApp(cfg, f.productAPI, f.userAPI, f.orderAPI, f.paymentAPI, f.communityAPI, f.cache)
}

func day(d int) model.FlexTime {
	return model.NewFlexTime(time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC))
}

var products = []model.Product{
	{ProductID: 1, SellerID: 7, Title: "VinFast VF8", Brand: "VinFast", Status: constant.ProductStatusActive, ProductType: constant.ProductTypeVehicle, CreatedDate: day(1)},
	{ProductID: 2, SellerID: 8, Title: "Pin LFP 60kWh", Brand: "CATL", Status: constant.ProductStatusPending, ProductType: constant.ProductTypeBattery, CreatedDate: day(2)},
	{ProductID: 3, SellerID: 7, Title: "VinFast VF e34", Brand: "VinFast", Status: constant.ProductStatusReserved, ProductType: constant.ProductTypeVehicle, CreatedDate: day(3)},
}

var users = []model.User{
	{UserID: 7, FullName: "Trần Thị B", Email: "b@evmarket.vn"},
	{UserID: 8, FullName: "Lê Văn C", Email: "c@evmarket.vn"},
}

func TestDashboardApp_Overview(t *testing.T) {
	f := newFields(t)
	f.productAPI.On("List", mock.Anything).Return(products, nil).Once()
	f.cache.On("SaveSnapshot", mock.Anything, constant.CacheKeyProducts, mock.Anything).Return(nil).Once()

	f.userAPI.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()
	f.cache.
		On("LoadSnapshot", mock.Anything, constant.CacheKeyUsers, mock.AnythingOfType("*[]model.User")).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*[]model.User) = users
		}).
		Return(time.Now().Add(-time.Hour), true, nil).
		Once()

	f.orderAPI.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()
	f.cache.On("LoadSnapshot", mock.Anything, constant.CacheKeyOrders, mock.Anything).Return(time.Time{}, false, nil).Once()

	f.cache.
		On("SaveSnapshot", mock.Anything, constant.CacheKeyProcessedListings, mock.MatchedBy(func(l []model.Listing) bool {
			return len(l) == 3
		})).
		Return(nil).
		Once()

	got := f.app().Overview(context.Background())

	assert.Equal(t, map[string]model.DataSource{
		appdashboard.SourceProducts: model.SourceRemote,
		appdashboard.SourceUsers:    model.SourceCache,
		appdashboard.SourceOrders:   model.SourceNone,
	}, got.Sources)
	assert.Len(t, got.Warnings, 2)
	require.Len(t, got.Listings, 3)
	assert.Equal(t, int64(2), got.Listings[0].ProductID, "pending listing comes first")
	assert.Equal(t, "Lê Văn C", got.Listings[0].SellerName)
	assert.Equal(t, 3, got.Stats.TotalListings)
	assert.Empty(t, got.Orders)
}

func TestDashboardApp_Overview_NothingAvailable(t *testing.T) {
	f := newFields(t)
	f.productAPI.On("List", mock.Anything).Return(nil, errors.New("down")).Once()
	f.userAPI.On("List", mock.Anything).Return(nil, errors.New("down")).Once()
	f.orderAPI.On("List", mock.Anything).Return(nil, errors.New("down")).Once()
	f.cache.On("LoadSnapshot", mock.Anything, mock.Anything, mock.Anything).Return(time.Time{}, false, nil).Times(3)

	got := f.app().Overview(context.Background())

	assert.Empty(t, got.Listings)
	assert.Len(t, got.Warnings, 3)
	assert.Equal(t, model.SourceNone, got.Sources[appdashboard.SourceProducts])
}

func TestDashboardApp_Listings(t *testing.T) {
	tests := []struct {
		name    string
		filter  *model.ListingFilter
		wantIDs []int64
	}{
		{name: "no filter", filter: nil, wantIDs: []int64{2, 3, 1}},
		{name: "by seller name", filter: &model.ListingFilter{Query: "trần"}, wantIDs: []int64{3, 1}},
		{name: "by product type", filter: &model.ListingFilter{ProductType: "battery"}, wantIDs: []int64{2}},
		{name: "by display status", filter: &model.ListingFilter{Status: "sold"}, wantIDs: []int64{3}},
		{name: "by brand and status", filter: &model.ListingFilter{Query: "vinfast", Status: "active"}, wantIDs: []int64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.productAPI.On("List", mock.Anything).Return(products, nil).Once()
			f.userAPI.On("List", mock.Anything).Return(users, nil).Once()
			f.orderAPI.On("List", mock.Anything).
				Return([]model.Order{{OrderID: 10, ProductID: 3, BuyerID: 8, Status: "Completed", CreatedDate: day(4)}}, nil).Once()
			f.cache.On("SaveSnapshot", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(4)

			got := f.app().Listings(context.Background(), tt.filter)

			ids := make([]int64, 0, len(got.Listings))
			for _, l := range got.Listings {
				ids = append(ids, l.ProductID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Empty(t, got.Warnings)
		})
	}
}

func TestDashboardApp_Orders(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, ProductID: 5, BuyerID: 9, Status: "Pending", CreatedDate: day(1)},
		{OrderID: 2, ProductID: 5, BuyerID: 9, Status: "Completed", CreatedDate: day(2)},
		{OrderID: 3, ProductID: 6, BuyerID: 9, Status: "Cancelled", CreatedDate: day(3)},
		{OrderID: 3, ProductID: 6, BuyerID: 9, Status: "Cancelled", CreatedDate: day(3)},
	}
	tests := []struct {
		name    string
		filter  *model.OrderFilter
		wantIDs []int64
	}{
		{name: "deduplicated", filter: nil, wantIDs: []int64{3, 2}},
		{name: "by status", filter: &model.OrderFilter{Status: "COMPLETED"}, wantIDs: []int64{2}},
		{name: "by product", filter: &model.OrderFilter{ProductID: 6}, wantIDs: []int64{3}},
		{name: "by buyer", filter: &model.OrderFilter{BuyerID: 1}, wantIDs: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.orderAPI.On("List", mock.Anything).Return(orders, nil).Once()
			f.cache.On("SaveSnapshot", mock.Anything, constant.CacheKeyOrders, mock.Anything).Return(nil).Once()

			got := f.app().Orders(context.Background(), tt.filter)

			ids := make([]int64, 0, len(got.Orders))
			for _, o := range got.Orders {
				ids = append(ids, o.OrderID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, model.SourceRemote, got.Sources[appdashboard.SourceOrders])
		})
	}
}

func TestDashboardApp_OrderDetail(t *testing.T) {
	tests := []struct {
		name     string
		orderID  int64
		mockCall func(f fields)
		check    func(t *testing.T, got *model.OrderDetail)
		errCode  constant.ErrorType
	}{
		{
			name:    "success: product failure leaves product empty",
			orderID: 10,
			mockCall: func(f fields) {
				f.orderAPI.On("Get", mock.Anything, int64(10)).Return(&model.Order{OrderID: 10, ProductID: 5}, nil).Once()
				f.productAPI.On("Get", mock.Anything, int64(5)).Return(nil, errors.New("timeout")).Once()
				f.paymentAPI.On("ListByOrder", mock.Anything, int64(10)).
					Return([]model.Payment{{PaymentID: 1, OrderID: 10, Amount: 5000000}}, nil).Once()
			},
			check: func(t *testing.T, got *model.OrderDetail) {
				assert.Nil(t, got.Product)
				assert.Len(t, got.Payments, 1)
			},
		},
		{
			name:    "success: payments failure leaves empty list, seller filled from product",
			orderID: 10,
			mockCall: func(f fields) {
				f.orderAPI.On("Get", mock.Anything, int64(10)).Return(&model.Order{OrderID: 10, ProductID: 5}, nil).Once()
				f.productAPI.On("Get", mock.Anything, int64(5)).Return(&model.Product{ProductID: 5, SellerID: 7}, nil).Once()
				f.paymentAPI.On("ListByOrder", mock.Anything, int64(10)).Return(nil, errors.New("no route")).Once()
			},
			check: func(t *testing.T, got *model.OrderDetail) {
				assert.NotNil(t, got.Product)
				assert.NotNil(t, got.Payments)
				assert.Empty(t, got.Payments)
				assert.Equal(t, int64(7), got.Order.SellerID)
			},
		},
		{
			name:    "error: order lookup fails",
			orderID: 10,
			mockCall: func(f fields) {
				f.orderAPI.On("Get", mock.Anything, int64(10)).Return(nil, errors.New("timeout")).Once()
			},
			errCode: constant.ErrUpstream,
		},
		{
			name:    "error: invalid id",
			orderID: 0,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().OrderDetail(context.Background(), tt.orderID)
			if tt.check == nil {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestDashboardApp_ActiveTab(t *testing.T) {
	f := newFields(t)
	f.cache.On("Get", mock.Anything, "admin_active_tab:1").Return("fees", nil).Once()
	f.cache.On("Get", mock.Anything, "admin_active_tab:2").Return("garbage", nil).Once()
	f.cache.On("Get", mock.Anything, "admin_active_tab:3").Return("", errors.New("redis down")).Once()
	f.cache.On("SetWithTTL", mock.Anything, "admin_active_tab:1", "inspections", time.Duration(0)).Return(nil).Once()

	app := f.app()
	assert.Equal(t, "fees", app.ActiveTab(context.Background(), 1))
	assert.Equal(t, constant.DefaultActiveTab, app.ActiveTab(context.Background(), 2))
	assert.Equal(t, constant.DefaultActiveTab, app.ActiveTab(context.Background(), 3))

	assert.NoError(t, app.SetActiveTab(context.Background(), 1, &model.ActiveTabRequest{Tab: "inspections"}))
	assert.True(t, cerr.IsType(app.SetActiveTab(context.Background(), 1, &model.ActiveTabRequest{Tab: "settings"}), constant.ErrInvalidRequest))
}

func TestDashboardApp_InvalidateCache(t *testing.T) {
	f := newFields(t)
	f.cache.
		On("Delete", mock.Anything,
			constant.CacheKeyProducts,
			constant.CacheKeyUsers,
			constant.CacheKeyOrders,
			constant.CacheKeyProcessedListings,
			constant.CacheKeyTimestamp).
		Return(nil).
		Once()

	assert.NoError(t, f.app().InvalidateCache(context.Background()))
}

func TestDashboardApp_Community(t *testing.T) {
	f := newFields(t)
	f.communityAPI.On("Categories", mock.Anything).Return(nil, nil).Once()
	f.communityAPI.On("ReviewsByProduct", mock.Anything, int64(5)).Return(nil, errors.New("down")).Once()

	categories, err := f.app().Categories(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, categories)

	_, err = f.app().Reviews(context.Background(), 5)
	assert.True(t, cerr.IsType(err, constant.ErrUpstream))
}
