package fallback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/ev-admin/application/fallback"
	"github.com/muhammadheryan/ev-admin/constant"
	redismocks "github.com/muhammadheryan/ev-admin/mocks/repository/redis"
	"github.com/muhammadheryan/ev-admin/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFetch(t *testing.T) {
	remote := []model.Product{{ProductID: 1}}
	cached := []model.Product{{ProductID: 2}}
	errRemote := errors.New("timeout")

	tests := []struct {
		name       string
		fetchErr   error
		maxAge     time.Duration
		mockCall   func(cache *redismocks.RedisRepository)
		want       []model.Product
		wantSource model.DataSource
		wantWarn   bool
	}{
		{
			name: "remote success overwrites snapshot",
			mockCall: func(cache *redismocks.RedisRepository) {
				cache.On("SaveSnapshot", mock.Anything, constant.CacheKeyProducts, remote).Return(nil).Once()
			},
			want:       remote,
			wantSource: model.SourceRemote,
		},
		{
			name: "remote success survives a failed snapshot write",
			mockCall: func(cache *redismocks.RedisRepository) {
				cache.On("SaveSnapshot", mock.Anything, constant.CacheKeyProducts, remote).Return(errors.New("oom")).Once()
			},
			want:       remote,
			wantSource: model.SourceRemote,
		},
		{
			name:     "fresh snapshot used when remote fails",
			fetchErr: errRemote,
			maxAge:   5 * time.Minute,
			mockCall: func(cache *redismocks.RedisRepository) {
				cache.
					On("LoadSnapshot", mock.Anything, constant.CacheKeyProducts, mock.Anything).
					Run(func(args mock.Arguments) {
						*args.Get(2).(*[]model.Product) = cached
					}).
					Return(time.Now().Add(-time.Minute), true, nil).
					Once()
			},
			want:       cached,
			wantSource: model.SourceCache,
			wantWarn:   true,
		},
		{
			name:     "stale snapshot ignored",
			fetchErr: errRemote,
			maxAge:   5 * time.Minute,
			mockCall: func(cache *redismocks.RedisRepository) {
				cache.
					On("LoadSnapshot", mock.Anything, constant.CacheKeyProducts, mock.Anything).
					Return(time.Now().Add(-10*time.Minute), true, nil).
					Once()
			},
			wantSource: model.SourceNone,
			wantWarn:   true,
		},
		{
			name:     "unlimited age accepts old snapshot",
			fetchErr: errRemote,
			mockCall: func(cache *redismocks.RedisRepository) {
				cache.
					On("LoadSnapshot", mock.Anything, constant.CacheKeyProducts, mock.Anything).
					Run(func(args mock.Arguments) {
						*args.Get(2).(*[]model.Product) = cached
					}).
					Return(time.Now().Add(-72*time.Hour), true, nil).
					Once()
			},
			want:       cached,
			wantSource: model.SourceCache,
			wantWarn:   true,
		},
		{
			name:     "unreadable snapshot reported as none",
			fetchErr: errRemote,
			mockCall: func(cache *redismocks.RedisRepository) {
				cache.
					On("LoadSnapshot", mock.Anything, constant.CacheKeyProducts, mock.Anything).
					Return(time.Time{}, false, errors.New("invalid character")).
					Once()
			},
			wantSource: model.SourceNone,
			wantWarn:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := redismocks.NewRedisRepository(t)
			tt.mockCall(cache)

			calls := 0
			got, outcome := fallback.Fetch(context.Background(), cache, constant.CacheKeyProducts, tt.maxAge,
				func(ctx context.Context) ([]model.Product, error) {
					calls++
					if tt.fetchErr != nil {
						return nil, tt.fetchErr
					}
					return remote, nil
				})

			assert.Equal(t, 1, calls)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSource, outcome.Source)
			assert.Equal(t, tt.wantWarn, outcome.Warning != "")
		})
	}
}
