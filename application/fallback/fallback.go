// Package fallback reads a collection from the backend and falls back to the last
// cached snapshot when the backend call fails.
package fallback

import (
	"context"
	"time"

	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
	redisrepo "github.com/muhammadheryan/ev-admin/repository/redis"
	"github.com/muhammadheryan/ev-admin/utils/logger"
	"go.uber.org/zap"
)

// Outcome describes where a value came from. Warning is a toast for the UI.
type Outcome struct {
	Source  model.DataSource
	SavedAt time.Time
	Warning string
}

// Fetch calls fetch. On success the snapshot under key is overwritten. On failure a
// single cache read is made; snapshots older than maxAge are ignored (0 = no limit).
func Fetch[T any](ctx context.Context, cache redisrepo.Repository, key string, maxAge time.Duration, fetch func(ctx context.Context) (T, error)) (T, Outcome) {
	value, err := fetch(ctx)
	if err == nil {
		if serr := cache.SaveSnapshot(ctx, key, value); serr != nil {
			logger.Warn("[fallback.Fetch] err SaveSnapshot", zap.String("key", key), zap.String("error", serr.Error()))
		}
		return value, Outcome{Source: model.SourceRemote}
	}
	logger.Error("[fallback.Fetch] remote fetch failed", zap.String("key", key), zap.String("error", err.Error()))

	var cached T
	savedAt, ok, cerr := cache.LoadSnapshot(ctx, key, &cached)
	if cerr != nil {
		logger.Warn("[fallback.Fetch] err LoadSnapshot", zap.String("key", key), zap.String("error", cerr.Error()))
	}
	if cerr == nil && ok && (maxAge == 0 || time.Since(savedAt) < maxAge) {
		return cached, Outcome{
			Source:  model.SourceCache,
			SavedAt: savedAt,
			Warning: "Không thể tải dữ liệu mới, đang hiển thị dữ liệu đã lưu (" + Label(key) + ")",
		}
	}

	var zero T
	return zero, Outcome{
		Source:  model.SourceNone,
		Warning: "Không thể tải dữ liệu " + Label(key) + ", vui lòng thử lại sau",
	}
}

// Label names a snapshot key for toasts.
func Label(key string) string {
	switch key {
	case constant.CacheKeyProducts:
		return "sản phẩm"
	case constant.CacheKeyUsers:
		return "người dùng"
	case constant.CacheKeyOrders:
		return "đơn hàng"
	case constant.CacheKeyProcessedListings:
		return "tin đăng"
	}
	return key
}
