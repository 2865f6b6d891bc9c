package constant

import "time"

// Snapshot keys kept for the dashboard fallback reads.
const (
	CacheKeyProducts          = "admin_cached_products"
	CacheKeyUsers             = "admin_cached_users"
	CacheKeyOrders            = "admin_cached_orders"
	CacheKeyProcessedListings = "admin_cached_processed_listings"
	CacheKeyTimestamp         = "admin_cached_timestamp"
	CacheKeyActiveTab         = "admin_active_tab"
)

const DefaultProductCacheMaxAge = 5 * time.Minute

var ActiveTabs = map[string]bool{
	"products":      true,
	"users":         true,
	"transactions":  true,
	"fees":          true,
	"notifications": true,
	"inspections":   true,
}

const DefaultActiveTab = "products"
