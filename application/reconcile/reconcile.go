// Package reconcile turns independently fetched products, orders and users into the
// admin transaction view: one display status per product and a deduplicated order list.
package reconcile

import (
	"sort"
	"strings"

	"github.com/muhammadheryan/ev-admin/constant"
	"github.com/muhammadheryan/ev-admin/model"
)

type Result struct {
	Listings []model.Listing
	Orders   []model.Order
	Stats    model.DashboardStats
}

// NormalizeStatus lower-cases recognised order statuses. Anything else is returned untouched.
func NormalizeStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if constant.KnownOrderStatuses[s] {
		return s
	}
	return status
}

func Priority(status string) int {
	return constant.OrderStatusPriority[NormalizeStatus(status)]
}

// IsExempt reports whether an order is kept even when it collides on (productId, buyerId).
func IsExempt(status string) bool {
	switch NormalizeStatus(status) {
	case constant.OrderStatusCancelled, constant.OrderStatusCanceled, constant.OrderStatusFailed:
		return true
	}
	return false
}

func isReleasing(status string) bool {
	switch NormalizeStatus(status) {
	case constant.OrderStatusCancelled, constant.OrderStatusCanceled, constant.OrderStatusRejected, constant.OrderStatusFailed:
		return true
	}
	return false
}

// better reports whether a should replace b: higher priority, then newer createdDate.
func better(a, b model.Order) bool {
	pa, pb := Priority(a.Status), Priority(b.Status)
	if pa != pb {
		return pa > pb
	}
	return a.CreatedDate.After(b.CreatedDate.Time)
}

type orderKey struct {
	productID int64
	buyerID   int64
}

// DedupOrders removes exact orderId duplicates, then keeps one order per
// (productId, buyerId). Cancelled, canceled and failed orders skip the second pass.
func DedupOrders(orders []model.Order) []model.Order {
	byID := make(map[int64]int, len(orders))
	unique := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		o.Status = NormalizeStatus(o.Status)
		if o.OrderID != 0 {
			if i, ok := byID[o.OrderID]; ok {
				if better(o, unique[i]) {
					unique[i] = o
				}
				continue
			}
			byID[o.OrderID] = len(unique)
		}
		unique = append(unique, o)
	}

	byKey := make(map[orderKey]int, len(unique))
	out := make([]model.Order, 0, len(unique))
	for _, o := range unique {
		if IsExempt(o.Status) {
			out = append(out, o)
			continue
		}
		k := orderKey{productID: o.ProductID, buyerID: o.BuyerID}
		if i, ok := byKey[k]; ok {
			if better(o, out[i]) {
				out[i] = o
			}
			continue
		}
		byKey[k] = len(out)
		out = append(out, o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedDate.Equal(out[j].CreatedDate.Time) {
			return out[i].CreatedDate.After(out[j].CreatedDate.Time)
		}
		return out[i].OrderID > out[j].OrderID
	})
	return out
}

// DisplayStatus lets order state override the product's own status: a completed order
// means sold, a cancelled/rejected/failed one puts the product back on sale.
func DisplayStatus(product model.Product, orders []model.Order) string {
	released := false
	for _, o := range orders {
		if o.ProductID != product.ProductID {
			continue
		}
		if NormalizeStatus(o.Status) == constant.OrderStatusCompleted {
			return constant.ProductStatusSold
		}
		if isReleasing(o.Status) {
			released = true
		}
	}
	if released {
		return constant.ProductStatusActive
	}
	return product.Status
}

func isPending(status string) bool {
	return strings.EqualFold(status, constant.ProductStatusPending)
}

// SortListings puts pending listings first, then most recently updated, then most recently created.
func SortListings(listings []model.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		if pa, pb := isPending(a.DisplayStatus), isPending(b.DisplayStatus); pa != pb {
			return pa
		}
		if !a.UpdatedDate.Equal(b.UpdatedDate.Time) {
			return a.UpdatedDate.After(b.UpdatedDate.Time)
		}
		if !a.CreatedDate.Equal(b.CreatedDate.Time) {
			return a.CreatedDate.After(b.CreatedDate.Time)
		}
		return a.ProductID > b.ProductID
	})
}

func Reconcile(products []model.Product, orders []model.Order, users []model.User) Result {
	deduped := DedupOrders(orders)

	usersByID := make(map[int64]model.User, len(users))
	for _, u := range users {
		usersByID[u.UserID] = u
	}

	ordersByProduct := make(map[int64][]model.Order)
	for _, o := range deduped {
		ordersByProduct[o.ProductID] = append(ordersByProduct[o.ProductID], o)
	}

	listings := make([]model.Listing, 0, len(products))
	for _, p := range products {
		related := ordersByProduct[p.ProductID]
		l := model.Listing{
			Product:       p,
			DisplayStatus: DisplayStatus(p, related),
			OrderCount:    len(related),
		}
		if seller, ok := usersByID[p.SellerID]; ok {
			l.SellerName = seller.FullName
			l.SellerEmail = seller.Email
		}
		listings = append(listings, l)
	}
	SortListings(listings)

	return Result{
		Listings: listings,
		Orders:   deduped,
		Stats:    computeStats(listings, deduped, users),
	}
}

func computeStats(listings []model.Listing, orders []model.Order, users []model.User) model.DashboardStats {
	stats := model.DashboardStats{
		TotalListings: len(listings),
		TotalOrders:   len(orders),
		TotalUsers:    len(users),
	}

	for _, l := range listings {
		switch strings.ToLower(l.DisplayStatus) {
		case constant.ProductStatusPending:
			stats.PendingListings++
		case strings.ToLower(constant.ProductStatusActive):
			stats.ActiveListings++
		case constant.ProductStatusSold:
			stats.SoldListings++
		case constant.ProductStatusRejected:
			stats.RejectedListings++
		}
	}

	for _, o := range orders {
		switch o.Status {
		case constant.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.CompletedRevenue += o.TotalAmount
		case constant.OrderStatusCancelled, constant.OrderStatusCanceled:
			stats.CancelledOrders++
		case constant.OrderStatusDeposited, constant.OrderStatusDepositPaid:
			stats.DepositsHeld += o.DepositAmount
		}
	}

	for _, u := range users {
		if strings.EqualFold(u.Status, constant.UserStatusSuspended) {
			stats.SuspendedAccounts++
		}
	}
	return stats
}
