package model

// Listing is a product after reconciliation against orders and users.
type Listing struct {
	Product
	DisplayStatus string `json:"displayStatus"`
	SellerName    string `json:"sellerName,omitempty"`
	SellerEmail   string `json:"sellerEmail,omitempty"`
	OrderCount    int    `json:"orderCount"`
}

type DashboardStats struct {
	TotalListings     int     `json:"totalListings"`
	PendingListings   int     `json:"pendingListings"`
	ActiveListings    int     `json:"activeListings"`
	SoldListings      int     `json:"soldListings"`
	RejectedListings  int     `json:"rejectedListings"`
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	CancelledOrders   int     `json:"cancelledOrders"`
	CompletedRevenue  float64 `json:"completedRevenue"`
	DepositsHeld      float64 `json:"depositsHeld"`
	TotalUsers        int     `json:"totalUsers"`
	SuspendedAccounts int     `json:"suspendedAccounts"`
}

// DataSource tells the UI where a collection came from.
type DataSource string

const (
	SourceRemote DataSource = "remote"
	SourceCache  DataSource = "cache"
	SourceNone   DataSource = "none"
)

type DashboardView struct {
	Listings []Listing             `json:"listings"`
	Orders   []Order               `json:"orders"`
	Stats    DashboardStats        `json:"stats"`
	Sources  map[string]DataSource `json:"sources"`
	Warnings []string              `json:"warnings,omitempty"`
}

type ListingFilter struct {
	Status             string
	ProductType        string
	VerificationStatus string
	Query              string
}

type ActiveTabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

type ListingView struct {
	Listings []Listing             `json:"listings"`
	Sources  map[string]DataSource `json:"sources"`
	Warnings []string              `json:"warnings,omitempty"`
}

type OrderView struct {
	Orders   []Order               `json:"orders"`
	Sources  map[string]DataSource `json:"sources"`
	Warnings []string              `json:"warnings,omitempty"`
}
