package model

// Product is the canonical listing shape. Alias tags name the alternate keys the
// backend uses for the same field; key casing is ignored on decode.
type Product struct {
	ProductID          int64    `json:"productId" alias:"id"`
	SellerID           int64    `json:"sellerId" alias:"userId,ownerId"`
	Title              string   `json:"title" alias:"name"`
	Description        string   `json:"description,omitempty"`
	Brand              string   `json:"brand"`
	Model              string   `json:"model"`
	Price              float64  `json:"price"`
	Status             string   `json:"status"`
	VerificationStatus string   `json:"verificationStatus"`
	ProductType        string   `json:"productType" alias:"type"`
	CategoryID         int64    `json:"categoryId,omitempty"`
	ImageURLs          []string `json:"imageUrls,omitempty" alias:"images"`

	ManufactureYear int     `json:"manufactureYear,omitempty" alias:"year"`
	Mileage         int64   `json:"mileage,omitempty"`
	Color           string  `json:"color,omitempty"`
	LicensePlate    string  `json:"licensePlate,omitempty"`
	BatteryHealth   float64 `json:"batteryHealth,omitempty"`
	Capacity        float64 `json:"capacity,omitempty"`
	Voltage         float64 `json:"voltage,omitempty"`

	RejectionReason string   `json:"rejectionReason,omitempty"`
	CreatedDate     FlexTime `json:"createdDate" alias:"createdAt"`
	UpdatedDate     FlexTime `json:"updatedDate" alias:"updatedAt"`
}

// ProductUpdate carries the editable inspection fields. Nil means unchanged.
type ProductUpdate struct {
	Title              *string  `json:"title,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Brand              *string  `json:"brand,omitempty"`
	Model              *string  `json:"model,omitempty"`
	Price              *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ManufactureYear    *int     `json:"manufactureYear,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	Mileage            *int64   `json:"mileage,omitempty" validate:"omitempty,gte=0"`
	Color              *string  `json:"color,omitempty"`
	LicensePlate       *string  `json:"licensePlate,omitempty"`
	BatteryHealth      *float64 `json:"batteryHealth,omitempty" validate:"omitempty,gte=0,lte=100"`
	Capacity           *float64 `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Voltage            *float64 `json:"voltage,omitempty" validate:"omitempty,gte=0"`
	VerificationStatus *string  `json:"verificationStatus,omitempty"`
}

func (u *ProductUpdate) IsEmpty() bool {
	return u == nil || (u.Title == nil && u.Description == nil && u.Brand == nil && u.Model == nil &&
		u.Price == nil && u.ManufactureYear == nil && u.Mileage == nil && u.Color == nil &&
		u.LicensePlate == nil && u.BatteryHealth == nil && u.Capacity == nil && u.Voltage == nil &&
		u.VerificationStatus == nil)
}

type ProductImage struct {
	ImageID   int64  `json:"imageId" alias:"id"`
	ProductID int64  `json:"productId"`
	ImageURL  string `json:"imageUrl" alias:"url,imageData"`
}

// ImageFile is one uploaded file on its way to the backend.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required,notblank"`
}
