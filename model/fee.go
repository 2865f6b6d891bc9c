package model

type FeeSetting struct {
	FeeID    int64   `json:"feeId" alias:"id"`
	FeeType  string  `json:"feeType" alias:"type"`
	FeeValue float64 `json:"feeValue" alias:"value"`
	IsActive bool    `json:"isActive" alias:"active"`
}

type FeeUpdateRequest struct {
	FeeValue *float64 `json:"feeValue" validate:"required"`
	IsActive *bool    `json:"isActive"`
}
