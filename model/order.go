package model

type Order struct {
	OrderID            int64    `json:"orderId" alias:"id"`
	ProductID          int64    `json:"productId"`
	BuyerID            int64    `json:"buyerId" alias:"userId"`
	SellerID           int64    `json:"sellerId"`
	Status             string   `json:"status" alias:"orderStatus"`
	DepositAmount      float64  `json:"depositAmount"`
	TotalAmount        float64  `json:"totalAmount" alias:"totalPrice,amount"`
	CancellationReason string   `json:"cancellationReason,omitempty"`
	RefundOption       string   `json:"refundOption,omitempty"`
	CreatedDate        FlexTime `json:"createdDate" alias:"createdAt,orderDate"`
	UpdatedDate        FlexTime `json:"updatedDate,omitempty" alias:"updatedAt"`
}

type OrderFilter struct {
	Status    string
	ProductID int64
	BuyerID   int64
}

type Payment struct {
	PaymentID     int64    `json:"paymentId" alias:"id"`
	OrderID       int64    `json:"orderId"`
	UserID        int64    `json:"userId"`
	Amount        float64  `json:"amount"`
	PaymentType   string   `json:"paymentType,omitempty" alias:"type"`
	PaymentMethod string   `json:"paymentMethod,omitempty" alias:"method"`
	Status        string   `json:"status"`
	TransactionNo string   `json:"transactionNo,omitempty" alias:"transactionRef,vnpTransactionNo"`
	CreatedDate   FlexTime `json:"createdDate" alias:"createdAt"`
}

type OrderDetail struct {
	Order    Order     `json:"order"`
	Product  *Product  `json:"product,omitempty"`
	Payments []Payment `json:"payments"`
}
