package model

import "time"

type Actor struct {
	UserID int64
	Role   string
}

type CreateTransactionRequest struct {
	TicketTypeID int64  `json:"ticket_type_id" validate:"required,gt=0"`
	Quantity     int32  `json:"quantity" validate:"required,gt=0"`
	VoucherCode  string `json:"voucher_code" validate:"omitempty,max=50"`
	CouponCode   string `json:"coupon_code" validate:"omitempty,max=50"`
	PointsToUse  int64  `json:"points_to_use" validate:"gte=0"`
}

type UploadPaymentProofRequest struct {
	PaymentProof string `json:"payment_proof" validate:"required,max=2048"`
}

type TransactionResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	EventID        int64     `json:"event_id"`
	TicketTypeID   int64     `json:"ticket_type_id"`
	VoucherID      *int64    `json:"voucher_id"`
	CouponID       *int64    `json:"coupon_id"`
	TicketQty      int32     `json:"ticket_qty"`
	TotalPrice     int64     `json:"total_price"`
	PointsUsed     int64     `json:"points_used"`
	FinalPrice     int64     `json:"final_price"`
	Status         string    `json:"status"`
	PaymentProof   *string   `json:"payment_proof"`
	ExpiredAt      time.Time `json:"expired_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	EventTitle     string    `json:"event_title,omitempty"`
	TicketTypeName string    `json:"ticket_type_name,omitempty"`
	UserName       string    `json:"user_name,omitempty"`
	UserEmail      string    `json:"user_email,omitempty"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
