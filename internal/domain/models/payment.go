package models

import "time"

type GatewayPaymentStatus string

const (
	GatewayCreated   GatewayPaymentStatus = "created"
	GatewayAttempted GatewayPaymentStatus = "attempted"
	GatewayPaid      GatewayPaymentStatus = "paid"
	GatewayFailed    GatewayPaymentStatus = "failed"
)

// Payment is a gateway transaction record. Rows are written by the payment
// webhook; the back office only reads them.
type Payment struct {
	ID                string               `json:"_id"`
	RazorpayOrderID   string               `json:"razorpayOrderId"`
	RazorpayPaymentID string               `json:"razorpayPaymentId"`
	Amount            float64              `json:"amount"`
	Currency          string               `json:"currency"`
	Status            GatewayPaymentStatus `json:"status"`
	UserName          string               `json:"userName"`
	UserEmail         string               `json:"userEmail"`
	UserPhone         string               `json:"userPhone"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}
