package models

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
	OrderCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCancelled, OrderCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit-card"
	MethodUPI        PaymentMethod = "upi"
	MethodPayPal     PaymentMethod = "paypal"
	MethodCash       PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodUPI, MethodPayPal, MethodCash:
		return true
	}
	return false
}

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProductRef is the product projection expanded into order line items.
type ProductRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// UserRef is the user projection expanded into an order.
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderTrip is one line item. Position keeps insertion order.
type OrderTrip struct {
	ProductID    string      `json:"productId"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	Quantity     int         `json:"quantity"`
	Price        float64     `json:"price"`
	SelectedDate time.Time   `json:"selectedDate"`
	Product      *ProductRef `json:"product,omitempty"`
}

type Order struct {
	ID              string        `json:"_id"`
	UserID          string        `json:"userId"`
	User            *UserRef      `json:"user,omitempty"`
	Trips           []OrderTrip   `json:"trips"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	BookingDate     time.Time     `json:"bookingDate"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	ContactInfo     ContactInfo   `json:"contactInfo"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Reference is the short human-facing order number: the last 6 hex
// characters of the id.
func (o Order) Reference() string {
	hex := strings.ReplaceAll(o.ID, "-", "")
	if len(hex) <= 6 {
		return hex
	}
	return hex[len(hex)-6:]
}

// Travelers sums line item quantities.
func (o Order) Travelers() int {
	n := 0
	for _, t := range o.Trips {
		n += t.Quantity
	}
	return n
}

type OrderFilter struct {
	Status OrderStatus
	UserID string
	Page   int
	Limit  int
}

type OrderStats struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	Revenue         float64 `json:"revenue"`
}
