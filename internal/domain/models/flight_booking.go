package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type FlightEndpoint struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type FlightPassenger struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

type FlightBooking struct {
	ID           string            `json:"_id"`
	FlightID     string            `json:"flightId"`
	Airline      string            `json:"airline"`
	FlightNumber string            `json:"flightNumber"`
	Departure    FlightEndpoint    `json:"departure"`
	Arrival      FlightEndpoint    `json:"arrival"`
	Passengers   []FlightPassenger `json:"passengers"`
	TotalAmount  float64           `json:"totalAmount"`
	Status       BookingStatus     `json:"status"`
	PaymentID    string            `json:"paymentId,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
