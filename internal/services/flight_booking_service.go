package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// CreateBookingForm carries the raw multipart/urlencoded fields. Passengers
// arrives as a JSON array and TotalAmount as a numeric string.
type CreateBookingForm struct {
	FlightID     string
	Airline      string
	FlightNumber string
	Departure    models.FlightEndpoint
	Arrival      models.FlightEndpoint
	Passengers   string
	TotalAmount  string
}

type FlightBookingService struct {
	Bookings FlightBookingStore
	Views    ViewCache
	Now      func() time.Time
}

func (s FlightBookingService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (s FlightBookingService) CreateBooking(ctx context.Context, form CreateBookingForm) (models.FlightBooking, error) {
	if err := firstErr(
		required("flightId", form.FlightID),
		required("airline", form.Airline),
		required("flightNumber", form.FlightNumber),
	); err != nil {
		return models.FlightBooking{}, err
	}

	var passengers []models.FlightPassenger
	if err := json.Unmarshal([]byte(strings.TrimSpace(form.Passengers)), &passengers); err != nil {
		return models.FlightBooking{}, domain.ValidationError{Field: "passengers", Msg: "must be a JSON array", Err: err}
	}
	if len(passengers) == 0 {
		return models.FlightBooking{}, domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(form.TotalAmount), 64)
	if err != nil {
		return models.FlightBooking{}, domain.ValidationError{Field: "totalAmount", Msg: "must be a number", Err: err}
	}
	if total < 0 {
		return models.FlightBooking{}, domain.ValidationError{Field: "totalAmount", Msg: "must not be negative"}
	}

	now := nowOr(s.Now)
	booking := models.FlightBooking{
		ID:           newID(),
		FlightID:     strings.TrimSpace(form.FlightID),
		Airline:      utils.NormalizeSpace(form.Airline),
		FlightNumber: strings.ToUpper(strings.TrimSpace(form.FlightNumber)),
		Departure:    form.Departure,
		Arrival:      form.Arrival,
		Passengers:   passengers,
		TotalAmount:  total,
		Status:       models.BookingPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return models.FlightBooking{}, storeErr(ctx, "flight_bookings", "create", "booking", err, "failed to create booking")
	}
	utils.LogEvent(ctx, "flight_bookings", "create", fmt.Sprintf("booking_id=%s flight=%s passengers=%d", booking.ID, booking.FlightNumber, len(passengers)))
	s.views().InvalidatePaths(ctx, "/flight-bookings")
	return booking, nil
}

func (s FlightBookingService) ListBookings(ctx context.Context) ([]models.FlightBooking, error) {
	var cached []models.FlightBooking
	slot, hit := s.views().Load(ctx, "flight-bookings", "all", &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "flight_bookings", "list", "booking", err, "failed to list bookings")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

func (s FlightBookingService) GetBooking(ctx context.Context, id string) (models.FlightBooking, error) {
	bookingID, err := parseID("id", id)
	if err != nil {
		return models.FlightBooking{}, err
	}
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return models.FlightBooking{}, storeErr(ctx, "flight_bookings", "get", "booking", err, "failed to load booking")
	}
	return b, nil
}

// UpdateBookingStatus sets status and, when given, the payment id. An empty
// paymentID keeps whatever is stored, including for confirmations.
func (s FlightBookingService) UpdateBookingStatus(ctx context.Context, id, status, paymentID string) (models.FlightBooking, error) {
	bookingID, err := parseID("id", id)
	if err != nil {
		return models.FlightBooking{}, err
	}
	next := models.BookingStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return models.FlightBooking{}, domain.ValidationError{Field: "status", Msg: "invalid status"}
	}
	return s.setStatus(ctx, "update_status", bookingID, next, strings.TrimSpace(paymentID))
}

// ConfirmBooking is the strict confirmation path: a payment id is mandatory.
func (s FlightBookingService) ConfirmBooking(ctx context.Context, id, paymentID string) (models.FlightBooking, error) {
	bookingID, err := parseID("id", id)
	if err != nil {
		return models.FlightBooking{}, err
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return models.FlightBooking{}, domain.ValidationError{Field: "paymentId", Msg: "is required to confirm"}
	}
	return s.setStatus(ctx, "confirm", bookingID, models.BookingConfirmed, paymentID)
}

func (s FlightBookingService) setStatus(ctx context.Context, action, id string, status models.BookingStatus, paymentID string) (models.FlightBooking, error) {
	if err := s.Bookings.UpdateStatus(ctx, id, status, paymentID, nowOr(s.Now)); err != nil {
		return models.FlightBooking{}, storeErr(ctx, "flight_bookings", action, "booking", err, "failed to update booking status")
	}
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return models.FlightBooking{}, storeErr(ctx, "flight_bookings", action, "booking", err, "failed to load booking")
	}
	utils.LogEvent(ctx, "flight_bookings", action, fmt.Sprintf("booking_id=%s status=%s", id, status))
	s.views().InvalidatePaths(ctx, "/flight-bookings", "/flight-bookings/"+id)
	return b, nil
}

func (s FlightBookingService) DeleteBooking(ctx context.Context, id string) error {
	bookingID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Bookings.Delete(ctx, bookingID); err != nil {
		return storeErr(ctx, "flight_bookings", "delete", "booking", err, "failed to delete booking")
	}
	utils.LogEvent(ctx, "flight_bookings", "delete", "booking_id="+bookingID)
	s.views().InvalidatePaths(ctx, "/flight-bookings", "/flight-bookings/"+bookingID)
	return nil
}
