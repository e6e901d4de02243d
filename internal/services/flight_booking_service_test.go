package services

import (
	"context"
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookingID = "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a"

func bookingForm() CreateBookingForm {
	return CreateBookingForm{
		FlightID:     "AI-202-20260501",
		Airline:      "Air India",
		FlightNumber: "ai 202",
		Departure:    models.FlightEndpoint{Airport: "BOM", City: "Mumbai", Date: "2026-05-01", Time: "06:15"},
		Arrival:      models.FlightEndpoint{Airport: "GOI", City: "Goa", Date: "2026-05-01", Time: "07:30"},
		Passengers:   `[{"firstName":"Asha","lastName":"Rao","age":34,"gender":"female"}]`,
		TotalAmount:  "6450.00",
	}
}

func TestCreateBooking(t *testing.T) {
	store := newMemBookings()
	svc := FlightBookingService{Bookings: store, Now: clock}

	b, err := svc.CreateBooking(context.Background(), bookingForm())
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, "AI 202", b.FlightNumber)
	assert.Equal(t, 6450.0, b.TotalAmount)
	require.Len(t, b.Passengers, 1)
	assert.Equal(t, "Asha", b.Passengers[0].FirstName)
	assert.Len(t, store.bookings, 1)
}

func TestCreateBookingRejectsBadForm(t *testing.T) {
	cases := map[string]func(*CreateBookingForm){
		"passengers not json": func(f *CreateBookingForm) { f.Passengers = "Asha Rao" },
		"no passengers":       func(f *CreateBookingForm) { f.Passengers = "[]" },
		"total not numeric":   func(f *CreateBookingForm) { f.TotalAmount = "six thousand" },
		"missing airline":     func(f *CreateBookingForm) { f.Airline = " " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemBookings()
			svc := FlightBookingService{Bookings: store}
			form := bookingForm()
			mutate(&form)

			_, err := svc.CreateBooking(context.Background(), form)
			assert.True(t, domain.IsValidation(err))
			assert.Empty(t, store.bookings)
		})
	}
}

func seededBooking() models.FlightBooking {
	return models.FlightBooking{ID: bookingID, FlightNumber: "AI 202", Status: models.BookingPending, CreatedAt: fixedNow}
}

func TestUpdateBookingStatusAllowsConfirmWithoutPayment(t *testing.T) {
	store := newMemBookings(seededBooking())
	svc := FlightBookingService{Bookings: store, Now: clock}

	b, err := svc.UpdateBookingStatus(context.Background(), bookingID, "confirmed", "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Empty(t, b.PaymentID)
}

func TestUpdateBookingStatusKeepsPaymentIDWhenEmpty(t *testing.T) {
	store := newMemBookings(seededBooking())
	svc := FlightBookingService{Bookings: store}
	ctx := context.Background()

	_, err := svc.UpdateBookingStatus(ctx, bookingID, "confirmed", "pay_Nx81")
	require.NoError(t, err)
	b, err := svc.UpdateBookingStatus(ctx, bookingID, "cancelled", "")
	require.NoError(t, err)
	assert.Equal(t, "pay_Nx81", b.PaymentID)
	assert.Equal(t, models.BookingCancelled, b.Status)
}

func TestUpdateBookingStatusErrors(t *testing.T) {
	svc := FlightBookingService{Bookings: newMemBookings(seededBooking())}
	ctx := context.Background()

	_, err := svc.UpdateBookingStatus(ctx, bookingID, "boarded", "")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.UpdateBookingStatus(ctx, orderID, "confirmed", "")
	assert.True(t, domain.IsNotFound(err))
}

func TestConfirmBookingRequiresPayment(t *testing.T) {
	store := newMemBookings(seededBooking())
	svc := FlightBookingService{Bookings: store}
	ctx := context.Background()

	_, err := svc.ConfirmBooking(ctx, bookingID, "  ")
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, models.BookingPending, store.bookings[bookingID].Status)

	b, err := svc.ConfirmBooking(ctx, bookingID, "pay_Nx81")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, "pay_Nx81", b.PaymentID)
}

func TestDeleteBooking(t *testing.T) {
	store := newMemBookings(seededBooking())
	views := newRecordingViews()
	svc := FlightBookingService{Bookings: store, Views: views}

	require.NoError(t, svc.DeleteBooking(context.Background(), bookingID))
	assert.Empty(t, store.bookings)
	assert.Equal(t, []string{"/flight-bookings", "/flight-bookings/" + bookingID}, views.invalidated[0])
	assert.True(t, domain.IsNotFound(svc.DeleteBooking(context.Background(), bookingID)))
}
