package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type FlightBookingRepository struct {
	DB *sql.DB
}

const flightBookingSelect = `
	SELECT id, flight_id, airline, flight_number, departure, arrival, passengers,
	       total_amount, status, COALESCE(payment_id,''), created_at, updated_at
	FROM flight_bookings`

func scanFlightBooking(s rowScanner) (models.FlightBooking, error) {
	var (
		b                          models.FlightBooking
		departure, arrival, people []byte
	)
	if err := s.Scan(&b.ID, &b.FlightID, &b.Airline, &b.FlightNumber, &departure, &arrival, &people,
		&b.TotalAmount, &b.Status, &b.PaymentID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.FlightBooking{}, err
	}
	if err := intdb.DecodeJSON(departure, &b.Departure); err != nil {
		return models.FlightBooking{}, err
	}
	if err := intdb.DecodeJSON(arrival, &b.Arrival); err != nil {
		return models.FlightBooking{}, err
	}
	b.Passengers = []models.FlightPassenger{}
	if err := intdb.DecodeJSON(people, &b.Passengers); err != nil {
		return models.FlightBooking{}, err
	}
	return b, nil
}

func (r FlightBookingRepository) Create(ctx context.Context, b models.FlightBooking) error {
	departure, err := intdb.EncodeJSON(b.Departure)
	if err != nil {
		return err
	}
	arrival, err := intdb.EncodeJSON(b.Arrival)
	if err != nil {
		return err
	}
	passengers, err := intdb.EncodeJSON(b.Passengers)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO flight_bookings (id, flight_id, airline, flight_number, departure,
		                             arrival, passengers, total_amount, status,
		                             payment_id, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.FlightID, b.Airline, b.FlightNumber, departure, arrival, passengers,
		b.TotalAmount, b.Status, intdb.NullIfEmpty(b.PaymentID), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert flight booking: %w", err)
	}
	return nil
}

func (r FlightBookingRepository) GetByID(ctx context.Context, id string) (models.FlightBooking, error) {
	b, err := scanFlightBooking(r.DB.QueryRowContext(ctx, flightBookingSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.FlightBooking{}, notFoundOr(err, "get flight booking")
	}
	return b, nil
}

// List returns every booking, newest first.
func (r FlightBookingRepository) List(ctx context.Context) ([]models.FlightBooking, error) {
	rows, err := r.DB.QueryContext(ctx, flightBookingSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list flight bookings: %w", err)
	}
	defer rows.Close()

	out := []models.FlightBooking{}
	for rows.Next() {
		b, err := scanFlightBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus sets status and, when paymentID is non-empty, the payment
// reference. An empty paymentID keeps the stored value.
func (r FlightBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus, paymentID string, now time.Time) error {
	return execOne(ctx, r.DB, "update flight booking status", `
		UPDATE flight_bookings
		SET status = ?, payment_id = COALESCE(?, payment_id), updated_at = ?
		WHERE id = ?`,
		status, intdb.NullIfEmpty(paymentID), now, id)
}

func (r FlightBookingRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete flight booking", `DELETE FROM flight_bookings WHERE id = ?`, id)
}
