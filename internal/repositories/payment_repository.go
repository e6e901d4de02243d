package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice/internal/domain/models"
)

// PaymentRepository reads gateway transaction records.
type PaymentRepository struct {
	DB *sql.DB
}

const paymentSelect = `
	SELECT id,
	       razorpay_order_id,
	       COALESCE(razorpay_payment_id,''),
	       amount,
	       currency,
	       status,
	       COALESCE(user_name,''),
	       COALESCE(user_email,''),
	       COALESCE(user_phone,''),
	       created_at,
	       updated_at
	FROM payments`

func scanPayment(s rowScanner) (models.Payment, error) {
	var p models.Payment
	err := s.Scan(
		&p.ID,
		&p.RazorpayOrderID,
		&p.RazorpayPaymentID,
		&p.Amount,
		&p.Currency,
		&p.Status,
		&p.UserName,
		&p.UserEmail,
		&p.UserPhone,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// List returns payments newest first.
func (r PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	rows, err := r.DB.QueryContext(ctx, paymentSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PaymentRepository) GetByID(ctx context.Context, id string) (models.Payment, error) {
	p, err := scanPayment(r.DB.QueryRowContext(ctx, paymentSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Payment{}, notFoundOr(err, "get payment")
	}
	return p, nil
}
