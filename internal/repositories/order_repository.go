package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

// OrderRepository persists orders and their ordered line items.
type OrderRepository struct {
	DB *sql.DB
}

const orderSelect = `
	SELECT o.id, o.user_id, o.total_amount, o.status, o.booking_date,
	       o.payment_method, o.payment_status,
	       o.contact_name, o.contact_email, COALESCE(o.contact_phone,''),
	       COALESCE(o.special_requests,''), o.created_at, o.updated_at,
	       COALESCE(u.name,''), COALESCE(u.email,'')
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id`

func scanOrder(s rowScanner) (models.Order, error) {
	var (
		o         models.Order
		userName  string
		userEmail string
	)
	err := s.Scan(
		&o.ID,
		&o.UserID,
		&o.TotalAmount,
		&o.Status,
		&o.BookingDate,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.ContactInfo.Name,
		&o.ContactInfo.Email,
		&o.ContactInfo.Phone,
		&o.SpecialRequests,
		&o.CreatedAt,
		&o.UpdatedAt,
		&userName,
		&userEmail,
	)
	if err != nil {
		return models.Order{}, err
	}
	if userName != "" || userEmail != "" {
		o.User = &models.UserRef{ID: o.UserID, Name: userName, Email: userEmail}
	}
	o.Trips = []models.OrderTrip{}
	return o, nil
}

// Create writes the header and every line item in one transaction.
func (r OrderRepository) Create(ctx context.Context, o models.Order) error {
	return intdb.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (id, user_id, total_amount, status, booking_date,
			                    payment_method, payment_status, contact_name,
			                    contact_email, contact_phone, special_requests,
			                    created_at, updated_at)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			o.ID, o.UserID, o.TotalAmount, o.Status, o.BookingDate,
			o.PaymentMethod, o.PaymentStatus, o.ContactInfo.Name,
			o.ContactInfo.Email, intdb.NullIfEmpty(o.ContactInfo.Phone),
			intdb.NullIfEmpty(o.SpecialRequests), o.CreatedAt, o.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i, t := range o.Trips {
			var selected any
			if !t.SelectedDate.IsZero() {
				selected = t.SelectedDate
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, position, product_id, name,
				                         location, quantity, price, selected_date)
				VALUES (?,?,?,?,?,?,?,?)`,
				o.ID, i, t.ProductID, t.Name, intdb.NullIfEmpty(t.Location),
				t.Quantity, t.Price, selected,
			)
			if err != nil {
				return fmt.Errorf("insert order item %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetByID returns the order with user and product fields expanded.
func (r OrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	o, err := scanOrder(r.DB.QueryRowContext(ctx, orderSelect+` WHERE o.id = ? LIMIT 1`, id))
	if err != nil {
		return models.Order{}, notFoundOr(err, "get order")
	}
	items, err := r.itemsFor(ctx, []string{o.ID})
	if err != nil {
		return models.Order{}, err
	}
	if trips, ok := items[o.ID]; ok {
		o.Trips = trips
	}
	return o, nil
}

// ListByUser returns one page of a user's orders, newest booking first.
func (r OrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = ?`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user orders: %w", err)
	}
	orders, err := r.list(ctx, orderSelect+`
		WHERE o.user_id = ?
		ORDER BY o.booking_date DESC, o.id
		LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// List returns one page of all orders, optionally filtered by status.
func (r OrderRepository) List(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		where = ` WHERE o.status = ?`
		args = append(args, status)
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders o`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, limit, offset)
	orders, err := r.list(ctx, orderSelect+where+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r OrderRepository) list(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	ids := []string{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if trips, ok := items[orders[i].ID]; ok {
			orders[i].Trips = trips
		}
	}
	return orders, nil
}

// itemsFor loads line items for the given orders, keyed by order id and in
// insertion order.
func (r OrderRepository) itemsFor(ctx context.Context, orderIDs []string) (map[string][]models.OrderTrip, error) {
	args := make([]any, len(orderIDs))
	for i, id := range orderIDs {
		args[i] = id
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT i.order_id, i.product_id, i.name, COALESCE(i.location,''),
		       i.quantity, i.price, i.selected_date,
		       COALESCE(p.name,''), COALESCE(p.image,''), p.id IS NOT NULL
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id IN (`+intdb.Placeholders(len(args))+`)
		ORDER BY i.order_id, i.position`, args...)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	out := map[string][]models.OrderTrip{}
	for rows.Next() {
		var (
			orderID      string
			t            models.OrderTrip
			selected     sql.NullTime
			productName  string
			productImage string
			hasProduct   bool
		)
		if err := rows.Scan(&orderID, &t.ProductID, &t.Name, &t.Location, &t.Quantity, &t.Price,
			&selected, &productName, &productImage, &hasProduct); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if selected.Valid {
			t.SelectedDate = selected.Time
		}
		if hasProduct {
			t.Product = &models.ProductRef{ID: t.ProductID, Name: productName, Image: productImage}
		}
		out[orderID] = append(out[orderID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return out, nil
}

func (r OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, now time.Time) error {
	return execOne(ctx, r.DB, "update order status",
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`, status, now, id)
}

func (r OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus, now time.Time) error {
	return execOne(ctx, r.DB, "update order payment status",
		`UPDATE orders SET payment_status = ?, updated_at = ? WHERE id = ?`, status, now, id)
}

// Delete removes the order; line items cascade.
func (r OrderRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete order", `DELETE FROM orders WHERE id = ?`, id)
}
