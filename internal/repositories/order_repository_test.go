package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orderCols = []string{"id", "user_id", "total_amount", "status", "booking_date", "payment_method",
		"payment_status", "contact_name", "contact_email", "contact_phone", "special_requests",
		"created_at", "updated_at", "user_name", "user_email"}
	itemCols = []string{"order_id", "product_id", "name", "location", "quantity", "price",
		"selected_date", "product_name", "product_image", "has_product"}
)

const testOrderID = "3f1c2a9e-8b7d-4c6e-9a51-0d2e4f6b8c1a"

func newOrderRepo(t *testing.T) (OrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return OrderRepository{DB: db}, mock
}

func sampleOrder(now time.Time) models.Order {
	return models.Order{
		ID:            testOrderID,
		UserID:        "u-1",
		TotalAmount:   13000,
		Status:        models.OrderPending,
		PaymentStatus: models.PaymentUnpaid,
		PaymentMethod: models.MethodUPI,
		BookingDate:   now,
		ContactInfo:   models.ContactInfo{Name: "Asha", Email: "asha@example.com"},
		Trips: []models.OrderTrip{
			{ProductID: "p-1", Name: "Goa Escape", Location: "Goa", Quantity: 2, Price: 5000, SelectedDate: now},
			{ProductID: "p-2", Name: "Manali Trek", Location: "Manali", Quantity: 1, Price: 3000},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderRepositoryCreateWritesItemsInOrder(t *testing.T) {
	repo, mock := newOrderRepo(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	o := sampleOrder(now)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, "u-1", 13000.0, models.OrderPending, now, models.MethodUPI, models.PaymentUnpaid,
			"Asha", "asha@example.com", nil, nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(o.ID, 0, "p-1", "Goa Escape", "Goa", 2, 5000.0, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(o.ID, 1, "p-2", "Manali Trek", "Manali", 1, 3000.0, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryCreateRollsBackWhenItemFails(t *testing.T) {
	repo, mock := newOrderRepo(t)
	o := sampleOrder(time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order item 0")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryGetByIDExpandsUserAndProducts(t *testing.T) {
	repo, mock := newOrderRepo(t)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM orders o\\s+LEFT JOIN users u ON u.id = o.user_id\\s+WHERE o.id = \\?").
		WithArgs(testOrderID).
		WillReturnRows(sqlmock.NewRows(orderCols).AddRow(
			testOrderID, "u-1", 13000.0, "pending", now, "upi", "unpaid",
			"Asha", "asha@example.com", "", "", now, now, "Asha K", "asha@example.com"))
	mock.ExpectQuery("FROM order_items i\\s+LEFT JOIN products p").
		WithArgs(testOrderID).
		WillReturnRows(sqlmock.NewRows(itemCols).
			AddRow(testOrderID, "p-1", "Goa Escape", "Goa", 2, 5000.0, now, "Goa Escape", "goa.jpg", true).
			AddRow(testOrderID, "p-gone", "Old Trip", "", 1, 3000.0, nil, "", "", false))

	o, err := repo.GetByID(context.Background(), testOrderID)
	require.NoError(t, err)
	require.NotNil(t, o.User)
	assert.Equal(t, "Asha K", o.User.Name)
	require.Len(t, o.Trips, 2)
	assert.Equal(t, "goa.jpg", o.Trips[0].Product.Image)
	assert.Nil(t, o.Trips[1].Product)
	assert.True(t, o.Trips[1].SelectedDate.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newOrderRepo(t)
	mock.ExpectQuery("FROM orders o").WithArgs(testOrderID).WillReturnRows(sqlmock.NewRows(orderCols))

	_, err := repo.GetByID(context.Background(), testOrderID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryListByUserPagesNewestFirst(t *testing.T) {
	repo, mock := newOrderRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM orders WHERE user_id = \\?").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("WHERE o.user_id = \\?\\s+ORDER BY o.booking_date DESC").
		WithArgs("u-1", 5, 10).
		WillReturnRows(sqlmock.NewRows(orderCols).AddRow(
			"o-11", "u-1", 100.0, "pending", now, "cash", "unpaid",
			"Asha", "asha@example.com", "", "", now, now, "", ""))
	mock.ExpectQuery("FROM order_items i").
		WithArgs("o-11").
		WillReturnRows(sqlmock.NewRows(itemCols))

	orders, total, err := repo.ListByUser(context.Background(), "u-1", 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, orders, 1)
	assert.Nil(t, orders[0].User)
	assert.Empty(t, orders[0].Trips)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryListFiltersByStatus(t *testing.T) {
	repo, mock := newOrderRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM orders o WHERE o.status = \\?").
		WithArgs(models.OrderCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("WHERE o.status = \\?\\s+ORDER BY o.created_at DESC").
		WithArgs(models.OrderCancelled, 10, 0).
		WillReturnRows(sqlmock.NewRows(orderCols))

	orders, total, err := repo.List(context.Background(), models.OrderCancelled, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryUpdateStatusMissingRow(t *testing.T) {
	repo, mock := newOrderRepo(t)
	mock.ExpectExec("UPDATE orders SET status = \\?").
		WithArgs(models.OrderConfirmed, sqlmock.AnyArg(), testOrderID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), testOrderID, models.OrderConfirmed, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryDelete(t *testing.T) {
	repo, mock := newOrderRepo(t)
	mock.ExpectExec("DELETE FROM orders WHERE id = \\?").
		WithArgs(testOrderID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), testOrderID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
