package repositories

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "location", "price", "original_price", "rating", "reviews",
	"duration", "category", "trip_type", "image", "featured", "discount", "highlights", "group_size",
	"difficulty", "available_dates", "inclusions", "exclusions", "itinerary", "is_community_trip",
	"created_at", "updated_at"}

func newProductRepo(t *testing.T) (ProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return ProductRepository{DB: db}, mock
}

func productRow(rows *sqlmock.Rows, id, category string, featured bool, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, "Trip "+id, "Goa", 5000.0, 6000.0, 4.5, 12, "3D/2N", category, "Domestic", "",
		featured, 17, []byte(`["sunset cruise"]`), "", "Easy", nil, []byte(`[]`), nil, []byte(`["Day 1"]`),
		false, now, now)
}

func TestProductRepositoryListByCategoryExactMatch(t *testing.T) {
	repo, mock := newProductRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM products WHERE category = \\? ORDER BY created_at DESC").
		WithArgs(models.CategoryBeach).
		WillReturnRows(productRow(sqlmock.NewRows(productCols), "p-1", "Beach", true, now))

	out, err := repo.List(context.Background(), ProductQuery{Category: models.CategoryBeach})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"sunset cruise"}, out[0].Highlights)
	assert.Equal(t, []string{}, out[0].AvailableDates)
	assert.Equal(t, []string{"Day 1"}, out[0].Itinerary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryListFeaturedAndCategory(t *testing.T) {
	repo, mock := newProductRepo(t)
	featured := true

	mock.ExpectQuery("WHERE category = \\? AND featured = \\?").
		WithArgs("beach", true).
		WillReturnRows(sqlmock.NewRows(productCols))

	out, err := repo.List(context.Background(), ProductQuery{Category: "beach", Featured: &featured})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryCreate(t *testing.T) {
	repo, mock := newProductRepo(t)
	now := time.Now().UTC()
	p := models.Product{
		ID: "p-1", Name: "Goa Escape", Location: "Goa", Price: 5000, OriginalPrice: 6000,
		Category: models.CategoryBeach, TripType: models.TripDomestic, Difficulty: models.DifficultyEasy,
		Highlights: []string{"beach"}, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO products").
		WithArgs("p-1", "Goa Escape", "Goa", 5000.0, 6000.0, 0.0, 0, nil, models.CategoryBeach,
			models.TripDomestic, nil, false, 0, `["beach"]`, nil, models.DifficultyEasy,
			"[]", "[]", "[]", "[]", false, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryDeleteMissing(t *testing.T) {
	repo, mock := newProductRepo(t)
	mock.ExpectExec("DELETE FROM products WHERE id = \\?").
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
