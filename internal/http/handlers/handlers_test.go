package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingID = "0b9e7c1a-3d2f-4e5a-8b6c-7d8e9f0a1b2c"

func init() {
	gin.SetMode(gin.TestMode)
}

type missingOrders struct{ services.OrderStore }

func (missingOrders) GetByID(context.Context, string) (models.Order, error) {
	return models.Order{}, repositories.ErrNotFound
}

type takenSubscribers struct{ services.SubscriberStore }

func (takenSubscribers) Create(context.Context, models.Subscriber) error {
	return repositories.ErrDuplicate
}

type noUsers struct{ services.UserStore }

func (noUsers) GetByEmail(context.Context, string) (models.User, error) {
	return models.User{}, repositories.ErrNotFound
}

type listedPayments struct{ services.PaymentStore }

func (listedPayments) List(context.Context) ([]models.Payment, error) {
	return []models.Payment{{ID: missingID, Amount: 4999}}, nil
}

type downPinger struct{}

func (downPinger) PingContext(context.Context) error { return errors.New("dial tcp: refused") }

func serve(t *testing.T, method, path, body string, register func(r *gin.Engine)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	r := gin.New()
	register(r)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestHealth(t *testing.T) {
	h := Handler{}
	w, body := serve(t, http.MethodGet, "/api/health", "", func(r *gin.Engine) {
		r.GET("/api/health", h.Health)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["status"])
}

func TestDBCheck_PingFailure(t *testing.T) {
	h := Handler{DB: downPinger{}}
	w, body := serve(t, http.MethodGet, "/api/db-check", "", func(r *gin.Engine) {
		r.GET("/api/db-check", h.DBCheck)
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "db_unavailable", body["code"])
}

func TestCreateOrder_ValidationIs400(t *testing.T) {
	h := Handler{Orders: services.OrderService{}}
	w, body := serve(t, http.MethodPost, "/api/orders", `{"trips":[]}`, func(r *gin.Engine) {
		r.POST("/api/orders", h.CreateOrder)
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", body["code"])
	assert.Equal(t, false, body["success"])
}

func TestCreateOrder_EmptyBody(t *testing.T) {
	h := Handler{}
	w, body := serve(t, http.MethodPost, "/api/orders", "", func(r *gin.Engine) {
		r.POST("/api/orders", h.CreateOrder)
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "request body is empty", body["error"])
}

func TestGetOrder_NotFound(t *testing.T) {
	h := Handler{Orders: services.OrderService{Orders: missingOrders{}}}
	w, body := serve(t, http.MethodGet, "/api/orders/"+missingID, "", func(r *gin.Engine) {
		r.GET("/api/orders/:id", h.GetOrder)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", body["code"])
	assert.Equal(t, "order not found", body["error"])
}

func TestGetOrder_MalformedID(t *testing.T) {
	h := Handler{Orders: services.OrderService{Orders: missingOrders{}}}
	w, body := serve(t, http.MethodGet, "/api/orders/not-a-uuid", "", func(r *gin.Engine) {
		r.GET("/api/orders/:id", h.GetOrder)
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", body["code"])
}

func TestSubscribe_DuplicateIsConflict(t *testing.T) {
	h := Handler{Subscribers: services.SubscriberService{Subscribers: takenSubscribers{}}}
	w, body := serve(t, http.MethodPost, "/api/subscribers", `{"email":"Asha@Example.com"}`, func(r *gin.Engine) {
		r.POST("/api/subscribers", h.Subscribe)
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", body["code"])
	assert.Contains(t, body["error"], "email already subscribed")
}

func TestLogin_UnknownUserIs401(t *testing.T) {
	h := Handler{Auth: services.AuthService{Users: noUsers{}, Secret: []byte("test-secret")}}
	w, body := serve(t, http.MethodPost, "/api/auth/login", `{"email":"nobody@example.com","password":"hunter22"}`, func(r *gin.Engine) {
		r.POST("/api/auth/login", h.Login)
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", body["code"])
}

func TestListPayments_SuccessEnvelope(t *testing.T) {
	h := Handler{Payments: services.PaymentService{Payments: listedPayments{}}}
	w, body := serve(t, http.MethodGet, "/api/payments", "", func(r *gin.Engine) {
		r.GET("/api/payments", h.ListPayments)
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	payments, ok := body["payments"].([]any)
	require.True(t, ok)
	assert.Len(t, payments, 1)
}
