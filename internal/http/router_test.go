package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type emptyPayments struct{ services.PaymentStore }

func (emptyPayments) List(context.Context) ([]models.Payment, error) { return []models.Payment{}, nil }

func newTestRouter() (*gin.Engine, services.AuthService) {
	auth := services.AuthService{Secret: []byte("router-secret")}
	handler := h.Handler{
		Auth:     auth,
		Payments: services.PaymentService{Payments: emptyPayments{}},
	}
	return NewRouter(handler, nil, intconfig.Env{}), auth
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthIsPublic(t *testing.T) {
	r, _ := newTestRouter()
	w := do(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter()
	w := do(r, http.MethodGet, "/api/payments", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	r, auth := newTestRouter()
	token, err := auth.IssueToken(models.User{ID: "u-1", Role: models.RoleUser})
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/api/payments", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoutesAcceptAdmin(t *testing.T) {
	r, auth := newTestRouter()
	token, err := auth.IssueToken(models.User{ID: "u-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/api/payments", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"payments":[]}`, w.Body.String())
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	r, _ := newTestRouter()
	w := do(r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"route not found"`)
}

func TestWebsocketNotMountedWithoutHub(t *testing.T) {
	r, _ := newTestRouter()
	w := do(r, http.MethodGet, "/api/ws", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
