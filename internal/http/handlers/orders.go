package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"backoffice/internal/domain/models"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type statusRequest struct {
	Status string `json:"status"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

// POST /api/orders
func (h Handler) CreateOrder(c *gin.Context) {
	var in services.CreateOrderInput
	if !BindJSONOrError(c, &in) {
		return
	}
	order, err := h.Orders.CreateOrder(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"orderId": order.ID, "order": order})
}

// GET /api/orders?status=&page=&limit=
func (h Handler) ListOrders(c *gin.Context) {
	page, err := h.Orders.ListOrders(c.Request.Context(), models.OrderFilter{
		Status: models.OrderStatus(c.Query("status")),
		UserID: c.Query("userId"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"orders":      page.Orders,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

// GET /api/users/:id/orders
func (h Handler) GetOrdersByUser(c *gin.Context) {
	page, err := h.Orders.GetOrdersByUser(c.Request.Context(), c.Param("id"), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"orders":      page.Orders,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

// GET /api/orders/:id
func (h Handler) GetOrder(c *gin.Context) {
	order, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order": order})
}

// PUT /api/orders/:id/status
func (h Handler) UpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	order, err := h.Orders.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order": order})
}

// PUT /api/orders/:id/payment-status
func (h Handler) UpdatePaymentStatus(c *gin.Context) {
	var req paymentStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	order, err := h.Orders.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order": order})
}

// DELETE /api/orders/:id
func (h Handler) DeleteOrder(c *gin.Context) {
	if err := h.Orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "order deleted"})
}

// GET /api/orders/stats
func (h Handler) GetOrderStats(c *gin.Context) {
	stats, err := h.Stats.GetOrderStats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"stats": stats})
}

// POST /api/orders/:id/confirmation
func (h Handler) SendOrderConfirmation(c *gin.Context) {
	receipt, err := h.Notifications.SendOrderConfirmation(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"receipt": receipt})
}

// GET /api/orders/:id/invoice
func (h Handler) GetOrderInvoice(c *gin.Context) {
	pdf, filename, err := h.Docs.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdf, filename)
}

func servePDF(c *gin.Context, pdf []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
