package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/payments
func (h Handler) ListPayments(c *gin.Context) {
	list, err := h.Payments.ListPayments(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"payments": list})
}

// GET /api/payments/:id
func (h Handler) GetPayment(c *gin.Context) {
	p, err := h.Payments.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"payment": p})
}
