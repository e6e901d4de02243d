package handlers

import (
	"net/http"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type roleRequest struct {
	Role string `json:"role"`
}

// GET /api/users
func (h Handler) ListUsers(c *gin.Context) {
	list, err := h.Users.ListUsers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"users": list})
}

// GET /api/users/:id
func (h Handler) GetUser(c *gin.Context) {
	u, err := h.Users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": u})
}

// POST /api/users
func (h Handler) CreateUser(c *gin.Context) {
	var in services.CreateUserInput
	if !BindJSONOrError(c, &in) {
		return
	}
	u, err := h.Users.CreateUser(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"user": u})
}

// PUT /api/users/:id/role
func (h Handler) UpdateUserRole(c *gin.Context) {
	var req roleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := h.Users.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": u})
}

// DELETE /api/users/:id
func (h Handler) DeleteUser(c *gin.Context) {
	if err := h.Users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "user deleted"})
}
