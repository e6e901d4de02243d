package handlers

import (
	"net/http"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/products
func (h Handler) ListProducts(c *gin.Context) {
	list, err := h.Products.ListProducts(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"products": list})
}

// GET /api/products/featured
func (h Handler) ListFeaturedProducts(c *gin.Context) {
	list, err := h.Products.ListFeatured(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"products": list})
}

// GET /api/products/category/:category
func (h Handler) ListProductsByCategory(c *gin.Context) {
	list, err := h.Products.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"products": list})
}

// GET /api/products/:id
func (h Handler) GetProduct(c *gin.Context) {
	p, err := h.Products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"product": p})
}

// POST /api/products
func (h Handler) CreateProduct(c *gin.Context) {
	var in services.ProductInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := h.Products.CreateProduct(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"product": p})
}

// PUT /api/products/:id
func (h Handler) UpdateProduct(c *gin.Context) {
	var in services.ProductInput
	if !BindJSONOrError(c, &in) {
		return
	}
	p, err := h.Products.UpdateProduct(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"product": p})
}

// DELETE /api/products/:id
func (h Handler) DeleteProduct(c *gin.Context) {
	if err := h.Products.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "product deleted"})
}

// GET /api/products/count
func (h Handler) CountProducts(c *gin.Context) {
	n, err := h.Products.CountProducts(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"count": n})
}

// GET /api/products/count/category
func (h Handler) CountProductsByCategory(c *gin.Context) {
	counts, err := h.Products.CountProductsByCategory(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"counts": counts})
}

// GET /api/products/count/featured
func (h Handler) CountProductsByFeatured(c *gin.Context) {
	counts, err := h.Products.CountProductsByFeatured(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"counts": counts})
}

// GET /api/products/stats
func (h Handler) GetProductsStats(c *gin.Context) {
	stats, err := h.Stats.GetProductsStats(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"stats": stats})
}
