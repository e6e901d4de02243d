package handlers

import (
	"net/http"

	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// GET /api/testimonials
func (h Handler) ListTestimonials(c *gin.Context) {
	list, err := h.Testimonials.ListTestimonials(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"testimonials": list})
}

// GET /api/testimonials/:id
func (h Handler) GetTestimonial(c *gin.Context) {
	t, err := h.Testimonials.GetTestimonial(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"testimonial": t})
}

// POST /api/testimonials
func (h Handler) CreateTestimonial(c *gin.Context) {
	var in services.TestimonialInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := h.Testimonials.CreateTestimonial(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"testimonial": t})
}

// PUT /api/testimonials/:id
func (h Handler) UpdateTestimonial(c *gin.Context) {
	var in services.TestimonialInput
	if !BindJSONOrError(c, &in) {
		return
	}
	t, err := h.Testimonials.UpdateTestimonial(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"testimonial": t})
}

// DELETE /api/testimonials/:id
func (h Handler) DeleteTestimonial(c *gin.Context) {
	if err := h.Testimonials.DeleteTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "testimonial deleted"})
}

// GET /api/blogs
func (h Handler) ListBlogs(c *gin.Context) {
	list, err := h.Blogs.ListBlogs(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"blogs": list})
}

// GET /api/blogs/:id
func (h Handler) GetBlog(c *gin.Context) {
	b, err := h.Blogs.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"blog": b})
}

// POST /api/blogs
func (h Handler) CreateBlog(c *gin.Context) {
	var in services.BlogInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := h.Blogs.CreateBlog(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"blog": b})
}

// PUT /api/blogs/:id
func (h Handler) UpdateBlog(c *gin.Context) {
	var in services.BlogInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := h.Blogs.UpdateBlog(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"blog": b})
}

// DELETE /api/blogs/:id
func (h Handler) DeleteBlog(c *gin.Context) {
	if err := h.Blogs.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "blog deleted"})
}

// GET /api/subscribers
func (h Handler) ListSubscribers(c *gin.Context) {
	list, err := h.Subscribers.ListSubscribers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"subscribers": list})
}

// POST /api/subscribers (public)
func (h Handler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sub, err := h.Subscribers.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"subscriber": sub})
}

// DELETE /api/subscribers/:id
func (h Handler) DeleteSubscriber(c *gin.Context) {
	if err := h.Subscribers.DeleteSubscriber(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "subscriber deleted"})
}

// GET /api/offers
func (h Handler) ListOffers(c *gin.Context) {
	list, err := h.Offers.ListOffers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"offers": list})
}

// GET /api/offers/:id
func (h Handler) GetOffer(c *gin.Context) {
	o, err := h.Offers.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"offer": o})
}

// POST /api/offers
func (h Handler) CreateOffer(c *gin.Context) {
	var in services.OfferInput
	if !BindJSONOrError(c, &in) {
		return
	}
	o, err := h.Offers.CreateOffer(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"offer": o})
}

// PUT /api/offers/:id
func (h Handler) UpdateOffer(c *gin.Context) {
	var in services.OfferInput
	if !BindJSONOrError(c, &in) {
		return
	}
	o, err := h.Offers.UpdateOffer(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"offer": o})
}

// DELETE /api/offers/:id
func (h Handler) DeleteOffer(c *gin.Context) {
	if err := h.Offers.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "offer deleted"})
}

// POST /api/contacts (public)
func (h Handler) SubmitContact(c *gin.Context) {
	var in services.ContactInput
	if !BindJSONOrError(c, &in) {
		return
	}
	contact, err := h.Contacts.SubmitContact(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"contact": contact})
}

// GET /api/contacts
func (h Handler) ListContacts(c *gin.Context) {
	list, err := h.Contacts.ListContacts(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"contacts": list})
}

// GET /api/contacts/:id
func (h Handler) GetContact(c *gin.Context) {
	contact, err := h.Contacts.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"contact": contact})
}

// DELETE /api/contacts/:id
func (h Handler) DeleteContact(c *gin.Context) {
	if err := h.Contacts.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "contact deleted"})
}
