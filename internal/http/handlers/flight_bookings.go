package handlers

import (
	"net/http"

	"backoffice/internal/domain/models"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type confirmBookingRequest struct {
	PaymentID string `json:"paymentId"`
}

func endpointFromForm(c *gin.Context, prefix string) models.FlightEndpoint {
	return models.FlightEndpoint{
		Airport: c.PostForm(prefix + "Airport"),
		City:    c.PostForm(prefix + "City"),
		Date:    c.PostForm(prefix + "Date"),
		Time:    c.PostForm(prefix + "Time"),
	}
}

// POST /api/flight-bookings (form)
func (h Handler) CreateFlightBooking(c *gin.Context) {
	form := services.CreateBookingForm{
		FlightID:     c.PostForm("flightId"),
		Airline:      c.PostForm("airline"),
		FlightNumber: c.PostForm("flightNumber"),
		Departure:    endpointFromForm(c, "departure"),
		Arrival:      endpointFromForm(c, "arrival"),
		Passengers:   c.PostForm("passengers"),
		TotalAmount:  c.PostForm("totalAmount"),
	}
	booking, err := h.Bookings.CreateBooking(c.Request.Context(), form)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"booking": booking})
}

// GET /api/flight-bookings
func (h Handler) ListFlightBookings(c *gin.Context) {
	list, err := h.Bookings.ListBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"bookings": list})
}

// GET /api/flight-bookings/:id
func (h Handler) GetFlightBooking(c *gin.Context) {
	b, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"booking": b})
}

// PUT /api/flight-bookings/:id/status (form: status, paymentId)
func (h Handler) UpdateFlightBookingStatus(c *gin.Context) {
	b, err := h.Bookings.UpdateBookingStatus(c.Request.Context(), c.Param("id"), c.PostForm("status"), c.PostForm("paymentId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"booking": b})
}

// PUT /api/flight-bookings/:id/confirm
func (h Handler) ConfirmFlightBooking(c *gin.Context) {
	var req confirmBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	b, err := h.Bookings.ConfirmBooking(c.Request.Context(), c.Param("id"), req.PaymentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"booking": b})
}

// DELETE /api/flight-bookings/:id
func (h Handler) DeleteFlightBooking(c *gin.Context) {
	if err := h.Bookings.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "booking deleted"})
}

// GET /api/flight-bookings/:id/ticket
func (h Handler) GetFlightBookingTicket(c *gin.Context) {
	pdf, filename, err := h.Docs.GenerateETicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdf, filename)
}
