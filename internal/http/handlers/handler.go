package handlers

import (
	"context"

	"backoffice/internal/services"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler exposes every service over HTTP.
type Handler struct {
	DB            Pinger
	Orders        services.OrderService
	Bookings      services.FlightBookingService
	Stats         services.StatsService
	Notifications services.NotificationService
	Docs          services.DocsService
	Products      services.ProductService
	Payments      services.PaymentService
	Testimonials  services.TestimonialService
	Blogs         services.BlogService
	Subscribers   services.SubscriberService
	Offers        services.OfferService
	Contacts      services.ContactService
	Users         services.UserService
	Auth          services.AuthService
}
