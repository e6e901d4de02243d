package services

import (
	"context"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/events"
	"backoffice/internal/mail"
	"backoffice/internal/repositories"
)

type OrderStore interface {
	Create(ctx context.Context, o models.Order) error
	GetByID(ctx context.Context, id string) (models.Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, int, error)
	List(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, now time.Time) error
	UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus, now time.Time) error
	Delete(ctx context.Context, id string) error
}

// OrderReader is the read side used by notifications and invoices.
type OrderReader interface {
	GetByID(ctx context.Context, id string) (models.Order, error)
}

type FlightBookingStore interface {
	Create(ctx context.Context, b models.FlightBooking) error
	GetByID(ctx context.Context, id string) (models.FlightBooking, error)
	List(ctx context.Context) ([]models.FlightBooking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus, paymentID string, now time.Time) error
	Delete(ctx context.Context, id string) error
}

type ProductStore interface {
	Create(ctx context.Context, p models.Product) error
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (models.Product, error)
	List(ctx context.Context, q repositories.ProductQuery) ([]models.Product, error)
}

type StatsStore interface {
	CountOrders(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, status models.OrderStatus) (int, error)
	SumOrderAmounts(ctx context.Context, status models.PaymentStatus) (float64, error)
	CountProducts(ctx context.Context) (int, error)
	CountFeaturedProducts(ctx context.Context) (int, error)
	CountProductsByCategory(ctx context.Context) ([]domain.CountByKey, error)
	CountProductsByFeatured(ctx context.Context) ([]models.FeaturedCount, error)
	ProductPriceSummary(ctx context.Context) (models.PriceSummary, error)
}

type PaymentStore interface {
	List(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id string) (models.Payment, error)
}

type TestimonialStore interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	GetByID(ctx context.Context, id string) (models.Testimonial, error)
	Create(ctx context.Context, t models.Testimonial) error
	Update(ctx context.Context, t models.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type BlogStore interface {
	List(ctx context.Context) ([]models.Blog, error)
	GetByID(ctx context.Context, id string) (models.Blog, error)
	Create(ctx context.Context, b models.Blog) error
	Update(ctx context.Context, b models.Blog) error
	Delete(ctx context.Context, id string) error
}

type SubscriberStore interface {
	List(ctx context.Context) ([]models.Subscriber, error)
	Create(ctx context.Context, s models.Subscriber) error
	Delete(ctx context.Context, id string) error
}

type OfferStore interface {
	List(ctx context.Context) ([]models.Offer, error)
	GetByID(ctx context.Context, id string) (models.Offer, error)
	Create(ctx context.Context, o models.Offer) error
	Update(ctx context.Context, o models.Offer) error
	Delete(ctx context.Context, id string) error
}

type ContactStore interface {
	Create(ctx context.Context, c models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id string) (models.Contact, error)
	Delete(ctx context.Context, id string) error
}

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) error
	UpdateRole(ctx context.Context, id string, role models.UserRole, now time.Time) error
	Delete(ctx context.Context, id string) error
}

// ViewCache caches list/stats payloads and invalidates them by path. Load
// resolves the slot for the current generation; Store must be given that
// slot so a result read before an invalidation can never be served after it.
type ViewCache interface {
	Load(ctx context.Context, namespace, key string, dst any) (slot string, hit bool)
	Store(ctx context.Context, slot string, value any)
	InvalidatePaths(ctx context.Context, paths ...string)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event events.OrderEvent) error
}

type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type noViews struct{}

func (noViews) Load(context.Context, string, string, any) (string, bool) { return "", false }
func (noViews) Store(context.Context, string, any)                       {}
func (noViews) InvalidatePaths(context.Context, ...string)               {}

type noEvents struct{}

func (noEvents) PublishOrderEvent(context.Context, events.OrderEvent) error { return nil }
