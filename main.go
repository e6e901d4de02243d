package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/cache"
	intconfig "backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/events"
	router "backoffice/internal/http"
	"backoffice/internal/http/handlers"
	"backoffice/internal/mail"
	"backoffice/internal/realtime"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	utils.ConfigureLogger(env.LogLevel, env.GinMode)
	log := utils.Log

	if err := env.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	conn, err := intconfig.ConnectDB(env)
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.EnsureSchema(ctx, conn); err != nil {
		log.WithError(err).Fatal("failed to ensure schema")
	}

	hub := realtime.NewHub(env.AllowedOrigins, log)
	go hub.Run(ctx)

	var viewCache cache.Cache
	if env.RedisAddr != "" {
		rc := cache.NewRedisCache(env.RedisAddr, "backoffice")
		if err := cache.Ping(ctx, rc); err != nil {
			log.WithError(err).Warn("redis unavailable, view cache disabled")
		} else {
			viewCache = rc
		}
	}
	views := cache.NewViews(viewCache, hub, env.CacheTTL, log)

	var publisher services.EventPublisher
	if len(env.KafkaBrokers) > 0 {
		producer, err := events.NewKafkaProducer(env.KafkaBrokers, env.KafkaTopic, log)
		if err != nil {
			log.WithError(err).Warn("kafka unavailable, order events disabled")
		} else {
			defer producer.Close()
			publisher = producer
		}
	}

	orderRepo := repositories.OrderRepository{DB: conn}
	bookingRepo := repositories.FlightBookingRepository{DB: conn}
	statsRepo := repositories.StatsRepository{DB: conn}
	userRepo := repositories.UserRepository{DB: conn}

	docs := services.DocsService{Orders: orderRepo, Bookings: bookingRepo, Brand: env.MailBrand}
	users := services.UserService{Users: userRepo, Views: views}

	handler := handlers.Handler{
		DB:       conn,
		Orders:   services.OrderService{Orders: orderRepo, Views: views, Events: publisher},
		Bookings: services.FlightBookingService{Bookings: bookingRepo, Views: views},
		Stats:    services.StatsService{Stats: statsRepo, Views: views},
		Notifications: services.NotificationService{
			Orders: orderRepo,
			Mailer: mail.NewSMTPMailer(env.SMTPHost, env.SMTPPort, env.SMTPEmail, env.SMTPPassword),
			Docs:   docs,
			From:   env.SMTPEmail,
			Brand:  env.MailBrand,
		},
		Docs:         docs,
		Products:     services.ProductService{Products: repositories.ProductRepository{DB: conn}, Stats: statsRepo, Views: views},
		Payments:     services.PaymentService{Payments: repositories.PaymentRepository{DB: conn}},
		Testimonials: services.TestimonialService{Testimonials: repositories.TestimonialRepository{DB: conn}, Views: views},
		Blogs:        services.BlogService{Blogs: repositories.BlogRepository{DB: conn}, Views: views},
		Subscribers:  services.SubscriberService{Subscribers: repositories.SubscriberRepository{DB: conn}, Views: views},
		Offers:       services.OfferService{Offers: repositories.OfferRepository{DB: conn}, Views: views},
		Contacts:     services.ContactService{Contacts: repositories.ContactRepository{DB: conn}, Views: views},
		Users:        users,
		Auth:         services.AuthService{Users: userRepo, Secret: []byte(env.JWTSecret)},
	}

	if err := users.EnsureAdmin(ctx, env.AdminEmail, env.AdminPassword); err != nil {
		log.WithError(err).Fatal("failed to bootstrap admin user")
	}

	r := router.NewRouter(handler, http.HandlerFunc(hub.HandleWebSocket), env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("server stopped")
}
