package api

import (
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts every endpoint. hub may be nil, in which case /api/ws is
// not served.
func NewRouter(handler h.Handler, hub stdhttp.Handler, env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"code":    "not_found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	// The websocket feed is long lived and stays outside the request timeout.
	if hub != nil {
		r.GET("/api/ws", gin.WrapH(hub))
	}

	api := r.Group("/api")
	api.Use(middleware.Timeout(env.RequestTimeout))
	{
		api.GET("/health", handler.Health)
		api.GET("/db-check", handler.DBCheck)

		api.POST("/auth/login", handler.Login)
		api.POST("/contacts", handler.SubmitContact)
		api.POST("/subscribers", handler.Subscribe)

		admin := api.Group("")
		admin.Use(middleware.RequireAuth(handler.Auth), middleware.RequireRoles("admin"))
		mountOrders(admin.Group("/orders"), handler)
		mountFlightBookings(admin.Group("/flight-bookings"), handler)
		mountProducts(admin.Group("/products"), handler)

		payments := admin.Group("/payments")
		payments.GET("", handler.ListPayments)
		payments.GET("/:id", handler.GetPayment)

		testimonials := admin.Group("/testimonials")
		testimonials.GET("", handler.ListTestimonials)
		testimonials.GET("/:id", handler.GetTestimonial)
		testimonials.POST("", handler.CreateTestimonial)
		testimonials.PUT("/:id", handler.UpdateTestimonial)
		testimonials.DELETE("/:id", handler.DeleteTestimonial)

		blogs := admin.Group("/blogs")
		blogs.GET("", handler.ListBlogs)
		blogs.GET("/:id", handler.GetBlog)
		blogs.POST("", handler.CreateBlog)
		blogs.PUT("/:id", handler.UpdateBlog)
		blogs.DELETE("/:id", handler.DeleteBlog)

		subscribers := admin.Group("/subscribers")
		subscribers.GET("", handler.ListSubscribers)
		subscribers.DELETE("/:id", handler.DeleteSubscriber)

		offers := admin.Group("/offers")
		offers.GET("", handler.ListOffers)
		offers.GET("/:id", handler.GetOffer)
		offers.POST("", handler.CreateOffer)
		offers.PUT("/:id", handler.UpdateOffer)
		offers.DELETE("/:id", handler.DeleteOffer)

		contacts := admin.Group("/contacts")
		contacts.GET("", handler.ListContacts)
		contacts.GET("/:id", handler.GetContact)
		contacts.DELETE("/:id", handler.DeleteContact)

		users := admin.Group("/users")
		users.GET("", handler.ListUsers)
		users.GET("/:id", handler.GetUser)
		users.GET("/:id/orders", handler.GetOrdersByUser)
		users.POST("", handler.CreateUser)
		users.PUT("/:id/role", handler.UpdateUserRole)
		users.DELETE("/:id", handler.DeleteUser)
	}

	return r
}

func mountOrders(g *gin.RouterGroup, handler h.Handler) {
	g.POST("", handler.CreateOrder)
	g.GET("", handler.ListOrders)
	g.GET("/stats", handler.GetOrderStats)
	g.GET("/:id", handler.GetOrder)
	g.PUT("/:id/status", handler.UpdateOrderStatus)
	g.PUT("/:id/payment-status", handler.UpdatePaymentStatus)
	g.DELETE("/:id", handler.DeleteOrder)
	g.POST("/:id/confirmation", handler.SendOrderConfirmation)
	g.GET("/:id/invoice", handler.GetOrderInvoice)
}

func mountFlightBookings(g *gin.RouterGroup, handler h.Handler) {
	g.POST("", handler.CreateFlightBooking)
	g.GET("", handler.ListFlightBookings)
	g.GET("/:id", handler.GetFlightBooking)
	g.PUT("/:id/status", handler.UpdateFlightBookingStatus)
	g.PUT("/:id/confirm", handler.ConfirmFlightBooking)
	g.DELETE("/:id", handler.DeleteFlightBooking)
	g.GET("/:id/ticket", handler.GetFlightBookingTicket)
}

func mountProducts(g *gin.RouterGroup, handler h.Handler) {
	g.GET("", handler.ListProducts)
	g.GET("/featured", handler.ListFeaturedProducts)
	g.GET("/category/:category", handler.ListProductsByCategory)
	g.GET("/count", handler.CountProducts)
	g.GET("/count/category", handler.CountProductsByCategory)
	g.GET("/count/featured", handler.CountProductsByFeatured)
	g.GET("/stats", handler.GetProductsStats)
	g.GET("/:id", handler.GetProduct)
	g.POST("", handler.CreateProduct)
	g.PUT("/:id", handler.UpdateProduct)
	g.DELETE("/:id", handler.DeleteProduct)
}
