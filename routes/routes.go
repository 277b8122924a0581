package routes

import (
	"net/http"
	"time"

	"drepto/handlers"
	"drepto/middleware"
	"drepto/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the mock sign-in endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", hb.LoginHandler)
		auth.POST("/register", hb.RegisterHandler)
		auth.POST("/logout", hb.LogoutHandler)
		auth.GET("/me", hb.CurrentUser)
		auth.DELETE("/session", hb.EndSessionHandler)
	}
}

// RegisterCatalogRoutes registers listing and reference data endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	catalog := api.Group("/catalog")
	{
		catalog.GET("/listings/:kind", hb.ListingHandler)
		catalog.GET("/cities", hb.CitiesHandler)
		catalog.GET("/products", hb.ProductsHandler)
	}
}

// RegisterBookingRoutes sets up the booking flow of each bookable kind.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	flow := api.Group("/booking/:kind")
	{
		flow.GET("", hb.BookingSnapshot)
		flow.POST("/book", hb.BookEntity)
		flow.POST("/reschedule", hb.RescheduleBooking)
		flow.POST("/month", hb.BookingChangeMonth)
		flow.POST("/day", hb.BookingSelectDay)
		flow.POST("/time", hb.BookingSelectTime)
		flow.PUT("/details", hb.BookingSetDetails)
		flow.POST("/confirm", hb.ConfirmBooking)
		flow.POST("/cancel", hb.CancelBooking)
		flow.POST("/finish", hb.FinishBooking)
	}
}

// RegisterAppointmentRoutes sets up the practitioner appointment board.
func RegisterAppointmentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	board := api.Group("/appointments")
	{
		board.GET("", hb.BoardView)
		board.GET("/:id", hb.GetAppointment)
		board.PUT("/tab", hb.BoardSetTab)
		board.PUT("/search", hb.BoardSearch)
		board.POST("/day", hb.BoardToggleDay)
		board.DELETE("/day", hb.BoardClearDate)
		board.POST("/month", hb.BoardChangeMonth)
		board.PUT("/page", hb.BoardSetPage)
	}
}

// RegisterPracticeRoutes sets up the doctor's patient register and the nurse's task list.
func RegisterPracticeRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	patients := api.Group("/patients")
	{
		patients.GET("", hb.PatientsView)
		patients.POST("", hb.AddPatient)
		patients.PUT("/search", hb.PatientsSearch)
		patients.PUT("/page", hb.PatientsSetPage)
	}

	shift := api.Group("/tasks")
	{
		shift.GET("", hb.TasksView)
		shift.POST("", hb.AddTask)
		shift.PUT("/filter", hb.TasksSetFilter)
		shift.POST("/:id/toggle", hb.ToggleTask)
	}
}

// RegisterCartRoutes sets up cart and checkout endpoints.
func RegisterCartRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	cart := api.Group("/cart")
	{
		cart.GET("", hb.CartView)
		cart.POST("/items", hb.CartAddItem)
		cart.DELETE("/items/:index", hb.CartRemoveItem)
		cart.POST("/quick-add", hb.CartQuickAdd)
		cart.POST("/products/:id", hb.CartAddProduct)
	}

	checkout := api.Group("/checkout")
	{
		checkout.GET("", hb.CheckoutState)
		checkout.POST("/cart/open", hb.OpenCartDrawer)
		checkout.POST("/cart/close", hb.CloseCartDrawer)
		checkout.POST("/proceed", hb.ProceedToPayment)
		checkout.PUT("/method", hb.SelectPayMethod)
		checkout.POST("/pay", hb.PayHandler)
		checkout.POST("/done", hb.PaymentDone)
		checkout.POST("/close", hb.ClosePayment)
	}
}

// RegisterAmbulanceRoutes sets up the ambulance request endpoints.
func RegisterAmbulanceRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	amb := api.Group("/ambulance")
	{
		amb.GET("", hb.AmbulanceState)
		amb.PUT("/mode", hb.AmbulanceSetMode)
		amb.PUT("/tier", hb.AmbulanceSetTier)
		amb.PUT("/locations", hb.AmbulanceLocations)
		amb.POST("/request", hb.RequestAmbulance)
		amb.POST("/cancel", hb.CancelAmbulance)
	}
}

// RegisterReminderRoutes sets up the reminder toast and banner endpoints.
func RegisterReminderRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	reminder := api.Group("/reminder")
	{
		reminder.GET("", hb.ReminderState)
		reminder.POST("/dismiss", hb.DismissReminder)
		reminder.POST("/view", hb.ViewReminderDetails)
		reminder.POST("/banner/dismiss", hb.DismissReminderBanner)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	ai := api.Group("/ai")
	{
		ai.POST("/chat", hb.AIChatHandler)
		ai.GET("/history", hb.AIHistoryHandler)
		ai.DELETE("/history", hb.AIResetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Drepto", "backends": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(hb.PortalSession)
	RegisterAuthRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterAppointmentRoutes(api, hb)
	RegisterPracticeRoutes(api, hb)
	RegisterCartRoutes(api, hb)
	RegisterAmbulanceRoutes(api, hb)
	RegisterReminderRoutes(api, hb)
	RegisterAIRoutes(api, hb)
}
