// File: drepto/handlers/bundle.go
package handlers

import (
	"time"

	catalogRepo "drepto/database/repository/catalog"
	"drepto/middleware"

	"github.com/gin-gonic/gin"
)

// SessionStore opens and closes portal sessions.
type SessionStore interface {
	middleware.PortalResolver
	SessionCloser
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Session resolution for every /api route.
	PortalSession gin.HandlerFunc

	// Auth endpoints
	LoginHandler      gin.HandlerFunc
	RegisterHandler   gin.HandlerFunc
	LogoutHandler     gin.HandlerFunc
	CurrentUser       gin.HandlerFunc
	EndSessionHandler gin.HandlerFunc

	// Catalog endpoints
	ListingHandler  gin.HandlerFunc
	CitiesHandler   gin.HandlerFunc
	ProductsHandler gin.HandlerFunc

	// Booking flow endpoints
	BookingSnapshot    gin.HandlerFunc
	BookEntity         gin.HandlerFunc
	RescheduleBooking  gin.HandlerFunc
	BookingChangeMonth gin.HandlerFunc
	BookingSelectDay   gin.HandlerFunc
	BookingSelectTime  gin.HandlerFunc
	BookingSetDetails  gin.HandlerFunc
	ConfirmBooking     gin.HandlerFunc
	CancelBooking      gin.HandlerFunc
	FinishBooking      gin.HandlerFunc

	// Appointment board endpoints
	BoardView        gin.HandlerFunc
	GetAppointment   gin.HandlerFunc
	BoardSetTab      gin.HandlerFunc
	BoardSearch      gin.HandlerFunc
	BoardToggleDay   gin.HandlerFunc
	BoardClearDate   gin.HandlerFunc
	BoardChangeMonth gin.HandlerFunc
	BoardSetPage     gin.HandlerFunc

	// Patient register endpoints
	PatientsView    gin.HandlerFunc
	AddPatient      gin.HandlerFunc
	PatientsSearch  gin.HandlerFunc
	PatientsSetPage gin.HandlerFunc

	// Shift task endpoints
	TasksView      gin.HandlerFunc
	AddTask        gin.HandlerFunc
	ToggleTask     gin.HandlerFunc
	TasksSetFilter gin.HandlerFunc

	// Cart endpoints
	CartView       gin.HandlerFunc
	CartAddItem    gin.HandlerFunc
	CartRemoveItem gin.HandlerFunc
	CartQuickAdd   gin.HandlerFunc
	CartAddProduct gin.HandlerFunc

	// Checkout endpoints
	CheckoutState    gin.HandlerFunc
	OpenCartDrawer   gin.HandlerFunc
	CloseCartDrawer  gin.HandlerFunc
	ProceedToPayment gin.HandlerFunc
	SelectPayMethod  gin.HandlerFunc
	PayHandler       gin.HandlerFunc
	PaymentDone      gin.HandlerFunc
	ClosePayment     gin.HandlerFunc

	// Ambulance endpoints
	AmbulanceState     gin.HandlerFunc
	AmbulanceSetMode   gin.HandlerFunc
	AmbulanceSetTier   gin.HandlerFunc
	AmbulanceLocations gin.HandlerFunc
	RequestAmbulance   gin.HandlerFunc
	CancelAmbulance    gin.HandlerFunc

	// Reminder endpoints
	ReminderState         gin.HandlerFunc
	DismissReminder       gin.HandlerFunc
	ViewReminderDetails   gin.HandlerFunc
	DismissReminderBanner gin.HandlerFunc

	// AI endpoints
	AIChatHandler    gin.HandlerFunc
	AIHistoryHandler gin.HandlerFunc
	AIResetHandler   gin.HandlerFunc
}

// NewHandlerBundle wires every handler against the shared catalog and session store.
func NewHandlerBundle(catalog catalogRepo.CatalogRepository, sessions SessionStore, now func() time.Time) *HandlerBundle {
	authHandler := NewAuthHandler(sessions)
	catalogHandler := NewCatalogHandler(catalog)
	bookingHandler := NewBookingHandler(catalog)
	boardHandler := NewAppointmentsHandler()
	patientsHandler := NewPatientsHandler()
	tasksHandler := NewTasksHandler()
	cartHandler := NewCartHandler(catalog, now)
	checkoutHandler := NewCheckoutHandler()
	ambulanceHandler := NewAmbulanceHandler()
	reminderHandler := NewReminderHandler()
	aiHandler := NewAIHandler()

	return &HandlerBundle{
		PortalSession: middleware.PortalSession(sessions),

		LoginHandler:      authHandler.Login,
		RegisterHandler:   authHandler.Register,
		LogoutHandler:     authHandler.Logout,
		CurrentUser:       authHandler.Me,
		EndSessionHandler: authHandler.EndSession,

		ListingHandler:  catalogHandler.Listing,
		CitiesHandler:   catalogHandler.Cities,
		ProductsHandler: catalogHandler.Products,

		BookingSnapshot:    bookingHandler.Snapshot,
		BookEntity:         bookingHandler.Book,
		RescheduleBooking:  bookingHandler.Reschedule,
		BookingChangeMonth: bookingHandler.ChangeMonth,
		BookingSelectDay:   bookingHandler.SelectDay,
		BookingSelectTime:  bookingHandler.SelectTime,
		BookingSetDetails:  bookingHandler.SetDetails,
		ConfirmBooking:     bookingHandler.Confirm,
		CancelBooking:      bookingHandler.Cancel,
		FinishBooking:      bookingHandler.Finish,

		BoardView:        boardHandler.View,
		GetAppointment:   boardHandler.Get,
		BoardSetTab:      boardHandler.SetTab,
		BoardSearch:      boardHandler.Search,
		BoardToggleDay:   boardHandler.ToggleDay,
		BoardClearDate:   boardHandler.ClearDate,
		BoardChangeMonth: boardHandler.ChangeMonth,
		BoardSetPage:     boardHandler.SetPage,

		PatientsView:    patientsHandler.View,
		AddPatient:      patientsHandler.Add,
		PatientsSearch:  patientsHandler.Search,
		PatientsSetPage: patientsHandler.SetPage,

		TasksView:      tasksHandler.View,
		AddTask:        tasksHandler.Add,
		ToggleTask:     tasksHandler.Toggle,
		TasksSetFilter: tasksHandler.SetFilter,

		CartView:       cartHandler.View,
		CartAddItem:    cartHandler.AddItem,
		CartRemoveItem: cartHandler.RemoveItem,
		CartQuickAdd:   cartHandler.QuickAdd,
		CartAddProduct: cartHandler.AddProduct,

		CheckoutState:    checkoutHandler.State,
		OpenCartDrawer:   checkoutHandler.OpenCart,
		CloseCartDrawer:  checkoutHandler.CloseCart,
		ProceedToPayment: checkoutHandler.Proceed,
		SelectPayMethod:  checkoutHandler.SelectMethod,
		PayHandler:       checkoutHandler.Pay,
		PaymentDone:      checkoutHandler.Done,
		ClosePayment:     checkoutHandler.ClosePayment,

		AmbulanceState:     ambulanceHandler.State,
		AmbulanceSetMode:   ambulanceHandler.SetMode,
		AmbulanceSetTier:   ambulanceHandler.SelectTier,
		AmbulanceLocations: ambulanceHandler.SetLocations,
		RequestAmbulance:   ambulanceHandler.Request,
		CancelAmbulance:    ambulanceHandler.Cancel,

		ReminderState:         reminderHandler.State,
		DismissReminder:       reminderHandler.Dismiss,
		ViewReminderDetails:   reminderHandler.ViewDetails,
		DismissReminderBanner: reminderHandler.DismissBanner,

		AIChatHandler:    aiHandler.Chat,
		AIHistoryHandler: aiHandler.History,
		AIResetHandler:   aiHandler.Reset,
	}
}
