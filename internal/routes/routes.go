package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/padlasalon/salon-booking/internal/ai"
	"github.com/padlasalon/salon-booking/internal/audit"
	"github.com/padlasalon/salon-booking/internal/config"
	"github.com/padlasalon/salon-booking/internal/handlers"
	infraRepo "github.com/padlasalon/salon-booking/internal/infra/repository"
	"github.com/padlasalon/salon-booking/internal/kv"
	"github.com/padlasalon/salon-booking/internal/middleware"
	"github.com/padlasalon/salon-booking/internal/otp"
	ucBooking "github.com/padlasalon/salon-booking/internal/usecase/booking"
	"github.com/padlasalon/salon-booking/internal/usecase/identity"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	store kv.Store,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	otpManager := otp.NewManager(store, log)
	aiClient := ai.NewClient(cfg.GeminiAPIKey, store, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)
	quoteBookingUC := ucBooking.NewQuoteBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	statsUC := ucBooking.NewGetStats(bookingRepo)
	resolveUC := identity.NewResolveOrCreate(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(otpManager, resolveUC, cfg)
	catalogHandler := handlers.NewCatalogHandler(bookingRepo, availabilityUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, quoteBookingUC, listBookingsUC)
	adminHandler := handlers.NewAdminHandler(
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listBookingsUC,
		statsUC,
	)
	meHandler := handlers.NewMeHandler(bookingRepo)
	assistantHandler := handlers.NewAssistantHandler(aiClient, bookingRepo)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/otp", authHandler.RequestOTP)
		api.POST("/auth/verify", authHandler.VerifyOTP)

		// ------------------------------
		// CATALOG / AVAILABILITY (public)
		// ------------------------------
		api.GET("/catalog/services", catalogHandler.ListServices)
		api.GET("/catalog/stylists", catalogHandler.ListStylists)
		api.GET("/catalog/slots", catalogHandler.Slots)
		api.GET("/availability", catalogHandler.Stylists)

		// ------------------------------
		// BOOKINGS (guest or customer)
		// ------------------------------
		open := api.Group("/")
		open.Use(middleware.OptionalAuth(cfg))
		{
			open.POST("/bookings", bookingHandler.Create)
			open.POST("/bookings/quote", bookingHandler.Quote)
		}

		// ------------------------------
		// CUSTOMER
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.GET("/assistant/suggestion", assistantHandler.Suggestion)
		}

		// ------------------------------
		// ASSISTANT CHAT (public, best-effort)
		// ------------------------------
		api.POST("/assistant/chat", assistantHandler.Chat)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("/bookings", adminHandler.List)
			admin.GET("/stats", adminHandler.Stats)
			admin.PATCH("/bookings/:id/confirm", adminHandler.Confirm)
			admin.PATCH("/bookings/:id/cancel", adminHandler.Cancel)
			admin.PATCH("/bookings/:id/complete", adminHandler.Complete)
		}
	}
}
