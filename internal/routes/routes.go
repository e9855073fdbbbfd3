package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/amdeilami/alicetant/internal/audit"
	"github.com/amdeilami/alicetant/internal/cache"
	"github.com/amdeilami/alicetant/internal/config"
	"github.com/amdeilami/alicetant/internal/handlers"
	infraRepo "github.com/amdeilami/alicetant/internal/infra/repository"
	"github.com/amdeilami/alicetant/internal/metrics"
	"github.com/amdeilami/alicetant/internal/middleware"
	"github.com/amdeilami/alicetant/internal/models"
	ucAppointment "github.com/amdeilami/alicetant/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	metrics.Register()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Observability(log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	bizCache := cache.NewBusinessCache(cfg.RedisAddr, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	listCustomerUC := ucAppointment.NewListCustomerAppointments(appointmentRepo)
	listProviderUC := ucAppointment.NewListProviderAppointments(appointmentRepo)
	checkSlotUC := ucAppointment.NewCheckSlotAvailability(appointmentRepo)
	openSlotsUC := ucAppointment.NewListOpenSlots(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db, auditDispatcher, bizCache)
	availabilityHandler := handlers.NewAvailabilityHandler(db)
	publicHandler := handlers.NewPublicHandler(db, bizCache, checkSlotUC, openSlotsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		listCustomerUC,
		listProviderUC,
	)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.GET("/businesses", publicHandler.ListBusinesses)
		api.GET("/businesses/search", publicHandler.SearchBusinesses)
		api.GET("/businesses/:id", publicHandler.GetBusiness)
		api.GET("/businesses/:id/slot-availability", publicHandler.SlotAvailability)
		api.GET("/businesses/:id/open-slots", publicHandler.OpenSlots)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// BUSINESSES (PROVIDER)
			// ------------------------------
			provider := secured.Group("/me")
			provider.Use(middleware.RequireRole(models.RoleProvider))
			{
				provider.GET("/businesses", businessHandler.ListMine)
				provider.POST("/businesses", businessHandler.Create)
				provider.PATCH("/businesses/:id", businessHandler.Update)
				provider.DELETE("/businesses/:id", businessHandler.Delete)

				provider.GET("/businesses/:id/availability", availabilityHandler.Get)
				provider.PUT("/businesses/:id/availability", availabilityHandler.Replace)

				provider.GET("/provider/appointments", appointmentHandler.ListForProvider)
				provider.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments",
				middleware.RequireRole(models.RoleCustomer),
				appointmentHandler.Book,
			)
			secured.GET("/me/appointments",
				middleware.RequireRole(models.RoleCustomer),
				appointmentHandler.ListMine,
			)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		}
	}
}
