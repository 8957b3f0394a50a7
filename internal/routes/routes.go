package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type Handlers struct {
	Public       *handlers.PublicHandler
	Appointment  *handlers.AppointmentHandler
	Availability *handlers.AvailabilityHandler
	Barbershop   *handlers.BarbershopHandler
	AuditLogs    *handlers.AuditLogsHandler
}

// NewHandlers wires use cases and handlers over one repository.
func NewHandlers(
	repo domain.Repository,
	auditStore handlers.AuditLister,
	dispatcher *audit.Dispatcher,
	clock timezone.Clock,
	log *zap.Logger,
) Handlers {

	// ======================================================
	// 🧠 USE CASES - APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(repo, clock)
	createAppointmentUC := ucAppointment.NewCreateAppointment(repo, dispatcher, clock, log)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(repo, dispatcher, clock)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(repo, dispatcher, clock)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(repo, dispatcher, clock)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(repo)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(repo)

	replaceAvailabilityUC := ucAppointment.NewReplaceAvailability(repo, dispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	return Handlers{
		Public: handlers.NewPublicHandler(repo, getAvailabilityUC, createAppointmentUC, log),
		Appointment: handlers.NewAppointmentHandler(
			repo,
			listAppointmentsByDateUC,
			listAppointmentsByMonthUC,
			confirmAppointmentUC,
			cancelAppointmentUC,
			completeAppointmentUC,
			log,
		),
		Availability: handlers.NewAvailabilityHandler(repo, replaceAvailabilityUC, log),
		Barbershop:   handlers.NewBarbershopHandler(repo, log),
		AuditLogs:    handlers.NewAuditLogsHandler(repo, auditStore, log),
	}
}

// Mount registers every route. writeLimit guards the booking endpoint.
func Mount(r *gin.Engine, h Handlers, writeLimit gin.HandlerFunc) {
	if writeLimit == nil {
		writeLimit = func(c *gin.Context) { c.Next() }
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public/:slug")
		{
			publicAPI.GET("/services", h.Public.ListServices)
			publicAPI.GET("/barbers", h.Public.ListBarbers)
			publicAPI.GET("/availability", h.Public.Availability)
			publicAPI.POST("/appointments", writeLimit, h.Public.CreateAppointment)
		}

		// ------------------------------
		// 💈 PAINEL DA BARBEARIA
		// ------------------------------
		shop := api.Group("/shops/:slug")
		{
			shop.GET("", h.Barbershop.Get)
			shop.PATCH("", h.Barbershop.Update)
			shop.GET("/audit-logs", h.AuditLogs.List)

			barber := shop.Group("/barbers/:barberID")
			{
				barber.GET("/availability", h.Availability.Get)
				barber.PUT("/availability", h.Availability.Update)

				barber.GET("/appointments", h.Appointment.ListByDate)
				barber.GET("/appointments/month", h.Appointment.ListByMonth)
				barber.PATCH("/appointments/:id/confirm", h.Appointment.Confirm)
				barber.PATCH("/appointments/:id/cancel", h.Appointment.Cancel)
				barber.PATCH("/appointments/:id/complete", h.Appointment.Complete)
			}
		}
	}
}

// RegisterRoutes builds the production graph: gorm repository, audit
// trail in Postgres and the rate limiter (Redis when available).
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
	log *zap.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	auditStore := audit.New(db)

	var writeLimit gin.HandlerFunc
	if cfg.RateLimitPerMinute > 0 {
		var limiter middleware.Limiter
		if rdb != nil {
			limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
			log.Info("rate limiting enabled (redis)", zap.Int("per_minute", cfg.RateLimitPerMinute))
		} else {
			limiter = middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
			log.Info("rate limiting enabled (in-memory)", zap.Int("per_minute", cfg.RateLimitPerMinute))
		}
		writeLimit = middleware.RateLimit(limiter, "rl:booking", log)
	}

	h := NewHandlers(appointmentRepo, auditStore, dispatcher, timezone.SystemClock, log)
	Mount(r, h, writeLimit)
}
