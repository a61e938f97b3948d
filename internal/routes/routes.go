package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/store"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAgenda "github.com/BruksfildServices01/barber-booking/internal/usecase/agenda"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/barber-booking/internal/usecase/catalog"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	metrics.Register()

	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	verifier := auth.NewStaticVerifier(cfg.AdminUser, cfg.AdminPass)

	// "agora" sempre lido na hora, no fuso configurado
	now := func() time.Time {
		return timezone.NowIn(cfg.Timezone)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	catalogUC := ucCatalog.New(st, auditDispatcher)

	availabilityUC := ucBooking.NewGetAvailability(
		st,
		cfg.OpenHour,
		cfg.CloseHour,
		time.Duration(cfg.MinAdvanceMinutes)*time.Minute,
		now,
	)

	createAppointmentUC := ucBooking.NewCreateAppointment(st, auditDispatcher)

	listAgendaUC := ucAgenda.NewListAgenda(st)
	dashboardUC := ucAgenda.NewDashboard(st)
	exportUC := ucAgenda.NewExport(st)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		st,
		catalogUC,
		availabilityUC,
		createAppointmentUC,
		cfg.BookingWindowDays,
		now,
	)

	authHandler := handlers.NewAuthHandler(verifier)
	serviceHandler := handlers.NewServiceHandler(catalogUC)
	professionalHandler := handlers.NewProfessionalHandler(catalogUC)
	agendaHandler := handlers.NewAgendaHandler(listAgendaUC, dashboardUC, exportUC, auditLogger)

	// ======================================================
	// OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (fluxo do cliente)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/days", publicHandler.ListDays)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API ADMIN (credencial fixa, por requisição)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(verifier))
		{
			admin.GET("/dashboard", agendaHandler.Dashboard)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/professionals", professionalHandler.List)
			admin.POST("/professionals", professionalHandler.Create)
			admin.DELETE("/professionals/:id", professionalHandler.Delete)

			admin.GET("/agenda", agendaHandler.List)
			admin.GET("/agenda/export", agendaHandler.Export)

			admin.GET("/audit-logs", agendaHandler.AuditLogs)
		}
	}
}
