package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mathysbarber/agenda-api/internal/audit"
	"github.com/mathysbarber/agenda-api/internal/config"
	"github.com/mathysbarber/agenda-api/internal/handlers"
	infraRepo "github.com/mathysbarber/agenda-api/internal/infra/repository"
	"github.com/mathysbarber/agenda-api/internal/middleware"
	"github.com/mathysbarber/agenda-api/internal/payments"
	ucBooking "github.com/mathysbarber/agenda-api/internal/usecase/booking"
	ucCalendar "github.com/mathysbarber/agenda-api/internal/usecase/calendar"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	gateway payments.Gateway,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	calendarRepo := infraRepo.NewCalendarGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, auditDispatcher)
	cancelAppointmentUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher)
	completeAppointmentUC := ucBooking.NewCompleteAppointment(bookingRepo, auditDispatcher)
	releaseAppointmentUC := ucBooking.NewReleaseAppointment(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// USE CASES — CALENDAR
	// ======================================================
	extendWeekUC := ucCalendar.NewExtendWeek(calendarRepo, auditDispatcher)
	extendRollingUC := ucCalendar.NewExtendRolling(calendarRepo, auditDispatcher)
	availableDaysUC := ucCalendar.NewAvailableDays(calendarRepo)
	barberAvailabilityUC := ucCalendar.NewBarberAvailability(calendarRepo)
	cancelDayUC := ucCalendar.NewCancelDay(calendarRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		releaseAppointmentUC,
		listAppointmentsUC,
	)

	calendarHandler := handlers.NewCalendarHandler(
		calendarRepo,
		extendWeekUC,
		extendRollingUC,
		availableDaysUC,
	)

	barberHandler := handlers.NewBarberHandler(db, cancelDayUC, barberAvailabilityUC)
	paymentHandler := handlers.NewPaymentHandler(gateway)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		api.GET("/days", calendarHandler.ListDays)
		api.GET("/days/available", calendarHandler.AvailableDays)

		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.GET("/barbers/:id/available", barberHandler.Availability)
		api.POST("/barbers/:id/cancel-day", barberHandler.CancelDay)

		api.POST("/calendar/extend-week", calendarHandler.ExtendWeek)
		api.POST("/calendar/extend-rolling", calendarHandler.ExtendRolling)

		api.POST("/payments/create-preference", paymentHandler.CreatePreference)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/mine", appointmentHandler.Mine)

			secured.GET(
				"/appointments/assigned",
				middleware.RequireRoles("barber", "admin"),
				appointmentHandler.Assigned,
			)

			secured.DELETE(
				"/appointments/:barberId/:date/:time",
				middleware.RequireRoles("barber", "admin"),
				appointmentHandler.Release,
			)

			// dono, barbeiro ou admin — a posse é validada no use case
			secured.PUT(
				"/appointments/:barberId/:date/:time/cancel",
				appointmentHandler.Cancel,
			)

			secured.PUT(
				"/appointments/:barberId/:date/:time/complete",
				middleware.RequireRoles("barber", "admin"),
				appointmentHandler.Complete,
			)

			secured.GET(
				"/audit-logs",
				middleware.RequireRoles("admin"),
				auditLogsHandler.List,
			)
		}
	}
}
