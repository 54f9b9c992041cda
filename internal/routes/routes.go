package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/blobstore"
	"github.com/dentalcare-app/clinic-api/internal/cache"
	"github.com/dentalcare-app/clinic-api/internal/config"
	"github.com/dentalcare-app/clinic-api/internal/handlers"
	"github.com/dentalcare-app/clinic-api/internal/middleware"
	"github.com/dentalcare-app/clinic-api/internal/notification"
	"github.com/dentalcare-app/clinic-api/internal/store"
	"github.com/dentalcare-app/clinic-api/internal/timezone"
	ucAppointment "github.com/dentalcare-app/clinic-api/internal/usecase/appointment"
	ucDoctor "github.com/dentalcare-app/clinic-api/internal/usecase/doctor"
	ucPatient "github.com/dentalcare-app/clinic-api/internal/usecase/patient"
	ucResult "github.com/dentalcare-app/clinic-api/internal/usecase/result"
	ucReview "github.com/dentalcare-app/clinic-api/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, st store.Store, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ClinicTimezone)
	now := func() time.Time { return time.Now().In(loc) }

	slotCache := cache.NewSlotsCache(cfg.RedisAddr, cfg.SlotCacheTTL)
	dispatcher := notification.NewDispatcher(st, now)
	uploader := blobstore.NewUploader(cfg.S3)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreate(st, slotCache, now)
	confirmUC := ucAppointment.NewConfirm(st, dispatcher, now)
	cancelUC := ucAppointment.NewCancel(st, dispatcher, slotCache, now)
	completeUC := ucAppointment.NewComplete(st, dispatcher, now)
	rescheduleUC := ucAppointment.NewReschedule(st, dispatcher, slotCache, now)
	availabilityUC := ucAppointment.NewAvailability(st, slotCache, now)

	// ======================================================
	// 🧠 USE CASES — RECORDS & DIRECTORY
	// ======================================================
	statsUC := ucDoctor.NewStats(st, now)
	historyUC := ucPatient.NewHistory(st, now)
	uploadUC := ucResult.NewUpload(st, uploader, dispatcher, now)
	reviewUC := ucReview.NewCreate(st, now)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	doctorHandler := handlers.NewDoctorHandler(st, availabilityUC, statsUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		st,
		createUC,
		confirmUC,
		cancelUC,
		completeUC,
		rescheduleUC,
	)
	patientHandler := handlers.NewPatientHandler(st, historyUC)
	resultHandler := handlers.NewResultHandler(st, uploadUC)
	serviceHandler := handlers.NewServiceHandler(st)
	reviewHandler := handlers.NewReviewHandler(st, reviewUC)
	notificationHandler := handlers.NewNotificationHandler(st)
	statsHandler := handlers.NewStatsHandler(st)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// DOCTORS
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:id/statistics", doctorHandler.Statistics)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.DELETE("/appointments/:id", appointmentHandler.Cancel)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

		// ------------------------------
		// MEDICAL RESULTS
		// ------------------------------
		api.GET("/results/:patient_id", resultHandler.ListByPatient)
		api.POST("/results", resultHandler.Create)
		api.POST("/results/upload", resultHandler.Upload)

		// ------------------------------
		// PATIENTS
		// ------------------------------
		api.GET("/patients/:id", patientHandler.Get)
		api.GET("/patients/:id/history", patientHandler.History)

		// ------------------------------
		// SERVICES & REVIEWS
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/reviews", reviewHandler.ListByDoctor)
		api.POST("/reviews", reviewHandler.Create)

		// ------------------------------
		// NOTIFICATIONS & STATS
		// ------------------------------
		// Same param slot: gin requires one wildcard name per position.
		api.GET("/notifications/:id", notificationHandler.ListByUser)
		api.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		api.GET("/stats", statsHandler.Get)
	}
}
