// File: apexcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apexcare/config"
	"apexcare/cron"
	"apexcare/database"
	appointmentRepoPkg "apexcare/database/repository/appointment"
	doctorRepoPkg "apexcare/database/repository/doctor"
	prescriptionRepoPkg "apexcare/database/repository/prescription"
	userRepoPkg "apexcare/database/repository/user"
	"apexcare/handlers"
	"apexcare/middleware"
	"apexcare/routes"
	"apexcare/services/appointment"
	"apexcare/services/booking"
	"apexcare/services/directory"
	"apexcare/services/notification"
	"apexcare/services/schedule"
	"apexcare/services/tasks"
	"apexcare/services/user"
	"apexcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: report storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	presRepo := prescriptionRepoPkg.NewMongoPrescriptionRepo()

	if err := doctorRepoPkg.Seed(docRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed doctor roster: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:      usrRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	notificationService := &notification.DefaultNotificationService{
		Users: usrRepo,
	}

	evaluator := schedule.NewEvaluator(&directory.AppointmentOccupancy{Repo: apptRepo})
	directoryService := &directory.DefaultDirectoryService{
		Repo:      docRepo,
		Evaluator: evaluator,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	reminderScheduler := &tasks.ReminderScheduler{Client: reminderClient}

	paymentHandler := booking.NewPaymentHandler(logger, config.AppConfig.StripeKey != "")
	bookingService := &booking.DefaultBookingSessionService{
		DoctorRepo:      docRepo,
		AppointmentRepo: apptRepo,
		Payments:        paymentHandler,
		Notifier:        notificationService,
		Reminders:       reminderScheduler,
		Cache:           utils.GetCacheClient(),
		PlatformFee:     config.AppConfig.PlatformFee,
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:          apptRepo,
		Prescriptions: presRepo,
	}

	cron.InitReminderWorker(notificationService)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService, logger)
	doctorHandler := handlers.NewDoctorHandler(directoryService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, userService, logger)
	contactHandler := handlers.NewContactHandler(logger)
	storageHandler := handlers.NewStorageHandler(storageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterHandler:       authHandler.RegisterHandler,
		LoginHandler:          authHandler.LoginHandler,
		LogoutHandler:         authHandler.LogoutHandler,
		MeHandler:             authHandler.MeHandler,
		DeleteAccountHandler:  authHandler.DeleteAccountHandler,
		UpdateFCMTokenHandler: authHandler.UpdateFCMTokenHandler,

		// Doctor directory endpoints.
		ListDoctorsHandler:     doctorHandler.ListDoctorsHandler,
		GetDoctorHandler:       doctorHandler.GetDoctorHandler,
		ListSpecialtiesHandler: doctorHandler.ListSpecialtiesHandler,

		// Booking wizard endpoints.
		StartSession:   bookingHandler.StartSession,
		GetSession:     bookingHandler.GetSession,
		SelectDoctor:   bookingHandler.SelectDoctor,
		SetSchedule:    bookingHandler.SetSchedule,
		SetDetails:     bookingHandler.SetDetails,
		NextStep:       bookingHandler.NextStep,
		PrevStep:       bookingHandler.PrevStep,
		ConfirmBooking: bookingHandler.ConfirmBooking,
		CancelSession:  bookingHandler.CancelSession,

		// Dashboard endpoints.
		ListMyAppointments:      appointmentHandler.ListMyAppointmentsHandler,
		CancelAppointment:       appointmentHandler.CancelAppointmentHandler,
		ListDoctorAppointments:  appointmentHandler.ListDoctorAppointmentsHandler,
		CompleteAppointment:     appointmentHandler.CompleteAppointmentHandler,
		IssuePrescription:       appointmentHandler.IssuePrescriptionHandler,
		ListMyPrescriptions:     appointmentHandler.ListMyPrescriptionsHandler,
		ListIssuedPrescriptions: appointmentHandler.ListIssuedPrescriptionsHandler,

		// Contact endpoint.
		SubmitContact: contactHandler.SubmitHandler,

		// Report storage endpoints.
		UploadReport: storageHandler.UploadReportHandler,
		GetReportURL: storageHandler.GetReportURLHandler,
		DeleteReport: storageHandler.DeleteReportHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := reminderClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
