package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"turfbook/config"
	"turfbook/cron"
	"turfbook/database"
	bookingRepoPkg "turfbook/database/repository/booking"
	courtRepoPkg "turfbook/database/repository/court"
	userRepoPkg "turfbook/database/repository/user"
	"turfbook/handlers"
	"turfbook/routes"
	"turfbook/services/booking"
	"turfbook/services/notification"
	"turfbook/services/schedule"
	"turfbook/services/user"
	"turfbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCartCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	courtRepo := courtRepoPkg.NewMongoCourtRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	taskQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskQueue.Close()

	paymentHandler := booking.NewStripePaymentHandler(
		logger,
		config.AppConfig.PaymentCurrency,
		config.AppConfig.PaymentSuccessURL,
	)

	bookingService := &booking.DefaultBookingSessionService{
		Repo:      bookingRepo,
		CourtRepo: courtRepo,
		Cache:     utils.GetCartCacheClient(),
		TaskQueue: taskQueue,
		Payments:  paymentHandler,
		Rates: schedule.RateSchedule{
			WeekdayDay:   config.AppConfig.WeekdayDayRate,
			WeekdayNight: config.AppConfig.WeekdayNightRate,
			WeekendDay:   config.AppConfig.WeekendDayRate,
			WeekendNight: config.AppConfig.WeekendNightRate,
			DayStartMin:  config.AppConfig.DayWindowStartMin,
			DayEndMin:    config.AppConfig.DayWindowEndMin,
		},
		Hours: schedule.OperatingHours{
			ClosedStartMin: config.AppConfig.ClosedStartMin,
			ClosedEndMin:   config.AppConfig.ClosedEndMin,
		},
	}

	// Telegram alerts are optional; without a bot token the worker is not
	// started and enqueued notifications stay in the queue.
	notifService, err := notification.NewTelegramNotificationService()
	if err != nil {
		logger.Sugar().Warnf("main: telegram notifications disabled: %v", err)
	} else {
		cron.InitNotifyWorker(notifService)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:        handlers.RegisterUserHandler(userService),
		AuthenticateUserHandler:    handlers.AuthenticateUserHandler(userService),
		GetUserByIDHandler:         handlers.GetUserByIDHandler(userService),
		RevokeUserAuthTokenHandler: handlers.RevokeUserAuthTokenHandler(userService),

		// Court endpoints.
		ListCourtsHandler:   handlers.ListCourtsHandler(courtRepo),
		GetCourtByIDHandler: handlers.GetCourtByIDHandler(courtRepo),

		// Booking endpoints.
		ListBookingsHandler:      handlers.ListBookingsHandler(bookingRepo),
		CheckAvailabilityHandler: handlers.CheckAvailabilityHandler(bookingService),
		QuotePriceHandler:        handlers.QuotePriceHandler(bookingService),

		// Cart endpoints.
		CreateCartHandler:     handlers.CreateCartHandler(bookingService),
		GetCartHandler:        handlers.GetCartHandler(bookingService),
		AddCartItemHandler:    handlers.AddCartItemHandler(bookingService),
		RemoveCartItemHandler: handlers.RemoveCartItemHandler(bookingService),
		CheckoutHandler:       handlers.CheckoutHandler(bookingService),

		// Admin endpoints.
		ApproveBookingHandler: handlers.ApproveBookingHandler(bookingRepo),
		RejectBookingHandler:  handlers.RejectBookingHandler(bookingRepo),
		DeleteBookingHandler:  handlers.DeleteBookingHandler(bookingRepo),
		CreateCourtHandler:    handlers.CreateCourtHandler(courtRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCartCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
