package main

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/app/delivery/http/routers"
	"booking-service/internal/app/drivers/database"
	"booking-service/internal/app/drivers/logger"
	"booking-service/internal/app/drivers/messaging"
	"booking-service/internal/app/services/booking_api/apiclient"
	authAPI "booking-service/internal/app/services/booking_api/auth"
	"booking-service/internal/app/services/booking_api/categories"
	"booking-service/internal/app/services/booking_api/preferences"
	"booking-service/internal/app/services/booking_api/slots"
	"booking-service/internal/app/services/booking_api/users"
	"booking-service/internal/app/services/core/admin"
	"booking-service/internal/app/services/core/auth"
	"booking-service/internal/app/services/core/bookings"
	"booking-service/internal/app/services/core/calendar"
	"booking-service/internal/app/services/core/session"
	"booking-service/internal/app/services/shared/events"
	"booking-service/internal/app/services/shared/jwtmanager"
	"booking-service/internal/app/services/shared/redis"
	"booking-service/internal/pkg/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, zapLogger)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig, zapLogger)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:     internalConfig.App.Port,
		Handler:  chiRouter,
		ErrorLog: log.New(logrusLogger.Writer(), "", 0),
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrusLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrusLogger.Errorf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrusLogger.Errorf("Failed to release resources: %v", err)
	}

	logrusLogger.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) error {
	internalConfig := bootstrap.InternalConfig
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Sessions
	sessionService := session.NewSessionService(
		redisRepository,
		time.Duration(internalConfig.Session.ExpiredTimeInHours)*time.Hour,
	)
	jwtManager := jwtmanager.NewJWTManager(bootstrap.Logger)

	// Booking API
	apiClient := apiclient.NewClient(
		internalConfig.BookingAPI.BaseUrl,
		time.Duration(internalConfig.BookingAPI.TimeoutInSeconds)*time.Second,
		bootstrap.Logger,
	)
	authAPIClient := authAPI.NewAuthAPIClient(apiClient)
	categoryAPIClient := categories.NewCategoryAPIClient(apiClient)
	slotAPIClient := slots.NewSlotAPIClient(apiClient)
	preferenceAPIClient := preferences.NewPreferenceAPIClient(apiClient)
	userAPIClient := users.NewUserAPIClient(apiClient)

	// Booking events
	eventPublisher := events.NewNoopPublisher(bootstrap.Logger)
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewBookingEventPublisher(
			bootstrap.RabbitMQ,
			internalConfig.RabbitMQ.BookingEventsQueue,
			bootstrap.Logger,
		)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Calendar
	labeler, err := calendar.NewLabeler(internalConfig.Calendar.Locale)
	if err != nil {
		return err
	}
	clock := calendar.RealClock{Location: location}

	// Usecases
	authUsecase := auth.NewAuthUsecase(authAPIClient, sessionService, jwtManager, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(
		slotAPIClient,
		categoryAPIClient,
		preferenceAPIClient,
		eventPublisher,
		clock,
		labeler,
		bookings.ICSSettings{
			ProductID:    internalConfig.Calendar.ProductID,
			CalendarName: internalConfig.Calendar.Name,
			UIDDomain:    internalConfig.Calendar.UIDDomain,
		},
		bootstrap.Logger,
	)
	adminUsecase := admin.NewAdminUsecase(
		slotAPIClient,
		categoryAPIClient,
		userAPIClient,
		eventPublisher,
		clock,
		labeler,
		bootstrap.Logger,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, internalConfig)

	// Controllers
	cookieOptions := utils.CookieOptions{
		Secure: internalConfig.Session.CookieSecure,
		Domain: internalConfig.Session.CookieDomain,
	}
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, cookieOptions, requestTimeout)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, requestTimeout)
	adminController := controllers.NewAdminController(bootstrap.Logger, adminUsecase, requestTimeout)

	healthChecks := map[string]controllers.HealthCheck{
		"redis": func(ctx context.Context) error {
			return bootstrap.Redis.Ping(ctx).Err()
		},
	}
	if bootstrap.RabbitMQ != nil {
		healthChecks["rabbitmq"] = func(ctx context.Context) error {
			if bootstrap.RabbitMQ.IsClosed() {
				return errors.New("connection closed")
			}
			return nil
		}
	}
	healthController := controllers.NewHealthController(bootstrap.Logger, healthChecks, requestTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		authController,
		bookingController,
		adminController,
		healthController,
	)
	return nil
}
