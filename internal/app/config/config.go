package config

import (
	"booking-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Warsaw"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			AuthMaxRequestsPerMinute:   utils.GetEnvInt("APP_AUTH_MAX_REQUESTS_PER_MINUTE", 10),
			AuthBlockTimeInMinutes:     utils.GetEnvInt("APP_AUTH_BLOCK_TIME_IN_MINUTES", 5),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		BookingAPI: BookingAPI{
			BaseUrl:          utils.GetEnvString("BOOKING_API_BASE_URL", "http://localhost:8000/api"),
			TimeoutInSeconds: utils.GetEnvInt("BOOKING_API_TIMEOUT_IN_SECONDS", 15),
		},
		Session: Session{
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 24),
			CookieSecure:       utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			CookieDomain:       utils.GetEnvString("SESSION_COOKIE_DOMAIN", ""),
		},
		Calendar: Calendar{
			Locale:    utils.GetEnvString("CALENDAR_LOCALE", "pl"),
			ProductID: utils.GetEnvString("CALENDAR_PRODUCT_ID", "-//booking-service//calendar//EN"),
			Name:      utils.GetEnvString("CALENDAR_NAME", "Bookings"),
			UIDDomain: utils.GetEnvString("CALENDAR_UID_DOMAIN", "booking-service.local"),
		},
		RabbitMQ: AppRabbitMQ{
			BookingEventsQueue: utils.GetEnvString("APP_RABBITMQ_BOOKING_EVENTS_QUEUE", "booking_events"),
		},
	}
}
