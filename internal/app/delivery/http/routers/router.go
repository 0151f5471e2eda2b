package routers

import (
	"fmt"
	"net/http"

	"booking-service/internal/app/config"
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"
	"booking-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	bookingController *controllers.BookingController,
	adminController *controllers.AdminController,
	healthController *controllers.HealthController,
) {
	router.Use(globalMiddlewares(internalConfig, middlewares)...)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/healthz", healthController.Healthz)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.SessionOptional)

				r.Route("/auth", func(r chi.Router) {
					attachAuthRoutes(r, middlewares, authController)
				})

				r.Group(func(r chi.Router) {
					r.Use(middlewares.RequireSession)
					attachBookingRoutes(r, bookingController)

					r.Route("/admin", func(r chi.Router) {
						attachAdminRoutes(r, adminController)
					})
				})
			})
		})
	})
}

// globalMiddlewares lists the middlewares of every route in order. Every
// middleware after ErrorHandler runs inside its recover.
func globalMiddlewares(internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares) []func(http.Handler) http.Handler {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodPatch,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}

	return []func(http.Handler) http.Handler{
		middlewares.RequestIDMiddleware,
		middlewares.ErrorHandler,
		middlewares.Logging,
		cors.Handler(corsOptions),
		middlewares.GlobalRateLimit(),
		middlewares.BodyLimit,
	}
}
