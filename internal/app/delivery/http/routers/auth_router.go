package routers

import (
	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	authLimiter := middlewares.AuthRateLimiter()

	router.With(authLimiter.Limit).Post("/login", authController.Login)
	router.With(authLimiter.Limit).Post("/register", authController.Register)
	router.Post("/logout", authController.Logout)
	router.Get("/me", authController.Me)
}
