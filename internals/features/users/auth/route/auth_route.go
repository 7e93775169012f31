package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sigph_backend/internals/features/users/auth/controller"
	"sigph_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctl := authController.NewAuthController(db, v)

	g := app.Group("/api/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
