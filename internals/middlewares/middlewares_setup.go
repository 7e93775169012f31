package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "sigph_backend/internals/middlewares/logger"
)

// SetupMiddlewares monta los middlewares base de la app
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
