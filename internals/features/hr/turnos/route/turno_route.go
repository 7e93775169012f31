package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	turnoController "sigph_backend/internals/features/hr/turnos/controller"
)

func TurnoRoutes(r fiber.Router, db *gorm.DB) {
	ctl := turnoController.NewTurnoController(db)

	g := r.Group("/turnos")
	g.Get("/", ctl.List)
}
