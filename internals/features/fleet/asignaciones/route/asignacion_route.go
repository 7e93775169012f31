package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asignacionController "sigph_backend/internals/features/fleet/asignaciones/controller"
)

// AsignacionRoutes monta el tablero diario camión-chofer.
func AsignacionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := asignacionController.NewAsignacionController(db, v)

	g := r.Group("/asignaciones")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)

	// combos para el front
	g.Get("/choferes", ctl.Choferes)
	g.Get("/camiones", ctl.Camiones)
}
