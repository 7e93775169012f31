package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	empleadoController "sigph_backend/internals/features/hr/empleados/controller"
)

func EmpleadoRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := empleadoController.NewEmpleadoController(db, v)

	g := r.Group("/empleados")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Post("/:id/qr", ctl.GenerarQR)
}
