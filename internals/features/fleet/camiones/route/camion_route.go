package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	camionController "sigph_backend/internals/features/fleet/camiones/controller"
)

func CamionRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := camionController.NewCamionController(db, v)

	g := r.Group("/camiones")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
