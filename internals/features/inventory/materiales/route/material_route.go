package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "sigph_backend/internals/features/inventory/materiales/controller"
)

// MaterialRoutes monta el stock de materiales.
func MaterialRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := materialController.NewMaterialController(db, v)

	g := r.Group("/materiales")
	g.Get("/", ctl.List)
	g.Put("/:id", ctl.AjustarStock)
}
