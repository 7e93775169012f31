package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pedidoController "sigph_backend/internals/features/crm/pedidos/controller"
)

// PedidoRoutes monta la agenda de pedidos de hormigón.
func PedidoRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := pedidoController.NewPedidoController(db, v)

	g := r.Group("/pedidos")
	g.Get("/", ctl.List)
	g.Get("/activos", ctl.ListActivos)
	g.Post("/", ctl.Create)
	g.Put("/:id/estado", ctl.CambiarEstado)
}
