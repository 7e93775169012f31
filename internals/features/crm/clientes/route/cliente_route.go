package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clienteController "sigph_backend/internals/features/crm/clientes/controller"
)

// ClienteRoutes monta la agenda de clientes.
// Se expone también bajo /agenda-clientes para el front viejo.
func ClienteRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := clienteController.NewClienteController(db, v)

	g := r.Group("/clientes")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)

	// alias legado
	r.Get("/agenda-clientes", ctl.List)
}
