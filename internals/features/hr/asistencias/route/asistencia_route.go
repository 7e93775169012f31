package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asistenciaController "sigph_backend/internals/features/hr/asistencias/controller"
)

// AsistenciaRoutesKiosco monta solo el endpoint público del kiosco QR
// (las terminales de planta no tienen sesión).
func AsistenciaRoutesKiosco(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := asistenciaController.NewAsistenciaController(db, v)
	r.Post("/asistencias/qr", ctl.MarcarQr)
}

// AsistenciaRoutes monta los endpoints del dashboard (con sesión).
func AsistenciaRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := asistenciaController.NewAsistenciaController(db, v)

	g := r.Group("/asistencias")
	g.Post("/check-in", ctl.CheckIn)
	g.Post("/check-out", ctl.CheckOut)
	g.Get("/hoy", ctl.ListHoy)
	g.Get("/by-date", ctl.ListByDate)
}
