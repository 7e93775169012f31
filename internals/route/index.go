package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/configs"
	asignacionRoute "sigph_backend/internals/features/fleet/asignaciones/route"
	camionRoute "sigph_backend/internals/features/fleet/camiones/route"
	asistenciaRoute "sigph_backend/internals/features/hr/asistencias/route"
	empleadoRoute "sigph_backend/internals/features/hr/empleados/route"
	turnoRoute "sigph_backend/internals/features/hr/turnos/route"

	clienteRoute "sigph_backend/internals/features/crm/clientes/route"
	pedidoRoute "sigph_backend/internals/features/crm/pedidos/route"
	materialRoute "sigph_backend/internals/features/inventory/materiales/route"
	authRoute "sigph_backend/internals/features/users/auth/route"

	authmw "sigph_backend/internals/middlewares/auth"
)

// SetupRoutes monta toda la API.
//
// Público:   /, /health, /api/auth/login, /api/asistencias/qr (kiosco)
// Con sesión: el resto de /api (dashboard)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	BaseRoutes(app)
	authRoute.AuthRoutes(app, db, v)

	// Kiosco QR: las terminales de planta marcan sin sesión.
	publico := app.Group("/api")
	asistenciaRoute.AsistenciaRoutesKiosco(publico, db, v)

	api := app.Group("/api", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	// RRHH
	empleadoRoute.EmpleadoRoutes(api, db, v)
	turnoRoute.TurnoRoutes(api, db)
	asistenciaRoute.AsistenciaRoutes(api, db, v)

	// Flota
	camionRoute.CamionRoutes(api, db, v)
	asignacionRoute.AsignacionRoutes(api, db, v)

	// Clientes y pedidos
	clienteRoute.ClienteRoutes(api, db, v)
	pedidoRoute.PedidoRoutes(api, db, v)

	// Stock
	materialRoute.MaterialRoutes(api, db, v)
}
