package database

import (
	"log"

	"gorm.io/gorm"

	pedidoModel "sigph_backend/internals/features/crm/pedidos/model"

	clienteModel "sigph_backend/internals/features/crm/clientes/model"
	asignacionModel "sigph_backend/internals/features/fleet/asignaciones/model"
	camionModel "sigph_backend/internals/features/fleet/camiones/model"
	asistenciaModel "sigph_backend/internals/features/hr/asistencias/model"
	empleadoModel "sigph_backend/internals/features/hr/empleados/model"
	turnoModel "sigph_backend/internals/features/hr/turnos/model"
	materialModel "sigph_backend/internals/features/inventory/materiales/model"
	usuarioModel "sigph_backend/internals/features/users/auth/model"
)

// Migrate corre AutoMigrate de todos los modelos.
// El orden importa: primero tablas referenciadas, después las que tienen FK.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&usuarioModel.RolModel{},
		&usuarioModel.UsuarioModel{},
		&empleadoModel.CargoModel{},
		&turnoModel.TurnoModel{},
		&empleadoModel.EmpleadoModel{},
		&asistenciaModel.AsistenciaModel{},
		&camionModel.CamionModel{},
		&asignacionModel.AsignacionDiariaModel{},
		&clienteModel.ClienteModel{},
		&pedidoModel.PedidoModel{},
		&materialModel.MaterialModel{},
	)
	if err != nil {
		log.Fatalf("❌ Error en AutoMigrate: %v", err)
	}
	log.Println("✅ Migraciones OK.")
}
