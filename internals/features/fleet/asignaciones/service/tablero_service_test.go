package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigph_backend/internals/constants"
	"sigph_backend/internals/features/fleet/asignaciones/dto"
	"sigph_backend/internals/features/fleet/asignaciones/model"
	camionModel "sigph_backend/internals/features/fleet/camiones/model"
	empleadoModel "sigph_backend/internals/features/hr/empleados/model"
	turnoModel "sigph_backend/internals/features/hr/turnos/model"
	"sigph_backend/internals/helpers/dbtime"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// la base :memory: vive por conexión
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&empleadoModel.CargoModel{},
		&turnoModel.TurnoModel{},
		&empleadoModel.EmpleadoModel{},
		&camionModel.CamionModel{},
		&model.AsignacionDiariaModel{},
	))
	return db
}

func crearCargo(t *testing.T, db *gorm.DB, nombre string) *empleadoModel.CargoModel {
	t.Helper()
	c := &empleadoModel.CargoModel{Nombre: nombre}
	require.NoError(t, db.Create(c).Error)
	return c
}

func crearEmpleado(t *testing.T, db *gorm.DB, dni string, cargoID *uint, activo bool) *empleadoModel.EmpleadoModel {
	t.Helper()
	emp := &empleadoModel.EmpleadoModel{
		Nombre:   "Carlos",
		Apellido: "Gómez",
		DNI:      dni,
		Email:    dni + "@sigph.test",
		Activo:   activo,
		IDCargo:  cargoID,
	}
	require.NoError(t, db.Create(emp).Error)
	return emp
}

func crearCamion(t *testing.T, db *gorm.DB, patente string, activo bool) *camionModel.CamionModel {
	t.Helper()
	cam := &camionModel.CamionModel{Patente: patente, Activo: activo}
	require.NoError(t, db.Create(cam).Error)
	return cam
}

func codigoFiber(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "se esperaba *fiber.Error, vino %v", err)
	return fe.Code
}

func armarEscenario(t *testing.T, db *gorm.DB) (*empleadoModel.EmpleadoModel, *camionModel.CamionModel) {
	t.Helper()
	cargo := crearCargo(t, db, constants.CargoChofer.String())
	chofer := crearEmpleado(t, db, "28555111", &cargo.ID, true)
	camion := crearCamion(t, db, "AB123CD", true)
	return chofer, camion
}

func TestCrearAsignacion(t *testing.T) {
	db := newTestDB(t)
	chofer, camion := armarEscenario(t, db)

	obs := "viaje a obra norte"
	hi := "07:30"
	m, err := Crear(db, dto.CreateAsignacionRequest{
		Fecha:         "2025-03-10",
		CamionID:      camion.ID,
		ChoferID:      chofer.ID,
		HoraInicio:    &hi,
		Observaciones: &obs,
	})
	require.NoError(t, err)
	require.NotZero(t, m.ID)
	require.NotNil(t, m.HoraInicio)
	require.Equal(t, "07:30:00", m.HoraInicio.Format("15:04:05"))
	require.Nil(t, m.HoraFin)
}

func TestCrearCamionRepetidoMismoDia(t *testing.T) {
	db := newTestDB(t)
	chofer, camion := armarEscenario(t, db)
	otroChofer := crearEmpleado(t, db, "29666222", chofer.IDCargo, true)

	_, err := Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-10", CamionID: camion.ID, ChoferID: chofer.ID,
	})
	require.NoError(t, err)

	// mismo camión, mismo día, otro chofer → conflicto
	_, err = Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-10", CamionID: camion.ID, ChoferID: otroChofer.ID,
	})
	require.Equal(t, fiber.StatusConflict, codigoFiber(t, err))

	// mismo camión en otra fecha → ok
	_, err = Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-11", CamionID: camion.ID, ChoferID: chofer.ID,
	})
	require.NoError(t, err)
}

func TestCrearMismoChoferDosCamiones(t *testing.T) {
	db := newTestDB(t)
	chofer, camion := armarEscenario(t, db)
	otroCamion := crearCamion(t, db, "AC456EF", true)

	_, err := Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-10", CamionID: camion.ID, ChoferID: chofer.ID,
	})
	require.NoError(t, err)

	// un chofer puede llevar más de un camión el mismo día
	_, err = Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-10", CamionID: otroCamion.ID, ChoferID: chofer.ID,
	})
	require.NoError(t, err)
}

func TestCrearValidaciones(t *testing.T) {
	db := newTestDB(t)
	chofer, camion := armarEscenario(t, db)

	t.Run("faltan ids", func(t *testing.T) {
		_, err := Crear(db, dto.CreateAsignacionRequest{CamionID: camion.ID})
		require.Equal(t, fiber.StatusBadRequest, codigoFiber(t, err))
	})

	t.Run("camión inexistente", func(t *testing.T) {
		_, err := Crear(db, dto.CreateAsignacionRequest{CamionID: 999, ChoferID: chofer.ID})
		require.Equal(t, fiber.StatusNotFound, codigoFiber(t, err))
	})

	t.Run("camión inactivo", func(t *testing.T) {
		roto := crearCamion(t, db, "AD000GG", false)
		_, err := Crear(db, dto.CreateAsignacionRequest{CamionID: roto.ID, ChoferID: chofer.ID})
		require.Equal(t, fiber.StatusBadRequest, codigoFiber(t, err))
	})

	t.Run("chofer inexistente", func(t *testing.T) {
		_, err := Crear(db, dto.CreateAsignacionRequest{CamionID: camion.ID, ChoferID: 999})
		require.Equal(t, fiber.StatusNotFound, codigoFiber(t, err))
	})

	t.Run("empleado sin cargo CHOFER", func(t *testing.T) {
		operario := crearCargo(t, db, constants.CargoOperario.String())
		emp := crearEmpleado(t, db, "31777333", &operario.ID, true)
		_, err := Crear(db, dto.CreateAsignacionRequest{CamionID: camion.ID, ChoferID: emp.ID})
		require.Equal(t, fiber.StatusBadRequest, codigoFiber(t, err))
	})

	t.Run("chofer inactivo", func(t *testing.T) {
		baja := crearEmpleado(t, db, "32888444", chofer.IDCargo, false)
		_, err := Crear(db, dto.CreateAsignacionRequest{CamionID: camion.ID, ChoferID: baja.ID})
		require.Equal(t, fiber.StatusBadRequest, codigoFiber(t, err))
	})

	t.Run("hora inválida", func(t *testing.T) {
		mala := "25:99"
		_, err := Crear(db, dto.CreateAsignacionRequest{
			CamionID: camion.ID, ChoferID: chofer.ID, HoraInicio: &mala,
		})
		require.Equal(t, fiber.StatusBadRequest, codigoFiber(t, err))
	})
}

func TestActualizarAsignacion(t *testing.T) {
	db := newTestDB(t)
	chofer, camion := armarEscenario(t, db)
	otroChofer := crearEmpleado(t, db, "29666222", chofer.IDCargo, true)

	m, err := Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-10", CamionID: camion.ID, ChoferID: chofer.ID,
	})
	require.NoError(t, err)

	t.Run("cambio de chofer válido", func(t *testing.T) {
		upd, err := Actualizar(db, m.ID, dto.UpdateAsignacionRequest{ChoferID: &otroChofer.ID})
		require.NoError(t, err)
		require.Equal(t, otroChofer.ID, upd.ChoferID)
	})

	t.Run("el chofer nuevo también se valida", func(t *testing.T) {
		operario := crearCargo(t, db, constants.CargoOperario.String())
		emp := crearEmpleado(t, db, "33999555", &operario.ID, true)
		_, err := Actualizar(db, m.ID, dto.UpdateAsignacionRequest{ChoferID: &emp.ID})
		require.Equal(t, fiber.StatusBadRequest, codigoFiber(t, err))
	})

	t.Run("id inexistente", func(t *testing.T) {
		_, err := Actualizar(db, 999, dto.UpdateAsignacionRequest{})
		require.Equal(t, fiber.StatusNotFound, codigoFiber(t, err))
	})

	t.Run("sin cambios devuelve la fila tal cual", func(t *testing.T) {
		upd, err := Actualizar(db, m.ID, dto.UpdateAsignacionRequest{})
		require.NoError(t, err)
		require.Equal(t, m.ID, upd.ID)
	})
}

func TestEliminarAsignacion(t *testing.T) {
	db := newTestDB(t)
	chofer, camion := armarEscenario(t, db)

	m, err := Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-10", CamionID: camion.ID, ChoferID: chofer.ID,
	})
	require.NoError(t, err)

	require.NoError(t, Eliminar(db, m.ID))

	var total int64
	require.NoError(t, db.Model(&model.AsignacionDiariaModel{}).Count(&total).Error)
	require.Zero(t, total)

	// borrar un id que no existe no es error
	require.NoError(t, Eliminar(db, 999))
}

func TestListarCombosYTablero(t *testing.T) {
	db := newTestDB(t)
	chofer, camion := armarEscenario(t, db)
	crearCamion(t, db, "ZZ999ZZ", false)                       // inactivo, fuera del combo
	operario := crearCargo(t, db, constants.CargoOperario.String())
	crearEmpleado(t, db, "34000666", &operario.ID, true)       // no chofer, fuera del combo

	choferes, err := ListarChoferes(db)
	require.NoError(t, err)
	require.Len(t, choferes, 1)
	require.Equal(t, chofer.ID, choferes[0].ID)

	camiones, err := ListarCamiones(db)
	require.NoError(t, err)
	require.Len(t, camiones, 1)
	require.Equal(t, "AB123CD", camiones[0].Patente)

	hi := "07:00"
	_, err = Crear(db, dto.CreateAsignacionRequest{
		Fecha: "2025-03-10", CamionID: camion.ID, ChoferID: chofer.ID, HoraInicio: &hi,
	})
	require.NoError(t, err)

	fecha, err := dbtime.ParseFecha("2025-03-10")
	require.NoError(t, err)
	tablero, err := ListarPorFecha(db, fecha)
	require.NoError(t, err)
	require.Len(t, tablero, 1)
	require.Equal(t, "AB123CD", tablero[0].Patente)
	require.Equal(t, "Gómez", tablero[0].Apellido)
	require.NotNil(t, tablero[0].HoraInicio)
	require.Equal(t, "07:00:00", *tablero[0].HoraInicio)

	// otra fecha: tablero vacío
	otra, err := dbtime.ParseFecha("2025-03-11")
	require.NoError(t, err)
	vacio, err := ListarPorFecha(db, otra)
	require.NoError(t, err)
	require.Empty(t, vacio)
}
