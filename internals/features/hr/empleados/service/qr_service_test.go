package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigph_backend/internals/features/hr/empleados/model"
	turnoModel "sigph_backend/internals/features/hr/turnos/model"
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
		&model.CargoModel{},
		&turnoModel.TurnoModel{},
		&model.EmpleadoModel{},
	))
	return db
}

func crearEmpleado(t *testing.T, db *gorm.DB) *model.EmpleadoModel {
	t.Helper()
	emp := &model.EmpleadoModel{
		Nombre:   "Laura",
		Apellido: "Díaz",
		DNI:      "27444555",
		Email:    "ldiaz@sigph.test",
		Activo:   true,
	}
	require.NoError(t, db.Create(emp).Error)
	return emp
}

func TestEmitirQRPrimeraVez(t *testing.T) {
	db := newTestDB(t)
	emp := crearEmpleado(t, db)
	require.Nil(t, emp.QrUID)

	out, err := EmitirOObtenerQR(db, emp.ID, false)
	require.NoError(t, err)
	require.NotNil(t, out.QrUID)
	require.Len(t, *out.QrUID, 36) // uuid v4
}

func TestEmitirQREsEstableSinForce(t *testing.T) {
	db := newTestDB(t)
	emp := crearEmpleado(t, db)

	primero, err := EmitirOObtenerQR(db, emp.ID, false)
	require.NoError(t, err)

	segundo, err := EmitirOObtenerQR(db, emp.ID, false)
	require.NoError(t, err)
	require.Equal(t, *primero.QrUID, *segundo.QrUID)
}

func TestEmitirQRForceRota(t *testing.T) {
	db := newTestDB(t)
	emp := crearEmpleado(t, db)

	primero, err := EmitirOObtenerQR(db, emp.ID, false)
	require.NoError(t, err)

	rotado, err := EmitirOObtenerQR(db, emp.ID, true)
	require.NoError(t, err)
	require.NotEqual(t, *primero.QrUID, *rotado.QrUID)

	// el token viejo ya no apunta a nadie
	var cuantos int64
	require.NoError(t, db.Model(&model.EmpleadoModel{}).
		Where("qr_uid = ?", *primero.QrUID).Count(&cuantos).Error)
	require.Zero(t, cuantos)
}

func TestEmitirQREmpleadoInexistente(t *testing.T) {
	db := newTestDB(t)
	_, err := EmitirOObtenerQR(db, 999, false)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}
