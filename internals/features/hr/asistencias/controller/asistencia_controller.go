package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/features/hr/asistencias/dto"
	"sigph_backend/internals/features/hr/asistencias/model"
	"sigph_backend/internals/features/hr/asistencias/service"
	helper "sigph_backend/internals/helpers"
	"sigph_backend/internals/helpers/dbtime"
)

type AsistenciaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAsistenciaController(db *gorm.DB, v *validator.Validate) *AsistenciaController {
	return &AsistenciaController{DB: db, Validate: v}
}

// CheckIn marca la entrada manual del día.
// POST /api/asistencias/check-in  Body: {empleado_id}
func (ctl *AsistenciaController) CheckIn(c *fiber.Ctx) error {
	var req dto.MarcarRequest
	if err := c.BodyParser(&req); err != nil || req.EmpleadoID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta empleado_id")
	}

	fila, err := service.CheckIn(ctl.DB, req.EmpleadoID, time.Now(), model.MetodoManual)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Entrada registrada", fila)
}

// CheckOut marca la salida manual del día.
// POST /api/asistencias/check-out  Body: {empleado_id}
func (ctl *AsistenciaController) CheckOut(c *fiber.Ctx) error {
	var req dto.MarcarRequest
	if err := c.BodyParser(&req); err != nil || req.EmpleadoID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta empleado_id")
	}

	fila, err := service.CheckOut(ctl.DB, req.EmpleadoID, time.Now(), model.MetodoManual)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Salida registrada", fila)
}

// MarcarQr es el endpoint del kiosco: resuelve el empleado por token y
// avanza entrada → salida → completo.
// POST /api/asistencias/qr  Body: {uid}
func (ctl *AsistenciaController) MarcarQr(c *fiber.Ctx) error {
	var req dto.MarcarQrRequest
	if err := c.BodyParser(&req); err != nil || req.UID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta uid")
	}

	res, err := service.MarcarPorQR(ctl.DB, req.UID, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Entrada registrada"
	switch res.Accion {
	case "salida":
		msg = "Salida registrada"
	case "completo":
		msg = "Asistencia ya completa"
	}
	return helper.JsonOK(c, msg, res)
}

// ListHoy devuelve las asistencias de la fecha actual.
// GET /api/asistencias/hoy
func (ctl *AsistenciaController) ListHoy(c *fiber.Ctx) error {
	rows, err := service.ListarPorFecha(ctl.DB, dbtime.Hoy())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar asistencias de hoy")
	}
	return helper.JsonOK(c, "ok", rows)
}

// ListByDate es igual a /hoy pero para una fecha puntual.
// GET /api/asistencias/by-date?date=YYYY-MM-DD
func (ctl *AsistenciaController) ListByDate(c *fiber.Ctx) error {
	s := c.Query("date")
	if s == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta date (YYYY-MM-DD)")
	}
	fecha, err := dbtime.ParseFecha(s)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date inválida (YYYY-MM-DD)")
	}

	rows, err := service.ListarPorFecha(ctl.DB, fecha)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar asistencias")
	}
	return helper.JsonOK(c, "ok", rows)
}
