package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/features/fleet/asignaciones/dto"
	"sigph_backend/internals/features/fleet/asignaciones/service"
	helper "sigph_backend/internals/helpers"
	"sigph_backend/internals/helpers/dbtime"
)

type AsignacionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAsignacionController(db *gorm.DB, v *validator.Validate) *AsignacionController {
	return &AsignacionController{DB: db, Validate: v}
}

// List devuelve el tablero de una fecha (default: hoy).
// GET /api/asignaciones?fecha=YYYY-MM-DD
func (ctl *AsignacionController) List(c *fiber.Ctx) error {
	fecha := dbtime.Hoy()
	if s := c.Query("fecha"); s != "" {
		f, err := dbtime.ParseFecha(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "fecha inválida (YYYY-MM-DD)")
		}
		fecha = f
	}

	rows, err := service.ListarPorFecha(ctl.DB, fecha)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar asignaciones")
	}
	return helper.JsonOK(c, "ok", rows)
}

// Create da de alta una asignación del día.
// POST /api/asignaciones
func (ctl *AsignacionController) Create(c *fiber.Ctx) error {
	var req dto.CreateAsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := service.Crear(ctl.DB, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Asignación creada", m)
}

// Update edita chofer/horas/observaciones (fecha y camión no se editan).
// PATCH /api/asignaciones/:id
func (ctl *AsignacionController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateAsignacionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := service.Actualizar(ctl.DB, uint(id), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Asignación actualizada", m)
}

// Delete anula la asignación del día.
// DELETE /api/asignaciones/:id
func (ctl *AsignacionController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := service.Eliminar(ctl.DB, uint(id)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar asignación")
	}
	return helper.JsonDeleted(c, "Asignación eliminada", fiber.Map{"id": id})
}

// Choferes alimenta el combo de choferes activos.
// GET /api/asignaciones/choferes
func (ctl *AsignacionController) Choferes(c *fiber.Ctx) error {
	rows, err := service.ListarChoferes(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar choferes")
	}
	return helper.JsonOK(c, "ok", rows)
}

// Camiones alimenta el combo de camiones activos.
// GET /api/asignaciones/camiones
func (ctl *AsignacionController) Camiones(c *fiber.Ctx) error {
	rows, err := service.ListarCamiones(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar camiones")
	}
	return helper.JsonOK(c, "ok", rows)
}
