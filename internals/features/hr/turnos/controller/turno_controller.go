package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/features/hr/turnos/model"
	helper "sigph_backend/internals/helpers"
)

type TurnoController struct{ DB *gorm.DB }

func NewTurnoController(db *gorm.DB) *TurnoController {
	return &TurnoController{DB: db}
}

// List devuelve el catálogo de turnos (solo lectura).
// GET /api/turnos
func (ctl *TurnoController) List(c *fiber.Ctx) error {
	var rows []model.TurnoModel
	if err := ctl.DB.Order("hora_inicio ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar turnos")
	}
	return helper.JsonOK(c, "ok", rows)
}
