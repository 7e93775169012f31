package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/features/inventory/materiales/dto"
	"sigph_backend/internals/features/inventory/materiales/model"
	helper "sigph_backend/internals/helpers"
)

type MaterialController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMaterialController(db *gorm.DB, v *validator.Validate) *MaterialController {
	return &MaterialController{DB: db, Validate: v}
}

// List devuelve el stock completo.
// GET /api/materiales
func (ctl *MaterialController) List(c *fiber.Ctx) error {
	var rows []model.MaterialModel
	if err := ctl.DB.Order("nombre ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar materiales")
	}
	return helper.JsonOK(c, "ok", rows)
}

// AjustarStock aplica un delta atómico sobre la cantidad.
// El UPDATE condicionado evita dejar stock negativo bajo concurrencia.
// PUT /api/materiales/:id
func (ctl *MaterialController) AjustarStock(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.AjustarStockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	delta := *req.Cantidad

	res := ctl.DB.Model(&model.MaterialModel{}).
		Where("id = ? AND cantidad + ? >= 0", uint(id), delta).
		Update("cantidad", gorm.Expr("cantidad + ?", delta))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al ajustar stock")
	}

	if res.RowsAffected == 0 {
		var m model.MaterialModel
		if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Material inexistente")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error al ajustar stock")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Stock insuficiente para ese ajuste")
	}

	var m model.MaterialModel
	if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al leer material")
	}
	return helper.JsonUpdated(c, "Stock actualizado", m)
}
