package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/features/crm/clientes/dto"
	"sigph_backend/internals/features/crm/clientes/model"
	helper "sigph_backend/internals/helpers"
)

type ClienteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClienteController(db *gorm.DB, v *validator.Validate) *ClienteController {
	return &ClienteController{DB: db, Validate: v}
}

// List devuelve la agenda paginada, los más nuevos primero.
// GET /api/clientes?page=&per_page=
func (ctl *ClienteController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctl.DB.Model(&model.ClienteModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar clientes")
	}

	var rows []model.ClienteModel
	if err := ctl.DB.
		Order("id DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar clientes")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"items":    rows,
		"page":     paging.Page,
		"per_page": paging.PerPage,
		"total":    total,
	})
}

// Create da de alta un cliente en la agenda.
// POST /api/clientes
func (ctl *ClienteController) Create(c *fiber.Ctx) error {
	var req dto.CreateClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.EsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un cliente con ese email")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear cliente")
	}
	return helper.JsonCreated(c, "Cliente creado", m)
}

// Delete borra el cliente de la agenda.
// DELETE /api/clientes/:id
func (ctl *ClienteController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := ctl.DB.Delete(&model.ClienteModel{}, uint(id)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar cliente")
	}
	return helper.JsonDeleted(c, "Cliente eliminado", fiber.Map{"id": id})
}
