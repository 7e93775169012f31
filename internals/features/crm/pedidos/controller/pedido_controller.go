package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	climodel "sigph_backend/internals/features/crm/clientes/model"
	"sigph_backend/internals/features/crm/pedidos/dto"
	"sigph_backend/internals/features/crm/pedidos/model"
	helper "sigph_backend/internals/helpers"
)

type PedidoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPedidoController(db *gorm.DB, v *validator.Validate) *PedidoController {
	return &PedidoController{DB: db, Validate: v}
}

// List devuelve todos los pedidos, los agendados más recientes primero.
// GET /api/pedidos?page=&per_page=
func (ctl *PedidoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctl.DB.Model(&model.PedidoModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar pedidos")
	}

	var rows []model.PedidoModel
	if err := ctl.DB.
		Order("fecha_agendado DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar pedidos")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"items":    rows,
		"page":     paging.Page,
		"per_page": paging.PerPage,
		"total":    total,
	})
}

// ListActivos devuelve solo los pedidos vigentes, agendado más reciente
// primero.
// GET /api/pedidos/activos
func (ctl *PedidoController) ListActivos(c *fiber.Ctx) error {
	var rows []model.PedidoModel
	if err := ctl.DB.
		Where("activo = ?", true).
		Order("fecha_agendado DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar pedidos")
	}
	return helper.JsonOK(c, "ok", rows)
}

// Create agenda un pedido nuevo.
// POST /api/pedidos
func (ctl *PedidoController) Create(c *fiber.Ctx) error {
	var req dto.CreatePedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fecha_entrega inválida (YYYY-MM-DD)")
	}

	// el cliente de agenda tiene que existir
	var cli climodel.ClienteModel
	if err := ctl.DB.First(&cli, m.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cliente inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al validar cliente")
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear pedido")
	}
	return helper.JsonCreated(c, "Pedido agendado", m)
}

// CambiarEstado marca un pedido como entregado/cancelado (activo=false) o lo reactiva.
// PUT /api/pedidos/:id/estado
func (ctl *PedidoController) CambiarEstado(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.CambiarEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.PedidoModel
	if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pedido inexistente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al buscar pedido")
	}

	if err := ctl.DB.Model(&m).Update("activo", *req.Activo).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar pedido")
	}
	return helper.JsonUpdated(c, "Estado actualizado", m)
}
