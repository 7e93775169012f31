package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asignacionModel "sigph_backend/internals/features/fleet/asignaciones/model"
	"sigph_backend/internals/features/fleet/camiones/dto"
	"sigph_backend/internals/features/fleet/camiones/model"
	helper "sigph_backend/internals/helpers"
)

type CamionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCamionController(db *gorm.DB, v *validator.Validate) *CamionController {
	return &CamionController{DB: db, Validate: v}
}

// List devuelve todos los camiones.
// GET /api/camiones
func (ctl *CamionController) List(c *fiber.Ctx) error {
	var rows []model.CamionModel
	if err := ctl.DB.Order("id DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar camiones")
	}
	return helper.JsonOK(c, "ok", rows)
}

// Create da de alta un camión.
// POST /api/camiones
func (ctl *CamionController) Create(c *fiber.Ctx) error {
	var req dto.CreateCamionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if req.Patente == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "La patente es obligatoria")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	m := model.CamionModel{
		Patente:     req.Patente,
		Marca:       req.Marca,
		Modelo:      req.Modelo,
		Anio:        req.Anio,
		CapacidadM3: req.CapacidadM3,
		Activo:      activo,
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.EsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un camión con esa patente")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear camión")
	}

	return helper.JsonCreated(c, "Camión creado", m)
}

// Update edita marca/modelo/año/capacidad/activo. La patente no se toca.
// PATCH /api/camiones/:id
func (ctl *CamionController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateCamionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.CamionModel
	if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Camión no encontrado")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No hay campos para actualizar")
	}
	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar camión")
	}

	return helper.JsonUpdated(c, "Camión actualizado", m)
}

// Delete aplica el ciclo de vida del camión: si tiene asignaciones lo
// desactiva (baja lógica, queda el historial); si no, lo borra en serio.
// DELETE /api/camiones/:id
func (ctl *CamionController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m model.CamionModel
	if err := ctl.DB.First(&m, uint(id)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Camión no encontrado")
	}

	var refs int64
	if err := ctl.DB.Model(&asignacionModel.AsignacionDiariaModel{}).
		Where("camion_id = ?", m.ID).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al verificar asignaciones")
	}

	if refs > 0 {
		if err := ctl.DB.Model(&m).Update("activo", false).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error al dar de baja el camión")
		}
		return helper.JsonOK(c, "Camión con asignaciones: se dio de baja (activo=false)", fiber.Map{
			"id":          m.ID,
			"deactivated": true,
		})
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar camión")
	}
	return helper.JsonDeleted(c, "Camión eliminado", fiber.Map{"id": m.ID, "deleted": true})
}
