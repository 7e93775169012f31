package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/features/hr/empleados/dto"
	"sigph_backend/internals/features/hr/empleados/model"
	"sigph_backend/internals/features/hr/empleados/service"
	helper "sigph_backend/internals/helpers"
)

type EmpleadoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmpleadoController(db *gorm.DB, v *validator.Validate) *EmpleadoController {
	return &EmpleadoController{DB: db, Validate: v}
}

// List devuelve los empleados con su cargo.
// GET /api/empleados
func (ctl *EmpleadoController) List(c *fiber.Ctx) error {
	var rows []model.EmpleadoModel
	if err := ctl.DB.Preload("Cargo").Order("id DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al listar empleados")
	}

	out := make([]dto.EmpleadoResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToEmpleadoResponse(m))
	}
	return helper.JsonOK(c, "ok", out)
}

// Create da de alta un empleado; cargo_nombre se resuelve a id_cargo.
// POST /api/empleados
func (ctl *EmpleadoController) Create(c *fiber.Ctx) error {
	var req dto.CreateEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	fecha, err := req.ParseFechaIngreso()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fecha_ingreso inválida (YYYY-MM-DD)")
	}

	var cargoID *uint
	if req.CargoNombre != nil && *req.CargoNombre != "" {
		var cargo model.CargoModel
		if err := ctl.DB.Where("nombre = ?", *req.CargoNombre).First(&cargo).Error; err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Cargo inválido")
		}
		cargoID = &cargo.ID
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	m := model.EmpleadoModel{
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		DNI:          req.DNI,
		Email:        req.Email,
		Telefono:     req.Telefono,
		FechaIngreso: fecha,
		Activo:       activo,
		IDCargo:      cargoID,
		IDTurno:      req.IDTurno,
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.EsUniqueViolation(err) {
			campo := "email"
			if strings.Contains(strings.ToLower(err.Error()), "dni") {
				campo = "DNI"
			}
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un empleado con ese "+campo)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error al crear empleado")
	}

	if m.IDCargo != nil {
		_ = ctl.DB.Preload("Cargo").First(&m, m.ID).Error
	}
	return helper.JsonCreated(c, "Empleado creado", dto.ToEmpleadoResponse(m))
}

// GenerarQR emite o devuelve la credencial QR del empleado.
// POST /api/empleados/:id/qr?force=1
func (ctl *EmpleadoController) GenerarQR(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	force := c.Query("force") == "1"

	emp, err := service.EmitirOObtenerQR(ctl.DB, uint(id), force)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToEmpleadoResponse(*emp))
}
