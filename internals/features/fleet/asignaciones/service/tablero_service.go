// file: internals/features/fleet/asignaciones/service/tablero_service.go
//
// Tablero diario camión↔chofer. La regla dura vive en el índice único
// (fecha, camion_id): ante dos altas concurrentes del mismo camión gana una
// sola y la otra vuelve como conflicto, nunca como error genérico.
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sigph_backend/internals/constants"
	"sigph_backend/internals/features/fleet/asignaciones/dto"
	"sigph_backend/internals/features/fleet/asignaciones/model"
	camionModel "sigph_backend/internals/features/fleet/camiones/model"
	empleadoModel "sigph_backend/internals/features/hr/empleados/model"
	helper "sigph_backend/internals/helpers"
	"sigph_backend/internals/helpers/dbtime"
)

// validarChofer chequea que el empleado exista, esté activo y tenga cargo
// CHOFER. Todo antes de escribir nada.
func validarChofer(db *gorm.DB, choferID uint) error {
	var emp empleadoModel.EmpleadoModel
	if err := db.Preload("Cargo").First(&emp, choferID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Chofer inexistente")
		}
		return err
	}
	if !emp.Activo {
		return fiber.NewError(fiber.StatusBadRequest, "Chofer inactivo")
	}
	if emp.Cargo == nil || constants.Cargo(emp.Cargo.Nombre) != constants.CargoChofer {
		return fiber.NewError(fiber.StatusBadRequest, "El empleado no es CHOFER")
	}
	return nil
}

func validarCamion(db *gorm.DB, camionID uint) error {
	var cam camionModel.CamionModel
	if err := db.First(&cam, camionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Camión inexistente")
		}
		return err
	}
	if !cam.Activo {
		return fiber.NewError(fiber.StatusBadRequest, "Camión no activo (avería/baja)")
	}
	return nil
}

func parseHora(s *string) (*dbtime.Tod, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := dbtime.Parse(*s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Hora inválida (HH:MM)")
	}
	return &t, nil
}

// Crear da de alta una asignación. fecha default: hoy (hora del servidor).
func Crear(db *gorm.DB, req dto.CreateAsignacionRequest) (*model.AsignacionDiariaModel, error) {
	if req.CamionID == 0 || req.ChoferID == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Faltan datos: camion_id y chofer_id")
	}

	fecha := dbtime.Hoy()
	if req.Fecha != "" {
		f, err := dbtime.ParseFecha(req.Fecha)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "fecha inválida (YYYY-MM-DD)")
		}
		fecha = f
	}

	if err := validarCamion(db, req.CamionID); err != nil {
		return nil, err
	}
	if err := validarChofer(db, req.ChoferID); err != nil {
		return nil, err
	}

	horaInicio, err := parseHora(req.HoraInicio)
	if err != nil {
		return nil, err
	}
	horaFin, err := parseHora(req.HoraFin)
	if err != nil {
		return nil, err
	}

	m := model.AsignacionDiariaModel{
		Fecha:         fecha,
		CamionID:      req.CamionID,
		ChoferID:      req.ChoferID,
		HoraInicio:    horaInicio,
		HoraFin:       horaFin,
		Observaciones: req.Observaciones,
	}
	if err := db.Create(&m).Error; err != nil {
		if helper.EsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Ese camión ya está asignado en esa fecha")
		}
		return nil, err
	}
	return &m, nil
}

// Actualizar edita chofer/horas/observaciones. Lo que no viene queda igual;
// fecha y camión son inmutables.
func Actualizar(db *gorm.DB, id uint, req dto.UpdateAsignacionRequest) (*model.AsignacionDiariaModel, error) {
	var m model.AsignacionDiariaModel
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Asignación no encontrada")
		}
		return nil, err
	}

	updates := map[string]any{}
	if req.ChoferID != nil {
		if err := validarChofer(db, *req.ChoferID); err != nil {
			return nil, err
		}
		updates["chofer_id"] = *req.ChoferID
	}
	if req.HoraInicio != nil {
		t, err := parseHora(req.HoraInicio)
		if err != nil {
			return nil, err
		}
		updates["hora_inicio"] = t
	}
	if req.HoraFin != nil {
		t, err := parseHora(req.HoraFin)
		if err != nil {
			return nil, err
		}
		updates["hora_fin"] = t
	}
	if req.Observaciones != nil {
		updates["observaciones"] = *req.Observaciones
	}

	if len(updates) == 0 {
		return &m, nil
	}
	if err := db.Model(&m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Eliminar anula la asignación del día. Borrado duro y sin chequeo de
// existencia, igual que siempre se comportó el endpoint.
func Eliminar(db *gorm.DB, id uint) error {
	return db.Delete(&model.AsignacionDiariaModel{}, id).Error
}

// ListarPorFecha devuelve el tablero del día ordenado por patente.
func ListarPorFecha(db *gorm.DB, fecha datatypes.Date) ([]dto.AsignacionConDetalle, error) {
	type filaJoin struct {
		ID            uint
		Fecha         time.Time
		CamionID      uint
		ChoferID      uint
		HoraInicio    *dbtime.Tod
		HoraFin       *dbtime.Tod
		Observaciones *string
		Patente       string
		Marca         *string
		Modelo        *string
		Nombre        string
		Apellido      string
		DNI           string `gorm:"column:dni"`
	}

	var filas []filaJoin
	err := db.Table("asignaciones_diarias AS a").
		Select("a.id, a.fecha, a.camion_id, a.chofer_id, a.hora_inicio, a.hora_fin, a.observaciones, ca.patente, ca.marca, ca.modelo, e.nombre, e.apellido, e.dni").
		Joins("JOIN camiones ca ON ca.id = a.camion_id").
		Joins("JOIN empleados e ON e.id = a.chofer_id").
		Where("a.fecha = ?", fecha).
		Order("ca.patente ASC").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.AsignacionConDetalle, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.AsignacionConDetalle{
			ID:            f.ID,
			Fecha:         f.Fecha.Format("2006-01-02"),
			CamionID:      f.CamionID,
			ChoferID:      f.ChoferID,
			HoraInicio:    formatHora(f.HoraInicio),
			HoraFin:       formatHora(f.HoraFin),
			Observaciones: f.Observaciones,
			Patente:       f.Patente,
			Marca:         f.Marca,
			Modelo:        f.Modelo,
			Nombre:        f.Nombre,
			Apellido:      f.Apellido,
			DNI:           f.DNI,
		})
	}
	return out, nil
}

// ListarChoferes lista empleados activos con cargo CHOFER para el combo.
// No filtra los que ya tienen camión ese día: eso lo cruza el frontend
// contra el tablero de la fecha.
func ListarChoferes(db *gorm.DB) ([]dto.ChoferItem, error) {
	var out []dto.ChoferItem
	err := db.Table("empleados AS e").
		Select("e.id, e.nombre, e.apellido, e.dni").
		Joins("JOIN cargos c ON c.id = e.id_cargo").
		Where("e.activo = ? AND c.nombre = ?", true, constants.CargoChofer.String()).
		Order("e.apellido ASC, e.nombre ASC").
		Scan(&out).Error
	return out, err
}

// ListarCamiones lista camiones activos para el combo.
func ListarCamiones(db *gorm.DB) ([]dto.CamionItem, error) {
	var out []dto.CamionItem
	err := db.Table("camiones").
		Select("id, patente, marca, modelo, capacidad_m3").
		Where("activo = ?", true).
		Order("patente ASC").
		Scan(&out).Error
	return out, err
}

func formatHora(t *dbtime.Tod) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}
