// file: internals/features/hr/asistencias/service/ledger_service.go
//
// Libro diario de asistencias. Toda la concurrencia se apoya en el índice
// único (empleado_id, fecha): si dos check-in corren a la vez, el que pierde
// el INSERT termina en un UPDATE condicional que no pisa nada.
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigph_backend/internals/features/hr/asistencias/dto"
	"sigph_backend/internals/features/hr/asistencias/model"
	empleadoModel "sigph_backend/internals/features/hr/empleados/model"
	turnoModel "sigph_backend/internals/features/hr/turnos/model"
	helper "sigph_backend/internals/helpers"
	"sigph_backend/internals/helpers/dbtime"
)

// EstadoSegunTurno aplica la regla de puntualidad:
// sin turno → nil (no hay contra qué comparar);
// con turno → 'tarde' solo si la marca es estrictamente posterior a
// hora_inicio + tolerancia (el límite exacto cuenta como 'presente').
func EstadoSegunTurno(turno *turnoModel.TurnoModel, ahora time.Time) *string {
	if turno == nil {
		return nil
	}
	limite := turno.HoraInicio.AddMinutes(turno.ToleranciaMin)
	estado := model.EstadoPresente
	if dbtime.From(ahora).After(limite) {
		estado = model.EstadoTarde
	}
	return &estado
}

func buscarEmpleado(db *gorm.DB, empleadoID uint) (*empleadoModel.EmpleadoModel, error) {
	var emp empleadoModel.EmpleadoModel
	if err := db.Preload("Turno").First(&emp, empleadoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Empleado no encontrado")
		}
		return nil, err
	}
	return &emp, nil
}

// CheckIn registra la entrada del día. Idempotente: el primer check_in gana;
// repetir la llamada no toca ni el timestamp ni el estado ya calculado.
func CheckIn(db *gorm.DB, empleadoID uint, ahora time.Time, metodo string) (*model.AsistenciaModel, error) {
	emp, err := buscarEmpleado(db, empleadoID)
	if err != nil {
		return nil, err
	}

	fecha := dbtime.FechaDe(ahora)
	estado := EstadoSegunTurno(emp.Turno, ahora)

	fila := model.AsistenciaModel{
		EmpleadoID: emp.ID,
		Fecha:      fecha,
		CheckIn:    &ahora,
		Estado:     estado,
		Metodo:     metodo,
	}
	if err := db.Create(&fila).Error; err != nil {
		if !helper.EsUniqueViolation(err) {
			return nil, err
		}
		// Ya había fila hoy (o perdimos la carrera del INSERT):
		// check_in y estado solo se completan si estaban vacíos.
		updates := map[string]any{
			"check_in": gorm.Expr("COALESCE(check_in, ?)", ahora),
			"metodo":   metodo,
		}
		if estado != nil {
			updates["estado"] = gorm.Expr("COALESCE(estado, ?)", *estado)
		}
		if err := db.Model(&model.AsistenciaModel{}).
			Where("empleado_id = ? AND fecha = ?", emp.ID, fecha).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return filaDelDia(db, emp.ID, fecha)
}

// CheckOut registra la salida del día: gana la última escritura, sin
// validar que haya habido entrada.
func CheckOut(db *gorm.DB, empleadoID uint, ahora time.Time, metodo string) (*model.AsistenciaModel, error) {
	emp, err := buscarEmpleado(db, empleadoID)
	if err != nil {
		return nil, err
	}

	fecha := dbtime.FechaDe(ahora)
	fila := model.AsistenciaModel{
		EmpleadoID: emp.ID,
		Fecha:      fecha,
		CheckOut:   &ahora,
		Metodo:     metodo,
	}
	if err := db.Create(&fila).Error; err != nil {
		if !helper.EsUniqueViolation(err) {
			return nil, err
		}
		if err := db.Model(&model.AsistenciaModel{}).
			Where("empleado_id = ? AND fecha = ?", emp.ID, fecha).
			Updates(map[string]any{
				"check_out": ahora,
				"metodo":    metodo,
			}).Error; err != nil {
			return nil, err
		}
	}

	return filaDelDia(db, emp.ID, fecha)
}

// MarcarPorQR resuelve el empleado por su token y avanza la máquina de tres
// estados del día: sin fila → entrada; entrada sin salida → salida;
// completo → no toca nada.
func MarcarPorQR(db *gorm.DB, uid string, ahora time.Time) (*dto.ResultadoQr, error) {
	var emp empleadoModel.EmpleadoModel
	if err := db.Preload("Turno").Where("qr_uid = ?", uid).First(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "QR no asociado a ningún empleado")
		}
		return nil, err
	}
	if !emp.Activo {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Empleado inactivo")
	}

	fecha := dbtime.FechaDe(ahora)

	var fila model.AsistenciaModel
	err := db.Where("empleado_id = ? AND fecha = ?", emp.ID, fecha).First(&fila).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Primera marcación del día → entrada con estado según turno
		nueva := model.AsistenciaModel{
			EmpleadoID: emp.ID,
			Fecha:      fecha,
			CheckIn:    &ahora,
			Estado:     EstadoSegunTurno(emp.Turno, ahora),
			Metodo:     model.MetodoQR,
		}
		if err := db.Create(&nueva).Error; err != nil {
			if !helper.EsUniqueViolation(err) {
				return nil, err
			}
			// carrera perdida: alguien creó la fila entre el SELECT y el
			// INSERT; seguimos por la rama "ya había fila"
			if err := db.Where("empleado_id = ? AND fecha = ?", emp.ID, fecha).First(&fila).Error; err != nil {
				return nil, err
			}
			return avanzarFilaExistente(db, &emp, &fila, ahora)
		}
		return resultadoQr(&emp, &nueva, "entrada"), nil

	case err != nil:
		return nil, err

	default:
		return avanzarFilaExistente(db, &emp, &fila, ahora)
	}
}

func avanzarFilaExistente(db *gorm.DB, emp *empleadoModel.EmpleadoModel, fila *model.AsistenciaModel, ahora time.Time) (*dto.ResultadoQr, error) {
	switch {
	case fila.CheckIn == nil:
		// Fila sin entrada (caso raro: check-out manual primero). Ojo: acá el
		// estado queda fijo en 'presente' sin reaplicar la regla del turno;
		// así se comporta el sistema desde siempre y el cambio no está
		// definido a nivel producto, por eso no se unifica con CheckIn.
		presente := model.EstadoPresente
		if err := db.Model(fila).Updates(map[string]any{
			"check_in": ahora,
			"estado":   presente,
			"metodo":   model.MetodoQR,
		}).Error; err != nil {
			return nil, err
		}
		fila.CheckIn = &ahora
		fila.Estado = &presente
		return resultadoQr(emp, fila, "entrada"), nil

	case fila.CheckOut == nil:
		if err := db.Model(fila).Updates(map[string]any{
			"check_out": ahora,
			"metodo":    model.MetodoQR,
		}).Error; err != nil {
			return nil, err
		}
		fila.CheckOut = &ahora
		return resultadoQr(emp, fila, "salida"), nil

	default:
		// Día completo: no se muta nada
		return resultadoQr(emp, fila, "completo"), nil
	}
}

func resultadoQr(emp *empleadoModel.EmpleadoModel, fila *model.AsistenciaModel, accion string) *dto.ResultadoQr {
	return &dto.ResultadoQr{
		Accion: accion,
		Empleado: dto.EmpleadoPublico{
			ID:       emp.ID,
			Nombre:   emp.Nombre,
			Apellido: emp.Apellido,
			DNI:      emp.DNI,
		},
		CheckIn:  fila.CheckIn,
		CheckOut: fila.CheckOut,
	}
}

// ListarPorFecha devuelve las asistencias del día joineadas con el empleado,
// ordenadas por hora de entrada (las filas sin check_in ordenan por su
// created_at).
func ListarPorFecha(db *gorm.DB, fecha any) ([]dto.AsistenciaConEmpleado, error) {
	type filaJoin struct {
		ID         uint
		EmpleadoID uint
		Fecha      time.Time
		CheckIn    *time.Time
		CheckOut   *time.Time
		Estado     *string
		Metodo     string
		Nombre     string
		Apellido   string
		DNI        string `gorm:"column:dni"`
	}

	var filas []filaJoin
	err := db.Table("asistencias AS a").
		Select("a.id, a.empleado_id, a.fecha, a.check_in, a.check_out, a.estado, a.metodo, e.nombre, e.apellido, e.dni").
		Joins("JOIN empleados e ON e.id = a.empleado_id").
		Where("a.fecha = ?", fecha).
		Order("COALESCE(a.check_in, a.created_at) ASC").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.AsistenciaConEmpleado, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.AsistenciaConEmpleado{
			ID:         f.ID,
			EmpleadoID: f.EmpleadoID,
			Fecha:      f.Fecha.Format("2006-01-02"),
			CheckIn:    f.CheckIn,
			CheckOut:   f.CheckOut,
			Estado:     f.Estado,
			Metodo:     f.Metodo,
			Nombre:     f.Nombre,
			Apellido:   f.Apellido,
			DNI:        f.DNI,
		})
	}
	return out, nil
}

func filaDelDia(db *gorm.DB, empleadoID uint, fecha any) (*model.AsistenciaModel, error) {
	var fila model.AsistenciaModel
	if err := db.Where("empleado_id = ? AND fecha = ?", empleadoID, fecha).First(&fila).Error; err != nil {
		return nil, err
	}
	return &fila, nil
}
