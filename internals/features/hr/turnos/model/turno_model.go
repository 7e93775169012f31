package model

import (
	"sigph_backend/internals/helpers/dbtime"
)

// TurnoModel es el catálogo de turnos: hora de entrada esperada + tolerancia.
// Dato de referencia, se administra por seed; muchos empleados pueden
// compartir un turno y un empleado puede no tener ninguno.
type TurnoModel struct {
	ID            uint       `gorm:"primaryKey;column:id" json:"id"`
	Nombre        string     `gorm:"size:60;not null;column:nombre" json:"nombre"`
	HoraInicio    dbtime.Tod `gorm:"type:time;not null;column:hora_inicio" json:"hora_inicio"`
	ToleranciaMin int        `gorm:"not null;default:0;column:tolerancia_min" json:"tolerancia_min"`
}

func (TurnoModel) TableName() string { return "turnos" }
