package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EstadoPresente = "presente"
	EstadoTarde    = "tarde"

	MetodoManual = "manual"
	MetodoQR     = "qr"
)

// AsistenciaModel es el registro diario de asistencia: una fila por
// (empleado, fecha), garantizado por el índice único.
// check_in se escribe una sola vez (gana el primero); check_out se pisa
// siempre (gana el último). estado se calcula al momento del check-in y no
// se recalcula después.
type AsistenciaModel struct {
	ID         uint           `gorm:"primaryKey;column:id" json:"id"`
	EmpleadoID uint           `gorm:"not null;uniqueIndex:uq_asistencia_dia;column:empleado_id" json:"empleado_id"`
	Fecha      datatypes.Date `gorm:"not null;uniqueIndex:uq_asistencia_dia;column:fecha" json:"fecha"`
	CheckIn    *time.Time     `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut   *time.Time     `gorm:"column:check_out" json:"check_out,omitempty"`
	// 'presente' | 'tarde' | NULL (sin turno no hay contra qué comparar)
	Estado    *string   `gorm:"size:10;column:estado" json:"estado,omitempty"`
	Metodo    string    `gorm:"size:10;not null;default:manual;column:metodo" json:"metodo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AsistenciaModel) TableName() string { return "asistencias" }
