package model

import (
	"time"

	"gorm.io/datatypes"

	camionModel "sigph_backend/internals/features/fleet/camiones/model"
	empleadoModel "sigph_backend/internals/features/hr/empleados/model"
	"sigph_backend/internals/helpers/dbtime"
)

// AsignacionDiariaModel es el tablero diario camión↔chofer.
// El índice único (fecha, camion_id) impide reservar dos veces el mismo
// camión en el mismo día; un chofer sí puede llevar más de un camión.
// fecha y camión son inmutables después del alta.
type AsignacionDiariaModel struct {
	ID       uint           `gorm:"primaryKey;column:id" json:"id"`
	Fecha    datatypes.Date `gorm:"not null;uniqueIndex:uq_camion_dia;column:fecha" json:"fecha"`
	CamionID uint           `gorm:"not null;uniqueIndex:uq_camion_dia;column:camion_id" json:"camion_id"`
	ChoferID uint           `gorm:"not null;column:chofer_id" json:"chofer_id"`

	HoraInicio    *dbtime.Tod `gorm:"type:time;column:hora_inicio" json:"hora_inicio,omitempty"`
	HoraFin       *dbtime.Tod `gorm:"type:time;column:hora_fin" json:"hora_fin,omitempty"`
	Observaciones *string     `gorm:"size:255;column:observaciones" json:"observaciones,omitempty"`

	Camion *camionModel.CamionModel     `gorm:"foreignKey:CamionID" json:"camion,omitempty"`
	Chofer *empleadoModel.EmpleadoModel `gorm:"foreignKey:ChoferID" json:"chofer,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AsignacionDiariaModel) TableName() string { return "asignaciones_diarias" }
