package model

import (
	"time"

	"gorm.io/datatypes"

	turnoModel "sigph_backend/internals/features/hr/turnos/model"
)

type CargoModel struct {
	ID     uint   `gorm:"primaryKey;column:id" json:"id"`
	Nombre string `gorm:"size:40;not null;uniqueIndex;column:nombre" json:"nombre"`
}

func (CargoModel) TableName() string { return "cargos" }

type EmpleadoModel struct {
	ID           uint           `gorm:"primaryKey;column:id" json:"id"`
	Nombre       string         `gorm:"size:80;not null;column:nombre" json:"nombre"`
	Apellido     string         `gorm:"size:80;not null;column:apellido" json:"apellido"`
	DNI          string         `gorm:"size:20;not null;uniqueIndex;column:dni" json:"dni"`
	Email        string         `gorm:"size:120;not null;uniqueIndex;column:email" json:"email"`
	Telefono     *string        `gorm:"size:30;column:telefono" json:"telefono,omitempty"`
	FechaIngreso datatypes.Date `gorm:"column:fecha_ingreso" json:"fecha_ingreso"`
	Activo       bool           `gorm:"not null;default:true;column:activo" json:"activo"`

	IDCargo *uint       `gorm:"column:id_cargo" json:"id_cargo,omitempty"`
	Cargo   *CargoModel `gorm:"foreignKey:IDCargo" json:"cargo,omitempty"`

	IDTurno *uint                  `gorm:"column:id_turno" json:"id_turno,omitempty"`
	Turno   *turnoModel.TurnoModel `gorm:"foreignKey:IDTurno" json:"turno,omitempty"`

	// Credencial QR: token opaco único, se asigna recién cuando se pide la
	// credencial; regenerarlo invalida el anterior.
	QrUID *string `gorm:"size:36;uniqueIndex;column:qr_uid" json:"qr_uid,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EmpleadoModel) TableName() string { return "empleados" }
