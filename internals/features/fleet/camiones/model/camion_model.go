package model

import "time"

type CamionModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`
	// Patente normalizada: mayúsculas y sin espacios alrededor
	Patente     string   `gorm:"size:15;not null;uniqueIndex;column:patente" json:"patente"`
	Marca       *string  `gorm:"size:60;column:marca" json:"marca,omitempty"`
	Modelo      *string  `gorm:"size:60;column:modelo" json:"modelo,omitempty"`
	Anio        *int     `gorm:"column:anio" json:"anio,omitempty"`
	CapacidadM3 *float64 `gorm:"column:capacidad_m3" json:"capacidad_m3,omitempty"`
	// activo=false: camión en avería o de baja, no se puede asignar
	Activo    bool      `gorm:"not null;default:true;column:activo" json:"activo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CamionModel) TableName() string { return "camiones" }
