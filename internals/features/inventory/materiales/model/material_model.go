package model

import "time"

// MaterialModel es el stock de insumos de la planta (cemento, arena, piedra).
type MaterialModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"type:varchar(80);not null;uniqueIndex" json:"nombre"`
	Cantidad  float64   `gorm:"type:decimal(12,2);not null;default:0" json:"cantidad"`
	Unidad    string    `gorm:"type:varchar(20);not null" json:"unidad"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MaterialModel) TableName() string { return "materiales" }
