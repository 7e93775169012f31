package model

import "time"

// ClienteModel es la agenda de clientes de la planta.
type ClienteModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"type:varchar(80);not null" json:"nombre"`
	Apellido  string    `gorm:"type:varchar(80);not null" json:"apellido"`
	Empresa   *string   `gorm:"type:varchar(120)" json:"empresa"`
	Email     string    `gorm:"type:varchar(120);not null;uniqueIndex" json:"email"`
	Telefono  *string   `gorm:"type:varchar(30)" json:"telefono"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClienteModel) TableName() string { return "clientes" }
