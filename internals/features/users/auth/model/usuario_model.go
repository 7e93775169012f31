package model

import "time"

// RolModel define el nivel de acceso (ADMIN, SUPERVISOR).
type RolModel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"type:varchar(40);not null;uniqueIndex" json:"nombre"`
}

func (RolModel) TableName() string { return "roles" }

// UsuarioModel es la cuenta de acceso al panel.
type UsuarioModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(60);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password;type:varchar(100);not null" json:"-"`
	Estado       string    `gorm:"type:varchar(10);not null;default:activo" json:"estado"`
	RolID        uint      `gorm:"not null" json:"rol_id"`
	Rol          *RolModel `gorm:"foreignKey:RolID" json:"rol,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UsuarioModel) TableName() string { return "usuarios" }
