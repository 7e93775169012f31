package model

import (
	"time"

	"gorm.io/datatypes"
)

// PedidoModel es un pedido de hormigón agendado. El cliente viene de la
// agenda (cliente_id) pero nombre/apellido se copian al pedido para que el
// historial no cambie si después editan la agenda.
type PedidoModel struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ClienteID       uint           `gorm:"not null;index" json:"cliente_id"`
	NombreCliente   string         `gorm:"type:varchar(80);not null" json:"nombre_cliente"`
	ApellidoCliente string         `gorm:"type:varchar(80);not null" json:"apellido_cliente"`
	Empresa         *string        `gorm:"type:varchar(120)" json:"empresa"`
	M3              float64        `gorm:"type:decimal(8,2);not null" json:"m3"`
	FechaEntrega    datatypes.Date `gorm:"type:date;not null;index" json:"fecha_entrega"`
	Observacion     *string        `gorm:"type:varchar(255)" json:"observacion"`
	Activo          bool           `gorm:"not null;default:true;index" json:"activo"`
	FechaAgendado   time.Time      `gorm:"autoCreateTime" json:"fecha_agendado"`
}

func (PedidoModel) TableName() string { return "pedidos" }
