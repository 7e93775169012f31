package dto

import (
	"strings"

	"sigph_backend/internals/features/crm/pedidos/model"
	"sigph_backend/internals/helpers/dbtime"
)

type CreatePedidoRequest struct {
	ClienteID       uint    `json:"cliente_id" validate:"required"`
	NombreCliente   string  `json:"nombre_cliente" validate:"required,min=1,max=80"`
	ApellidoCliente string  `json:"apellido_cliente" validate:"required,min=1,max=80"`
	Empresa         *string `json:"empresa" validate:"omitempty,max=120"`
	M3              float64 `json:"m3" validate:"required,gt=0"`
	FechaEntrega    string  `json:"fecha_entrega" validate:"required,datetime=2006-01-02"`
	Observacion     *string `json:"observacion" validate:"omitempty,max=255"`
}

func (r *CreatePedidoRequest) Normalize() {
	r.NombreCliente = strings.TrimSpace(r.NombreCliente)
	r.ApellidoCliente = strings.TrimSpace(r.ApellidoCliente)
	if r.Empresa != nil {
		e := strings.TrimSpace(*r.Empresa)
		if e == "" {
			r.Empresa = nil
		} else {
			r.Empresa = &e
		}
	}
}

// ToModel arma el pedido (activo=true de entrada). Devuelve error si la
// fecha de entrega no parsea.
func (r CreatePedidoRequest) ToModel() (model.PedidoModel, error) {
	fecha, err := dbtime.ParseFecha(r.FechaEntrega)
	if err != nil {
		return model.PedidoModel{}, err
	}
	return model.PedidoModel{
		ClienteID:       r.ClienteID,
		NombreCliente:   r.NombreCliente,
		ApellidoCliente: r.ApellidoCliente,
		Empresa:         r.Empresa,
		M3:              r.M3,
		FechaEntrega:    fecha,
		Observacion:     r.Observacion,
		Activo:          true,
	}, nil
}

type CambiarEstadoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}
