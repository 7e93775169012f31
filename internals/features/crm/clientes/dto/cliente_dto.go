package dto

import (
	"strings"

	"sigph_backend/internals/features/crm/clientes/model"
)

type CreateClienteRequest struct {
	Nombre    string  `json:"nombre" validate:"required,min=1,max=80"`
	Apellido  string  `json:"apellido" validate:"required,min=1,max=80"`
	Empresa   *string `json:"empresa" validate:"omitempty,max=120"`
	Email     string  `json:"email" validate:"required,email,max=120"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=30"`
}

func (r *CreateClienteRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellido = strings.TrimSpace(r.Apellido)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Empresa != nil {
		e := strings.TrimSpace(*r.Empresa)
		if e == "" {
			r.Empresa = nil
		} else {
			r.Empresa = &e
		}
	}
}

func (r CreateClienteRequest) ToModel() model.ClienteModel {
	return model.ClienteModel{
		Nombre:    r.Nombre,
		Apellido:  r.Apellido,
		Empresa:   r.Empresa,
		Email:     r.Email,
		Telefono:  r.Telefono,
	}
}
