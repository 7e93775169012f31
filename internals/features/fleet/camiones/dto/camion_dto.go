package dto

import "strings"

type CreateCamionRequest struct {
	Patente     string   `json:"patente" validate:"required,max=15"`
	Marca       *string  `json:"marca,omitempty" validate:"omitempty,max=60"`
	Modelo      *string  `json:"modelo,omitempty" validate:"omitempty,max=60"`
	Anio        *int     `json:"anio,omitempty" validate:"omitempty,min=1950,max=2100"`
	CapacidadM3 *float64 `json:"capacidad_m3,omitempty" validate:"omitempty,min=0"`
	Activo      *bool    `json:"activo,omitempty"`
}

// Normalize deja la patente en mayúsculas y sin espacios (clave única).
func (r *CreateCamionRequest) Normalize() {
	r.Patente = NormalizarPatente(r.Patente)
}

type UpdateCamionRequest struct {
	Marca       *string  `json:"marca,omitempty" validate:"omitempty,max=60"`
	Modelo      *string  `json:"modelo,omitempty" validate:"omitempty,max=60"`
	Anio        *int     `json:"anio,omitempty" validate:"omitempty,min=1950,max=2100"`
	CapacidadM3 *float64 `json:"capacidad_m3,omitempty" validate:"omitempty,min=0"`
	Activo      *bool    `json:"activo,omitempty"`
}

func (r UpdateCamionRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.Marca != nil {
		up["marca"] = *r.Marca
	}
	if r.Modelo != nil {
		up["modelo"] = *r.Modelo
	}
	if r.Anio != nil {
		up["anio"] = *r.Anio
	}
	if r.CapacidadM3 != nil {
		up["capacidad_m3"] = *r.CapacidadM3
	}
	if r.Activo != nil {
		up["activo"] = *r.Activo
	}
	return up
}

func NormalizarPatente(p string) string {
	return strings.ToUpper(strings.TrimSpace(p))
}
