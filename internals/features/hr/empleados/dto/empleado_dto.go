package dto

import (
	"strings"

	"gorm.io/datatypes"

	"sigph_backend/internals/features/hr/empleados/model"
	"sigph_backend/internals/helpers/dbtime"
)

type CreateEmpleadoRequest struct {
	Nombre       string  `json:"nombre" validate:"required,max=80"`
	Apellido     string  `json:"apellido" validate:"required,max=80"`
	DNI          string  `json:"dni" validate:"required,max=20"`
	Email        string  `json:"email" validate:"required,email,max=120"`
	Telefono     *string `json:"telefono,omitempty" validate:"omitempty,max=30"`
	FechaIngreso string  `json:"fecha_ingreso" validate:"required,datetime=2006-01-02"`
	Activo       *bool   `json:"activo,omitempty"`
	// Nombre de cargo opcional (ej. "CHOFER"); se resuelve a id_cargo
	CargoNombre *string `json:"cargo_nombre,omitempty"`
	// Turno opcional
	IDTurno *uint `json:"id_turno,omitempty"`
}

func (r *CreateEmpleadoRequest) Normalize() {
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Apellido = strings.TrimSpace(r.Apellido)
	r.DNI = strings.TrimSpace(r.DNI)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.CargoNombre != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.CargoNombre))
		r.CargoNombre = &v
	}
}

type EmpleadoResponse struct {
	ID           uint    `json:"id"`
	Nombre       string  `json:"nombre"`
	Apellido     string  `json:"apellido"`
	DNI          string  `json:"dni"`
	Email        string  `json:"email"`
	Telefono     *string `json:"telefono,omitempty"`
	FechaIngreso string  `json:"fecha_ingreso"`
	Activo       bool    `json:"activo"`
	Cargo        *string `json:"cargo,omitempty"`
	IDTurno      *uint   `json:"id_turno,omitempty"`
	QrUID        *string `json:"qr_uid,omitempty"`
}

func ToEmpleadoResponse(m model.EmpleadoModel) EmpleadoResponse {
	var cargo *string
	if m.Cargo != nil {
		cargo = &m.Cargo.Nombre
	}
	return EmpleadoResponse{
		ID:           m.ID,
		Nombre:       m.Nombre,
		Apellido:     m.Apellido,
		DNI:          m.DNI,
		Email:        m.Email,
		Telefono:     m.Telefono,
		FechaIngreso: dbtime.FormatFecha(m.FechaIngreso),
		Activo:       m.Activo,
		Cargo:        cargo,
		IDTurno:      m.IDTurno,
		QrUID:        m.QrUID,
	}
}

// ParseFechaIngreso convierte el string del wire a la columna DATE.
func (r CreateEmpleadoRequest) ParseFechaIngreso() (datatypes.Date, error) {
	return dbtime.ParseFecha(r.FechaIngreso)
}
