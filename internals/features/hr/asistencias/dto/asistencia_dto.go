package dto

import "time"

type MarcarRequest struct {
	EmpleadoID uint `json:"empleado_id" validate:"required"`
}

type MarcarQrRequest struct {
	UID string `json:"uid" validate:"required"`
}

// AsistenciaConEmpleado es la fila del listado por fecha, ya joineada con
// los datos visibles del empleado.
type AsistenciaConEmpleado struct {
	ID         uint       `json:"id"`
	EmpleadoID uint       `json:"empleado_id"`
	Fecha      string     `json:"fecha"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Estado     *string    `json:"estado,omitempty"`
	Metodo     string     `json:"metodo"`
	Nombre     string     `json:"nombre"`
	Apellido   string     `json:"apellido"`
	DNI        string     `json:"dni"`
}

type EmpleadoPublico struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	DNI      string `json:"dni"`
}

// ResultadoQr es la respuesta estándar del kiosco QR.
type ResultadoQr struct {
	Accion   string          `json:"accion"` // entrada | salida | completo
	Empleado EmpleadoPublico `json:"empleado"`
	CheckIn  *time.Time      `json:"check_in,omitempty"`
	CheckOut *time.Time      `json:"check_out,omitempty"`
}
