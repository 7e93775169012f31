package dto

type CreateAsignacionRequest struct {
	// default: hoy
	Fecha         string  `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CamionID      uint    `json:"camion_id" validate:"required"`
	ChoferID      uint    `json:"chofer_id" validate:"required"`
	HoraInicio    *string `json:"hora_inicio,omitempty"`
	HoraFin       *string `json:"hora_fin,omitempty"`
	Observaciones *string `json:"observaciones,omitempty" validate:"omitempty,max=255"`
}

// UpdateAsignacionRequest: edición parcial. Los campos que no vienen quedan
// como están; fecha y camión no se editan.
type UpdateAsignacionRequest struct {
	ChoferID      *uint   `json:"chofer_id,omitempty"`
	HoraInicio    *string `json:"hora_inicio,omitempty"`
	HoraFin       *string `json:"hora_fin,omitempty"`
	Observaciones *string `json:"observaciones,omitempty" validate:"omitempty,max=255"`
}

// AsignacionConDetalle es la fila del tablero, joineada con camión y chofer.
type AsignacionConDetalle struct {
	ID            uint    `json:"id"`
	Fecha         string  `json:"fecha"`
	CamionID      uint    `json:"camion_id"`
	ChoferID      uint    `json:"chofer_id"`
	HoraInicio    *string `json:"hora_inicio,omitempty"`
	HoraFin       *string `json:"hora_fin,omitempty"`
	Observaciones *string `json:"observaciones,omitempty"`
	Patente       string  `json:"patente"`
	Marca         *string `json:"marca,omitempty"`
	Modelo        *string `json:"modelo,omitempty"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	DNI           string  `json:"dni"`
}

// ChoferItem y CamionItem alimentan los combos del dashboard.
type ChoferItem struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	DNI      string `json:"dni"`
}

type CamionItem struct {
	ID          uint     `json:"id"`
	Patente     string   `json:"patente"`
	Marca       *string  `json:"marca,omitempty"`
	Modelo      *string  `json:"modelo,omitempty"`
	CapacidadM3 *float64 `json:"capacidad_m3,omitempty"`
}
