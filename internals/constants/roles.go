package constants

// Roles de usuario del sistema (tabla roles)
const (
	RolAdmin      = "ADMIN"
	RolSupervisor = "SUPERVISOR"
)

// Cargo es el puesto de un empleado (tabla cargos).
// Internamente se maneja tipado; en el wire sigue siendo string.
type Cargo string

const (
	CargoChofer         Cargo = "CHOFER"
	CargoOperario       Cargo = "OPERARIO"
	CargoAdministrativo Cargo = "ADMINISTRATIVO"
)

var TodosLosCargos = []Cargo{
	CargoChofer,
	CargoOperario,
	CargoAdministrativo,
}

func (c Cargo) String() string { return string(c) }

// EsValido reporta si el nombre corresponde a un cargo conocido.
func (c Cargo) EsValido() bool {
	for _, v := range TodosLosCargos {
		if v == c {
			return true
		}
	}
	return false
}
