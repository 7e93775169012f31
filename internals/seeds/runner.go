package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigph_backend/internals/configs"
	"sigph_backend/internals/constants"
	empleadoModel "sigph_backend/internals/features/hr/empleados/model"
	turnoModel "sigph_backend/internals/features/hr/turnos/model"
	authModel "sigph_backend/internals/features/users/auth/model"
	"sigph_backend/internals/helpers/dbtime"
)

// Run carga los datos de referencia mínimos. Es idempotente: se puede
// ejecutar en cada arranque sin duplicar filas.
func Run(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedCargos(db); err != nil {
		return err
	}
	if err := seedTurnos(db); err != nil {
		return err
	}
	if err := seedAdmin(db); err != nil {
		return err
	}
	log.Println("✅ Seeds aplicados")
	return nil
}

func seedRoles(db *gorm.DB) error {
	for _, nombre := range []string{constants.RolAdmin, constants.RolSupervisor} {
		rol := authModel.RolModel{Nombre: nombre}
		if err := db.Where("nombre = ?", nombre).FirstOrCreate(&rol).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCargos(db *gorm.DB) error {
	for _, c := range constants.TodosLosCargos {
		cargo := empleadoModel.CargoModel{Nombre: c.String()}
		if err := db.Where("nombre = ?", c.String()).FirstOrCreate(&cargo).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTurnos(db *gorm.DB) error {
	base := []struct {
		nombre     string
		horaInicio string
		tolerancia int
	}{
		{"Mañana", "06:00:00", 10},
		{"Tarde", "14:00:00", 10},
		{"Noche", "22:00:00", 15},
	}
	for _, t := range base {
		hora, err := dbtime.Parse(t.horaInicio)
		if err != nil {
			return err
		}
		turno := turnoModel.TurnoModel{
			Nombre:        t.nombre,
			HoraInicio:    hora,
			ToleranciaMin: t.tolerancia,
		}
		if err := db.Where("nombre = ?", t.nombre).FirstOrCreate(&turno).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin crea el usuario inicial del panel si no hay ninguno.
// Las credenciales salen del entorno para no hardcodear claves.
func seedAdmin(db *gorm.DB) error {
	var total int64
	if err := db.Model(&authModel.UsuarioModel{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	username := configs.GetEnv("ADMIN_USERNAME", "admin")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin123")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var rol authModel.RolModel
	if err := db.Where("nombre = ?", constants.RolAdmin).First(&rol).Error; err != nil {
		return err
	}

	user := authModel.UsuarioModel{
		Username:     username,
		PasswordHash: string(hash),
		Estado:       "activo",
		RolID:        rol.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("✅ Usuario admin inicial creado (%s)", username)
	return nil
}
