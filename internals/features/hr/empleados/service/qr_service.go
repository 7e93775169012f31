package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigph_backend/internals/features/hr/empleados/model"
)

// EmitirOObtenerQR devuelve la credencial QR del empleado.
// - Sin qr_uid o con force → genera un uuid v4 nuevo y lo persiste
//   (invalida el token anterior).
// - Con qr_uid y sin force → devuelve el existente sin tocar nada.
// Acción administrativa de baja frecuencia: ante regeneraciones
// concurrentes gana la última escritura.
func EmitirOObtenerQR(db *gorm.DB, empleadoID uint, force bool) (*model.EmpleadoModel, error) {
	var emp model.EmpleadoModel
	if err := db.First(&emp, empleadoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Empleado no encontrado")
		}
		return nil, err
	}

	if emp.QrUID == nil || force {
		nuevo := uuid.NewString()
		if err := db.Model(&emp).Update("qr_uid", nuevo).Error; err != nil {
			return nil, err
		}
		emp.QrUID = &nuevo
	}

	return &emp, nil
}
