package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError convierte un error de servicio (normalmente *fiber.Error)
// en una respuesta JSON consistente vía JsonError.
// Si no es *fiber.Error, cae a 500 sin filtrar el mensaje interno.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Error interno")
}
