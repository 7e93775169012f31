package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // usar cookie access_token si no viene Bearer
}

// AuthJWT valida el token HS256 emitido por el login y deja los claims
// básicos (user_id, username, rol) en Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: falta el Secret")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token: Authorization: Bearer xxx (o cookie si está habilitado)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verificación de algoritmo
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de firma inválido")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Claims inválidos")
		}

		c.Locals("jwt_claims", claims)
		if v, ok := claims["id"]; ok {
			c.Locals("user_id", v)
		}
		if v, ok := claims["username"].(string); ok {
			c.Locals("username", v)
		}
		if v, ok := claims["rol"].(string); ok {
			c.Locals("rol", v)
		}

		return c.Next()
	}
}
