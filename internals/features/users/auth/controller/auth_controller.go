package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigph_backend/internals/configs"
	"sigph_backend/internals/features/users/auth/dto"
	"sigph_backend/internals/features/users/auth/model"
	helper "sigph_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// Login valida credenciales y emite un JWT HS256.
// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Faltan credenciales")
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UsuarioModel
	err := ctl.DB.Preload("Rol").
		Where("username = ? AND estado = 'activo'", req.Username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Usuario o contraseña inválidos")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	// Soporta clave plana (arranque) o hasheada con bcrypt (producción)
	ok := false
	if strings.HasPrefix(user.PasswordHash, "$2") {
		ok = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil
	} else {
		ok = req.Password == user.PasswordHash
	}
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuario o contraseña inválidos")
	}

	rolNombre := ""
	if user.Rol != nil {
		rolNombre = user.Rol.Nombre
	}

	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"rol":      rolNombre,
		"exp":      time.Now().Add(12 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helper.Success(c, "Login OK", dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:       user.ID,
			Username: user.Username,
			Rol:      rolNombre,
		},
	})
}
