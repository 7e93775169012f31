package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigph_backend/internals/features/inventory/materiales/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// la base :memory: vive por conexión
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.MaterialModel{}))

	app := fiber.New()
	ctl := NewMaterialController(db, validator.New())
	g := app.Group("/api/materiales")
	g.Get("/", ctl.List)
	g.Put("/:id", ctl.AjustarStock)

	return app, db
}

func ajustar(t *testing.T, app *fiber.App, id uint, delta float64) *http.Response {
	t.Helper()
	body, err := json.Marshal(fiber.Map{"cantidad": delta})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/materiales/%d", id), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAjustarStock(t *testing.T) {
	app, db := newTestApp(t)

	mat := model.MaterialModel{Nombre: "Cemento", Cantidad: 100, Unidad: "kg"}
	require.NoError(t, db.Create(&mat).Error)

	t.Run("ingreso suma", func(t *testing.T) {
		resp := ajustar(t, app, mat.ID, 50)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var quedo model.MaterialModel
		require.NoError(t, db.First(&quedo, mat.ID).Error)
		require.InDelta(t, 150, quedo.Cantidad, 0.001)
	})

	t.Run("consumo descuenta", func(t *testing.T) {
		resp := ajustar(t, app, mat.ID, -150)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var quedo model.MaterialModel
		require.NoError(t, db.First(&quedo, mat.ID).Error)
		require.InDelta(t, 0, quedo.Cantidad, 0.001)
	})

	t.Run("no deja stock negativo", func(t *testing.T) {
		resp := ajustar(t, app, mat.ID, -1)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var quedo model.MaterialModel
		require.NoError(t, db.First(&quedo, mat.ID).Error)
		require.InDelta(t, 0, quedo.Cantidad, 0.001)
	})

	t.Run("material inexistente", func(t *testing.T) {
		resp := ajustar(t, app, 999, 10)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
