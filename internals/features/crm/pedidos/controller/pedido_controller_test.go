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

	climodel "sigph_backend/internals/features/crm/clientes/model"
	"sigph_backend/internals/features/crm/pedidos/model"
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

	require.NoError(t, db.AutoMigrate(&climodel.ClienteModel{}, &model.PedidoModel{}))

	app := fiber.New()
	ctl := NewPedidoController(db, validator.New())
	g := app.Group("/api/pedidos")
	g.Get("/", ctl.List)
	g.Get("/activos", ctl.ListActivos)
	g.Post("/", ctl.Create)
	g.Put("/:id/estado", ctl.CambiarEstado)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func crearCliente(t *testing.T, db *gorm.DB) *climodel.ClienteModel {
	t.Helper()
	cli := &climodel.ClienteModel{
		Nombre: "Marta", Apellido: "Suárez", Email: "msuarez@sigph.test",
	}
	require.NoError(t, db.Create(cli).Error)
	return cli
}

func pedidoBody(clienteID uint) fiber.Map {
	return fiber.Map{
		"cliente_id":       clienteID,
		"nombre_cliente":   "Marta",
		"apellido_cliente": "Suárez",
		"m3":               12.5,
		"fecha_entrega":    "2025-03-15",
	}
}

func TestCrearPedido(t *testing.T) {
	app, db := newTestApp(t)
	cli := crearCliente(t, db)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/pedidos/", pedidoBody(cli.ID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var m model.PedidoModel
	require.NoError(t, db.First(&m).Error)
	require.True(t, m.Activo)
	require.Equal(t, cli.ID, m.ClienteID)
	require.InDelta(t, 12.5, m.M3, 0.001)
}

func TestCrearPedidoValidaciones(t *testing.T) {
	app, db := newTestApp(t)
	cli := crearCliente(t, db)

	t.Run("faltan obligatorios", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/pedidos/", fiber.Map{
			"cliente_id": cli.ID,
			"m3":         5,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("cliente inexistente", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/pedidos/", pedidoBody(999))
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("fecha inválida", func(t *testing.T) {
		body := pedidoBody(cli.ID)
		body["fecha_entrega"] = "15/03/2025"
		resp, _ := doJSON(t, app, http.MethodPost, "/api/pedidos/", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCambiarEstadoYActivos(t *testing.T) {
	app, db := newTestApp(t)
	cli := crearCliente(t, db)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/pedidos/", pedidoBody(cli.ID))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var m model.PedidoModel
	require.NoError(t, db.First(&m).Error)

	// entregado → sale de /activos
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/pedidos/%d/estado", m.ID), fiber.Map{
		"activo": false,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, out := doJSON(t, app, http.MethodGet, "/api/pedidos/activos", nil)
	data, ok := out["data"].([]any)
	require.True(t, ok)
	require.Empty(t, data)

	// pero sigue en el listado general
	_, out = doJSON(t, app, http.MethodGet, "/api/pedidos/", nil)
	completo, ok := out["data"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 1, completo["total"])

	t.Run("id inexistente", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPut, "/api/pedidos/999/estado", fiber.Map{"activo": true})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
