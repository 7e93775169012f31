package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"sigph_backend/internals/configs"
	databases "sigph_backend/internals/databases"
	"sigph_backend/internals/middlewares"
	routes "sigph_backend/internals/route"
	"sigph_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "SIGPH Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    2 * 1024 * 1024,
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	databases.ConnectDB()
	databases.TunePool()
	go databases.WarmUpQueries()

	databases.Migrate(databases.DB)
	if err := seeds.Run(databases.DB); err != nil {
		log.Fatalf("❌ Error aplicando seeds: %v", err)
	}

	routes.SetupRoutes(app, databases.DB)

	port := configs.GetEnv("PORT", "3001")
	go func() {
		log.Printf("✅ SIGPH backend escuchando en :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Error al iniciar el servidor: %v", err)
		}
	}()

	// Cierre ordenado: drena conexiones y cierra el pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🔌 Apagando el servidor...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error en el shutdown: %v", err)
	}
	if sqlDB, err := databases.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Servidor apagado")
}
