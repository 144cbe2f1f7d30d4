// path: main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"civicfix/auth"
	"civicfix/config"
	"civicfix/controllers"
	"civicfix/database"
	"civicfix/middlewares"
	"civicfix/routes"
	"civicfix/store"
	"civicfix/uploads"
)

func main() {
	cfg := config.Load()

	client, db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	st := store.New(db)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret)

	up, err := uploads.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "*",
	}))

	// Static preview for uploaded files
	app.Static("/uploads", cfg.UploadDir)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, routes.Deps{
		Auth:         &controllers.AuthController{Users: st, Tokens: tokens},
		Reports:      &controllers.ReportController{Reports: st, Users: st, Comments: st, Uploads: up},
		Analytics:    &controllers.AnalyticsController{Reports: st},
		Users:        &controllers.UserController{Users: st},
		RequireAuth:  middlewares.Required(st, tokens),
		OptionalAuth: middlewares.Optional(st, tokens),
	})

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Println("shutting down")
		_ = app.Shutdown()
	}()

	log.Printf("API listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Printf("listen: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
