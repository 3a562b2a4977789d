package main

import (
	"log"

	"github.com/example/eventhub/internal/config"
	"github.com/example/eventhub/internal/database"
	"github.com/example/eventhub/internal/routes"
	"github.com/example/eventhub/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)
	mailer := services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	app := routes.NewApp(db, cfg, mailer)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
