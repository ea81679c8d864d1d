package cli

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/plantcare/internal/api"
	"github.com/terraincognita07/plantcare/internal/config"
	"github.com/terraincognita07/plantcare/internal/db"
	"github.com/terraincognita07/plantcare/internal/services"
)

func newServeCommand(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := options.loadConfig()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func newServerApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "PlantCare",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func runServe(ctx context.Context, cfg *config.Config) error {
	location := cfg.Location()

	database, closeDatabase, err := openDatabase(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer closeDatabase()

	handler, err := api.NewHandler(database, cfg.Auth.Secret, location, cfg.Reminders.UpcomingLimit)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	if cfg.Auth.Secret == "" {
		log.Printf("serve: no auth secret configured, trusting the userId query parameter")
	}

	app := newServerApp(handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(ctx)
	defer cancelLifecycle()

	if cfg.Digest.Enabled {
		digest := services.NewReminderDigestService(db.NewReminderRepository(database), location)
		if err := digest.Start(lifecycleCtx, cfg.Digest.Schedule); err != nil {
			return err
		}
		defer digest.Stop()
	}

	sigCtx, stopSignals := signal.NotifyContext(lifecycleCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("serve: shutdown failed: %v", err)
		}
	}()

	log.Printf("PlantCare listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Server.Port, cfg.Database.Path, location.String())
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
