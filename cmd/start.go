package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"enchantment-tracker/core/config"
	"enchantment-tracker/core/document"
	"enchantment-tracker/core/loader"
	"enchantment-tracker/core/logger"
	"enchantment-tracker/core/middleware/rayid"
	"enchantment-tracker/core/storage"
	"enchantment-tracker/feature/enchantment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "enchantment-tracker/docs/swagger"
)

// @title Enchantment Tracker API
// @version 1.0
// @description API for tracking Minecraft librarian enchantment trades.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the enchantment tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidGameVersion() {
			logg.Fatal("Unsupported game version", zap.String("version", cfg.Server.GameVersion))
		}
		logg = logg.With(zap.String("game_version", cfg.Server.GameVersion))

		// 3. Initialize Document Store
		docs, err := newDocumentStore(cfg)
		if err != nil {
			logg.Fatal("Failed to create document store", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(enchantment.NewFeature(docs, cfg.Server.GameVersion, logg))

		// Middleware Registration
		// RayID must be first to trace everything.
		app.Use(rayid.New())

		// Request logging with Zap + RayID.
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// CORS for the browser table UI.
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CorsOrigin,
			AllowMethods: "GET,PUT,DELETE",
		}))

		// Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newDocumentStore builds the document store selected by the configuration.
func newDocumentStore(cfg *config.Config) (document.Store, error) {
	switch cfg.Document.Driver {
	case document.DriverS3:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return document.NewObjectStore(client, cfg.Storage.Bucket), nil
	default:
		return document.NewFileStore(cfg.Document.Path), nil
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
