package main

import (
	"fmt"
	"net/http"
	"os"

	"orderdesk/cmd"
	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/sqlite/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_sqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := gorm.Open(gorm_sqlite.Open(configs.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}, &orderrepo.WatermarkDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// .env is optional; process environment wins either way.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort: envOrDefault("HTTP_PORT", "8080"),
		DBPath:   envOrDefault("DB_PATH", "file:orderdesk?mode=memory&cache=shared"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCommitOrderCommandHandler(),
		app.CreateRemoveOrderCommandHandler(),
		app.CreateSearchOrdersQueryHandler(),
		app.CreateExportOrderQueryHandler(),
		app.CreateOrderRepository(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
