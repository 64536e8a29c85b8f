package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/winthrop-intelligence/phone-wrangler/internal/observability"
	"github.com/winthrop-intelligence/phone-wrangler/internal/wrangler/handler"
	"github.com/winthrop-intelligence/phone-wrangler/internal/wrangler/service"
	"github.com/winthrop-intelligence/phone-wrangler/internal/wrangler/validator"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/app"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/config"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/phone"
)

const ServiceName = "phone-wrangler"

func main() {
	cfg := config.Load(ServiceName)
	observability.Register(prometheus.DefaultRegisterer)

	cfg.Log.Info("Starting phone wrangler service")
	wranglerService := initServices(cfg)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewWranglerHandler(wranglerService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.WranglerService {
	phone.SetDefaultAreaCode(cfg.DefaultAreaCode)

	phoneValidator := validator.NewPhoneValidator(cfg.Log)
	wranglerService := service.NewWranglerService(
		phone.Default(),
		phoneValidator,
		cfg.Log,
	)

	cfg.Log.Info("Phone wrangler service initialized", "default_area_code", cfg.DefaultAreaCode)
	return wranglerService
}
