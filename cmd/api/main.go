package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/invoice-layout/internal/application/billing"
	"github.com/jhoicas/invoice-layout/internal/domain/document"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/htmlview"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/kv"
	infrapdf "github.com/jhoicas/invoice-layout/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-layout/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/invoice-layout/internal/interfaces/http"
	"github.com/jhoicas/invoice-layout/pkg/config"
	"github.com/jhoicas/invoice-layout/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("engine", cfg.Export.Engine).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := kv.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacén de colecciones")
	}
	defer closeStore()

	repos, err := kv.OpenRepos(ctx, store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar colecciones")
	}

	renderer, err := htmlview.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas HTML")
	}

	// PDF: maroto (vectorial, sin dependencias externas) o Chrome headless.
	var rasterizer billing.DocumentRasterizer = infrapdf.NewMarotoRasterizer()
	if cfg.Export.Engine == "chromedp" {
		chrome := infrapdf.NewChromedpRasterizer(infrapdf.ChromedpConfig{
			RemoteURL: cfg.Export.ChromeURL,
			NoSandbox: os.Geteuid() == 0,
			Logger:    log.Component("chromedp"),
		}, renderer)
		defer chrome.Close()
		rasterizer = chrome
	}

	archive, err := newArchive(ctx, cfg.Export)
	if err != nil {
		log.Fatal().Err(err).Str("archive", cfg.Export.Archive).Msg("archivo de exportaciones")
	}

	branding, err := brandingFrom(cfg.Branding)
	if err != nil {
		log.Fatal().Err(err).Msg("BRAND_TIMEZONE")
	}

	customerUC := billing.NewCustomerUseCase(repos.Customers)
	productUC := billing.NewProductUseCase(repos.Products)
	invoiceUC := billing.NewInvoiceUseCase(repos.Invoices, repos.Customers, repos.Products)
	printUC := billing.NewPrintUseCase(repos.Invoices, renderer, rasterizer, archive, branding, log.Component("print"))
	reportUC := billing.NewReportUseCase(repos.Invoices, repos.Customers, repos.Products)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // exportación con Chrome
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Layout API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: la API queda sin autenticación")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		ProductUC:  productUC,
		InvoiceUC:  invoiceUC,
		PrintUC:    printUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newArchive destino de copias de los PDF; nil cuando EXPORT_ARCHIVE=none.
func newArchive(ctx context.Context, cfg config.ExportConfig) (billing.ExportArchive, error) {
	switch cfg.Archive {
	case "fs":
		return storage.NewFileSystemArchive(cfg.Dir)
	case "s3":
		return storage.NewS3Archive(ctx, cfg.S3)
	default:
		return nil, nil
	}
}

func brandingFrom(cfg config.BrandingConfig) (document.Branding, error) {
	b := document.Branding{
		BusinessName:  cfg.BusinessName,
		BusinessPhone: cfg.BusinessPhone,
		OrderPhone:    cfg.OrderPhone,
		Terms:         cfg.Terms,
		Disclaimer:    cfg.Disclaimer,
		Tagline:       cfg.Tagline,
		DateLayout:    cfg.DateLayout,
	}
	if cfg.TimeZone != "" {
		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return document.Branding{}, err
		}
		b.Location = loc
	}
	return b, nil
}
