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

	_ "github.com/revendapp/revenda-api/docs"
	"github.com/revendapp/revenda-api/internal/application/auth"
	apppurchase "github.com/revendapp/revenda-api/internal/application/purchase"
	"github.com/revendapp/revenda-api/internal/application/reporting"
	"github.com/revendapp/revenda-api/internal/application/usecase"
	infrapdf "github.com/revendapp/revenda-api/internal/infrastructure/pdf"
	"github.com/revendapp/revenda-api/internal/infrastructure/postgres"
	httpRouter "github.com/revendapp/revenda-api/internal/interfaces/http"
	"github.com/revendapp/revenda-api/pkg/config"
	"github.com/revendapp/revenda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	programRepo := postgres.NewProgramRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	programUC := usecase.NewProgramUseCase(programRepo)
	purchaseUC := apppurchase.NewUseCase(txRunner, productRepo, purchaseRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	stockUC := reporting.NewStockUseCase(stockRepo, pdfGenerator)
	pointsUC := reporting.NewPointsUseCase(purchaseRepo, cfg.Loyalty.Accounts, cfg.Loyalty.DefaultProgram, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Revenda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		StoreUC:    storeUC,
		ProgramUC:  programUC,
		PurchaseUC: purchaseUC,
		StockUC:    stockUC,
		PointsUC:   pointsUC,
		AuthUC:     authUC,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
