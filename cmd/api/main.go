package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Concesionaria-api/internal/interfaces/http"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	carRepo := postgres.NewCarRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	insuranceRepo := postgres.NewInsuranceRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	testDriveRepo := postgres.NewTestDriveRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	proj := usecase.NewProjector(userRepo, carRepo, saleRepo, insuranceRepo, paymentRepo)
	now := time.Now

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, now, log)
	userUC := usecase.NewUserUseCase(userRepo, now, log)
	carUC := usecase.NewCarUseCase(carRepo, saleRepo, testDriveRepo, serviceRepo, supplierRepo, proj, log)
	saleUC := usecase.NewSaleUseCase(saleRepo, carRepo, userRepo, proj, now, log)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, saleRepo, userRepo, insuranceRepo, txRunner, proj, now, log)
	insuranceUC := usecase.NewInsuranceUseCase(insuranceRepo, saleRepo, proj, log)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, carRepo, proj, now, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, carRepo, proj, now, log)
	testDriveUC := usecase.NewTestDriveUseCase(testDriveRepo, carRepo, userRepo, proj, now, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CarUC:       carUC,
		SaleUC:      saleUC,
		PaymentUC:   paymentUC,
		InsuranceUC: insuranceUC,
		ServiceUC:   serviceUC,
		SupplierUC:  supplierUC,
		TestDriveUC: testDriveUC,
		JWTSecret:   cfg.JWT.Secret,
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
