package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/SmartMunimJi/Smartmunimji-sub000/internal/api/http"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/api/http/handlers"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/auth"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/config"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/events"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/observability"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/persistence"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/repository"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/service"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/validation"
	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	sellerRepo := repository.NewSellerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	claimRepo := repository.NewClaimRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	validator := validation.NewClient(cfg.Validation.Timeout(), logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		SellerRepo: sellerRepo,
		Redis:      redis,
		Dispatcher: dispatcher,
	})
	sellerService := service.NewSellerService(sellerRepo, dispatcher)
	adminService := service.NewAdminService(userRepo, dispatcher)
	registrationService := service.NewRegistrationService(service.RegistrationDependencies{
		ProductRepo: productRepo,
		SellerRepo:  sellerRepo,
		Validator:   validator,
		Dispatcher:  dispatcher,
	})
	claimService := service.NewClaimService(service.ClaimDependencies{
		ClaimRepo:   claimRepo,
		ProductRepo: productRepo,
		Dispatcher:  dispatcher,
	})
	auditService := service.NewAuditService(auditRepo, dispatcher, logger)
	worker.StartAuditWorker(auditService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, sellerRepo, redis)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Sellers:        handlers.NewSellersHandler(authService, sellerService, registrationService, claimService),
		Products:       handlers.NewProductsHandler(registrationService),
		Claims:         handlers.NewClaimsHandler(claimService),
		Admin:          handlers.NewAdminHandler(authService, adminService, sellerService, claimService, auditService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
