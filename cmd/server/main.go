package main

import (
	"context"
	"fmt"
	"time"

	httpadapter "github.com/dumu-tech/pixel-bazaar/internal/adapters/http"
	"github.com/dumu-tech/pixel-bazaar/internal/adapters/postgres"
	redisadapter "github.com/dumu-tech/pixel-bazaar/internal/adapters/redis"
	"github.com/dumu-tech/pixel-bazaar/internal/config"
	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/dumu-tech/pixel-bazaar/internal/events"
	"github.com/dumu-tech/pixel-bazaar/internal/memstore"
	"github.com/dumu-tech/pixel-bazaar/internal/service"
	"github.com/dumu-tech/pixel-bazaar/internal/sim"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// The simulated database, seeded with the stock catalog
	store := memstore.New(core.DefaultSeed())

	// Cart lives in memory unless a Redis session store is configured
	var cartRepo core.CartRepository = store.Cart()
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("Failed to parse Redis URL: %v", err)
		}
		if cfg.RedisPassword != "" {
			redisOpts.Password = cfg.RedisPassword
		}

		rdb := redis.NewClient(redisOpts)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			cancel()
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		cancel()
		logrus.Info("Redis connection established, cart session stored in Redis")

		cartRepo = redisadapter.NewCartRepository(rdb, cfg.CartSessionID)
	}

	// Optional write-behind transaction archive
	var archive core.TransactionArchive
	if cfg.DBURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		dbpool, err := pgxpool.New(ctx, cfg.DBURL)
		if err != nil {
			cancel()
			logrus.Fatalf("Failed to create connection pool: %v", err)
		}
		defer dbpool.Close()

		if err := dbpool.Ping(ctx); err != nil {
			cancel()
			logrus.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		cancel()
		logrus.Info("PostgreSQL connection established, transaction archive enabled")

		archive, err = postgres.NewArchive(cfg.DBURL)
		if err != nil {
			logrus.Fatalf("Failed to initialize transaction archive: %v", err)
		}
	}

	policy := sim.NewNetwork(
		time.Duration(cfg.SimMinDelayMs)*time.Millisecond,
		time.Duration(cfg.SimMaxDelayMs)*time.Millisecond,
		cfg.SimCheckoutFailureRate,
	)
	eventBus := events.NewEventBus()

	storefrontService := service.NewStorefrontService(store.Users(), store.Catalog(), cartRepo, store.Transactions(), archive, policy, eventBus)
	catalogService := service.NewCatalogService(store.Catalog(), cartRepo, policy, eventBus)
	dashboardService := service.NewDashboardService(store.Transactions(), policy, eventBus)

	app := fiber.New(fiber.Config{
		AppName:      "Pixel Bazaar API",
		ServerHeader: "Fiber",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	httpadapter.RegisterRoutes(
		app,
		httpadapter.NewHandler(storefrontService, catalogService),
		httpadapter.NewDashboardHandler(dashboardService),
	)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	logrus.Infof("Server starting on %s (env: %s)", addr, cfg.AppEnv)
	if err := app.Listen(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
