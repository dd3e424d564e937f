package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/logger"
	"catalog/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Store and product catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load(v)
			if _, err := logger.Init(cfg.LogLevel); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("database-driver", "postgres", "database driver: postgres or sqlite")
	flags.String("database-dsn", "", "database connection string")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	_ = v.BindPFlag("DATABASE_DRIVER", flags.Lookup("database-driver"))
	_ = v.BindPFlag("DATABASE_DSN", flags.Lookup("database-dsn"))
	_ = v.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg)
		},
	}
	serveCmd.Flags().String("port", ":8080", "address the HTTP server listens on")
	_ = v.BindPFlag("APP_PORT", serveCmd.Flags().Lookup("port"))

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample stores and products",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			return seed(cmd.Context(), repositories.NewGORMStoreRepository(db), repositories.NewGORMProductRepository(db))
		},
	}

	rootCmd.AddCommand(serveCmd, seedCmd)
	return rootCmd
}

func serve(cfg config.Config) error {
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}

	deps := Dependencies{
		StoreRepo:   repositories.NewGORMStoreRepository(db),
		ProductRepo: repositories.NewGORMProductRepository(db),
		Exchange:    cfg.RabbitMQExchange,
	}

	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:        cfg.RabbitMQURL,
			Exchange:   cfg.RabbitMQExchange,
			Queue:      cfg.RabbitMQQueue,
			BindingKey: "product.#",
		})
		if err != nil {
			return err
		}
		defer mqClient.Close()
		deps.Publisher = mqClient

		err = mqClient.ConsumeEvents(func(msg amqp.Delivery) error {
			zap.L().Info("association event received",
				zap.String("routing_key", msg.RoutingKey),
				zap.ByteString("body", msg.Body))
			return nil
		})
		if err != nil {
			zap.L().Warn("failed to start RabbitMQ consumer", zap.Error(err))
		}
	} else {
		zap.L().Info("RABBITMQ_URL is empty, association events are disabled")
	}

	app := NewApp(deps)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			zap.L().Fatal("server failed to start", zap.Error(err))
		}
	}()
	zap.L().Info("server started", zap.String("port", cfg.AppPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutting down server")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("error during server shutdown", zap.Error(err))
	}
	zap.L().Info("server gracefully stopped")
	return nil
}

// seed inserts five stores in Bogotá and two products, each linked to the first stores.
func seed(ctx context.Context, storeRepo repositories.StoreRepository, productRepo repositories.ProductRepository) error {
	storeService := services.NewStoreService(storeRepo)
	productService := services.NewProductService(productRepo)
	productStoreService := services.NewProductStoreService(storeRepo, productRepo, nil, "")

	var stores []models.Store
	for i := 1; i <= 5; i++ {
		store, err := storeService.Create(ctx, &models.Store{
			Name:    fmt.Sprintf("Tienda %d", i),
			City:    "BOG",
			Address: fmt.Sprintf("Calle %d # %d-%d", 10*i, i, 20+i),
		})
		if err != nil {
			return fmt.Errorf("failed to seed store %d: %w", i, err)
		}
		stores = append(stores, *store)
	}

	products := []models.Product{
		{Name: "Leche", Price: 4200, Type: models.ProductTypePerishable},
		{Name: "Arroz", Price: 3500, Type: models.ProductTypeNonPerishable},
	}
	for i := range products {
		product, err := productService.Create(ctx, &products[i])
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
		if _, err := productStoreService.ReplaceStores(ctx, product.ID, stores[:2+i]); err != nil {
			return fmt.Errorf("failed to link product %s: %w", product.Name, err)
		}
		zap.L().Info("seeded product", zap.String("name", product.Name), zap.String("id", product.ID))
	}
	return nil
}
