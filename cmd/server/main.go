package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"beorn/internal/config"
	"beorn/internal/customer"
	"beorn/internal/infrastructure/logger"
	"beorn/internal/infrastructure/mysql"
	"beorn/internal/menu"
	"beorn/internal/order"
	"beorn/internal/restaurant"
	"beorn/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	orderCtrl := order.NewModule(db, cfg, zapLogger)
	customerCtrl := customer.NewModule(db, zapLogger)
	restaurantCtrl := restaurant.NewModule(db, zapLogger)
	menuCtrl := menu.NewModule(db, zapLogger)

	router := server.NewRouter(orderCtrl, customerCtrl, restaurantCtrl, menuCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
