package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	webAdapter "bizdesk/internal/adapters/web"
	"bizdesk/internal/app"
	"bizdesk/internal/config"
	"bizdesk/internal/core"
	"bizdesk/internal/db"
	"bizdesk/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	warehouseService := core.NewWarehouseService(pool)
	productService := core.NewProductService(pool)
	inventoryService := core.NewInventoryService(pool)
	customerService := core.NewCustomerService(pool)
	supplierService := core.NewSupplierService(pool)
	orderService := core.NewOrderService(pool)
	invoiceService := core.NewInvoiceService(pool)
	financeService := core.NewFinanceService(pool)

	svc := app.NewAppService(
		warehouseService,
		productService,
		inventoryService,
		customerService,
		supplierService,
		orderService,
		invoiceService,
		financeService,
	)

	handler := webAdapter.NewHandler(svc, zlog, cfg.AllowedOrigins)

	zlog.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		zlog.Fatal("server", zap.Error(err))
	}
}
