package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ReceiptPoints/internal/receipts"
	"ReceiptPoints/pkg/kit"
)

func main() {
	service := "receipts"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")
	metricsEnabled := getenv("METRICS_ENABLED", "") == "1"
	metricsToken := getenv("METRICS_TOKEN", "")
	adminSecret := getenv("ADMIN_JWT_SECRET", "")

	registry := prometheus.NewRegistry()

	s := &receipts.Server{
		Store:   receipts.NewStore(),
		Log:     log,
		Metrics: receipts.NewMetrics(registry),
	}

	h := receipts.NewHandler(s, receipts.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: registry,

		MetricsEnabled: metricsEnabled,
		MetricsToken:   metricsToken,
		AdminJWTSecret: adminSecret,
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
