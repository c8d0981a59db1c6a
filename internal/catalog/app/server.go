package app

import (
	"context"
	"io"
	"net/http"

	"b2bcatalog_api/config"
	"b2bcatalog_api/internal/catalog/app/web/handlers"
	"b2bcatalog_api/internal/catalog/business/feed"
	"b2bcatalog_api/internal/catalog/business/ingest"
	"b2bcatalog_api/internal/catalog/storage"
	"b2bcatalog_api/metrics"
	"b2bcatalog_api/pkg/dbconnect"
	"b2bcatalog_api/pkg/dbconnect/migration"
	"b2bcatalog_api/pkg/logger"
	"b2bcatalog_api/pkg/middleware"
)

type CatalogServer struct {
	dbconnect.Database
	cfg    *config.AppConfig
	log    logger.Logger
	writer io.Writer
}

func NewCatalogServer(connector dbconnect.Database, cfg *config.AppConfig, writer io.Writer) *CatalogServer {
	_log := logger.NewLogger(writer, "[CatalogServer]")
	return &CatalogServer{Database: connector, cfg: cfg, log: _log, writer: writer}
}

func (s *CatalogServer) Run() error {
	db, err := s.Connect()
	if err != nil {
		return err
	}
	defer db.Close()

	migrationApply := []migration.MigrationInterface{
		&storage.MigrationsSchema{},
		&storage.CatalogProducts{},
	}
	for _, _migration := range migrationApply {
		if err := _migration.UpMigration(db); err != nil {
			return err
		}
	}
	s.log.Log("Catalog migrations applied successfully!")

	repo := storage.NewProductRepository(db)
	fetcher := feed.NewHTTPFetcher(s.cfg.Feed.FetchTimeout(), s.cfg.Feed.RatePerSecond)
	importService := ingest.NewImportService(fetcher, repo, s.cfg.Feed.URL,
		logger.NewLogger(s.writer, "[Import]"))

	// Стартовый импорт крутится в фоне: сервис поднимается и отвечает на
	// запросы, даже если фид или база появятся позже. Исчерпанные попытки —
	// не повод падать.
	go func() {
		err := importService.RunWithRetries(context.Background(),
			s.cfg.Feed.StartupTries, s.cfg.Feed.StartupDelay())
		if err != nil {
			s.log.Error("startup import gave up: %v", err)
		}
	}()

	productHandler := handlers.NewProductHandler(repo, logger.NewLogger(s.writer, "[ProductHandler]"))
	importHandler := handlers.NewImportHandler(importService, logger.NewLogger(s.writer, "[ImportHandler]"))
	exportHandler := handlers.NewExportHandler(repo, logger.NewLogger(s.writer, "[ExportHandler]"))
	proxyHandler := handlers.NewProxyHandler(fetcher, s.cfg.Feed.ProxyURL, logger.NewLogger(s.writer, "[ProxyHandler]"))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", productHandler.GetProductsHandler)
	mux.HandleFunc("DELETE /api/products/out-of-stock", productHandler.DeleteOutOfStockHandler)
	mux.HandleFunc("POST /import-xml", importHandler.ImportHandler)
	mux.HandleFunc("POST /api/import", importHandler.ImportHandler)
	mux.HandleFunc("POST /api/export/xml", exportHandler.ExportSelectedXMLHandler)
	mux.HandleFunc("GET /api/export/xml", exportHandler.ExportAllXMLHandler)
	mux.HandleFunc("POST /api/export/xlsx", exportHandler.ExportSelectedXLSXHandler)
	mux.HandleFunc("GET /api/export/xlsx", exportHandler.ExportAllXLSXHandler)
	mux.HandleFunc("GET /api/feed", proxyHandler.FeedProxyHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	handler := middleware.RequestIDMiddleware(middleware.PrometheusMiddleware(mux))

	s.log.Log("Catalog service listening on %s", s.cfg.Server.Addr)
	return http.ListenAndServe(s.cfg.Server.Addr, handler)
}
