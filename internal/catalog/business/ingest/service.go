package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"b2bcatalog_api/internal/catalog/business/feed"
	"b2bcatalog_api/internal/catalog/models"
	"b2bcatalog_api/metrics"
	"b2bcatalog_api/pkg/logger"
)

// ErrImportBusy возвращается, когда импорт уже идёт: одновременно допускается
// только один запуск, второй вызов отклоняется, а не ставится в очередь.
var ErrImportBusy = errors.New("catalog import already in progress")

// Store is the catalog storage capability the import needs: a transactional
// replace of the whole product set.
type Store interface {
	ReplaceAll(ctx context.Context, products []models.Product) error
}

type ImportResult struct {
	Status   string `json:"status"`
	Imported int    `json:"imported"`
}

type ImportService struct {
	fetcher feed.Fetcher
	store   Store
	feedURL string
	log     logger.Logger
	running atomic.Bool
}

func NewImportService(fetcher feed.Fetcher, store Store, feedURL string, log logger.Logger) *ImportService {
	return &ImportService{
		fetcher: fetcher,
		store:   store,
		feedURL: feedURL,
		log:     log,
	}
}

// Run выполняет полный цикл импорта: fetch → decode → parse → атомарная
// замена каталога. Ошибки числовых полей гасятся на уровне парсера, всё
// остальное прерывает запуск целиком.
func (s *ImportService) Run(ctx context.Context) (ImportResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return ImportResult{}, ErrImportBusy
	}
	defer s.running.Store(false)

	runID := uuid.NewString()
	start := time.Now()

	result, err := s.run(ctx)
	metrics.RecordImport(err == nil, result.Imported, time.Since(start))
	if err != nil {
		s.log.Error("import run %s failed: %v", runID, err)
		return ImportResult{}, err
	}
	s.log.Log("import run %s: %d products in %v", runID, result.Imported, time.Since(start))
	return result, nil
}

func (s *ImportService) run(ctx context.Context) (ImportResult, error) {
	payload, status, err := s.fetcher.Fetch(ctx, s.feedURL)
	if err != nil {
		return ImportResult{}, err
	}

	xmlData, _, err := feed.Decode(payload, status)
	if err != nil {
		return ImportResult{}, err
	}

	catalog, err := feed.Parse(xmlData)
	if err != nil {
		return ImportResult{}, err
	}

	if err := s.store.ReplaceAll(ctx, catalog.Products); err != nil {
		return ImportResult{}, err
	}

	return ImportResult{Status: "success", Imported: len(catalog.Products)}, nil
}

// RunWithRetries гоняет импорт при старте сервиса с фиксированной паузой:
// база или фид могут подниматься дольше нас. Исчерпание попыток не фатально
// для процесса, решение остаётся за вызывающим.
func (s *ImportService) RunWithRetries(ctx context.Context, tries int, delay time.Duration) error {
	var lastErr error
	for attempt := 1; attempt <= tries; attempt++ {
		result, err := s.Run(ctx)
		if err == nil {
			s.log.Log("startup import succeeded on attempt %d/%d: %d products", attempt, tries, result.Imported)
			return nil
		}
		lastErr = err
		s.log.Log("startup import attempt %d/%d failed: %v", attempt, tries, err)

		if attempt == tries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("catalog import failed after %d attempts: %w", tries, lastErr)
}
