package handlers

import (
	"context"
	"errors"
	"net/http"

	"b2bcatalog_api/internal/catalog/business/feed"
	"b2bcatalog_api/internal/catalog/business/ingest"
	"b2bcatalog_api/pkg/logger"
)

type Importer interface {
	Run(ctx context.Context) (ingest.ImportResult, error)
}

type ImportHandler struct {
	importer Importer
	log      logger.Logger
}

func NewImportHandler(importer Importer, log logger.Logger) *ImportHandler {
	return &ImportHandler{importer: importer, log: log}
}

// ImportHandler запускает синхронный импорт фида. Повторный вызов во время
// работающего импорта получает 409, ошибки апстрима и разбора — 502.
func (h *ImportHandler) ImportHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.importer.Run(r.Context())
	if err != nil {
		h.log.Error("on-demand import failed: %v", err)
		http.Error(w, err.Error(), importStatusCode(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func importStatusCode(err error) int {
	var upstreamErr *feed.UpstreamHTTPError
	var parseErr *feed.ParseError
	switch {
	case errors.Is(err, ingest.ErrImportBusy):
		return http.StatusConflict
	case errors.As(err, &upstreamErr),
		errors.As(err, &parseErr),
		errors.Is(err, feed.ErrNoXMLInArchive):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
