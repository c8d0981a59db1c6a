package handlers

import (
	"errors"
	"net/http"

	"b2bcatalog_api/internal/catalog/business/export"
	"b2bcatalog_api/internal/catalog/business/feed"
	"b2bcatalog_api/pkg/logger"
)

type ProxyHandler struct {
	fetcher  feed.Fetcher
	proxyURL string
	log      logger.Logger
}

func NewProxyHandler(fetcher feed.Fetcher, proxyURL string, log logger.Logger) *ProxyHandler {
	return &ProxyHandler{fetcher: fetcher, proxyURL: proxyURL, log: log}
}

// FeedProxyHandler забирает фид у поставщика по ключу вызывающего и отдаёт
// его как вложение. Архив распаковывается до первого .xml, не-архив уходит
// как есть, не-200 апстрима зеркалируется статусом и телом без изменений.
func (h *ProxyHandler) FeedProxyHandler(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}
	if h.proxyURL == "" {
		http.Error(w, "Feed proxy is not configured", http.StatusNotImplemented)
		return
	}

	payload, status, err := h.fetcher.Fetch(r.Context(), feed.BuildKeyedURL(h.proxyURL, key))
	if err != nil {
		h.log.Error("proxy fetch failed: %v", err)
		http.Error(w, "Upstream feed is unreachable", http.StatusBadGateway)
		return
	}

	if status != http.StatusOK {
		// Зеркалируем ответ апстрима как есть.
		w.WriteHeader(status)
		w.Write(payload)
		return
	}

	xmlData, name, err := feed.Decode(payload, status)
	if err != nil {
		if errors.Is(err, feed.ErrNoXMLInArchive) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		h.log.Error("proxy decode failed: %v", err)
		http.Error(w, "Failed to decode upstream feed", http.StatusBadGateway)
		return
	}

	writeAttachment(w, xmlData, name, export.XMLContentType)
}
