package handlers

import (
	"net/http"

	"b2bcatalog_api/pkg/logger"
)

type ProductHandler struct {
	store CatalogStore
	log   logger.Logger
}

func NewProductHandler(store CatalogStore, log logger.Logger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

// GetProductsHandler отдаёт весь каталог в JSON для фронтенда.
func (h *ProductHandler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListAll(r.Context())
	if err != nil {
		h.log.Error("failed to list products: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// DeleteOutOfStockHandler удаляет позиции с нулевым остатком.
func (h *ProductHandler) DeleteOutOfStockHandler(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.store.DeleteOutOfStock(r.Context())
	if err != nil {
		h.log.Error("failed to delete out-of-stock products: %v", err)
		http.Error(w, "Failed to delete products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
