package handlers

import (
	"fmt"
	"net/http"

	"b2bcatalog_api/internal/catalog/business/export"
	"b2bcatalog_api/internal/catalog/models"
	"b2bcatalog_api/pkg/logger"
)

type ExportHandler struct {
	store CatalogStore
	log   logger.Logger
}

func NewExportHandler(store CatalogStore, log logger.Logger) *ExportHandler {
	return &ExportHandler{store: store, log: log}
}

// ExportSelectedXMLHandler выгружает товары по списку id в XML.
func (h *ExportHandler) ExportSelectedXMLHandler(w http.ResponseWriter, r *http.Request) {
	products, ok := h.selectedProducts(w, r)
	if !ok {
		return
	}
	data, err := export.MarshalXML(products, true)
	if err != nil {
		h.log.Error("failed to serialize xml export: %v", err)
		http.Error(w, "Failed to serialize export", http.StatusInternalServerError)
		return
	}
	writeAttachment(w, data, "selected_products.xml", export.XMLContentType)
}

// ExportAllXMLHandler выгружает весь каталог в XML. Поле price_uah в этом
// варианте отсутствует, см. export.MarshalXML.
func (h *ExportHandler) ExportAllXMLHandler(w http.ResponseWriter, r *http.Request) {
	products, ok := h.allProducts(w, r)
	if !ok {
		return
	}
	data, err := export.MarshalXML(products, false)
	if err != nil {
		h.log.Error("failed to serialize xml export: %v", err)
		http.Error(w, "Failed to serialize export", http.StatusInternalServerError)
		return
	}
	writeAttachment(w, data, "products.xml", export.XMLContentType)
}

// ExportSelectedXLSXHandler выгружает товары по списку id в таблицу.
func (h *ExportHandler) ExportSelectedXLSXHandler(w http.ResponseWriter, r *http.Request) {
	products, ok := h.selectedProducts(w, r)
	if !ok {
		return
	}
	h.writeXLSX(w, products, "selected_products.xlsx")
}

// ExportAllXLSXHandler выгружает весь каталог в таблицу.
func (h *ExportHandler) ExportAllXLSXHandler(w http.ResponseWriter, r *http.Request) {
	products, ok := h.allProducts(w, r)
	if !ok {
		return
	}
	h.writeXLSX(w, products, "products.xlsx")
}

func (h *ExportHandler) selectedProducts(w http.ResponseWriter, r *http.Request) ([]models.Product, bool) {
	ids, err := readIDs(r)
	if err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return nil, false
	}
	products, err := h.store.ListByIDs(r.Context(), ids)
	if err != nil {
		h.log.Error("failed to list products by ids: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return nil, false
	}
	return products, true
}

func (h *ExportHandler) allProducts(w http.ResponseWriter, r *http.Request) ([]models.Product, bool) {
	products, err := h.store.ListAll(r.Context())
	if err != nil {
		h.log.Error("failed to list products: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return nil, false
	}
	return products, true
}

func (h *ExportHandler) writeXLSX(w http.ResponseWriter, products []models.Product, filename string) {
	data, err := export.MarshalXLSX(products)
	if err != nil {
		h.log.Error("failed to serialize xlsx export: %v", err)
		http.Error(w, "Failed to serialize export", http.StatusInternalServerError)
		return
	}
	writeAttachment(w, data, filename, export.XLSXContentType)
}

func writeAttachment(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}
