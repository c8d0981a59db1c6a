package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"b2bcatalog_api/internal/catalog/models"
)

// CatalogStore покрывает операции чтения/чистки каталога, нужные хендлерам.
type CatalogStore interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
	DeleteOutOfStock(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Заголовки уже ушли, остаётся только залогировать на стороне вызова.
		return
	}
}

// readIDs декодирует тело запроса вида [1, 2, 3].
func readIDs(r *http.Request) ([]int64, error) {
	var ids []int64
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		return nil, err
	}
	return ids, nil
}
