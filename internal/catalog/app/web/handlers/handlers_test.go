package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"b2bcatalog_api/internal/catalog/business/feed"
	"b2bcatalog_api/internal/catalog/business/ingest"
	"b2bcatalog_api/internal/catalog/models"
	"b2bcatalog_api/pkg/logger"
)

type stubStore struct {
	products []models.Product
	deleted  int64
}

func (s *stubStore) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubStore) ListByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	selected := make([]models.Product, 0)
	for _, p := range s.products {
		for _, id := range ids {
			if p.ID == id {
				selected = append(selected, p)
			}
		}
	}
	return selected, nil
}

func (s *stubStore) DeleteOutOfStock(ctx context.Context) (int64, error) {
	return s.deleted, nil
}

func (s *stubStore) Count(ctx context.Context) (int, error) {
	return len(s.products), nil
}

type stubImporter struct {
	result ingest.ImportResult
	err    error
}

func (s *stubImporter) Run(ctx context.Context) (ingest.ImportResult, error) {
	return s.result, s.err
}

type stubFetcher struct {
	payload []byte
	status  int
	err     error
}

func (f *stubFetcher) Fetch(ctx context.Context, feedURL string) ([]byte, int, error) {
	return f.payload, f.status, f.err
}

func testLog() logger.Logger {
	return logger.NewLogger(nil, "[test]")
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, ProductCode: "P-1", Title: "Ведмедик", Stock: 5,
			PriceUAH: decimal.RequireFromString("199.50")},
		{ID: 2, ProductCode: "P-2", Title: "Мильні бульбашки"},
	}
}

func TestGetProductsHandler(t *testing.T) {
	h := NewProductHandler(&stubStore{products: testProducts()}, testLog())

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	h.GetProductsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "P-1", got[0].ProductCode)
}

func TestDeleteOutOfStockHandler(t *testing.T) {
	h := NewProductHandler(&stubStore{deleted: 7}, testLog())

	req := httptest.NewRequest(http.MethodDelete, "/api/products/out-of-stock", nil)
	rec := httptest.NewRecorder()
	h.DeleteOutOfStockHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": 7}`, rec.Body.String())
}

func TestImportHandlerSuccess(t *testing.T) {
	h := NewImportHandler(&stubImporter{result: ingest.ImportResult{Status: "success", Imported: 12}}, testLog())

	req := httptest.NewRequest(http.MethodPost, "/api/import", nil)
	rec := httptest.NewRecorder()
	h.ImportHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "success", "imported": 12}`, rec.Body.String())
}

func TestImportHandlerBusy(t *testing.T) {
	h := NewImportHandler(&stubImporter{err: ingest.ErrImportBusy}, testLog())

	rec := httptest.NewRecorder()
	h.ImportHandler(rec, httptest.NewRequest(http.MethodPost, "/api/import", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestImportHandlerUpstreamError(t *testing.T) {
	h := NewImportHandler(&stubImporter{err: &feed.UpstreamHTTPError{Status: 503}}, testLog())

	rec := httptest.NewRecorder()
	h.ImportHandler(rec, httptest.NewRequest(http.MethodPost, "/api/import", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestExportSelectedXMLHandler(t *testing.T) {
	h := NewExportHandler(&stubStore{products: testProducts()}, testLog())

	req := httptest.NewRequest(http.MethodPost, "/api/export/xml", strings.NewReader("[1]"))
	rec := httptest.NewRecorder()
	h.ExportSelectedXMLHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "selected_products.xml")
	body := rec.Body.String()
	assert.Contains(t, body, "<product_code>P-1</product_code>")
	assert.Contains(t, body, "<price_uah>199.5</price_uah>")
	assert.NotContains(t, body, "P-2")
}

func TestExportSelectedXMLHandlerBadBody(t *testing.T) {
	h := NewExportHandler(&stubStore{}, testLog())

	req := httptest.NewRequest(http.MethodPost, "/api/export/xml", strings.NewReader("{oops"))
	rec := httptest.NewRecorder()
	h.ExportSelectedXMLHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportAllXMLHandlerOmitsLocalPrice(t *testing.T) {
	h := NewExportHandler(&stubStore{products: testProducts()}, testLog())

	req := httptest.NewRequest(http.MethodGet, "/api/export/xml", nil)
	rec := httptest.NewRecorder()
	h.ExportAllXMLHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "price_uah")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "products.xml")
}

func TestExportSelectedXLSXHandlerEmptySelection(t *testing.T) {
	h := NewExportHandler(&stubStore{products: testProducts()}, testLog())

	req := httptest.NewRequest(http.MethodPost, "/api/export/xlsx", strings.NewReader("[]"))
	rec := httptest.NewRecorder()
	h.ExportSelectedXLSXHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.Bytes())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "selected_products.xlsx")
}

func TestFeedProxyHandlerMissingKey(t *testing.T) {
	h := NewProxyHandler(&stubFetcher{}, "http://upstream/feed?key={key}", testLog())

	rec := httptest.NewRecorder()
	h.FeedProxyHandler(rec, httptest.NewRequest(http.MethodGet, "/api/feed", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedProxyHandlerMirrorsUpstreamStatus(t *testing.T) {
	fetcher := &stubFetcher{payload: []byte("upstream says no"), status: http.StatusForbidden}
	h := NewProxyHandler(fetcher, "http://upstream/feed?key={key}", testLog())

	rec := httptest.NewRecorder()
	h.FeedProxyHandler(rec, httptest.NewRequest(http.MethodGet, "/api/feed?key=abc", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "upstream says no", rec.Body.String())
}

func TestFeedProxyHandlerUnpacksArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("price_list.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<shop/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	fetcher := &stubFetcher{payload: buf.Bytes(), status: http.StatusOK}
	h := NewProxyHandler(fetcher, "http://upstream/feed?key={key}", testLog())

	rec := httptest.NewRecorder()
	h.FeedProxyHandler(rec, httptest.NewRequest(http.MethodGet, "/api/feed?key=abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<shop/>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "price_list.xml")
}
