package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"b2bcatalog_api/internal/catalog/models"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// xlsxColumns задаёт порядок колонок и человекочитаемые заголовки выгрузки.
var xlsxColumns = []struct {
	Header string
	Value  func(p models.Product) interface{}
}{
	{"ID", func(p models.Product) interface{} { return p.ProductCode }},
	{"Назва товару", func(p models.Product) interface{} { return p.Title }},
	{"Категорія", func(p models.Product) interface{} { return p.CategoryName }},
	{"Бренд", func(p models.Product) interface{} { return p.Brand }},
	{"Артикул", func(p models.Product) interface{} { return p.Article }},
	{"Ціна, грн", func(p models.Product) interface{} { return p.PriceUAH.InexactFloat64() }},
	{"Ціна, USD", func(p models.Product) interface{} { return p.PriceUSD.InexactFloat64() }},
	{"Залишок", func(p models.Product) interface{} { return p.Stock }},
	{"Зображення", func(p models.Product) interface{} { return p.Image }},
}

// MarshalXLSX сериализует выборку в одностраничную таблицу. Пустая выборка
// даёт корректный файл с одной строкой заголовков.
func MarshalXLSX(products []models.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := make([]interface{}, len(xlsxColumns))
	for i, col := range xlsxColumns {
		headers[i] = col.Header
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, p := range products {
		row := make([]interface{}, len(xlsxColumns))
		for j, col := range xlsxColumns {
			row[j] = col.Value(p)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
