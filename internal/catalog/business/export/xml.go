package export

import (
	"encoding/xml"
	"strconv"

	"github.com/shopspring/decimal"

	"b2bcatalog_api/internal/catalog/models"
)

const XMLContentType = "application/xml"

type productElement struct {
	ProductCode  string  `xml:"product_code"`
	Article      string  `xml:"article"`
	Title        string  `xml:"title"`
	Category     string  `xml:"category"`
	CategoryName string  `xml:"category_name"`
	Brand        string  `xml:"brand"`
	Stock        string  `xml:"stock"`
	PriceUAH     *string `xml:"price_uah,omitempty"`
	PriceUSD     string  `xml:"price_usd"`
	Image        string  `xml:"image"`
}

type productsDocument struct {
	XMLName  xml.Name         `xml:"products"`
	Products []productElement `xml:"product"`
}

// MarshalXML сериализует выборку в XML-документ с фиксированным порядком
// полей. Вариант "все товары" исторически не содержит price_uah — этот
// контракт выгрузки сохраняем как есть, не выравнивая с выборочным.
func MarshalXML(products []models.Product, includeLocalPrice bool) ([]byte, error) {
	doc := productsDocument{Products: make([]productElement, 0, len(products))}
	for _, p := range products {
		elem := productElement{
			ProductCode:  p.ProductCode,
			Article:      p.Article,
			Title:        p.Title,
			Category:     p.Category,
			CategoryName: p.CategoryName,
			Brand:        p.Brand,
			Stock:        strconv.Itoa(p.Stock),
			PriceUSD:     formatAmount(p.PriceUSD),
			Image:        p.Image,
		}
		if includeLocalPrice {
			uah := formatAmount(p.PriceUAH)
			elem.PriceUAH = &uah
		}
		doc.Products = append(doc.Products, elem)
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// formatAmount печатает нулевую цену как "0.0", чтобы числовые поля выгрузки
// никогда не были пустыми.
func formatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return "0.0"
	}
	return d.String()
}
