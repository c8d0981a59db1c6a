package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"b2bcatalog_api/internal/catalog/business/parse"
	"b2bcatalog_api/internal/catalog/models"
)

// Catalog is the result of one feed parse: the category lookup plus products
// in document order.
type Catalog struct {
	Categories models.CategoryMap
	Products   []models.Product
}

type feedDocument struct {
	XMLName xml.Name
	Shop    shopElement `xml:"shop"`
}

type shopElement struct {
	Categories []categoryElement `xml:"categories>category"`
	Offers     []offerElement    `xml:"offers>offer"`
}

type categoryElement struct {
	ID   string `xml:"id,attr"`
	Name string `xml:",chardata"`
}

type offerElement struct {
	ID          string `xml:"id"`
	SKU         string `xml:"sku"`
	Name        string `xml:"name"`
	CategoryID  string `xml:"categoryId"`
	Brand       string `xml:"brand"`
	Stock       string `xml:"stock"`
	Price       string `xml:"price"`
	PriceOptUSD string `xml:"price_opt_usd"`
	Picture     string `xml:"picture"`
}

// Parse разбирает XML-документ фида. Невалидный XML — ошибка всего запуска,
// частичный каталог не возвращается. Отсутствие секций categories/offers
// ошибкой не считается.
func Parse(data []byte) (*Catalog, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charsetReader

	var doc feedDocument
	if err := decoder.Decode(&doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	categories := make(models.CategoryMap, len(doc.Shop.Categories))
	for _, cat := range doc.Shop.Categories {
		id := strings.TrimSpace(cat.ID)
		name := strings.TrimSpace(cat.Name)
		if id == "" || name == "" {
			continue
		}
		// Дубликаты id: побеждает последнее вхождение.
		categories[id] = name
	}

	products := make([]models.Product, 0, len(doc.Shop.Offers))
	for _, offer := range doc.Shop.Offers {
		categoryID := strings.TrimSpace(offer.CategoryID)
		products = append(products, models.Product{
			ProductCode:  offer.ID,
			Article:      offer.SKU,
			Title:        offer.Name,
			Category:     categoryID,
			CategoryName: categories.Resolve(categoryID),
			Brand:        offer.Brand,
			Stock:        parse.ParseQuantity(offer.Stock),
			PriceUAH:     parse.ParseAmount(offer.Price),
			PriceUSD:     parse.ParseAmount(offer.PriceOptUSD),
			Image:        offer.Picture,
		})
	}

	return &Catalog{Categories: categories, Products: products}, nil
}

// charsetReader поддерживает windows-1251 помимо UTF-8: часть поставщиков до
// сих пор отдаёт фиды в старой кодировке.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return input, nil
	case "windows-1251", "cp1251":
		return transform.NewReader(input, charmap.Windows1251.NewDecoder()), nil
	}
	return nil, fmt.Errorf("unsupported feed charset %q", charset)
}
