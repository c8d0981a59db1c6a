package models

import (
	"github.com/shopspring/decimal"
)

// Product is one catalog entry. The catalog is replaced wholesale on every
// successful import, so a product has no partial-update path.
type Product struct {
	ID           int64           `json:"id"`
	ProductCode  string          `json:"product_code"`
	Article      string          `json:"article"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	CategoryName string          `json:"category_name"`
	Brand        string          `json:"brand"`
	Stock        int             `json:"stock"`
	PriceUAH     decimal.Decimal `json:"price_uah"`
	PriceUSD     decimal.Decimal `json:"price_usd"`
	Image        string          `json:"image"`
}

// CategoryMap связывает id категории из фида с её названием. Живёт только в
// рамках одного разбора фида, в базу не сохраняется.
type CategoryMap map[string]string

func (m CategoryMap) Resolve(categoryID string) string {
	return m[categoryID]
}
