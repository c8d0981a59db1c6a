package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"b2bcatalog_api/internal/catalog/models"
)

const productColumns = "id, product_code, article, title, category, category_name, brand, stock, price_uah, price_usd, image"

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ReplaceAll атомарно заменяет весь каталог: удаление старых записей и
// массовая вставка новых идут в одной транзакции, читатели видят либо
// полностью старый, либо полностью новый каталог.
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("products",
		"product_code", "article", "title", "category", "category_name",
		"brand", "stock", "price_uah", "price_usd", "image"))
	if err != nil {
		return fmt.Errorf("prepare copyin: %w", err)
	}

	for i, p := range products {
		_, err := stmt.ExecContext(ctx,
			p.ProductCode, p.Article, p.Title, p.Category, p.CategoryName,
			p.Brand, p.Stock, p.PriceUAH, p.PriceUSD, p.Image)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("exec copyin at row %d: %w", i, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("final exec copyin: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copyin stmt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx: %w", err)
	}
	return nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products ORDER BY id", productColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = ANY($1) ORDER BY id", productColumns)
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list products by ids: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// DeleteOutOfStock удаляет позиции с нулевым остатком и возвращает их число.
func (r *ProductRepository) DeleteOutOfStock(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE stock <= 0")
	if err != nil {
		return 0, fmt.Errorf("delete out-of-stock products: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.ProductCode, &p.Article, &p.Title, &p.Category,
			&p.CategoryName, &p.Brand, &p.Stock, &p.PriceUAH, &p.PriceUSD, &p.Image)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}
