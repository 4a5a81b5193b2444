package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Product is the read-only DB-of-record row the detail/list cache falls
// back to on a cache miss.
type Product struct {
	ID      int64
	Name    string
	BrandID *int64
	Price   decimal.Decimal
	Stock   int64
}

// FindProductByID returns (Product{}, false, nil) when no row exists.
func FindProductByID(ctx context.Context, id int64) (Product, bool, error) {
	var p Product
	err := pool.QueryRow(ctx, `
		SELECT id, name, brand_id, price, stock FROM product WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.BrandID, &p.Price, &p.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

// FindProductsByIDs batch-loads products, used to fill the gaps left by a
// partial list-cache hit. Missing ids are simply absent from the result.
func FindProductsByIDs(ctx context.Context, ids []int64) (map[int64]Product, error) {
	out := make(map[int64]Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := pool.Query(ctx, `
		SELECT id, name, brand_id, price, stock FROM product WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.BrandID, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

// ListCriteria selects and orders the product listing query.
type ListCriteria struct {
	Page    int
	Size    int
	Sort    string
	BrandID *int64
}

// FindProducts runs the paginated listing query underlying the list cache's
// miss path.
func FindProducts(ctx context.Context, c ListCriteria) ([]Product, int, error) {
	order := "id ASC"
	switch c.Sort {
	case "price_asc":
		order = "price ASC"
	case "price_desc":
		order = "price DESC"
	case "newest":
		order = "created_at DESC"
	}

	where := ""
	args := []any{}
	if c.BrandID != nil {
		where = "WHERE brand_id = $1"
		args = append(args, *c.BrandID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM product " + where
	if err := pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := c.Page * c.Size
	args = append(args, c.Size, offset)
	limitPlaceholder := len(args) - 1
	offsetPlaceholder := len(args)
	query := "SELECT id, name, brand_id, price, stock FROM product " + where +
		" ORDER BY " + order +
		" LIMIT $" + strconv.Itoa(limitPlaceholder) + " OFFSET $" + strconv.Itoa(offsetPlaceholder)

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.BrandID, &p.Price, &p.Stock); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

