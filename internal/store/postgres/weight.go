package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"productranking/internal/ranking"
)

// FindLatestWeight returns the highest-id non-soft-deleted weight row, or
// (Weight{}, false, nil) when none exists.
func FindLatestWeight(ctx context.Context) (ranking.Weight, bool, error) {
	var w ranking.Weight
	err := pool.QueryRow(ctx, `
		SELECT id, view_weight, like_weight, order_weight
		FROM ranking_weight
		WHERE deleted_at IS NULL
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&w.ID, &w.View, &w.Like, &w.Order)

	if errors.Is(err, pgx.ErrNoRows) {
		return ranking.Weight{}, false, nil
	}
	if err != nil {
		return ranking.Weight{}, false, err
	}
	return w, true, nil
}

// SaveWeight inserts a new weight row. Updates are modeled as new rows so
// the history of weight changes is retained.
func SaveWeight(ctx context.Context, view, like, order decimal.Decimal) (ranking.Weight, error) {
	w := ranking.Weight{View: view, Like: like, Order: order}
	err := pool.QueryRow(ctx, `
		INSERT INTO ranking_weight (view_weight, like_weight, order_weight)
		VALUES ($1, $2, $3)
		RETURNING id
	`, view, like, order).Scan(&w.ID)
	if err != nil {
		return ranking.Weight{}, err
	}
	return w, nil
}

// CurrentWeight returns FindLatestWeight or ranking.FallbackWeight() when no
// row exists, the convention the ranking pipeline always reads through.
func CurrentWeight(ctx context.Context) (ranking.Weight, error) {
	w, ok, err := FindLatestWeight(ctx)
	if err != nil {
		return ranking.Weight{}, err
	}
	if !ok {
		return ranking.FallbackWeight(), nil
	}
	return w, nil
}
