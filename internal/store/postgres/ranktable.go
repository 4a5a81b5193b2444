package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// RankRow is one (rank, productId, score) entry of a materialized
// weekly/monthly ranking for a given baseDate.
type RankRow struct {
	Rank      int
	ProductID int64
	Score     decimal.Decimal
}

// SaveWeeklyRank replaces mv_product_rank_weekly for baseDate with rows in
// a single transaction: delete-then-batch-insert in groups of 100. Empty
// rows is a no-op and must not delete the existing set.
func SaveWeeklyRank(ctx context.Context, baseDate time.Time, rows []RankRow) error {
	return saveRank(ctx, "mv_product_rank_weekly", baseDate, rows)
}

// SaveMonthlyRank is SaveWeeklyRank for mv_product_rank_monthly.
func SaveMonthlyRank(ctx context.Context, baseDate time.Time, rows []RankRow) error {
	return saveRank(ctx, "mv_product_rank_monthly", baseDate, rows)
}

func saveRank(ctx context.Context, table string, baseDate time.Time, rows []RankRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE base_date = $1`, table), baseDate); err != nil {
		return err
	}

	for start := 0; start < len(rows); start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := insertRankChunk(ctx, tx.Exec, table, baseDate, rows[start:end]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

type execFunc func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

func insertRankChunk(ctx context.Context, exec execFunc, table string, baseDate time.Time, chunk []RankRow) error {
	values := make([]string, 0, len(chunk))
	args := make([]any, 0, len(chunk)*4)
	for i, r := range chunk {
		base := i * 4
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, baseDate, r.Rank, r.ProductID, r.Score)
	}

	query := fmt.Sprintf(`INSERT INTO %s (base_date, rank, product_id, score) VALUES %s`, table, joinValues(values))
	_, err := exec(ctx, query, args...)
	return err
}

// FindWeeklyRank returns the weekly rank rows for baseDate ordered by rank.
func FindWeeklyRank(ctx context.Context, baseDate time.Time, offset, limit int) ([]RankRow, error) {
	return findRank(ctx, "mv_product_rank_weekly", baseDate, offset, limit)
}

// FindMonthlyRank is FindWeeklyRank for mv_product_rank_monthly.
func FindMonthlyRank(ctx context.Context, baseDate time.Time, offset, limit int) ([]RankRow, error) {
	return findRank(ctx, "mv_product_rank_monthly", baseDate, offset, limit)
}

func findRank(ctx context.Context, table string, baseDate time.Time, offset, limit int) ([]RankRow, error) {
	rows, err := pool.Query(ctx, fmt.Sprintf(`
		SELECT rank, product_id, score
		FROM %s
		WHERE base_date = $1
		ORDER BY rank ASC
		OFFSET $2 LIMIT $3
	`, table), baseDate, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RankRow
	for rows.Next() {
		var r RankRow
		if err := rows.Scan(&r.Rank, &r.ProductID, &r.Score); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// FindRankByProductID looks up a single product's materialized rank for
// baseDate, returning (0, false, nil) when absent.
func FindRankByProductID(ctx context.Context, table string, baseDate time.Time, productID int64) (int, bool, error) {
	var rank int
	err := pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT rank FROM %s WHERE base_date = $1 AND product_id = $2
	`, table), baseDate, productID).Scan(&rank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return rank, true, nil
}
