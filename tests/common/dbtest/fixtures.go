//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"minibook/internal/domain/sale"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestBook(t *testing.T, db DBLike, title string, price int64, unities int32) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO books (title, author, publisher, price, year, unities)
		VALUES ($1, 'Test Author', 'Test Publisher', $2, 2020, $3)
		RETURNING id`,
		title, price, unities,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestSale inserts a sale row with its items directly, bypassing the
// API. createdAt lets tests age a sale past the expiry threshold.
func CreateTestSale(t *testing.T, db DBLike, total int64, concluded bool, createdAt time.Time, items map[int64]int32) string {
	t.Helper()
	ctx := context.Background()

	token := sale.NewToken()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO sales (uuid, total, concluded, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		token, total, concluded, createdAt,
	).Scan(&id)
	require.NoError(t, err)

	for bookID, unities := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO sale_items (sale_id, book_id, unities)
			VALUES ($1, $2, $3)`,
			id, bookID, unities)
		require.NoError(t, err)
	}
	return token
}

func BookUnities(t *testing.T, db DBLike, id int64) int32 {
	t.Helper()

	var unities int32
	err := db.QueryRow(context.Background(),
		`SELECT unities FROM books WHERE id = $1`, id).Scan(&unities)
	require.NoError(t, err)
	return unities
}

func BookExists(t *testing.T, db DBLike, id int64) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func SaleExists(t *testing.T, db DBLike, token string) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM sales WHERE uuid = $1)`, token).Scan(&exists)
	require.NoError(t, err)
	return exists
}

func SaleConcluded(t *testing.T, db DBLike, token string) bool {
	t.Helper()

	var concluded bool
	err := db.QueryRow(context.Background(),
		`SELECT concluded FROM sales WHERE uuid = $1`, token).Scan(&concluded)
	require.NoError(t, err)
	return concluded
}

func SaleItemCount(t *testing.T, db DBLike, token string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE s.uuid = $1`, token).Scan(&count)
	require.NoError(t, err)
	return count
}

// ResetDB empties all tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		`TRUNCATE sale_items, sales, books RESTART IDENTITY CASCADE`)
	return err
}
