package repository

import (
	"context"

	"minibook/internal/domain/book"
	"minibook/internal/infra"
	"minibook/internal/infra/db"
	"minibook/internal/usecase/readmodel"
)

type BookRepository struct{}

func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

const bookColumns = `id, title, author, publisher, description, price, year, unities, img_res`

func (r *BookRepository) Create(ctx context.Context, dbx db.DBTX, b *book.Book) (*readmodel.BookRM, error) {
	row := dbx.QueryRow(ctx, `
		INSERT INTO books (title, author, publisher, description, price, year, unities, img_res)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+bookColumns,
		b.Title(), b.Author(), b.Publisher(), b.Description(),
		b.Price(), b.Year(), b.Unities(), b.ImgRes(),
	)

	rm, err := scanBook(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create book", err)
	}
	return rm, nil
}

func (r *BookRepository) Update(ctx context.Context, dbx db.DBTX, id int64, b *book.Book) (*readmodel.BookRM, error) {
	row := dbx.QueryRow(ctx, `
		UPDATE books
		SET title = $2, author = $3, publisher = $4, description = $5,
		    price = $6, year = $7, unities = $8, img_res = COALESCE($9, img_res)
		WHERE id = $1
		RETURNING `+bookColumns,
		id,
		b.Title(), b.Author(), b.Publisher(), b.Description(),
		b.Price(), b.Year(), b.Unities(), b.ImgRes(),
	)

	rm, err := scanBook(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update book", err)
	}
	return rm, nil
}

// Delete rejects removal while any sale item references the book. The check
// is explicit rather than delegated to database restrict semantics.
func (r *BookRepository) Delete(ctx context.Context, dbx db.DBTX, id int64) error {
	var referenced bool
	err := dbx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sale_items WHERE book_id = $1)`, id,
	).Scan(&referenced)
	if err != nil {
		return infra.WrapRepoErr("failed to check book references", err)
	}
	if referenced {
		return infra.WrapRepoErr("book is referenced by sale items", nil, infra.KindForeignKeyViolated)
	}

	tag, err := dbx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) ListAll(ctx context.Context, dbx db.DBTX) ([]*readmodel.BookRM, error) {
	rows, err := dbx.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	var result []*readmodel.BookRM
	for rows.Next() {
		rm, err := scanBook(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}
	return result, nil
}

func (r *BookRepository) FindByID(ctx context.Context, dbx db.DBTX, id int64) (*readmodel.BookRM, error) {
	row := dbx.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)

	rm, err := scanBook(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by id", err)
	}
	return rm, nil
}

// FindByIDs returns only the existing matches; the caller detects missing
// ids by set difference.
func (r *BookRepository) FindByIDs(ctx context.Context, dbx db.DBTX, ids []int64) ([]*readmodel.BookRM, error) {
	rows, err := dbx.Query(ctx, `SELECT `+bookColumns+` FROM books WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find books by ids", err)
	}
	defer rows.Close()

	var result []*readmodel.BookRM
	for rows.Next() {
		rm, err := scanBook(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}
	return result, nil
}

// LockForSale takes row locks on the given books in id order so concurrent
// confirmations serialize instead of deadlocking.
func (r *BookRepository) LockForSale(ctx context.Context, tx db.DBTX, ids []int64) ([]*readmodel.BookStockRM, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, title, unities FROM books
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock books", err)
	}
	defer rows.Close()

	var result []*readmodel.BookStockRM
	for rows.Next() {
		rm := &readmodel.BookStockRM{}
		if err := rows.Scan(&rm.ID, &rm.Title, &rm.Unities); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stock row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read stock rows", err)
	}
	return result, nil
}

func (r *BookRepository) AddUnits(ctx context.Context, tx db.DBTX, id int64, delta int32) error {
	tag, err := tx.Exec(ctx, `UPDATE books SET unities = unities + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return infra.WrapRepoErr("failed to adjust book units", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*readmodel.BookRM, error) {
	rm := &readmodel.BookRM{}
	err := row.Scan(
		&rm.ID, &rm.Title, &rm.Author, &rm.Publisher, &rm.Description,
		&rm.Price, &rm.Year, &rm.Unities, &rm.ImgRes,
	)
	if err != nil {
		return nil, err
	}
	return rm, nil
}
