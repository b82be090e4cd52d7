package repository

import (
	"context"
	"time"

	"minibook/internal/domain/sale"
	"minibook/internal/infra"
	"minibook/internal/infra/db"
	"minibook/internal/usecase/readmodel"
)

type SaleRepository struct{}

func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

func (r *SaleRepository) Create(ctx context.Context, tx db.DBTX, s *sale.Sale) (*readmodel.SaleRM, error) {
	rm := &readmodel.SaleRM{
		UUID:      s.Token(),
		Total:     s.Total(),
		Concluded: s.Concluded(),
		CreatedAt: s.CreatedAt(),
	}

	err := tx.QueryRow(ctx, `
		INSERT INTO sales (uuid, total, concluded, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		s.Token(), s.Total(), s.Concluded(), s.CreatedAt(),
	).Scan(&rm.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create sale", err)
	}

	for _, li := range s.Items() {
		_, err := tx.Exec(ctx, `
			INSERT INTO sale_items (sale_id, book_id, unities)
			VALUES ($1, $2, $3)`,
			rm.ID, li.BookID(), li.Units(),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to create sale item", err)
		}
		rm.Items = append(rm.Items, readmodel.SaleItemRM{
			BookID:    li.BookID(),
			BookTitle: li.Title(),
			BookPrice: li.UnitPrice(),
			Unities:   li.Units(),
		})
	}

	return rm, nil
}

// FindByTokenForUpdate locks the sale row so a confirm cannot race an
// expiry sweep or another confirm on the same sale.
func (r *SaleRepository) FindByTokenForUpdate(ctx context.Context, tx db.DBTX, token string) (*readmodel.SaleRM, error) {
	rm := &readmodel.SaleRM{}
	err := tx.QueryRow(ctx, `
		SELECT id, uuid, total, concluded, created_at
		FROM sales
		WHERE uuid = $1
		FOR UPDATE`, token).
		Scan(&rm.ID, &rm.UUID, &rm.Total, &rm.Concluded, &rm.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale by token", err)
	}

	items, err := r.loadItems(ctx, tx, rm.ID)
	if err != nil {
		return nil, err
	}
	rm.Items = items
	return rm, nil
}

func (r *SaleRepository) ListAll(ctx context.Context, dbx db.DBTX) ([]*readmodel.SaleRM, error) {
	rows, err := dbx.Query(ctx, `
		SELECT id, uuid, total, concluded, created_at
		FROM sales
		ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	defer rows.Close()

	var result []*readmodel.SaleRM
	byID := map[int64]*readmodel.SaleRM{}
	for rows.Next() {
		rm := &readmodel.SaleRM{}
		if err := rows.Scan(&rm.ID, &rm.UUID, &rm.Total, &rm.Concluded, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale row", err)
		}
		result = append(result, rm)
		byID[rm.ID] = rm
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale rows", err)
	}
	rows.Close()

	if len(result) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(result))
	for _, rm := range result {
		ids = append(ids, rm.ID)
	}

	itemRows, err := dbx.Query(ctx, `
		SELECT si.sale_id, si.book_id, b.title, b.price, si.unities
		FROM sale_items si
		JOIN books b ON b.id = si.book_id
		WHERE si.sale_id = ANY($1)
		ORDER BY si.sale_id, si.book_id`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sale items", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var saleID int64
		item := readmodel.SaleItemRM{}
		if err := itemRows.Scan(&saleID, &item.BookID, &item.BookTitle, &item.BookPrice, &item.Unities); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale item row", err)
		}
		byID[saleID].Items = append(byID[saleID].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale item rows", err)
	}

	return result, nil
}

func (r *SaleRepository) MarkConcluded(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, `UPDATE sales SET concluded = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to conclude sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the sale and its line items; items go first because the
// referential action is explicit, not a database cascade.
func (r *SaleRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, id); err != nil {
		return infra.WrapRepoErr("failed to delete sale items", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete sale", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return nil
}

// DeleteExpiredPending batch-deletes pending sales created strictly before
// cutoff and returns how many were removed. The expired sale rows are
// locked before any line item is touched, so the sweep serializes with a
// confirm holding the same sale row: a sale concluded while the sweep
// waited drops out of the locked set and keeps its items.
func (r *SaleRepository) DeleteExpiredPending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error) {
	rows, err := tx.Query(ctx, `
		SELECT id FROM sales
		WHERE NOT concluded AND created_at < $1
		ORDER BY id
		FOR UPDATE`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to lock expired sales", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, infra.WrapRepoErr("failed to scan expired sale id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, infra.WrapRepoErr("failed to read expired sale ids", err)
	}
	rows.Close()

	if len(ids) == 0 {
		return 0, nil
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = ANY($1)`, ids); err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired sale items", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM sales WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired sales", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SaleRepository) loadItems(ctx context.Context, dbx db.DBTX, saleID int64) ([]readmodel.SaleItemRM, error) {
	rows, err := dbx.Query(ctx, `
		SELECT si.book_id, b.title, b.price, si.unities
		FROM sale_items si
		JOIN books b ON b.id = si.book_id
		WHERE si.sale_id = $1
		ORDER BY si.book_id`, saleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load sale items", err)
	}
	defer rows.Close()

	var items []readmodel.SaleItemRM
	for rows.Next() {
		item := readmodel.SaleItemRM{}
		if err := rows.Scan(&item.BookID, &item.BookTitle, &item.BookPrice, &item.Unities); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sale item rows", err)
	}
	return items, nil
}
