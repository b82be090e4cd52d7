package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"minibook/internal/domain/sale"
	"minibook/internal/infra"
	"minibook/internal/infra/db"
	"minibook/internal/pkg/clock"
	"minibook/internal/pkg/config"
	"minibook/internal/pkg/errs"
	"minibook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmptySale            = errors.New("the sale has no books")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrSaleAlreadyConcluded = errors.New("sale is already concluded")
	ErrSaleNotCancellable   = errors.New("sale can not be canceled")
	ErrInsufficientStock    = errors.New("not enough unities in stock")
	ErrPaymentGeneration    = errors.New("payment reference generation failed")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// BookNotFoundError reports every missing cart id at once so the client can
// fix the whole request in one round trip.
type BookNotFoundError struct {
	MissingIDs []int64
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("books not found: %v", e.MissingIDs)
}

func (e *BookNotFoundError) Is(target error) bool {
	return target == ErrBookNotFound
}

// InsufficientStockError names the first book whose stock cannot cover the
// requested units.
type InsufficientStockError struct {
	BookTitle string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough unities of %q in stock", e.BookTitle)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type SaleRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *sale.Sale) (*readmodel.SaleRM, error)
	FindByTokenForUpdate(ctx context.Context, tx db.DBTX, token string) (*readmodel.SaleRM, error)
	ListAll(ctx context.Context, dbx db.DBTX) ([]*readmodel.SaleRM, error)
	MarkConcluded(ctx context.Context, tx db.DBTX, id int64) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
	DeleteExpiredPending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error)
}

// PaymentGenerator produces the scannable and copy-paste forms of a charge
// for a freshly created sale. Implementations are pure; nothing is persisted.
type PaymentGenerator interface {
	Charge(amountMinor int64, description string) (b64 string, payload string, err error)
}

// NewSaleResult pairs the persisted sale with its payment reference.
type NewSaleResult struct {
	Sale   *readmodel.SaleRM
	PixB64 string
	PixStr string
}

type SaleUseCase interface {
	CreateSale(ctx context.Context, cart map[int64]int32) (*NewSaleResult, error)
	ConfirmSale(ctx context.Context, token string) error
	CancelSale(ctx context.Context, token string) error
	ExpirePendingSales(ctx context.Context) (int64, error)
	ListSales(ctx context.Context) ([]*readmodel.SaleRM, error)
}

type saleUseCaseImpl struct {
	saleRepo SaleRepository
	bookRepo BookRepository
	payments PaymentGenerator
	db       *pgxpool.Pool
	clock    clock.Clock
	cfg      config.SalesConfig
}

func NewSaleUseCase(
	saleRepo SaleRepository,
	bookRepo BookRepository,
	payments PaymentGenerator,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.SalesConfig,
) SaleUseCase {
	return &saleUseCaseImpl{
		saleRepo: saleRepo,
		bookRepo: bookRepo,
		payments: payments,
		db:       db,
		clock:    clock,
		cfg:      cfg,
	}
}

// CreateSale persists a pending sale for the cart and generates its payment
// reference. Stock is not reserved here; only confirmation decrements it.
func (s *saleUseCaseImpl) CreateSale(ctx context.Context, cart map[int64]int32) (*NewSaleResult, error) {
	if len(cart) == 0 {
		return nil, ErrEmptySale
	}

	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}

	books, err := s.bookRepo.FindByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(books) != len(ids) {
		return nil, &BookNotFoundError{MissingIDs: missingIDs(ids, books)}
	}

	items := make([]sale.LineItem, 0, len(books))
	for _, b := range books {
		items = append(items, sale.NewLineItem(b.ID, b.Title, b.Price, cart[b.ID]))
	}

	entity := sale.NewSale(s.clock.Now(), items)

	rm, err := s.executeSaleTransaction(ctx, entity)
	if err != nil {
		return nil, err
	}

	// The sale is already committed; a payment failure surfaces as an error
	// but does not undo it, matching the pending lifecycle.
	b64, payload, err := s.payments.Charge(rm.Total, "Buying books.")
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGeneration)
	}

	return &NewSaleResult{Sale: rm, PixB64: b64, PixStr: payload}, nil
}

func (s *saleUseCaseImpl) executeSaleTransaction(ctx context.Context, entity *sale.Sale) (*readmodel.SaleRM, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	rm, err := s.saleRepo.Create(ctx, tx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// ConfirmSale concludes the sale and decrements stock. Everything is
// validated before anything is decremented: the sale row and every
// referenced book row are locked, hypothetical remaining counts are checked,
// and only a fully satisfiable sale commits.
func (s *saleUseCaseImpl) ConfirmSale(ctx context.Context, token string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	rm, err := s.saleRepo.FindByTokenForUpdate(ctx, tx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSaleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := reconstructSale(rm)
	if err := entity.Confirm(); err != nil {
		return errs.Mark(err, ErrSaleAlreadyConcluded)
	}

	ids := make([]int64, 0, len(rm.Items))
	for _, it := range rm.Items {
		ids = append(ids, it.BookID)
	}

	stocks, err := s.bookRepo.LockForSale(ctx, tx, ids)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	stockByID := make(map[int64]*readmodel.BookStockRM, len(stocks))
	for _, st := range stocks {
		stockByID[st.ID] = st
	}

	for _, it := range rm.Items {
		st, ok := stockByID[it.BookID]
		if !ok {
			return &BookNotFoundError{MissingIDs: []int64{it.BookID}}
		}
		if st.Unities < it.Unities {
			return &InsufficientStockError{BookTitle: st.Title}
		}
	}

	for _, it := range rm.Items {
		if err := s.bookRepo.AddUnits(ctx, tx, it.BookID, -it.Unities); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := s.saleRepo.MarkConcluded(ctx, tx, rm.ID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// CancelSale deletes a pending sale. Inventory is untouched because pending
// sales never held stock.
func (s *saleUseCaseImpl) CancelSale(ctx context.Context, token string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	rm, err := s.saleRepo.FindByTokenForUpdate(ctx, tx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSaleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := reconstructSale(rm).EnsureCancellable(); err != nil {
		return errs.Mark(err, ErrSaleNotCancellable)
	}

	if err := s.saleRepo.Delete(ctx, tx, rm.ID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// ExpirePendingSales removes pending sales older than the configured TTL and
// returns how many were deleted.
func (s *saleUseCaseImpl) ExpirePendingSales(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().Add(-s.cfg.PendingTTL)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	count, err := s.saleRepo.DeleteExpiredPending(ctx, tx, cutoff)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return count, nil
}

func (s *saleUseCaseImpl) ListSales(ctx context.Context) ([]*readmodel.SaleRM, error) {
	sales, err := s.saleRepo.ListAll(ctx, s.db)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sales, nil
}

func reconstructSale(rm *readmodel.SaleRM) *sale.Sale {
	items := make([]sale.LineItem, 0, len(rm.Items))
	for _, it := range rm.Items {
		items = append(items, sale.NewLineItem(it.BookID, it.BookTitle, it.BookPrice, it.Unities))
	}
	return sale.Reconstruct(rm.ID, rm.UUID, rm.Total, rm.Concluded, rm.CreatedAt, items)
}

func missingIDs(requested []int64, found []*readmodel.BookRM) []int64 {
	present := make(map[int64]struct{}, len(found))
	for _, b := range found {
		present[b.ID] = struct{}{}
	}

	var missing []int64
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

// rollback is deferred on every transaction; a rollback after a successful
// commit reports ErrTxClosed, which is not worth logging.
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
