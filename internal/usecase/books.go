package usecase

import (
	"context"
	"errors"

	"minibook/internal/domain/book"
	reqdto "minibook/internal/handler/dto/request"
	"minibook/internal/infra"
	"minibook/internal/infra/db"
	"minibook/internal/pkg/errs"
	"minibook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrBookReferenced = errors.New("book is referenced by sale items")
)

type BookRepository interface {
	Create(ctx context.Context, dbx db.DBTX, b *book.Book) (*readmodel.BookRM, error)
	Update(ctx context.Context, dbx db.DBTX, id int64, b *book.Book) (*readmodel.BookRM, error)
	Delete(ctx context.Context, dbx db.DBTX, id int64) error
	ListAll(ctx context.Context, dbx db.DBTX) ([]*readmodel.BookRM, error)
	FindByID(ctx context.Context, dbx db.DBTX, id int64) (*readmodel.BookRM, error)
	FindByIDs(ctx context.Context, dbx db.DBTX, ids []int64) ([]*readmodel.BookRM, error)
	LockForSale(ctx context.Context, tx db.DBTX, ids []int64) ([]*readmodel.BookStockRM, error)
	AddUnits(ctx context.Context, tx db.DBTX, id int64, delta int32) error
}

// ImageStore exchanges a base64 cover picture for a stored resource id.
type ImageStore interface {
	Save(picB64 string) (string, error)
}

type BookUseCase interface {
	AddBook(ctx context.Context, req reqdto.NewBookRequest) (*readmodel.BookRM, error)
	UpdateBook(ctx context.Context, id int64, req reqdto.UpdateBookRequest) (*readmodel.BookRM, error)
	DeleteBook(ctx context.Context, id int64) error
	ListBooks(ctx context.Context) ([]*readmodel.BookRM, error)
}

type bookUseCaseImpl struct {
	bookRepo BookRepository
	images   ImageStore
	db       *pgxpool.Pool
}

func NewBookUseCase(bookRepo BookRepository, images ImageStore, db *pgxpool.Pool) BookUseCase {
	return &bookUseCaseImpl{
		bookRepo: bookRepo,
		images:   images,
		db:       db,
	}
}

// AddBook stores the optional cover first so the record is created with its
// resource id already attached. Image errors pass through untouched; the
// boundary maps them to their own response codes.
func (u *bookUseCaseImpl) AddBook(ctx context.Context, req reqdto.NewBookRequest) (*readmodel.BookRM, error) {
	imgRes, err := u.storeImage(req.Img)
	if err != nil {
		return nil, err
	}

	entity, err := req.ToDomain(imgRes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := u.bookRepo.Create(ctx, u.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

// UpdateBook replaces the record; the stored cover survives unless a new
// picture is supplied.
func (u *bookUseCaseImpl) UpdateBook(ctx context.Context, id int64, req reqdto.UpdateBookRequest) (*readmodel.BookRM, error) {
	imgRes, err := u.storeImage(req.Img)
	if err != nil {
		return nil, err
	}

	entity, err := req.ToDomain(imgRes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := u.bookRepo.Update(ctx, u.db, id, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *bookUseCaseImpl) DeleteBook(ctx context.Context, id int64) error {
	err := u.bookRepo.Delete(ctx, u.db, id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrBookNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrBookReferenced
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (u *bookUseCaseImpl) ListBooks(ctx context.Context) ([]*readmodel.BookRM, error) {
	books, err := u.bookRepo.ListAll(ctx, u.db)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return books, nil
}

func (u *bookUseCaseImpl) storeImage(picB64 *string) (*string, error) {
	if picB64 == nil || *picB64 == "" {
		return nil, nil
	}
	resID, err := u.images.Save(*picB64)
	if err != nil {
		return nil, err
	}
	return &resID, nil
}
