package sale

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyConcluded = errors.New("sale is already concluded")
	ErrNotCancellable   = errors.New("sale can not be canceled after conclusion")
)

// LineItem is an immutable (book, requested units) pair. The unit price is
// captured at sale creation so later book edits never change a sale's total.
type LineItem struct {
	bookID    int64
	title     string
	unitPrice int64
	units     int32
}

func NewLineItem(bookID int64, title string, unitPrice int64, units int32) LineItem {
	return LineItem{
		bookID:    bookID,
		title:     title,
		unitPrice: unitPrice,
		units:     units,
	}
}

func (li LineItem) BookID() int64    { return li.bookID }
func (li LineItem) Title() string    { return li.title }
func (li LineItem) UnitPrice() int64 { return li.unitPrice }
func (li LineItem) Units() int32     { return li.units }
func (li LineItem) Subtotal() int64  { return int64(li.units) * li.unitPrice }

// Sale progresses pending → concluded, or pending → deleted (cancel/expiry).
// Line items and total are fixed at creation and never recomputed.
type Sale struct {
	id        int64
	token     string
	items     []LineItem
	total     int64
	concluded bool
	createdAt time.Time
}

// NewSale builds a pending sale with a fresh correlation token. Items with a
// non-positive unit count are dropped silently rather than rejected; only
// kept items contribute to the total.
func NewSale(now time.Time, items []LineItem) *Sale {
	kept := make([]LineItem, 0, len(items))
	var total int64
	for _, li := range items {
		if li.units <= 0 {
			continue
		}
		kept = append(kept, li)
		total += li.Subtotal()
	}

	return &Sale{
		token:     NewToken(),
		items:     kept,
		total:     total,
		createdAt: now,
	}
}

// NewToken returns the public correlation token for a sale: 32 hex chars,
// distinct from the internal numeric id.
func NewToken() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

func Reconstruct(
	id int64,
	token string,
	total int64,
	concluded bool,
	createdAt time.Time,
	items []LineItem,
) *Sale {
	return &Sale{
		id:        id,
		token:     token,
		items:     items,
		total:     total,
		concluded: concluded,
		createdAt: createdAt,
	}
}

// Confirm transitions the sale to concluded. A concluded sale is permanent
// and cannot be re-confirmed.
func (s *Sale) Confirm() error {
	if s.concluded {
		return ErrAlreadyConcluded
	}
	s.concluded = true
	return nil
}

// EnsureCancellable reports whether deleting the sale is still legal.
func (s *Sale) EnsureCancellable() error {
	if s.concluded {
		return ErrNotCancellable
	}
	return nil
}

// ExpiredAt reports whether the pending sale has outlived ttl. Concluded
// sales never expire.
func (s *Sale) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return !s.concluded && now.Sub(s.createdAt) > ttl
}

func (s *Sale) ID() int64            { return s.id }
func (s *Sale) Token() string        { return s.token }
func (s *Sale) Items() []LineItem    { return s.items }
func (s *Sale) Total() int64         { return s.total }
func (s *Sale) Concluded() bool      { return s.concluded }
func (s *Sale) CreatedAt() time.Time { return s.createdAt }
