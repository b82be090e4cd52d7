//go:build unit

package sale_test

import (
	"testing"
	"time"

	"minibook/internal/domain/sale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("total is the sum of units times unit price", func(t *testing.T) {
		s := sale.NewSale(now, []sale.LineItem{
			sale.NewLineItem(1, "Dune", 1000, 3),
			sale.NewLineItem(2, "Neuromancer", 2500, 2),
		})

		assert.Equal(t, int64(3*1000+2*2500), s.Total())
		assert.Len(t, s.Items(), 2)
		assert.False(t, s.Concluded())
		assert.Equal(t, now, s.CreatedAt())
	})

	t.Run("non-positive unit counts are dropped, not rejected", func(t *testing.T) {
		s := sale.NewSale(now, []sale.LineItem{
			sale.NewLineItem(1, "Dune", 1000, 3),
			sale.NewLineItem(2, "Neuromancer", 2500, 0),
			sale.NewLineItem(3, "Solaris", 1800, -4),
		})

		require.Len(t, s.Items(), 1)
		assert.Equal(t, int64(1), s.Items()[0].BookID())
		assert.Equal(t, int64(3000), s.Total())
	})

	t.Run("all items dropped yields an empty pending sale with zero total", func(t *testing.T) {
		s := sale.NewSale(now, []sale.LineItem{
			sale.NewLineItem(1, "Dune", 1000, 0),
		})

		assert.Empty(t, s.Items())
		assert.Equal(t, int64(0), s.Total())
	})

	t.Run("tokens are 32 hex chars and unique per sale", func(t *testing.T) {
		s1 := sale.NewSale(now, nil)
		s2 := sale.NewSale(now, nil)

		assert.Len(t, s1.Token(), 32)
		assert.NotEqual(t, s1.Token(), s2.Token())
	})
}

func TestSaleLifecycle(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("confirm marks the sale concluded exactly once", func(t *testing.T) {
		s := sale.NewSale(now, []sale.LineItem{sale.NewLineItem(1, "Dune", 1000, 1)})

		require.NoError(t, s.Confirm())
		assert.True(t, s.Concluded())

		err := s.Confirm()
		require.ErrorIs(t, err, sale.ErrAlreadyConcluded)
		assert.True(t, s.Concluded())
	})

	t.Run("pending sale is cancellable, concluded sale is not", func(t *testing.T) {
		s := sale.NewSale(now, []sale.LineItem{sale.NewLineItem(1, "Dune", 1000, 1)})
		require.NoError(t, s.EnsureCancellable())

		require.NoError(t, s.Confirm())
		require.ErrorIs(t, s.EnsureCancellable(), sale.ErrNotCancellable)
	})

	t.Run("expiry applies only to pending sales strictly past the threshold", func(t *testing.T) {
		ttl := 30 * time.Minute

		pending := sale.Reconstruct(1, sale.NewToken(), 1000, false, now, nil)
		concluded := sale.Reconstruct(2, sale.NewToken(), 1000, true, now, nil)

		assert.False(t, pending.ExpiredAt(now.Add(ttl), ttl), "age equal to ttl is not expired")
		assert.True(t, pending.ExpiredAt(now.Add(ttl+time.Second), ttl))
		assert.False(t, concluded.ExpiredAt(now.Add(24*time.Hour), ttl))
	})
}
