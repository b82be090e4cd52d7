package request

import (
	"errors"
	"strconv"
)

var ErrNonIntegerBookID = errors.New("book id keys must be integers")

// NewSaleRequest mirrors the wire shape of a cart: book ids arrive as JSON
// object keys, so they are strings until parsed. The field is checked for
// presence by hand because an empty cart is a distinct failure from a
// missing one.
type NewSaleRequest struct {
	BooksSaleData map[string]int32 `json:"books_sale_data"`
}

// Cart parses the string keys into book ids, preserving the requested unit
// counts. A non-integer key rejects the whole request.
func (r NewSaleRequest) Cart() (map[int64]int32, error) {
	cart := make(map[int64]int32, len(r.BooksSaleData))
	for k, units := range r.BooksSaleData {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, ErrNonIntegerBookID
		}
		cart[id] = units
	}
	return cart, nil
}

// SaleTokenRequest addresses an existing sale by its correlation token.
type SaleTokenRequest struct {
	SaleUUID string `json:"sale_uuid" binding:"required"`
}
