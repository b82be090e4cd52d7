package response

import (
	"time"

	"minibook/internal/usecase"
	"minibook/internal/usecase/readmodel"
)

type SaleItemResponse struct {
	BookID    int64  `json:"book_id"`
	BookTitle string `json:"book_title"`
	BookPrice int64  `json:"book_price"`
	Unities   int32  `json:"unities"`
}

type SaleResponse struct {
	ID         int64              `json:"id"`
	UUID       string             `json:"uuid"`
	Total      int64              `json:"total"`
	Concluded  bool               `json:"concluded"`
	SaleTS     time.Time          `json:"sale_ts"`
	BooksSales []SaleItemResponse `json:"books_sales"`
}

// NewSaleResponse extends the sale with its payment reference, returned
// once at creation and never persisted.
type NewSaleResponse struct {
	SaleResponse
	PixB64 string `json:"pix_b64"`
	PixStr string `json:"pix_str"`
}

func FromSale(rm *readmodel.SaleRM) *SaleResponse {
	items := make([]SaleItemResponse, 0, len(rm.Items))
	for _, it := range rm.Items {
		items = append(items, SaleItemResponse{
			BookID:    it.BookID,
			BookTitle: it.BookTitle,
			BookPrice: it.BookPrice,
			Unities:   it.Unities,
		})
	}
	return &SaleResponse{
		ID:         rm.ID,
		UUID:       rm.UUID,
		Total:      rm.Total,
		Concluded:  rm.Concluded,
		SaleTS:     rm.CreatedAt,
		BooksSales: items,
	}
}

func FromSales(rms []*readmodel.SaleRM) []*SaleResponse {
	result := make([]*SaleResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromSale(rm))
	}
	return result
}

func FromNewSale(res *usecase.NewSaleResult) *NewSaleResponse {
	return &NewSaleResponse{
		SaleResponse: *FromSale(res.Sale),
		PixB64:       res.PixB64,
		PixStr:       res.PixStr,
	}
}
