package response

import (
	"minibook/internal/usecase/readmodel"
)

type BookResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Publisher   string  `json:"publisher"`
	Description *string `json:"description"`
	Price       int64   `json:"price"`
	Year        int     `json:"year"`
	Unities     int32   `json:"unities"`
	ImgRes      *string `json:"img_res"`
}

func FromBook(rm *readmodel.BookRM) *BookResponse {
	return &BookResponse{
		ID:          rm.ID,
		Title:       rm.Title,
		Author:      rm.Author,
		Publisher:   rm.Publisher,
		Description: rm.Description,
		Price:       rm.Price,
		Year:        rm.Year,
		Unities:     rm.Unities,
		ImgRes:      rm.ImgRes,
	}
}

func FromBooks(rms []*readmodel.BookRM) []*BookResponse {
	result := make([]*BookResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromBook(rm))
	}
	return result
}
