package request

import (
	"minibook/internal/domain/book"
)

type NewBookRequest struct {
	Title       string  `json:"title" binding:"required"`
	Author      string  `json:"author" binding:"required"`
	Publisher   string  `json:"publisher" binding:"required"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price" binding:"required,min=0"`
	Year        int     `json:"year" binding:"required"`
	Unities     int32   `json:"unities" binding:"min=0"`
	// Img carries an optional base64-encoded cover picture; the handler
	// exchanges it for a stored resource id before the book is created.
	Img *string `json:"img,omitempty"`
}

func (r NewBookRequest) ToDomain(imgRes *string) (*book.Book, error) {
	return book.NewBook(
		r.Title, r.Author, r.Publisher,
		r.Price, r.Unities, r.Year,
		r.Description, imgRes,
	)
}

// UpdateBookRequest replaces the whole record; a nil Img keeps the stored
// cover untouched.
type UpdateBookRequest struct {
	Title       string  `json:"title" binding:"required"`
	Author      string  `json:"author" binding:"required"`
	Publisher   string  `json:"publisher" binding:"required"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price" binding:"required,min=0"`
	Year        int     `json:"year" binding:"required"`
	Unities     int32   `json:"unities" binding:"min=0"`
	Img         *string `json:"img,omitempty"`
}

func (r UpdateBookRequest) ToDomain(imgRes *string) (*book.Book, error) {
	return book.NewBook(
		r.Title, r.Author, r.Publisher,
		r.Price, r.Unities, r.Year,
		r.Description, imgRes,
	)
}
