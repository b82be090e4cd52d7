package book

import (
	"errors"
	"strings"
)

var ErrMissingRequiredField = errors.New("missing required field")

// Book is an inventory record. Unit counts are only mutated by sale
// confirmation or an administrative edit; books are never deleted while a
// sale item references them.
type Book struct {
	id          int64
	title       string
	author      string
	publisher   string
	description *string
	price       int64
	year        int
	unities     int32
	imgRes      *string
}

// NewBook checks required fields only. Range validation of price, year and
// unit counts is the boundary's responsibility.
func NewBook(
	title, author, publisher string,
	price int64,
	unities int32,
	year int,
	description *string,
	imgRes *string,
) (*Book, error) {
	if strings.TrimSpace(title) == "" ||
		strings.TrimSpace(author) == "" ||
		strings.TrimSpace(publisher) == "" {
		return nil, ErrMissingRequiredField
	}

	return &Book{
		title:       title,
		author:      author,
		publisher:   publisher,
		description: description,
		price:       price,
		year:        year,
		unities:     unities,
		imgRes:      imgRes,
	}, nil
}

func Reconstruct(
	id int64,
	title, author, publisher string,
	price int64,
	unities int32,
	year int,
	description *string,
	imgRes *string,
) *Book {
	return &Book{
		id:          id,
		title:       title,
		author:      author,
		publisher:   publisher,
		description: description,
		price:       price,
		year:        year,
		unities:     unities,
		imgRes:      imgRes,
	}
}

func (b *Book) ID() int64            { return b.id }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) Publisher() string    { return b.publisher }
func (b *Book) Description() *string { return b.description }
func (b *Book) Price() int64         { return b.price }
func (b *Book) Year() int            { return b.year }
func (b *Book) Unities() int32       { return b.unities }
func (b *Book) ImgRes() *string      { return b.imgRes }
