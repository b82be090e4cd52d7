package readmodel

// BookRM is the read model returned by book queries.
type BookRM struct {
	ID          int64
	Title       string
	Author      string
	Publisher   string
	Description *string
	Price       int64
	Year        int
	Unities     int32
	ImgRes      *string
}

// BookStockRM is the minimal row locked during sale confirmation.
type BookStockRM struct {
	ID      int64
	Title   string
	Unities int32
}
