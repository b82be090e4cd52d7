package readmodel

import "time"

type SaleItemRM struct {
	BookID    int64
	BookTitle string
	BookPrice int64
	Unities   int32
}

type SaleRM struct {
	ID        int64
	UUID      string
	Total     int64
	Concluded bool
	CreatedAt time.Time
	Items     []SaleItemRM
}
