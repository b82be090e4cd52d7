package components

import (
	repo_impl "minibook/internal/infra/repository"
	"minibook/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookRepository,
			fx.As(new(usecase.BookRepository)),
		),
		fx.Annotate(
			repo_impl.NewSaleRepository,
			fx.As(new(usecase.SaleRepository)),
		),
	),
)
