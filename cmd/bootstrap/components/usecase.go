package components

import (
	"minibook/internal/infra/images"
	"minibook/internal/pix"
	"minibook/internal/pkg/clock"
	"minibook/internal/pkg/config"
	"minibook/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewImageStore,
		func(s *images.Store) usecase.ImageStore { return s },
		NewPixCharger,
		func(c *pix.Charger) usecase.PaymentGenerator { return c },
		NewSaleUseCase,
		usecase.NewBookUseCase,
	),
)

func NewImageStore(cfg config.Config) (*images.Store, error) {
	return images.NewStore(cfg.Images)
}

func NewPixCharger(cfg config.Config) *pix.Charger {
	return pix.NewCharger(cfg.Pix)
}

func NewSaleUseCase(
	saleRepo usecase.SaleRepository,
	bookRepo usecase.BookRepository,
	payments usecase.PaymentGenerator,
	db *pgxpool.Pool,
	clk clock.Clock,
	cfg config.Config,
) usecase.SaleUseCase {
	return usecase.NewSaleUseCase(saleRepo, bookRepo, payments, db, clk, cfg.Sales)
}
