package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "minibook/internal/handler/dto/request"
	resdto "minibook/internal/handler/dto/response"
	"minibook/internal/handler/httperr"
	"minibook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleUseCase usecase.SaleUseCase
}

func NewSaleHandler(saleUseCase usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{saleUseCase: saleUseCase}
}

func (h *SaleHandler) NewSale(c *gin.Context) {
	var req reqdto.NewSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}
	if req.BooksSaleData == nil {
		httperr.Abort(c, httperr.InvalidBody, errors.New("books_sale_data is required"))
		return
	}

	cart, err := req.Cart()
	if err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}

	result, err := h.saleUseCase.CreateSale(c.Request.Context(), cart)
	if err != nil {
		var notFound *usecase.BookNotFoundError
		switch {
		case errors.Is(err, usecase.ErrEmptySale):
			httperr.Abort(c, httperr.SaleIsEmpty, err)
		case errors.As(err, &notFound):
			httperr.AbortExtra(c, httperr.BookNotFound, err,
				extraString(fmt.Sprintf("ids: %v", notFound.MissingIDs)))
		case errors.Is(err, usecase.ErrPaymentGeneration):
			httperr.AbortExtra(c, httperr.PixFailure, err, extraString(err.Error()))
		default:
			httperr.Abort(c, httperr.Internal, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromNewSale(result))
}

func (h *SaleHandler) ConfirmSale(c *gin.Context) {
	var req reqdto.SaleTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}

	if err := h.saleUseCase.ConfirmSale(c.Request.Context(), req.SaleUUID); err != nil {
		var insufficient *usecase.InsufficientStockError
		switch {
		case errors.Is(err, usecase.ErrSaleNotFound):
			httperr.Abort(c, httperr.SaleNotFound, err)
		case errors.Is(err, usecase.ErrSaleAlreadyConcluded):
			httperr.Abort(c, httperr.SaleConcluded, err)
		case errors.As(err, &insufficient):
			httperr.AbortExtra(c, httperr.NotEnoughUnities, err,
				extraString("Book: "+insufficient.BookTitle))
		default:
			httperr.Abort(c, httperr.Internal, err)
		}
		return
	}

	c.Status(http.StatusOK)
}

func (h *SaleHandler) CancelSale(c *gin.Context) {
	var req reqdto.SaleTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}

	if err := h.saleUseCase.CancelSale(c.Request.Context(), req.SaleUUID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSaleNotFound):
			httperr.Abort(c, httperr.SaleNotFound, err)
		case errors.Is(err, usecase.ErrSaleNotCancellable):
			httperr.Abort(c, httperr.SaleNotCancelable, err)
		default:
			httperr.Abort(c, httperr.Internal, err)
		}
		return
	}

	c.Status(http.StatusOK)
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.saleUseCase.ListSales(c.Request.Context())
	if err != nil {
		httperr.Abort(c, httperr.Internal, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSales(sales))
}
