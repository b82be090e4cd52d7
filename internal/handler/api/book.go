package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "minibook/internal/handler/dto/request"
	resdto "minibook/internal/handler/dto/response"
	"minibook/internal/handler/httperr"
	"minibook/internal/infra/images"
	"minibook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookUseCase usecase.BookUseCase
}

func NewBookHandler(bookUseCase usecase.BookUseCase) *BookHandler {
	return &BookHandler{bookUseCase: bookUseCase}
}

func (h *BookHandler) NewBook(c *gin.Context) {
	var req reqdto.NewBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}

	rm, err := h.bookUseCase.AddBook(c.Request.Context(), req)
	if err != nil {
		h.abortBookError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBook(rm))
}

func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}

	var req reqdto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}

	rm, err := h.bookUseCase.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		h.abortBookError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBook(rm))
}

func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Abort(c, httperr.InvalidBody, err)
		return
	}

	if err := h.bookUseCase.DeleteBook(c.Request.Context(), id); err != nil {
		h.abortBookError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookUseCase.ListBooks(c.Request.Context())
	if err != nil {
		httperr.Abort(c, httperr.Internal, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooks(books))
}

func (h *BookHandler) abortBookError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, images.ErrInvalidBase64):
		httperr.AbortExtra(c, httperr.InvalidB64, err, extraString(err.Error()))
	case errors.Is(err, images.ErrResolutionTooLarge):
		httperr.AbortExtra(c, httperr.InvalidResolution, err, extraString("max: 1080x1080 pixels"))
	case errors.Is(err, images.ErrInvalidImage):
		httperr.AbortExtra(c, httperr.ImageCreation, err, extraString(err.Error()))
	case errors.Is(err, usecase.ErrDomainValidationFailed):
		httperr.Abort(c, httperr.InvalidBody, err)
	case errors.Is(err, usecase.ErrBookNotFound):
		httperr.Abort(c, httperr.BookNotFound, err)
	case errors.Is(err, usecase.ErrBookReferenced):
		httperr.Abort(c, httperr.BookReferenced, err)
	default:
		httperr.Abort(c, httperr.Internal, err)
	}
}

func extraString(s string) *string {
	return &s
}
