//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"minibook/internal/handler/api"
	resdto "minibook/internal/handler/dto/response"
	"minibook/internal/infra/images"
	"minibook/internal/usecase"
	"minibook/internal/usecase/readmodel"
	"minibook/tests/common/httptest"
	usecasemock "minibook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockBookUseCase
	handler  *api.BookHandler
}

func (s *BookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockBookUseCase(s.mockCtrl)
	s.handler = api.NewBookHandler(s.mockUC)

	s.router.GET("/book/ls", s.handler.ListBooks)
	s.router.POST("/book/new", s.handler.NewBook)
	s.router.PUT("/book/:id", s.handler.UpdateBook)
	s.router.DELETE("/book/:id", s.handler.DeleteBook)
}

func (s *BookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookHandlerTestSuite))
}

func bookFixture() *readmodel.BookRM {
	return &readmodel.BookRM{
		ID:        3,
		Title:     "Dom Casmurro",
		Author:    "Machado de Assis",
		Publisher: "Garnier",
		Price:     2990,
		Year:      1899,
		Unities:   10,
	}
}

func validBookBody() map[string]any {
	return map[string]any{
		"title":     "Dom Casmurro",
		"author":    "Machado de Assis",
		"publisher": "Garnier",
		"price":     2990,
		"year":      1899,
		"unities":   10,
	}
}

// ================================================================================
// NewBook
// ================================================================================

func (s *BookHandlerTestSuite) TestNewBook() {
	s.Run("creates book", func() {
		s.mockUC.EXPECT().
			AddBook(gomock.Any(), gomock.Any()).
			Return(bookFixture(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book/new", validBookBody(), "")

		var resp resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(3), resp.ID)
		s.Equal("Dom Casmurro", resp.Title)
	})

	s.Run("rejects missing required fields", func() {
		body := validBookBody()
		delete(body, "publisher")

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book/new", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, 1)
	})

	s.Run("maps invalid base64 cover", func() {
		s.mockUC.EXPECT().
			AddBook(gomock.Any(), gomock.Any()).
			Return(nil, images.ErrInvalidBase64)

		body := validBookBody()
		body["img"] = "!!!not-base64!!!"

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book/new", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotAcceptable, 5)
	})

	s.Run("maps oversized cover", func() {
		s.mockUC.EXPECT().
			AddBook(gomock.Any(), gomock.Any()).
			Return(nil, images.ErrResolutionTooLarge)

		body := validBookBody()
		body["img"] = "aW1hZ2U="

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book/new", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotAcceptable, 8)
		s.Contains(w.Body.String(), "1080x1080")
	})

	s.Run("maps broken image payload", func() {
		s.mockUC.EXPECT().
			AddBook(gomock.Any(), gomock.Any()).
			Return(nil, images.ErrInvalidImage)

		body := validBookBody()
		body["img"] = "aW1hZ2U="

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/book/new", body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, 6)
	})
}

// ================================================================================
// UpdateBook
// ================================================================================

func (s *BookHandlerTestSuite) TestUpdateBook() {
	s.Run("updates book", func() {
		s.mockUC.EXPECT().
			UpdateBook(gomock.Any(), int64(3), gomock.Any()).
			Return(bookFixture(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/book/3", validBookBody(), "")

		var resp resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(3), resp.ID)
	})

	s.Run("maps unknown book", func() {
		s.mockUC.EXPECT().
			UpdateBook(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, usecase.ErrBookNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/book/99", validBookBody(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, 4)
	})

	s.Run("rejects non-numeric id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/book/abc", validBookBody(), "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, 1)
	})
}

// ================================================================================
// DeleteBook
// ================================================================================

func (s *BookHandlerTestSuite) TestDeleteBook() {
	s.Run("deletes book", func() {
		s.mockUC.EXPECT().DeleteBook(gomock.Any(), int64(3)).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/book/3", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("rejects referenced book", func() {
		s.mockUC.EXPECT().DeleteBook(gomock.Any(), int64(3)).Return(usecase.ErrBookReferenced)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/book/3", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, 15)
	})

	s.Run("maps unknown book", func() {
		s.mockUC.EXPECT().DeleteBook(gomock.Any(), int64(99)).Return(usecase.ErrBookNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/book/99", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, 4)
	})
}

// ================================================================================
// ListBooks
// ================================================================================

func (s *BookHandlerTestSuite) TestListBooks() {
	s.Run("returns books", func() {
		s.mockUC.EXPECT().ListBooks(gomock.Any()).
			Return([]*readmodel.BookRM{bookFixture()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/book/ls", nil, "")

		var resp []resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("maps repository failure", func() {
		s.mockUC.EXPECT().ListBooks(gomock.Any()).
			Return(nil, usecase.ErrDatabaseOperationFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/book/ls", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, 0)
	})
}
