//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"minibook/internal/handler/api"
	resdto "minibook/internal/handler/dto/response"
	"minibook/internal/usecase"
	"minibook/internal/usecase/readmodel"
	"minibook/tests/common/httptest"
	usecasemock "minibook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SaleHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockSaleUseCase
	handler  *api.SaleHandler
}

func (s *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockSaleUseCase(s.mockCtrl)
	s.handler = api.NewSaleHandler(s.mockUC)

	s.router.GET("/sale/ls", s.handler.ListSales)
	s.router.POST("/sale/new", s.handler.NewSale)
	s.router.PUT("/sale/confirm", s.handler.ConfirmSale)
	s.router.DELETE("/sale/cancel", s.handler.CancelSale)
}

func (s *SaleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSaleHandlerSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

func saleFixture() *readmodel.SaleRM {
	return &readmodel.SaleRM{
		ID:        1,
		UUID:      "9f3c2a6e4b3d48e2a1c5f7d9e8b6a4c2",
		Total:     5980,
		Concluded: false,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Items: []readmodel.SaleItemRM{
			{BookID: 3, BookTitle: "Dom Casmurro", BookPrice: 2990, Unities: 2},
		},
	}
}

// ================================================================================
// NewSale
// ================================================================================

func (s *SaleHandlerTestSuite) TestNewSale() {
	s.Run("creates sale and returns payment reference", func() {
		result := &usecase.NewSaleResult{
			Sale:   saleFixture(),
			PixB64: "aW1hZ2U=",
			PixStr: "000201...",
		}
		s.mockUC.EXPECT().
			CreateSale(gomock.Any(), map[int64]int32{3: 2}).
			Return(result, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sale/new",
			map[string]any{"books_sale_data": map[string]int32{"3": 2}}, "")

		var resp resdto.NewSaleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("9f3c2a6e4b3d48e2a1c5f7d9e8b6a4c2", resp.UUID)
		s.Equal(int64(5980), resp.Total)
		s.Equal("aW1hZ2U=", resp.PixB64)
		s.Len(resp.BooksSales, 1)
	})

	s.Run("rejects missing books_sale_data", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sale/new",
			map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, 1)
	})

	s.Run("rejects non-integer book id keys", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sale/new",
			map[string]any{"books_sale_data": map[string]int32{"abc": 2}}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, 1)
	})

	s.Run("maps empty sale", func() {
		s.mockUC.EXPECT().
			CreateSale(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrEmptySale)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sale/new",
			map[string]any{"books_sale_data": map[string]int32{}}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, 11)
	})

	s.Run("maps missing books with ids in extra", func() {
		s.mockUC.EXPECT().
			CreateSale(gomock.Any(), gomock.Any()).
			Return(nil, &usecase.BookNotFoundError{MissingIDs: []int64{7, 9}})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sale/new",
			map[string]any{"books_sale_data": map[string]int32{"7": 1, "9": 1}}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, 4)
		s.Contains(w.Body.String(), "7")
		s.Contains(w.Body.String(), "9")
	})

	s.Run("maps payment generation failure", func() {
		s.mockUC.EXPECT().
			CreateSale(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrPaymentGeneration)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sale/new",
			map[string]any{"books_sale_data": map[string]int32{"3": 2}}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, 14)
	})
}

// ================================================================================
// ConfirmSale
// ================================================================================

func (s *SaleHandlerTestSuite) TestConfirmSale() {
	token := saleFixture().UUID

	s.Run("confirms sale", func() {
		s.mockUC.EXPECT().ConfirmSale(gomock.Any(), token).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/sale/confirm",
			map[string]any{"sale_uuid": token}, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("maps not found", func() {
		s.mockUC.EXPECT().ConfirmSale(gomock.Any(), token).Return(usecase.ErrSaleNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/sale/confirm",
			map[string]any{"sale_uuid": token}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, 9)
	})

	s.Run("maps already concluded", func() {
		s.mockUC.EXPECT().ConfirmSale(gomock.Any(), token).Return(usecase.ErrSaleAlreadyConcluded)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/sale/confirm",
			map[string]any{"sale_uuid": token}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, 13)
	})

	s.Run("maps insufficient stock with book title", func() {
		s.mockUC.EXPECT().ConfirmSale(gomock.Any(), token).
			Return(&usecase.InsufficientStockError{BookTitle: "Dom Casmurro"})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/sale/confirm",
			map[string]any{"sale_uuid": token}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, 10)
		s.Contains(w.Body.String(), "Dom Casmurro")
	})

	s.Run("rejects missing sale_uuid", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/sale/confirm",
			map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, 1)
	})
}

// ================================================================================
// CancelSale
// ================================================================================

func (s *SaleHandlerTestSuite) TestCancelSale() {
	token := saleFixture().UUID

	s.Run("cancels sale", func() {
		s.mockUC.EXPECT().CancelSale(gomock.Any(), token).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sale/cancel",
			map[string]any{"sale_uuid": token}, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("maps not cancellable", func() {
		s.mockUC.EXPECT().CancelSale(gomock.Any(), token).Return(usecase.ErrSaleNotCancellable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sale/cancel",
			map[string]any{"sale_uuid": token}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, 12)
	})

	s.Run("maps not found", func() {
		s.mockUC.EXPECT().CancelSale(gomock.Any(), token).Return(usecase.ErrSaleNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sale/cancel",
			map[string]any{"sale_uuid": token}, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, 9)
	})
}

// ================================================================================
// ListSales
// ================================================================================

func (s *SaleHandlerTestSuite) TestListSales() {
	s.Run("returns all sales with items", func() {
		s.mockUC.EXPECT().ListSales(gomock.Any()).
			Return([]*readmodel.SaleRM{saleFixture()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sale/ls", nil, "")

		var resp []resdto.SaleResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal("Dom Casmurro", resp[0].BooksSales[0].BookTitle)
	})

	s.Run("maps repository failure", func() {
		s.mockUC.EXPECT().ListSales(gomock.Any()).
			Return(nil, usecase.ErrDatabaseOperationFailed)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sale/ls", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, 0)
	})
}
