//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"minibook/internal/handler/middleware"
	"minibook/tests/common/httptest"
	usecasemock "minibook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSweepRouter(t *testing.T, mockUC *usecasemock.MockSaleUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/gated", middleware.ExpirySweep(mockUC), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestExpirySweep_RunsBeforeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := usecasemock.NewMockSaleUseCase(ctrl)
	mockUC.EXPECT().ExpirePendingSales(gomock.Any()).Return(int64(2), nil)

	router := newSweepRouter(t, mockUC)
	w := httptest.PerformRequest(t, router, http.MethodGet, "/gated", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpirySweep_FailureDoesNotBlockRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := usecasemock.NewMockSaleUseCase(ctrl)
	mockUC.EXPECT().ExpirePendingSales(gomock.Any()).Return(int64(0), errors.New("db down"))

	router := newSweepRouter(t, mockUC)
	w := httptest.PerformRequest(t, router, http.MethodGet, "/gated", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}
