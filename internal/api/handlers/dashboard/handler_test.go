package dashboard

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/corpsite/internal/mocks/api/handlers/dashboard"
	"github.com/aliskhannn/corpsite/internal/service/dashboard"
)

func TestHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockstatsService(ctrl)
	handler := NewHandler(mockService)

	mockService.EXPECT().GetStats(gomock.Any()).Return(dashboard.Stats{News: 3, Employees: 7}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":{"news":3,"employees":7,"projects":0,"vacancies":0}}`, w.Body.String())
}

func TestHandler_Stats_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockstatsService(ctrl)
	handler := NewHandler(mockService)

	mockService.EXPECT().GetStats(gomock.Any()).Return(dashboard.Stats{}, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
