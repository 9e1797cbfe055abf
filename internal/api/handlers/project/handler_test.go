package project

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/corpsite/internal/mocks/api/handlers/project"
	"github.com/aliskhannn/corpsite/internal/model"
	projectrepo "github.com/aliskhannn/corpsite/internal/repository/project"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockprojectService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockprojectService(ctrl)
	return NewHandler(mockService, validator.New()), mockService
}

func TestHandler_List(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().GetAllProjects(gomock.Any()).Return([]model.Project{{ID: 1, Title: "Линия розлива"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/projects", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Линия розлива")
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().GetProject(gomock.Any(), int64(5)).Return(model.Project{}, projectrepo.ErrProjectNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/projects/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"project not found"}`, w.Body.String())
}

func TestHandler_Create(t *testing.T) {
	handler, mockService := setupHandler(t)

	adv := "Быстро; Надёжно"
	mockService.EXPECT().
		CreateProject(gomock.Any(), model.Project{Title: "Склад", Advantages: &adv}).
		Return(int64(8), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/projects",
		bytes.NewBufferString(`{"title":"Склад","advantages":"Быстро; Надёжно","subtitle":""}`))

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Update_InternalError(t *testing.T) {
	handler, mockService := setupHandler(t)

	mockService.EXPECT().UpdateProject(gomock.Any(), model.Project{ID: 2, Title: "Склад"}).Return(errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/admin/projects/2", bytes.NewBufferString(`{"title":"Склад"}`))
	c.Params = gin.Params{{Key: "id", Value: "2"}}

	handler.Update(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Delete_BadID(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/admin/projects/0", nil)
	c.Params = gin.Params{{Key: "id", Value: "0"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}
