package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/corpsite/internal/mocks/api/handlers/upload"
	"github.com/aliskhannn/corpsite/internal/storage/uploads"
)

func uploadRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, _ = fw.Write([]byte(content))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestHandler_Upload_Collision(t *testing.T) {
	dir := t.TempDir()
	store, err := uploads.NewStore(dir)
	require.NoError(t, err)
	handler := NewHandler(store)

	for i, want := range []string{`{"result":"/uploads/team_photo.jpg"}`, `{"result":"/uploads/team_photo_1.jpg"}`} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = uploadRequest(t, "file", "team photo.jpg", "jpeg")

		handler.Upload(c)

		require.Equal(t, http.StatusCreated, w.Code, "upload %d", i)
		assert.JSONEq(t, want, w.Body.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "team_photo_1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestHandler_Upload_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewHandler(mocks.NewMockfileStore(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = uploadRequest(t, "other", "a.txt", "x")

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"file is required"}`, w.Body.String())
}

func TestHandler_Upload_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockfileStore(ctrl)
	handler := NewHandler(store)

	store.EXPECT().Save("a.txt", gomock.Any()).Return("", errors.New("disk full"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = uploadRequest(t, "file", "a.txt", "x")

	handler.Upload(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
