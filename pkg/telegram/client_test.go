package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendMessage(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient("TOKEN", srv.URL)
	err := c.SendMessage(context.Background(), "42", "hello")
	require.NoError(t, err)
	assert.Equal(t, sendMessageRequest{ChatID: "42", Text: "hello"}, got)
}

func TestClient_SendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	err := NewClient("TOKEN", srv.URL).SendMessage(context.Background(), "42", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestClient_SendDocumentURL(t *testing.T) {
	var got sendDocumentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendDocument", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	err := NewClient("TOKEN", srv.URL).SendDocumentURL(context.Background(), "42", "https://example.com/cv.pdf", "cv")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/cv.pdf", got.Document)
	assert.Equal(t, "cv", got.Caption)
}

func TestClient_SendDocument_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "42", r.FormValue("chat_id"))
		assert.Equal(t, "caption", r.FormValue("caption"))

		f, hdr, err := r.FormFile("document")
		require.NoError(t, err)
		defer f.Close()

		body, _ := io.ReadAll(f)
		assert.Equal(t, "report.txt", hdr.Filename)
		assert.Equal(t, "file body", string(body))
	}))
	defer srv.Close()

	err := NewClient("TOKEN", srv.URL).
		SendDocument(context.Background(), "42", "report.txt", strings.NewReader("file body"), "caption")
	require.NoError(t, err)
}

func TestClient_SendDocument_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	err := NewClient("TOKEN", srv.URL).
		SendDocument(context.Background(), "42", "a.txt", strings.NewReader("x"), "")
	assert.Error(t, err)
}
