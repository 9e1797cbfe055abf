package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/api/respond"
	"github.com/aliskhannn/corpsite/internal/storage/uploads"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/upload/mock.go -package=mocks

type fileStore interface {
	Save(string, io.Reader) (string, error)
}

type Handler struct {
	store fileStore
}

func NewHandler(store fileStore) *Handler {
	return &Handler{store: store}
}

// Upload handles POST /api/admin/uploads with a multipart "file" field and
// returns the public path of the stored file.
func (h *Handler) Upload(c *ginext.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Fail(c.Writer, http.StatusRequestEntityTooLarge, fmt.Errorf("file too large"))
			return
		}

		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("file is required"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		zlog.Logger.Error().Err(err).Str("filename", fh.Filename).Msg("failed to open uploaded file")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}
	defer f.Close()

	path, err := h.store.Save(fh.Filename, f)
	if err != nil {
		if errors.Is(err, uploads.ErrEmptyName) {
			respond.Fail(c.Writer, http.StatusBadRequest, uploads.ErrEmptyName)
			return
		}

		zlog.Logger.Error().Err(err).Str("filename", fh.Filename).Msg("failed to save upload")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	zlog.Logger.Info().Str("path", path).Int64("size", fh.Size).Msg("file uploaded")

	respond.Created(c.Writer, path)
}
