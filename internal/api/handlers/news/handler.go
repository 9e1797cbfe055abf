package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/api/dto"
	"github.com/aliskhannn/corpsite/internal/api/params"
	"github.com/aliskhannn/corpsite/internal/api/respond"
	"github.com/aliskhannn/corpsite/internal/model"
	newsrepo "github.com/aliskhannn/corpsite/internal/repository/news"
	"github.com/aliskhannn/corpsite/internal/service/news"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/news/mock.go -package=mocks

type newsService interface {
	GetFeed(context.Context) (news.Feed, error)
	GetPost(context.Context, int64) (news.Post, error)
	GetNews(context.Context, int64) (model.News, error)
	GetGallery(context.Context, int64) ([]model.NewsImage, error)
	CreateNews(context.Context, model.News, []string) (int64, error)
	UpdateNews(context.Context, model.News) error
	DeleteNews(context.Context, int64) error
	AddImages(context.Context, int64, []string) error
	ReorderImages(context.Context, int64, map[string]string) error
	DeleteImage(context.Context, int64, int64) error
}

// Handler serves the news feed, post pages and the admin gallery editor.
type Handler struct {
	service   newsService
	validator *validator.Validate
}

func NewHandler(s newsService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Feed handles GET /api/news.
func (h *Handler) Feed(c *ginext.Context) {
	feed, err := h.service.GetFeed(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get news feed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, feed)
}

// Post handles GET /api/news/:id.
func (h *Handler) Post(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get news post")
		return
	}

	respond.OK(c.Writer, post)
}

// Get handles GET /api/admin/news/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	n, err := h.service.GetNews(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get news")
		return
	}

	respond.OK(c.Writer, n)
}

func (h *Handler) Create(c *ginext.Context) {
	var req dto.NewsRequest
	if !h.bind(c, &req) {
		return
	}

	id, err := h.service.CreateNews(c.Request.Context(), req.ToModel(0), req.Gallery)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", req.Title).Msg("failed to create news")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

func (h *Handler) Update(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var req dto.NewsRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.service.UpdateNews(c.Request.Context(), req.ToModel(id)); err != nil {
		h.fail(c, err, "failed to update news")
		return
	}

	respond.OK(c.Writer, "news updated")
}

func (h *Handler) Delete(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeleteNews(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete news")
		return
	}

	respond.OK(c.Writer, "news deleted")
}

// Gallery handles GET /api/admin/news/:id/images.
func (h *Handler) Gallery(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	images, err := h.service.GetGallery(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get gallery")
		return
	}

	respond.OK(c.Writer, images)
}

// AddImages handles POST /api/admin/news/:id/images.
func (h *Handler) AddImages(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var req dto.ImagesRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.service.AddImages(c.Request.Context(), id, req.Paths); err != nil {
		h.fail(c, err, "failed to add news images")
		return
	}

	respond.Created(c.Writer, len(req.Paths))
}

// ReorderImages handles PUT /api/admin/news/:id/images/order. The body maps
// image ids to sort values; values may be strings or numbers.
func (h *Handler) ReorderImages(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&raw); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.service.ReorderImages(c.Request.Context(), id, sortValues(raw)); err != nil {
		h.fail(c, err, "failed to reorder news images")
		return
	}

	respond.OK(c.Writer, "order updated")
}

// DeleteImage handles DELETE /api/admin/news/:id/images/:imageID.
func (h *Handler) DeleteImage(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	imageID, err := params.ID(c, "imageID")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), id, imageID); err != nil {
		h.fail(c, err, "failed to delete news image")
		return
	}

	respond.OK(c.Writer, "image deleted")
}

func (h *Handler) bind(c *ginext.Context, req interface{}) bool {
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return false
	}

	return true
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, newsrepo.ErrNewsNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, newsrepo.ErrNewsNotFound)
	case errors.Is(err, newsrepo.ErrImageNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, newsrepo.ErrImageNotFound)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

// sortValues flattens JSON strings and numbers into their text form.
func sortValues(raw map[string]json.RawMessage) map[string]string {
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			values[k] = s
			continue
		}
		values[k] = string(v)
	}

	return values
}
