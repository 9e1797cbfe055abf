package project

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
	projectrepo "github.com/aliskhannn/corpsite/internal/repository/project"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/project/mock.go -package=mocks

type projectService interface {
	GetAllProjects(context.Context) ([]model.Project, error)
	GetProject(context.Context, int64) (model.Project, error)
	CreateProject(context.Context, model.Project) (int64, error)
	UpdateProject(context.Context, model.Project) error
	DeleteProject(context.Context, int64) error
}

type Handler struct {
	service   projectService
	validator *validator.Validate
}

func NewHandler(s projectService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func (h *Handler) List(c *ginext.Context) {
	projects, err := h.service.GetAllProjects(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get projects")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, projects)
}

func (h *Handler) Get(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	p, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get project")
		return
	}

	respond.OK(c.Writer, p)
}

func (h *Handler) Create(c *ginext.Context) {
	req, ok := h.decode(c)
	if !ok {
		return
	}

	id, err := h.service.CreateProject(c.Request.Context(), req.ToModel(0))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", req.Title).Msg("failed to create project")
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

	req, ok := h.decode(c)
	if !ok {
		return
	}

	if err := h.service.UpdateProject(c.Request.Context(), req.ToModel(id)); err != nil {
		h.fail(c, err, "failed to update project")
		return
	}

	respond.OK(c.Writer, "project updated")
}

func (h *Handler) Delete(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete project")
		return
	}

	respond.OK(c.Writer, "project deleted")
}

func (h *Handler) decode(c *ginext.Context) (dto.ProjectRequest, bool) {
	var req dto.ProjectRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return req, false
	}

	return req, true
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	if errors.Is(err, projectrepo.ErrProjectNotFound) {
		respond.Fail(c.Writer, http.StatusNotFound, projectrepo.ErrProjectNotFound)
		return
	}

	zlog.Logger.Error().Err(err).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
