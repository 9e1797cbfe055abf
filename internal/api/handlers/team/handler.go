package team

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
	"github.com/aliskhannn/corpsite/internal/ordering"
	"github.com/aliskhannn/corpsite/internal/service/team"
)

// teamService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/team/mock.go -package=mocks
type teamService interface {
	GetRoster(context.Context) (team.Roster, error)
	GetEmployee(context.Context, int64) (model.Employee, error)
	CreateEmployee(context.Context, model.Employee) (int64, error)
	UpdateEmployee(context.Context, model.Employee) error
	DeleteEmployee(context.Context, int64) error
	MoveUp(context.Context, int64) (ordering.Move, error)
	MoveDown(context.Context, int64) (ordering.Move, error)
	Backfill(context.Context) (int, error)
}

// Handler handles HTTP requests related to the team roster.
//
// The public endpoint returns employees in display order; the admin endpoints
// edit employees and move them up or down in that order.
type Handler struct {
	service   teamService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s teamService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// MoveResponse is returned by the up and down endpoints.
type MoveResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"` // moved, already_first or already_last
}

// Roster handles GET requests for the team page.
func (h *Handler) Roster(c *ginext.Context) {
	roster, err := h.service.GetRoster(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get roster")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, roster)
}

// Get handles GET requests for a single employee.
func (h *Handler) Get(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	e, err := h.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to get employee")
		return
	}

	respond.OK(c.Writer, e)
}

// Create handles POST requests adding an employee at the end of the roster.
func (h *Handler) Create(c *ginext.Context) {
	req, ok := h.decode(c)
	if !ok {
		return
	}

	// New employees always go last; the rank is assigned by the service.
	id, err := h.service.CreateEmployee(c.Request.Context(), req.ToModel(0))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("full_name", req.FullName).Msg("failed to create employee")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// Update handles PUT requests editing an employee. The position is kept.
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

	if err := h.service.UpdateEmployee(c.Request.Context(), req.ToModel(id)); err != nil {
		h.fail(c, id, err, "failed to update employee")
		return
	}

	respond.OK(c.Writer, "employee updated")
}

// Delete handles DELETE requests removing an employee.
func (h *Handler) Delete(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.fail(c, id, err, "failed to delete employee")
		return
	}

	respond.OK(c.Writer, "employee deleted")
}

// MoveUp handles POST requests swapping an employee with the previous one.
func (h *Handler) MoveUp(c *ginext.Context) {
	h.move(c, h.service.MoveUp)
}

// MoveDown handles POST requests swapping an employee with the next one.
func (h *Handler) MoveDown(c *ginext.Context) {
	h.move(c, h.service.MoveDown)
}

func (h *Handler) move(c *ginext.Context, op func(context.Context, int64) (ordering.Move, error)) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	res, err := op(c.Request.Context(), id)
	if err != nil {
		h.fail(c, id, err, "failed to move employee")
		return
	}

	respond.OK(c.Writer, MoveResponse{ID: id, Status: res.String()})
}

// Backfill handles POST requests ranking employees that have no position yet.
func (h *Handler) Backfill(c *ginext.Context) {
	n, err := h.service.Backfill(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to backfill employee order")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]int{"ranked": n})
}

func (h *Handler) decode(c *ginext.Context) (dto.EmployeeRequest, bool) {
	var req dto.EmployeeRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return req, false
	}

	return req, true
}

func (h *Handler) fail(c *ginext.Context, id int64, err error, msg string) {
	if errors.Is(err, ordering.ErrNotFound) {
		zlog.Logger.Warn().Int64("id", id).Err(err).Msg("employee not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("employee not found"))
		return
	}

	zlog.Logger.Error().Err(err).Int64("id", id).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
