package vacancy

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
	"github.com/aliskhannn/corpsite/internal/api/form"
	"github.com/aliskhannn/corpsite/internal/api/params"
	"github.com/aliskhannn/corpsite/internal/api/respond"
	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/notify"
	vacancyrepo "github.com/aliskhannn/corpsite/internal/repository/vacancy"
	"github.com/aliskhannn/corpsite/internal/service/vacancy"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/vacancy/mock.go -package=mocks

type vacancyService interface {
	GetAllVacancies(context.Context) ([]model.Vacancy, error)
	GetVacancy(context.Context, int64) (model.Vacancy, error)
	CreateVacancy(context.Context, model.Vacancy) (int64, error)
	UpdateVacancy(context.Context, model.Vacancy) error
	DeleteVacancy(context.Context, int64) error
	Apply(context.Context, int64, vacancy.Application) (notify.Outcome, error)
}

type pathResolver interface {
	Resolve(string) string
}

// Handler serves vacancies and relays applications to HR.
type Handler struct {
	service   vacancyService
	uploads   pathResolver
	validator *validator.Validate
}

// NewHandler creates a Handler; uploads resolves resume references that are not URLs.
func NewHandler(s vacancyService, uploads pathResolver, v *validator.Validate) *Handler {
	return &Handler{service: s, uploads: uploads, validator: v}
}

func (h *Handler) List(c *ginext.Context) {
	vacancies, err := h.service.GetAllVacancies(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get vacancies")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, vacancies)
}

func (h *Handler) Get(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	v, err := h.service.GetVacancy(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get vacancy")
		return
	}

	respond.OK(c.Writer, v)
}

func (h *Handler) Create(c *ginext.Context) {
	req, ok := h.decode(c)
	if !ok {
		return
	}

	id, err := h.service.CreateVacancy(c.Request.Context(), req.ToModel(0))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", req.Title).Msg("failed to create vacancy")
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

	if err := h.service.UpdateVacancy(c.Request.Context(), req.ToModel(id)); err != nil {
		h.fail(c, err, "failed to update vacancy")
		return
	}

	respond.OK(c.Writer, "vacancy updated")
}

func (h *Handler) Delete(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeleteVacancy(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete vacancy")
		return
	}

	respond.OK(c.Writer, "vacancy deleted")
}

// Apply handles POST /api/vacancies/:id/apply.
//
// The form carries name, phone and note, resume files under "resume" and
// resume links one per line under "resume_url". Delivery problems do not fail
// the request: the response reports the status of the message and of every
// attachment.
func (h *Handler) Apply(c *ginext.Context) {
	id, err := params.ID(c, "id")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	atts, closeAll, err := form.Attachments(c, []string{"resume"}, []string{"resume_url"}, h.uploads.Resolve)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to read application form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid form"))
		return
	}
	defer closeAll()

	app := vacancy.Application{
		Name:        c.PostForm("name"),
		Phone:       c.PostForm("phone"),
		Note:        c.PostForm("note"),
		Attachments: atts,
	}

	outcome, err := h.service.Apply(c.Request.Context(), id, app)
	if err != nil {
		h.fail(c, err, "failed to apply for vacancy")
		return
	}

	zlog.Logger.Info().
		Int64("vacancy_id", id).
		Str("status", string(outcome.Status())).
		Msg("vacancy application relayed")

	respond.JSON(c.Writer, http.StatusOK, dto.NewOutcomeResponse(outcome, dto.ApplicationMessages))
}

func (h *Handler) decode(c *ginext.Context) (dto.VacancyRequest, bool) {
	var req dto.VacancyRequest

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

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	if errors.Is(err, vacancyrepo.ErrVacancyNotFound) {
		respond.Fail(c.Writer, http.StatusNotFound, vacancyrepo.ErrVacancyNotFound)
		return
	}

	zlog.Logger.Error().Err(err).Msg(msg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
