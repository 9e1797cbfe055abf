package auth

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
	"github.com/aliskhannn/corpsite/internal/api/respond"
	"github.com/aliskhannn/corpsite/internal/config"
	"github.com/aliskhannn/corpsite/internal/middlewares"
	"github.com/aliskhannn/corpsite/internal/service/auth"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/auth/mock.go -package=mocks

type authService interface {
	Login(context.Context, string, string) (string, error)
	Logout(context.Context, string) error
}

// Handler opens and closes admin sessions.
type Handler struct {
	service   authService
	validator *validator.Validate
	session   config.Session
}

func NewHandler(s authService, v *validator.Validate, session config.Session) *Handler {
	return &Handler{service: s, validator: v, session: session}
}

// LoginResponse carries the session token for clients that do not keep cookies.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/admin/login. On success the token is set as an
// HTTP-only cookie and returned in the body.
func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			zlog.Logger.Warn().Str("login", req.Login).Msg("invalid admin credentials")
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid login or password"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to log in")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, token, int(h.session.TTL.Seconds()), "/", "", h.session.Secure, true)

	respond.OK(c.Writer, LoginResponse{Token: token})
}

// Logout handles POST /api/admin/logout.
func (h *Handler) Logout(c *ginext.Context) {
	token := middlewares.SessionToken(c, h.session.CookieName)

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to log out")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.Secure, true)

	respond.OK(c.Writer, "logged out")
}
