package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/api/respond"
	"github.com/aliskhannn/corpsite/internal/service/dashboard"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/dashboard/mock.go -package=mocks

type statsService interface {
	GetStats(context.Context) (dashboard.Stats, error)
}

type Handler struct {
	service statsService
}

func NewHandler(s statsService) *Handler {
	return &Handler{service: s}
}

// Stats handles GET /api/admin/dashboard.
func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get dashboard stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}
