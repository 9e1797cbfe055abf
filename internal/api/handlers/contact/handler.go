package contact

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/api/dto"
	"github.com/aliskhannn/corpsite/internal/api/form"
	"github.com/aliskhannn/corpsite/internal/api/respond"
	"github.com/aliskhannn/corpsite/internal/notify"
	"github.com/aliskhannn/corpsite/internal/service/contact"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/contact/mock.go -package=mocks

type contactService interface {
	Submit(context.Context, contact.Message) notify.Outcome
}

type pathResolver interface {
	Resolve(string) string
}

var (
	fileKeys = []string{"attachments", "attachment", "document", "file", "files"}
	refKeys  = []string{"file_urls", "doc_urls"}
)

type Handler struct {
	service contactService
	uploads pathResolver
}

func NewHandler(s contactService, uploads pathResolver) *Handler {
	return &Handler{service: s, uploads: uploads}
}

// Submit handles POST /api/contact and reports how the message and each
// attachment were delivered.
func (h *Handler) Submit(c *ginext.Context) {
	atts, closeAll, err := form.Attachments(c, fileKeys, refKeys, h.uploads.Resolve)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to read contact form")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid form"))
		return
	}
	defer closeAll()

	outcome := h.service.Submit(c.Request.Context(), contact.Message{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Text:        c.PostForm("message"),
		Attachments: atts,
	})

	zlog.Logger.Info().
		Str("status", string(outcome.Status())).
		Int("attachments", len(atts)).
		Msg("contact message relayed")

	respond.JSON(c.Writer, http.StatusOK, dto.NewOutcomeResponse(outcome, dto.ContactMessages))
}
