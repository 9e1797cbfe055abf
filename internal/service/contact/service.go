package contact

import (
	"context"
	"strings"

	"github.com/aliskhannn/corpsite/internal/notify"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/contact/mock.go -package=mocks

type dispatcher interface {
	Dispatch(context.Context, notify.Event) notify.Outcome
}

// Message is a contact form submission.
type Message struct {
	Name        string
	Email       string
	Phone       string
	Text        string
	Attachments []notify.Attachment
}

type Service struct {
	dispatcher dispatcher
}

func NewService(d dispatcher) *Service {
	return &Service{dispatcher: d}
}

// Submit relays a contact message to the general endpoint. Blank fields get
// placeholders: "Гость" for the name and "—" for the rest.
func (s *Service) Submit(ctx context.Context, m Message) notify.Outcome {
	ev := notify.Event{
		Category: notify.CategoryContact,
		Fields: map[string]string{
			notify.FieldName:    orDefault(m.Name, "Гость"),
			notify.FieldEmail:   orDefault(m.Email, "—"),
			notify.FieldPhone:   orDefault(m.Phone, "—"),
			notify.FieldMessage: orDefault(m.Text, "—"),
		},
		Attachments: m.Attachments,
	}

	return s.dispatcher.Dispatch(ctx, ev)
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}

	return s
}
