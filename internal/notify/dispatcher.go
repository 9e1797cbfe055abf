// Package notify renders site events into messages and relays them, with their
// attachments, to the messaging endpoint configured for the event category.
//
// Nothing in this package returns an error to the caller: every delivery ends up as a
// Result, and one dispatch as an Outcome.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/wb-go/wbf/zlog"
)

const (
	defaultMessageTimeout = 15 * time.Second
	defaultFileTimeout    = 60 * time.Second
)

var (
	errMissingAttachment = errors.New("attachment file not found")
	errEmptyAttachment   = errors.New("attachment has no body")
	errNoEndpoint        = errors.New("no endpoint for category")
)

// EndpointConfig bounds the calls made to one endpoint.
type EndpointConfig struct {
	MessageTimeout time.Duration
	FileTimeout    time.Duration
}

// Dispatcher relays events of one category to one endpoint.
type Dispatcher struct {
	category  Category
	transport Transport
	cfg       EndpointConfig
}

// NewDispatcher creates a Dispatcher. Zero timeouts fall back to 15s for text and 60s for files.
func NewDispatcher(category Category, transport Transport, cfg EndpointConfig) *Dispatcher {
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = defaultMessageTimeout
	}

	if cfg.FileTimeout <= 0 {
		cfg.FileTimeout = defaultFileTimeout
	}

	return &Dispatcher{category: category, transport: transport, cfg: cfg}
}

// Category returns the category this dispatcher serves.
func (d *Dispatcher) Category() Category { return d.category }

// SendMessage posts text to the endpoint.
func (d *Dispatcher) SendMessage(ctx context.Context, text string) Result {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.MessageTimeout)
	defer cancel()

	if err := d.transport.SendText(ctx, text); err != nil {
		res := transportFailure(err)
		zlog.Logger.Error().Err(err).
			Str("category", string(d.category)).
			Str("kind", res.Kind.String()).
			Msg("failed to send message")
		observeMessage(d.category, res)
		return res
	}

	observeMessage(d.category, ok())

	return ok()
}

// SendAttachment relays one attachment with its caption.
func (d *Dispatcher) SendAttachment(ctx context.Context, att Attachment, caption string) Result {
	res := d.sendAttachment(ctx, att, caption)
	if !res.OK() {
		zlog.Logger.Error().Err(res.Err).
			Str("category", string(d.category)).
			Str("attachment", att.Filename()).
			Str("source", att.Kind().String()).
			Str("kind", res.Kind.String()).
			Msg("failed to send attachment")
	}

	observeAttachment(d.category, att.Kind(), res)

	return res
}

func (d *Dispatcher) sendAttachment(ctx context.Context, att Attachment, caption string) Result {
	switch att.Kind() {
	case AttachURL:
		ctx, cancel := context.WithTimeout(ctx, d.cfg.FileTimeout)
		defer cancel()

		if err := d.transport.SendURL(ctx, att.Ref(), caption); err != nil {
			return transportFailure(err)
		}

		return ok()

	case AttachLocalPath:
		info, err := os.Stat(att.Ref())
		if err != nil || !info.Mode().IsRegular() {
			return failed(KindMissingAttachment, fmt.Errorf("%w: %s", errMissingAttachment, att.Ref()))
		}

		f, err := os.Open(att.Ref())
		if err != nil {
			return failed(KindMissingAttachment, fmt.Errorf("open %s: %w", att.Ref(), err))
		}
		defer f.Close()

		return d.sendStream(ctx, att.Filename(), f, caption)

	case AttachInMemory:
		if att.body == nil {
			return failed(KindMissingAttachment, errEmptyAttachment)
		}

		if s, isSeeker := att.body.(io.Seeker); isSeeker {
			if _, err := s.Seek(0, io.SeekStart); err != nil {
				zlog.Logger.Warn().Err(err).Str("attachment", att.Filename()).Msg("failed to rewind attachment")
			}
		}

		return d.sendStream(ctx, att.Filename(), att.body, caption)

	default:
		return failed(KindMissingAttachment, fmt.Errorf("unknown attachment kind %d", att.Kind()))
	}
}

func (d *Dispatcher) sendStream(ctx context.Context, filename string, body io.Reader, caption string) Result {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.FileTimeout)
	defer cancel()

	if err := d.transport.SendFile(ctx, filename, body, caption); err != nil {
		return transportFailure(err)
	}

	return ok()
}

// DispatchEvent sends the rendered event text, then every attachment in order.
// A failed message or attachment never stops the remaining attachments.
func (d *Dispatcher) DispatchEvent(ctx context.Context, ev Event) Outcome {
	if ev.Category != d.category {
		zlog.Logger.Error().
			Str("category", string(ev.Category)).
			Str("dispatcher", string(d.category)).
			Msg("event routed to a dispatcher of another category")
		return unroutable(ev)
	}

	out := Outcome{Attachments: make([]Result, 0, len(ev.Attachments))}

	text, err := Render(ev)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("category", string(ev.Category)).Msg("failed to render event")
		out.Message = failed(KindTransport, err)
	} else {
		out.Message = d.SendMessage(ctx, text)
	}

	for _, att := range ev.Attachments {
		out.Attachments = append(out.Attachments, d.SendAttachment(ctx, att, Caption(ev, att)))
	}

	observeOutcome(d.category, out)

	zlog.Logger.Info().
		Str("category", string(d.category)).
		Str("status", string(out.Status())).
		Int("attachments", len(out.Attachments)).
		Msg("event dispatched")

	return out
}

func unroutable(ev Event) Outcome {
	out := Outcome{
		Message:     failed(KindNoEndpoint, errNoEndpoint),
		Attachments: make([]Result, len(ev.Attachments)),
	}

	for i := range out.Attachments {
		out.Attachments[i] = failed(KindNoEndpoint, errNoEndpoint)
	}

	return out
}

// Hub routes each event to the dispatcher of its category.
type Hub struct {
	dispatchers map[Category]*Dispatcher
}

// NewHub creates a Hub. A later dispatcher replaces an earlier one of the same category.
func NewHub(dispatchers ...*Dispatcher) *Hub {
	h := &Hub{dispatchers: make(map[Category]*Dispatcher, len(dispatchers))}
	for _, d := range dispatchers {
		h.dispatchers[d.Category()] = d
	}

	return h
}

// Dispatch relays the event through the dispatcher of its category.
func (h *Hub) Dispatch(ctx context.Context, ev Event) Outcome {
	d, found := h.dispatchers[ev.Category]
	if !found {
		zlog.Logger.Error().Str("category", string(ev.Category)).Msg("no endpoint configured for category")
		out := unroutable(ev)
		observeOutcome(ev.Category, out)
		return out
	}

	return d.DispatchEvent(ctx, ev)
}
