package notify

import (
	"context"
	"errors"
	"net"
)

// ErrorKind classifies a failed delivery.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTransport
	KindTimeout
	KindMissingAttachment
	KindNoEndpoint
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindMissingAttachment:
		return "missing_attachment"
	case KindNoEndpoint:
		return "no_endpoint"
	default:
		return "unknown"
	}
}

// Result is the outcome of one delivery.
type Result struct {
	Kind ErrorKind
	Err  error
}

func (r Result) OK() bool { return r.Kind == KindNone }

func ok() Result { return Result{Kind: KindNone} }

func failed(kind ErrorKind, err error) Result {
	return Result{Kind: kind, Err: err}
}

// transportFailure tells timeouts apart from other transport errors.
func transportFailure(err error) Result {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return failed(KindTimeout, err)
	}

	return failed(KindTransport, err)
}

// Status is the user-facing summary of an Outcome.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailure Status = "failure"
)

// Outcome aggregates the message result and every attachment result of one dispatch.
type Outcome struct {
	Message     Result
	Attachments []Result
}

func (o Outcome) MessageOK() bool { return o.Message.OK() }

// AttachmentsOK returns one flag per attachment, in event order.
func (o Outcome) AttachmentsOK() []bool {
	flags := make([]bool, len(o.Attachments))
	for i, r := range o.Attachments {
		flags[i] = r.OK()
	}

	return flags
}

// Status is failure when the message failed, partial when any attachment failed and
// success otherwise.
func (o Outcome) Status() Status {
	if !o.MessageOK() {
		return StatusFailure
	}

	for _, r := range o.Attachments {
		if !r.OK() {
			return StatusPartial
		}
	}

	return StatusSuccess
}
