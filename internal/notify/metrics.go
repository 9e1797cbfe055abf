package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_messages_total",
		Help: "Messages sent to messaging endpoints.",
	}, []string{"category", "result"})

	attachmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_attachments_total",
		Help: "Attachments sent to messaging endpoints.",
	}, []string{"category", "source", "result"})

	dispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_dispatches_total",
		Help: "Dispatched events by user-facing status.",
	}, []string{"category", "status"})
)

func observeMessage(c Category, r Result) {
	messagesTotal.WithLabelValues(string(c), r.Kind.String()).Inc()
}

func observeAttachment(c Category, k AttachmentKind, r Result) {
	attachmentsTotal.WithLabelValues(string(c), k.String(), r.Kind.String()).Inc()
}

func observeOutcome(c Category, o Outcome) {
	dispatchesTotal.WithLabelValues(string(c), string(o.Status())).Inc()
}
