package dto

import "github.com/aliskhannn/corpsite/internal/notify"

// OutcomeResponse reports how a form submission was delivered.
type OutcomeResponse struct {
	Status        notify.Status `json:"status"`
	Message       string        `json:"message"`
	MessageOK     bool          `json:"message_ok"`
	AttachmentsOK []bool        `json:"attachments_ok"`
}

var (
	ContactMessages = map[notify.Status]string{
		notify.StatusSuccess: "Сообщение и вложения отправлены!",
		notify.StatusPartial: "Сообщение отправлено, но часть файлов отправить не удалось.",
		notify.StatusFailure: "Не удалось отправить сообщение. Попробуйте ещё раз.",
	}

	ApplicationMessages = map[notify.Status]string{
		notify.StatusSuccess: "Отклик отправлен HR",
		notify.StatusPartial: "Отклик отправлен HR, но часть файлов отправить не удалось.",
		notify.StatusFailure: "Не удалось отправить отклик, попробуйте ещё раз",
	}
)

func NewOutcomeResponse(o notify.Outcome, messages map[notify.Status]string) OutcomeResponse {
	status := o.Status()

	return OutcomeResponse{
		Status:        status,
		Message:       messages[status],
		MessageOK:     o.MessageOK(),
		AttachmentsOK: o.AttachmentsOK(),
	}
}
