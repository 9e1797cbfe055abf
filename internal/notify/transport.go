package notify

import (
	"context"
	"io"

	"github.com/aliskhannn/corpsite/pkg/email"
)

// Transport delivers text and files to one messaging endpoint.
type Transport interface {
	SendText(ctx context.Context, text string) error
	SendURL(ctx context.Context, url, caption string) error
	SendFile(ctx context.Context, filename string, body io.Reader, caption string) error
}

type telegramClient interface {
	SendMessage(ctx context.Context, chatID, text string) error
	SendDocumentURL(ctx context.Context, chatID, documentURL, caption string) error
	SendDocument(ctx context.Context, chatID, filename string, body io.Reader, caption string) error
}

// TelegramTransport sends to one Telegram chat.
type TelegramTransport struct {
	client telegramClient
	chatID string
}

func NewTelegramTransport(client telegramClient, chatID string) *TelegramTransport {
	return &TelegramTransport{client: client, chatID: chatID}
}

func (t *TelegramTransport) SendText(ctx context.Context, text string) error {
	return t.client.SendMessage(ctx, t.chatID, text)
}

func (t *TelegramTransport) SendURL(ctx context.Context, url, caption string) error {
	return t.client.SendDocumentURL(ctx, t.chatID, url, caption)
}

func (t *TelegramTransport) SendFile(ctx context.Context, filename string, body io.Reader, caption string) error {
	return t.client.SendDocument(ctx, t.chatID, filename, body, caption)
}

type emailClient interface {
	Send(to, subject, body string, files ...email.File) error
}

// EmailTransport sends every delivery as a separate mail to one mailbox.
// URL attachments are sent as links in the body.
type EmailTransport struct {
	client  emailClient
	to      string
	subject string
}

func NewEmailTransport(client emailClient, to, subject string) *EmailTransport {
	return &EmailTransport{client: client, to: to, subject: subject}
}

func (t *EmailTransport) SendText(ctx context.Context, text string) error {
	return t.send(ctx, text)
}

func (t *EmailTransport) SendURL(ctx context.Context, url, caption string) error {
	return t.send(ctx, caption+"\n"+url)
}

func (t *EmailTransport) SendFile(ctx context.Context, filename string, body io.Reader, caption string) error {
	return t.send(ctx, caption, email.File{Name: filename, Body: body})
}

// send returns when the mail is out or ctx is done, whichever comes first.
// An abandoned send keeps running until the SMTP dialer timeout.
func (t *EmailTransport) send(ctx context.Context, body string, files ...email.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- t.client.Send(t.to, t.subject, body, files...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
