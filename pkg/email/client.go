// Package email sends plain-text notifications, optionally with attachments, over SMTP.
package email

import (
	"io"
	"time"

	"gopkg.in/mail.v2"
)

// File is an attachment streamed into the message.
type File struct {
	Name string
	Body io.Reader
}

type sender interface {
	DialAndSend(m ...*mail.Message) error
}

type Client struct {
	dialer sender
	from   string
}

// NewClient creates a client dialing smtpHost:smtpPort for every message.
func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	dialer := mail.NewDialer(smtpHost, smtpPort, username, password)
	if timeout > 0 {
		dialer.Timeout = timeout
	}

	return &Client{dialer: dialer, from: from}
}

// Send mails body to the recipient with the given files attached.
func (c *Client) Send(to, subject, body string, files ...File) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	for _, f := range files {
		r := f.Body
		message.Attach(f.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, r)
			return err
		}))
	}

	return c.dialer.DialAndSend(message)
}
