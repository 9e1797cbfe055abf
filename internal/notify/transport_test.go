package notify

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/corpsite/pkg/email"
)

type fakeMailer struct {
	release chan struct{}
	err     error

	to, subject, body string
	files             []email.File
}

func (m *fakeMailer) Send(to, subject, body string, files ...email.File) error {
	if m.release != nil {
		<-m.release
	}

	m.to, m.subject, m.body, m.files = to, subject, body, files

	return m.err
}

func TestEmailTransport_SendFile(t *testing.T) {
	m := &fakeMailer{}
	tr := NewEmailTransport(m, "hr@example.com", "Отклик")

	err := tr.SendFile(context.Background(), "cv.pdf", strings.NewReader("%PDF"), "Резюме")
	require.NoError(t, err)

	assert.Equal(t, "hr@example.com", m.to)
	assert.Equal(t, "Отклик", m.subject)
	assert.Equal(t, "Резюме", m.body)
	require.Len(t, m.files, 1)
	assert.Equal(t, "cv.pdf", m.files[0].Name)

	b, err := io.ReadAll(m.files[0].Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b))
}

func TestEmailTransport_SendURL(t *testing.T) {
	m := &fakeMailer{}
	tr := NewEmailTransport(m, "info@example.com", "Заявка")

	require.NoError(t, tr.SendURL(context.Background(), "https://cdn.example.com/a.pdf", "Файл"))
	assert.Equal(t, "Файл\nhttps://cdn.example.com/a.pdf", m.body)
	assert.Empty(t, m.files)
}

func TestEmailTransport_ClientError(t *testing.T) {
	boom := errors.New("smtp: 550")
	tr := NewEmailTransport(&fakeMailer{err: boom}, "info@example.com", "Заявка")

	assert.ErrorIs(t, tr.SendText(context.Background(), "hi"), boom)
}

func TestEmailTransport_HungServerHonorsDeadline(t *testing.T) {
	m := &fakeMailer{release: make(chan struct{})}
	defer close(m.release)

	tr := NewEmailTransport(m, "info@example.com", "Заявка")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := tr.SendFile(ctx, "cv.pdf", strings.NewReader("x"), "")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEmailTransport_CanceledBeforeSend(t *testing.T) {
	m := &fakeMailer{}
	tr := NewEmailTransport(m, "info@example.com", "Заявка")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, tr.SendText(ctx, "hi"), context.Canceled)
	assert.Empty(t, m.to)
}

func TestDispatcher_EmailTimeout(t *testing.T) {
	m := &fakeMailer{release: make(chan struct{})}
	defer close(m.release)

	d := NewDispatcher(CategoryContact, NewEmailTransport(m, "info@example.com", "Заявка"),
		EndpointConfig{MessageTimeout: 10 * time.Millisecond})

	res := d.SendMessage(context.Background(), "hi")
	assert.Equal(t, KindTimeout, res.Kind)
}
