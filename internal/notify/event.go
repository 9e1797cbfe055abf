package notify

import (
	"io"
	"path/filepath"
	"strings"
)

// Category selects the template and the endpoint an event goes to.
type Category string

const (
	CategoryContact            Category = "contact"
	CategoryVacancyApplication Category = "vacancy-application"
)

// Field names used in Event.Fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldMessage  = "message"
	FieldNote     = "note"
	FieldVacancy  = "vacancy"
	FieldLocation = "location"
)

// Event is one notification to render and relay.
type Event struct {
	Category    Category
	Fields      map[string]string
	Attachments []Attachment
}

// Field returns the named field or an empty string.
func (e Event) Field(name string) string {
	return e.Fields[name]
}

// AttachmentKind tells how an attachment reaches the endpoint.
type AttachmentKind int

const (
	AttachURL AttachmentKind = iota + 1
	AttachLocalPath
	AttachInMemory
)

func (k AttachmentKind) String() string {
	switch k {
	case AttachURL:
		return "url"
	case AttachLocalPath:
		return "local_path"
	case AttachInMemory:
		return "in_memory"
	default:
		return "unknown"
	}
}

// Attachment is a file to relay with an event. Build it with URL, LocalPath or InMemory.
type Attachment struct {
	kind     AttachmentKind
	ref      string
	filename string
	body     io.Reader
}

// URL references a remote file the endpoint fetches by itself.
func URL(u string) Attachment {
	return Attachment{kind: AttachURL, ref: u, filename: u}
}

// LocalPath references a file on the server's disk.
func LocalPath(p string) Attachment {
	return Attachment{kind: AttachLocalPath, ref: p, filename: filepath.Base(p)}
}

// InMemory wraps an uploaded stream. A body implementing io.Seeker is rewound before sending.
func InMemory(filename string, body io.Reader) Attachment {
	if filename == "" {
		filename = "file"
	}

	return Attachment{kind: AttachInMemory, filename: filename, body: body}
}

// ParseRef maps a free-text reference to a URL attachment when it carries an http(s)
// scheme and to a local path otherwise.
func ParseRef(ref string) Attachment {
	ref = strings.TrimSpace(ref)
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return URL(ref)
	}

	return LocalPath(ref)
}

func (a Attachment) Kind() AttachmentKind { return a.kind }

// Ref is the URL or the local path, empty for in-memory attachments.
func (a Attachment) Ref() string { return a.ref }

// Filename is the name shown to the recipient.
func (a Attachment) Filename() string { return a.filename }
