// Package form extracts notification attachments from multipart submissions.
package form

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/notify"
)

// Attachments collects uploaded files under fileKeys followed by references listed
// one per line under refKeys. URLs are kept as is; anything else is resolved
// with resolve into a local path. The returned closer releases the opened files.
func Attachments(
	c *ginext.Context,
	fileKeys, refKeys []string,
	resolve func(string) string,
) ([]notify.Attachment, func(), error) {
	var (
		atts   []notify.Attachment
		opened []multipart.File
	)

	closeAll := func() {
		for _, f := range opened {
			if err := f.Close(); err != nil {
				zlog.Logger.Warn().Err(err).Msg("failed to close uploaded file")
			}
		}
	}

	mf, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, closeAll, fmt.Errorf("parse multipart form: %w", err)
	}

	if mf != nil {
		for _, key := range fileKeys {
			for _, fh := range mf.File[key] {
				if fh.Filename == "" {
					continue
				}

				f, err := fh.Open()
				if err != nil {
					closeAll()
					return nil, func() {}, fmt.Errorf("open uploaded file %q: %w", fh.Filename, err)
				}

				opened = append(opened, f)
				atts = append(atts, notify.InMemory(fh.Filename, f))
			}
		}
	}

	for _, key := range refKeys {
		for _, line := range strings.Split(c.PostForm(key), "\n") {
			ref := strings.TrimSpace(line)
			if ref == "" {
				continue
			}

			att := notify.ParseRef(ref)
			if att.Kind() == notify.AttachLocalPath && resolve != nil {
				att = notify.LocalPath(resolve(ref))
			}

			atts = append(atts, att)
		}
	}

	return atts, closeAll, nil
}
