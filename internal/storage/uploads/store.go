// Package uploads stores admin-uploaded files on the local disk and maps them to public paths.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// PublicPrefix is the URL path the upload directory is served under.
const PublicPrefix = "/uploads"

var ErrEmptyName = errors.New("empty file name")

// Store saves files into a single directory.
type Store struct {
	dir string
}

// NewStore creates the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes r under a sanitized form of name, adding _1, _2... before the
// extension when the name is taken, and returns the public path of the file.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	clean := SanitizeName(name)
	if clean == "" {
		return "", ErrEmptyName
	}

	ext := filepath.Ext(clean)
	stem := strings.TrimSuffix(clean, ext)

	for i := 0; ; i++ {
		candidate := clean
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}

		f, err := os.OpenFile(filepath.Join(s.dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create upload: %w", err)
		}

		if _, err := io.Copy(f, r); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("write upload: %w", err)
		}

		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close upload: %w", err)
		}

		return path.Join(PublicPrefix, candidate), nil
	}
}

// Resolve maps a public or bare file reference to a path inside the directory.
// Only the last element of ref is used, so the result never leaves the directory.
func (s *Store) Resolve(ref string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(ref), `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		name = ""
	}

	return filepath.Join(s.dir, name)
}

// SanitizeName keeps letters, digits, dots, dashes and underscores of the base
// name, turning whitespace into underscores. A name without any usable stem gets
// a random one and keeps its extension.
func SanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))

	ext := filepath.Ext(name)
	stem := strings.Trim(keepSafe(strings.TrimSuffix(name, ext)), "._")

	ext = keepSafe(ext)
	if ext == "." {
		ext = ""
	}

	if stem == "" {
		if ext == "" {
			return ""
		}

		return uuid.NewString() + ext
	}

	return stem + ext
}

func keepSafe(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	return b.String()
}
