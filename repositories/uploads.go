package repositories

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUploadType     = errors.New("file type not allowed")
	ErrUploadTooLarge = errors.New("file exceeds size limit")
)

// allowedUploadTypes maps accepted MIME types to a default extension, used
// when the uploaded name carries no usable one.
var allowedUploadTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// allowedUploadExts is the extension allow-list for original file names.
var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

// UploadRepository writes uploaded assets into a single directory with
// generated names. The filesystem path is the only identity; no metadata
// record is kept.
type UploadRepository struct {
	dir            string
	publicBasePath string
	maxBytes       int64
	now            func() time.Time
}

func NewUploadRepository(dir, publicBasePath string, maxBytes int64) (*UploadRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &UploadRepository{
		dir:            dir,
		publicBasePath: strings.TrimRight(publicBasePath, "/"),
		maxBytes:       maxBytes,
		now:            time.Now,
	}, nil
}

// MaxBytes is the hard upload ceiling, exposed so the handler can cap the
// multipart reader before buffering.
func (r *UploadRepository) MaxBytes() int64 { return r.maxBytes }

// Dir is the directory uploads land in, for static serving.
func (r *UploadRepository) Dir() string { return r.dir }

// Store writes the file and returns its public URL. The generated name is a
// UTC timestamp plus a random suffix, keeping the original extension when
// it is allow-listed; collisions are negligible, not impossible, which is
// fine for a single-admin site.
func (r *UploadRepository) Store(data []byte, mimeType, originalName string) (string, error) {
	ext, ok := allowedUploadTypes[normalizeMime(mimeType)]
	if !ok {
		return "", ErrUploadType
	}
	if orig := strings.ToLower(filepath.Ext(originalName)); allowedUploadExts[orig] {
		ext = orig
	}
	if int64(len(data)) > r.maxBytes {
		return "", ErrUploadTooLarge
	}

	name := fmt.Sprintf("%s-%s%s",
		r.now().UTC().Format("20060102T150405"),
		uuid.NewString()[:8],
		ext,
	)

	if err := os.WriteFile(filepath.Join(r.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path.Join(r.publicBasePath, name), nil
}

// normalizeMime strips parameters like "; charset=binary" and lowercases.
func normalizeMime(mimeType string) string {
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
