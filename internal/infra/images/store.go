package images

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"

	_ "image/gif"
	_ "image/png"

	"minibook/internal/pkg/config"
	"minibook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Max accepted cover dimensions in pixels. Larger uploads are rejected,
// never resized.
const (
	maxWidth  = 1080
	maxHeight = 1080
)

var (
	ErrInvalidBase64      = errors.New("invalid base64 encoding")
	ErrInvalidImage       = errors.New("problem during image creation")
	ErrResolutionTooLarge = errors.New("invalid image resolution")
	ErrNotFound           = errors.New("image resource not found")
)

var resourceIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// Store keeps book cover images as JPEG files named by an opaque resource
// id under a single directory.
type Store struct {
	dir string
}

func NewStore(cfg config.ImageConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create image directory")
	}
	return &Store{dir: cfg.Dir}, nil
}

// Save decodes a base64 payload, enforces the resolution limit and persists
// the picture as JPEG. Returns the generated resource id.
func (s *Store) Save(picB64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(picB64)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidBase64)
	}

	imgCfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", errs.Mark(err, ErrInvalidImage)
	}
	if imgCfg.Width > maxWidth || imgCfg.Height > maxHeight {
		return "", ErrResolutionTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", errs.Mark(err, ErrInvalidImage)
	}

	u := uuid.New()
	resID := hex.EncodeToString(u[:])

	f, err := os.Create(s.pathFor(resID))
	if err != nil {
		return "", errs.Mark(err, ErrInvalidImage)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", errs.Mark(err, ErrInvalidImage)
	}
	return resID, nil
}

// Path resolves a resource id to its file path. Ids are constrained to the
// generated hex form so a request can never escape the image directory.
func (s *Store) Path(resID string) (string, error) {
	if !resourceIDPattern.MatchString(resID) {
		return "", ErrNotFound
	}
	p := s.pathFor(resID)
	if _, err := os.Stat(p); err != nil {
		return "", ErrNotFound
	}
	return p, nil
}

// RemoveAll erases every stored image. Used by the server manager only.
func (s *Store) RemoveAll() error {
	return os.RemoveAll(s.dir)
}

func (s *Store) pathFor(resID string) string {
	return filepath.Join(s.dir, resID+".jpg")
}
