package backdrop

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/disintegration/imaging"
)

// DefaultExportDir is where exports are written when no directory is set.
const DefaultExportDir = "exports"

// Export encodes img as PNG to w.
func Export(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportFile writes img as <dir>/<timestamp>_<label>.png and returns the
// path. Unsafe characters in label become underscores.
func ExportFile(dir, label string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := Export(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	Logger().Info("backdrop: export written", "path", path)
	return path, nil
}

// straightAlpha wraps premultiplied RGBA pixels, as read back from the GPU,
// and converts them to a straight-alpha NRGBA copy.
func straightAlpha(pixels []byte, w, h int) *image.NRGBA {
	premul := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	return imaging.Clone(premul)
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and turns every
// other rune into '_'. A blank label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (r == '-' || r == '.' ||
			'0' <= r && r <= '9' || 'a' <= r|0x20 && r|0x20 <= 'z') {
			return r
		}
		return '_'
	}, label)
}
