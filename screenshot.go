package floaty

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a PNG capture of the frame drawn by the next Draw call.
// Files land in ScreenshotDir as <timestamp>_<label>.png.
func (v *View) Screenshot(label string) {
	v.screenshotQueue = append(v.screenshotQueue, label)
}

// flushScreenshots writes one file per queued label and empties the queue.
// Failures are logged; the frame is never interrupted.
func (v *View) flushScreenshots(screen *ebiten.Image) {
	if len(v.screenshotQueue) == 0 {
		return
	}
	labels := v.screenshotQueue
	v.screenshotQueue = v.screenshotQueue[:0]

	if err := os.MkdirAll(v.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", v.ScreenshotDir, err)
		return
	}
	if err := saveFrame(capture(screen), v.ScreenshotDir, time.Now(), labels); err != nil {
		logf("screenshot: %v", err)
	}
}

// capture copies screen's pixels into an image. Ebitengine pixels are
// premultiplied, which is exactly what image.RGBA holds, so the PNG encoder
// does the conversion to straight alpha.
func capture(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

// saveFrame writes img once per label under dir, which must exist.
func saveFrame(img image.Image, dir string, at time.Time, labels []string) error {
	var errs []error
	for _, label := range labels {
		if err := writePNG(screenshotPath(dir, at, label), img); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func screenshotPath(dir string, at time.Time, label string) string {
	return filepath.Join(dir, at.Format("20060102_150405")+"_"+sanitizeLabel(label)+".png")
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', and turns anything else
// into '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
