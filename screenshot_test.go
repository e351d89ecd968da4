package floaty

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-resume", "after-resume"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	v := NewView(nil)
	v.Screenshot("a")
	v.Screenshot("b")
	v.Screenshot("c")
	if len(v.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(v.screenshotQueue))
	}
	if v.screenshotQueue[0] != "a" || v.screenshotQueue[1] != "b" || v.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", v.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	v := NewView(nil)
	if v.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", v.ScreenshotDir, "screenshots")
	}
}

func TestScreenshotPath(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := screenshotPath("shots", at, "after resume")
	want := filepath.Join("shots", "20240309_140507_after_resume.png")
	if got != want {
		t.Errorf("screenshotPath = %q, want %q", got, want)
	}
}

func TestSaveFrameWritesStraightAlpha(t *testing.T) {
	// Premultiplied pixels, as Ebitengine reads them back.
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	copy(img.Pix, []byte{
		255, 0, 0, 255,
		64, 32, 0, 128,
		0, 0, 0, 0,
	})
	dir := t.TempDir()
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	if err := saveFrame(img, dir, at, []string{"one", "two"}); err != nil {
		t.Fatalf("saveFrame: %v", err)
	}

	for _, label := range []string{"one", "two"} {
		f, err := os.Open(screenshotPath(dir, at, label))
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", label, err)
		}
		if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 1 {
			t.Fatalf("bounds = %v, want 3x1", b)
		}
		want := []color.NRGBA{
			{255, 0, 0, 255},
			{127, 63, 0, 128},
			{0, 0, 0, 0},
		}
		for x, w := range want {
			got := color.NRGBAModel.Convert(decoded.At(x, 0)).(color.NRGBA)
			if got != w {
				t.Errorf("%s pixel %d = %v, want %v", label, x, got, w)
			}
		}
	}
}

func TestSaveFrameReportsEveryFailure(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	missing := filepath.Join(t.TempDir(), "missing")
	err := saveFrame(img, missing, time.Now(), []string{"a", "b"})
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	for _, label := range []string{"_a.png", "_b.png"} {
		if !strings.Contains(err.Error(), label) {
			t.Errorf("error %q should mention %s", err, label)
		}
	}
}

func TestWritePNGBadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	err := writePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), img)
	if err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestFlushScreenshotsLogsFailure(t *testing.T) {
	buf := captureDebug(t)
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	v := NewView(nil)
	v.ScreenshotDir = filepath.Join(file, "shots")
	v.Screenshot("lost")
	v.flushScreenshots(ebiten.NewImage(2, 2))

	if len(v.screenshotQueue) != 0 {
		t.Errorf("queue = %v, want empty after flush", v.screenshotQueue)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "[floaty] screenshot: mkdir") {
		t.Errorf("output = %q, want a [floaty] screenshot mkdir error", out)
	}
}
