// Package debug writes captured frames to disk.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture names and writes PNG captures.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
	last      string
}

// NewScreenshotCapture creates a capture writer for outputDir. Files are
// named <prefix>_<timestamp>.png.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	if prefix == "" {
		prefix = "capture"
	}
	return &ScreenshotCapture{outputDir: outputDir, prefix: prefix, now: time.Now}
}

// Last returns the path of the most recent capture, if any.
func (sc *ScreenshotCapture) Last() string { return sc.last }

// FlipRows converts bottom-up RGBA rows (GL read-back order) into a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d for %dx%d, got %d",
			width*height*4, width, height, len(pixels))
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// CaptureFromImage writes img as a PNG. A failed write leaves no file
// behind.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.nextFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(filename)
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(filename)
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}
	sc.last = filename
	return filename, nil
}

// nextFilename stamps the name to the millisecond and appends a counter
// when two captures land on the same stamp.
func (sc *ScreenshotCapture) nextFilename() string {
	stamp := sc.now().Format("2006-01-02_15-04-05.000")
	name := filepath.Join(sc.outputDir, fmt.Sprintf("%s_%s.png", sc.prefix, stamp))
	for i := 2; fileExists(name); i++ {
		name = filepath.Join(sc.outputDir, fmt.Sprintf("%s_%s_%d.png", sc.prefix, stamp, i))
	}
	return name
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
