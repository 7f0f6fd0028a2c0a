package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/irfansharif/kurs/internal/raster"
)

// writeSnapshot saves buf as a PNG in the working directory, stretched to
// w×h so it matches what the window shows on high-DPI displays.
func writeSnapshot(buf *raster.Buffer, w, h int) (string, error) {
	if w <= 0 || h <= 0 {
		w, h = buf.Width(), buf.Height()
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	buf.ScaleInto(dst)

	path := fmt.Sprintf("kurs-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating snapshot: %w", err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing snapshot: %w", err)
	}
	runtimeLogger.Printf("snapshot %dx%d written to %s", w, h, path)
	return path, nil
}
