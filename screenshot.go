package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotDir is where captured frames are written.
var ScreenshotDir = "screenshots"

// saveScreenshot writes img as a timestamped PNG and returns its path.
func saveScreenshot(dir string, img image.Image, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %v: %w", dir, err)
	}
	fn := filepath.Join(dir, fmt.Sprintf("rangeseek__%s.png", now.Format("2006-01-02-15-04-05")))
	f, err := os.Create(fn)
	if err != nil {
		return "", fmt.Errorf("create %v: %w", fn, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode %v: %w", fn, err)
	}
	return fn, nil
}

// takeScreenshot captures the frame that was just drawn.
func (g *Game) takeScreenshot(screen image.Image) {
	fn, err := saveScreenshot(ScreenshotDir, screen, time.Now())
	if err != nil {
		g.logger.Errorw("Screenshot failed", "error", err)
		g.setStatus("Screenshot failed")
		return
	}
	g.logger.Infow("Screenshot saved", "path", fn)
	g.setStatus("Snapshot taken: " + filepath.Base(fn))
	if err := g.desk.reveal(fn); err != nil {
		g.logger.Debugw("Not opening screenshot", "path", fn, "error", err)
	}
}
