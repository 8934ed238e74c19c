package main

import (
	"errors"
	"image"

	"github.com/sqweek/dialog"

	"rangeseek/eui"
)

var errThumbDialogCancelled = errors.New("thumb dialog cancelled")

// pickThumbFile asks for a thumb image with the native file dialog.
func pickThumbFile() (string, error) {
	filename, err := dialog.File().Title("Choose thumb image").
		Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "webp").Load()
	if err != nil {
		if err == dialog.Cancelled {
			return "", errThumbDialogCancelled
		}
		return "", err
	}
	return filename, nil
}

type thumbPick struct {
	path string
	err  error
}

// chooseThumb opens the picker off the game loop. The result is applied by
// drainThumbPicks so bars are only touched from Update.
func (g *Game) chooseThumb() {
	if g.pickingThumb {
		return
	}
	g.pickingThumb = true
	pick := g.pickThumb
	go func() {
		path, err := pick()
		g.thumbPicks <- thumbPick{path: path, err: err}
	}()
}

func (g *Game) drainThumbPicks() {
	select {
	case res := <-g.thumbPicks:
		g.pickingThumb = false
		g.applyThumbPick(res)
	default:
	}
}

func (g *Game) applyThumbPick(res thumbPick) {
	switch {
	case errors.Is(res.err, errThumbDialogCancelled), res.err == nil && res.path == "":
		g.setStatus("Thumb unchanged")
		return
	case res.err != nil:
		g.logger.Warnw("Thumb dialog failed", "error", res.err)
		g.setStatus("Thumb dialog unavailable")
		return
	}
	if err := g.setThumb(res.path); err != nil {
		g.logger.Warnw("Failed to load thumb image", "path", res.path, "error", err)
		g.setStatus("Could not load thumb image")
		return
	}
	g.setStatus("Thumb image updated")
}

// setThumb loads path for every bar whose config does not name its own thumb.
// Nothing changes unless every load succeeds.
func (g *Game) setThumb(path string) error {
	bars := map[*eui.RangeBar]barConfig{g.price: g.cfg.Price, g.trim: g.cfg.Trim}
	loaded := make(map[*eui.RangeBar]image.Image, len(bars))
	for rb, bc := range bars {
		if bc.ThumbNormal != "" {
			continue
		}
		img, err := eui.LoadThumb(path, bc.ThumbSize)
		if err != nil {
			return err
		}
		loaded[rb] = img
	}
	for rb, img := range loaded {
		rb.Bar().SetThumbImages(img)
	}
	g.thumbPath = path
	g.logger.Infow("Thumb image set", "path", path)
	return nil
}
