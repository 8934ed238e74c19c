package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
	"github.com/pkg/browser"
	"github.com/skratchdot/open-golang/open"
	dark "github.com/thiagokokada/dark-mode-go"
	"go.uber.org/zap"
	clipboard "golang.design/x/clipboard"
)

var (
	errHeadless  = errors.New("no display available")
	errNoLogFile = errors.New("logging to stderr only")
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
func notifyDesktop(title, body string) {
	if body == "" || headless() {
		return
	}
	_ = beeep.Notify(title, body, "")
}

// headless reports a Linux session without a display, where beeep and the
// clipboard would error.
func headless() bool {
	return runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

// desktop wraps the optional desktop integrations.
type desktop struct {
	logger       *zap.SugaredLogger
	clipboardErr error
	logPath      string

	openFile func(path string) error
	openText func(path string) error
}

func newDesktop(logger *zap.SugaredLogger, logPath string) *desktop {
	d := &desktop{
		logger:   logger.Named("desktop"),
		logPath:  logPath,
		openFile: open.Start,
		openText: browser.OpenFile,
	}
	if headless() {
		d.clipboardErr = errHeadless
		d.openFile, d.openText = nil, nil
	} else if err := clipboard.Init(); err != nil {
		d.clipboardErr = err
	}
	if d.clipboardErr != nil {
		d.logger.Warnw("Clipboard unavailable", "error", d.clipboardErr)
	}
	return d
}

// copyText places s on the system clipboard.
func (d *desktop) copyText(s string) bool {
	if d.clipboardErr != nil {
		d.logger.Debugw("Skipping clipboard copy", "error", d.clipboardErr)
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}

// reveal opens path with the default application, without waiting for it.
func (d *desktop) reveal(path string) error {
	if d.openFile == nil {
		return errHeadless
	}
	return d.openFile(path)
}

// showLog opens the current log file, which only exists outside debug runs.
func (d *desktop) showLog() error {
	if d.logPath == "" {
		return errNoLogFile
	}
	if d.openText == nil {
		return errHeadless
	}
	return d.openText(d.logPath)
}

// prefersDark asks the desktop whether a dark palette is in use, assuming
// light when it cannot tell.
func (d *desktop) prefersDark() bool {
	isDark, err := dark.IsDarkMode()
	if err != nil {
		d.logger.Debugw("Dark mode detection failed", "error", err)
		return false
	}
	return isDark
}
