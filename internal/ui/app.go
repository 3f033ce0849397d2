package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"Sketchpad/internal/config"
	"Sketchpad/internal/surface"
)

// Window size used when the configuration leaves the viewport size open.
const (
	defaultWidth  = 1024
	defaultHeight = 768
)

// ClearShortcut wipes the board.
var ClearShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyDelete,
	Modifier: fyne.KeyModifierShortcutDefault,
}

// NewWindow builds the board window inside a. The board fills the whole
// window and follows it when the window is resized.
func NewWindow(a fyne.App, cfg config.Config, logger *slog.Logger) (fyne.Window, *BoardWidget) {
	size := fyne.NewSize(defaultWidth, defaultHeight)
	var initial surface.Size
	if cfg.HasSize() {
		size = fyne.NewSize(float32(cfg.Width), float32(cfg.Height))
		initial = surface.Size{Width: cfg.Width, Height: cfg.Height}
	}

	board := NewBoardWidget(initial, logger)

	w := a.NewWindow(cfg.Title)
	w.SetPadded(false)
	w.SetContent(board)
	w.Resize(size)
	w.Canvas().AddShortcut(ClearShortcut, func(fyne.Shortcut) {
		board.Clear()
	})
	return w, board
}

// RunApp opens the board window and blocks until it is closed.
func RunApp(cfg config.Config, logger *slog.Logger) {
	a := app.New()
	w, _ := NewWindow(a, cfg, logger)
	logger.Info("starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	w.ShowAndRun()
}
