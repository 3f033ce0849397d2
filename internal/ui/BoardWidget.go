package ui

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"Sketchpad/internal/gesture"
	"Sketchpad/internal/surface"
)

const minSide = 64

// BoardWidget is a full-window paint surface. Pointer and touch events
// drive a gesture.Tracker; segments land on a surface.Surface that is
// allocated when the widget is mounted and released when it is destroyed.
type BoardWidget struct {
	widget.BaseWidget

	logger  *slog.Logger
	initial surface.Size
	tracker *gesture.Tracker

	mu      sync.Mutex
	mounted bool
	surface *surface.Surface
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)
var _ gesture.Renderer = (*BoardWidget)(nil)

// NewBoardWidget creates an unmounted board. A zero initial size means the
// surface takes the size of the first layout it receives.
func NewBoardWidget(initial surface.Size, logger *slog.Logger) *BoardWidget {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &BoardWidget{
		logger:  logger,
		initial: initial,
	}
	b.tracker = gesture.NewTracker(b, logger)
	b.ExtendBaseWidget(b)
	return b
}

// DrawSegment forwards to the mounted surface. Without one it does nothing.
func (b *BoardWidget) DrawSegment(from, to gesture.Coordinate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.surface == nil {
		return nil
	}
	return b.surface.DrawSegment(from, to)
}

// SurfaceSize reports the bitmap size, if a surface exists.
func (b *BoardWidget) SurfaceSize() (surface.Size, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.surface == nil {
		return surface.Size{}, false
	}
	return b.surface.Size(), true
}

// Snapshot returns a copy of the bitmap, or nil when unmounted.
func (b *BoardWidget) Snapshot() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.surface == nil {
		return nil
	}
	return b.surface.Image()
}

// Clear wipes the drawing and drops any gesture in progress.
func (b *BoardWidget) Clear() {
	b.mu.Lock()
	if b.surface == nil {
		b.mu.Unlock()
		return
	}
	b.surface.Clear()
	b.mu.Unlock()

	b.tracker.Reset()
	b.logger.Info("surface cleared")
	b.Refresh()
}

func (b *BoardWidget) isMounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mounted && b.surface != nil
}

// mount allocates the surface at the configured size, or at the widget's
// current size when it is remounted after a destroy.
func (b *BoardWidget) mount() {
	size := b.initial
	if size.Width <= 0 || size.Height <= 0 {
		size = toSurfaceSize(b.Size())
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.mounted = true
	if b.surface != nil || size.Width <= 0 || size.Height <= 0 {
		return
	}
	s, err := surface.New(size)
	if err != nil {
		b.logger.Warn("surface allocation failed", "size", size, "err", err)
		return
	}
	b.surface = s
	b.logger.Debug("board mounted", "size", size)
}

func (b *BoardWidget) unmount() {
	b.mu.Lock()
	if b.surface != nil {
		if err := b.surface.Close(); err != nil {
			b.logger.Warn("surface close failed", "err", err)
		}
	}
	b.surface = nil
	b.mounted = false
	b.mu.Unlock()

	b.tracker.Reset()
	b.logger.Debug("board unmounted")
}

// viewportResized keeps the surface the same size as the widget. The first
// valid size allocates the surface when no explicit size was configured.
func (b *BoardWidget) viewportResized(size fyne.Size) {
	target := toSurfaceSize(size)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mounted {
		return
	}
	if b.surface == nil {
		s, err := surface.New(target)
		if err != nil {
			b.logger.Debug("ignoring layout", "size", target, "err", err)
			return
		}
		b.surface = s
		b.logger.Debug("board mounted", "size", target)
		return
	}

	from := b.surface.Size()
	if err := b.surface.Resize(target); err != nil {
		b.logger.Debug("ignoring resize", "size", target, "err", err)
		return
	}
	if from != target {
		b.logger.Debug("surface resized", "from", from, "to", target)
	}
}

func toSurfaceSize(size fyne.Size) surface.Size {
	return surface.Size{
		Width:  int(math.Round(float64(size.Width))),
		Height: int(math.Round(float64(size.Height))),
	}
}

// offset is the window-space position of the board's top-left corner.
func (b *BoardWidget) offset() gesture.Coordinate {
	a := fyne.CurrentApp()
	if a == nil {
		return gesture.Coordinate{}
	}
	return toCoordinate(a.Driver().AbsolutePositionForObject(b))
}

func toCoordinate(p fyne.Position) gesture.Coordinate {
	return gesture.Coordinate{X: p.X, Y: p.Y}
}

func (b *BoardWidget) pointer(src gesture.Source, e fyne.PointEvent) gesture.PointerEvent {
	return gesture.PointerEvent{
		Source: src,
		Raw:    toCoordinate(e.AbsolutePosition),
		Offset: b.offset(),
	}
}

func (b *BoardWidget) down(ev gesture.PointerEvent) {
	if !b.isMounted() {
		return
	}
	b.tracker.Down(ev)
}

func (b *BoardWidget) move(ev gesture.PointerEvent) {
	if !b.isMounted() {
		return
	}
	if b.tracker.Move(ev) {
		b.Refresh()
	}
}

func (b *BoardWidget) end(reason gesture.EndReason) {
	b.tracker.End(reason)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.down(b.pointer(gesture.SourceMouse, e.PointEvent))
}

func (b *BoardWidget) MouseUp(*desktop.MouseEvent) {
	b.end(gesture.EndUp)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.move(b.pointer(gesture.SourceMouse, e.PointEvent))
}

func (b *BoardWidget) MouseOut() {
	b.end(gesture.EndLeave)
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.down(b.pointer(gesture.SourceTouch, e.PointEvent))
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.end(gesture.EndTouch)
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.end(gesture.EndCancel)
}

// Dragged carries touch movement, and mouse movement with a button held.
// Handling drags also stops the window from scrolling under a finger.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.move(b.pointer(b.tracker.Source(), e.PointEvent))
}

func (b *BoardWidget) DragEnd() {
	if b.tracker.Source() == gesture.SourceTouch {
		b.end(gesture.EndTouch)
		return
	}
	b.end(gesture.EndUp)
}

func (b *BoardWidget) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	b.mount()
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		if img := b.Snapshot(); img != nil {
			return img
		}
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	})
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
	r.board.viewportResized(size)
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minSide, minSide)
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {
	r.board.unmount()
}
