// Package surface holds the paint bitmap and renders stroke segments onto it.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"Sketchpad/internal/gesture"
)

// StrokeColor and StrokeWidth are the only stroke style.
var StrokeColor = color.NRGBA{R: 255, A: 255}

const StrokeWidth = 5.0

// ErrInvalidSize is returned for non-positive surface dimensions.
var ErrInvalidSize = errors.New("surface: invalid size")

// Size is a surface size in pixels.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (s Size) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Surface is a transparent RGBA bitmap that stroke segments are drawn on.
type Surface struct {
	dc   *gg.Context
	size Size
}

var _ gesture.Renderer = (*Surface)(nil)

// New allocates a blank surface.
func New(size Size) (*Surface, error) {
	if !size.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	return &Surface{
		dc:   gg.NewContext(size.Width, size.Height),
		size: size,
	}, nil
}

// Size returns the current bitmap dimensions.
func (s *Surface) Size() Size {
	return s.size
}

// DrawSegment strokes a single straight line from one point to the next.
// Each call is rendered immediately; consecutive segments meet at round
// ends so a stroke looks continuous.
func (s *Surface) DrawSegment(from, to gesture.Coordinate) error {
	s.dc.SetColor(StrokeColor)
	s.dc.SetLineWidth(StrokeWidth)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.MoveTo(float64(from.X), float64(from.Y))
	s.dc.LineTo(float64(to.X), float64(to.Y))
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("surface: stroke %v-%v: %w", from, to, err)
	}
	return nil
}

// Resize changes the bitmap dimensions and keeps the existing pixels
// anchored at the origin. Content outside a smaller surface is lost; the
// new area of a larger surface is left transparent.
func (s *Surface) Resize(size Size) error {
	if !size.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	if size == s.size {
		return nil
	}

	_ = s.dc.FlushGPU()
	snapshot := s.dc.ResizeTarget().ToImage()

	if err := s.dc.Resize(size.Width, size.Height); err != nil {
		return fmt.Errorf("surface: resize to %s: %w", size, err)
	}
	s.size = size

	pm := s.dc.ResizeTarget()
	dst := &image.RGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
	draw.Draw(dst, snapshot.Bounds(), snapshot, image.Point{}, draw.Src)
	return nil
}

// Clear wipes the bitmap back to transparent.
func (s *Surface) Clear() {
	s.dc.Clear()
}

// Image returns a copy of the current bitmap.
func (s *Surface) Image() *image.RGBA {
	_ = s.dc.FlushGPU()
	return s.dc.ResizeTarget().ToImage()
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
