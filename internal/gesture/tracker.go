package gesture

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Renderer draws one straight segment between two consecutive points of a
// stroke.
type Renderer interface {
	DrawSegment(from, to Coordinate) error
}

// State is the paint state of a Tracker.
type State int

const (
	Idle State = iota
	Painting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Painting:
		return "painting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EndReason records which input event finished a gesture.
type EndReason int

const (
	EndUp EndReason = iota
	EndLeave
	EndTouch
	EndCancel
)

func (r EndReason) String() string {
	switch r {
	case EndUp:
		return "pointer-up"
	case EndLeave:
		return "pointer-leave"
	case EndTouch:
		return "touch-end"
	case EndCancel:
		return "touch-cancel"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// Tracker is the two-state paint machine. It is not safe for concurrent
// use; all calls are expected on the UI event goroutine.
type Tracker struct {
	renderer Renderer
	logger   *slog.Logger

	state   State
	last    Coordinate
	hasLast bool

	// per-gesture bookkeeping, used for logging only
	id       string
	source   Source
	segments int
}

// NewTracker returns an idle tracker drawing through r. A nil logger
// discards all output.
func NewTracker(r Renderer, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{renderer: r, logger: logger}
}

// State reports whether a gesture is active.
func (t *Tracker) State() State {
	return t.state
}

// Last returns the most recent coordinate of the active gesture.
func (t *Tracker) Last() (Coordinate, bool) {
	return t.last, t.hasLast
}

// Source reports which device started the active gesture.
func (t *Tracker) Source() Source {
	return t.source
}

// Down starts a gesture at ev. The first point is only recorded; nothing
// is drawn until the pointer moves. A Down while painting restarts the
// gesture at the new point.
func (t *Tracker) Down(ev PointerEvent) {
	if t.state == Painting {
		t.finish("restart")
	}
	t.state = Painting
	t.last = ev.Coordinate()
	t.hasLast = true
	t.id = uuid.NewString()
	t.source = ev.Source
	t.segments = 0
	t.logger.Debug("gesture started",
		"gesture", t.id, "source", ev.Source, "at", t.last)
}

// Move extends the active gesture to ev, drawing one segment from the
// previous point. Moves while idle, and moves that do not change the
// position, are ignored. It reports whether a segment was drawn.
func (t *Tracker) Move(ev PointerEvent) bool {
	if t.state != Painting || !t.hasLast {
		return false
	}
	next := ev.Coordinate()
	if next == t.last {
		return false
	}
	from := t.last
	t.last = next
	if err := t.renderer.DrawSegment(from, next); err != nil {
		t.logger.Warn("draw segment failed",
			"gesture", t.id, "from", from, "to", next, "err", err)
		return false
	}
	t.segments++
	return true
}

// End finishes the active gesture. It reports whether a gesture was active.
func (t *Tracker) End(reason EndReason) bool {
	if t.state != Painting {
		return false
	}
	t.finish(reason.String())
	return true
}

// Reset drops any active gesture without logging it as finished. It is
// used when the surface goes away.
func (t *Tracker) Reset() {
	t.state = Idle
	t.last = Coordinate{}
	t.hasLast = false
	t.id = ""
	t.segments = 0
}

func (t *Tracker) finish(reason string) {
	t.logger.Debug("gesture ended",
		"gesture", t.id, "source", t.source, "reason", reason, "segments", t.segments)
	t.Reset()
}
