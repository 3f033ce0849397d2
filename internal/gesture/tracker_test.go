package gesture

import (
	"errors"
	"testing"
)

type segment struct {
	from, to Coordinate
}

type recorder struct {
	segments []segment
	err      error
}

func (r *recorder) DrawSegment(from, to Coordinate) error {
	if r.err != nil {
		return r.err
	}
	r.segments = append(r.segments, segment{from, to})
	return nil
}

func at(x, y float32) PointerEvent {
	return Mouse(Coordinate{X: x, Y: y}, Coordinate{})
}

func TestTrackerDownUpDrawsNothing(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec, nil)

	tr.Down(at(10, 10))
	if !tr.End(EndUp) {
		t.Fatal("End() = false, want true for active gesture")
	}

	if len(rec.segments) != 0 {
		t.Errorf("segments = %v, want none", rec.segments)
	}
	if tr.State() != Idle {
		t.Errorf("State() = %v, want idle", tr.State())
	}
}

func TestTrackerDownMoveDrawsOneSegment(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec, nil)

	tr.Down(at(10, 10))
	if !tr.Move(at(20, 20)) {
		t.Fatal("Move() = false, want true")
	}

	want := []segment{{Coordinate{10, 10}, Coordinate{20, 20}}}
	if len(rec.segments) != 1 || rec.segments[0] != want[0] {
		t.Errorf("segments = %v, want %v", rec.segments, want)
	}
	if last, ok := tr.Last(); !ok || last != (Coordinate{20, 20}) {
		t.Errorf("Last() = %v, %v, want (20,20), true", last, ok)
	}
}

func TestTrackerConnectsConsecutivePoints(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec, nil)

	tr.Down(at(0, 0))
	tr.Move(at(5, 0))
	tr.Move(at(5, 5))
	tr.Move(at(0, 5))

	want := []segment{
		{Coordinate{0, 0}, Coordinate{5, 0}},
		{Coordinate{5, 0}, Coordinate{5, 5}},
		{Coordinate{5, 5}, Coordinate{0, 5}},
	}
	if len(rec.segments) != len(want) {
		t.Fatalf("got %d segments, want %d", len(rec.segments), len(want))
	}
	for i := range want {
		if rec.segments[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, rec.segments[i], want[i])
		}
	}
}

func TestTrackerMoveWhileIdle(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec, nil)

	if tr.Move(at(20, 20)) {
		t.Error("Move() before Down = true, want false")
	}
	if len(rec.segments) != 0 {
		t.Errorf("segments = %v, want none", rec.segments)
	}
	if _, ok := tr.Last(); ok {
		t.Error("Last() ok = true while idle")
	}
}

func TestTrackerEndReasons(t *testing.T) {
	tests := []struct {
		name   string
		reason EndReason
	}{
		{"pointer up", EndUp},
		{"pointer leave", EndLeave},
		{"touch end", EndTouch},
		{"touch cancel", EndCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			tr := NewTracker(rec, nil)

			tr.Down(at(10, 10))
			tr.End(tt.reason)
			if tr.Move(at(30, 30)) {
				t.Error("Move() after End = true, want false")
			}
			if len(rec.segments) != 0 {
				t.Errorf("segments = %v, want none", rec.segments)
			}
		})
	}
}

func TestTrackerEndWhileIdle(t *testing.T) {
	tr := NewTracker(&recorder{}, nil)
	if tr.End(EndLeave) {
		t.Error("End() while idle = true, want false")
	}
}

func TestTrackerDownRestartsGesture(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec, nil)

	tr.Down(at(0, 0))
	tr.Down(at(50, 50))
	tr.Move(at(60, 60))

	want := segment{Coordinate{50, 50}, Coordinate{60, 60}}
	if len(rec.segments) != 1 || rec.segments[0] != want {
		t.Errorf("segments = %v, want [%v]", rec.segments, want)
	}
}

func TestTrackerIgnoresRepeatedPosition(t *testing.T) {
	rec := &recorder{}
	tr := NewTracker(rec, nil)

	tr.Down(at(10, 10))
	tr.Move(at(20, 20))
	if tr.Move(at(20, 20)) {
		t.Error("Move() to same position = true, want false")
	}
	if len(rec.segments) != 1 {
		t.Errorf("got %d segments, want 1", len(rec.segments))
	}
}

func TestTrackerTouchMatchesMouse(t *testing.T) {
	offset := Coordinate{X: 8, Y: 40}
	raw := func(x, y float32) Coordinate { return Coordinate{X: x + offset.X, Y: y + offset.Y} }

	mouse := &recorder{}
	mt := NewTracker(mouse, nil)
	mt.Down(Mouse(raw(10, 10), offset))
	mt.Move(Mouse(raw(20, 20), offset))

	touch := &recorder{}
	tt := NewTracker(touch, nil)
	tt.Down(Touch(raw(10, 10), offset))
	tt.Move(Touch(raw(20, 20), offset))

	if len(mouse.segments) != 1 || len(touch.segments) != 1 {
		t.Fatalf("segments mouse=%v touch=%v, want one each", mouse.segments, touch.segments)
	}
	if mouse.segments[0] != touch.segments[0] {
		t.Errorf("touch segment %v != mouse segment %v", touch.segments[0], mouse.segments[0])
	}
	want := segment{Coordinate{10, 10}, Coordinate{20, 20}}
	if touch.segments[0] != want {
		t.Errorf("segment = %v, want %v", touch.segments[0], want)
	}
}

func TestTrackerRendererErrorKeepsGesture(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	tr := NewTracker(rec, nil)

	tr.Down(at(0, 0))
	if tr.Move(at(1, 1)) {
		t.Error("Move() with failing renderer = true, want false")
	}
	if tr.State() != Painting {
		t.Errorf("State() = %v, want painting", tr.State())
	}

	rec.err = nil
	tr.Move(at(2, 2))
	want := segment{Coordinate{1, 1}, Coordinate{2, 2}}
	if len(rec.segments) != 1 || rec.segments[0] != want {
		t.Errorf("segments = %v, want [%v]", rec.segments, want)
	}
}

func TestTranslate(t *testing.T) {
	got := Translate(Coordinate{X: 110, Y: 45}, Coordinate{X: 100, Y: 40})
	if got != (Coordinate{X: 10, Y: 5}) {
		t.Errorf("Translate() = %v, want (10,5)", got)
	}
}

func TestStringers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Idle.String(), "idle"},
		{Painting.String(), "painting"},
		{SourceMouse.String(), "mouse"},
		{SourceTouch.String(), "touch"},
		{EndLeave.String(), "pointer-leave"},
		{Coordinate{X: 1.5, Y: 2}.String(), "(1.5,2)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
