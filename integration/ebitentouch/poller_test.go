package ebitentouch

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/handlab/handtrace"
)

// fakeSource scripts one frame of input state.
type fakeSource struct {
	cursorX, cursorY int
	pressed          bool
	touches          map[ebiten.TouchID][2]int
}

func (f *fakeSource) CursorPosition() (int, int) { return f.cursorX, f.cursorY }
func (f *fakeSource) MousePressed() bool         { return f.pressed }
func (f *fakeSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	for id := ebiten.TouchID(0); int(id) < 64; id++ {
		if _, ok := f.touches[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
func (f *fakeSource) TouchPosition(id ebiten.TouchID) (int, int) {
	p := f.touches[id]
	return p[0], p[1]
}

// event records one synthesized pointer event.
type event struct {
	op  string
	id  handtrace.PointerID
	pos handtrace.Point
}

// recorder collects events for assertions.
type recorder struct {
	events []event
}

func (r *recorder) PointerDown(id handtrace.PointerID, pos handtrace.Point) {
	r.events = append(r.events, event{"down", id, pos})
}
func (r *recorder) PointerMove(id handtrace.PointerID, pos handtrace.Point) {
	r.events = append(r.events, event{"move", id, pos})
}
func (r *recorder) PointerUp(id handtrace.PointerID) {
	r.events = append(r.events, event{"up", id, handtrace.Point{}})
}

func TestMouseLifecycle(t *testing.T) {
	src := &fakeSource{}
	p := &Poller{src: src}
	rec := &recorder{}

	// Idle frame: nothing.
	src.cursorX, src.cursorY = 10, 10
	p.Update(rec)

	// Press, drag, hold still, release.
	src.pressed = true
	p.Update(rec)
	src.cursorX, src.cursorY = 20, 15
	p.Update(rec)
	p.Update(rec) // no motion, no event
	src.pressed = false
	p.Update(rec)

	want := []event{
		{"down", 0, handtrace.Pt(10, 10)},
		{"move", 0, handtrace.Pt(20, 15)},
		{"up", 0, handtrace.Point{}},
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
}

func TestTouchLifecycle(t *testing.T) {
	src := &fakeSource{touches: map[ebiten.TouchID][2]int{}}
	p := &Poller{src: src}
	rec := &recorder{}

	// Two contacts appear, one moves, both lift.
	src.touches[7] = [2]int{100, 100}
	src.touches[9] = [2]int{200, 100}
	p.Update(rec)
	src.touches[7] = [2]int{110, 120}
	p.Update(rec)
	delete(src.touches, 7)
	delete(src.touches, 9)
	p.Update(rec)

	want := []event{
		{"down", 1, handtrace.Pt(100, 100)},
		{"down", 2, handtrace.Pt(200, 100)},
		{"move", 1, handtrace.Pt(110, 120)},
		{"up", 1, handtrace.Point{}},
		{"up", 2, handtrace.Point{}},
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
}

// Touch pointers start at 1, so a touch never collides with the mouse
// even when both are active in the same frame.
func TestMouseAndTouchDistinct(t *testing.T) {
	src := &fakeSource{touches: map[ebiten.TouchID][2]int{3: {50, 50}}, pressed: true}
	p := &Poller{src: src}
	rec := &recorder{}
	p.Update(rec)

	want := []event{
		{"down", 0, handtrace.Pt(0, 0)},
		{"down", 1, handtrace.Pt(50, 50)},
	}
	if !reflect.DeepEqual(rec.events, want) {
		t.Errorf("events = %+v, want %+v", rec.events, want)
	}
}

// A slot freed by a lift is reused by the next new contact, and the
// events land on the tracker as independent strokes.
func TestSlotReuseDrivesSession(t *testing.T) {
	src := &fakeSource{touches: map[ebiten.TouchID][2]int{}}
	p := &Poller{src: src}
	s := handtrace.NewSession()

	src.touches[1] = [2]int{10, 10}
	p.Update(s)
	src.touches[1] = [2]int{40, 40}
	p.Update(s)
	delete(src.touches, 1)
	p.Update(s)

	src.touches[2] = [2]int{80, 80}
	p.Update(s)
	src.touches[2] = [2]int{90, 90}
	p.Update(s)
	delete(src.touches, 2)
	p.Update(s)

	v := s.View()
	if got := len(v.Strokes[handtrace.HandRight]); got != 2 {
		t.Fatalf("archived strokes = %d, want 2", got)
	}
	if got := v.Strokes[handtrace.HandRight][1].Points[0]; got != handtrace.Pt(80, 80) {
		t.Errorf("second stroke starts at %+v, want the reused slot's down position", got)
	}
}

func TestSlotExhaustion(t *testing.T) {
	src := &fakeSource{touches: map[ebiten.TouchID][2]int{}}
	p := &Poller{src: src}
	rec := &recorder{}

	for id := ebiten.TouchID(0); int(id) < maxTouches+2; id++ {
		src.touches[id] = [2]int{int(id) * 10, 0}
	}
	p.Update(rec)

	downs := 0
	for _, e := range rec.events {
		if e.op == "down" {
			downs++
		}
	}
	if downs != maxTouches {
		t.Errorf("downs = %d, want %d (extra contacts ignored)", downs, maxTouches)
	}
}
