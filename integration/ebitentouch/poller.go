package ebitentouch

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/handlab/handtrace"
)

// Receiver consumes the pointer events a Poller synthesizes.
// *handtrace.Session and *handtrace.Tracker both satisfy it.
type Receiver interface {
	PointerDown(id handtrace.PointerID, pos handtrace.Point)
	PointerMove(id handtrace.PointerID, pos handtrace.Point)
	PointerUp(id handtrace.PointerID)
}

const (
	// mousePointer is the pointer ID the left mouse button reports as.
	mousePointer handtrace.PointerID = 0

	// maxTouches is the number of simultaneous touch contacts tracked.
	// Touches map to pointers 1..maxTouches; contacts beyond that are
	// ignored until a slot frees up.
	maxTouches = 9
)

// source abstracts the ebiten input functions so tests can script frames.
type source interface {
	CursorPosition() (int, int)
	MousePressed() bool
	AppendTouchIDs([]ebiten.TouchID) []ebiten.TouchID
	TouchPosition(ebiten.TouchID) (int, int)
}

// ebitenSource reads the real input devices.
type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
func (ebitenSource) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}
func (ebitenSource) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// Poller turns ebiten's per-frame input state into pointer events.
// Call Update once per game tick; it diffs the frame against the
// previous one and emits the down/move/up transitions to the receiver.
//
// A Poller is not safe for concurrent use; drive it from the game's
// Update method only.
type Poller struct {
	src source

	mouseDown bool
	mousePos  handtrace.Point

	// Touch slots 1..maxTouches. Index 0 stays unused so a slot index
	// is directly the pointer ID.
	slotUsed [maxTouches + 1]bool
	slotID   [maxTouches + 1]ebiten.TouchID
	slotPos  [maxTouches + 1]handtrace.Point

	ids []ebiten.TouchID // scratch, reused across frames
}

// NewPoller returns a poller reading the real ebiten input devices.
func NewPoller() *Poller {
	return &Poller{src: ebitenSource{}}
}

// Update polls the current input state and emits the transitions since
// the previous Update to r.
func (p *Poller) Update(r Receiver) {
	p.pollMouse(r)
	p.pollTouches(r)
}

// pollMouse drives pointer 0 from the cursor and the left button. Moves
// are only emitted while the button is held and the cursor actually
// moved, so a stationary click stays a single-point tap.
func (p *Poller) pollMouse(r Receiver) {
	mx, my := p.src.CursorPosition()
	pos := handtrace.Pt(float64(mx), float64(my))
	pressed := p.src.MousePressed()

	switch {
	case pressed && !p.mouseDown:
		r.PointerDown(mousePointer, pos)
	case pressed && pos != p.mousePos:
		r.PointerMove(mousePointer, pos)
	case !pressed && p.mouseDown:
		r.PointerUp(mousePointer)
	}
	p.mouseDown = pressed
	p.mousePos = pos
}

// pollTouches drives pointers 1..maxTouches from the touch screen.
func (p *Poller) pollTouches(r Receiver) {
	p.ids = p.src.AppendTouchIDs(p.ids[:0])

	var seen [maxTouches + 1]bool
	for _, tid := range p.ids {
		slot, fresh := p.touchSlot(tid)
		if slot < 0 {
			handtrace.Logger().Warn("ebitentouch: touch slots exhausted, contact ignored",
				"touches", len(p.ids))
			continue
		}
		seen[slot] = true

		tx, ty := p.src.TouchPosition(tid)
		pos := handtrace.Pt(float64(tx), float64(ty))
		if fresh {
			r.PointerDown(handtrace.PointerID(slot), pos)
		} else if pos != p.slotPos[slot] {
			r.PointerMove(handtrace.PointerID(slot), pos)
		}
		p.slotPos[slot] = pos
	}

	// Slots whose touch ID vanished this frame were released.
	for slot := 1; slot <= maxTouches; slot++ {
		if p.slotUsed[slot] && !seen[slot] {
			r.PointerUp(handtrace.PointerID(slot))
			p.slotUsed[slot] = false
		}
	}
}

// touchSlot returns the slot bound to tid, binding a free one when the
// contact is new. fresh reports a new binding; slot is -1 when every
// slot is taken.
func (p *Poller) touchSlot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 1; i <= maxTouches; i++ {
		if p.slotUsed[i] && p.slotID[i] == tid {
			return i, false
		}
	}
	for i := 1; i <= maxTouches; i++ {
		if !p.slotUsed[i] {
			p.slotUsed[i] = true
			p.slotID[i] = tid
			return i, true
		}
	}
	return -1, false
}
