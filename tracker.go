package handtrace

import "sort"

// PointerID identifies one pointer contact reported by the input layer.
// IDs are opaque: they only need to be unique among currently-active
// contacts, and an input source may reuse the ID of a released contact.
type PointerID int

// TouchPoint is one live pointer contact.
type TouchPoint struct {
	ID PointerID

	// Pos is the current position.
	Pos Point

	// Path is every position the contact has visited since pointer-down,
	// in chronological order. Path[0] is the down position.
	Path []Point

	// Hand is the recording hand captured at pointer-down.
	Hand Hand

	// seq orders contacts by arrival. Slot assignment breaks X ties with
	// it, so it must survive map iteration and sorting.
	seq uint64
}

// Tracker ingests raw pointer events, maintains the set of live touch
// points, and archives completed strokes per hand.
//
// A Tracker is not safe for concurrent use. Drive it from a single
// goroutine, normally the UI event loop.
type Tracker struct {
	active  map[PointerID]*TouchPoint
	hand    Hand
	strokes [HandCount][]Stroke
	seq     uint64
}

// NewTracker returns an empty tracker recording for the given hand.
func NewTracker(hand Hand) *Tracker {
	return &Tracker{
		active: make(map[PointerID]*TouchPoint),
		hand:   hand,
	}
}

// Hand returns the hand new contacts are attributed to.
func (t *Tracker) Hand() Hand {
	return t.hand
}

// SetHand changes the hand for subsequent pointer-downs. Contacts already
// in flight keep the hand they started with.
func (t *Tracker) SetHand(hand Hand) {
	t.hand = hand
}

// PointerDown begins tracking a contact at pos. If the ID is already
// active the stale entry is replaced without archiving; that only happens
// when an input source reuses an ID without reporting the release.
func (t *Tracker) PointerDown(id PointerID, pos Point) {
	if _, ok := t.active[id]; ok {
		Logger().Warn("tracker: pointer id reused while active, dropping stale contact", "id", int(id))
	}
	t.seq++
	t.active[id] = &TouchPoint{
		ID:   id,
		Pos:  pos,
		Path: []Point{pos},
		Hand: t.hand,
		seq:  t.seq,
	}
	Logger().Debug("tracker: pointer down", "id", int(id), "x", pos.X, "y", pos.Y, "hand", t.hand.String())
}

// PointerMove updates the position of an active contact and extends its
// path. Moves for unknown IDs are ignored.
func (t *Tracker) PointerMove(id PointerID, pos Point) {
	tp, ok := t.active[id]
	if !ok {
		return
	}
	tp.Pos = pos
	tp.Path = append(tp.Path, pos)
}

// PointerUp ends a contact. If the contact moved at least once, its path
// is archived as a stroke for the hand captured at pointer-down; a
// single-point tap is discarded. Ups for unknown IDs are ignored.
func (t *Tracker) PointerUp(id PointerID) {
	tp, ok := t.active[id]
	if !ok {
		return
	}
	delete(t.active, id)
	if len(tp.Path) < 2 {
		Logger().Debug("tracker: tap discarded", "id", int(id))
		return
	}
	// Archive a copy: the stroke must stay intact even if someone still
	// holds the live path slice.
	s := Stroke{
		ID:     newStrokeID(),
		Hand:   tp.Hand,
		Points: append([]Point(nil), tp.Path...),
	}
	t.strokes[tp.Hand] = append(t.strokes[tp.Hand], s)
	Logger().Debug("tracker: stroke archived",
		"id", s.ID, "hand", s.Hand.String(), "points", len(s.Points))
}

// Active returns a snapshot of the live contacts in ascending pointer-ID
// order. Paths are copied; mutating the snapshot does not affect the
// tracker.
func (t *Tracker) Active() []TouchPoint {
	out := make([]TouchPoint, 0, len(t.active))
	for _, tp := range t.active {
		c := *tp
		c.Path = append([]Point(nil), tp.Path...)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ActiveForHand returns the snapshot filtered to contacts attributed to
// the given hand.
func (t *Tracker) ActiveForHand(hand Hand) []TouchPoint {
	out := t.Active()
	n := 0
	for _, tp := range out {
		if tp.Hand == hand {
			out[n] = tp
			n++
		}
	}
	return out[:n]
}

// ActiveCount returns the number of live contacts.
func (t *Tracker) ActiveCount() int {
	return len(t.active)
}

// ClearActive drops every live contact without archiving anything.
func (t *Tracker) ClearActive() {
	if len(t.active) == 0 {
		return
	}
	Logger().Debug("tracker: active contacts cleared", "count", len(t.active))
	clear(t.active)
}

// Strokes returns the archived strokes for a hand, oldest first. The
// returned slice is owned by the tracker; treat it as read-only.
func (t *Tracker) Strokes(hand Hand) []Stroke {
	return t.strokes[hand]
}

// ClearStrokes discards the archived strokes of a hand.
func (t *Tracker) ClearStrokes(hand Hand) {
	t.strokes[hand] = nil
}
