package handtrace

import "math"

// DefaultHitRadius is the hit-test radius in surface units. A pose point
// is draggable from anywhere within this distance.
const DefaultHitRadius = 20.0

// Hit identifies one editable pose point: which pose and which slot.
type Hit struct {
	Kind PoseKind
	Slot int
}

// snapshot pairs a hand with a deep copy of its data. The undo and redo
// stacks are stacks of these.
type snapshot struct {
	hand Hand
	data HandData
}

// editor mutates recorded hand data: dragging single points and scaling
// or rotating a whole hand about its centroid, with linear undo/redo.
// The exported surface for all of this is on Session.
type editor struct {
	hands  *[HandCount]HandData
	active Hand

	undos []snapshot
	redos []snapshot

	hitRadius float64

	dragging bool
	dragHit  Hit
}

func newEditor(hands *[HandCount]HandData, active Hand, hitRadius float64) *editor {
	return &editor{hands: hands, active: active, hitRadius: hitRadius}
}

// data returns the active hand's data.
func (e *editor) data() *HandData {
	return &e.hands[e.active]
}

// pushUndo snapshots the active hand and truncates the redo stack.
// Every mutation goes through here first.
func (e *editor) pushUndo() {
	e.undos = append(e.undos, snapshot{hand: e.active, data: e.hands[e.active].Clone()})
	e.redos = e.redos[:0]
}

// hitTest returns the pose point of the active hand nearest to pos within
// the hit radius. Points are visited start pose first, then finish, slots
// ascending; on an exact distance tie the earlier point wins.
func (e *editor) hitTest(pos Point) (Hit, bool) {
	d := e.data()
	var best Hit
	bestDist := math.Inf(1)
	found := false
	for _, kind := range []PoseKind{PoseStart, PoseFinish} {
		pose, ok := d.Pose(kind)
		if !ok {
			continue
		}
		for slot := 0; slot < SlotCount; slot++ {
			pt, ok := pose.At(slot)
			if !ok {
				continue
			}
			dist := pt.Distance(pos)
			if dist > e.hitRadius {
				continue
			}
			if dist < bestDist {
				best = Hit{Kind: kind, Slot: slot}
				bestDist = dist
				found = true
			}
		}
	}
	return best, found
}

// beginDrag starts dragging the given pose point and moves it to pos
// immediately. The hand is snapshotted once for the whole gesture, so a
// drag is a single undo step no matter how many moves follow.
func (e *editor) beginDrag(hit Hit, pos Point) {
	e.pushUndo()
	e.dragging = true
	e.dragHit = hit
	e.data().SetPoint(hit.Kind, hit.Slot, pos)
}

// updateDrag moves the dragged point. No-op when no drag is active.
func (e *editor) updateDrag(pos Point) {
	if !e.dragging {
		return
	}
	e.data().SetPoint(e.dragHit.Kind, e.dragHit.Slot, pos)
}

// endDrag finishes the gesture and clears the selection. Calling it with
// no drag active is harmless.
func (e *editor) endDrag() {
	e.dragging = false
}

// selection returns the pose point being dragged, if any.
func (e *editor) selection() (Hit, bool) {
	return e.dragHit, e.dragging
}

// applyScale scales every present point of the active hand by factor
// about the centroid of all present points.
func (e *editor) applyScale(factor float64) {
	e.pushUndo()
	e.transform(func(center, p Point) Point {
		return p.ScaleAbout(center, factor)
	})
}

// applyRotation rotates every present point of the active hand by angle
// radians about the centroid of all present points.
func (e *editor) applyRotation(angle float64) {
	e.pushUndo()
	e.transform(func(center, p Point) Point {
		return p.RotateAbout(center, angle)
	})
}

// transform rewrites every present point of the active hand through fn.
// center is the centroid of all present points of both poses together, so
// start and finish keep their relative layout. With no points present
// nothing changes; the caller has already pushed the snapshot.
func (e *editor) transform(fn func(center, p Point) Point) {
	d := e.data()
	center := Centroid(d.Points())
	for _, kind := range []PoseKind{PoseStart, PoseFinish} {
		// Pose returns a copy, so the reads below stay pre-transform
		// while the writes land in d.
		pose, ok := d.Pose(kind)
		if !ok {
			continue
		}
		for slot := 0; slot < SlotCount; slot++ {
			if pt, ok := pose.At(slot); ok {
				d.SetPoint(kind, slot, fn(center, pt))
			}
		}
	}
}

// undo reverts the most recent mutation, pushing the current state of the
// affected hand onto the redo stack. Reports whether anything was undone.
func (e *editor) undo() bool {
	n := len(e.undos)
	if n == 0 {
		return false
	}
	s := e.undos[n-1]
	e.undos = e.undos[:n-1]
	e.redos = append(e.redos, snapshot{hand: s.hand, data: e.hands[s.hand].Clone()})
	e.hands[s.hand] = s.data
	return true
}

// redo re-applies the most recently undone mutation.
func (e *editor) redo() bool {
	n := len(e.redos)
	if n == 0 {
		return false
	}
	s := e.redos[n-1]
	e.redos = e.redos[:n-1]
	e.undos = append(e.undos, snapshot{hand: s.hand, data: e.hands[s.hand].Clone()})
	e.hands[s.hand] = s.data
	return true
}

func (e *editor) canUndo() bool { return len(e.undos) > 0 }
func (e *editor) canRedo() bool { return len(e.redos) > 0 }
