package handtrace

// SlotCount is the number of finger slots in a recorded pose.
// Slot 0 is the leftmost finger at record time, slot SlotCount-1 the
// rightmost.
const SlotCount = 5

// PoseKind distinguishes the two poses recorded for a hand.
type PoseKind int

const (
	// PoseStart is the resting pose captured before the fingers move.
	PoseStart PoseKind = iota
	// PoseFinish is the stretched pose captured after the fingers move.
	PoseFinish
)

// String returns "start" or "finish".
func (k PoseKind) String() string {
	switch k {
	case PoseStart:
		return "start"
	case PoseFinish:
		return "finish"
	}
	return "unknown"
}

// Pose is one captured hand position: up to SlotCount finger points keyed
// by slot index. Not every slot has to be occupied; a pose recorded from
// three touches fills slots 0 to 2 and leaves the rest empty.
//
// Pose is a plain value type with no reference fields, so assignment
// produces an independent deep copy. The undo machinery relies on this.
// The zero value is an empty pose.
type Pose struct {
	points  [SlotCount]Point
	present [SlotCount]bool
}

// Set stores a point at the given slot, marking the slot occupied.
// Out-of-range slots are ignored.
func (p *Pose) Set(slot int, pt Point) {
	if slot < 0 || slot >= SlotCount {
		return
	}
	p.points[slot] = pt
	p.present[slot] = true
}

// At returns the point stored at slot and whether the slot is occupied.
func (p Pose) At(slot int) (Point, bool) {
	if slot < 0 || slot >= SlotCount {
		return Point{}, false
	}
	return p.points[slot], p.present[slot]
}

// Count returns the number of occupied slots.
func (p Pose) Count() int {
	n := 0
	for _, ok := range p.present {
		if ok {
			n++
		}
	}
	return n
}

// Points returns the occupied points in ascending slot order.
func (p Pose) Points() []Point {
	pts := make([]Point, 0, SlotCount)
	for slot, ok := range p.present {
		if ok {
			pts = append(pts, p.points[slot])
		}
	}
	return pts
}

// Slots returns the occupied slot indices in ascending order.
func (p Pose) Slots() []int {
	slots := make([]int, 0, SlotCount)
	for slot, ok := range p.present {
		if ok {
			slots = append(slots, slot)
		}
	}
	return slots
}
