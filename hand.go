package handtrace

// Hand identifies which hand a touch, stroke, or pose belongs to.
type Hand int

const (
	HandLeft Hand = iota
	HandRight
)

// HandCount is the number of hands a session tracks. Hand values index
// arrays of this length.
const HandCount = 2

// String returns "left" or "right".
func (h Hand) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	}
	return "unknown"
}

// Other returns the opposite hand.
func (h Hand) Other() Hand {
	if h == HandLeft {
		return HandRight
	}
	return HandLeft
}

// HandData holds one hand's recorded poses: an optional start pose and an
// optional finish pose. Either, both, or neither can be present.
//
// HandData contains no reference fields, so plain assignment produces an
// independent deep copy. Undo snapshots are taken this way.
// The zero value is empty.
type HandData struct {
	start     Pose
	finish    Pose
	hasStart  bool
	hasFinish bool
}

// SetPose stores a pose of the given kind, replacing any prior pose of
// that kind in full. The other kind is untouched.
func (d *HandData) SetPose(kind PoseKind, p Pose) {
	switch kind {
	case PoseStart:
		d.start = p
		d.hasStart = true
	case PoseFinish:
		d.finish = p
		d.hasFinish = true
	}
}

// Pose returns the stored pose of the given kind and whether it is present.
func (d HandData) Pose(kind PoseKind) (Pose, bool) {
	switch kind {
	case PoseStart:
		return d.start, d.hasStart
	case PoseFinish:
		return d.finish, d.hasFinish
	}
	return Pose{}, false
}

// HasPose reports whether a pose of the given kind has been recorded.
func (d HandData) HasPose(kind PoseKind) bool {
	_, ok := d.Pose(kind)
	return ok
}

// SetPoint overwrites a single slot of the pose of the given kind.
// Writing to a kind that has no recorded pose is ignored; a single point
// never creates a pose on its own.
func (d *HandData) SetPoint(kind PoseKind, slot int, pt Point) {
	switch kind {
	case PoseStart:
		if d.hasStart {
			d.start.Set(slot, pt)
		}
	case PoseFinish:
		if d.hasFinish {
			d.finish.Set(slot, pt)
		}
	}
}

// Points returns every present point: start pose first, then finish,
// slots ascending within each. This is the iteration order the editor
// uses for hit testing and for computing the transform centroid.
func (d HandData) Points() []Point {
	pts := make([]Point, 0, 2*SlotCount)
	if d.hasStart {
		pts = append(pts, d.start.Points()...)
	}
	if d.hasFinish {
		pts = append(pts, d.finish.Points()...)
	}
	return pts
}

// Empty reports whether neither pose is present.
func (d HandData) Empty() bool {
	return !d.hasStart && !d.hasFinish
}

// Clear removes both poses.
func (d *HandData) Clear() {
	*d = HandData{}
}

// Clone returns an independent copy of the hand data.
func (d HandData) Clone() HandData {
	return d
}
