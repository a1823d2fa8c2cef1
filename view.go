package handtrace

// View is a snapshot of everything a rendering layer needs to draw one
// frame: live contacts, archived strokes, recorded poses, the current
// selection, and the slider state.
//
// The snapshot is independent of the session: touch paths and hand data
// are copied. Stroke point slices are shared, but strokes are immutable
// once archived.
type View struct {
	// ActiveHand is the hand currently selected for recording and
	// editing.
	ActiveHand Hand

	// Touches are the live contacts in ascending pointer-ID order.
	Touches []TouchPoint

	// Strokes holds the archived strokes per hand, oldest first.
	Strokes [HandCount][]Stroke

	// Hands holds the recorded pose data per hand.
	Hands [HandCount]HandData

	// Selection is the pose point currently being dragged, or nil when
	// no drag is active.
	Selection *Hit

	// Scale and Rotation are the current slider values.
	Scale    float64
	Rotation float64

	// CanUndo and CanRedo report whether the edit history has entries in
	// either direction, for enabling UI buttons.
	CanUndo bool
	CanRedo bool
}

// View returns a snapshot of the session for rendering.
func (s *Session) View() View {
	v := View{
		ActiveHand: s.ActiveHand(),
		Touches:    s.tracker.Active(),
		Hands:      s.hands,
		Scale:      s.scale,
		Rotation:   s.rotation,
		CanUndo:    s.CanUndo(),
		CanRedo:    s.CanRedo(),
	}
	for h := Hand(0); h < HandCount; h++ {
		v.Strokes[h] = append([]Stroke(nil), s.tracker.Strokes(h)...)
	}
	if hit, ok := s.edit.selection(); ok {
		v.Selection = &hit
	}
	return v
}
