package handtrace

import (
	"fmt"
	"math"
)

// Limits for the whole-hand transform commands, matching the range a UI
// slider should offer. The session does not enforce them; callers keep
// their inputs in range.
const (
	ScaleMin = 0.5
	ScaleMax = 2.0

	RotationMin = -math.Pi
	RotationMax = math.Pi
)

// Session binds the capture-and-edit pipeline for one sitting: a touch
// tracker, recorded pose data for both hands, and the edit engine, behind
// the command surface a UI drives.
//
// A Session is not safe for concurrent use. Drive it from a single
// goroutine, normally the UI event loop; this keeps every command atomic
// without locking.
type Session struct {
	tracker *Tracker
	hands   [HandCount]HandData
	edit    *editor

	scale    float64
	rotation float64

	notify func(Notice)
}

// NewSession returns a session with no recorded data, configured by the
// given options.
func NewSession(opts ...Option) *Session {
	cfg := defaultSessionOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		tracker: NewTracker(cfg.hand),
		scale:   1,
		notify:  cfg.notify,
	}
	s.edit = newEditor(&s.hands, cfg.hand, cfg.hitRadius)
	return s
}

// PointerDown forwards a pointer-down event to the tracker.
func (s *Session) PointerDown(id PointerID, pos Point) {
	s.tracker.PointerDown(id, pos)
}

// PointerMove forwards a pointer-move event to the tracker.
func (s *Session) PointerMove(id PointerID, pos Point) {
	s.tracker.PointerMove(id, pos)
}

// PointerUp forwards a pointer-up event to the tracker.
func (s *Session) PointerUp(id PointerID) {
	s.tracker.PointerUp(id)
}

// ActiveHand returns the hand currently selected for recording and
// editing.
func (s *Session) ActiveHand() Hand {
	return s.tracker.Hand()
}

// SetActiveHand selects the hand for recording and editing. Contacts
// still in flight are dropped without archiving; a half-drawn stroke
// does not change hands. An active drag ends, since a drag must not
// cross hands either.
func (s *Session) SetActiveHand(hand Hand) {
	if hand == s.ActiveHand() {
		return
	}
	s.edit.endDrag()
	s.tracker.ClearActive()
	s.tracker.SetHand(hand)
	s.edit.active = hand
	Logger().Debug("session: active hand changed", "hand", hand.String())
}

// ToggleRecordingHand switches the active hand between left and right.
func (s *Session) ToggleRecordingHand() {
	s.SetActiveHand(s.ActiveHand().Other())
}

// RecordPose captures the live touch points attributed to the active
// hand as its pose of the given kind, replacing any previous pose of
// that kind in full. The other kind is untouched.
//
// On success an info notice reports the hand and finger count. With no
// live points the recorded data is left as it was, an error notice is
// emitted, and ErrNoActivePoints is returned.
func (s *Session) RecordPose(kind PoseKind) error {
	hand := s.ActiveHand()
	pose, err := BuildPose(s.tracker.ActiveForHand(hand))
	if err != nil {
		s.notice(Notice{
			Kind:    NoticeError,
			Hand:    hand,
			Message: fmt.Sprintf("cannot record %s pose: no fingers on the surface", kind),
		})
		return err
	}
	s.hands[hand].SetPose(kind, pose)
	s.notice(Notice{
		Kind:    NoticeInfo,
		Hand:    hand,
		Count:   pose.Count(),
		Message: fmt.Sprintf("recorded %s pose for %s hand (%d fingers)", kind, hand, pose.Count()),
	})
	return nil
}

// Recorded returns a copy of the recorded pose data for the given hand.
func (s *Session) Recorded(hand Hand) HandData {
	return s.hands[hand]
}

// ClearActivePoints drops all live contacts without archiving strokes.
func (s *Session) ClearActivePoints() {
	s.tracker.ClearActive()
}

// ClearStrokes discards the archived strokes of the given hand.
func (s *Session) ClearStrokes(hand Hand) {
	s.tracker.ClearStrokes(hand)
}

// ClearRecordedPoses removes both recorded poses of the active hand. The
// hand is snapshotted first, so the clear is a single undoable step.
// Clearing an empty hand does nothing.
func (s *Session) ClearRecordedPoses() {
	if s.hands[s.ActiveHand()].Empty() {
		return
	}
	s.edit.endDrag()
	s.edit.pushUndo()
	s.hands[s.ActiveHand()].Clear()
	Logger().Debug("session: recorded poses cleared", "hand", s.ActiveHand().String())
}

// HitTest returns the editable pose point of the active hand nearest to
// pos within the hit radius. When two points are equally close, the start
// pose wins over the finish pose and lower slots win within a pose.
func (s *Session) HitTest(pos Point) (Hit, bool) {
	return s.edit.hitTest(pos)
}

// BeginDrag starts dragging the given pose point and moves it to pos
// immediately. The whole gesture, however many moves follow, is one undo
// step. Typical flow:
//
//	if hit, ok := s.HitTest(pos); ok {
//		s.BeginDrag(hit, pos)
//	}
func (s *Session) BeginDrag(hit Hit, pos Point) {
	s.edit.beginDrag(hit, pos)
}

// UpdateDrag moves the dragged point to pos. No-op when no drag is
// active.
func (s *Session) UpdateDrag(pos Point) {
	s.edit.updateDrag(pos)
}

// EndDrag finishes the drag gesture and clears the selection.
func (s *Session) EndDrag() {
	s.edit.endDrag()
}

// ApplyScale scales every point of the active hand by factor about the
// centroid of all its present points. The scale slider value is not
// affected; SetScale is the slider-driven form.
func (s *Session) ApplyScale(factor float64) {
	s.edit.applyScale(factor)
}

// ApplyRotation rotates every point of the active hand by angle radians
// about the centroid of all its present points. The rotation slider value
// is not affected; SetRotation is the slider-driven form.
func (s *Session) ApplyRotation(angle float64) {
	s.edit.applyRotation(angle)
}

// Scale returns the current scale slider value. Sessions start at 1.
func (s *Session) Scale() float64 {
	return s.scale
}

// SetScale moves the scale slider to value and scales the active hand by
// the ratio to the previous value. Setting the current value again does
// nothing. The range is not validated: sliders are expected to stay
// within [ScaleMin, ScaleMax], and anything else is accepted as given.
func (s *Session) SetScale(value float64) {
	if value == s.scale {
		return
	}
	s.edit.applyScale(value / s.scale)
	s.scale = value
}

// Rotation returns the current rotation slider value in radians.
func (s *Session) Rotation() float64 {
	return s.rotation
}

// SetRotation moves the rotation slider to value (radians) and rotates
// the active hand by the difference from the previous value. Setting the
// current value again does nothing. The range is not validated: sliders
// are expected to stay within [RotationMin, RotationMax], and anything
// else is accepted as given.
func (s *Session) SetRotation(value float64) {
	if value == s.rotation {
		return
	}
	s.edit.applyRotation(value - s.rotation)
	s.rotation = value
}

// Undo reverts the most recent edit of either hand and reports whether
// anything was undone. An active drag ends first.
func (s *Session) Undo() bool {
	s.edit.endDrag()
	return s.edit.undo()
}

// Redo re-applies the most recently undone edit and reports whether
// anything was redone. An active drag ends first.
func (s *Session) Redo() bool {
	s.edit.endDrag()
	return s.edit.redo()
}

// CanUndo reports whether an edit can be undone.
func (s *Session) CanUndo() bool {
	return s.edit.canUndo()
}

// CanRedo reports whether an undone edit can be re-applied.
func (s *Session) CanRedo() bool {
	return s.edit.canRedo()
}

func (s *Session) notice(n Notice) {
	switch n.Kind {
	case NoticeError:
		Logger().Warn("session: "+n.Message, "hand", n.Hand.String())
	default:
		Logger().Debug("session: "+n.Message, "hand", n.Hand.String(), "count", n.Count)
	}
	if s.notify != nil {
		s.notify(n)
	}
}
