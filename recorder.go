package handtrace

import (
	"errors"
	"sort"
)

// ErrNoActivePoints reports a pose capture attempted while no touch points
// are live for the recording hand.
var ErrNoActivePoints = errors.New("handtrace: no active touch points to record")

// BuildPose converts live touch points into a pose.
//
// Contacts are ordered by ascending X of their current position, ties
// keeping pointer-down order, and assigned to slots 0, 1, ... left to
// right. At most SlotCount contacts are kept; anything further to the
// right is dropped. An empty input returns ErrNoActivePoints.
func BuildPose(points []TouchPoint) (Pose, error) {
	if len(points) == 0 {
		return Pose{}, ErrNoActivePoints
	}
	sorted := make([]TouchPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pos.X != sorted[j].Pos.X {
			return sorted[i].Pos.X < sorted[j].Pos.X
		}
		return sorted[i].seq < sorted[j].seq
	})
	if len(sorted) > SlotCount {
		sorted = sorted[:SlotCount]
	}
	var pose Pose
	for slot, tp := range sorted {
		pose.Set(slot, tp.Pos)
	}
	return pose, nil
}
