package handtrace

import (
	"errors"
	"testing"
)

// touchAt builds a TouchPoint the way the tracker would, with seq as the
// arrival order.
func touchAt(id PointerID, pos Point, seq uint64) TouchPoint {
	return TouchPoint{ID: id, Pos: pos, Path: []Point{pos}, seq: seq}
}

func TestBuildPoseSortsByX(t *testing.T) {
	tests := []struct {
		name   string
		points []TouchPoint
		want   []Point // expected slot contents, slot 0 first
	}{
		{
			"already ordered",
			[]TouchPoint{
				touchAt(1, Pt(10, 5), 1),
				touchAt(2, Pt(50, 5), 2),
			},
			[]Point{Pt(10, 5), Pt(50, 5)},
		},
		{
			"three unordered",
			[]TouchPoint{
				touchAt(1, Pt(10, 0), 1),
				touchAt(2, Pt(50, 0), 2),
				touchAt(3, Pt(30, 0), 3),
			},
			[]Point{Pt(10, 0), Pt(30, 0), Pt(50, 0)},
		},
		{
			"reverse order",
			[]TouchPoint{
				touchAt(1, Pt(90, 0), 1),
				touchAt(2, Pt(70, 0), 2),
				touchAt(3, Pt(40, 0), 3),
			},
			[]Point{Pt(40, 0), Pt(70, 0), Pt(90, 0)},
		},
		{
			"y does not matter",
			[]TouchPoint{
				touchAt(1, Pt(20, 900), 1),
				touchAt(2, Pt(10, 1), 2),
			},
			[]Point{Pt(10, 1), Pt(20, 900)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pose, err := BuildPose(tt.points)
			if err != nil {
				t.Fatalf("BuildPose() error = %v", err)
			}
			if pose.Count() != len(tt.want) {
				t.Fatalf("Count() = %d, want %d", pose.Count(), len(tt.want))
			}
			for slot, want := range tt.want {
				got, ok := pose.At(slot)
				if !ok {
					t.Fatalf("slot %d empty, want %+v", slot, want)
				}
				if got != want {
					t.Errorf("slot %d = %+v, want %+v", slot, got, want)
				}
			}
		})
	}
}

// Equal X coordinates keep arrival order.
func TestBuildPoseTieKeepsArrivalOrder(t *testing.T) {
	points := []TouchPoint{
		touchAt(7, Pt(100, 30), 2),
		touchAt(3, Pt(100, 10), 1),
		touchAt(9, Pt(100, 20), 3),
	}
	pose, err := BuildPose(points)
	if err != nil {
		t.Fatalf("BuildPose() error = %v", err)
	}
	want := []Point{Pt(100, 10), Pt(100, 30), Pt(100, 20)}
	for slot, w := range want {
		if got, _ := pose.At(slot); got != w {
			t.Errorf("slot %d = %+v, want %+v", slot, got, w)
		}
	}
}

// More contacts than slots: the leftmost SlotCount win, the rest are
// dropped.
func TestBuildPoseDropsExtraContacts(t *testing.T) {
	points := []TouchPoint{
		touchAt(1, Pt(60, 0), 1),
		touchAt(2, Pt(10, 0), 2),
		touchAt(3, Pt(50, 0), 3),
		touchAt(4, Pt(20, 0), 4),
		touchAt(5, Pt(40, 0), 5),
		touchAt(6, Pt(30, 0), 6),
		touchAt(7, Pt(70, 0), 7),
	}
	pose, err := BuildPose(points)
	if err != nil {
		t.Fatalf("BuildPose() error = %v", err)
	}
	if pose.Count() != SlotCount {
		t.Fatalf("Count() = %d, want %d", pose.Count(), SlotCount)
	}
	want := []Point{Pt(10, 0), Pt(20, 0), Pt(30, 0), Pt(40, 0), Pt(50, 0)}
	for slot, w := range want {
		if got, _ := pose.At(slot); got != w {
			t.Errorf("slot %d = %+v, want %+v", slot, got, w)
		}
	}
}

func TestBuildPoseEmpty(t *testing.T) {
	_, err := BuildPose(nil)
	if !errors.Is(err, ErrNoActivePoints) {
		t.Errorf("BuildPose(nil) error = %v, want ErrNoActivePoints", err)
	}
	_, err = BuildPose([]TouchPoint{})
	if !errors.Is(err, ErrNoActivePoints) {
		t.Errorf("BuildPose(empty) error = %v, want ErrNoActivePoints", err)
	}
}

// BuildPose must not reorder the caller's slice.
func TestBuildPoseLeavesInputAlone(t *testing.T) {
	points := []TouchPoint{
		touchAt(1, Pt(50, 0), 1),
		touchAt(2, Pt(10, 0), 2),
	}
	if _, err := BuildPose(points); err != nil {
		t.Fatalf("BuildPose() error = %v", err)
	}
	if points[0].Pos != Pt(50, 0) || points[1].Pos != Pt(10, 0) {
		t.Errorf("input reordered: %+v, %+v", points[0].Pos, points[1].Pos)
	}
}
