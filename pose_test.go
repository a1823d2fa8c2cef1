package handtrace

import "testing"

func TestPoseSetAt(t *testing.T) {
	var p Pose
	p.Set(0, Pt(10, 20))
	p.Set(3, Pt(30, 40))

	tests := []struct {
		name     string
		slot     int
		want     Point
		occupied bool
	}{
		{"slot 0", 0, Pt(10, 20), true},
		{"slot 1 empty", 1, Pt(0, 0), false},
		{"slot 3", 3, Pt(30, 40), true},
		{"slot 4 empty", 4, Pt(0, 0), false},
		{"negative slot", -1, Pt(0, 0), false},
		{"slot past end", SlotCount, Pt(0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.At(tt.slot)
			if ok != tt.occupied {
				t.Fatalf("At(%d) occupied = %v, want %v", tt.slot, ok, tt.occupied)
			}
			if ok && got != tt.want {
				t.Errorf("At(%d) = %+v, want %+v", tt.slot, got, tt.want)
			}
		})
	}
}

func TestPoseSetOutOfRangeIgnored(t *testing.T) {
	var p Pose
	p.Set(-1, Pt(1, 1))
	p.Set(SlotCount, Pt(2, 2))
	p.Set(99, Pt(3, 3))
	if got := p.Count(); got != 0 {
		t.Errorf("Count() = %d after out-of-range sets, want 0", got)
	}
}

func TestPoseSetOverwrites(t *testing.T) {
	var p Pose
	p.Set(2, Pt(1, 1))
	p.Set(2, Pt(9, 9))
	got, ok := p.At(2)
	if !ok || got != Pt(9, 9) {
		t.Errorf("At(2) = %+v, %v, want %+v, true", got, ok, Pt(9, 9))
	}
	if p.Count() != 1 {
		t.Errorf("Count() = %d, want 1", p.Count())
	}
}

func TestPoseCountPointsSlots(t *testing.T) {
	var p Pose
	p.Set(4, Pt(40, 0))
	p.Set(1, Pt(10, 0))
	p.Set(2, Pt(20, 0))

	if got := p.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}

	wantPoints := []Point{Pt(10, 0), Pt(20, 0), Pt(40, 0)}
	gotPoints := p.Points()
	if len(gotPoints) != len(wantPoints) {
		t.Fatalf("Points() has %d entries, want %d", len(gotPoints), len(wantPoints))
	}
	for i := range wantPoints {
		if gotPoints[i] != wantPoints[i] {
			t.Errorf("Points()[%d] = %+v, want %+v", i, gotPoints[i], wantPoints[i])
		}
	}

	wantSlots := []int{1, 2, 4}
	gotSlots := p.Slots()
	if len(gotSlots) != len(wantSlots) {
		t.Fatalf("Slots() = %v, want %v", gotSlots, wantSlots)
	}
	for i := range wantSlots {
		if gotSlots[i] != wantSlots[i] {
			t.Errorf("Slots()[%d] = %d, want %d", i, gotSlots[i], wantSlots[i])
		}
	}
}

// Pose is a value type: a copy must not observe later mutations of the
// original.
func TestPoseCopyIsIndependent(t *testing.T) {
	var p Pose
	p.Set(0, Pt(1, 1))

	c := p
	p.Set(0, Pt(99, 99))
	p.Set(1, Pt(2, 2))

	got, ok := c.At(0)
	if !ok || got != Pt(1, 1) {
		t.Errorf("copy At(0) = %+v, %v, want %+v, true", got, ok, Pt(1, 1))
	}
	if _, ok := c.At(1); ok {
		t.Error("copy At(1) occupied, want empty")
	}
}

func TestPoseKindString(t *testing.T) {
	tests := []struct {
		kind PoseKind
		want string
	}{
		{PoseStart, "start"},
		{PoseFinish, "finish"},
		{PoseKind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PoseKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
