package ribbon

import (
	"math"
	"testing"
)

func TestLineSeg(t *testing.T) {
	s := LineSeg{From: Pt(1, 1), To: Pt(4, 5)}
	if s.First() != Pt(1, 1) || s.Last() != Pt(4, 5) {
		t.Errorf("endpoints = %v, %v, want (1,1), (4,5)", s.First(), s.Last())
	}
	if got := s.Length(); math.Abs(got-5) > eps {
		t.Errorf("Length() = %v, want 5", got)
	}
	r := s.Reversed().(LineSeg)
	if r.From != s.To || r.To != s.From {
		t.Errorf("Reversed() = %+v, want endpoints swapped", r)
	}
}

func TestArcSeg(t *testing.T) {
	s := ArcSeg{Center: Pt(0, 0), Radius: 2, StartAngle: 0, EndAngle: math.Pi / 2}
	if !nearPt(s.First(), Pt(2, 0)) {
		t.Errorf("First() = %v, want (2, 0)", s.First())
	}
	if !nearPt(s.Last(), Pt(0, 2)) {
		t.Errorf("Last() = %v, want (0, 2)", s.Last())
	}
	if got := s.Length(); math.Abs(got-math.Pi) > eps {
		t.Errorf("Length() = %v, want pi", got)
	}
	if got := s.Sweep(); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Sweep() = %v, want pi/2", got)
	}
}

func TestArcSeg_Reversed(t *testing.T) {
	s := ArcSeg{Center: Pt(1, 1), Radius: 3, StartAngle: math.Pi / 4, EndAngle: math.Pi}
	r := s.Reversed().(ArcSeg)
	if !nearPt(r.First(), s.Last()) || !nearPt(r.Last(), s.First()) {
		t.Errorf("Reversed() endpoints = %v -> %v, want %v -> %v", r.First(), r.Last(), s.Last(), s.First())
	}
	if math.Abs(r.Sweep()+s.Sweep()) > eps {
		t.Errorf("Reversed() sweep = %v, want %v", r.Sweep(), -s.Sweep())
	}
	if r.Length() != s.Length() {
		t.Errorf("Reversed() length = %v, want %v", r.Length(), s.Length())
	}
}
