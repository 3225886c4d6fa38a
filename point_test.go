package ribbon

import (
	"math"
	"testing"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add() = %v, want (4, 2)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub() = %v, want (2, 3)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul() = %v, want (6, 8)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestPoint_Angle(t *testing.T) {
	if got := Pt(0, 1).Angle(); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("Angle() = %v, want pi/2", got)
	}
}

func TestPoint_RotateAbout(t *testing.T) {
	got := Pt(2, 0).RotateAbout(Pt(1, 0), math.Pi/2)
	if !nearPt(got, Pt(1, 1)) {
		t.Errorf("RotateAbout() = %v, want (1, 1)", got)
	}
}

func TestAngleConversions(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > eps {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if got := Degrees(math.Pi / 2); math.Abs(got-90) > eps {
		t.Errorf("Degrees(pi/2) = %v, want 90", got)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		degrees float64
		want    Point
	}{
		{0, Pt(1, 0)},
		{90, Pt(0, 1)},
		{180, Pt(-1, 0)},
		{-90, Pt(0, -1)},
	}
	for _, tt := range tests {
		if got := heading(tt.degrees); !nearPt(got, tt.want) {
			t.Errorf("heading(%v) = %v, want %v", tt.degrees, got, tt.want)
		}
	}
}
