package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.0001
}

func TestVec2Mul(t *testing.T) {
	got := Vec2{2, 3}.Mul(Vec2{1.5, 0.5})
	want := Vec2{3, 1.5}
	if got != want {
		t.Errorf("Vec2.Mul() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Right.Cross(Up)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want float32
	}{
		{"diagonal", Forward.Add(Right), 1},
		{"long", Vec3{0, 10, 0}, 1},
		{"zero", Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l := tt.in.Normalize().Length(); !approx(l, tt.want) {
				t.Errorf("Normalize().Length() = %v, want %v", l, tt.want)
			}
		})
	}
}

func TestVec3Horizontal(t *testing.T) {
	got := Vec3{1, 2, 3}.Horizontal()
	if got != (Vec3{1, 0, 3}) {
		t.Errorf("Horizontal() = %v", got)
	}
	if !got.Sub(got).IsZero() {
		t.Error("v - v should be zero")
	}
}
