package wm

import "testing"

func TestParseCascadePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want CascadePolicy
	}{
		{in: "unpositioned", want: CascadeUnpositioned},
		{in: "all", want: CascadeAll},
		{in: "off", want: CascadeOff},
		{in: "", want: CascadeUnpositioned},
		{in: "garbage", want: CascadeUnpositioned},
	}

	for _, tt := range tests {
		if got := ParseCascadePolicy(tt.in); got != tt.want {
			t.Errorf("ParseCascadePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCascadePolicyRoundTrip(t *testing.T) {
	for _, p := range []CascadePolicy{CascadeUnpositioned, CascadeAll, CascadeOff} {
		if got := ParseCascadePolicy(p.String()); got != p {
			t.Errorf("ParseCascadePolicy(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestNormalizeFillsInvalidFields(t *testing.T) {
	got := Config{}.normalize()
	want := DefaultConfig()
	// A zero slack is a valid choice and survives normalization.
	want.DragSlack = 0
	if got != want {
		t.Errorf("normalize() = %+v, want %+v", got, want)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	in := Config{
		MinWidth:       100,
		MinHeight:      80,
		DragSlack:      25,
		DefaultWidth:   640,
		DefaultHeight:  480,
		CascadeStride:  16,
		CascadeWrap:    5,
		CascadePolicy:  CascadeAll,
		ViewportWidth:  1920,
		ViewportHeight: 1080,
	}
	if got := in.normalize(); got != in {
		t.Errorf("normalize() = %+v, want %+v unchanged", got, in)
	}
}

func TestNormalizeRejectsNegativeSlack(t *testing.T) {
	in := DefaultConfig()
	in.DragSlack = -10
	if got := in.normalize(); got.DragSlack != 0 {
		t.Errorf("DragSlack = %d, want 0", got.DragSlack)
	}
}

func TestZeroSlackPinsDragToViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DragSlack = 0
	reg := New(cfg)
	rec, _ := reg.Open("a", "notes", nil, WithPosition(0, 0), WithSize(400, 300))
	drag := NewDragController(reg)

	drag.Start("a", 0, 0)
	drag.End(-500, 100)
	if rec.X != 0 {
		t.Errorf("X = %d with zero slack, want 0", rec.X)
	}

	drag.Start("a", 0, 100)
	drag.End(2000, 100)
	if want := cfg.ViewportWidth - 400; rec.X != want {
		t.Errorf("X = %d with zero slack, want %d", rec.X, want)
	}
}
