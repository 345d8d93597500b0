package wm

import (
	"testing"
)

func TestOpenAssignsIncreasingZ(t *testing.T) {
	reg := New(DefaultConfig())

	a, created := reg.Open("a", "composer", nil)
	if !created {
		t.Fatal("Open(a) created = false, want true")
	}
	b, _ := reg.Open("b", "dialer", nil)
	c, _ := reg.Open("c", "notes", nil)

	if a.Z >= b.Z || b.Z >= c.Z {
		t.Errorf("z order = %d, %d, %d, want strictly increasing", a.Z, b.Z, c.Z)
	}
	if !c.Active || a.Active || b.Active {
		t.Errorf("active flags = %v %v %v, want only the last opened", a.Active, b.Active, c.Active)
	}
}

func TestOpenReplacesExistingID(t *testing.T) {
	reg := New(DefaultConfig())

	a, _ := reg.Open("a", "composer", "draft one", WithPosition(10, 20), WithSize(500, 400))
	reg.Open("b", "dialer", nil)
	oldZ := a.Z

	got, created := reg.Open("a", "composer", "draft two", WithData(42))
	if created {
		t.Error("Open on existing id created = true, want false")
	}
	if got != a {
		t.Error("Open on existing id returned a different record")
	}
	if got.Content != "draft two" {
		t.Errorf("Content = %v, want draft two", got.Content)
	}
	if got.Data != 42 {
		t.Errorf("Data = %v, want 42", got.Data)
	}
	if got.X != 10 || got.Y != 20 || got.Width != 500 || got.Height != 400 {
		t.Errorf("geometry = (%d,%d) %dx%d, want it preserved as (10,20) 500x400",
			got.X, got.Y, got.Width, got.Height)
	}
	if got.Z <= oldZ {
		t.Errorf("Z = %d, want a fresh z above %d", got.Z, oldZ)
	}
	if !got.Active {
		t.Error("replaced window is not active")
	}
}

func TestOpenGeneratesIDWhenEmpty(t *testing.T) {
	reg := New(DefaultConfig())

	a, _ := reg.Open("", "notes", nil)
	b, _ := reg.Open("", "notes", nil)
	if a.ID == "" || b.ID == "" {
		t.Fatal("generated id is empty")
	}
	if a.ID == b.ID {
		t.Fatalf("generated ids collide: %q", a.ID)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
}

func TestOpenRestoresMinimizedWindow(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "sms", nil)
	reg.Minimize("a")

	got, created := reg.Open("a", "sms", "new thread")
	if created {
		t.Error("created = true, want false")
	}
	if got.Minimized {
		t.Error("window still minimized after reopen")
	}
	if !got.Active {
		t.Error("reopened window is not active")
	}
}

func TestDefaultPlacementCascades(t *testing.T) {
	cfg := DefaultConfig()
	reg := New(cfg)

	a, _ := reg.Open("a", "notes", nil)
	b, _ := reg.Open("b", "notes", nil)
	c, _ := reg.Open("c", "notes", nil)

	baseX := (cfg.ViewportWidth - cfg.DefaultWidth) / 2
	baseY := (cfg.ViewportHeight - cfg.DefaultHeight) / 2
	wantB := Point{X: baseX + cfg.CascadeStride, Y: baseY + cfg.CascadeStride}
	wantC := Point{X: baseX + 2*cfg.CascadeStride, Y: baseY + 2*cfg.CascadeStride}

	if a.X != baseX || a.Y != baseY {
		t.Errorf("first window at (%d,%d), want (%d,%d)", a.X, a.Y, baseX, baseY)
	}
	if b.X != wantB.X || b.Y != wantB.Y {
		t.Errorf("second window at (%d,%d), want (%d,%d)", b.X, b.Y, wantB.X, wantB.Y)
	}
	if c.X != wantC.X || c.Y != wantC.Y {
		t.Errorf("third window at (%d,%d), want (%d,%d)", c.X, c.Y, wantC.X, wantC.Y)
	}
}

func TestCascadePolicies(t *testing.T) {
	tests := []struct {
		name   string
		policy CascadePolicy
		wantX  int
		wantY  int
	}{
		{
			name:   "explicit position untouched under unpositioned policy",
			policy: CascadeUnpositioned,
			wantX:  50,
			wantY:  60,
		},
		{
			name:   "explicit position staggered under all policy",
			policy: CascadeAll,
			wantX:  50 + DefaultCascadeStride,
			wantY:  60 + DefaultCascadeStride,
		},
		{
			name:   "explicit position untouched when cascading is off",
			policy: CascadeOff,
			wantX:  50,
			wantY:  60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CascadePolicy = tt.policy
			reg := New(cfg)

			reg.Open("first", "notes", nil)
			got, _ := reg.Open("second", "notes", nil, WithPosition(50, 60))
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("position = (%d,%d), want (%d,%d)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestFocusIsIdempotentOnActiveWindow(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)
	b, _ := reg.Open("b", "notes", nil)

	zBefore := b.Z
	genBefore := reg.Generation()
	reg.Focus("b")

	if b.Z != zBefore {
		t.Errorf("Z = %d after focusing the active window, want %d unchanged", b.Z, zBefore)
	}
	if reg.Generation() != genBefore {
		t.Error("Generation changed on a no-op focus")
	}
}

func TestFocusFrontsBackgroundWindow(t *testing.T) {
	reg := New(DefaultConfig())
	a, _ := reg.Open("a", "notes", nil)
	b, _ := reg.Open("b", "notes", nil)

	reg.Focus("a")
	if !a.Active || b.Active {
		t.Errorf("active flags after focus = a:%v b:%v, want only a", a.Active, b.Active)
	}
	if a.Z <= b.Z {
		t.Errorf("a.Z = %d, want above b.Z = %d", a.Z, b.Z)
	}

	list := reg.List()
	if list[len(list)-1].ID != "a" {
		t.Errorf("frontmost = %q, want a", list[len(list)-1].ID)
	}
}

func TestFocusUnknownIDIsNoOp(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)
	gen := reg.Generation()

	reg.Focus("ghost")
	if reg.Generation() != gen {
		t.Error("Generation changed on focus of unknown id")
	}
	if reg.ActiveID() != "a" {
		t.Errorf("ActiveID() = %q, want a", reg.ActiveID())
	}
}

func TestCloseReassignsActivity(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)
	reg.Open("b", "notes", nil)
	reg.Open("c", "notes", nil)
	reg.Minimize("b")

	if !reg.Close("c") {
		t.Fatal("Close(c) = false, want true")
	}

	// b has the higher z but is minimized, so a takes over.
	if reg.ActiveID() != "a" {
		t.Errorf("ActiveID() = %q, want a", reg.ActiveID())
	}
}

func TestCloseUnknownID(t *testing.T) {
	reg := New(DefaultConfig())
	if reg.Close("ghost") {
		t.Error("Close(ghost) = true, want false")
	}
}

func TestCloseInactiveKeepsActivity(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)
	reg.Open("b", "notes", nil)

	reg.Close("a")
	if reg.ActiveID() != "b" {
		t.Errorf("ActiveID() = %q, want b", reg.ActiveID())
	}
}

func TestCloseFiresHooks(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)

	var gotID string
	reg.OnClose(func(id string) { gotID = id })
	reg.Close("a")
	if gotID != "a" {
		t.Errorf("close hook got %q, want a", gotID)
	}
}

func TestListOrdersByZAndSkipsMinimized(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)
	reg.Open("b", "notes", nil)
	reg.Open("c", "notes", nil)
	reg.Focus("a")
	reg.Minimize("b")

	list := reg.List()
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(list))
	}
	if list[0].ID != "c" || list[1].ID != "a" {
		t.Errorf("List() = [%s %s], want [c a]", list[0].ID, list[1].ID)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Z >= list[i].Z {
			t.Errorf("List() z order not ascending: %d before %d", list[i-1].Z, list[i].Z)
		}
	}
}

func TestRecordsIncludesMinimized(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)
	reg.Open("b", "notes", nil)
	reg.Minimize("a")

	if got := len(reg.Records()); got != 2 {
		t.Errorf("len(Records()) = %d, want 2", got)
	}
}

func TestSetBoundsEnforcesMinimums(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{name: "both below minimum", w: 10, h: 10, wantW: DefaultMinWidth, wantH: DefaultMinHeight},
		{name: "width below minimum", w: 200, h: 500, wantW: DefaultMinWidth, wantH: 500},
		{name: "height below minimum", w: 600, h: 100, wantW: 600, wantH: DefaultMinHeight},
		{name: "at minimum", w: DefaultMinWidth, h: DefaultMinHeight, wantW: DefaultMinWidth, wantH: DefaultMinHeight},
		{name: "above minimum", w: 640, h: 480, wantW: 640, wantH: 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New(DefaultConfig())
			rec, _ := reg.Open("a", "notes", nil)
			reg.SetBounds("a", 0, 0, tt.w, tt.h)
			if rec.Width != tt.wantW || rec.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", rec.Width, rec.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSetPositionAllowsOffscreenOrigins(t *testing.T) {
	reg := New(DefaultConfig())
	rec, _ := reg.Open("a", "notes", nil)

	reg.SetPosition("a", -100, 0)
	if rec.X != -100 || rec.Y != 0 {
		t.Errorf("position = (%d,%d), want (-100,0)", rec.X, rec.Y)
	}
}

func TestOpenClampsSizeToMinimums(t *testing.T) {
	reg := New(DefaultConfig())
	rec, _ := reg.Open("a", "notes", nil, WithSize(1, 1))
	if rec.Width != DefaultMinWidth || rec.Height != DefaultMinHeight {
		t.Errorf("size = %dx%d, want %dx%d", rec.Width, rec.Height, DefaultMinWidth, DefaultMinHeight)
	}
}

func TestResetClearsRecords(t *testing.T) {
	reg := New(DefaultConfig())
	reg.Open("a", "notes", nil)
	reg.Open("b", "notes", nil)

	reg.Reset()
	if reg.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", reg.Len())
	}

	rec, _ := reg.Open("c", "notes", nil)
	if rec.Z != 1 {
		t.Errorf("Z = %d after Reset, want allocation to restart at 1", rec.Z)
	}
}

func TestSetViewport(t *testing.T) {
	reg := New(DefaultConfig())
	reg.SetViewport(1920, 1080)
	w, h := reg.Viewport()
	if w != 1920 || h != 1080 {
		t.Errorf("Viewport() = %dx%d, want 1920x1080", w, h)
	}

	// Zero or negative dimensions are ignored.
	reg.SetViewport(0, -5)
	w, h = reg.Viewport()
	if w != 1920 || h != 1080 {
		t.Errorf("Viewport() = %dx%d after bogus update, want 1920x1080", w, h)
	}
}
