package wm

import "testing"

func resizeFixture(t *testing.T) (*Registry, *ResizeController, *WindowRecord) {
	t.Helper()
	reg := New(DefaultConfig())
	rec, _ := reg.Open("a", "composer", nil, WithPosition(100, 100), WithSize(400, 300))
	return reg, NewResizeController(reg), rec
}

func TestResizeDirections(t *testing.T) {
	// Window at (100,100), 400x300: edges at x 100/500, y 100/400. Each
	// grab starts on its edge and travels +40 in x and +30 in y. Edges
	// not under the grab must not move.
	tests := []struct {
		name       string
		dir        Direction
		grabX      int
		grabY      int
		wantX      int
		wantY      int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "east moves right edge",
			dir:        DirE,
			grabX:      499,
			grabY:      250,
			wantX:      100,
			wantY:      100,
			wantWidth:  440,
			wantHeight: 300,
		},
		{
			name:       "west moves left edge and keeps right edge",
			dir:        DirW,
			grabX:      100,
			grabY:      250,
			wantX:      140,
			wantY:      100,
			wantWidth:  360,
			wantHeight: 300,
		},
		{
			name:       "south moves bottom edge",
			dir:        DirS,
			grabX:      250,
			grabY:      399,
			wantX:      100,
			wantY:      100,
			wantWidth:  400,
			wantHeight: 330,
		},
		{
			name:       "north moves top edge and keeps bottom edge",
			dir:        DirN,
			grabX:      250,
			grabY:      100,
			wantX:      100,
			wantY:      130,
			wantWidth:  400,
			wantHeight: 270,
		},
		{
			name:       "south east corner",
			dir:        DirSE,
			grabX:      499,
			grabY:      399,
			wantX:      100,
			wantY:      100,
			wantWidth:  440,
			wantHeight: 330,
		},
		{
			name:       "north east corner",
			dir:        DirNE,
			grabX:      499,
			grabY:      100,
			wantX:      100,
			wantY:      130,
			wantWidth:  440,
			wantHeight: 270,
		},
		{
			name:       "south west corner",
			dir:        DirSW,
			grabX:      100,
			grabY:      399,
			wantX:      140,
			wantY:      100,
			wantWidth:  360,
			wantHeight: 330,
		},
		{
			name:       "north west corner",
			dir:        DirNW,
			grabX:      100,
			grabY:      100,
			wantX:      140,
			wantY:      130,
			wantWidth:  360,
			wantHeight: 270,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resize, rec := resizeFixture(t)
			if !resize.Start("a", tt.dir, tt.grabX, tt.grabY) {
				t.Fatal("Start = false, want true")
			}
			resize.End(tt.grabX+40, tt.grabY+30)
			got := rec.Bounds()
			want := Bounds{X: tt.wantX, Y: tt.wantY, Width: tt.wantWidth, Height: tt.wantHeight}
			if got != want {
				t.Errorf("bounds = %+v, want %+v", got, want)
			}
		})
	}
}

func TestResizeWestGrowsLeftward(t *testing.T) {
	_, resize, rec := resizeFixture(t)
	if !resize.Start("a", DirW, 100, 250) {
		t.Fatal("Start = false, want true")
	}
	resize.End(50, 250)

	if rec.Width != 450 || rec.X != 50 {
		t.Errorf("width = %d at x = %d, want 450 at 50", rec.Width, rec.X)
	}
	if right := rec.X + rec.Width; right != 500 {
		t.Errorf("right edge = %d, want 500 fixed", right)
	}
}

func TestResizeMinimumAnchorsOppositeEdge(t *testing.T) {
	t.Run("west keeps right edge at minimum width", func(t *testing.T) {
		_, resize, rec := resizeFixture(t)
		resize.Start("a", DirW, 100, 250)
		// Push the left edge far past where the minimum allows.
		resize.End(480, 250)
		if rec.Width != DefaultMinWidth {
			t.Errorf("width = %d, want %d", rec.Width, DefaultMinWidth)
		}
		if right := rec.X + rec.Width; right != 500 {
			t.Errorf("right edge = %d, want 500 fixed", right)
		}
	})

	t.Run("north keeps bottom edge at minimum height", func(t *testing.T) {
		_, resize, rec := resizeFixture(t)
		resize.Start("a", DirN, 250, 100)
		resize.End(250, 390)
		if rec.Height != DefaultMinHeight {
			t.Errorf("height = %d, want %d", rec.Height, DefaultMinHeight)
		}
		if bottom := rec.Y + rec.Height; bottom != 400 {
			t.Errorf("bottom edge = %d, want 400 fixed", bottom)
		}
	})

	t.Run("east stops at minimum width", func(t *testing.T) {
		_, resize, rec := resizeFixture(t)
		resize.Start("a", DirE, 499, 250)
		resize.End(0, 250)
		if rec.Width != DefaultMinWidth || rec.X != 100 {
			t.Errorf("width = %d at x = %d, want %d at 100", rec.Width, rec.X, DefaultMinWidth)
		}
	})
}

func TestResizeCommitsOnlyAtSessionEnd(t *testing.T) {
	_, resize, rec := resizeFixture(t)
	resize.Start("a", DirSE, 499, 399)
	resize.Move(599, 499)

	if rec.Width != 400 || rec.Height != 300 {
		t.Errorf("committed size = %dx%d mid-session, want 400x300", rec.Width, rec.Height)
	}
	b, ok := resize.Bounds()
	if !ok || b.Width != 500 || b.Height != 400 {
		t.Errorf("in-flight bounds = %+v (%v), want 500x400", b, ok)
	}

	resize.Commit()
	if rec.Width != 500 || rec.Height != 400 {
		t.Errorf("committed size = %dx%d, want 500x400", rec.Width, rec.Height)
	}
}

func TestResizeTracksTotalTravelNotSteps(t *testing.T) {
	_, resize, rec := resizeFixture(t)
	resize.Start("a", DirW, 100, 250)
	// Wander below the minimum and back out again. The final rectangle
	// depends only on where the pointer ends up.
	resize.Move(490, 250)
	resize.Move(300, 250)
	resize.End(100, 250)

	got := rec.Bounds()
	want := Bounds{X: 100, Y: 100, Width: 400, Height: 300}
	if got != want {
		t.Errorf("bounds = %+v after a round trip, want %+v", got, want)
	}
}

func TestResizeIgnoresViewportEdges(t *testing.T) {
	reg, resize, rec := resizeFixture(t)
	vw, _ := reg.Viewport()

	resize.Start("a", DirE, 499, 250)
	resize.End(vw+400, 250)
	if right := rec.X + rec.Width; right <= vw {
		t.Errorf("right edge = %d, want it past the %d viewport edge", right, vw)
	}
}

func TestResizeRejectsInvalidDirection(t *testing.T) {
	_, resize, _ := resizeFixture(t)
	if resize.Start("a", Direction("up"), 100, 100) {
		t.Error("Start = true with a bogus direction, want false")
	}
	if resize.Active() {
		t.Error("session open after a rejected Start")
	}
}

func TestCloseDuringResizeCancelsSession(t *testing.T) {
	reg, resize, _ := resizeFixture(t)
	resize.Start("a", DirSE, 499, 399)
	resize.Move(600, 500)

	reg.Close("a")
	if resize.Active() {
		t.Error("session still active after the window closed")
	}
	resize.End(700, 600)
	if got := reg.Manipulating(); got != "" {
		t.Errorf("Manipulating() = %q, want empty", got)
	}
}

func TestResizeAbortKeepsCommittedBounds(t *testing.T) {
	_, resize, rec := resizeFixture(t)
	resize.Start("a", DirSE, 499, 399)
	resize.Move(600, 500)
	resize.Abort()

	got := rec.Bounds()
	want := Bounds{X: 100, Y: 100, Width: 400, Height: 300}
	if got != want {
		t.Errorf("bounds = %+v after Abort, want %+v", got, want)
	}
}

func TestCursor(t *testing.T) {
	b := Bounds{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		name    string
		x, y    int
		want    Direction
		wantHit bool
	}{
		{name: "top left corner", x: 10, y: 10, want: DirNW, wantHit: true},
		{name: "top right corner", x: 29, y: 10, want: DirNE, wantHit: true},
		{name: "bottom left corner", x: 10, y: 19, want: DirSW, wantHit: true},
		{name: "bottom right corner", x: 29, y: 19, want: DirSE, wantHit: true},
		{name: "top edge", x: 20, y: 10, want: DirN, wantHit: true},
		{name: "bottom edge", x: 20, y: 19, want: DirS, wantHit: true},
		{name: "left edge", x: 10, y: 15, want: DirW, wantHit: true},
		{name: "right edge", x: 29, y: 15, want: DirE, wantHit: true},
		{name: "interior", x: 20, y: 15, wantHit: false},
		{name: "outside", x: 50, y: 15, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := Cursor(b, tt.x, tt.y)
			if hit != tt.wantHit || got != tt.want {
				t.Errorf("Cursor(%d,%d) = %q, %v, want %q, %v", tt.x, tt.y, got, hit, tt.want, tt.wantHit)
			}
		})
	}
}
