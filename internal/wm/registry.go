package wm

import (
	"cmp"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Registry is the single store of window records. It owns z-index
// allocation, active-window bookkeeping, and the viewport bounds used for
// clamping. All mutators are silent no-ops when the id is unknown;
// concurrent closes and stale references are expected, not errors.
type Registry struct {
	mu      sync.RWMutex
	cfg     Config
	records map[string]*WindowRecord

	nextZ        int
	nextMinimize int
	gen          uint64

	viewportW int
	viewportH int

	// sessionID holds the id of the window owned by the active drag or
	// resize session. Empty when idle.
	sessionID string

	closeHooks []func(id string)
	logf       func(format string, args ...any)
}

// New creates an empty registry with the given policy. There is no
// package-level instance; owners create and inject their own.
func New(cfg Config) *Registry {
	cfg = cfg.normalize()
	return &Registry{
		cfg:          cfg,
		records:      make(map[string]*WindowRecord),
		nextZ:        1,
		nextMinimize: 1,
		viewportW:    cfg.ViewportWidth,
		viewportH:    cfg.ViewportHeight,
	}
}

// Config returns the registry's geometry policy.
func (r *Registry) Config() Config {
	return r.cfg
}

// SetLogf installs an optional debug sink for no-op diagnostics. Nil
// disables logging.
func (r *Registry) SetLogf(logf func(format string, args ...any)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logf = logf
}

func (r *Registry) debugf(format string, args ...any) {
	if r.logf != nil {
		r.logf(format, args...)
	}
}

// OnClose registers a hook invoked synchronously after a record is
// removed. Controllers use it to tear down sessions bound to the id.
func (r *Registry) OnClose(fn func(id string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeHooks = append(r.closeHooks, fn)
}

// Generation returns a counter bumped by every mutation. The render
// layer compares it to decide whether caches are stale.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

// SetViewport updates the bounds used for drag clamping and default
// placement.
func (r *Registry) SetViewport(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width > 0 {
		r.viewportW = width
	}
	if height > 0 {
		r.viewportH = height
	}
	r.gen++
}

// Viewport returns the current viewport bounds.
func (r *Registry) Viewport() (width, height int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.viewportW, r.viewportH
}

// OpenOption customizes a single Open call.
type OpenOption func(*openOptions)

type openOptions struct {
	pos      Point
	hasPos   bool
	size     Bounds
	hasSize  bool
	data     any
	hasData  bool
	title    string
	hasTitle bool
}

// WithPosition opens the window at an explicit position instead of the
// default center-biased placement.
func WithPosition(x, y int) OpenOption {
	return func(o *openOptions) {
		o.pos = Point{X: x, Y: y}
		o.hasPos = true
	}
}

// WithSize opens the window with an explicit size.
func WithSize(width, height int) OpenOption {
	return func(o *openOptions) {
		o.size = Bounds{Width: width, Height: height}
		o.hasSize = true
	}
}

// WithData attaches a caller payload to the record.
func WithData(data any) OpenOption {
	return func(o *openOptions) {
		o.data = data
		o.hasData = true
	}
}

// WithTitle sets the display title.
func WithTitle(title string) OpenOption {
	return func(o *openOptions) {
		o.title = title
		o.hasTitle = true
	}
}

// Open creates a window record, or replaces the content of an existing
// one. The returned bool reports whether a new record was created.
//
// An existing id keeps its geometry: content, data, and title are
// updated, a minimized record is restored, and the record is fronted and
// made active with a fresh z-index. A new record gets the next z-index,
// becomes active, and is placed at its explicit position or at a
// center-biased, cascade-staggered default. An empty id gets a generated
// one.
func (r *Registry) Open(id string, kind Kind, content any, opts ...OpenOption) (*WindowRecord, bool) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}
	if id == "" {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.records[id]; ok {
		rec.Kind = kind
		rec.Content = content
		if o.hasData {
			rec.Data = o.data
		}
		if o.hasTitle {
			rec.Title = o.title
		}
		if rec.Minimized {
			rec.Minimized = false
			rec.MinimizeOrder = 0
		}
		r.frontLocked(rec)
		rec.InvalidateCache()
		r.gen++
		return rec, false
	}

	width, height := r.cfg.DefaultWidth, r.cfg.DefaultHeight
	if o.hasSize {
		width, height = o.size.Width, o.size.Height
	}
	width, height = r.sanitizeSize(width, height)

	x, y := r.placeLocked(o, width, height)

	rec := &WindowRecord{
		ID:      id,
		Kind:    kind,
		Title:   o.title,
		Content: content,
		Data:    o.data,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
	}
	r.records[id] = rec
	r.frontLocked(rec)
	rec.InvalidateCache()
	r.gen++
	return rec, true
}

// placeLocked resolves the initial position for a new record.
func (r *Registry) placeLocked(o openOptions, width, height int) (int, int) {
	idx := len(r.records)
	offset := 0
	if r.cfg.CascadePolicy != CascadeOff {
		offset = (idx % r.cfg.CascadeWrap) * r.cfg.CascadeStride
	}

	if o.hasPos {
		if r.cfg.CascadePolicy == CascadeAll {
			return o.pos.X + offset, o.pos.Y + offset
		}
		return o.pos.X, o.pos.Y
	}

	x := (r.viewportW-width)/2 + offset
	y := (r.viewportH-height)/2 + offset
	x = clamp(x, 0, max(0, r.viewportW-width))
	y = clamp(y, 0, max(0, r.viewportH-height))
	return x, y
}

// frontLocked makes rec the sole active record and gives it the next
// z-index unconditionally.
func (r *Registry) frontLocked(rec *WindowRecord) {
	for _, other := range r.records {
		if other != rec && other.Active {
			other.Active = false
			other.MarkContentDirty()
		}
	}
	rec.Active = true
	rec.Z = r.nextZ
	r.nextZ++
	rec.MarkContentDirty()
}

// focusLocked applies focus semantics: a no-op when the record is
// already active and visible, otherwise front it.
func (r *Registry) focusLocked(rec *WindowRecord) {
	if rec.Active && !rec.Minimized {
		return
	}
	r.frontLocked(rec)
	r.gen++
}

// Focus makes the record active and frontmost. Calling it on the record
// that is already active and not minimized changes nothing; unknown ids
// are ignored.
func (r *Registry) Focus(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		r.debugf("focus: no window %q", id)
		return
	}
	r.focusLocked(rec)
}

// Close removes the record and reports whether it existed. If the record
// was active, the highest-z remaining visible record becomes active. Any
// session bound to the id is torn down through the close hooks before
// Close returns.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	rec, ok := r.records[id]
	if !ok {
		r.mu.Unlock()
		r.debugf("close: no window %q", id)
		return false
	}
	delete(r.records, id)
	if rec.Active {
		if next := r.topVisibleLocked(); next != nil {
			next.Active = true
			next.MarkContentDirty()
		}
	}
	r.gen++
	hooks := slices.Clone(r.closeHooks)
	r.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
	return true
}

// topVisibleLocked returns the highest-z non-minimized record, or nil.
func (r *Registry) topVisibleLocked() *WindowRecord {
	var top *WindowRecord
	for _, rec := range r.records {
		if rec.Minimized {
			continue
		}
		if top == nil || rec.Z > top.Z {
			top = rec
		}
	}
	return top
}

// List returns all non-minimized records in ascending z order: the paint
// order, with the last entry frontmost.
func (r *Registry) List() []*WindowRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*WindowRecord, 0, len(r.records))
	for _, rec := range r.records {
		if !rec.Minimized {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b *WindowRecord) int { return cmp.Compare(a.Z, b.Z) })
	return out
}

// Records returns every record, minimized included, in ascending z
// order. The dock and the diagnostics overlay read this.
func (r *Registry) Records() []*WindowRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*WindowRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b *WindowRecord) int { return cmp.Compare(a.Z, b.Z) })
	return out
}

// Get returns the record for id.
func (r *Registry) Get(id string) (*WindowRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	return rec, ok
}

// ActiveID returns the id of the active record, or empty.
func (r *Registry) ActiveID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.Active {
			return rec.ID
		}
	}
	return ""
}

// Len returns the number of tracked records, minimized included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// SetPosition commits a window position. Unknown ids are ignored.
func (r *Registry) SetPosition(id string, x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		r.debugf("set position: no window %q", id)
		return
	}
	rec.X, rec.Y = x, y
	rec.MarkPositionDirty()
	r.gen++
}

// SetBounds commits a window rectangle. Sizes below the configured
// minimums are raised to them; unknown ids are ignored.
func (r *Registry) SetBounds(id string, x, y, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		r.debugf("set bounds: no window %q", id)
		return
	}
	width, height = r.sanitizeSize(width, height)
	rec.X, rec.Y = x, y
	if width != rec.Width || height != rec.Height {
		rec.Width, rec.Height = width, height
		rec.MarkContentDirty()
	}
	rec.MarkPositionDirty()
	r.gen++
}

func (r *Registry) sanitizeSize(width, height int) (int, int) {
	if width < r.cfg.MinWidth {
		width = r.cfg.MinWidth
	}
	if height < r.cfg.MinHeight {
		height = r.cfg.MinHeight
	}
	return width, height
}

// Reset removes every record and restarts allocation. Registered close
// hooks, the viewport, and the config survive; test isolation uses this
// between cases.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]*WindowRecord)
	r.nextZ = 1
	r.nextMinimize = 1
	r.sessionID = ""
	r.gen++
}

// Manipulating returns the id owned by the active drag or resize
// session, or empty when idle.
func (r *Registry) Manipulating() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessionID
}

// acquireSession claims the global session slot. At most one drag or
// resize session exists at a time.
func (r *Registry) acquireSession(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessionID != "" {
		return false
	}
	r.sessionID = id
	return true
}

func (r *Registry) releaseSession(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessionID == id {
		r.sessionID = ""
	}
}

func (r *Registry) markDragging(id string, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		rec.Dragging = on
		r.gen++
	}
}

func (r *Registry) markResizing(id string, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		rec.Resizing = on
		r.gen++
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
