package wm

import "slices"

// Minimize hides the window from the visible set while keeping its
// geometry and z-index. The active flag is left alone, so an active
// window stays active while minimized. Minimizing a maximized window
// returns it to its snapshot geometry first; the two states never hold
// at once. Unknown ids and already-minimized windows are ignored.
func (r *Registry) Minimize(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		r.debugf("minimize: no window %q", id)
		return
	}
	if rec.Minimized {
		return
	}
	if rec.Maximized {
		r.unmaximizeLocked(rec)
	}
	rec.Minimized = true
	rec.MinimizeOrder = r.nextMinimize
	r.nextMinimize++
	r.gen++
}

// Restore brings a minimized window back into the visible set and fronts
// it. Restoring a visible window just focuses it.
func (r *Registry) Restore(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		r.debugf("restore: no window %q", id)
		return
	}
	if rec.Minimized {
		rec.Minimized = false
		rec.MinimizeOrder = 0
	}
	r.focusLocked(rec)
}

// RestoreAll brings every minimized window back, in the order they were
// minimized, fronting each in turn.
func (r *Registry) RestoreAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	minimized := r.minimizedLocked()
	for _, rec := range minimized {
		rec.Minimized = false
		rec.MinimizeOrder = 0
		r.frontLocked(rec)
	}
	if len(minimized) > 0 {
		r.gen++
	}
}

// Minimized returns the minimized records in the order they were
// minimized. The dock renders this.
func (r *Registry) Minimized() []*WindowRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.minimizedLocked()
}

func (r *Registry) minimizedLocked() []*WindowRecord {
	var out []*WindowRecord
	for _, rec := range r.records {
		if rec.Minimized {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b *WindowRecord) int { return a.MinimizeOrder - b.MinimizeOrder })
	return out
}

// Maximize snapshots the window's geometry and grows it to fill the
// viewport. A minimized window is brought back first. The window is
// fronted and made active. Maximizing an already-maximized window
// changes nothing, in particular the snapshot is kept.
func (r *Registry) Maximize(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		r.debugf("maximize: no window %q", id)
		return
	}
	if rec.Maximized {
		r.focusLocked(rec)
		return
	}
	if rec.Minimized {
		rec.Minimized = false
		rec.MinimizeOrder = 0
	}
	rec.PrevX, rec.PrevY = rec.X, rec.Y
	rec.PrevWidth, rec.PrevHeight = rec.Width, rec.Height
	rec.X, rec.Y = 0, 0
	rec.Width, rec.Height = r.viewportW, r.viewportH
	rec.Maximized = true
	rec.InvalidateCache()
	r.focusLocked(rec)
	r.gen++
}

// Unmaximize returns the window to the exact geometry captured when it
// was maximized. The window keeps its place in the stack; focus is not
// transferred. Non-maximized windows are ignored.
func (r *Registry) Unmaximize(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		r.debugf("unmaximize: no window %q", id)
		return
	}
	if !rec.Maximized {
		return
	}
	r.unmaximizeLocked(rec)
	r.gen++
}

func (r *Registry) unmaximizeLocked(rec *WindowRecord) {
	rec.X, rec.Y = rec.PrevX, rec.PrevY
	rec.Width, rec.Height = rec.PrevWidth, rec.PrevHeight
	rec.Maximized = false
	rec.InvalidateCache()
}

// ToggleMaximize flips between maximized and the stored geometry.
func (r *Registry) ToggleMaximize(id string) {
	r.mu.RLock()
	rec, ok := r.records[id]
	maximized := ok && rec.Maximized
	r.mu.RUnlock()
	if !ok {
		r.debugf("toggle maximize: no window %q", id)
		return
	}
	if maximized {
		r.Unmaximize(id)
	} else {
		r.Maximize(id)
	}
}

// FillViewport refreshes the geometry of maximized windows after a
// viewport change so they keep covering it.
func (r *Registry) FillViewport() {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := false
	for _, rec := range r.records {
		if !rec.Maximized {
			continue
		}
		if rec.Width != r.viewportW || rec.Height != r.viewportH || rec.X != 0 || rec.Y != 0 {
			rec.X, rec.Y = 0, 0
			rec.Width, rec.Height = r.viewportW, r.viewportH
			rec.InvalidateCache()
			changed = true
		}
	}
	if changed {
		r.gen++
	}
}
