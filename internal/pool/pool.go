// Package pool provides shared object pools for render-path allocations.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"

	"github.com/flotilla-sh/flotilla/internal/config"
)

var stylePool = sync.Pool{
	New: func() any {
		style := lipgloss.NewStyle()
		return &style
	},
}

// GetStyle returns a fresh style from the pool.
func GetStyle() lipgloss.Style {
	return *stylePool.Get().(*lipgloss.Style)
}

// PutStyle returns a style's backing allocation to the pool. Styles are
// immutable values, so the slot is reset before reuse.
func PutStyle(lipgloss.Style) {
	style := lipgloss.NewStyle()
	stylePool.Put(&style)
}

var builderPool = sync.Pool{
	New: func() any {
		b := &strings.Builder{}
		b.Grow(config.StringBuilderInitialCapacity)
		return b
	},
}

// GetBuilder returns an empty string builder with preallocated capacity.
func GetBuilder() *strings.Builder {
	return builderPool.Get().(*strings.Builder)
}

// PutBuilder resets and recycles a builder. Oversized builders are dropped
// so one huge frame does not pin memory forever.
func PutBuilder(b *strings.Builder) {
	if b == nil || b.Cap() > 64*config.StringBuilderInitialCapacity {
		return
	}
	b.Reset()
	builderPool.Put(b)
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, config.LayerPoolInitialCapacity)
		return &s
	},
}

// GetLayerSlice returns an empty layer slice for canvas composition.
func GetLayerSlice() []*lipgloss.Layer {
	s := layerSlicePool.Get().(*[]*lipgloss.Layer)
	return (*s)[:0]
}

// PutLayerSlice recycles a layer slice. Elements are cleared so cached
// layers are not kept alive by the pool.
func PutLayerSlice(s []*lipgloss.Layer) {
	for i := range s {
		s[i] = nil
	}
	s = s[:0]
	layerSlicePool.Put(&s)
}
