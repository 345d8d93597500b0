// Package sysinfo samples host CPU and memory usage for the status bar.
// Sampling is driven by the app tick rather than a goroutine of its own,
// and every probe failure degrades to a dash instead of an error.
package sysinfo

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/flotilla-sh/flotilla/internal/config"
)

// Sampler polls CPU and memory on a fixed cadence and keeps a bounded
// CPU history for the sparkline gauge. Not safe for concurrent use; it
// lives on the Bubble Tea update loop.
type Sampler struct {
	interval time.Duration
	last     time.Time

	cpuHistory []float64
	histSize   int
	cpuOK      bool

	memUsedPercent float64
	memUsed        uint64
	memTotal       uint64
	memOK          bool

	// Probe seams, replaced in tests.
	cpuFn func() ([]float64, error)
	memFn func() (*mem.VirtualMemoryStat, error)
}

// NewSampler returns a sampler polling at the given interval with a
// CPU history of historySize entries. Non-positive arguments fall back
// to the configured defaults.
func NewSampler(interval time.Duration, historySize int) *Sampler {
	if interval <= 0 {
		interval = config.SysinfoUpdateInterval
	}
	if historySize <= 0 {
		historySize = config.CPUHistorySize
	}
	return &Sampler{
		interval: interval,
		histSize: historySize,
		cpuFn:    func() ([]float64, error) { return cpu.Percent(0, false) },
		memFn:    mem.VirtualMemory,
	}
}

// Tick samples when the interval has elapsed since the previous sample.
// It reports whether a new sample was taken, so the caller knows when
// the status bar content changed.
func (s *Sampler) Tick(now time.Time) bool {
	if !s.last.IsZero() && now.Sub(s.last) < s.interval {
		return false
	}
	s.last = now
	s.sample()
	return true
}

func (s *Sampler) sample() {
	percents, err := s.cpuFn()
	if err != nil || len(percents) == 0 {
		s.cpuOK = false
	} else {
		s.cpuOK = true
		s.cpuHistory = append(s.cpuHistory, clampPercent(percents[0]))
		if len(s.cpuHistory) > s.histSize {
			s.cpuHistory = s.cpuHistory[len(s.cpuHistory)-s.histSize:]
		}
	}

	vm, err := s.memFn()
	if err != nil || vm == nil {
		s.memOK = false
	} else {
		s.memOK = true
		s.memUsedPercent = clampPercent(vm.UsedPercent)
		s.memUsed = vm.Used
		s.memTotal = vm.Total
	}
}

// CPUPercent returns the newest CPU sample. ok is false until a sample
// succeeds.
func (s *Sampler) CPUPercent() (float64, bool) {
	if !s.cpuOK || len(s.cpuHistory) == 0 {
		return 0, false
	}
	return s.cpuHistory[len(s.cpuHistory)-1], true
}

// CPUHistory returns the retained samples, oldest first.
func (s *Sampler) CPUHistory() []float64 {
	return s.cpuHistory
}

// MemoryPercent returns the used-memory percentage from the newest
// sample.
func (s *Sampler) MemoryPercent() (float64, bool) {
	if !s.memOK {
		return 0, false
	}
	return s.memUsedPercent, true
}

// Memory returns used and total bytes from the newest sample.
func (s *Sampler) Memory() (used, total uint64, ok bool) {
	if !s.memOK {
		return 0, 0, false
	}
	return s.memUsed, s.memTotal, true
}

// CPUGauge formats the newest CPU sample for the status bar.
func (s *Sampler) CPUGauge() string {
	pct, ok := s.CPUPercent()
	if !ok {
		return "--%"
	}
	return fmt.Sprintf("%2.0f%%", pct)
}

// MemoryGauge formats memory usage for the status bar.
func (s *Sampler) MemoryGauge() string {
	used, total, ok := s.Memory()
	if !ok {
		return "--/--"
	}
	return FormatBytes(used) + "/" + FormatBytes(total)
}

// Sparkline renders the CPU history as one glyph per sample, oldest
// first, padded with spaces up to the history size.
func (s *Sampler) Sparkline() string {
	levels := sparkLevels()
	out := make([]rune, 0, s.histSize)
	for range s.histSize - len(s.cpuHistory) {
		out = append(out, ' ')
	}
	for _, pct := range s.cpuHistory {
		idx := int(pct / config.CPUGraphScale)
		if idx >= len(levels) {
			idx = len(levels) - 1
		}
		out = append(out, levels[idx])
	}
	return string(out)
}

func sparkLevels() []rune {
	if config.UseASCIIOnly {
		return []rune("__--==##")
	}
	return []rune("▁▂▃▄▅▆▇█")
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FormatBytes renders a byte count in compact binary units.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(n)/float64(div), "KMGTPE"[exp])
}
