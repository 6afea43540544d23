// Package status publishes runtime readings (frame rate, quality, focus, speed)
// for the HUD and the log without threading them through every call
package status

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Well-known keys
const (
	KeyFPS        = "fps"
	KeyLowQuality = "quality.low"
	KeyFocus      = "focus.body"
	KeyFocusState = "focus.state"
	KeySpeed      = "sim.speed"
	KeyPaused     = "sim.paused"
	KeyFrames     = "sim.frames"
)

// Float is a float64 stored as bits
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *Float) Load() float64   { return math.Float64frombits(f.bits.Load()) }

// Text is an atomically swapped string, truncated to MaxTextLen bytes
type Text struct {
	p atomic.Pointer[string]
}

const MaxTextLen = 32

func (s *Text) Store(v string) {
	if len(v) > MaxTextLen {
		v = v[:MaxTextLen]
	}
	s.p.Store(&v)
}

func (s *Text) Load() string {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return ""
}

// Table maps names to lazily allocated cells of type T
// Writers cache the returned pointer; only the first lookup of a key locks for writing
type Table[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, allocating it on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.RLock()
	c, ok := t.cells[key]
	t.mu.RUnlock()
	if ok {
		return c
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok = t.cells[key]; !ok {
		c = new(T)
		t.cells[key] = c
	}
	return c
}

// Keys in sorted order
func (t *Table[T]) Keys() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.cells))
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cells)
}

// Registry groups the typed tables
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[Float]
	Strings *Table[Text]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   newTable[atomic.Bool](),
		Ints:    newTable[atomic.Int64](),
		Floats:  newTable[Float](),
		Strings: newTable[Text](),
	}
}

// Len is the number of registered readings across all tables
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Lines renders every reading as "key: value", grouped by type and sorted by key
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.Len())
	for _, k := range r.Bools.Keys() {
		out = append(out, fmt.Sprintf("%s: %t", k, r.Bools.Get(k).Load()))
	}
	for _, k := range r.Ints.Keys() {
		out = append(out, fmt.Sprintf("%s: %d", k, r.Ints.Get(k).Load()))
	}
	for _, k := range r.Floats.Keys() {
		out = append(out, fmt.Sprintf("%s: %.2f", k, r.Floats.Get(k).Load()))
	}
	for _, k := range r.Strings.Keys() {
		out = append(out, fmt.Sprintf("%s: %s", k, r.Strings.Get(k).Load()))
	}
	return out
}
