// Package heap implements the tracing mark-sweep collector described in
// spec.md §4.1: an index of live allocations keyed by the allocation's
// identity, traced from a caller-supplied root set and swept between
// top-level evaluations.
//
// Go's own runtime already manages the memory behind every *value.Cons,
// *value.Vector, and so on; this package does not free bytes back to the
// operating system. It faithfully reproduces the *bookkeeping* the
// original C allocator performed — an allocation table, mark bits, sweep
// accounting — so the collector's observable behavior (what is reachable
// survives, what isn't is removed from the table and its logical memory
// total decreases) matches spec.md's testable properties exactly.
package heap

import (
	"log/slog"

	"github.com/mkeller/wisp/pkg/value"
)

type record struct {
	obj    value.Value
	size   int
	marked bool
}

// Heap is the allocation index: a map keyed by object identity stands in
// for the "chained hash table keyed by a function of the payload pointer"
// of spec.md §4.1 — Go's builtin map already is that chained hash table.
type Heap struct {
	table      map[uint64]*record
	totalBytes int
	logger     *slog.Logger
}

// New creates an empty heap. A nil logger discards diagnostics.
func New(logger *slog.Logger) *Heap {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Heap{table: make(map[uint64]*record), logger: logger}
}

// Track registers v with the heap's allocation index, unless v is one of
// the static values (symbols, nil, t, type descriptors, builtins) that are
// never collected. It returns v unchanged, so call sites can wrap a
// constructor directly: heap.Track(h, value.NewCons(a, b)).
func Track[T value.Value](h *Heap, v T) T {
	h.register(v)
	return v
}

func (h *Heap) register(v value.Value) {
	if v.IsStatic() {
		return
	}
	size := v.Size()
	h.table[v.ID()] = &record{obj: v, size: size}
	h.totalBytes += size
}

// Len reports how many objects are currently indexed.
func (h *Heap) Len() int { return len(h.table) }

// TotalBytes reports the sum of the sizes of all indexed allocations,
// mirroring alloc.c's memory_in_alloc_table().
func (h *Heap) TotalBytes() int { return h.totalBytes }

// Contains reports whether id is currently indexed, so a caller can check
// whether a value was (or wasn't) swept.
func (h *Heap) Contains(id uint64) bool {
	_, ok := h.table[id]
	return ok
}
