package heap

import "github.com/mkeller/wisp/pkg/value"

// Collect runs one full mark-sweep cycle: clear every mark bit, trace and
// mark everything reachable from roots, then release every allocation
// that was not marked. Per spec.md §4.1/§5, collection only ever runs
// between top-level evaluations — callers are responsible for not
// invoking it mid-form.
func (h *Heap) Collect(roots ...value.Value) {
	for _, rec := range h.table {
		rec.marked = false
	}
	for _, r := range roots {
		if r != nil {
			h.mark(r)
		}
	}
	h.sweep()
}

func (h *Heap) mark(v value.Value) {
	if v.IsStatic() {
		// Benign: symbols, nil, t, type descriptors, and builtins live
		// forever outside the allocation index.
		return
	}
	rec, ok := h.table[v.ID()]
	if !ok {
		// Per spec.md §4.1: encountering a pointer that isn't in the heap
		// index is only benign for static values (handled above).
		// Anything else indicates a bug in the tracer or a missed
		// heap.Track call; warn rather than treat it as fatal so a
		// single missed registration doesn't crash an otherwise healthy
		// session.
		h.logger.Warn("gc: object not in allocation table",
			"type", v.TypeDesc().Name, "id", v.ID())
		return
	}
	if rec.marked {
		return
	}
	rec.marked = true
	v.Trace(h.mark)
}

func (h *Heap) sweep() {
	for id, rec := range h.table {
		if !rec.marked {
			h.logger.Debug("gc: collecting", "type", rec.obj.TypeDesc().Name, "id", id, "size", rec.size)
			h.totalBytes -= rec.size
			delete(h.table, id)
		}
	}
}
