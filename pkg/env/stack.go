// Package env implements the chain-of-frames symbol table: scope frames
// are dicts, environment chains are linked lists of frames (innermost
// first), and the environment stack is a vector of chains whose top entry
// is the currently active lexical environment.
package env

import (
	"github.com/mkeller/wisp/pkg/heap"
	"github.com/mkeller/wisp/pkg/value"
)

// Stack is itself a heap object (a value.Vector), per spec.md §3: it is
// part of the collector's root set precisely because ordinary tracing
// starting from symbols would never reach it otherwise.
type Stack struct {
	vec *value.Vector
}

// NewStack creates an environment stack with a single global chain: one
// frame, empty, at the bottom. The bottom chain is never popped.
func NewStack(h *heap.Heap) *Stack {
	vec := heap.Track(h, value.NewVector())
	s := &Stack{vec: vec}
	global := NewFrame(h, value.Nil)
	s.vec.Append(global)
	return s
}

// Vector exposes the backing heap object, for GC rooting.
func (s *Stack) Vector() *value.Vector { return s.vec }

// NewFrame builds a fresh chain node: an empty dict frame prepended to
// parent (Nil for a chain with no outer scopes). Both the frame's dict and
// the cons cell linking it to parent are registered with the heap.
func NewFrame(h *heap.Heap, parent value.Value) value.Value {
	frame := heap.Track(h, value.NewDict())
	return heap.Track(h, value.NewCons(frame, parent))
}

// Depth reports how many chains are on the stack.
func (s *Stack) Depth() int { return s.vec.Len() }

// Top returns the currently active chain (the top of the stack).
func (s *Stack) Top() (value.Value, error) {
	return s.vec.Get(-1)
}

// Push makes chain the active environment.
func (s *Stack) Push(chain value.Value) {
	s.vec.Append(chain)
}

// Pop discards the active chain, reverting to the one below it.
func (s *Stack) Pop() error {
	return s.vec.Remove(-1)
}

// TruncateTo discards chains until the stack's depth is at most depth,
// used by try-catch and the REPL's outermost recovery to unwind after a
// raise without rolling back any mutations already made to dicts.
func (s *Stack) TruncateTo(depth int) {
	for s.vec.Len() > depth {
		_ = s.vec.Remove(-1)
	}
}

func topFrame(chain value.Value) (*value.Dict, value.Value, bool) {
	cell, ok := chain.(*value.Cons)
	if !ok || cell == value.Nil {
		return nil, value.Nil, false
	}
	frame, ok := cell.Car.(*value.Dict)
	if !ok {
		return nil, value.Nil, false
	}
	return frame, cell.Cdr, true
}

// Define adds sym -> val to the top chain's innermost frame. It fails with
// an ErrRedefined if sym is already bound in that frame.
func (s *Stack) Define(sym *value.Symbol, val value.Value) error {
	top, err := s.Top()
	if err != nil {
		return err
	}
	frame, _, ok := topFrame(top)
	if !ok {
		return value.Errorf(value.ErrShape, "environment chain is empty")
	}
	if _, found := frame.Get(sym); found {
		return value.Errorf(value.ErrRedefined, "var named %s already defined in current scope", sym.Name)
	}
	return frame.Set(sym, val)
}

// Lookup walks the top chain from innermost to outermost frame, returning
// the first binding found.
func (s *Stack) Lookup(sym *value.Symbol) (value.Value, error) {
	top, err := s.Top()
	if err != nil {
		return nil, err
	}
	chain := top
	for {
		frame, rest, ok := topFrame(chain)
		if !ok {
			break
		}
		if v, found := frame.Get(sym); found {
			return v, nil
		}
		chain = rest
	}
	return nil, value.Errorf(value.ErrUnbound, "can't find var named %s", sym.Name)
}

// Assign walks the top chain, updating the first frame that already binds
// sym. It fails with ErrUnbound if no frame does.
func (s *Stack) Assign(sym *value.Symbol, val value.Value) error {
	top, err := s.Top()
	if err != nil {
		return err
	}
	chain := top
	for {
		frame, rest, ok := topFrame(chain)
		if !ok {
			break
		}
		if _, found := frame.Get(sym); found {
			return frame.Set(sym, val)
		}
		chain = rest
	}
	return value.Errorf(value.ErrUnbound, "can't find var named %s", sym.Name)
}

// Render dumps every chain on the stack for show-symbol-table.
func (s *Stack) Render() string {
	out := ""
	for i := 0; i < s.vec.Len(); i++ {
		chain, _ := s.vec.Get(i)
		scratch := make([]byte, 4096)
		n := chain.Render(scratch)
		out += "Scope #" + itoa(i) + ":\n" + string(scratch[:n]) + "\n"
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}
