package eval

// Limits bounds the resources a single interpreter instance will consume,
// grounded on the teacher's Limits/DefaultLimits/RelaxedLimits family: a
// small config struct with named constructors rather than scattered magic
// numbers.
type Limits struct {
	// MaxSymbols records the interned symbol pool's capacity. The pool is
	// bounded by the constant value.MaxSymbols; this field is not read.
	MaxSymbols int
	// MaxDictSchedule records the length of a dict's prime capacity
	// schedule (value.dictPrimes), after which further insertions fail
	// with ErrResource. The schedule itself sets that bound; this field is
	// not read.
	MaxDictSchedule int
	// MaxCallDepth bounds how many nested Apply calls may be live at once,
	// catching runaway (non-tail-recursive) recursion before it exhausts
	// the host process's own goroutine stack.
	MaxCallDepth int
}

// DefaultLimits returns the limits a REPL or file evaluation should run
// with under normal operation.
func DefaultLimits() Limits {
	return Limits{
		MaxSymbols:      256,
		MaxDictSchedule: 28,
		MaxCallDepth:    10000,
	}
}

// RelaxedLimits widens MaxCallDepth for trusted batch workloads (e.g. a
// prelude load) that are known to recurse deeply but are not adversarial.
func RelaxedLimits() Limits {
	l := DefaultLimits()
	l.MaxCallDepth = 200000
	return l
}
