package eval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkeller/wisp/internal/builtin"
	"github.com/mkeller/wisp/pkg/eval"
	"github.com/mkeller/wisp/pkg/heap"
	"github.com/mkeller/wisp/pkg/reader"
	"github.com/mkeller/wisp/pkg/value"
)

// newInterp builds a ready-to-use interpreter with every builtin
// registered, discarding its print output.
func newInterp(t *testing.T) *eval.Interp {
	t.Helper()
	h := heap.New(nil)
	symbols := value.NewSymbolTable()
	it := eval.New(h, symbols, &strings.Builder{}, nil, eval.DefaultLimits())
	require.NoError(t, builtin.Register(it, symbols))
	return it
}

// evalString reads and evaluates every form in src in sequence and returns
// the last result.
func evalString(t *testing.T, it *eval.Interp, src string) value.Value {
	t.Helper()
	rd := reader.New(it.Symbols, it.Track, []byte(src))
	var result value.Value = value.Nil
	for {
		form, err := rd.Read()
		if err == reader.ErrEOF {
			return result
		}
		require.NoError(t, err)
		result, err = it.Eval(form)
		require.NoError(t, err, "evaluating %q", src)
	}
}

func TestEval_Arithmetic(t *testing.T) {
	it := newInterp(t)
	result := evalString(t, it, "(+ 1 2 3)")
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 6, n)
}

func TestEval_MinusArityVariants(t *testing.T) {
	it := newInterp(t)

	n, err := value.AsInt(evalString(t, it, "(- 5)"))
	require.NoError(t, err)
	require.Equal(t, -5, n)

	n, err = value.AsInt(evalString(t, it, "(- 10 3)"))
	require.NoError(t, err)
	require.Equal(t, 7, n)

	n, err = value.AsInt(evalString(t, it, "(- 10 3 2)"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestEval_DefSetSequencing(t *testing.T) {
	it := newInterp(t)
	result := evalString(t, it, "(do (def x 10) (set x (+ x 5)) x)")
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 15, n)
}

func TestEval_FunctionApplication(t *testing.T) {
	it := newInterp(t)
	result := evalString(t, it, "((fn (x y) (+ x y)) 3 4)")
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestEval_ClosureCapturesLexicalEnvironment(t *testing.T) {
	it := newInterp(t)
	result := evalString(t, it, `
		(do
			(def make-adder (fn (n) (fn (x) (+ x n))))
			(def add10 (make-adder 10))
			(add10 5))
	`)
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 15, n)
}

func TestEval_TryCatchRecoversFromRaise(t *testing.T) {
	it := newInterp(t)
	result := evalString(t, it, "(try-catch (car (quote ())) 99)")
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 99, n)
}

func TestEval_TryCatchTruncatesEnvAndCallStackOnError(t *testing.T) {
	it := newInterp(t)
	depthBefore := it.Env.Depth()
	evalString(t, it, "(try-catch (car (quote ())) nil)")
	require.Equal(t, depthBefore, it.Env.Depth(), "try-catch must leave the environment stack at its entry depth")
	require.Equal(t, 0, it.CallStack.Len(), "try-catch must leave the call stack at its entry depth")
}

func TestEval_VectorAppendAndNegativeIndex(t *testing.T) {
	it := newInterp(t)
	result := evalString(t, it, `
		(do
			(def v (vector 1 2 3))
			(append v 4)
			(nth v -1))
	`)
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestEval_UnboundSymbolRaises(t *testing.T) {
	it := newInterp(t)
	rd := reader.New(it.Symbols, it.Track, []byte("totally-undefined-name"))
	form, err := rd.Read()
	require.NoError(t, err)
	_, err = it.Eval(form)
	require.Error(t, err)
}

func TestEval_MacroExpandsAgainstCallerEnv(t *testing.T) {
	it := newInterp(t)
	result := evalString(t, it, `
		(do
			(def my-if (macro (c t e) (list (quote if) c t e)))
			(my-if t 1 2))
	`)
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestEval_GC_CollectsUnreachableAllocations(t *testing.T) {
	it := newInterp(t)
	evalString(t, it, `(def transient (cons 1 2))`)
	liveBefore := it.Heap.Len()

	evalString(t, it, `(set transient nil)`)
	it.Collect()
	require.Less(t, it.Heap.Len(), liveBefore, "collecting after dropping the only reference should shrink the live set")
}

func TestEval_GC_KeepsReachableAllocations(t *testing.T) {
	it := newInterp(t)
	evalString(t, it, `(def kept (cons 1 2))`)
	it.Collect()
	// kept is still bound in the global frame, itself reachable from the
	// environment stack root, so it must survive the sweep.
	result := evalString(t, it, `(car kept)`)
	n, err := value.AsInt(result)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
