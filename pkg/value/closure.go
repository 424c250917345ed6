package value

import "fmt"

// Closure is the single callable variant backing both functions and
// macros, distinguished by IsFunction. Function closures capture their
// lexical environment eagerly, at definition time; macro closures capture
// nothing and instead splice a fresh frame onto the caller's current
// chain at expansion time (see pkg/eval's Apply).
type Closure struct {
	id         uint64
	Args       *Cons // proper list of parameter Symbols
	Body       *Cons // proper list of body forms
	Env        Value // captured environment chain (Nil for macros)
	IsFunction bool
	Arity      int
	Name       *Symbol // set by def, once, if still unnamed
}

// NewClosure validates that args is a proper list of symbols and builds the
// closure. Repeated parameter names are not rejected. scopeContext is the captured chain for function
// closures; pass value.Nil for macros (they resolve free variables in the
// caller's top scope at expansion time instead).
func NewClosure(args, body *Cons, scopeContext Value, isFunction bool) (*Closure, error) {
	arity := 0
	node := args
	for node != Nil {
		if _, ok := node.Car.(*Symbol); !ok {
			return nil, Errorf(ErrShape, "macro argument list contains non-symbol")
		}
		next, ok := node.Cdr.(*Cons)
		if !ok {
			return nil, Errorf(ErrShape, "macro argument list is not a proper list")
		}
		node = next
		arity++
	}
	return &Closure{
		id:         nextID(),
		Args:       args,
		Body:       body,
		Env:        scopeContext,
		IsFunction: isFunction,
		Arity:      arity,
	}, nil
}

func (c *Closure) Kind() Kind               { return KindClosure }
func (c *Closure) TypeDesc() *TypeDescriptor { return ClosureType }
func (c *Closure) ID() uint64                { return c.id }
func (c *Closure) IsStatic() bool            { return false }
func (c *Closure) Size() int                 { return 64 }
func (c *Closure) String() string            { return renderToString(c) }

func (c *Closure) Trace(visit func(Value)) {
	if c.Args != nil {
		visit(c.Args)
	}
	if c.Body != nil {
		visit(c.Body)
	}
	if c.Env != nil {
		visit(c.Env)
	}
}

func (c *Closure) Render(buf []byte) int {
	kind := "macro"
	if c.IsFunction {
		kind = "function"
	}
	if c.Name != nil {
		return copyTrunc(buf, fmt.Sprintf("%s %s", kind, c.Name.Name))
	}
	return copyTrunc(buf, fmt.Sprintf("Anonymous %s #%d", kind, c.id))
}
