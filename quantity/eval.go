package quantity

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Context holds variables and working storage for evaluating expressions. A
// Context must not be used concurrently.
type Context struct {
	vars  map[string]*big.Float
	prec  uint
	stack []*big.Float
	res   *big.Float
	err   error
	ran   bool
}

// ContextOption configures a Context.
type ContextOption interface {
	apply(*Context)
}

type (
	varopt struct {
		name string
		val  *big.Float
	}
	varsopt map[string]*big.Float
	precopt uint
)

func (o varopt) apply(ctx *Context) { ctx.vars[o.name] = ctx.round(o.val) }

func (o varsopt) apply(ctx *Context) {
	for k, v := range o {
		ctx.vars[k] = ctx.round(v)
	}
}

// Precision applies before any other option.
func (precopt) apply(*Context) {}

// SetVar defines one variable.
func SetVar(name string, val *big.Float) ContextOption {
	return varopt{name, val}
}

// SetVars defines each variable in vars.
func SetVars(vars map[string]*big.Float) ContextOption {
	return varsopt(vars)
}

// Prec sets the precision of results in bits. When given more than once, the
// last one wins.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates an evaluation context with 64 bits of precision unless
// an option says otherwise.
func NewContext(opts ...ContextOption) *Context {
	return (&Context{prec: 64}).Clone(opts...)
}

// Clone copies the variables of ctx into a new context, then applies opts.
// Variables are rounded to the new context's precision.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := &Context{vars: make(map[string]*big.Float, len(ctx.vars)), prec: ctx.prec}
	for _, opt := range opts {
		if p, ok := opt.(precopt); ok {
			n.prec = uint(p)
		}
	}
	for k, v := range ctx.vars {
		n.vars[k] = n.round(v)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(n)
		}
	}
	return n
}

// round copies x at the context's precision.
func (ctx *Context) round(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(ctx.prec).Set(x)
}

// Set defines a variable and returns ctx.
func (ctx *Context) Set(name string, value *big.Float) *Context {
	if ctx.vars == nil {
		ctx.vars = make(map[string]*big.Float)
	}
	ctx.vars[name] = ctx.round(value)
	return ctx
}

// Lookup returns a copy of a variable's value, or nil if it is undefined.
func (ctx *Context) Lookup(name string) *big.Float {
	v, ok := ctx.vars[name]
	if !ok {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Prec returns the precision of the context in bits.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates e. If evaluation fails, e.g. on an undefined variable or 0/0,
// the result is nil and Err reports why. The caller owns the returned value.
func (ctx *Context) Eval(e *Expr) *big.Float {
	ctx.ran = true
	ctx.res, ctx.err = nil, ctx.run(e.prog)
	if ctx.err == nil {
		if len(ctx.stack) != 1 {
			panic("quantity: program left " + strconv.Itoa(len(ctx.stack)) + " values")
		}
		ctx.res = ctx.stack[0]
	}
	clear(ctx.stack)
	ctx.stack = ctx.stack[:0]
	return ctx.res
}

// Result returns the value from the last call to Eval, or nil if it failed.
// Panics if ctx has not evaluated anything.
func (ctx *Context) Result() *big.Float {
	if !ctx.ran {
		panic("quantity: Result before Eval")
	}
	return ctx.res
}

// Err returns the error from the last call to Eval.
func (ctx *Context) Err() error {
	return ctx.err
}

// run executes a postfix program on the stack.
func (ctx *Context) run(prog []instr) error {
	for _, in := range prog {
		switch in.op {
		case nodeNum:
			ctx.push(ctx.number(in.arg))
		case nodeName:
			v, ok := ctx.vars[in.arg]
			if !ok {
				return &NameError{Name: in.arg}
			}
			ctx.push(v)
		case nodeNeg:
			x := ctx.stack[len(ctx.stack)-1]
			x.Neg(x)
		default:
			y := ctx.stack[len(ctx.stack)-1]
			ctx.stack = ctx.stack[:len(ctx.stack)-1]
			if err := arith(in.op, ctx.stack[len(ctx.stack)-1], y); err != nil {
				return err
			}
		}
	}
	return nil
}

// push pushes a copy of x.
func (ctx *Context) push(x *big.Float) {
	ctx.stack = append(ctx.stack, ctx.round(x))
}

// number converts the text of a number token. Exponents too large for
// big.Float become infinity.
func (ctx *Context) number(s string) *big.Float {
	x, _, err := new(big.Float).SetPrec(ctx.prec).Parse(s, 10)
	if err != nil {
		msg := err.Error()
		if !strings.Contains(msg, "overflow") && !strings.Contains(msg, "out of range") {
			panic("quantity: lexed invalid number " + strconv.Quote(s) + ": " + msg)
		}
		neg := strings.Contains(s, "e-") || strings.Contains(s, "E-")
		x = new(big.Float).SetPrec(ctx.prec)
		if !neg {
			x.SetInf(false)
		}
	}
	return x
}

// arith sets x to x op y.
func arith(op nodeKind, x, y *big.Float) error {
	undefined := false
	switch op {
	case nodeAdd:
		undefined = x.IsInf() && y.IsInf() && x.Signbit() != y.Signbit()
	case nodeSub:
		undefined = x.IsInf() && y.IsInf() && x.Signbit() == y.Signbit()
	case nodeMul:
		undefined = x.IsInf() && y.Sign() == 0 || x.Sign() == 0 && y.IsInf()
	case nodeDiv:
		undefined = x.Sign() == 0 && y.Sign() == 0 || x.IsInf() && y.IsInf()
	case nodePow:
		return pow(x, y)
	default:
		panic("quantity: no arithmetic for " + op.String())
	}
	if undefined {
		return DomainError{X: y, Func: kindInfo[op].infix}
	}
	switch op {
	case nodeAdd:
		x.Add(x, y)
	case nodeSub:
		x.Sub(x, y)
	case nodeMul:
		x.Mul(x, y)
	case nodeDiv:
		x.Quo(x, y)
	}
	return nil
}

// maxIntExp bounds exponents computed by repeated squaring.
const maxIntExp = 1 << 20

// pow sets x to x^y. Small integer exponents are computed by squaring and
// allow any base. Other exponents need a finite base of at least zero.
func pow(x, y *big.Float) (err error) {
	if k, acc := y.Int64(); y.IsInt() && acc == big.Exact && -maxIntExp <= k && k <= maxIntExp {
		if x.Sign() == 0 && k < 0 {
			return DomainError{X: x, Func: "^"}
		}
		powi(x, k)
		return nil
	}
	switch {
	case x.Signbit(), x.IsInf(), y.IsInf():
		return DomainError{X: x, Func: "^"}
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return DomainError{X: x, Func: "^"}
		}
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(big.ErrNaN); !ok {
				panic(r)
			}
			err = DomainError{X: y, Func: "^"}
		}
	}()
	z := new(big.Float).SetPrec(x.Prec())
	bigfloat.Pow(z, x, y)
	x.Set(z)
	return nil
}

// powi sets x to x^k.
func powi(x *big.Float, k int64) {
	b := new(big.Float).SetPrec(x.Prec()).Set(x)
	x.SetInt64(1)
	for n := k; n != 0; n /= 2 {
		if n%2 != 0 {
			x.Mul(x, b)
		}
		b.Mul(b, b)
	}
	if k < 0 {
		x.Quo(new(big.Float).SetInt64(1), x)
	}
}

// Eval parses and evaluates src.
func Eval(src string, opts ...ContextOption) (*big.Float, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	r := ctx.Eval(e)
	return r, ctx.Err()
}

// Eval is shorthand for ctx.Eval(e).
func (e *Expr) Eval(ctx *Context) *big.Float {
	return ctx.Eval(e)
}

// NameError is the error for a variable with no definition.
type NameError struct {
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable " + strconv.Quote(err.Name)
}

// DomainError is the error for an operation with no value, such as 0/0 or a
// fractional power of a negative number.
type DomainError struct {
	// X is the operand outside the domain.
	X *big.Float
	// Func is the operator.
	Func string
}

func (err DomainError) Error() string {
	if err.Func == "" {
		return err.X.String() + " outside domain"
	}
	return err.X.String() + " outside domain of " + err.Func
}
