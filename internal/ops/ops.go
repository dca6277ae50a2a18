// Package ops binds the named operations the CLI, REPL, TUI, and HTTP
// service all dispatch through to the underlying bigint package. Keeping
// the registry here means a new operation only has to be added once to
// reach every surface.
package ops

import (
	"fmt"
	"sort"

	"github.com/atmofx/bigint/bigint"
	apperrors "github.com/atmofx/bigint/internal/errors"
)

// Op describes one named operation: how many operands it takes and how to
// compute its result once those operands have been parsed.
type Op struct {
	// Name is the identifier used on the command line, in the REPL, and in
	// the HTTP API (e.g. "add", "factorial").
	Name string
	// Summary is a one-line description shown in help and usage text.
	Summary string
	// MinOperands and MaxOperands bound the arity. MaxOperands of -1 means
	// unbounded.
	MinOperands, MaxOperands int
	// Apply computes the result from already-parsed operands. Run checks
	// both the operands and the result against maxLimbs; Apply receives
	// maxLimbs but none of the registered operations read it.
	Apply func(operands []bigint.Int, maxLimbs int) (bigint.Int, error)
}

// limbCount reports how many 32-bit limbs x's magnitude occupies.
func limbCount(x bigint.Int) int {
	if x.BitLen() == 0 {
		return 1
	}
	return (x.BitLen() + 31) / 32
}

func checkLimbs(x bigint.Int, maxLimbs int, what string) error {
	if maxLimbs > 0 && limbCount(x) > maxLimbs {
		return apperrors.MemoryError{
			Requested: uint64(limbCount(x)) * 4,
			Available: uint64(maxLimbs) * 4,
			Limit:     uint64(maxLimbs) * 4,
		}
	}
	_ = what
	return nil
}

func checkOperandLimbs(operands []bigint.Int, maxLimbs int) error {
	for i, x := range operands {
		if err := checkLimbs(x, maxLimbs, fmt.Sprintf("operand %d", i)); err != nil {
			return err
		}
	}
	return nil
}

func smallUint64(x bigint.Int, field string) (uint64, error) {
	v, ok := x.Uint64()
	if !ok {
		return 0, apperrors.ValidationError{Field: field, Message: "must be a non-negative integer that fits in 64 bits"}
	}
	return v, nil
}

// Registry lists every operation this module implements, grounded directly
// on the bigint package's exported functions.
var Registry = []Op{
	{
		Name: "add", Summary: "x + y", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			return ops[0].Add(ops[1]), nil
		},
	},
	{
		Name: "sub", Summary: "x - y", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			return ops[0].Sub(ops[1]), nil
		},
	},
	{
		Name: "mul", Summary: "x * y", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			return ops[0].Mul(ops[1]), nil
		},
	},
	{
		Name: "quo", Summary: "x / y, truncated toward zero", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			if ops[1].IsZero() {
				return bigint.Zero, apperrors.ValidationError{Field: "y", Message: "division by zero"}
			}
			return ops[0].Quo(ops[1]), nil
		},
	},
	{
		Name: "rem", Summary: "x mod y, sign of x", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			if ops[1].IsZero() {
				return bigint.Zero, apperrors.ValidationError{Field: "y", Message: "division by zero"}
			}
			return ops[0].Rem(ops[1]), nil
		},
	},
	{
		Name: "pow", Summary: "base ^ exp, exp a non-negative integer", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			exp, err := smallUint64(ops[1], "exp")
			if err != nil {
				return bigint.Zero, err
			}
			return bigint.Pow(ops[0], exp), nil
		},
	},
	{
		Name: "factorial", Summary: "n!", MinOperands: 1, MaxOperands: 1,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			n, err := smallUint64(ops[0], "n")
			if err != nil {
				return bigint.Zero, err
			}
			return bigint.Factorial(n), nil
		},
	},
	{
		Name: "fib", Summary: "the n-th Fibonacci number, F(0)=0, F(1)=1", MinOperands: 1, MaxOperands: 1,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			n, err := smallUint64(ops[0], "n")
			if err != nil {
				return bigint.Zero, err
			}
			seq, err := bigint.FibonacciSeq(2, n, n, []bigint.Int{bigint.Zero, bigint.One})
			if err != nil {
				return bigint.Zero, apperrors.WrapError(err, "fib")
			}
			return seq[0], nil
		},
	},
	{
		Name: "gcd", Summary: "greatest common divisor of x and y", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			return bigint.GCD(ops[0], ops[1]), nil
		},
	},
	{
		Name: "lcm", Summary: "least common multiple of x and y", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			return bigint.LCM(ops[0], ops[1]), nil
		},
	},
	{
		Name: "isprime", Summary: "1 if n is prime, else 0", MinOperands: 1, MaxOperands: 1,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			if bigint.IsPrime(ops[0]) {
				return bigint.One, nil
			}
			return bigint.Zero, nil
		},
	},
	{
		Name: "binomial", Summary: "the binomial coefficient C(n, k)", MinOperands: 2, MaxOperands: 2,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			return bigint.Binomial(ops[0], ops[1]), nil
		},
	},
	{
		Name: "sqrt", Summary: "the integer square root of n, floor(sqrt(n))", MinOperands: 1, MaxOperands: 1,
		Apply: func(ops []bigint.Int, maxLimbs int) (bigint.Int, error) {
			if ops[0].Sign() < 0 {
				return bigint.Zero, apperrors.ValidationError{Field: "n", Message: "sqrt of a negative number is undefined"}
			}
			return ops[0].Sqrt(), nil
		},
	},
}

var byName = func() map[string]Op {
	m := make(map[string]Op, len(Registry))
	for _, op := range Registry {
		m[op.Name] = op
	}
	return m
}()

// Get looks up an operation by name.
func Get(name string) (Op, bool) {
	op, ok := byName[name]
	return op, ok
}

// Names returns every registered operation name, sorted for stable display
// in help text and shell completion.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for _, op := range Registry {
		names = append(names, op.Name)
	}
	sort.Strings(names)
	return names
}

// Run parses operands in the given base, validates arity and limb limits,
// applies the named operation, and checks the result against maxLimbs.
func Run(name string, rawOperands []string, base, maxLimbs int) (bigint.Int, error) {
	op, ok := Get(name)
	if !ok {
		return bigint.Zero, apperrors.NewConfigError("unknown operation %q, available: %s", name, join(Names()))
	}
	if len(rawOperands) < op.MinOperands || (op.MaxOperands >= 0 && len(rawOperands) > op.MaxOperands) {
		return bigint.Zero, apperrors.ValidationError{
			Field:   "operands",
			Message: fmt.Sprintf("%s takes %s, got %d", name, arityDescription(op), len(rawOperands)),
		}
	}

	operands := make([]bigint.Int, len(rawOperands))
	for i, raw := range rawOperands {
		v, err := bigint.ParseBase(raw, base)
		if err != nil {
			return bigint.Zero, apperrors.ValidationError{Field: fmt.Sprintf("operand %d", i), Message: err.Error()}
		}
		operands[i] = v
	}

	if err := checkOperandLimbs(operands, maxLimbs); err != nil {
		return bigint.Zero, err
	}

	result, err := op.Apply(operands, maxLimbs)
	if err != nil {
		return bigint.Zero, err
	}

	if err := checkLimbs(result, maxLimbs, "result"); err != nil {
		return bigint.Zero, err
	}

	return result, nil
}

func arityDescription(op Op) string {
	if op.MinOperands == op.MaxOperands {
		return fmt.Sprintf("%d operand(s)", op.MinOperands)
	}
	if op.MaxOperands < 0 {
		return fmt.Sprintf("at least %d operand(s)", op.MinOperands)
	}
	return fmt.Sprintf("between %d and %d operands", op.MinOperands, op.MaxOperands)
}

func join(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += n
	}
	return s
}
