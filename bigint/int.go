package bigint

import "fmt"

// Int is an arbitrary-precision signed integer: a sign bit plus a
// magnitude. The zero value of Int is a valid, correctly-signed
// representation of zero (neg is always false when m is the zero
// magnitude) so callers can use `var x bigint.Int` without an explicit
// constructor, the same zero-value-is-usable convention govalues/decimal's
// Decimal follows.
type Int struct {
	neg bool
	m   mag
}

// Zero is the additive identity.
var Zero = Int{}

// One is the multiplicative identity.
var One = Int{m: mag{1}}

// FromInt64 builds an Int from a machine int64.
func FromInt64(v int64) Int {
	if v == 0 {
		return Zero
	}
	if v < 0 {
		u := uint64(-v)
		return Int{neg: true, m: magFromUint64(u)}
	}
	return Int{m: magFromUint64(uint64(v))}
}

// FromUint64 builds a nonnegative Int from a machine uint64.
func FromUint64(v uint64) Int {
	if v == 0 {
		return Zero
	}
	return Int{m: magFromUint64(v)}
}

func fromMagSign(neg bool, m mag) Int {
	m = trim(m)
	if m.isZero() {
		return Zero
	}
	return Int{neg: neg, m: m}
}

// Uint64 returns x as a uint64 and reports whether it fit without loss.
// It fails for negative x or magnitudes above the 64-bit range.
func (x Int) Uint64() (uint64, bool) {
	if x.neg {
		return 0, false
	}
	return x.m.uint64Val()
}

// Sign returns -1, 0, or +1 according to x's sign.
func (x Int) Sign() int {
	if x.m.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.m.isZero() }

// Neg returns -x.
func (x Int) Neg() Int { return fromMagSign(!x.neg, x.m) }

// Abs returns |x|.
func (x Int) Abs() Int { return fromMagSign(false, x.m) }

// BitLen returns the number of bits in the magnitude of x, 0 for zero.
func (x Int) BitLen() int { return x.m.bitLen() }

// Cmp returns -1, 0, or +1 as x<y, x==y, or x>y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		if x.IsZero() && y.IsZero() {
			return 0
		}
		return -1
	case !x.neg && y.neg:
		if x.IsZero() && y.IsZero() {
			return 0
		}
		return 1
	case !x.neg:
		return cmpMag(x.m, y.m)
	default:
		return -cmpMag(x.m, y.m)
	}
}

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return fromMagSign(x.neg, add(x.m, y.m))
	}
	switch cmpMag(x.m, y.m) {
	case 0:
		return Zero
	case 1:
		return fromMagSign(x.neg, sub(x.m, y.m))
	default:
		return fromMagSign(y.neg, sub(y.m, x.m))
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	return fromMagSign(x.neg != y.neg, mulDispatch(x.m, y.m))
}

// QuoRem returns the quotient and remainder of truncated division (x/y,
// x%y), i.e. rounding the quotient toward zero so that x == q*y + r and
// |r| < |y|, matching the original source's operator/ and operator%.
// Panics if y is zero.
func (x Int) QuoRem(y Int) (q, r Int) {
	if y.IsZero() {
		panic("bigint: division by zero")
	}
	qm, rm := divModMag(x.m, y.m)
	q = fromMagSign(x.neg != y.neg, qm)
	r = fromMagSign(x.neg, rm)
	return q, r
}

// Quo returns the truncated quotient x / y.
func (x Int) Quo(y Int) Int { q, _ := x.QuoRem(y); return q }

// Rem returns the truncated remainder x % y.
func (x Int) Rem(y Int) Int { _, r := x.QuoRem(y); return r }

// QuoRemInt64 is the short-division fast path for a single machine-word
// divisor, exposed publicly (spec.md §5 supplement) since the original
// source exposes the equivalent divideIn/operator/(bigint_t, limb) as
// public API rather than keeping it an internal optimization.
func (x Int) QuoRemInt64(d int64) (q Int, r int64, err error) {
	if d == 0 {
		return Zero, 0, fmt.Errorf("bigint: division by zero")
	}
	dneg := d < 0
	du := uint64(d)
	if dneg {
		du = uint64(-d)
	}
	var dw word
	if du > uint64(wordMax) {
		qm, rm := divModMag(x.m, magFromUint64(du))
		return fromMagSign(x.neg != dneg, qm), signedRemInt64(rm, x.neg), nil
	}
	dw = word(du)
	qm, rw := divModWord(x.m, dw)
	return fromMagSign(x.neg != dneg, qm), signedRemInt64(mag{rw}, x.neg), nil
}

func signedRemInt64(rm mag, neg bool) int64 {
	v, ok := rm.uint64Val()
	if !ok {
		panic("bigint: remainder of a single-limb division overflowed int64")
	}
	if neg {
		return -int64(v)
	}
	return int64(v)
}

// AddInt64 returns x + delta for a machine-width delta, the arbitrary-delta
// generalization of increment/decrement (spec.md §5 supplement,
// corresponding to the original source's operator++(int v)). It reuses the
// same zero-crossing Add logic as the unit increment/decrement spec.md
// §4.7 requires.
func (x Int) AddInt64(delta int64) Int { return x.Add(FromInt64(delta)) }

// Inc returns x + 1.
func (x Int) Inc() Int { return x.AddInt64(1) }

// Dec returns x - 1.
func (x Int) Dec() Int { return x.AddInt64(-1) }

// Lsh returns x shifted left by n bits (x * 2^n).
func (x Int) Lsh(n int) Int {
	if n == 0 || x.IsZero() {
		return x
	}
	return fromMagSign(x.neg, shiftLeft(x.m, n))
}

// Rsh returns x shifted right by n bits, truncating magnitude toward zero
// ((|x| >> n), sign preserved) — a logical shift on the magnitude, not a
// floor division by 2^n.
func (x Int) Rsh(n int) Int {
	if n == 0 || x.IsZero() {
		return x
	}
	return fromMagSign(x.neg, shiftRight(x.m, n))
}

// String renders x in base 10.
func (x Int) String() string {
	s, _ := x.Text(10)
	return s
}
