package bigint

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Size thresholds for the multiplication dispatcher, named directly after
// the constants the original source used to pick between mult_vanilla,
// mult_karatsuba, and mult_toom3 (spec.md §4.5).
const (
	karatsubaThreshold   = 128
	toom3Threshold        = 10000
	parallelMulThreshold = 4096 // limbs; above this, independent sub-products fan out via errgroup
)

// mulAddWWW computes x*y + a + c and splits the double-width result into a
// high and low limb. It is the inner step of both the schoolbook multiply
// and the small-multiplier helper used by Toom-3's interpolation.
func mulAddWWW(x, y, a, c word) (hi, lo word) {
	p := dword(x)*dword(y) + dword(a) + dword(c)
	return word(p >> wordBits), word(p)
}

// mulByWord multiplies m by a single small limb w.
func mulByWord(m mag, w word) mag {
	m = trim(m)
	if w == 0 || m.isZero() {
		return mag{0}
	}
	z := makeMag(len(m) + 1)
	var c word
	for i, mi := range m {
		var hi, lo word
		hi, lo = mulAddWWW(mi, w, 0, c)
		z[i] = lo
		c = hi
	}
	z[len(m)] = c
	return trim(z)
}

// mulSchoolbook is the O(n*m) long-multiplication kernel, used directly
// below karatsubaThreshold and as the base case of both Karatsuba and
// Toom-3 recursion.
func mulSchoolbook(x, y mag) mag {
	x, y = trim(x), trim(y)
	if x.isZero() || y.isZero() {
		return mag{0}
	}
	z := makeMag(len(x) + len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var c word
		for j, yj := range y {
			hi, lo := mulAddWWW(xi, yj, z[i+j], c)
			z[i+j] = lo
			c = hi
		}
		k := i + len(y)
		for c != 0 {
			s, cc := addWW(z[k], c, 0)
			z[k] = s
			c = cc
			k++
		}
	}
	return trim(z)
}

// mulDispatch picks the multiplication algorithm by operand size, mirroring
// the original source's multiply() dispatcher.
func mulDispatch(x, y mag) mag {
	x, y = trim(x), trim(y)
	if x.isZero() || y.isZero() {
		return mag{0}
	}
	n1, n2 := len(x), len(y)
	small := n1
	if n2 < small {
		small = n2
	}
	switch {
	case small < karatsubaThreshold:
		return mulSchoolbook(x, y)
	case small >= toom3Threshold && toomBalanced(n1, n2):
		return mulToom3(x, y)
	default:
		return mulKaratsuba(x, y)
	}
}

// toomBalanced reports whether the two operand lengths are close enough in
// size (ratio between 5/6 and 6/5) for three-way Toom-Cook splitting to pay
// off; badly skewed operands fall back to Karatsuba instead.
func toomBalanced(n1, n2 int) bool {
	return n1*6 >= n2*5 && n1*5 <= n2*6
}

// lowHigh splits m into the limbs below half and at/above half.
func lowHigh(m mag, half int) (lo, hi mag) {
	m = trim(m)
	if half >= len(m) {
		return m.clone(), mag{0}
	}
	return trim(m[:half]), trim(m[half:])
}

// shiftLimbs shifts m left by n whole limbs (n*wordBits bits).
func shiftLimbs(m mag, n int) mag {
	m = trim(m)
	if n == 0 || m.isZero() {
		return m.clone()
	}
	z := makeMag(len(m) + n)
	copy(z[n:], m)
	return trim(z)
}

// mulKaratsuba implements the 2-way split x = x1*B + x0, y = y1*B + y0,
// with the classic 3-multiply reduction:
//
//	z0 = x0*y0
//	z2 = x1*y1
//	z1 = (x0+x1)*(y0+y1) - z0 - z2
//	result = z0 + z1*B + z2*B^2
//
// Used for operands in [karatsubaThreshold, toom3Threshold) limbs, or as
// the fallback for large but unbalanced operands that don't qualify for
// Toom-3. The three sub-products are independent and, above
// parallelMulThreshold, run concurrently via errgroup.
func mulKaratsuba(x, y mag) mag {
	x, y = trim(x), trim(y)
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	half := (n + 1) / 2
	x0, x1 := lowHigh(x, half)
	y0, y1 := lowHigh(y, half)

	var z0, z2, mid mag
	if n >= parallelMulThreshold {
		g, _ := errgroup.WithContext(context.Background())
		g.Go(func() error { z0 = mulDispatch(x0, y0); return nil })
		g.Go(func() error { z2 = mulDispatch(x1, y1); return nil })
		g.Go(func() error { mid = mulDispatch(add(x0, x1), add(y0, y1)); return nil })
		_ = g.Wait()
	} else {
		z0 = mulDispatch(x0, y0)
		z2 = mulDispatch(x1, y1)
		mid = mulDispatch(add(x0, x1), add(y0, y1))
	}
	z1 := sub(sub(mid, z0), z2)

	result := z0.clone()
	result = addInto(result, shiftLimbs(z1, half))
	result = addInto(result, shiftLimbs(z2, 2*half))
	return trim(result)
}

// simag is a signed magnitude used only inside Toom-3's interpolation,
// where evaluating at x = -1 produces intermediate values that can go
// negative even though both operands and the final product are
// nonnegative.
type simag struct {
	neg bool
	m   mag
}

func sFromMag(m mag) simag { return simag{false, trim(m)} }

func (a simag) isZero() bool { return a.m.isZero() }

func sAdd(a, b simag) simag {
	if a.isZero() {
		return b
	}
	if b.isZero() {
		return a
	}
	if a.neg == b.neg {
		return simag{a.neg, add(a.m, b.m)}
	}
	switch cmpMag(a.m, b.m) {
	case 0:
		return simag{false, mag{0}}
	case 1:
		return simag{a.neg, sub(a.m, b.m)}
	default:
		return simag{b.neg, sub(b.m, a.m)}
	}
}

func sNeg(a simag) simag {
	if a.isZero() {
		return a
	}
	return simag{!a.neg, a.m}
}

func sSub(a, b simag) simag { return sAdd(a, sNeg(b)) }

// sMulSmall multiplies a by a small nonnegative machine integer k.
func sMulSmall(a simag, k word) simag {
	if k == 0 || a.isZero() {
		return simag{false, mag{0}}
	}
	return simag{a.neg, mulByWord(a.m, k)}
}

// sShr1 divides a by 2, assuming a is even (exact in every call site below).
func sShr1(a simag) simag { return simag{a.neg, shiftRight(a.m, 1)} }

// sDivSmallExact divides a by a small divisor, assuming the division is
// exact (guaranteed by the Toom-3 interpolation algebra).
func sDivSmallExact(a simag, d word) simag {
	q, _ := divModWord(a.m, d)
	return simag{a.neg, q}
}

func sShlLimbs(a simag, n int) simag { return simag{a.neg, shiftLimbs(a.m, n)} }

func sMulMag(p, q simag) simag {
	if p.isZero() || q.isZero() {
		return simag{false, mag{0}}
	}
	return simag{p.neg != q.neg, mulDispatch(p.m, q.m)}
}

// split3 splits m into three parts of `part` limbs each: the low part, the
// middle part, and everything from 2*part upward.
func split3(m mag, part int) (lo, mid, hi mag) {
	t := trim(m)
	n := len(t)
	get := func(a, b int) mag {
		if a >= n || a >= b {
			return mag{0}
		}
		if b > n {
			b = n
		}
		return trim(t[a:b])
	}
	return get(0, part), get(part, 2*part), get(2*part, n)
}

// mulToom3 implements three-way Toom-Cook multiplication: split each
// operand into three limb-groups, evaluate both at x in {0, 1, -1, 2, inf},
// multiply the five point-pairs (recursively, via mulDispatch), and
// interpolate the five resulting points back into the five coefficients of
// the product polynomial using Bodrato's exact-integer interpolation
// (divisions by 2 and 6 below are always exact for integer inputs).
//
// Used only for operands at least toom3Threshold limbs wide and within a
// 5:6 length ratio of each other (toomBalanced); other large operands use
// mulKaratsuba instead.
func mulToom3(x, y mag) mag {
	x, y = trim(x), trim(y)
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	part := (n + 2) / 3

	x0, x1, x2 := split3(x, part)
	y0, y1, y2 := split3(y, part)

	px0, px1, px2 := sFromMag(x0), sFromMag(x1), sFromMag(x2)
	py0, py1, py2 := sFromMag(y0), sFromMag(y1), sFromMag(y2)

	p0, q0 := px0, py0
	p1 := sAdd(sAdd(px0, px1), px2)
	q1 := sAdd(sAdd(py0, py1), py2)
	pm1 := sSub(sAdd(px0, px2), px1)
	qm1 := sSub(sAdd(py0, py2), py1)
	p2 := sAdd(sAdd(px0, sMulSmall(px1, 2)), sMulSmall(px2, 4))
	q2 := sAdd(sAdd(py0, sMulSmall(py1, 2)), sMulSmall(py2, 4))
	pinf, qinf := px2, py2

	var r0, r1, rm1, r2, rinf simag
	products := []struct {
		p, q *simag
		r    *simag
	}{
		{&p0, &q0, &r0},
		{&p1, &q1, &r1},
		{&pm1, &qm1, &rm1},
		{&p2, &q2, &r2},
		{&pinf, &qinf, &rinf},
	}
	if n >= parallelMulThreshold {
		g, _ := errgroup.WithContext(context.Background())
		for i := range products {
			pr := &products[i]
			g.Go(func() error { *pr.r = sMulMag(*pr.p, *pr.q); return nil })
		}
		_ = g.Wait()
	} else {
		for i := range products {
			pr := &products[i]
			*pr.r = sMulMag(*pr.p, *pr.q)
		}
	}

	c0 := r0
	c4 := rinf
	sumR1Rm1 := sAdd(r1, rm1)
	c2 := sSub(sShr1(sumR1Rm1), sAdd(c0, c4))
	s := sShr1(sSub(r1, rm1))
	t := sSub(r2, c0)
	t = sSub(t, sMulSmall(c2, 4))
	t = sSub(t, sMulSmall(c4, 16))
	t = sSub(t, sMulSmall(s, 2))
	c3 := sDivSmallExact(t, 6)
	c1 := sSub(s, c3)

	result := sFromMag(mag{0})
	result = sAdd(result, c0)
	result = sAdd(result, sShlLimbs(c1, part))
	result = sAdd(result, sShlLimbs(c2, 2*part))
	result = sAdd(result, sShlLimbs(c3, 3*part))
	result = sAdd(result, sShlLimbs(c4, 4*part))
	if result.neg && !result.isZero() {
		panic("bigint: toom3 interpolation produced a negative coefficient")
	}
	return trim(result.m)
}
