package bigint

import "fmt"

// FibonacciSeq computes F(from), F(from+1), ..., F(to) for the generalized
// order-r Fibonacci-like recurrence
//
//	F(i) = F(i-1) + F(i-2) + ... + F(i-order)    for i >= order
//	F(i) = initials[i]                            for 0 <= i < order
//
// (order=2 with initials {0,1} is the classic Fibonacci sequence; order=3
// is Tribonacci, and so on). Terms below `order` come straight from
// initials; reaching `from` above that threshold uses direct iteration for
// small from and companion-matrix exponentiation by squaring for large
// from, mirroring the original source's fibonacci<order>() dispatch
// between fibonacci_consecutive and fibonacci_matrix at the 8*order^2
// crossover.
func FibonacciSeq(order int, from, to uint64, initials []Int) ([]Int, error) {
	if order < 1 {
		return nil, fmt.Errorf("bigint: fibonacci order must be >= 1")
	}
	if len(initials) != order {
		return nil, fmt.Errorf("bigint: fibonacci order %d needs exactly %d initial values, got %d", order, order, len(initials))
	}
	if to < from {
		return nil, fmt.Errorf("bigint: fibonacci range [%d,%d] has to < from", from, to)
	}

	out := make([]Int, 0, to-from+1)
	n := from
	for ; n < uint64(order) && n <= to; n++ {
		out = append(out, initials[n])
	}
	if n > to {
		return out, nil
	}

	state := seedStateBefore(order, n, initials)
	for ; n <= to; n++ {
		state = stepState(state)
		out = append(out, state[0])
	}
	return out, nil
}

// directMatrixThreshold mirrors the original source's 8*order^2 crossover
// between direct iteration and matrix exponentiation.
func directMatrixThreshold(order int) uint64 {
	return uint64(8 * order * order)
}

// stepState advances a recurrence state vector [F(n), F(n-1), ..., F(n-order+1)]
// to [F(n+1), F(n), ..., F(n-order+2)].
func stepState(state []Int) []Int {
	sum := Zero
	for _, s := range state {
		sum = sum.Add(s)
	}
	next := make([]Int, len(state))
	next[0] = sum
	copy(next[1:], state[:len(state)-1])
	return next
}

// seedStateBefore builds the state vector v_{n-1} = [F(n-1), ..., F(n-order)]
// for n >= order, either by iterating forward from the fully-defined base
// state v_{order-1} = [F(order-1), ..., F(0)], or, when the number of steps
// is large, by applying the companion matrix raised to that many steps.
func seedStateBefore(order int, n uint64, initials []Int) []Int {
	base := make([]Int, order)
	for i := 0; i < order; i++ {
		base[i] = initials[order-1-i]
	}
	target := n - 1
	if target == uint64(order-1) {
		return base
	}
	steps := target - uint64(order-1)
	if steps <= directMatrixThreshold(order) {
		state := base
		for s := uint64(0); s < steps; s++ {
			state = stepState(state)
		}
		return state
	}
	c := companionMatrix(order)
	p := c.pow(steps)
	return p.mulVec(base)
}

// fibMatrix is a square matrix of Int, used only to carry the companion
// matrix and its powers; exponentiation by squaring turns an O(steps)
// sequence of vector updates into O(log steps) matrix multiplications.
// Grounded on the original source's FiboMatrix<T,order> companion-matrix
// template and its matrix_power/fibonacci_matrix functions, generalized
// here to Int rather than a fixed-precision machine type.
type fibMatrix struct {
	n    int
	data []Int
}

func newFibMatrix(n int) fibMatrix {
	return fibMatrix{n: n, data: make([]Int, n*n)}
}

func (a fibMatrix) at(i, j int) Int    { return a.data[i*a.n+j] }
func (a *fibMatrix) set(i, j int, v Int) { a.data[i*a.n+j] = v }

func identityFibMatrix(n int) fibMatrix {
	m := newFibMatrix(n)
	for i := 0; i < n; i++ {
		m.set(i, i, One)
	}
	return m
}

// companionMatrix builds the order x order companion matrix C such that
// v_n = C * v_{n-1} for the state vector v_n = [F(n), ..., F(n-order+1)]:
// row 0 sums every entry (the recurrence itself), and row i>0 shifts
// column i-1 into position i (carrying F(n-i) forward as F((n-1)-(i-1))).
func companionMatrix(order int) fibMatrix {
	m := newFibMatrix(order)
	for j := 0; j < order; j++ {
		m.set(0, j, One)
	}
	for i := 1; i < order; i++ {
		m.set(i, i-1, One)
	}
	return m
}

func (a fibMatrix) mul(b fibMatrix) fibMatrix {
	n := a.n
	z := newFibMatrix(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a.at(i, k)
			if aik.IsZero() {
				continue
			}
			for j := 0; j < n; j++ {
				bkj := b.at(k, j)
				if bkj.IsZero() {
					continue
				}
				z.set(i, j, z.at(i, j).Add(aik.Mul(bkj)))
			}
		}
	}
	return z
}

func (a fibMatrix) pow(e uint64) fibMatrix {
	result := identityFibMatrix(a.n)
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.mul(base)
		}
	}
	return result
}

func (a fibMatrix) mulVec(v []Int) []Int {
	n := a.n
	out := make([]Int, n)
	for i := 0; i < n; i++ {
		sum := Zero
		for j := 0; j < n; j++ {
			term := a.at(i, j)
			if term.IsZero() {
				continue
			}
			sum = sum.Add(term.Mul(v[j]))
		}
		out[i] = sum
	}
	return out
}
