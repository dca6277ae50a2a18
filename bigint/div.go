package bigint

// divModWord implements short division: m / d and m % d for a single-limb
// divisor d, processing m from its most significant limb down. This is the
// fast path spec.md §4.6 calls for when the divisor fits in one limb, and
// is also reused by Toom-3's interpolation (mul.go) to divide intermediate
// coefficients by small constants.
func divModWord(m mag, d word) (q mag, r word) {
	if d == 0 {
		panic("bigint: division by zero")
	}
	m = trim(m)
	q = makeMag(len(m))
	var rem dword
	for i := len(m) - 1; i >= 0; i-- {
		cur := rem<<wordBits | dword(m[i])
		q[i] = word(cur / dword(d))
		rem = cur % dword(d)
	}
	return trim(q), word(rem)
}

// mulSub computes z[0:len(v)+1] -= qhat*v in place and returns the
// outgoing borrow. A nonzero borrow means qhat was one too large for the
// trial digit and the caller must add v back and decrement qhat.
func mulSub(z, v mag, qhat word) word {
	var carry, borrow word
	for i, vi := range v {
		hi, lo := mulAddWWW(vi, qhat, 0, carry)
		carry = hi
		var b word
		z[i], b = subWW(z[i], lo, borrow)
		borrow = b
	}
	var b word
	z[len(v)], b = subWW(z[len(v)], carry, borrow)
	return b
}

// divModMag divides u by v and returns the quotient and remainder
// magnitudes, implementing Knuth's Algorithm D (TAOCP vol 2, §4.3.1) with
// the divisor normalized so its top limb has its high bit set. v[0] must
// not be zero (v must not be the zero magnitude).
func divModMag(u, v mag) (q, r mag) {
	u, v = trim(u), trim(v)
	if v.isZero() {
		panic("bigint: division by zero")
	}
	if cmpMag(u, v) < 0 {
		return mag{0}, u.clone()
	}
	if len(v) == 1 {
		qq, rr := divModWord(u, v[0])
		return qq, mag{rr}
	}

	shift := wordBits - bitLenWord(v[len(v)-1])
	vn := trim(shiftLeft(v, shift))
	n := len(vn)

	un0 := trim(shiftLeft(u, shift))
	m := len(un0) - n
	if m < 0 {
		m = 0
	}
	un := resize(un0.clone(), n+m+1)

	q = makeMag(m + 1)
	vTop, vTop2 := dword(vn[n-1]), dword(vn[n-2])

	for j := m; j >= 0; j-- {
		numHi := dword(un[j+n])<<wordBits | dword(un[j+n-1])
		qhat := numHi / vTop
		rhat := numHi % vTop
		if qhat > dword(wordMax) {
			qhat = dword(wordMax)
			rhat = numHi - qhat*vTop
		}
		for qhat > 0 {
			if rhat > dword(wordMax) {
				break
			}
			if vTop2*qhat <= rhat<<wordBits|dword(un[j+n-2]) {
				break
			}
			qhat--
			rhat += vTop
		}

		borrow := mulSub(un[j:j+n+1], vn, word(qhat))
		if borrow != 0 {
			qhat--
			c := addVV(un[j:j+n], un[j:j+n], vn)
			s, _ := addWW(un[j+n], c, 0)
			un[j+n] = s
		}
		q[j] = word(qhat)
	}

	r = trim(un[:n])
	r = shiftRight(r, shift)
	return trim(q), trim(r)
}
