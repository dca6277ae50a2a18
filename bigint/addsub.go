package bigint

// Limb-level add/subtract kernels, named in the vector/word style used by
// db47h/decimal's add10VV_g/sub10VV_g (binary radix here instead of
// decimal). addVV and subVV are indirected through function variables so
// that carry_amd64.go can install a wider implementation when the CPU
// advertises ADX/BMI2, without changing any caller.

var addVVImpl = addVVPortable
var subVVImpl = subVVPortable

// addWW adds x, y and an incoming carry bit (0 or 1) and returns the sum
// limb plus the outgoing carry bit.
func addWW(x, y, carry word) (sum, carryOut word) {
	s := dword(x) + dword(y) + dword(carry)
	return word(s), word(s >> wordBits)
}

// subWW subtracts y and an incoming borrow bit (0 or 1) from x and returns
// the difference limb plus the outgoing borrow bit.
func subWW(x, y, borrow word) (diff, borrowOut word) {
	d := dword(x) - dword(y) - dword(borrow)
	return word(d), word(d>>wordBits) & 1
}

// addVVPortable computes z = x + y limb by limb, x and y the same length,
// z at least that length, and returns the final carry (0 or 1).
func addVVPortable(z, x, y mag) word {
	var c word
	for i := range x {
		z[i], c = addWW(x[i], y[i], c)
	}
	return c
}

// subVVPortable computes z = x - y limb by limb, x and y the same length,
// and returns the final borrow (0 or 1).
func subVVPortable(z, x, y mag) word {
	var b word
	for i := range x {
		z[i], b = subWW(x[i], y[i], b)
	}
	return b
}

// addVV dispatches to whichever addVVImpl was installed at init time.
func addVV(z, x, y mag) word { return addVVImpl(z, x, y) }

// subVV dispatches to whichever subVVImpl was installed at init time.
func subVV(z, x, y mag) word { return subVVImpl(z, x, y) }

// addVW adds a single limb w to the vector x, propagating carry, and
// returns the final carry.
func addVW(z, x mag, w word) word {
	c := w
	for i := range x {
		z[i], c = addWW(x[i], 0, c)
		if c == 0 && &z[0] != &x[0] {
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return c
}

// subVW subtracts a single limb w from the vector x, propagating borrow,
// and returns the final borrow.
func subVW(z, x mag, w word) word {
	b := w
	for i := range x {
		z[i], b = subWW(x[i], 0, b)
		if b == 0 && &z[0] != &x[0] {
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return b
}

// add returns the magnitude sum of a and b.
func add(a, b mag) mag {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := makeMag(len(a) + 1)
	c := addVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		c = addVW(z[len(b):len(a)], a[len(b):], c)
	}
	z[len(a)] = c
	return trim(z)
}

// addInto adds b into acc in place, growing acc if the result needs an
// extra limb. An acc shorter than b is first zero-extended to b's length.
func addInto(acc mag, b mag) mag {
	if len(acc) < len(b) {
		acc = resize(acc, len(b))
	}
	c := addVV(acc[:len(b)], acc[:len(b)], b)
	if len(acc) > len(b) {
		c = addVW(acc[len(b):], acc[len(b):], c)
	}
	if c != 0 {
		acc = pushTop(acc, c)
	}
	return trim(acc)
}

// sub returns a - b assuming a >= b in magnitude.
func sub(a, b mag) mag {
	z := makeMag(len(a))
	bw := subVV(z[:len(b)], a[:len(b)], b)
	if len(a) > len(b) {
		bw = subVW(z[len(b):], a[len(b):], bw)
	}
	return trim(z)
}

// subFrom subtracts b from acc in place, assuming acc >= b in magnitude.
func subFrom(acc mag, b mag) mag {
	bw := subVV(acc[:len(b)], acc[:len(b)], b)
	if len(acc) > len(b) {
		subVW(acc[len(b):], acc[len(b):], bw)
	}
	return trim(acc)
}
