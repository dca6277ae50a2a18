package bigint

// Sqrt returns floor(sqrt(x)) for x >= 0, via Newton's method starting
// from a power-of-two guess sized off x's bit length. Used internally by
// IsPrime's 6k±1 trial-division bound; exported because callers computing
// their own bounds need it too.
func (x Int) Sqrt() Int {
	if x.neg {
		panic("bigint: square root of a negative number")
	}
	if x.IsZero() {
		return Zero
	}
	guess := One.Lsh((x.BitLen() + 1) / 2)
	if guess.IsZero() {
		guess = One
	}
	for {
		next := guess.Add(x.Quo(guess)).Rsh(1)
		if next.Cmp(guess) >= 0 {
			return guess
		}
		guess = next
	}
}

// GCD returns the nonnegative greatest common divisor of a and b via the
// Euclidean algorithm. GCD(0, 0) is 0.
func GCD(a, b Int) Int {
	a, b = a.Abs(), b.Abs()
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a
}

// LCM returns the nonnegative least common multiple of a and b. LCM(a, 0)
// and LCM(0, b) are 0.
func LCM(a, b Int) Int {
	if a.IsZero() || b.IsZero() {
		return Zero
	}
	g := GCD(a, b)
	return a.Abs().Quo(g).Mul(b.Abs())
}

// IsPrime reports whether n is prime, via trial division by 2, 3, and then
// every integer of the form 6k±1 up to floor(sqrt(n)).
func IsPrime(n Int) bool {
	two, three := FromInt64(2), FromInt64(3)
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if n.Rem(two).IsZero() || n.Rem(three).IsZero() {
		return false
	}
	limit := n.Sqrt()
	six := FromInt64(6)
	for i := FromInt64(5); i.Cmp(limit) <= 0; i = i.Add(six) {
		if n.Rem(i).IsZero() {
			return false
		}
		j := i.Add(two)
		if n.Rem(j).IsZero() {
			return false
		}
	}
	return true
}

// Binomial returns C(n, k), the number of ways to choose k items from n,
// via the multiplicative formula C(n,k) = prod_{i=1}^{k} (n-k+i)/i,
// dividing out each growing denominator i immediately rather than building
// up a separate numerator and denominator — the greedy factor-cancellation
// scheme spec.md §4.12 describes. Returns 0 for out-of-range k.
func Binomial(n, k Int) Int {
	if k.Sign() < 0 || k.Cmp(n) > 0 {
		return Zero
	}
	if nMinusK := n.Sub(k); k.Cmp(nMinusK) > 0 {
		k = nMinusK
	}
	result := One
	base := n.Sub(k)
	for i := One; i.Cmp(k) <= 0; i = i.Inc() {
		result = result.Mul(base.Add(i)).Quo(i)
	}
	return result
}
