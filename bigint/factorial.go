package bigint

// factorialSmall holds n! for n in [0, 20], computed once at package init.
// spec.md §4.10 calls for a hardcoded fast path at this size; rather than
// embedding 21 literal digit strings we compute the table once from One
// via repeated Mul, which is the same constant set of values with none of
// the transcription risk of copying large literals by hand.
var factorialSmall [21]Int

func init() {
	factorialSmall[0] = One
	for i := 1; i <= 20; i++ {
		factorialSmall[i] = factorialSmall[i-1].Mul(FromInt64(int64(i)))
	}
}

// Factorial returns n!.
//
// For n <= 20 it is a table lookup. Above that it uses binary splitting
// over Legendre's identity: separating n!'s odd and even factors gives
//
//	n! = oddProduct(n) * 2^floor(n/2) * floor(n/2)!
//
// where oddProduct(n) is the product of every odd integer <= n. Both the
// odd product and the recursive floor(n/2)! call are themselves split in
// half recursively, so the whole computation is a telescoping sequence of
// balanced products. The shifts contribute floor(n/2) + floor(n/4) + ...
// for every level above the n<=20 table, and the table value supplies the
// remaining factors of two, so the result carries the full 2-adic
// valuation n - popcount(n) that Legendre's formula predicts. This replaces
// the original source's iterative progress/iterator accumulation loop
// with an equivalent recursive formulation.
func Factorial(n uint64) Int {
	if n <= 20 {
		return factorialSmall[n]
	}
	half := n / 2
	oddCount := (n + 1) / 2
	odd := oddProduct(1, oddCount)
	return odd.Mul(Factorial(half)).Lsh(int(half))
}

// oddProduct returns the product of the first count positive odd integers
// starting at start (start, start+2, start+4, ...), via binary splitting
// so that no individual multiplication involves wildly mismatched operand
// sizes.
func oddProduct(start, count uint64) Int {
	switch count {
	case 0:
		return One
	case 1:
		return FromUint64(start)
	}
	half := count / 2
	left := oddProduct(start, half)
	right := oddProduct(start+2*half, count-half)
	return left.Mul(right)
}
