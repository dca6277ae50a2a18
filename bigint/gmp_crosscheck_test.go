//go:build gmp

// Cross-checks bigint.Int arithmetic against github.com/ncw/gmp, which
// binds libgmp via cgo. Opt-in and excluded from the default `go test`
// run: building it requires libgmp installed and `go test -tags=gmp`,
// mirroring the teacher's own GMPCalculator in
// agbruneau/Fibonacci's calculator_gmp.go, which gates its GMP-backed
// calculator behind the same "gmp" build tag for the same reason (no
// libgmp dependency for the default build).
package bigint

import (
	"math/rand"
	"testing"

	"github.com/ncw/gmp"
)

func randomSignedInt64(rng *rand.Rand) int64 {
	v := int64(rng.Uint64())
	return v
}

// magBytesBE renders a magnitude as big-endian bytes for gmp.Int.SetBytes.
func magBytesBE(m mag) []byte {
	t := trim(m)
	buf := make([]byte, len(t)*4)
	for i, w := range t {
		off := (len(t) - 1 - i) * 4
		buf[off] = byte(w >> 24)
		buf[off+1] = byte(w >> 16)
		buf[off+2] = byte(w >> 8)
		buf[off+3] = byte(w)
	}
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func toGMP(x Int) *gmp.Int {
	g := new(gmp.Int).SetBytes(magBytesBE(x.Abs().m))
	if x.Sign() < 0 {
		g.Neg(g)
	}
	return g
}

func TestGMPCrossCheckAddSubMul(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		a := bigFromTwoInt64s(randomSignedInt64(rng), randomSignedInt64(rng))
		b := bigFromTwoInt64s(randomSignedInt64(rng), randomSignedInt64(rng))

		ga, gb := toGMP(a), toGMP(b)

		if sum := a.Add(b); toGMP(sum).Cmp(new(gmp.Int).Add(ga, gb)) != 0 {
			t.Fatalf("Add mismatch for a=%s b=%s", a, b)
		}
		if diff := a.Sub(b); toGMP(diff).Cmp(new(gmp.Int).Sub(ga, gb)) != 0 {
			t.Fatalf("Sub mismatch for a=%s b=%s", a, b)
		}
		if prod := a.Mul(b); toGMP(prod).Cmp(new(gmp.Int).Mul(ga, gb)) != 0 {
			t.Fatalf("Mul mismatch for a=%s b=%s", a, b)
		}
		if !b.IsZero() {
			q, r := a.QuoRem(b)
			gq, gr := new(gmp.Int).Quo(ga, gb), new(gmp.Int).Rem(ga, gb)
			if toGMP(q).Cmp(gq) != 0 || toGMP(r).Cmp(gr) != 0 {
				t.Fatalf("QuoRem mismatch for a=%s b=%s", a, b)
			}
		}
	}
}
