package bigint

import (
	"math/rand"
	"testing"
)

func TestDivModWordShortDivision(t *testing.T) {
	m := mag{0, 0, 1} // 2^64
	q, r := divModWord(m, 10)
	want, _ := ParseBase("1844674407370955161", 10)
	if cmpMag(q, want.m) != 0 || r != 6 {
		t.Fatalf("2^64 / 10 = %v rem %d, want %v rem 6", q, r, want.m)
	}
}

func TestDivModMagKnuth(t *testing.T) {
	u, _ := ParseBase("123456789012345678901234567890", 10)
	v, _ := ParseBase("987654321", 10)
	q, r := divModMag(u.m, v.m)
	// reconstruct and check u == q*v + r
	recon := add(mulDispatch(q, v.m), r)
	if cmpMag(recon, u.m) != 0 {
		t.Fatalf("q*v+r != u: q=%v r=%v", q, r)
	}
	if cmpMag(r, v.m) >= 0 {
		t.Fatalf("remainder %v not smaller than divisor %v", r, v.m)
	}
}

func TestDivModMagRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		u := randomMag(rng, 1+rng.Intn(40))
		v := randomMag(rng, 1+rng.Intn(20))
		if v.isZero() {
			continue
		}
		q, r := divModMag(u, v)
		recon := add(mulDispatch(q, v), r)
		if cmpMag(recon, u) != 0 {
			t.Fatalf("round trip failed for u=%v v=%v: q=%v r=%v", u, v, q, r)
		}
		if cmpMag(r, v) >= 0 {
			t.Fatalf("remainder %v not smaller than divisor %v", r, v)
		}
	}
}

func TestDivModMagExactDivision(t *testing.T) {
	a, _ := ParseBase("1000000000000000000000", 10)
	b, _ := ParseBase("1000000000", 10)
	q, r := divModMag(a.m, b.m)
	want, _ := ParseBase("1000000000000", 10)
	if cmpMag(q, want.m) != 0 || !r.isZero() {
		t.Fatalf("exact division got q=%v r=%v", q, r)
	}
}

func TestDivModMagDividendSmallerThanDivisor(t *testing.T) {
	a := mag{5}
	b := mag{10}
	q, r := divModMag(a, b)
	if !q.isZero() || cmpMag(r, a) != 0 {
		t.Fatalf("5/10 should be q=0 r=5, got q=%v r=%v", q, r)
	}
}
