package bigint

import "testing"

func mustParse(t *testing.T, s string) Int {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestAddLiteral(t *testing.T) {
	a := mustParse(t, "123456789012345678901234567890")
	b := mustParse(t, "987654321098765432109876543210")
	want := mustParse(t, "1111111110111111111011111111100")
	if got := a.Add(b); !got.Equal(want) {
		t.Fatalf("a+b = %s, want %s", got, want)
	}
}

func TestSubCrossesZero(t *testing.T) {
	a := FromInt64(5)
	b := FromInt64(7)
	got := a.Sub(b)
	want := FromInt64(-2)
	if !got.Equal(want) {
		t.Fatalf("5-7 = %s, want %s", got, want)
	}
}

func TestIncDecCrossZero(t *testing.T) {
	x := FromInt64(0)
	if got := x.Dec(); !got.Equal(FromInt64(-1)) {
		t.Fatalf("0.Dec() = %s, want -1", got)
	}
	y := FromInt64(-1)
	if got := y.Inc(); !got.Equal(Zero) {
		t.Fatalf("(-1).Inc() = %s, want 0", got)
	}
}

func TestAddInt64ArbitraryDelta(t *testing.T) {
	x := FromInt64(10)
	if got := x.AddInt64(-25); !got.Equal(FromInt64(-15)) {
		t.Fatalf("10.AddInt64(-25) = %s, want -15", got)
	}
}

func TestMulSign(t *testing.T) {
	a := FromInt64(-6)
	b := FromInt64(7)
	if got := a.Mul(b); !got.Equal(FromInt64(-42)) {
		t.Fatalf("-6*7 = %s, want -42", got)
	}
	if got := a.Mul(a); !got.Equal(FromInt64(36)) {
		t.Fatalf("-6*-6 = %s, want 36", got)
	}
}

func TestQuoRemTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		a, b     int64
		wantQ, wantR int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
	}
	for _, c := range cases {
		q, r := FromInt64(c.a).QuoRem(FromInt64(c.b))
		if !q.Equal(FromInt64(c.wantQ)) || !r.Equal(FromInt64(c.wantR)) {
			t.Errorf("%d/%d = %s rem %s, want %d rem %d", c.a, c.b, q, r, c.wantQ, c.wantR)
		}
	}
}

func TestQuoRemInt64ShortDivision(t *testing.T) {
	x := mustParse(t, "123456789012345678901234567890")
	q, r, err := x.QuoRemInt64(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recon := q.Mul(FromInt64(7)).AddInt64(r)
	if !recon.Equal(x) {
		t.Fatalf("q*7+r = %s, want %s", recon, x)
	}
}

func TestQuoRemInt64DivideByZero(t *testing.T) {
	if _, _, err := FromInt64(5).QuoRemInt64(0); err == nil {
		t.Fatalf("expected error dividing by zero")
	}
}

func TestCmpAndSign(t *testing.T) {
	if FromInt64(-5).Cmp(FromInt64(3)) >= 0 {
		t.Fatalf("-5 should be less than 3")
	}
	if Zero.Sign() != 0 || FromInt64(5).Sign() != 1 || FromInt64(-5).Sign() != -1 {
		t.Fatalf("Sign() mismatch")
	}
}

func TestLshRsh(t *testing.T) {
	x := FromInt64(-3)
	if got := x.Lsh(4); !got.Equal(FromInt64(-48)) {
		t.Fatalf("-3<<4 = %s, want -48", got)
	}
	if got := x.Lsh(4).Rsh(4); !got.Equal(x) {
		t.Fatalf("shift round trip failed: got %s", got)
	}
}

func TestZeroValueIsUsable(t *testing.T) {
	var z Int
	if !z.IsZero() || z.Sign() != 0 {
		t.Fatalf("zero-value Int should be zero")
	}
	if got := z.Add(FromInt64(5)); !got.Equal(FromInt64(5)) {
		t.Fatalf("zero-value Int should behave as 0 in arithmetic")
	}
}
