package bigint

import "testing"

func TestFactorialSmallTable(t *testing.T) {
	cases := map[uint64]string{
		0:  "1",
		1:  "1",
		5:  "120",
		10: "3628800",
		20: "2432902008176640000",
	}
	for n, want := range cases {
		if got := Factorial(n).String(); got != want {
			t.Errorf("%d! = %s, want %s", n, got, want)
		}
	}
}

func TestFactorialLiteral25(t *testing.T) {
	got := Factorial(25)
	want := mustParse(t, "15511210043330985984000000")
	if !got.Equal(want) {
		t.Fatalf("25! = %s, want %s", got, want)
	}
}

func TestFactorialAgreesWithNaiveProduct(t *testing.T) {
	for _, n := range []uint64{21, 30, 50, 77} {
		naive := One
		for i := uint64(1); i <= n; i++ {
			naive = naive.Mul(FromUint64(i))
		}
		got := Factorial(n)
		if !got.Equal(naive) {
			t.Errorf("Factorial(%d) = %s, want %s", n, got, naive)
		}
	}
}
