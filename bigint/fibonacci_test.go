package bigint

import "testing"

func TestFibonacciClassicLiteral(t *testing.T) {
	initials := []Int{FromInt64(0), FromInt64(1)}
	got, err := FibonacciSeq(2, 1, 10, initials)
	if err != nil {
		t.Fatalf("FibonacciSeq: %v", err)
	}
	want := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i, w := range want {
		if !got[i].Equal(FromInt64(w)) {
			t.Errorf("F(%d) = %s, want %d", i+1, got[i], w)
		}
	}
}

func TestFibonacciTribonacci(t *testing.T) {
	initials := []Int{FromInt64(0), FromInt64(1), FromInt64(1)}
	got, err := FibonacciSeq(3, 0, 8, initials)
	if err != nil {
		t.Fatalf("FibonacciSeq: %v", err)
	}
	want := []int64{0, 1, 1, 2, 4, 7, 13, 24, 44}
	for i, w := range want {
		if !got[i].Equal(FromInt64(w)) {
			t.Errorf("tribonacci[%d] = %s, want %d", i, got[i], w)
		}
	}
}

func TestFibonacciLargeIndexMatchesIteration(t *testing.T) {
	initials := []Int{FromInt64(0), FromInt64(1)}
	// Force the matrix-exponentiation path (directMatrixThreshold(2) = 32).
	const n = 500
	viaMatrix, err := FibonacciSeq(2, n, n, initials)
	if err != nil {
		t.Fatalf("FibonacciSeq: %v", err)
	}
	full, err := FibonacciSeq(2, 0, n, initials)
	if err != nil {
		t.Fatalf("FibonacciSeq: %v", err)
	}
	if !viaMatrix[0].Equal(full[n]) {
		t.Fatalf("matrix-path F(%d) = %s, want %s", n, viaMatrix[0], full[n])
	}
}

func TestFibonacciInvalidOrder(t *testing.T) {
	if _, err := FibonacciSeq(0, 0, 5, nil); err == nil {
		t.Fatalf("expected error for order 0")
	}
}

func TestFibonacciWrongInitialsCount(t *testing.T) {
	if _, err := FibonacciSeq(2, 0, 5, []Int{FromInt64(0)}); err == nil {
		t.Fatalf("expected error for mismatched initials count")
	}
}

func TestFibonacciRangeBelowOrder(t *testing.T) {
	initials := []Int{FromInt64(5), FromInt64(7), FromInt64(9)}
	got, err := FibonacciSeq(3, 0, 1, initials)
	if err != nil {
		t.Fatalf("FibonacciSeq: %v", err)
	}
	if !got[0].Equal(FromInt64(5)) || !got[1].Equal(FromInt64(7)) {
		t.Fatalf("got %v, want initials[0:2]", got)
	}
}
