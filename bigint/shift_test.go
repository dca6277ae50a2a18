package bigint

import "testing"

func TestShiftLeftRight(t *testing.T) {
	m := mag{1}
	shifted := shiftLeft(m, 40)
	if cmpMag(shifted, mag{0, 1 << 8}) != 0 {
		t.Fatalf("shiftLeft(1,40) = %v", shifted)
	}
	back := shiftRight(shifted, 40)
	if cmpMag(back, m) != 0 {
		t.Fatalf("shiftRight undo got %v", back)
	}
}

func TestShiftRightTruncates(t *testing.T) {
	m := mag{0xFF}
	got := shiftRight(m, 4)
	if cmpMag(got, mag{0x0F}) != 0 {
		t.Fatalf("shiftRight(0xFF,4) = %v", got)
	}
}

func TestShiftRightBeyondLength(t *testing.T) {
	m := mag{5}
	got := shiftRight(m, 64)
	if !got.isZero() {
		t.Fatalf("shiftRight past top should be zero, got %v", got)
	}
}

func TestShiftLeftZero(t *testing.T) {
	m := mag{0}
	if got := shiftLeft(m, 10); !got.isZero() {
		t.Fatalf("shifting zero should stay zero, got %v", got)
	}
}
