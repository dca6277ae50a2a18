package bigint

import "testing"

func TestAddSubMag(t *testing.T) {
	a := mag{0xFFFFFFFF, 0xFFFFFFFF}
	b := mag{1}
	sum := add(a, b)
	want := mag{0, 0, 1}
	if cmpMag(sum, want) != 0 {
		t.Fatalf("add(%v,%v) = %v, want %v", a, b, sum, want)
	}
	back := sub(sum, b)
	if cmpMag(back, a) != 0 {
		t.Fatalf("sub(sum,b) = %v, want %v", back, a)
	}
}

func TestAddIntoGrowsAndTrims(t *testing.T) {
	acc := mag{0xFFFFFFFF}
	acc = addInto(acc, mag{1})
	if cmpMag(acc, mag{0, 1}) != 0 {
		t.Fatalf("addInto carry got %v", acc)
	}
	acc = subFrom(acc, mag{1})
	if cmpMag(acc, mag{0xFFFFFFFF}) != 0 {
		t.Fatalf("subFrom got %v", acc)
	}
}

func TestAddSubAgreeWithCarryImpl(t *testing.T) {
	a := mag{0x89ABCDEF, 0x01234567, 0xDEADBEEF}
	b := mag{0x10FEDCBA, 0xFFFFFFFF, 0x00000001}

	zPortable := make(mag, 3)
	cPortable := addVVPortable(zPortable, a, b)
	zDispatch := make(mag, 3)
	cDispatch := addVV(zDispatch, a, b)
	if cPortable != cDispatch || cmpMag(zPortable, zDispatch) != 0 {
		t.Fatalf("portable and dispatched addVV disagree: %v/%d vs %v/%d", zPortable, cPortable, zDispatch, cDispatch)
	}
	if cmpMag(add(a, b), add(b, a)) != 0 {
		t.Fatalf("addition should be commutative")
	}
}
