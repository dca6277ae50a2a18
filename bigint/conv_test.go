package bigint

import "testing"

func TestParseTextRoundTripDecimal(t *testing.T) {
	s := "987654321098765432109876543210"
	x, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := x.String(); got != s {
		t.Fatalf("round trip = %s, want %s", got, s)
	}
}

func TestParseNegative(t *testing.T) {
	x, err := Parse("-42")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !x.Equal(FromInt64(-42)) {
		t.Fatalf("got %s, want -42", x)
	}
}

func TestParseInvalidDigit(t *testing.T) {
	if _, err := Parse("12a3"); err == nil {
		t.Fatalf("expected error for invalid decimal digit")
	}
}

func TestParseBaseInvalidBase(t *testing.T) {
	if _, err := ParseBase("10", 1); err == nil {
		t.Fatalf("expected error for base 1")
	}
	if _, err := ParseBase("10", 65); err == nil {
		t.Fatalf("expected error for base 65")
	}
}

func TestTextHex(t *testing.T) {
	x := FromInt64(255)
	s, err := x.Text(16)
	if err != nil || s != "FF" {
		t.Fatalf("255 in base 16 = %q err=%v, want FF", s, err)
	}
}

func TestTextBinary(t *testing.T) {
	x := FromInt64(10)
	s, _ := x.Text(2)
	if s != "1010" {
		t.Fatalf("10 in base 2 = %q, want 1010", s)
	}
}

func TestTextBase64Alphabet(t *testing.T) {
	x := FromInt64(62)
	s, _ := x.Text(64)
	if s != "-" {
		t.Fatalf("62 in base64 = %q, want -", s)
	}
	y := FromInt64(63)
	s2, _ := y.Text(64)
	if s2 != "_" {
		t.Fatalf("63 in base64 = %q, want _", s2)
	}
}

func TestTextAndParseBaseRoundTrip(t *testing.T) {
	x := mustParse(t, "123456789012345678901234567890")
	for _, base := range []int{2, 7, 8, 16, 36, 62, 64} {
		s, err := x.Text(base)
		if err != nil {
			t.Fatalf("Text(%d): %v", base, err)
		}
		back, err := ParseBase(s, base)
		if err != nil {
			t.Fatalf("ParseBase(%q,%d): %v", s, base, err)
		}
		if !back.Equal(x) {
			t.Fatalf("round trip base %d: got %s want %s", base, back, x)
		}
	}
}

func TestTextZero(t *testing.T) {
	s, _ := Zero.Text(10)
	if s != "0" {
		t.Fatalf("Zero.Text(10) = %q, want 0", s)
	}
}

func TestTextNegative(t *testing.T) {
	s, _ := FromInt64(-255).Text(16)
	if s != "-FF" {
		t.Fatalf("-255 in base 16 = %q, want -FF", s)
	}
}
