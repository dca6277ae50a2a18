package ops

import (
	"errors"
	"testing"

	apperrors "github.com/atmofx/bigint/internal/errors"
)

func TestRunArithmetic(t *testing.T) {
	t.Parallel()
	cases := []struct {
		op       string
		operands []string
		want     string
	}{
		{"add", []string{"34", "21"}, "55"},
		{"sub", []string{"34", "21"}, "13"},
		{"mul", []string{"12", "12"}, "144"},
		{"quo", []string{"17", "5"}, "3"},
		{"rem", []string{"17", "5"}, "2"},
		{"pow", []string{"2", "10"}, "1024"},
		{"factorial", []string{"10"}, "3628800"},
		{"fib", []string{"10"}, "55"},
		{"gcd", []string{"48", "18"}, "6"},
		{"lcm", []string{"4", "6"}, "12"},
		{"isprime", []string{"97"}, "1"},
		{"isprime", []string{"98"}, "0"},
		{"binomial", []string{"5", "2"}, "10"},
		{"sqrt", []string{"26"}, "5"},
	}

	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			got, err := Run(tc.op, tc.operands, 10, 0)
			if err != nil {
				t.Fatalf("Run(%q, %v) returned error: %v", tc.op, tc.operands, err)
			}
			s, err := got.Text(10)
			if err != nil {
				t.Fatalf("Text(10) error: %v", err)
			}
			if s != tc.want {
				t.Errorf("Run(%q, %v) = %s, want %s", tc.op, tc.operands, s, tc.want)
			}
		})
	}
}

func TestRunDivisionByZero(t *testing.T) {
	t.Parallel()
	if _, err := Run("quo", []string{"5", "0"}, 10, 0); err == nil {
		t.Error("expected an error dividing by zero")
	}
}

func TestRunUnknownOperation(t *testing.T) {
	t.Parallel()
	_, err := Run("frobnicate", []string{"1"}, 10, 0)
	if err == nil {
		t.Fatal("expected an error for an unknown operation")
	}
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected a ConfigError, got %T: %v", err, err)
	}
}

func TestRunArityMismatch(t *testing.T) {
	t.Parallel()
	if _, err := Run("add", []string{"1"}, 10, 0); err == nil {
		t.Error("expected an arity error for add with one operand")
	}
}

func TestRunMaxLimbsExceeded(t *testing.T) {
	t.Parallel()
	_, err := Run("factorial", []string{"10000"}, 10, 4)
	if err == nil {
		t.Fatal("expected a memory limit error")
	}
	var memErr apperrors.MemoryError
	if !errors.As(err, &memErr) {
		t.Errorf("expected a MemoryError, got %T: %v", err, err)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()
	names := Names()
	if len(names) != len(Registry) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(Registry))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
}
