package scan

import (
	"errors"
	"math"
	"testing"
)

func TestNumberUnsignedInteger(t *testing.T) {
	n, kind, _, u, _, err := Number([]byte("18446744073709551615"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumUint || u != math.MaxUint64 || n != len("18446744073709551615") {
		t.Fatalf("got n=%d kind=%v u=%d", n, kind, u)
	}
}

func TestNumberSignedInteger(t *testing.T) {
	n, kind, i, _, _, err := Number([]byte("-9223372036854775808"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumInt || i != math.MinInt64 || n != len("-9223372036854775808") {
		t.Fatalf("got n=%d kind=%v i=%d", n, kind, i)
	}
}

func TestNumberNegativeZeroIsIntegerZero(t *testing.T) {
	_, kind, i, _, _, err := Number([]byte("-0"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumInt || i != 0 {
		t.Fatalf("got kind=%v i=%d", kind, i)
	}
}

func TestNumberNegativeZeroFloatPreservesSign(t *testing.T) {
	_, kind, _, _, f, err := Number([]byte("-0.0e0"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumFloat || !math.Signbit(f) || f != 0 {
		t.Fatalf("got kind=%v f=%v signbit=%v", kind, f, math.Signbit(f))
	}
}

func TestNumberLeadingZeroRejected(t *testing.T) {
	for _, s := range []string{"01", "00", "-01"} {
		_, _, _, _, _, err := Number([]byte(s))
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("%q: expected ErrInvalidNumber, got %v", s, err)
		}
	}
}

func TestNumberBareZeroIsValid(t *testing.T) {
	n, kind, _, u, _, err := Number([]byte("0"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || kind != NumUint || u != 0 {
		t.Fatalf("got n=%d kind=%v u=%d", n, kind, u)
	}
}

func TestNumberFractionWithLeadingZeros(t *testing.T) {
	_, kind, _, _, f, err := Number([]byte("0.005"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumFloat || f != 0.005 {
		t.Fatalf("got kind=%v f=%v", kind, f)
	}
}

func TestNumberScientificNotation(t *testing.T) {
	_, kind, _, _, f, err := Number([]byte("5.972E+24"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumFloat || f != 5.972e24 {
		t.Fatalf("got kind=%v f=%v", kind, f)
	}
}

func TestNumberNegativeExponent(t *testing.T) {
	_, kind, _, _, f, err := Number([]byte("1.5e-300"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumFloat || f != 1.5e-300 {
		t.Fatalf("got kind=%v f=%v", kind, f)
	}
}

func TestNumberFallbackPathBeyondFastRange(t *testing.T) {
	// mantissa exceeds 2^53-1, forcing the strconv.ParseFloat fallback.
	_, kind, _, _, f, err := Number([]byte("123456789012345678901.5"))
	if err != nil {
		t.Fatal(err)
	}
	if kind != NumFloat {
		t.Fatalf("expected float, got %v", kind)
	}
	if f <= 0 {
		t.Fatalf("unexpected value %v", f)
	}
}

func TestNumberTrailingTextNotConsumed(t *testing.T) {
	n, kind, _, u, _, err := Number([]byte("42,"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || kind != NumUint || u != 42 {
		t.Fatalf("got n=%d kind=%v u=%d", n, kind, u)
	}
}

func TestNumberMissingDigitAfterSign(t *testing.T) {
	_, _, _, _, _, err := Number([]byte("-"))
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestNumberMissingDigitAfterDecimalPoint(t *testing.T) {
	_, _, _, _, _, err := Number([]byte("1."))
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestNumberMissingDigitAfterExponent(t *testing.T) {
	_, _, _, _, _, err := Number([]byte("1e"))
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestNumberUnsignedOverflow(t *testing.T) {
	_, _, _, _, _, err := Number([]byte("99999999999999999999"))
	if !errors.Is(err, ErrNumberOverflow) {
		t.Fatalf("expected ErrNumberOverflow, got %v", err)
	}
}

func TestNumberSignedOverflow(t *testing.T) {
	_, _, _, _, _, err := Number([]byte("-9223372036854775809"))
	if !errors.Is(err, ErrNumberOverflow) {
		t.Fatalf("expected ErrNumberOverflow, got %v", err)
	}
}
