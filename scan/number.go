// Package scan implements the byte-level scanners shared by the parser:
// a finite-state number recognizer and a two-pass string decoder.
package scan

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidNumber  = errors.New("scan: invalid number")
	ErrNumberOverflow = errors.New("scan: number overflow")
)

// NumKind tags the result of Number.
type NumKind int

const (
	NumUint NumKind = iota
	NumInt
	NumFloat
)

const maxExactMantissa = 1<<53 - 1

var pow10 = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// Number scans a JSON number starting at d[0]. It returns the number of
// bytes consumed and the decoded value in exactly one of i, u, f depending
// on kind. It does not require d to contain nothing but the number; it
// stops at the first byte that cannot extend the number.
func Number(d []byte) (consumed int, kind NumKind, i int64, u uint64, f float64, err error) {
	if len(d) == 0 {
		return 0, NumUint, 0, 0, 0, ErrInvalidNumber
	}
	pos := 0
	negative := false
	if d[pos] == '-' {
		negative = true
		pos++
		if pos >= len(d) || !isDigit(d[pos]) {
			return pos, NumUint, 0, 0, 0, ErrInvalidNumber
		}
	}

	intStart := pos
	if d[pos] == '0' {
		pos++
		if pos < len(d) && isDigit(d[pos]) {
			for pos < len(d) && isDigit(d[pos]) {
				pos++
			}
			return pos, NumUint, 0, 0, 0, ErrInvalidNumber
		}
	} else {
		for pos < len(d) && isDigit(d[pos]) {
			pos++
		}
	}
	intDigits := d[intStart:pos]

	var mantissa uint64
	for _, c := range intDigits {
		mantissa = mantissa*10 + uint64(c-'0')
	}
	implicitExp := 0
	isFloat := false

	if pos < len(d) && d[pos] == '.' {
		isFloat = true
		pos++
		fracStart := pos
		if pos >= len(d) || !isDigit(d[pos]) {
			return pos, NumUint, 0, 0, 0, ErrInvalidNumber
		}
		for pos < len(d) && isDigit(d[pos]) {
			pos++
		}
		for _, c := range d[fracStart:pos] {
			mantissa = mantissa*10 + uint64(c-'0')
			implicitExp--
		}
	}

	explicitExp := 0
	expSign := 1
	if pos < len(d) && (d[pos] == 'e' || d[pos] == 'E') {
		isFloat = true
		pos++
		if pos < len(d) && (d[pos] == '+' || d[pos] == '-') {
			if d[pos] == '-' {
				expSign = -1
			}
			pos++
		}
		expStart := pos
		if pos >= len(d) || !isDigit(d[pos]) {
			return pos, NumUint, 0, 0, 0, ErrInvalidNumber
		}
		for pos < len(d) && isDigit(d[pos]) {
			pos++
		}
		for _, c := range d[expStart:pos] {
			explicitExp = explicitExp*10 + int(c-'0')
		}
	}

	consumed = pos
	if !isFloat {
		if negative {
			if len(intDigits) > 19 || mantissa > 1<<63 {
				return consumed, NumInt, 0, 0, 0, ErrNumberOverflow
			}
			return consumed, NumInt, -int64(mantissa), 0, 0, nil
		}
		n := len(intDigits)
		if n <= 19 || (n == 20 && mantissa >= 10000000000000000000) {
			return consumed, NumUint, 0, mantissa, 0, nil
		}
		return consumed, NumUint, 0, 0, 0, ErrNumberOverflow
	}

	exponent := implicitExp + explicitExp*expSign
	fval, exact := computeDouble(exponent, mantissa)
	// More than 19 significant digits may have wrapped the uint64
	// accumulator, so mantissa cannot be trusted for the fast path.
	if len(intDigits)-implicitExp > 19 {
		exact = false
	}
	if !exact {
		fval, err = strconv.ParseFloat(string(d[:consumed]), 64)
		if err != nil {
			return consumed, NumFloat, 0, 0, 0, ErrInvalidNumber
		}
		return consumed, NumFloat, 0, 0, fval, nil
	}
	if negative {
		fval = -fval
	}
	return consumed, NumFloat, 0, 0, fval, nil
}

// computeDouble implements the fast exact path: for -22 <= power <= 22 and
// mantissa representable exactly in a double (<= 2^53-1), mantissa*10^power
// is a single correctly-rounded multiply or divide.
func computeDouble(power int, mantissa uint64) (float64, bool) {
	if power < -22 || power > 22 || mantissa > maxExactMantissa {
		return 0, false
	}
	d := float64(mantissa)
	if power < 0 {
		return d / pow10[-power], true
	}
	return d * pow10[power], true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
