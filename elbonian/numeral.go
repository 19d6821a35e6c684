// Package elbonian parses, validates and converts numerals between decimal
// ("Arabic") notation and the additive Elbonian system.
//
// Elbonian numerals use eight symbols, N M D C Y X J I, weighted
// 3000 1000 300 100 30 10 3 1. Symbols appear in non-increasing weight order
// and are grouped into four pairs (N/M, D/C, Y/X, J/I). The low member of a
// pair repeats at most twice. The high member repeats at most three times, and
// at most twice when its low member is present. Every value in
// [MinValue, MaxValue] has exactly one such spelling.
package elbonian

import (
	"strings"

	"xdao.co/elbonian/cidutil"
	"xdao.co/elbonian/compliance"
)

// Form names the notation a Numeral was parsed from.
type Form int

const (
	FormArabic Form = iota + 1
	FormElbonian
)

func (f Form) String() string {
	switch f {
	case FormArabic:
		return "arabic"
	case FormElbonian:
		return "elbonian"
	default:
		return "unknown"
	}
}

// Numeral is a validated value in [MinValue, MaxValue].
//
// A Numeral is immutable and safe for concurrent use. The zero Numeral is not
// valid; construct one with Parse, ParseWithMode or FromArabic.
type Numeral struct {
	value   int
	symbols string
	form    Form
}

// Parse parses a decimal or Elbonian numeral.
//
// Surrounding whitespace is trimmed before validation; whitespace inside the
// numeral is malformed. Use ParseWithMode with compliance.Strict to reject
// surrounding whitespace as well.
func Parse(input string) (Numeral, error) {
	return ParseWithMode(input, compliance.Permissive)
}

// ParseWithMode parses input under the given compliance mode.
//
// Failures are *Error values of KindMalformed or KindBounds. Construction is
// atomic: on error the returned Numeral is the zero value.
func ParseWithMode(input string, mode compliance.ComplianceMode) (Numeral, error) {
	s := normalize(input)
	if mode == compliance.Strict && s != "" && s != input {
		return Numeral{}, newError(KindMalformed, "ELB-GRAM-002", "surrounding whitespace not allowed")
	}

	switch c := classify(s); c {
	case classDecimal:
		v, err := parseDecimal(s)
		if err != nil {
			return Numeral{}, err
		}
		return Numeral{value: v, symbols: encode(v), form: FormArabic}, nil
	case classSymbolic:
		if err := validateSymbols(s); err != nil {
			return Numeral{}, err
		}
		return Numeral{value: decode(s), symbols: s, form: FormElbonian}, nil
	default:
		return Numeral{}, classError(c)
	}
}

// FromArabic returns the Numeral for v.
func FromArabic(v int) (Numeral, error) {
	if v < MinValue {
		if v == 0 {
			return Numeral{}, newError(KindBounds, "ELB-BOUNDS-002", "zero cannot be represented")
		}
		return Numeral{}, newError(KindBounds, "ELB-BOUNDS-003", "negative values cannot be represented")
	}
	if v > MaxValue {
		return Numeral{}, newError(KindBounds, "ELB-BOUNDS-006", "value exceeds 9999")
	}
	return Numeral{value: v, symbols: encode(v), form: FormArabic}, nil
}

// Canonicalize returns the canonical Elbonian spelling of any accepted input.
func Canonicalize(input string) (string, error) {
	n, err := Parse(input)
	if err != nil {
		return "", err
	}
	return n.Elbonian(), nil
}

// normalize strips surrounding whitespace. It is the only normalization
// applied to input; case is significant.
func normalize(input string) string {
	return strings.TrimSpace(input)
}

// Arabic returns the decimal value.
func (n Numeral) Arabic() int { return n.value }

// Elbonian returns the canonical Elbonian spelling.
func (n Numeral) Elbonian() string { return n.symbols }

// Form reports which notation the numeral was parsed from.
func (n Numeral) Form() Form { return n.form }

// IsZero reports whether n is the (invalid) zero Numeral.
func (n Numeral) IsZero() bool { return n.value == 0 }

// String returns the canonical Elbonian spelling.
func (n Numeral) String() string { return n.symbols }

// CID returns a CIDv1 (raw + sha2-256) of the canonical Elbonian bytes.
// Equal values share a CID whichever notation they were parsed from.
func (n Numeral) CID() string {
	if n.IsZero() {
		return ""
	}
	return cidutil.CIDv1RawSHA256([]byte(n.symbols))
}

// MarshalText implements encoding.TextMarshaler using the canonical Elbonian
// spelling.
func (n Numeral) MarshalText() ([]byte, error) {
	if n.IsZero() {
		return nil, newError(KindBounds, "ELB-BOUNDS-001", "cannot marshal zero Numeral")
	}
	return []byte(n.symbols), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Either notation is
// accepted.
func (n *Numeral) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
