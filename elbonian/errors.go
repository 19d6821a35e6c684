package elbonian

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
// Error() strings are human-readable and may evolve.
type Kind string

const (
	// KindMalformed covers inputs that break the numeral grammar: ordering,
	// pairing and repetition caps, digit/letter mixes and foreign characters.
	KindMalformed Kind = "Malformed"
	// KindBounds covers inputs that denote no value in [MinValue, MaxValue]:
	// zero, too large, negative, fractional, leading zeros and empty input.
	KindBounds   Kind = "Bounds"
	KindInternal Kind = "Internal"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g. ELB-GRAM-010, ELB-BOUNDS-002) naming the
// violated rule. Symbol is set when a grammar rule fired on a specific symbol.
type Error struct {
	Kind    Kind
	RuleID  string
	Symbol  byte
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func symbolError(ruleID string, sym byte, msg string) error {
	return &Error{Kind: KindMalformed, RuleID: ruleID, Symbol: sym, Message: msg}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsMalformed reports whether err is a grammar failure.
func IsMalformed(err error) bool { return IsKind(err, KindMalformed) }

// IsOutOfBounds reports whether err is a bounds failure.
func IsOutOfBounds(err error) bool { return IsKind(err, KindBounds) }

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
