package elbonian

type inputClass int

const (
	classEmpty inputClass = iota
	classDecimal
	classSymbolic
	classNegative
	classFractional
	classMalformed
)

// classify routes normalized input to the decimal or the symbol path by its
// character composition alone. It never inspects values.
func classify(s string) inputClass {
	if s == "" {
		return classEmpty
	}
	if allBytes(s, isDigit) {
		return classDecimal
	}
	if allBytes(s, isSymbol) {
		return classSymbolic
	}
	if isNegativeInteger(s) {
		return classNegative
	}
	if isFraction(s) {
		return classFractional
	}
	return classMalformed
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func allBytes(s string, ok func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !ok(s[i]) {
			return false
		}
	}
	return true
}

// isNegativeInteger matches -[0-9]+.
func isNegativeInteger(s string) bool {
	return len(s) > 1 && s[0] == '-' && allBytes(s[1:], isDigit)
}

// isFraction matches -?[0-9]*\.[0-9]+.
func isFraction(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	dot := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 || dot == len(s)-1 {
		return false
	}
	return allBytes(s[:dot], isDigit) && allBytes(s[dot+1:], isDigit)
}

func classError(c inputClass) error {
	switch c {
	case classEmpty:
		return newError(KindBounds, "ELB-BOUNDS-001", "input must not be empty")
	case classNegative:
		return newError(KindBounds, "ELB-BOUNDS-003", "negative values cannot be represented")
	case classFractional:
		return newError(KindBounds, "ELB-BOUNDS-004", "fractional values cannot be represented")
	case classMalformed:
		return newError(KindMalformed, "ELB-GRAM-001", "input must be all decimal digits or all Elbonian symbols")
	default:
		return nil
	}
}
