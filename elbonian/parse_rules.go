package elbonian

import (
	"strconv"
	"strings"
)

// decimalRules validates a string of ASCII digits. The classifier has
// already excluded signs, fractions and every non-digit byte.
func decimalRules() []Rule {
	return []Rule{
		{
			ID: "ELB-BOUNDS-002",
			Apply: func(s string) error {
				if strings.TrimLeft(s, "0") == "" {
					return newError(KindBounds, "ELB-BOUNDS-002", "zero cannot be represented")
				}
				return nil
			},
		},
		{
			ID: "ELB-BOUNDS-005",
			Apply: func(s string) error {
				if len(s) > 1 && s[0] == '0' && strings.TrimLeft(s, "0") != "" {
					return newError(KindBounds, "ELB-BOUNDS-005", "leading zeros are not allowed")
				}
				return nil
			},
		},
		{
			ID: "ELB-BOUNDS-006",
			Apply: func(s string) error {
				// Long digit strings may not fit an int; anything longer than
				// MaxValue once leading zeros are gone is out of range anyway.
				digits := strings.TrimLeft(s, "0")
				if len(digits) > len(strconv.Itoa(MaxValue)) {
					return newError(KindBounds, "ELB-BOUNDS-006", "value exceeds "+strconv.Itoa(MaxValue))
				}
				if digits == "" {
					return nil
				}
				v, err := strconv.Atoi(digits)
				if err != nil || v > MaxValue {
					return newError(KindBounds, "ELB-BOUNDS-006", "value exceeds "+strconv.Itoa(MaxValue))
				}
				return nil
			},
		},
	}
}

// parseDecimal validates and converts a digit-only string.
func parseDecimal(s string) (int, error) {
	if err := ValidateRules(s, decimalRules()); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, newError(KindInternal, "ELB-INTERNAL-002", "validated decimal did not parse")
	}
	return v, nil
}
