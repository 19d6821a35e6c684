package compliance

import "fmt"

// ComplianceMode selects how much input normalization the parser performs.
//
// Permissive mode trims surrounding whitespace before validating.
// Strict mode accepts only inputs that are already exactly a numeral.
type ComplianceMode int

const (
	Permissive ComplianceMode = iota
	Strict
)

func (m ComplianceMode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("ComplianceMode(%d)", int(m))
	}
}

// ParseMode parses a mode name as used by flags and config files.
// The empty string selects Permissive.
func ParseMode(s string) (ComplianceMode, error) {
	switch s {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return Permissive, fmt.Errorf("invalid compliance mode %q (want permissive|strict)", s)
	}
}
