package elbonian

// Rule is an explicit, named validation rule.
//
// ID must be stable across versions. Several rules may share an ID when they
// enforce the same constraint on different tiers.
// Apply must be deterministic and side-effect free.
type Rule struct {
	ID    string
	Apply func(string) error
}

func (r Rule) apply(s string) error {
	if r.Apply == nil {
		return newError(KindInternal, "ELB-INTERNAL-001", "nil rule Apply")
	}
	return r.Apply(s)
}

// ValidateRules runs rules in order, returning the first failure.
func ValidateRules(s string, rules []Rule) error {
	for _, r := range rules {
		if err := r.apply(s); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRulesAll runs all rules in order, returning a (deterministically
// ordered) slice of all violations.
func ValidateRulesAll(s string, rules []Rule) []error {
	var out []error
	for _, r := range rules {
		if err := r.apply(s); err != nil {
			out = append(out, err)
		}
	}
	return out
}
