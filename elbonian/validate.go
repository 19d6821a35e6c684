package elbonian

import "fmt"

// scan is the result of one left-to-right pass over a symbol string.
//
// The pass tracks the current tier index, which may stay or move down but
// never regress to a higher tier. Repeats of a tier are therefore contiguous.
type scan struct {
	counts [len(tiers)]int

	// misplaced is the first symbol found after a lower tier, or 0.
	misplaced byte
	after     byte
}

func scanSymbols(s string) *scan {
	sc := &scan{}
	cur := 0
	for i := 0; i < len(s); i++ {
		idx := int(tierIndex[s[i]])
		if idx < cur && sc.misplaced == 0 {
			sc.misplaced = s[i]
			sc.after = tiers[cur].Symbol
		}
		if idx > cur {
			cur = idx
		}
		sc.counts[idx]++
	}
	return sc
}

// symbolRules returns the grammar rules for a scanned symbol string, in
// evaluation order: ordering first, then each pair from N/M down to J/I.
func symbolRules(sc *scan) []Rule {
	rules := []Rule{{
		ID: "ELB-GRAM-010",
		Apply: func(string) error {
			if sc.misplaced != 0 {
				return symbolError("ELB-GRAM-010", sc.misplaced,
					fmt.Sprintf("symbol %c may not follow %c", sc.misplaced, sc.after))
			}
			return nil
		},
	}}
	for hi := 0; hi < len(tiers); hi += 2 {
		rules = append(rules, pairRules(sc, hi, hi+1)...)
	}
	return rules
}

func pairRules(sc *scan, hi, lo int) []Rule {
	high, low := tiers[hi], tiers[lo]
	return []Rule{
		{
			ID: "ELB-GRAM-020",
			Apply: func(string) error {
				if sc.counts[lo] > low.Max {
					return symbolError("ELB-GRAM-020", low.Symbol,
						fmt.Sprintf("symbol %c repeats %d times (max %d)", low.Symbol, sc.counts[lo], low.Max))
				}
				return nil
			},
		},
		{
			ID: "ELB-GRAM-021",
			Apply: func(string) error {
				if sc.counts[hi] > high.Max {
					return symbolError("ELB-GRAM-021", high.Symbol,
						fmt.Sprintf("symbol %c repeats %d times (max %d)", high.Symbol, sc.counts[hi], high.Max))
				}
				return nil
			},
		},
		{
			ID: "ELB-GRAM-022",
			Apply: func(string) error {
				if sc.counts[lo] > 0 && sc.counts[hi] > pairedMax {
					return symbolError("ELB-GRAM-022", high.Symbol,
						fmt.Sprintf("symbol %c repeats %d times alongside %c (max %d)", high.Symbol, sc.counts[hi], low.Symbol, pairedMax))
				}
				return nil
			},
		},
	}
}

// validateSymbols proves a symbol-only string well formed.
func validateSymbols(s string) error {
	return ValidateRules(s, symbolRules(scanSymbols(s)))
}

// Diagnose returns every rule the input violates, in evaluation order.
//
// Unlike Parse it does not stop at the first failure on the symbol path.
// Inputs that fail before reaching a validator yield a single error.
func Diagnose(input string) []error {
	s := normalize(input)
	switch c := classify(s); c {
	case classSymbolic:
		return ValidateRulesAll(s, symbolRules(scanSymbols(s)))
	case classDecimal:
		return ValidateRulesAll(s, decimalRules())
	default:
		return []error{classError(c)}
	}
}
