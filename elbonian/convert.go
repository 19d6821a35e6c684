package elbonian

import "strings"

// encode produces the canonical symbol string for v by greedy decomposition
// over the tier weights, highest first. v must be in [MinValue, MaxValue].
func encode(v int) string {
	var sb strings.Builder
	rem := v
	for _, t := range tiers {
		n := rem / t.Weight
		rem %= t.Weight
		for i := 0; i < n; i++ {
			sb.WriteByte(t.Symbol)
		}
	}
	return sb.String()
}

// decode sums the symbol weights of an already validated symbol string.
func decode(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += WeightOf(s[i])
	}
	return sum
}
