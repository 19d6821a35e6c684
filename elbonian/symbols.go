package elbonian

const (
	MinValue = 1
	MaxValue = 9999
)

// Tier is one Elbonian symbol with its fixed weight and repetition cap.
//
// Max is the cap that applies when the pair partner does not forbid it: for
// the high member of a pair this is 3, reduced to pairedMax whenever the low
// member is present.
type Tier struct {
	Symbol byte
	Weight int
	Max    int
}

const pairedMax = 2

// tiers is ordered from the highest weight to the lowest. Even indices are
// the high member of a pair, odd indices the low member.
var tiers = [...]Tier{
	{'N', 3000, 3},
	{'M', 1000, 2},
	{'D', 300, 3},
	{'C', 100, 2},
	{'Y', 30, 3},
	{'X', 10, 2},
	{'J', 3, 3},
	{'I', 1, 2},
}

// tierIndex maps a symbol byte to its position in tiers, or -1.
var tierIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i, t := range tiers {
		idx[t.Symbol] = int8(i)
	}
	return idx
}()

// Symbols returns the symbol table ordered from the highest weight down.
func Symbols() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers[:])
	return out
}

// WeightOf returns the weight of sym, or 0 if sym is not an Elbonian symbol.
func WeightOf(sym byte) int {
	i := tierIndex[sym]
	if i < 0 {
		return 0
	}
	return tiers[i].Weight
}

func isSymbol(c byte) bool { return tierIndex[c] >= 0 }
