package elbonian

import (
	"strconv"
	"testing"

	"xdao.co/elbonian/compliance"
)

func TestParse_Arabic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1", "I"},
		{"2", "II"},
		{"3", "J"},
		{"8", "JJII"},
		{"9", "JJJ"},
		{"99", "YYYJJJ"},
		{"5555", "NMMDCCYXXJII"},
		{"7000", "NNM"},
		{"9000", "NNN"},
		{"9999", "NNNDDDYYYJJJ"},
	}
	for _, tc := range cases {
		n, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got := n.Elbonian(); got != tc.want {
			t.Fatalf("Parse(%q).Elbonian() = %q, want %q", tc.in, got, tc.want)
		}
		if n.Form() != FormArabic {
			t.Fatalf("Parse(%q).Form() = %s", tc.in, n.Form())
		}
		if strconv.Itoa(n.Arabic()) != tc.in {
			t.Fatalf("Parse(%q).Arabic() = %d", tc.in, n.Arabic())
		}
	}
}

func TestParse_Elbonian(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"I", 1},
		{"JJII", 8},
		{"JJJ", 9},
		{"NNN", 9000},
		{"NNMM", 8000},
		{"NMMDCCYXXJII", 5555},
		{"NNNDDDYYYJJJ", 9999},
	}
	for _, tc := range cases {
		n, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if n.Arabic() != tc.want {
			t.Fatalf("Parse(%q).Arabic() = %d, want %d", tc.in, n.Arabic(), tc.want)
		}
		if n.Elbonian() != tc.in || n.String() != tc.in {
			t.Fatalf("Parse(%q) should keep its canonical spelling, got %q", tc.in, n.Elbonian())
		}
		if n.Form() != FormElbonian {
			t.Fatalf("Parse(%q).Form() = %s", tc.in, n.Form())
		}
	}
}

func TestParse_Rejections(t *testing.T) {
	cases := []struct {
		in     string
		kind   Kind
		ruleID string
		symbol byte
	}{
		{"", KindBounds, "ELB-BOUNDS-001", 0},
		{"   ", KindBounds, "ELB-BOUNDS-001", 0},
		{"0", KindBounds, "ELB-BOUNDS-002", 0},
		{"000", KindBounds, "ELB-BOUNDS-002", 0},
		{"-1", KindBounds, "ELB-BOUNDS-003", 0},
		{"-0", KindBounds, "ELB-BOUNDS-003", 0},
		{"63.4", KindBounds, "ELB-BOUNDS-004", 0},
		{"-.5", KindBounds, "ELB-BOUNDS-004", 0},
		{"099", KindBounds, "ELB-BOUNDS-005", 0},
		{"10000", KindBounds, "ELB-BOUNDS-006", 0},
		{"99999999999999999999999999", KindBounds, "ELB-BOUNDS-006", 0},
		{"1M", KindMalformed, "ELB-GRAM-001", 0},
		{"99 9", KindMalformed, "ELB-GRAM-001", 0},
		{"n", KindMalformed, "ELB-GRAM-001", 0},
		{"+5", KindMalformed, "ELB-GRAM-001", 0},
		{"-", KindMalformed, "ELB-GRAM-001", 0},
		{"1.", KindMalformed, "ELB-GRAM-001", 0},
		{"N M", KindMalformed, "ELB-GRAM-001", 0},
		{"V", KindMalformed, "ELB-GRAM-001", 0},
		{"DYN", KindMalformed, "ELB-GRAM-010", 'N'},
		{"IXJ", KindMalformed, "ELB-GRAM-010", 'X'},
		{"MN", KindMalformed, "ELB-GRAM-010", 'N'},
		{"NMN", KindMalformed, "ELB-GRAM-010", 'N'},
		{"MMM", KindMalformed, "ELB-GRAM-020", 'M'},
		{"III", KindMalformed, "ELB-GRAM-020", 'I'},
		{"NNNN", KindMalformed, "ELB-GRAM-021", 'N'},
		{"YYYY", KindMalformed, "ELB-GRAM-021", 'Y'},
		{"NNNM", KindMalformed, "ELB-GRAM-022", 'N'},
		{"DDDC", KindMalformed, "ELB-GRAM-022", 'D'},
		{"JJJI", KindMalformed, "ELB-GRAM-022", 'J'},
	}
	for _, tc := range cases {
		n, err := Parse(tc.in)
		if err == nil {
			t.Fatalf("Parse(%q): expected error, got %v", tc.in, n)
		}
		if !n.IsZero() {
			t.Fatalf("Parse(%q): failed parse must return the zero Numeral", tc.in)
		}
		if !IsKind(err, tc.kind) {
			t.Fatalf("Parse(%q): expected %s, got %v", tc.in, tc.kind, err)
		}
		if got := RuleID(err); got != tc.ruleID {
			t.Fatalf("Parse(%q): expected RuleID %s, got %s (%v)", tc.in, tc.ruleID, got, err)
		}
		if e := err.(*Error); e.Symbol != tc.symbol {
			t.Fatalf("Parse(%q): expected symbol %q, got %q", tc.in, tc.symbol, e.Symbol)
		}
	}
}

func TestParse_TrimsSurroundingWhitespace(t *testing.T) {
	n, err := Parse(" \t99\n ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Arabic() != 99 {
		t.Fatalf("expected 99, got %d", n.Arabic())
	}
	n, err = Parse("  NNN ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Elbonian() != "NNN" {
		t.Fatalf("expected NNN, got %s", n.Elbonian())
	}
}

func TestParseWithMode_Strict(t *testing.T) {
	if _, err := ParseWithMode("NNN", compliance.Strict); err != nil {
		t.Fatalf("strict canonical input: %v", err)
	}
	_, err := ParseWithMode(" 99", compliance.Strict)
	if !IsMalformed(err) || RuleID(err) != "ELB-GRAM-002" {
		t.Fatalf("expected ELB-GRAM-002, got %v", err)
	}
	_, err = ParseWithMode("  ", compliance.Strict)
	if !IsOutOfBounds(err) || RuleID(err) != "ELB-BOUNDS-001" {
		t.Fatalf("expected whitespace-only input to stay a bounds failure, got %v", err)
	}
}

func TestFromArabic(t *testing.T) {
	n, err := FromArabic(1)
	if err != nil || n.Elbonian() != "I" {
		t.Fatalf("FromArabic(1) = %v, %v", n, err)
	}
	for v, rule := range map[int]string{0: "ELB-BOUNDS-002", -7: "ELB-BOUNDS-003", 10000: "ELB-BOUNDS-006"} {
		_, err := FromArabic(v)
		if !IsOutOfBounds(err) || RuleID(err) != rule {
			t.Fatalf("FromArabic(%d): expected %s, got %v", v, rule, err)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	got, err := Canonicalize(" 42 ")
	if err != nil {
		t.Fatalf("Canonicalize: %v", err)
	}
	if got != "YXII" {
		t.Fatalf("Canonicalize(42) = %q", got)
	}
	if _, err := Canonicalize("NNNM"); !IsMalformed(err) {
		t.Fatalf("expected malformed, got %v", err)
	}
}

func TestNumeral_CIDIndependentOfForm(t *testing.T) {
	a, err := Parse("9999")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse("NNNDDDYYYJJJ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.CID() == "" || a.CID() != b.CID() {
		t.Fatalf("expected equal CIDs, got %q and %q", a.CID(), b.CID())
	}
	var zero Numeral
	if zero.CID() != "" {
		t.Fatalf("zero Numeral must not have a CID")
	}
}

func TestNumeral_TextRoundTrip(t *testing.T) {
	n, err := Parse("1234")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := n.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var back Numeral
	if err := back.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText(%s): %v", b, err)
	}
	if back.Arabic() != 1234 {
		t.Fatalf("round trip got %d", back.Arabic())
	}
	if err := back.UnmarshalText([]byte("NNNM")); !IsMalformed(err) {
		t.Fatalf("expected malformed, got %v", err)
	}
	if back.Arabic() != 1234 {
		t.Fatalf("failed UnmarshalText must leave the receiver unchanged")
	}
	if _, err := (Numeral{}).MarshalText(); err == nil {
		t.Fatalf("expected error marshaling zero Numeral")
	}
}

func TestSymbols_IsACopy(t *testing.T) {
	s := Symbols()
	if len(s) != 8 || s[0].Symbol != 'N' || s[7].Symbol != 'I' {
		t.Fatalf("unexpected table: %+v", s)
	}
	s[0].Weight = 1
	if WeightOf('N') != 3000 {
		t.Fatalf("mutating Symbols() must not affect the table")
	}
	if WeightOf('n') != 0 {
		t.Fatalf("lowercase is not a symbol")
	}
}

func TestDiagnose(t *testing.T) {
	errs := Diagnose("NNNNMMMDN")
	want := []string{"ELB-GRAM-010", "ELB-GRAM-020", "ELB-GRAM-021", "ELB-GRAM-022"}
	if len(errs) != len(want) {
		t.Fatalf("expected %d violations, got %v", len(want), errs)
	}
	for i, err := range errs {
		if RuleID(err) != want[i] {
			t.Fatalf("violation %d: got %s want %s", i, RuleID(err), want[i])
		}
	}

	if errs := Diagnose("0"); len(errs) != 1 || RuleID(errs[0]) != "ELB-BOUNDS-002" {
		t.Fatalf("Diagnose(0) = %v", errs)
	}
	if errs := Diagnose("010000"); len(errs) != 2 {
		t.Fatalf("Diagnose(010000) = %v", errs)
	}
	if errs := Diagnose("1M"); len(errs) != 1 || RuleID(errs[0]) != "ELB-GRAM-001" {
		t.Fatalf("Diagnose(1M) = %v", errs)
	}
	if errs := Diagnose("NMDCYXJI"); len(errs) != 0 {
		t.Fatalf("Diagnose(valid) = %v", errs)
	}
}

func TestValidateRules_NilApply(t *testing.T) {
	err := ValidateRules("I", []Rule{{ID: "X"}})
	if !IsKind(err, KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
