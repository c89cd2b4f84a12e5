package term

import (
	"testing"
)

func mustBool(t *testing.T, got bool, err error, want bool, what string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", what, err)
	}
	if got != want {
		t.Fatalf("%s: got %v, want %v", what, got, want)
	}
}

func TestTerminalMatchesSingleSymbol(t *testing.T) {
	p := Terminal('a')

	matched, err := p.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err := matched.IsNullable()
	mustBool(t, nullable, err, true, "matched.IsNullable")
	pn, err := matched.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	if pn.Len() != 1 || pn.Values()[0] != 'a' {
		t.Fatalf("parseNull = %v, want {'a'}", pn.Values())
	}

	mismatched, err := p.Derive('b')
	if err != nil {
		t.Fatal(err)
	}
	empty, err := mismatched.IsEmpty()
	mustBool(t, empty, err, true, "mismatched.IsEmpty")
}

func TestAltRecognizesEitherBranch(t *testing.T) {
	alt, err := Alt(Terminal('a'), Terminal('b'))
	if err != nil {
		t.Fatal(err)
	}

	da, err := alt.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err := da.IsNullable()
	mustBool(t, nullable, err, true, "alt/a nullable")

	db, err := alt.Derive('b')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err = db.IsNullable()
	mustBool(t, nullable, err, true, "alt/b nullable")

	dc, err := alt.Derive('c')
	if err != nil {
		t.Fatal(err)
	}
	empty, err := dc.IsEmpty()
	mustBool(t, empty, err, true, "alt/c empty")
}

func TestConSequencesTwoTerminals(t *testing.T) {
	seq, err := Con(Terminal('a'), Terminal('b'))
	if err != nil {
		t.Fatal(err)
	}

	afterA, err := seq.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err := afterA.IsNullable()
	mustBool(t, nullable, err, false, "afterA.IsNullable")

	afterAB, err := afterA.Derive('b')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err = afterAB.IsNullable()
	mustBool(t, nullable, err, true, "afterAB.IsNullable")

	pn, err := afterAB.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, p := range pn.Values() {
		if p.First == 'a' && p.Second == 'b' {
			found = true
		}
	}
	if !found {
		t.Fatalf("parseNull = %v, want to contain Pair{a,b}", pn.Values())
	}
}

func TestRedTransformsParsedValue(t *testing.T) {
	shout, err := Red(Terminal('a'), func(r rune) string {
		return string(r) + "!"
	})
	if err != nil {
		t.Fatal(err)
	}
	d, err := shout.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	pn, err := d.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	if pn.Len() != 1 || pn.Values()[0] != "a!" {
		t.Fatalf("parseNull = %v, want {\"a!\"}", pn.Values())
	}
}

func TestRepCollectsRepetitions(t *testing.T) {
	star, err := Rep(Terminal('a'))
	if err != nil {
		t.Fatal(err)
	}

	nullable, err := star.IsNullable()
	mustBool(t, nullable, err, true, "star.IsNullable (zero repetitions)")
	pn, err := star.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	if pn.Len() != 1 || len(pn.Values()[0]) != 0 {
		t.Fatalf("parseNull = %v, want {[]}", pn.Values())
	}

	once, err := star.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	twice, err := once.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err = twice.IsNullable()
	mustBool(t, nullable, err, true, "twice.IsNullable")
	pn, err = twice.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	seen := false
	for _, v := range pn.Values() {
		if len(v) == 2 && v[0] == 'a' && v[1] == 'a' {
			seen = true
		}
	}
	if !seen {
		t.Fatalf("parseNull = %v, want to contain [a a]", pn.Values())
	}
}

// TestLeftRecursiveListGrammar builds list -> list ',' item | item, the
// canonical example a naive recursive-descent parser cannot handle
// directly, and checks that repeated derivation converges to the
// expected accumulated values.
func TestLeftRecursiveListGrammar(t *testing.T) {
	rec := NewRecursion[rune, []rune]()

	item := Terminal[rune]('x')
	itemVal, err := Red(item, func(r rune) []rune { return []rune{r} })
	if err != nil {
		t.Fatal(err)
	}
	comma := Terminal[rune](',')

	step1, err := Con(rec.Node(), comma)
	if err != nil {
		t.Fatal(err)
	}
	step2, err := Con(step1, item)
	if err != nil {
		t.Fatal(err)
	}
	recCase, err := Red(step2, func(p Pair[Pair[[]rune, rune], rune]) []rune {
		out := append([]rune{}, p.First.First...)
		return append(out, p.Second)
	})
	if err != nil {
		t.Fatal(err)
	}

	body, err := Alt(recCase, itemVal)
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Bind(body); err != nil {
		t.Fatal(err)
	}

	list := rec.Node()

	d1, err := list.Derive('x')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err := d1.IsNullable()
	mustBool(t, nullable, err, true, "single item nullable")
	pn, err := d1.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	if !containsRuneSlice(pn.Values(), []rune{'x'}) {
		t.Fatalf("parseNull after \"x\" = %v, want to contain [x]", pn.Values())
	}

	d2, err := d1.Derive(',')
	if err != nil {
		t.Fatal(err)
	}
	d3, err := d2.Derive('x')
	if err != nil {
		t.Fatal(err)
	}
	nullable, err = d3.IsNullable()
	mustBool(t, nullable, err, true, "two items nullable")
	pn, err = d3.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	if !containsRuneSlice(pn.Values(), []rune{'x', 'x'}) {
		t.Fatalf("parseNull after \"x,x\" = %v, want to contain [x x]", pn.Values())
	}
}

func containsRuneSlice(vs [][]rune, want []rune) bool {
	for _, v := range vs {
		if len(v) != len(want) {
			continue
		}
		match := true
		for i := range v {
			if v[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// TestAmbiguousGrammarUnionsAllParses checks that an ambiguous term —
// one string reachable through two distinct structural paths — unions
// the values of both paths in ParseNull, so that two paths assigning
// the same value collapse into a single member (spec §3's parseNull
// is a set, not a list of parses).
func TestAmbiguousGrammarUnionsAllParses(t *testing.T) {
	// S -> Red('a', id) | Red('a', const 'a')  -- both branches consume
	// the same "a" and both assign it the value 'a', so the union holds
	// that value once.
	left, err := Red(Terminal('a'), func(r rune) rune { return r })
	if err != nil {
		t.Fatal(err)
	}
	right, err := Red(Terminal('a'), func(r rune) rune { return 'a' })
	if err != nil {
		t.Fatal(err)
	}
	alt, err := Alt(left, right)
	if err != nil {
		t.Fatal(err)
	}
	d, err := alt.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	pn, err := d.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	if pn.Len() != 1 {
		t.Fatalf("parseNull = %v, want a single deduplicated value", pn.Values())
	}
}

// TestAmbiguousGrammarKeepsDistinctReductionOutputs checks the other
// half of spec §8 scenario 6: when the two branches of an ambiguous
// term actually disagree on the value they assign the same string,
// both survive in ParseNull rather than one silently shadowing the
// other.
func TestAmbiguousGrammarKeepsDistinctReductionOutputs(t *testing.T) {
	lower, err := Red(Terminal('a'), func(r rune) rune { return r })
	if err != nil {
		t.Fatal(err)
	}
	upper, err := Red(Terminal('a'), func(r rune) rune { return 'A' })
	if err != nil {
		t.Fatal(err)
	}
	alt, err := Alt(lower, upper)
	if err != nil {
		t.Fatal(err)
	}
	d, err := alt.Derive('a')
	if err != nil {
		t.Fatal(err)
	}
	pn, err := d.ParseNull()
	if err != nil {
		t.Fatal(err)
	}
	if pn.Len() != 2 {
		t.Fatalf("parseNull = %v, want both 'a' and 'A'", pn.Values())
	}
	var sawLower, sawUpper bool
	for _, v := range pn.Values() {
		switch v {
		case 'a':
			sawLower = true
		case 'A':
			sawUpper = true
		}
	}
	if !sawLower || !sawUpper {
		t.Fatalf("parseNull = %v, missing an expected distinct output", pn.Values())
	}
}
