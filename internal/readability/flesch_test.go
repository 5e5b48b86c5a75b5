package readability

import "testing"

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"make", 1},
		{"stone", 1},
		{"little", 2},
		{"table", 2},
		{"happy", 2},
		{"banana", 3},
		{"beautiful", 3},
		{"a", 1},
		{"", 1},
		{"rhythm", 1},
		{"Title:", 2},
	}

	for _, c := range cases {
		if got := CountSyllables(c.word); got != c.want {
			t.Errorf("CountSyllables(%q) = %d, want %d", c.word, got, c.want)
		}
	}
}

func TestScore_EmptyText(t *testing.T) {
	if got := Score(""); got != 0 {
		t.Errorf("expected 0 for empty text, got %f", got)
	}
	if got := Score("   \n  "); got != 0 {
		t.Errorf("expected 0 for whitespace-only text, got %f", got)
	}
}

func TestScore_SimpleTextScoresHigherThanComplex(t *testing.T) {
	simple := "The cat sat on the mat. The dog ran to the cat. They play all day."
	complex := "Notwithstanding considerable institutional impediments, contemporary epistemological developments necessitate comprehensive reevaluation of foundational methodological assumptions underlying interdisciplinary collaboration."

	simpleScore := Score(simple)
	complexScore := Score(complex)

	if simpleScore <= complexScore {
		t.Errorf("simple text (%.2f) should score higher than complex text (%.2f)", simpleScore, complexScore)
	}
	if simpleScore < 80 {
		t.Errorf("expected simple children's text to score >= 80, got %.2f", simpleScore)
	}
	if complexScore > 30 {
		t.Errorf("expected dense academic text to score <= 30, got %.2f", complexScore)
	}
}

func TestScore_NoTerminatorCountsOneSentence(t *testing.T) {
	// Same words, one with a period and one without, must score identically.
	withPeriod := Score("The fox ran fast.")
	without := Score("The fox ran fast")
	if withPeriod != without {
		t.Errorf("terminator handling mismatch: %.2f vs %.2f", withPeriod, without)
	}
}

func TestScore_EllipsisCountsOneSentence(t *testing.T) {
	a := Score("The fox ran away...")
	b := Score("The fox ran away.")
	if a != b {
		t.Errorf("ellipsis should count as one sentence: %.2f vs %.2f", a, b)
	}
}
