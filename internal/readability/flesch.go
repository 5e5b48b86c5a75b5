package readability

import "strings"

// Score returns the Flesch Reading Ease of the given English text on the
// standard 0-100-ish scale (higher = easier to read).
//
// Formula: 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// The score is returned unrounded; callers round for display.
func Score(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

// countSentences counts terminator runs (. ! ?). A text with no terminator
// still counts as one sentence.
func countSentences(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inTerminator {
				count++
			}
			inTerminator = true
		} else {
			inTerminator = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// CountSyllables estimates the syllable count of a single English word by
// counting vowel groups, with adjustments for silent trailing 'e' and
// consonant+"le" endings. Every word counts as at least one syllable.
func CountSyllables(word string) int {
	w := normalize(word)
	if w == "" {
		return 1
	}

	groups := 0
	prevVowel := false
	for _, c := range w {
		v := isVowel(c)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}

	// Silent trailing 'e' ("make", "stone") — but not "le" after a
	// consonant ("little", "table"), which adds a syllable of its own.
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && groups > 1 {
		groups--
	}

	if groups < 1 {
		return 1
	}
	return groups
}

func normalize(word string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(word) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

func isVowel(c rune) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
