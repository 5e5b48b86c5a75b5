package generator

import (
	"strconv"
	"strings"
)

// Band is the acceptable Flesch Reading Ease interval for an age group.
type Band struct {
	Min int
	Max int
}

// Contains reports whether a readability score lies inside the band,
// inclusive on both ends.
func (b Band) Contains(score float64) bool {
	return score >= float64(b.Min) && score <= float64(b.Max)
}

// canonicalBands maps age-range tokens to Flesch bands, in priority order.
// Resolution iterates in this order and the first match wins.
var canonicalBands = []struct {
	AgeRange string
	Band     Band
}{
	{"3-8", Band{80, 100}},
	{"9-15", Band{60, 80}},
	{"16-19", Band{50, 60}},
	{"20+", Band{30, 50}},
}

// defaultBand is used when the age range matches no canonical entry. This is
// a silent fallback with no warning signal — kept for compatibility, flagged
// for product review in DESIGN.md.
var defaultBand = Band{30, 100}

// ResolveBand maps an age-range token to its Flesch band. Hyphenated inputs
// match a hyphenated canonical key when the input interval is contained in
// the canonical interval; a trailing "+" matches the open-ended key. There is
// no error path: unrecognized input resolves to the default band.
func ResolveBand(ageRange string) Band {
	for _, c := range canonicalBands {
		if strings.Contains(c.AgeRange, "-") && strings.Contains(ageRange, "-") {
			cStart, cEnd, ok1 := parseRange(c.AgeRange)
			aStart, aEnd, ok2 := parseRange(ageRange)
			if ok1 && ok2 && aStart >= cStart && aEnd <= cEnd {
				return c.Band
			}
		} else if strings.Contains(c.AgeRange, "+") && strings.Contains(ageRange, "+") {
			return c.Band
		}
	}
	return defaultBand
}

func parseRange(s string) (start, end int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return start, end, true
}
