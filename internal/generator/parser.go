package generator

import (
	"regexp"
	"strings"
)

// ParsedStory is the structured view of one raw generated text. No field is
// mandatory — anything the anchors fail to find degrades to an empty string,
// never an error.
type ParsedStory struct {
	Title string
	// Story is the user-facing story text: everything after the title line.
	// It may legitimately include trailing content such as a translation
	// block — only Body is held to the readability contract.
	Story string
	Moral string
	// Body is the strict between-"Title:"-and-"Moral:" extraction. It is
	// authoritative for readability scoring and length metrics.
	Body    string
	HasBody bool
	// StoryText is the canonical story: Body plus the moral line.
	StoryText string

	TranslatedTitle string
	TranslatedStory string
	TranslatedMoral string
}

var (
	titleRe = regexp.MustCompile(`Title:\s*(.*)`)
	moralRe = regexp.MustCompile(`Moral:\s*(.*)`)
	// englishSectionRe captures the story body strictly between the
	// "Title:" line and the "Moral:" label, tolerant of either line-ending
	// convention.
	englishSectionRe = regexp.MustCompile(`(?s)Title:.*?(?:\r\n|\n)(.*?)(?:\r\n|\n)Moral:\s*(.*)`)

	titleScrubRe = regexp.MustCompile(`Title:.*\n?`)
	moralScrubRe = regexp.MustCompile(`Moral:.*`)
)

// ExtractStoryBody returns the English story body between the title line and
// the moral label. ok is false when the anchors are not found.
func ExtractStoryBody(raw string) (body string, ok bool) {
	m := englishSectionRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// ParseStory extracts title, story, moral, and (when a language is
// requested) the translated fields from raw generated text. Extraction order
// matters: the moral is searched within the story remainder, and the
// translation block is searched within the story remainder too.
//
// ParseStory is a pure function of its inputs — calling it twice on the same
// raw text yields identical results.
func ParseStory(raw string, language string, tables PromptTables) ParsedStory {
	full := strings.TrimSpace(raw)
	var p ParsedStory

	// Title: first "Title:"-prefixed line, else the first line of text.
	if m := titleRe.FindStringSubmatch(full); m != nil {
		p.Title = strings.TrimSpace(m[1])
		p.Story = strings.TrimSpace(strings.Replace(full, m[0], "", 1))
	} else {
		lines := strings.Split(full, "\n")
		p.Title = strings.TrimSpace(lines[0])
		p.Story = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	// Moral: first "Moral:"-prefixed line within the story remainder.
	if m := moralRe.FindStringSubmatch(p.Story); m != nil {
		p.Moral = strings.TrimSpace(m[1])
	}

	// Strict re-extraction of the English body for scoring and length.
	if body, ok := ExtractStoryBody(full); ok {
		p.Body = body
		p.HasBody = true
		p.StoryText = body + "\nMoral: " + p.Moral
	} else {
		// Best effort: strip the title and moral lines from the full text.
		scrubbed := titleScrubRe.ReplaceAllString(full, "")
		scrubbed = moralScrubRe.ReplaceAllString(scrubbed, "")
		p.StoryText = strings.TrimSpace(scrubbed)
	}

	if language != "" && !strings.EqualFold(language, "none") {
		p.TranslatedTitle, p.TranslatedStory, p.TranslatedMoral =
			extractTranslation(p.Story, language, tables.LabelsFor(language))
	}

	return p
}

// extractTranslation locates the "Translation in {language}:" block and
// pulls the translated title, story, and moral out of it using the
// language's label set. A missing anchor or label yields empty strings.
func extractTranslation(story, language string, labels LabelSet) (title, body, moral string) {
	anchorRe := regexp.MustCompile(`(?is)Translation in ` + regexp.QuoteMeta(language) + `:(.*)`)
	m := anchorRe.FindStringSubmatch(story)
	if m == nil {
		return "", "", ""
	}
	block := strings.TrimSpace(m[1])

	// Labels may be followed by an ASCII or full-width colon, or none.
	titleRe := regexp.MustCompile(regexp.QuoteMeta(labels.Title) + `[:：]?\s*(.*)`)
	if tm := titleRe.FindStringSubmatch(block); tm != nil {
		title = strings.TrimSpace(tm[1])
	}

	// Story runs until the moral label or the end of the block.
	storyRe := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(labels.Story) + `[:：]?\s*(.*?)(?:\n` + regexp.QuoteMeta(labels.Moral) + `[:：]?|$)`)
	if sm := storyRe.FindStringSubmatch(block); sm != nil {
		body = strings.TrimSpace(sm[1])
	}

	moralRe := regexp.MustCompile(regexp.QuoteMeta(labels.Moral) + `[:：]?\s*(.*)`)
	if mm := moralRe.FindStringSubmatch(block); mm != nil {
		moral = strings.TrimSpace(mm[1])
	}

	return title, body, moral
}
