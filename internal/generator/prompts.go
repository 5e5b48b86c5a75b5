package generator

import (
	"fmt"
	"strings"

	"github.com/storygen/backend/internal/models"
)

// LabelSet holds the three output labels the model is told to use for a
// translated story section.
type LabelSet struct {
	Title string
	Story string
	Moral string
}

// englishLabels is the fallback for languages with no registered label set.
var englishLabels = LabelSet{Title: "Title", Story: "Story", Moral: "Moral"}

// PromptTables holds the static per-language label sets and style notes.
// Loaded once at startup and passed into the prompt builder explicitly.
type PromptTables struct {
	Labels map[string]LabelSet
	Notes  map[string]string
}

// DefaultPromptTables returns the built-in label sets and style notes for
// the languages the service ships with.
func DefaultPromptTables() PromptTables {
	return PromptTables{
		Labels: map[string]LabelSet{
			"telugu":  {Title: "శీర్షిక", Story: "కథ", Moral: "నీతి"},
			"hindi":   {Title: "शीर्षक", Story: "कहानी", Moral: "नीति"},
			"french":  {Title: "Titre", Story: "Histoire", Moral: "Morale"},
			"tamil":   {Title: "தலைப்பு", Story: "கதை", Moral: "நீதிக்கதை"},
			"kannada": {Title: "ಶೀರ್ಷಿಕೆ", Story: "ಕಥೆ", Moral: "ನೀತಿ"},
			"marathi": {Title: "शीर्षक", Story: "कथा", Moral: "नीती"},
			"bengali": {Title: "শিরোনাম", Story: "গল্প", Moral: "নৈতিকতা"},
		},
		Notes: map[string]string{
			"telugu":  "Note: Use common Telugu words spoken in Andhra Pradesh and Telangana regions. Avoid Sanskritized or literary Telugu unless necessary.",
			"hindi":   "Note: Use conversational Hindi understood by children in North India. Avoid very formal or Urdu-heavy vocabulary.",
			"french":  "Note: Use simple, conversational French as spoken by children in France. Avoid overly formal or academic language.",
			"tamil":   "Note: Use everyday spoken Tamil familiar to children in Tamil Nadu. Avoid highly literary or classical Tamil.",
			"kannada": "Note: Use conversational Kannada as spoken by children in Karnataka. Avoid archaic or highly formal words.",
			"marathi": "Note: Use simple, conversational Marathi as spoken by children in Maharashtra. Avoid overly formal or Sanskritized words.",
			"bengali": "Note: Use everyday Bengali as spoken by children in West Bengal. Avoid highly literary or archaic words.",
		},
	}
}

// LabelsFor returns the label set for a language, falling back to English
// labels when the language has none registered.
func (t PromptTables) LabelsFor(language string) LabelSet {
	if labels, ok := t.Labels[strings.ToLower(language)]; ok {
		return labels
	}
	return englishLabels
}

// BuildStoryPrompt composes the full generation instruction for a story
// request: task framing, hard constraints, age-specific style directives,
// the required output format, and (when a language is requested) translation
// instructions with that language's labels and style note.
//
// Deterministic for identical inputs and tables; no side effects.
func BuildStoryPrompt(req models.StoryRequest, band Band, tables PromptTables) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Write an imaginative and age-appropriate story for Indian children aged %s.

Requirements:
- Genre: %s
- Main Characters: %s
- Theme: %s
- Story Length: Maximum 350 words.
- Use simple, clear English vocabulary and sentence structure that is suitable for children aged %s.
- The story MUST be written so that its Flesch Reading Ease (FRE) score is between %d–%d.
- The Flesch score requirement applies ONLY to the English story.
- DO NOT include any translation, non-English words, or translation labels in the English story section.
- Avoid complex words and long sentences for younger ages; use more advanced language for older ages.
- Include a catchy, relevant title at the beginning.
- End with a moral in the format: Moral: [your moral]
- **Do NOT add any label like 'English Story:' or similar. Only use 'Title:', the story text, and 'Moral:' as shown below.**

Format:
Title: [Your title]
[Story text]
Moral: [your moral]
`, req.AgeRange, req.Genre, req.Characters, req.Theme, req.AgeRange, band.Min, band.Max)

	b.WriteString(ageStyleDirectives(req.AgeRange))

	if req.WantsTranslation() {
		labels := tables.LabelsFor(req.Language)
		fmt.Fprintf(&b, `

After you have finished the English story above, translate ONLY the English story and its moral into %[1]s for Indian children.

**Translation Instructions:**
- Do NOT translate word-for-word. Use natural, fluent, and child-friendly %[1]s as used in everyday conversation.
- Ensure the translated story is easy for children in the target age group to understand.
- Use age-appropriate vocabulary and grammar for %[1]s.
- Do NOT include any English words unless they are proper nouns.
- Write ONLY the translated version, using these labels (translated in %[1]s):
    - %[2]s: [Translated title]
    - %[3]s: [Translated story]
    - %[4]s: [Translated moral]
- DO NOT repeat the English story or moral.
- DO NOT include any English text in this section (except proper nouns).
- Structure:
    %[2]s: [Translated title]
    %[3]s: [Translated story]
    %[4]s: [Translated moral]
- Even when translating to %[1]s, ensure the story would have a Flesch Reading Ease (FRE) score in the same range as required for English. Do NOT make the translation easier or harder than the English version. Do NOT go outside the FRE range for the selected age group, even in translation.
`, req.Language, labels.Title, labels.Story, labels.Moral)

		if note, ok := tables.Notes[strings.ToLower(req.Language)]; ok {
			b.WriteString("\n")
			b.WriteString(note)
		}
	}

	return b.String()
}

// ageStyleDirectives returns the style block for one of the four canonical
// age buckets, selected by exact token match. Unknown tokens get no block.
func ageStyleDirectives(ageRange string) string {
	switch ageRange {
	case "3-5", "3-8":
		return `
- IMPORTANT: The story MUST have a Flesch Reading Ease (FRE) score between 80 and 100.
- Use normal words and keep medium sentences (6-9 words each).
- Avoid any very easy or very complex vocabulary.
- Imagine you are writing for a 3–8 year old who is just learning to read.
- If the story is very easy or more difficult, REWRITE it until it fits the FRE score range.
- Do NOT write a story that is outside this FRE score range.
- If you cannot write a story within this FRE range, DO NOT RETURN ANY STORY.`
	case "9-15":
		return `
- IMPORTANT: The story MUST have a Flesch Reading Ease (FRE) score between 60 and 80.
- The FRE score must NEVER be above 80 or below 60 for this age group.
- Use simple and clear words.
- Keep sentences short (10–14 words) and easy to understand.
- Avoid difficult vocabulary and long sentences.
- Do not use advanced or academic words.
- Imagine you are writing for a school student aged 9 to 15.
- If the story is too easy or too hard, or if the FRE score is outside 60–80, REWRITE it until it fits the FRE score range.
- You absolutely MUST NOT write a story with a Flesch score above 80 or below 60.
- Do NOT write a story that is outside this FRE score range.
- If you cannot write a story within this FRE range, DO NOT RETURN ANY STORY.
- EVEN WHEN TRANSLATING TO ANOTHER LANGUAGE, NEVER GO OUTSIDE THE FRE SCORE RANGE OF 60–80.
- Repeat: The story (and any translation) MUST have a Flesch Reading Ease (FRE) score between 60 and 80.`
	case "16-19":
		return `
- IMPORTANT: The story MUST have a Flesch Reading Ease (FRE) score between 50 and 60.
- Use clear language with some moderately advanced vocabulary.
- Keep most sentences between 10 and 16 words.
- Mix simple and moderately complex sentences, but avoid very long or academic sentences.
- Do not use too many advanced words.
- Write as you would for a high school student aged 16 to 19.
- If the story is too easy or too hard, REWRITE it until it fits the FRE score range.
- Do NOT write a story that is outside this FRE score range.
- If you cannot write a story within this FRE range, DO NOT RETURN ANY STORY.`
	case "20+":
		return `
- IMPORTANT: The story MUST have a Flesch Reading Ease (FRE) score between 30 and 50.
- Aim for a FRE score between 40 and 45. Do NOT write a story with a FRE score below 35 or above 45.
- Use advanced vocabulary, medium sentences, and complex sentence structures.
- Do not simplify the language. Write as you would for college students or adults.
- If the story is too easy (FRE > 50) or too hard (FRE < 30), REWRITE it until it fits the FRE score range.
- Do NOT write a story that is outside this FRE score range.
- If you cannot write a story within this FRE range, DO NOT RETURN ANY STORY.
- If you do not follow the FRE rule, your answer will be rejected and regenerated.`
	}
	return ""
}
