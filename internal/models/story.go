package models

import "strings"

// StoryRequest is the inbound generate-story payload. It is treated as
// immutable once decoded.
type StoryRequest struct {
	AgeRange   string `json:"age_range"`
	Genre      string `json:"genre"`
	Theme      string `json:"theme"`
	Characters string `json:"characters"`
	Language   string `json:"language,omitempty"`
}

// WantsTranslation reports whether the request asks for a translated story.
// An empty language or the literal "none" means English only.
func (r StoryRequest) WantsTranslation() bool {
	return r.Language != "" && !strings.EqualFold(r.Language, "none")
}

// StoryResponse is the generate-story response body.
type StoryResponse struct {
	Title           string  `json:"title"`
	Story           string  `json:"story"`
	Moral           string  `json:"moral"`
	TranslatedTitle string  `json:"translated_title"`
	TranslatedStory string  `json:"translated_story"`
	TranslatedMoral string  `json:"translated_moral"`
	Latency         string  `json:"latency"`
	FleschScore     float64 `json:"flesch_score"`
	NarrationText   string  `json:"narration_text"`
	PSI             float64 `json:"psi"`
	Warning         string  `json:"warning"`
}

// DriftWarningRecord is the row persisted when a generated story drifts
// outside its configured acceptable ranges. Append-only.
type DriftWarningRecord struct {
	RequestID   string
	Age         string
	Genre       string
	Theme       string
	Characters  string
	Language    string
	Title       string
	Story       string
	Speed       float64
	FleschScore float64
	StoryLength int
	PSI         float64
	Warning     string
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
