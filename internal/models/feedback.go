package models

// FeedbackRequest is the submit-feedback payload. Fields mirror what the
// frontend sends back after a generation: the request inputs, the generated
// story, the user's rating, and the metrics the service reported.
type FeedbackRequest struct {
	Age         string  `json:"age"`
	Genre       string  `json:"genre"`
	Theme       string  `json:"theme"`
	Characters  string  `json:"characters"`
	Language    string  `json:"language"`
	Title       string  `json:"title"`
	Story       string  `json:"story"`
	Rating      int     `json:"rating"`
	Feedback    string  `json:"feedback"`
	Latency     string  `json:"latency"`
	FleschScore float64 `json:"flesch_score"`
	StoryLength int     `json:"story_length"`
	PSI         float64 `json:"psi"`
	Warning     string  `json:"warning"`
}
