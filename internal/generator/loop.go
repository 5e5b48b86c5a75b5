package generator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/storygen/backend/internal/config"
	"github.com/storygen/backend/internal/models"
	"github.com/storygen/backend/internal/readability"
)

// Generator runs the readability-gated generation loop: build the prompt,
// call the model, score the extracted story body, and retry until a result
// lands inside the age band or attempts run out.
type Generator struct {
	llm         LLMClient
	score       func(string) float64
	tables      PromptTables
	maxAttempts int
}

func NewGenerator(cfg *config.Config) (*Generator, error) {
	llm, err := NewLLMClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{
		llm:         llm,
		score:       readability.Score,
		tables:      DefaultPromptTables(),
		maxAttempts: cfg.MaxAttempts,
	}, nil
}

// StoryResult is the canonical outcome of one request: the parsed final
// attempt plus the metrics drift classification runs on.
type StoryResult struct {
	Parsed      ParsedStory
	Band        Band
	FleschScore float64 // of the final attempt's body, rounded; 0 when no body was extracted
	StoryLength int     // character count of the body, or of the story remainder when no body was extracted
	Elapsed     float64 // wall-clock seconds across all attempts, rounded
	Attempts    int
	Warning     string // non-empty when no attempt met the band
}

// GenerateStory resolves the readability band, builds the prompt, and runs
// up to maxAttempts generation calls. The first attempt whose extracted body
// scores inside the band is accepted; after the final attempt the last
// result is accepted regardless of score and Warning is set.
//
// A provider failure on any attempt aborts the request immediately — it is
// not retried here.
func (g *Generator) GenerateStory(ctx context.Context, req models.StoryRequest) (*StoryResult, error) {
	band := ResolveBand(req.AgeRange)
	prompt := BuildStoryPrompt(req, band, g.tables)

	start := time.Now()
	var last *LLMResponse
	var warning string
	attempts := 0

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		resp, err := g.llm.Generate(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("attempt %d: %w", attempt+1, err)
		}
		attempts++
		last = resp

		if body, ok := ExtractStoryBody(strings.TrimSpace(resp.Content)); ok {
			score := round2(g.score(body))
			if band.Contains(score) {
				break
			}
			log.Printf("Generator: attempt %d scored %.2f, outside band %d-%d", attempts, score, band.Min, band.Max)
		} else {
			log.Printf("Generator: attempt %d produced no extractable story body", attempts)
		}

		if attempt == g.maxAttempts-1 {
			warning = fmt.Sprintf("Failed to generate a story within FRE range (%d-%d) after %d attempts.", band.Min, band.Max, g.maxAttempts)
		}
	}

	elapsed := round2(time.Since(start).Seconds())

	parsed := ParseStory(last.Content, req.Language, g.tables)

	fleschScore := 0.0
	storyLength := utf8.RuneCountInString(parsed.Story)
	if parsed.HasBody {
		fleschScore = round2(g.score(parsed.Body))
		storyLength = utf8.RuneCountInString(parsed.Body)
	}

	return &StoryResult{
		Parsed:      parsed,
		Band:        band,
		FleschScore: fleschScore,
		StoryLength: storyLength,
		Elapsed:     elapsed,
		Attempts:    attempts,
		Warning:     warning,
	}, nil
}
