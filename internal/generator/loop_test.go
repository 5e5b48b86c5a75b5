package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/storygen/backend/internal/models"
)

// scriptedClient returns one canned response per call, cycling on the last.
type scriptedClient struct {
	responses []string
	err       error
	calls     int
}

func (c *scriptedClient) Generate(ctx context.Context, prompt string) (*LLMResponse, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	i := c.calls - 1
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	return &LLMResponse{Content: c.responses[i]}, nil
}

func storyWithBody(body string) string {
	return fmt.Sprintf("Title: Test Story\n%s\nMoral: Testing pays off", body)
}

// newTestGenerator builds a Generator whose readability scorer returns a
// fixed score per body text, so loop behavior can be controlled exactly.
func newTestGenerator(llm LLMClient, scores map[string]float64) *Generator {
	return &Generator{
		llm: llm,
		score: func(body string) float64 {
			return scores[body]
		},
		tables:      DefaultPromptTables(),
		maxAttempts: 3,
	}
}

func TestGenerateStory_FirstAttemptInBand(t *testing.T) {
	client := &scriptedClient{responses: []string{storyWithBody("good body")}}
	g := newTestGenerator(client, map[string]float64{"good body": 70})

	res, err := g.GenerateStory(context.Background(), models.StoryRequest{AgeRange: "9-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.calls != 1 {
		t.Errorf("expected exactly 1 call, got %d", client.calls)
	}
	if res.Warning != "" {
		t.Errorf("expected no warning, got %q", res.Warning)
	}
	if res.FleschScore != 70 {
		t.Errorf("flesch score = %v, want 70", res.FleschScore)
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
}

func TestGenerateStory_SecondAttemptInBand(t *testing.T) {
	client := &scriptedClient{responses: []string{
		storyWithBody("too easy"),
		storyWithBody("just right"),
		storyWithBody("never reached"),
	}}
	g := newTestGenerator(client, map[string]float64{
		"too easy":      95,
		"just right":    65,
		"never reached": 65,
	})

	res, err := g.GenerateStory(context.Background(), models.StoryRequest{AgeRange: "9-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.calls != 2 {
		t.Errorf("expected exactly 2 calls (stop on first in-band), got %d", client.calls)
	}
	if res.Warning != "" {
		t.Errorf("expected no warning, got %q", res.Warning)
	}
	if res.Parsed.Body != "just right" {
		t.Errorf("body = %q, want the second attempt's body", res.Parsed.Body)
	}
}

func TestGenerateStory_AllAttemptsOutOfBand(t *testing.T) {
	client := &scriptedClient{responses: []string{storyWithBody("always wrong")}}
	g := newTestGenerator(client, map[string]float64{"always wrong": 95})

	res, err := g.GenerateStory(context.Background(), models.StoryRequest{AgeRange: "9-15"})
	if err != nil {
		t.Fatalf("band miss must not be an error, got: %v", err)
	}

	if client.calls != 3 {
		t.Errorf("expected exactly MaxAttempts=3 calls, got %d", client.calls)
	}
	if res.Warning == "" {
		t.Error("expected a non-empty warning after exhausting attempts")
	}
	if !strings.Contains(res.Warning, "60-80") {
		t.Errorf("warning should name the band, got %q", res.Warning)
	}
	// The last attempt is still accepted as canonical.
	if res.Parsed.Body != "always wrong" {
		t.Errorf("body = %q, want the final attempt's body", res.Parsed.Body)
	}
	if res.FleschScore != 95 {
		t.Errorf("flesch score = %v, want the out-of-band 95", res.FleschScore)
	}
}

func TestGenerateStory_UnextractableTextRetries(t *testing.T) {
	client := &scriptedClient{responses: []string{"no anchors here at all"}}
	g := newTestGenerator(client, nil)

	res, err := g.GenerateStory(context.Background(), models.StoryRequest{AgeRange: "9-15"})
	if err != nil {
		t.Fatalf("extraction miss must not be an error, got: %v", err)
	}

	if client.calls != 3 {
		t.Errorf("expected 3 calls when no body is extractable, got %d", client.calls)
	}
	if res.FleschScore != 0 {
		t.Errorf("flesch score = %v, want 0 without an extracted body", res.FleschScore)
	}
	if res.Warning == "" {
		t.Error("expected a warning")
	}
}

func TestGenerateStory_ProviderFailureAborts(t *testing.T) {
	genErr := &GenerationError{Err: errors.New("connection refused")}
	client := &scriptedClient{err: genErr}
	g := newTestGenerator(client, nil)

	_, err := g.GenerateStory(context.Background(), models.StoryRequest{AgeRange: "9-15"})
	if err == nil {
		t.Fatal("expected provider failure to propagate")
	}
	if client.calls != 1 {
		t.Errorf("provider failure must abort immediately, got %d calls", client.calls)
	}

	var ge *GenerationError
	if !errors.As(err, &ge) {
		t.Errorf("expected a GenerationError in the chain, got %T: %v", err, err)
	}
}

func TestGenerateStory_UsesResolvedBand(t *testing.T) {
	// 55 is out of band for 9-15 (60-80) but in band for 16-19 (50-60).
	client := &scriptedClient{responses: []string{storyWithBody("teen story")}}
	g := newTestGenerator(client, map[string]float64{"teen story": 55})

	res, err := g.GenerateStory(context.Background(), models.StoryRequest{AgeRange: "16-19"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected 1 call for in-band 16-19 score, got %d", client.calls)
	}
	if res.Band != (Band{50, 60}) {
		t.Errorf("band = %v, want {50 60}", res.Band)
	}
}
