package story

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/storygen/backend/internal/config"
	"github.com/storygen/backend/internal/generator"
	"github.com/storygen/backend/internal/models"
)

// StoryGenerator runs the readability-gated generation loop.
type StoryGenerator interface {
	GenerateStory(ctx context.Context, req models.StoryRequest) (*generator.StoryResult, error)
}

// WarningStore persists drift-warning rows.
type WarningStore interface {
	InsertDriftWarning(rec models.DriftWarningRecord) error
}

// Service orchestrates one story request: generation, drift classification,
// and conditional warning persistence.
type Service struct {
	gen        StoryGenerator
	warnings   WarningStore
	thresholds generator.DriftThresholds
}

func NewService(gen StoryGenerator, warnings WarningStore, cfg *config.Config) *Service {
	return &Service{
		gen:      gen,
		warnings: warnings,
		thresholds: generator.DriftThresholds{
			Speed:     cfg.SpeedThreshold,
			LengthMin: cfg.LengthMin,
			LengthMax: cfg.LengthMax,
			PSI:       cfg.PSIThreshold,
		},
	}
}

// Generate produces a story for the request and classifies its drift. The
// drift assessment always uses the final attempt's metrics, whether or not
// that attempt met the readability band. A drifting result is persisted as
// a warning row; persistence failures are logged and never fail the
// response.
func (s *Service) Generate(ctx context.Context, requestID string, req models.StoryRequest) (*models.StoryResponse, error) {
	res, err := s.gen.GenerateStory(ctx, req)
	if err != nil {
		return nil, err
	}

	if res.Warning != "" {
		log.Printf("Story %s: %s", requestID, res.Warning)
	}

	drift := generator.ClassifyDrift(res.Elapsed, res.FleschScore, res.StoryLength, res.Band, s.thresholds)
	warning := strings.Join(drift.Reasons, "; ")

	if drift.IsDrifting {
		language := req.Language
		if language == "" || strings.EqualFold(language, "none") {
			language = "English"
		}
		rec := models.DriftWarningRecord{
			RequestID:   requestID,
			Age:         req.AgeRange,
			Genre:       req.Genre,
			Theme:       req.Theme,
			Characters:  req.Characters,
			Language:    language,
			Title:       res.Parsed.Title,
			Story:       res.Parsed.Story,
			Speed:       res.Elapsed,
			FleschScore: res.FleschScore,
			StoryLength: res.StoryLength,
			PSI:         drift.PSI,
			Warning:     warning,
		}
		if err := s.warnings.InsertDriftWarning(rec); err != nil {
			log.Printf("WARNING: failed to persist drift warning for request %s: %v", requestID, err)
		}
	}

	return &models.StoryResponse{
		Title:           res.Parsed.Title,
		Story:           res.Parsed.Story,
		Moral:           res.Parsed.Moral,
		TranslatedTitle: res.Parsed.TranslatedTitle,
		TranslatedStory: res.Parsed.TranslatedStory,
		TranslatedMoral: res.Parsed.TranslatedMoral,
		Latency:         fmt.Sprintf("%v sec", res.Elapsed),
		FleschScore:     res.FleschScore,
		NarrationText:   fmt.Sprintf("Title: %s. %s", res.Parsed.Title, res.Parsed.Story),
		PSI:             drift.PSI,
		Warning:         warning,
	}, nil
}
