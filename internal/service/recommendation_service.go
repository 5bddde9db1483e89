package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/afslabs/assessor/config"
	"github.com/afslabs/assessor/internal/dto"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// RecommendationService generates an executive-summary narrative for a
// finished report with Gemini. The feature is optional: without an API key
// the service degrades to a static placeholder instead of failing.
type RecommendationService interface {
	GetRecommendations(report *dto.ReportDTO) ([]string, error)
}

type recommendationService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewRecommendationService(cfg *config.Config) (RecommendationService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. RecommendationService will not function.")
		return &recommendationService{cfg: cfg, client: nil}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	return &recommendationService{client: model, cfg: cfg}, nil
}

func (s *recommendationService) GetRecommendations(report *dto.ReportDTO) ([]string, error) {
	if s.client == nil {
		log.Warn().Msg("Gemini client not initialized (API key likely missing). Returning placeholder recommendations.")
		return []string{"AI recommendations are currently unavailable due to configuration issue."}, nil
	}

	ctx := context.Background()
	prompt := buildRecommendationPrompt(report)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", report.AssessmentID).Msg("Error generating recommendations from Gemini")
		return []string{fmt.Sprintf("Gemini API error: %s.", err.Error())}, nil
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Interface("geminiResponse", resp).Msg("Gemini response was empty or malformed")
		return nil, fmt.Errorf("gemini returned no content or malformed response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return splitRecommendations(sb.String()), nil
}

func buildRecommendationPrompt(report *dto.ReportDTO) string {
	var sections strings.Builder
	for _, sec := range report.SectionScores {
		fmt.Fprintf(&sections, "- %s: %.0f%% of practices confirmed (%s)\n", sec.Name, sec.Percentage*100, sec.Level)
	}
	var priorities strings.Builder
	for _, p := range report.PriorityAreas {
		fmt.Fprintf(&priorities, "%d. %s (%.0f%% confirmed, %s)\n", p.Rank, p.Name, p.Percentage*100, p.Level)
	}

	return fmt.Sprintf(`You are an organizational maturity consultant.
An organization completed a Yes/No maturity assessment. Overall they confirmed %.0f%% of assessed practices, placing them at the "%s" maturity level.

Section results:
%s
Top improvement priorities:
%s
Write 3 to 5 concrete, prioritized recommendations for the next 6-12 months.
Each recommendation must be a single paragraph starting with an action verb.
Separate recommendations with a blank line. Do not number them and do not add
an introduction or conclusion.
`, report.OverallPercentage*100, report.OverallLevel, sections.String(), priorities.String())
}

// splitRecommendations splits the model output on blank lines into individual
// recommendation paragraphs, dropping empty fragments.
func splitRecommendations(text string) []string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
