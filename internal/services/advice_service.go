package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"marketplace-service/internal/ai/gemini"
	"marketplace-service/internal/models"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdviceGenerator sends one prompt to the hosted model and returns its raw
// text reply.
type AdviceGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AdviceService struct {
	generator AdviceGenerator
	timeout   time.Duration
}

// NewAdviceService accepts a nil generator, meaning no credential is
// configured; every request then fails with ErrConfiguration.
func NewAdviceService(generator AdviceGenerator, timeout time.Duration) *AdviceService {
	return &AdviceService{generator: generator, timeout: timeout}
}

func (s *AdviceService) Configured() bool {
	return s.generator != nil
}

// ValidateQuery returns the trimmed query or ErrValidation.
func ValidateQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", newAdviceError(ErrValidation, nil)
	}
	return trimmed, nil
}

// RequestAdvice performs exactly one call to the generator. There is no retry
// and no caching.
func (s *AdviceService) RequestAdvice(ctx context.Context, query string) (*models.FarmingAdvice, error) {
	trimmed, err := ValidateQuery(query)
	if err != nil {
		return nil, err
	}
	if !s.Configured() {
		return nil, newAdviceError(ErrConfiguration, nil)
	}

	requestID := uuid.New()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.generator.Generate(ctx, fmt.Sprintf(gemini.FarmingAdvicePromptTemplate, trimmed))
	if err != nil {
		slog.Error("Error fetching farming advice from Gemini API",
			"request_id", requestID,
			"error", err)
		return nil, newAdviceError(ErrRequestFailed, err)
	}

	advice, err := DecodeFarmingAdvice(raw)
	if err != nil {
		slog.Error("Invalid farming advice response",
			"request_id", requestID,
			"error", err,
			"raw_length", len(raw))
		return nil, err
	}

	slog.Info("Farming advice received",
		"request_id", requestID,
		"suggestions", len(advice.CropSuggestions),
		"duration_ms", time.Since(start).Milliseconds())
	return advice, nil
}

// DecodeFarmingAdvice strips any code fence, parses the JSON and checks it
// against the response contract. Unparseable text is a request failure;
// parseable JSON of the wrong shape or missing required content is a
// malformed response.
func DecodeFarmingAdvice(raw string) (*models.FarmingAdvice, error) {
	var advice models.FarmingAdvice
	if err := json.Unmarshal([]byte(gemini.TrimJSONFence(raw)), &advice); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, newAdviceError(ErrMalformedResponse, fmt.Errorf("unexpected JSON type in AI response: %w", err))
		}
		return nil, newAdviceError(ErrRequestFailed, fmt.Errorf("failed to unmarshal AI response to JSON: %w", err))
	}

	if strings.TrimSpace(advice.WeatherSummary) == "" {
		return nil, newAdviceError(ErrMalformedResponse, errors.New("weather_summary is missing"))
	}
	if len(advice.CropSuggestions) == 0 {
		return nil, newAdviceError(ErrMalformedResponse, errors.New("crop_suggestions is missing"))
	}
	if n := len(advice.CropSuggestions); n < models.MinCropSuggestions || n > models.MaxCropSuggestions {
		return nil, newAdviceError(ErrMalformedResponse,
			fmt.Errorf("expected %d to %d crop suggestions, got %d", models.MinCropSuggestions, models.MaxCropSuggestions, n))
	}
	for i, crop := range advice.CropSuggestions {
		if field := missingCropField(crop); field != "" {
			return nil, newAdviceError(ErrMalformedResponse, fmt.Errorf("crop_suggestions[%d].%s is missing", i, field))
		}
	}

	return &advice, nil
}

func missingCropField(c models.CropSuggestion) string {
	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"sowing_season", c.SowingSeason},
		{"water_requirements", c.WaterRequirements},
		{"soil_suitability", c.SoilSuitability},
		{"potential_yield", c.PotentialYield},
		{"common_pests_diseases", c.CommonPestsDiseases},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}
