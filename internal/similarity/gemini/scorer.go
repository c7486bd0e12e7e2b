package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/profile-ranker/internal/util"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Scorer implements the similarity capability on top of a Gemini content
// generator. The model is asked for a single JSON object with a score field.
type Scorer struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

var retryBackoff = 2 * time.Second

func NewScorer(generator contentGenerator, logger *zap.Logger, maxRetries, maxLogLength int) *Scorer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Scorer{
		generator:  generator,
		logger:     logger,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
	}
}

// Similarity scores the semantic relatedness of the two texts. Transient
// generator failures are retried up to maxRetries times with a fixed backoff.
func (s *Scorer) Similarity(ctx context.Context, a, b string) (float64, error) {
	prompt := buildPrompt(a, b)

	s.logger.Debug("gemini similarity request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generate(ctx, prompt)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("gemini similarity response",
		zap.String("response_preview", util.TruncateForLog(raw, s.maxLogLen)),
	)

	score, err := parseScore(raw)
	if err != nil {
		return 0, err
	}

	return score, nil
}

func (s *Scorer) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := util.WaitFor(ctx, retryBackoff); err != nil {
				return "", err
			}
		}

		raw, err := s.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("gemini request failed after %d attempts: %w", s.maxRetries+1, lastErr)
}

func buildPrompt(a, b string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Text A:\n{{TEXT_A}}\n\nText B:\n{{TEXT_B}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{TEXT_A}}", a)
	prompt = strings.ReplaceAll(prompt, "{{TEXT_B}}", b)
	return prompt
}

func parseScore(raw string) (float64, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return 0, fmt.Errorf("parse gemini response: %w", err)
	}

	score := coerceFloat(data["score"])
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("gemini response is missing a usable score: %q", raw)
	}

	return score, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
