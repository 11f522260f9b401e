package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/bimatch/bimatch/internal/ai"
	"github.com/bimatch/bimatch/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Classifier asks Gemini to interpret queries the rule table could not
// classify.
type Classifier struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	maxLogLen  int
	vocabJSON  string
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	retryBackoff        = 2 * time.Second
)

func NewClassifier(generator contentGenerator, logger *zap.Logger, maxRetries, maxLogLength int, vocabulary any) *Classifier {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	vocabJSON := "{}"
	if vocabulary != nil {
		if data, err := json.MarshalIndent(vocabulary, "", "  "); err == nil {
			vocabJSON = string(data)
		}
	}

	return &Classifier{
		generator:  generator,
		logger:     logger,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
		vocabJSON:  vocabJSON,
	}
}

func (c *Classifier) Classify(ctx context.Context, query string) (*ai.IntentGuess, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}

	prompt := buildPrompt(query, c.vocabJSON)

	c.logger.Debug("gemini classify request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini classify response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, c.maxLogLen)),
	)

	guess, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	guess.Raw = raw
	return guess, nil
}

func (c *Classifier) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := utils.WaitFor(ctx, retryBackoff); err != nil {
				return "", err
			}
		}

		raw, err := c.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}

	return "", lastErr
}

func buildPrompt(query, vocabJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Query:\n{{QUERY}}\n\nVocabulary:\n{{VOCABULARY_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{QUERY}}", query)
	prompt = strings.ReplaceAll(prompt, "{{VOCABULARY_JSON}}", vocabJSON)
	return prompt
}

func parseResponse(raw string) (*ai.IntentGuess, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &ai.IntentGuess{
		Kind:       coerceString(data["kind"]),
		Role:       coerceString(data["role"]),
		Location:   coerceString(data["location"]),
		Employment: coerceString(data["employment"]),
		Skill:      coerceString(data["skill"]),
		Service:    coerceString(data["service"]),
	}, nil
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

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%v", v)
	}
}
