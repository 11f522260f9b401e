package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bimatch/bimatch/internal/ai"
	"github.com/bimatch/bimatch/internal/filtering"
	"github.com/bimatch/bimatch/internal/marketplace"
	"go.uber.org/zap"
)

// DefaultMaxResults caps the number of records in a result.
const DefaultMaxResults = 6

// ErrSpeechUnsupported is reported when voice input is requested in an
// environment without speech capture. The text pipeline is unaffected.
var ErrSpeechUnsupported = errors.New("speech capture is not supported in this environment")

// Config contains resolver settings.
type Config struct {
	MaxResults int
	Vocabulary *Vocabulary
}

// Deps aggregates the resolver's collaborators.
type Deps struct {
	Store      *marketplace.Store
	Classifier ai.Classifier
	Logger     *zap.Logger
}

// Resolver turns a free-text query into a filtered record list. It holds no
// mutable state across calls: resolving the same query against the same
// store twice yields the same result.
type Resolver struct {
	store      *marketplace.Store
	vocab      *Vocabulary
	classifier ai.Classifier
	logger     *zap.Logger
	maxResults int
}

// Result is the outcome of one resolution. Empty is set for blank input,
// in which case no classification or filtering ran.
type Result struct {
	Query     string
	Intent    Intent
	Records   []marketplace.Record
	Truncated bool
	Empty     bool
}

func New(cfg *Config, deps *Deps) *Resolver {
	vocab := cfg.Vocabulary
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		store:      deps.Store,
		vocab:      vocab,
		classifier: deps.Classifier,
		logger:     logger,
		maxResults: maxResults,
	}
}

// Resolve runs the full pipeline: normalize, classify, extract, filter,
// truncate. Blank input returns an empty result without touching the
// classifier. Any panic while classifying or filtering is recovered here
// and surfaced as a single generic error; no partial result escapes.
func (r *Resolver) Resolve(ctx context.Context, raw string) (result *Result, err error) {
	query := Normalize(raw)
	if query == "" {
		return &Result{Empty: true}, nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("query processing panicked", zap.Any("panic", rec))
			result = nil
			err = fmt.Errorf("processing query failed: %v", rec)
		}
	}()

	intent := r.classifyQuery(ctx, query, raw)

	r.logger.Debug("resolved intent",
		zap.String("kind", string(intent.Kind)),
		zap.String("role", intent.Role),
		zap.String("location", intent.Location),
		zap.String("employment", string(intent.Employment)),
		zap.String("skill", intent.Skill),
		zap.String("service", intent.Service),
	)

	records, truncated, err := r.search(intent)
	if err != nil {
		return nil, fmt.Errorf("processing query failed: %w", err)
	}

	return &Result{
		Query:     raw,
		Intent:    intent,
		Records:   records,
		Truncated: truncated,
	}, nil
}

func (r *Resolver) classifyQuery(ctx context.Context, query, raw string) Intent {
	kind, matched := classify(query)
	if matched {
		return r.vocab.extract(query, kind)
	}

	// No rule matched. The optional model-backed classifier runs only in
	// this branch so rule precedence is never affected by it.
	if r.classifier != nil {
		if intent, ok := r.classifyWithModel(ctx, query); ok {
			return intent
		}
	}

	return Intent{Kind: IntentJobs, RawQuery: raw}
}

func (r *Resolver) classifyWithModel(ctx context.Context, query string) (Intent, bool) {
	guess, err := r.classifier.Classify(ctx, query)
	if err != nil {
		r.logger.Warn("model classification failed, falling back to jobs", zap.Error(err))
		return Intent{}, false
	}

	var kind IntentKind
	switch IntentKind(guess.Kind) {
	case IntentJobs, IntentTalent, IntentServices:
		kind = IntentKind(guess.Kind)
	default:
		r.logger.Warn("model returned unknown intent kind", zap.String("kind", guess.Kind))
		return Intent{}, false
	}

	intent := Intent{
		Kind:     kind,
		Role:     Normalize(guess.Role),
		Location: Normalize(guess.Location),
		Skill:    Normalize(guess.Skill),
		Service:  Normalize(guess.Service),
	}

	switch marketplace.Employment(Normalize(guess.Employment)) {
	case marketplace.EmploymentFullTime, marketplace.EmploymentFreelance, marketplace.EmploymentContract:
		intent.Employment = marketplace.Employment(Normalize(guess.Employment))
	}

	return intent, true
}

func (r *Resolver) search(intent Intent) ([]marketplace.Record, bool, error) {
	var base []marketplace.Record
	var steps []filtering.Filter

	switch intent.Kind {
	case IntentJobs:
		base = r.store.Jobs().Records()
		if intent.Role != "" {
			steps = append(steps, filtering.NewSubstring("role", marketplace.FieldTitle, intent.Role))
		}
		if intent.Location != "" {
			steps = append(steps, filtering.NewSubstring("location", marketplace.FieldLocation, intent.Location))
		}
		if intent.Employment != "" {
			steps = append(steps, filtering.NewEquals("employment", marketplace.FieldEmployment, string(intent.Employment)))
		}
	case IntentTalent:
		base = r.store.Profiles().Records()
		if intent.Role != "" {
			steps = append(steps, filtering.NewSubstring("role", marketplace.FieldTitle, intent.Role))
		}
		if intent.Skill != "" {
			steps = append(steps, filtering.NewListContains("skill", marketplace.FieldSkills, intent.Skill))
		}
	case IntentServices:
		base = r.store.ServiceProviders().Records()
		if intent.Service != "" {
			steps = append(steps, filtering.NewListContains("service", marketplace.FieldServices, intent.Service))
		}
		if intent.Location != "" {
			steps = append(steps, filtering.NewSubstring("location", marketplace.FieldLocation, intent.Location))
		}
	default:
		return nil, false, fmt.Errorf("unknown intent kind: %s", intent.Kind)
	}

	matched, err := filtering.Run(r.logger, steps, base)
	if err != nil {
		return nil, false, err
	}

	truncated := len(matched) >= r.maxResults
	if len(matched) > r.maxResults {
		matched = matched[:r.maxResults]
	}

	return matched, truncated, nil
}

func (r *Result) Len() int {
	return len(r.Records)
}

// DumpToTmpFile writes the result records to a temporary JSON file and
// returns its name.
func (r *Result) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "bimatch_results_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Records); err != nil {
		return "", err
	}
	return file.Name(), nil
}
