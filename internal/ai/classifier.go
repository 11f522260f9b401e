package ai

import "context"

// IntentGuess is a model-produced interpretation of a query that the rule
// table could not classify. Fields mirror the resolver's intent attributes
// and may be empty.
type IntentGuess struct {
	Kind       string
	Role       string
	Location   string
	Employment string
	Skill      string
	Service    string
	Raw        string
}

type Classifier interface {
	Classify(ctx context.Context, query string) (*IntentGuess, error)
}
