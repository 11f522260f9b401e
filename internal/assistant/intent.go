package assistant

import "github.com/bimatch/bimatch/internal/marketplace"

// IntentKind is the classified purpose of a query.
type IntentKind string

const (
	IntentJobs     IntentKind = "jobs"
	IntentTalent   IntentKind = "talent"
	IntentServices IntentKind = "services"
)

// Intent is the structured interpretation of a single query. It is built
// fresh per query and never persisted. Empty attribute values mean the
// attribute was not found in the query.
type Intent struct {
	Kind       IntentKind
	Role       string
	Location   string
	Employment marketplace.Employment
	Skill      string
	Service    string

	// RawQuery carries the original text when no classification rule
	// matched and the intent fell back to jobs without attributes.
	RawQuery string
}
