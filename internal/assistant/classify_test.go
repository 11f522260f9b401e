package assistant

import "testing"

func TestNormalize(t *testing.T) {
	if got := Normalize("  Find BIM Manager Jobs  "); got != "find bim manager jobs" {
		t.Fatalf("unexpected normalized query: %q", got)
	}

	if got := Normalize("   \t\n"); got != "" {
		t.Fatalf("expected empty result for whitespace input, got %q", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		kind    IntentKind
		matched bool
	}{
		{
			name:    "job keyword",
			query:   "find bim manager jobs in bangkok",
			kind:    IntentJobs,
			matched: true,
		},
		{
			name:    "job keyword wins over role keyword",
			query:   "bim manager job",
			kind:    IntentJobs,
			matched: true,
		},
		{
			name:    "job keyword wins over talent phrasing",
			query:   "architect position available",
			kind:    IntentJobs,
			matched: true,
		},
		{
			name:    "talent expert keyword",
			query:   "show me revit experts",
			kind:    IntentTalent,
			matched: true,
		},
		{
			name:    "talent role keyword",
			query:   "freelance structural engineers",
			kind:    IntentTalent,
			matched: true,
		},
		{
			name:    "services keyword",
			query:   "bim consulting companies",
			kind:    IntentServices,
			matched: true,
		},
		{
			name:    "services training keyword",
			query:   "revit training providers",
			kind:    IntentServices,
			matched: true,
		},
		{
			name:    "unclassifiable falls back to jobs",
			query:   "hello there",
			kind:    IntentJobs,
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, matched := classify(tt.query)
			if kind != tt.kind {
				t.Fatalf("expected kind %s, got %s", tt.kind, kind)
			}
			if matched != tt.matched {
				t.Fatalf("expected matched %v, got %v", tt.matched, matched)
			}
		})
	}
}

// Any query containing a job keyword must classify as jobs no matter which
// role keywords it also contains.
func TestClassifyPriorityInvariant(t *testing.T) {
	jobKeywords := []string{"job", "position", "hiring", "vacancy", "work", "opening"}
	roleKeywords := []string{"architect", "engineer", "modeler", "expert"}

	for _, job := range jobKeywords {
		for _, role := range roleKeywords {
			query := role + " " + job
			if kind, _ := classify(query); kind != IntentJobs {
				t.Fatalf("query %q classified as %s, want jobs", query, kind)
			}
		}
	}
}
