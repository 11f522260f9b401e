package filtering

import (
	"reflect"
	"testing"

	"github.com/bimatch/bimatch/internal/marketplace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testJobs() []marketplace.Record {
	jobs := &marketplace.Jobs{
		Items: []*marketplace.Job{
			{ID: "1", Title: "Senior BIM Manager", Location: "Bangkok", Type: marketplace.EmploymentFullTime, Skills: []string{"Revit", "Navisworks"}},
			{ID: "2", Title: "BIM Coordinator", Location: "Bangkok", Type: marketplace.EmploymentContract, Skills: []string{"AutoCAD"}},
			{ID: "3", Title: "BIM Manager", Location: "Phuket", Type: marketplace.EmploymentFullTime, Skills: []string{"Revit"}},
		},
	}
	return jobs.Records()
}

func ids(records []marketplace.Record) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.StringField(marketplace.FieldID))
	}
	return out
}

func TestSubstringFilter(t *testing.T) {
	filter := NewSubstring("role", marketplace.FieldTitle, "BIM Manager")

	kept, step, err := filter.Apply(testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(ids(kept), []string{"1", "3"}) {
		t.Fatalf("unexpected ids: %v", ids(kept))
	}

	if step.Initial != 3 || step.Dropped != 1 || step.Left != 2 {
		t.Fatalf("unexpected step accounting: %+v", step)
	}
}

func TestEqualsFilter(t *testing.T) {
	filter := NewEquals("employment", marketplace.FieldEmployment, string(marketplace.EmploymentContract))

	kept, _, err := filter.Apply(testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(ids(kept), []string{"2"}) {
		t.Fatalf("unexpected ids: %v", ids(kept))
	}
}

func TestListContainsFilter(t *testing.T) {
	filter := NewListContains("skill", marketplace.FieldSkills, "revit")

	kept, _, err := filter.Apply(testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(ids(kept), []string{"1", "3"}) {
		t.Fatalf("unexpected ids: %v", ids(kept))
	}
}

func TestRunIsConjunctiveAndOrderPreserving(t *testing.T) {
	steps := []Filter{
		NewSubstring("role", marketplace.FieldTitle, "bim"),
		NewSubstring("location", marketplace.FieldLocation, "bangkok"),
	}

	kept, err := Run(zap.NewNop(), steps, testJobs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(ids(kept), []string{"1", "2"}) {
		t.Fatalf("unexpected ids: %v", ids(kept))
	}
}

func TestRunLogsSteps(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	steps := []Filter{NewSubstring("location", marketplace.FieldLocation, "bangkok")}
	if _, err := Run(logger, steps, testJobs()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := observed.FilterMessage("filter step").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["name"] != "location" {
		t.Fatalf("unexpected step name: %v", ctx["name"])
	}
	if ctx["dropped"] != int64(1) {
		t.Fatalf("unexpected dropped count: %v", ctx["dropped"])
	}
}

func TestRunWithoutStepsKeepsEverything(t *testing.T) {
	records := testJobs()

	kept, err := Run(nil, nil, records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(ids(kept), ids(records)) {
		t.Fatalf("expected all records to survive, got %v", ids(kept))
	}
}
