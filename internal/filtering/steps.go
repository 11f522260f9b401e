package filtering

import (
	"strings"

	"github.com/bimatch/bimatch/internal/marketplace"
)

type substringFilter struct {
	name   string
	field  string
	needle string
}

// NewSubstring creates a filter that keeps records whose field contains the
// needle, case-insensitively.
func NewSubstring(name, field, needle string) Filter {
	return &substringFilter{name: name, field: field, needle: strings.ToLower(needle)}
}

func (f *substringFilter) Name() string { return f.name }

func (f *substringFilter) Apply(records []marketplace.Record) ([]marketplace.Record, Step, error) {
	initial := len(records)
	kept := make([]marketplace.Record, 0, initial)
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.StringField(f.field)), f.needle) {
			kept = append(kept, record)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

type equalsFilter struct {
	name  string
	field string
	value string
}

// NewEquals creates a filter that keeps records whose field equals the value
// exactly.
func NewEquals(name, field, value string) Filter {
	return &equalsFilter{name: name, field: field, value: value}
}

func (f *equalsFilter) Name() string { return f.name }

func (f *equalsFilter) Apply(records []marketplace.Record) ([]marketplace.Record, Step, error) {
	initial := len(records)
	kept := make([]marketplace.Record, 0, initial)
	for _, record := range records {
		if record.StringField(f.field) == f.value {
			kept = append(kept, record)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

type listContainsFilter struct {
	name   string
	field  string
	needle string
}

// NewListContains creates a filter that keeps records where any entry of the
// list field contains the needle, case-insensitively.
func NewListContains(name, field, needle string) Filter {
	return &listContainsFilter{name: name, field: field, needle: strings.ToLower(needle)}
}

func (f *listContainsFilter) Name() string { return f.name }

func (f *listContainsFilter) Apply(records []marketplace.Record) ([]marketplace.Record, Step, error) {
	initial := len(records)
	kept := make([]marketplace.Record, 0, initial)
	for _, record := range records {
		for _, entry := range record.ListField(f.field) {
			if strings.Contains(strings.ToLower(entry), f.needle) {
				kept = append(kept, record)
				break
			}
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}
