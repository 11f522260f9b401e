package filtering

import (
	"fmt"

	"github.com/bimatch/bimatch/internal/marketplace"
	"go.uber.org/zap"
)

// Filter represents a single predicate step applied to a record list.
type Filter interface {
	Name() string
	Apply(records []marketplace.Record) ([]marketplace.Record, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially over the records. Steps are
// conjunctive: a record survives only if every step keeps it. Order of the
// surviving records is preserved.
func Run(logger *zap.Logger, steps []Filter, records []marketplace.Record) ([]marketplace.Record, error) {
	for _, step := range steps {
		next, info, err := step.Apply(records)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil {
			logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		records = next
	}

	return records, nil
}
