package marketplace

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Built-in marketplace snapshot. An alternate document can be supplied via
// the data-file configuration key.
//
//go:embed seed.json
var seedData []byte

// Store holds the three read-only record collections. Iteration order is
// the document order and stays stable for the lifetime of the store.
type Store struct {
	jobs      *Jobs
	profiles  *Profiles
	companies *Companies
}

// NewStore builds a store from the embedded seed document.
func NewStore() (*Store, error) {
	return newStore(seedData)
}

// NewStoreFromFile builds a store from a JSON document on disk.
func NewStoreFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	store, err := newStore(data)
	if err != nil {
		return nil, fmt.Errorf("data file %q: %w", path, err)
	}
	return store, nil
}

func newStore(data []byte) (*Store, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing marketplace document: %w", err)
	}

	var jobs []*Job
	if err := decodeSection(doc["jobs"], &jobs); err != nil {
		return nil, fmt.Errorf("decoding jobs: %w", err)
	}

	var profiles []*Profile
	if err := decodeSection(doc["profiles"], &profiles); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}

	var companies []*Company
	if err := decodeSection(doc["companies"], &companies); err != nil {
		return nil, fmt.Errorf("decoding companies: %w", err)
	}

	return &Store{
		jobs:      &Jobs{Items: jobs},
		profiles:  &Profiles{Items: profiles},
		companies: &Companies{Items: companies},
	}, nil
}

func decodeSection(raw any, result any) error {
	if raw == nil {
		return nil
	}

	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   result,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}

func (s *Store) Jobs() *Jobs {
	return s.jobs
}

func (s *Store) Profiles() *Profiles {
	return s.profiles
}

func (s *Store) Companies() *Companies {
	return s.companies
}

// ServiceProviders returns companies of kind service_provider, preserving
// document order.
func (s *Store) ServiceProviders() *Companies {
	filtered := &Companies{}
	for _, company := range s.companies.Items {
		if company.Kind == KindServiceProvider {
			filtered.Items = append(filtered.Items, company)
		}
	}
	return filtered
}
