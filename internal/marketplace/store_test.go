package marketplace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStoreLoadsEmbeddedSeed(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Jobs().Len() == 0 || store.Profiles().Len() == 0 || store.Companies().Len() == 0 {
		t.Fatalf("expected all collections to be populated, got %d/%d/%d",
			store.Jobs().Len(), store.Profiles().Len(), store.Companies().Len())
	}

	// Document order is the iteration order.
	if store.Jobs().Items[0].ID != "job-1" {
		t.Fatalf("expected job-1 first, got %s", store.Jobs().Items[0].ID)
	}

	job := store.Jobs().FindByID("job-4")
	if job == nil {
		t.Fatalf("expected job-4 to exist")
	}
	if job.Type != EmploymentFreelance {
		t.Fatalf("expected freelance employment, got %s", job.Type)
	}

	profile := store.Profiles().FindByID("profile-1")
	if profile == nil {
		t.Fatalf("expected profile-1 to exist")
	}
	if profile.YearsExperience != 12 {
		t.Fatalf("expected numeric field to decode, got %d", profile.YearsExperience)
	}
	if profile.Rating != 4.9 {
		t.Fatalf("expected rating to decode, got %v", profile.Rating)
	}
}

func TestServiceProviders(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	providers := store.ServiceProviders()
	if providers.Len() == 0 {
		t.Fatalf("expected service providers in the seed")
	}

	for _, company := range providers.Items {
		if company.Kind != KindServiceProvider {
			t.Fatalf("unexpected company kind: %s", company.Kind)
		}
	}

	if providers.Len() == store.Companies().Len() {
		t.Fatalf("expected talent seekers to be filtered out")
	}
}

func TestNewStoreFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	doc := `{
		"jobs": [{"id": "j1", "title": "BIM Lead", "location": "Bangkok", "type": "full-time"}],
		"profiles": [{"id": "p1", "name": "Test", "role": "Architect", "yearsExperience": 3, "rating": 4.2}]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	store, err := NewStoreFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Jobs().Len() != 1 || store.Profiles().Len() != 1 || store.Companies().Len() != 0 {
		t.Fatalf("unexpected collection sizes: %d/%d/%d",
			store.Jobs().Len(), store.Profiles().Len(), store.Companies().Len())
	}

	if store.Jobs().Items[0].Type != EmploymentFullTime {
		t.Fatalf("unexpected employment type: %s", store.Jobs().Items[0].Type)
	}
}

func TestNewStoreFromFileErrors(t *testing.T) {
	if _, err := NewStoreFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := NewStoreFromFile(path); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}
