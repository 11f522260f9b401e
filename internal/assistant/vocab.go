package assistant

import "github.com/bimatch/bimatch/internal/marketplace"

// Vocabulary holds the fixed term lists used for attribute extraction.
// Matching is case-insensitive substring containment, so entries should be
// lower-case.
type Vocabulary struct {
	Roles     []string `mapstructure:"roles"`
	Locations []string `mapstructure:"locations"`
	Skills    []string `mapstructure:"skills"`
	Services  []string `mapstructure:"services"`
}

// employmentSynonyms maps query phrasings to employment categories. Order
// matters: the first phrase found in the query wins.
var employmentSynonyms = []struct {
	phrase string
	value  marketplace.Employment
}{
	{"freelance", marketplace.EmploymentFreelance},
	{"contract", marketplace.EmploymentContract},
	{"full-time", marketplace.EmploymentFullTime},
	{"full time", marketplace.EmploymentFullTime},
}

// DefaultVocabulary returns the built-in BIM marketplace term lists.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Roles:     []string{"bim manager", "bim coordinator", "architect", "engineer", "modeler", "mep", "structural"},
		Locations: []string{"bangkok", "chiang mai", "phuket", "pattaya"},
		Skills:    []string{"revit", "navisworks", "autocad", "bim 360", "archicad"},
		Services:  []string{"consulting", "training", "implementation", "scan to bim", "clash detection"},
	}
}
