package assistant

import (
	"strings"

	"github.com/bimatch/bimatch/internal/marketplace"
)

// extractFirst returns the first vocabulary entry contained in the
// normalized query, or "" when none matches. Containment is plain
// substring matching without word boundaries.
func extractFirst(query string, vocab []string) string {
	for _, entry := range vocab {
		if strings.Contains(query, strings.ToLower(entry)) {
			return entry
		}
	}
	return ""
}

func extractEmployment(query string) marketplace.Employment {
	for _, synonym := range employmentSynonyms {
		if strings.Contains(query, synonym.phrase) {
			return synonym.value
		}
	}
	return ""
}

// extract fills the variant attributes of the intent from the normalized
// query. Jobs carry role/location/employment, talent carries role/skill,
// services carry service/location.
func (v *Vocabulary) extract(query string, kind IntentKind) Intent {
	intent := Intent{Kind: kind}

	switch kind {
	case IntentJobs:
		intent.Role = extractFirst(query, v.Roles)
		intent.Location = extractFirst(query, v.Locations)
		intent.Employment = extractEmployment(query)
	case IntentTalent:
		intent.Role = extractFirst(query, v.Roles)
		intent.Skill = extractFirst(query, v.Skills)
	case IntentServices:
		intent.Service = extractFirst(query, v.Services)
		intent.Location = extractFirst(query, v.Locations)
	}

	return intent
}
