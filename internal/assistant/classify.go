package assistant

import (
	"regexp"
	"strings"
)

// Normalize lower-cases and trims the raw query. An empty result means
// there is nothing to resolve and the pipeline must not run.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// classifyRules is evaluated top-down and the first match wins. The order
// is a product decision: a query containing both job and role keywords
// ("BIM manager job") must resolve to jobs, so the job rule is first.
var classifyRules = []struct {
	pattern *regexp.Regexp
	kind    IntentKind
}{
	{regexp.MustCompile(`job|position|hiring|vacancy|work|opening`), IntentJobs},
	{regexp.MustCompile(`find.*people|looking for.*professional|hire.*freelance|expert|architect|engineer|modeler`), IntentTalent},
	{regexp.MustCompile(`company|companies|consultant|consulting|service|provider|firm|training|implementation`), IntentServices},
}

// classify returns the intent kind for the normalized query. The second
// return value reports whether a rule matched; when false the caller falls
// back to the jobs default carrying the raw query.
func classify(query string) (IntentKind, bool) {
	for _, rule := range classifyRules {
		if rule.pattern.MatchString(query) {
			return rule.kind, true
		}
	}
	return IntentJobs, false
}
