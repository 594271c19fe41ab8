package domain

import (
	"fmt"
	"strings"
)

// MatchesLoyalty decides whether a free-text eligibility rule admits a
// customer at the given loyalty level. The rule is a substring heuristic:
// criteria that spell out `loyalty_level = '<level>'` admit exactly that
// level, and criteria that never mention loyalty admit everyone. Criteria
// that mention loyalty for a different level admit no one else.
func MatchesLoyalty(criteria, loyaltyLevel string) bool {
	if strings.Contains(criteria, fmt.Sprintf("loyalty_level = '%s'", loyaltyLevel)) {
		return true
	}
	return !strings.Contains(criteria, "loyalty_level")
}
