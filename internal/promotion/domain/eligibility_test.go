package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesLoyaltyExactLevel(t *testing.T) {
	assert.True(t, MatchesLoyalty("loyalty_level = 'Gold'", "Gold"))
	assert.False(t, MatchesLoyalty("loyalty_level = 'Gold'", "Silver"))
	assert.False(t, MatchesLoyalty("loyalty_level = 'Gold'", "Bronze"))
}

func TestMatchesLoyaltyCriteriaWithoutLoyaltyMention(t *testing.T) {
	assert.True(t, MatchesLoyalty("any customer", "Bronze"))
	assert.True(t, MatchesLoyalty("subscription_start within last 90 days", "Silver"))
	assert.True(t, MatchesLoyalty("", "Gold"))
}

func TestMatchesLoyaltyOtherLevelMentioned(t *testing.T) {
	// Mentioning loyalty for another level excludes everyone else.
	assert.False(t, MatchesLoyalty("loyalty_level = 'Silver' and autopay enabled", "Gold"))
}
