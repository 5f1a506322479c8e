package scheduler

import (
	"strings"

	"github.com/cadence-sh/cadence/internal/domain"
)

// Keyword classification for plan units that arrive without a persisted
// cognitive type. Rules are ordered; the first matching rule wins, and a
// title matching nothing falls back to shallow work.
type classRule struct {
	cognitive domain.CognitiveType
	verbs     []string
}

var classRules = []classRule{
	{domain.CogAdmin, []string{
		"register", "registration", "signup", "sign", "pay", "payment",
		"invoice", "email", "call", "submit", "apply", "application",
		"book", "renew", "order", "contact", "reply", "schedule",
	}},
	{domain.CogLearning, []string{
		"research", "study", "read", "learn", "watch", "course",
		"tutorial", "explore", "investigate", "memorize",
	}},
	{domain.CogCreative, []string{
		"design", "draft", "write", "sketch", "brainstorm", "outline",
		"compose", "storyboard", "prototype",
	}},
	{domain.CogDeep, []string{
		"implement", "build", "develop", "code", "deploy", "refactor",
		"debug", "integrate", "configure", "migrate", "analyze",
	}},
}

// ClassifyTitle infers a cognitive type from a title. A rule verb matches
// when it prefixes any word of the lowercased title, so "registering for
// the exam" matches "register".
func ClassifyTitle(title string) domain.CognitiveType {
	words := strings.Fields(strings.ToLower(title))
	for _, rule := range classRules {
		for _, verb := range rule.verbs {
			for _, w := range words {
				if strings.HasPrefix(strings.Trim(w, ".,:;!?()"), verb) {
					return rule.cognitive
				}
			}
		}
	}
	return domain.CogShallow
}

var defaultDurationMin = map[domain.CognitiveType]int{
	domain.CogAdmin:    15,
	domain.CogShallow:  30,
	domain.CogLearning: 45,
	domain.CogCreative: 45,
	domain.CogDeep:     60,
}

var defaultDifficulty = map[domain.CognitiveType]int{
	domain.CogAdmin:    1,
	domain.CogShallow:  2,
	domain.CogLearning: 3,
	domain.CogCreative: 3,
	domain.CogDeep:     4,
}

const (
	shortAdminWordMax   = 3
	shortAdminMinutes   = 10
	longTitleWordMin    = 12
	longTitleMinutes    = 90
)

// DefaultDuration resolves a duration for a unit without a usable persisted
// estimate. Very short admin-like phrases ("pay fee") get a minimal slot;
// long descriptive titles signal compound work and get a larger one.
func DefaultDuration(cog domain.CognitiveType, title string) int {
	words := len(strings.Fields(title))
	if cog == domain.CogAdmin && words <= shortAdminWordMax {
		return shortAdminMinutes
	}
	if words >= longTitleWordMin {
		return longTitleMinutes
	}
	return defaultDurationMin[cog]
}

// DefaultDifficulty resolves a difficulty for a unit without a usable
// persisted rating.
func DefaultDifficulty(cog domain.CognitiveType) int {
	return defaultDifficulty[cog]
}
