package domain

type CognitiveType string

const (
	CogAdmin    CognitiveType = "admin"
	CogShallow  CognitiveType = "shallow_work"
	CogLearning CognitiveType = "learning"
	CogCreative CognitiveType = "creative"
	CogDeep     CognitiveType = "deep_work"
)

// ValidCognitiveTypes is the canonical set of accepted cognitive type strings.
var ValidCognitiveTypes = map[string]bool{
	"admin": true, "shallow_work": true, "learning": true,
	"creative": true, "deep_work": true,
}

// WeekPattern scopes a recurring block to all weeks or to alternating weeks.
// Pattern A is active on even week offsets from the schedule start date,
// pattern B on odd offsets.
type WeekPattern string

const (
	PatternDefault WeekPattern = "default"
	PatternA       WeekPattern = "A"
	PatternB       WeekPattern = "B"
)

// ActiveOn reports whether the pattern applies during the given week offset.
func (p WeekPattern) ActiveOn(weekOffset int) bool {
	switch p {
	case PatternA:
		return weekOffset%2 == 0
	case PatternB:
		return weekOffset%2 == 1
	default:
		return true
	}
}

type TimePreference string

const (
	PrefMorning   TimePreference = "morning"
	PrefAfternoon TimePreference = "afternoon"
	PrefEvening   TimePreference = "evening"
	PrefNone      TimePreference = ""
)

const (
	// MinItemMinutes and MaxItemMinutes bound a work item's duration.
	MinItemMinutes = 5
	MaxItemMinutes = 600

	// MinDifficulty and MaxDifficulty bound a work item's difficulty rating.
	MinDifficulty = 1
	MaxDifficulty = 5
)
