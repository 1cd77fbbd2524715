package mastery

import (
	"fmt"
	"math"
)

// ShareText renders the short shareable summary for a result: emblem,
// tier title, and correct/total with a rounded percentage. Pure
// formatting, no side effects.
func ShareText(r Result) string {
	info := Info(r.Tier)
	percent := int(math.Round(r.Accuracy * 100))
	return fmt.Sprintf("%s Trivia Mastery Result %s\n"+
		"Tier: %s\n"+
		"Score: %d/%d (%d%%)\n"+
		"%s\n"+
		"\n#TriviaFountain #MasteryCheck",
		info.Emblem, info.Emblem, info.Title, r.Correct, r.Total, percent, info.Description)
}
