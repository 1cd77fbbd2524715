package mastery

// Tier identifies a mastery tier, ordered from hardest-earned
// (Transcendent) to the default floor (Beginner).
type Tier string

const (
	TierTranscendent Tier = "transcendent"
	TierLegendary    Tier = "legendary"
	TierVeteran      Tier = "veteran"
	TierDeveloping   Tier = "developing"
	TierCasual       Tier = "casual"
	TierNovice       Tier = "novice"
	TierBeginner     Tier = "beginner"
)

// TierInfo is the fixed display metadata for one tier.
type TierInfo struct {
	Tier        Tier   `json:"tier"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Emblem      string `json:"emblem"`
	Advice      string `json:"advice"`
}

// Tiers maps tier identifiers to their display metadata.
var Tiers = map[Tier]TierInfo{
	TierTranscendent: {
		Tier:        TierTranscendent,
		Title:       "Transcendent",
		Description: "Flawless and fast. You have gone beyond fandom into something closer to omniscience.",
		Color:       "#FFD700",
		Emblem:      "👑",
		Advice:      "Put that knowledge to work mentoring the next generation of fans.",
	},
	TierLegendary: {
		Tier:        TierLegendary,
		Title:       "Living Legend",
		Description: "A walking encyclopedia of the genre. The depth of your knowledge commands respect.",
		Color:       "#FF6B35",
		Emblem:      "⚡",
		Advice:      "Consider working in the industry — knowledge this deep deserves an outlet.",
	},
	TierVeteran: {
		Tier:        TierVeteran,
		Title:       "Veteran",
		Description: "Years of accumulated knowledge show. Newcomers look up to you.",
		Color:       "#8A2BE2",
		Emblem:      "🛡️",
		Advice:      "Chase down the obscure titles and hidden classics next.",
	},
	TierDeveloping: {
		Tier:        TierDeveloping,
		Title:       "Rising Fan",
		Description: "The makings of a true devotee are there. Great things are expected of you.",
		Color:       "#4169E1",
		Emblem:      "🥚",
		Advice:      "Keep deepening your favorite genre while branching into new ones.",
	},
	TierCasual: {
		Tier:        TierCasual,
		Title:       "Casual Fan",
		Description: "A solid general knowledge level. Clearly interested, with plenty of room to grow.",
		Color:       "#32CD32",
		Emblem:      "👤",
		Advice:      "Try some older classics and deeper cuts to widen your range.",
	},
	TierNovice: {
		Tier:        TierNovice,
		Title:       "Novice",
		Description: "Just getting started. Time to build up the fundamentals.",
		Color:       "#FFA500",
		Emblem:      "📚",
		Advice:      "Start with the famous titles and expand from there.",
	},
	TierBeginner: {
		Tier:        TierBeginner,
		Title:       "Newcomer",
		Description: "A whole world of stories is still ahead of you.",
		Color:       "#DC143C",
		Emblem:      "🌱",
		Advice:      "Begin with the big hits everyone talks about.",
	},
}

// Info resolves a tier's display metadata. Unknown tiers fall back to
// a neutral emblem with no titles, which should not happen for tiers
// produced by Classify.
func Info(t Tier) TierInfo {
	if info, ok := Tiers[t]; ok {
		return info
	}
	return TierInfo{Tier: t, Emblem: "📝"}
}
