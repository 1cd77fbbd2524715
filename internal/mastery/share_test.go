package mastery

import (
	"strings"
	"testing"
)

func TestShareText(t *testing.T) {
	text := ShareText(Result{Accuracy: 0.9, Correct: 9, Total: 10, Tier: TierLegendary})

	if !strings.Contains(text, "9/10 (90%)") {
		t.Errorf("share text missing score: %q", text)
	}
	if !strings.Contains(text, Tiers[TierLegendary].Title) {
		t.Errorf("share text missing tier title: %q", text)
	}
	if !strings.Contains(text, Tiers[TierLegendary].Emblem) {
		t.Errorf("share text missing emblem: %q", text)
	}
}

func TestShareTextRoundsPercent(t *testing.T) {
	// 2/3 rounds to 67%.
	text := ShareText(Result{Accuracy: 2.0 / 3.0, Correct: 2, Total: 3, Tier: TierCasual})
	if !strings.Contains(text, "2/3 (67%)") {
		t.Errorf("share text = %q, want 67%% rounding", text)
	}
}

func TestTierTableComplete(t *testing.T) {
	for _, tier := range []Tier{
		TierTranscendent, TierLegendary, TierVeteran, TierDeveloping,
		TierCasual, TierNovice, TierBeginner,
	} {
		info := Info(tier)
		if info.Title == "" || info.Description == "" || info.Color == "" || info.Emblem == "" || info.Advice == "" {
			t.Errorf("tier %s has incomplete display metadata: %+v", tier, info)
		}
	}
}

func TestInfoUnknownTier(t *testing.T) {
	info := Info(Tier("mystery"))
	if info.Emblem == "" {
		t.Error("unknown tier should still carry a fallback emblem")
	}
}
