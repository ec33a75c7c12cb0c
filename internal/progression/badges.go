package progression

import "pennyquest/internal/model"

// badgeRule pairs an unlock condition with the badge it awards. Rules are
// checked against the post-transition stats, in table order, and a badge ID
// already present in the stats is never evaluated again — once unlocked, a
// badge stays unlocked and is never re-awarded, even if the condition is
// crossed again after a streak reset.
type badgeRule struct {
	badge    model.Badge
	unlocked func(model.UserStats) bool
}

var badgeRules = []badgeRule{
	{
		badge: model.Badge{
			ID:          "first-week",
			Name:        "3-Day Streak",
			Description: "Tracked spending for 3 days in a row",
			Icon:        "🔥",
			Type:        model.BadgeStreak,
		},
		// Exactly 3, not >= 3: the rule only needs to fire at the crossing
		// point, and the ID guard keeps it from firing twice.
		unlocked: func(s model.UserStats) bool { return s.CurrentStreak == 3 },
	},
}

// Rules returns the badges that can be earned, in evaluation order. The
// UnlockedAt field is zero until a badge is actually awarded.
func Rules() []model.Badge {
	out := make([]model.Badge, len(badgeRules))
	for i, r := range badgeRules {
		out[i] = r.badge
	}
	return out
}
