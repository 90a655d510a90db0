package service

const (
	TierExcellent = "excellent"
	TierVeryGood  = "veryGood"
	TierGood      = "good"
	TierFair      = "fair"
	TierPoor      = "poor"
)

// TierOrder is the order tiers are checked in, best first.
var TierOrder = []string{TierExcellent, TierVeryGood, TierGood, TierFair, TierPoor}

type Tier struct {
	Name    string
	Min     int
	Message string
}

// GradingTable lists tiers best first. The last tier is the fallback and
// its minimum is never checked.
type GradingTable []Tier

// Grade returns the first tier whose minimum the score reaches, or the
// last tier when none does.
func (g GradingTable) Grade(score int) Tier {
	if len(g) == 0 {
		return Tier{}
	}
	for _, tier := range g[:len(g)-1] {
		if score >= tier.Min {
			return tier
		}
	}
	return g[len(g)-1]
}
