package catalog

type Rank struct {
	Name        string
	XPThreshold int
	Color       string
}

// ranks must stay sorted by strictly increasing threshold, starting at 0.
var ranks = []Rank{
	{Name: "Cadet", XPThreshold: 0, Color: "#888"},
	{Name: "Pixel Scout", XPThreshold: 500, Color: "#44f580"},
	{Name: "Neon Rider", XPThreshold: 1500, Color: "#00f0ff"},
	{Name: "Cyber Knight", XPThreshold: 3000, Color: "#ff003c"},
	{Name: "System Breaker", XPThreshold: 6000, Color: "#d300ff"},
	{Name: "Void Walker", XPThreshold: 10000, Color: "#ffd700"},
	{Name: "Arcade Legend", XPThreshold: 20000, Color: "#fff"},
	{Name: "Hyper God", XPThreshold: 50000, Color: "#ff9900"},
}

// Ranks returns a copy of the rank table, lowest first.
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks)
	return out
}

// RankIndexForXP returns the highest index whose threshold is <= xp.
func RankIndexForXP(xp int) int {
	idx := 0
	for i, r := range ranks {
		if xp >= r.XPThreshold {
			idx = i
		}
	}
	return idx
}

// RankAt returns the rank at index i, clamped to the table.
func RankAt(i int) Rank {
	if i < 0 {
		i = 0
	}
	if i >= len(ranks) {
		i = len(ranks) - 1
	}
	return ranks[i]
}

// RankForXP is RankAt(RankIndexForXP(xp)).
func RankForXP(xp int) Rank {
	return RankAt(RankIndexForXP(xp))
}

// NextRank returns the tier after the one xp currently resolves to.
// ok is false at the top of the table.
func NextRank(xp int) (next Rank, ok bool) {
	i := RankIndexForXP(xp) + 1
	if i >= len(ranks) {
		return Rank{}, false
	}
	return ranks[i], true
}
