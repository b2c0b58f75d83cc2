package traits

// Title is the GM title a team earns from its trait vector.
type Title struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Rule matches a trait vector to a title. Rules are evaluated in order and the first match wins.
type Rule struct {
	Title Title
	Match func(Vector) bool
}

// FallbackTitle is returned when no rule matches.
var FallbackTitle = Title{
	ID:          "steady-hand",
	Name:        "Steady Hand",
	Description: "Balanced decisions with no dominant bet.",
}

// DefaultRules is the ordered GM title rule list.
var DefaultRules = []Rule{
	{
		Title: Title{ID: "win-now", Name: "Win-Now Architect", Description: "Pushed chips in on stars and accepted the heat."},
		Match: func(v Vector) bool { return v.StarPower >= 2 && v.RiskHeat >= 2 },
	},
	{
		Title: Title{ID: "moneyball", Name: "Moneyball Strategist", Description: "Trusted the model over the highlight reel."},
		Match: func(v Vector) bool { return v.DataTrust >= 3 && v.DataTrust > v.StarPower },
	},
	{
		Title: Title{ID: "culture", Name: "Culture Builder", Description: "Built the locker room first."},
		Match: func(v Vector) bool { return v.Culture >= 3 },
	},
	{
		Title: Title{ID: "cap-wizard", Name: "Cap Wizard", Description: "Kept the books clean and the options open."},
		Match: func(v Vector) bool { return v.CapitalFlexibility >= 3 },
	},
	{
		Title: Title{ID: "gambler", Name: "Gambler", Description: "Lived on the edge of the tax line."},
		Match: func(v Vector) bool { return v.RiskHeat >= 4 },
	},
}

// Classify returns the first rule title matching v, or FallbackTitle.
func Classify(v Vector) Title {
	return ClassifyWith(DefaultRules, v)
}

// ClassifyWith evaluates rules in order against v.
func ClassifyWith(rules []Rule, v Vector) Title {
	for _, r := range rules {
		if r.Match != nil && r.Match(v) {
			return r.Title
		}
	}
	return FallbackTitle
}
