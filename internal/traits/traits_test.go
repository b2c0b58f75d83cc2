package traits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAdd(t *testing.T) {
	v := Vector{CapitalFlexibility: 1, StarPower: -2, DataTrust: 3, Culture: 0, RiskHeat: 5}
	d := Vector{CapitalFlexibility: -4, StarPower: 2, DataTrust: 1, Culture: -1, RiskHeat: 0}

	got := v.Add(d)

	assert.Equal(t, Vector{CapitalFlexibility: -3, StarPower: 0, DataTrust: 4, Culture: -1, RiskHeat: 5}, got)
	// operands are untouched
	assert.Equal(t, 1, v.CapitalFlexibility)
	assert.True(t, Vector{}.IsZero())
	assert.False(t, got.IsZero())
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		v    Vector
		want string
	}{
		{"zero vector falls back", Vector{}, FallbackTitle.ID},
		{"win-now beats culture", Vector{StarPower: 2, RiskHeat: 2, Culture: 5}, "win-now"},
		{"moneyball needs data over stars", Vector{DataTrust: 3, StarPower: 1}, "moneyball"},
		{"data tied with stars is not moneyball", Vector{DataTrust: 3, StarPower: 3}, FallbackTitle.ID},
		{"culture", Vector{Culture: 3}, "culture"},
		{"cap wizard", Vector{CapitalFlexibility: 4}, "cap-wizard"},
		{"gambler without stars", Vector{RiskHeat: 4}, "gambler"},
		{"negative values fall back", Vector{CapitalFlexibility: -9, Culture: -3}, FallbackTitle.ID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.v).ID)
		})
	}
}

func TestClassifyAfterWinNowMission(t *testing.T) {
	start := Vector{}
	after := start.Add(Vector{RiskHeat: 2, StarPower: 2})

	title := Classify(after)

	assert.Equal(t, "win-now", title.ID)
	assert.Equal(t, "Win-Now Architect", title.Name)
}

func TestClassifyWithCustomRules(t *testing.T) {
	rules := []Rule{
		{Title: Title{ID: "first"}, Match: func(v Vector) bool { return v.Culture > 0 }},
		{Title: Title{ID: "second"}, Match: func(v Vector) bool { return v.Culture > 0 }},
		{Title: Title{ID: "nil-matcher"}},
	}

	assert.Equal(t, "first", ClassifyWith(rules, Vector{Culture: 1}).ID)
	assert.Equal(t, FallbackTitle.ID, ClassifyWith(rules, Vector{}).ID)
	assert.Equal(t, FallbackTitle.ID, ClassifyWith(nil, Vector{Culture: 1}).ID)
}
