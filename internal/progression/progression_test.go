package progression

import (
	"math/rand/v2"
	"strings"
	"testing"

	"mission-control-backend/internal/catalog"
	apperrors "mission-control-backend/internal/errors"
	"mission-control-backend/internal/traits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourOptionMission() *catalog.Mission {
	return &catalog.Mission{
		ID:        "deadline-deal",
		Title:     "Deadline Deal",
		ConceptID: "opportunity-cost",
		Rounds: []catalog.Round{{
			ID: "r1",
			Options: []catalog.Option{
				{Label: "a", Outcome: catalog.Outcome{Narrative: "a", ScoreDelta: 1}},
				{Label: "b", Outcome: catalog.Outcome{Narrative: "b", ScoreDelta: 12, Traits: traits.Vector{StarPower: 2, RiskHeat: 2}}},
				{Label: "c", Outcome: catalog.Outcome{Narrative: "c", ScoreDelta: 3}},
				{Label: "d", Outcome: catalog.Outcome{Narrative: "d", ScoreDelta: -4}},
			},
		}},
	}
}

func TestWinningOption(t *testing.T) {
	testCases := []struct {
		name   string
		counts []int
		want   int
	}{
		{"single max", []int{0, 2, 1, 0}, 1},
		{"two-way tie picks lowest", []int{0, 3, 3, 1}, 1},
		{"all tied", []int{2, 2, 2}, 0},
		{"last option wins", []int{0, 0, 5}, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := WinningOption(tc.counts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := WinningOption([]int{0, 0, 0})
	assert.ErrorIs(t, err, apperrors.ErrNoVotes)
	_, err = WinningOption(nil)
	assert.ErrorIs(t, err, apperrors.ErrNoVotes)
}

func TestWinningOptionLowestIndexAmongTiedMaxima(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < 500; i++ {
		n := 2 + r.IntN(5)
		counts := make([]int, n)
		for j := range counts {
			counts[j] = r.IntN(4)
		}
		top := 0
		for _, c := range counts {
			if c > top {
				top = c
			}
		}
		got, err := WinningOption(counts)
		if top == 0 {
			assert.ErrorIs(t, err, apperrors.ErrNoVotes)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, top, counts[got])
		for j := 0; j < got; j++ {
			assert.Less(t, counts[j], top, "counts=%v", counts)
		}
		again, _ := WinningOption(counts)
		assert.Equal(t, got, again)
	}
}

func TestResolveThreeVotersFourOptions(t *testing.T) {
	tally := NewTally(4)
	for _, v := range []int{1, 1, 2} {
		tally.Counts[v]++
		tally.Voters++
	}
	assert.Equal(t, []int{0, 2, 1, 0}, tally.Counts)
	assert.Equal(t, 3, tally.Total())

	res, err := Resolve(fourOptionMission(), "r1", tally)
	require.NoError(t, err)

	assert.Equal(t, 1, res.WinningOption)
	assert.Equal(t, "b", res.Narrative)
	assert.Equal(t, 12, res.ScoreDelta)
	assert.Equal(t, traits.Vector{StarPower: 2, RiskHeat: 2}, res.TraitDelta)
	assert.Equal(t, "opportunity-cost", res.ConceptID)
	assert.False(t, res.Forced)
}

func TestResolveErrors(t *testing.T) {
	m := fourOptionMission()

	_, err := Resolve(m, "r1", NewTally(4))
	assert.ErrorIs(t, err, apperrors.ErrNoVotes)

	_, err = Resolve(m, "missing", NewTally(4))
	assert.ErrorIs(t, err, apperrors.ErrRoundNotFound)

	_, err = Resolve(m, "r1", Tally{Counts: []int{1, 0}})
	assert.Error(t, err)
}

func TestResolveForced(t *testing.T) {
	m := fourOptionMission()

	res, err := ResolveForced(m, "r1", 3, Tally{})
	require.NoError(t, err)
	assert.True(t, res.Forced)
	assert.Equal(t, 3, res.WinningOption)
	assert.Equal(t, -4, res.ScoreDelta)
	assert.Len(t, res.Tally.Counts, 4)

	_, err = ResolveForced(m, "r1", 4, Tally{})
	assert.True(t, apperrors.IsInvalidOption(err))
}

func TestTeamClaimCode(t *testing.T) {
	badges := []string{"salary-cap", "expected-value", "bargaining-power"}
	code := TeamClaimCode(DefaultClaimCodePrefix, "team-1", badges)

	assert.True(t, strings.HasPrefix(code, "MC-"))
	assert.Len(t, code, len("MC-")+10)

	t.Run("invariant under permutation", func(t *testing.T) {
		permuted := []string{"bargaining-power", "salary-cap", "expected-value"}
		assert.Equal(t, code, TeamClaimCode(DefaultClaimCodePrefix, "team-1", permuted))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		assert.Equal(t, []string{"salary-cap", "expected-value", "bargaining-power"}, badges)
	})

	t.Run("differs for another team", func(t *testing.T) {
		assert.NotEqual(t, code, TeamClaimCode(DefaultClaimCodePrefix, "team-2", badges))
	})

	t.Run("differs for another badge set", func(t *testing.T) {
		assert.NotEqual(t, code, TeamClaimCode(DefaultClaimCodePrefix, "team-1", badges[:2]))
	})

	t.Run("separator keeps boundaries", func(t *testing.T) {
		assert.NotEqual(t,
			TeamClaimCode("", "t", []string{"ab", "c"}),
			TeamClaimCode("", "t", []string{"a", "bc"}))
	})

	t.Run("empty slots ignored", func(t *testing.T) {
		assert.Equal(t, code, TeamClaimCode(DefaultClaimCodePrefix, "team-1", append([]string{""}, badges...)))
	})
}

func TestTeamClaimCodeNoCollisionsAtClassScale(t *testing.T) {
	seen := make(map[string]string)
	for i := 0; i < 5000; i++ {
		id := "team-" + ShortHash(string(rune(i)), 8) + "-" + strings.Repeat("x", i%7)
		code := TeamClaimCode(DefaultClaimCodePrefix, id, []string{"salary-cap"})
		prev, dup := seen[code]
		require.False(t, dup, "collision between %s and %s", prev, id)
		seen[code] = id
	}
}

func TestParticipantClaimCode(t *testing.T) {
	team := TeamClaimCode(DefaultClaimCodePrefix, "team-1", []string{"a"})

	p1 := ParticipantClaimCode(team, "participant-1")
	p2 := ParticipantClaimCode(team, "participant-2")

	assert.True(t, strings.HasPrefix(p1, team+"-"))
	assert.Len(t, p1, len(team)+1+6)
	assert.NotEqual(t, p1, p2)
	assert.Equal(t, p1, ParticipantClaimCode(team, "participant-1"))
}

func TestShortHashClampsLength(t *testing.T) {
	assert.Len(t, ShortHash("x", 1000), 52)
	assert.Equal(t, ShortHash("x", 4), ShortHash("x", 10)[:4])
}

func TestRivalMessage(t *testing.T) {
	for i := 0; i < 20; i++ {
		msg := RivalMessage("Hawks", "Cap Crunch")
		assert.Contains(t, msg, "Hawks")
		assert.Contains(t, msg, "Cap Crunch")
	}
}
