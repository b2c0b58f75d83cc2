package progression

import (
	"fmt"
	"math/rand/v2"
)

var rivalTemplates = []string{
	"%s just closed out %s. The clock is ticking.",
	"Word around the league: %s finished %s.",
	"%s made their move on %s. Your owner is watching.",
	"Breaking: %s wraps up %s ahead of you.",
	"%s is through %s. Don't let them run away with it.",
}

// RivalMessage renders a flavor line announcing that a rival team completed a mission.
// Template choice is random and carries no state.
func RivalMessage(teamName, missionTitle string) string {
	tmpl := rivalTemplates[rand.IntN(len(rivalTemplates))]
	return fmt.Sprintf(tmpl, teamName, missionTitle)
}
