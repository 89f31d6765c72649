package matching

import (
	"math"
	"strings"
)

// FallbackScore is the substring-overlap heuristic used whenever embeddings are
// unavailable. A user with neither skills nor needs scores 0.
func FallbackScore(user, other Profile) int {
	if len(user.Skills) == 0 && len(user.Needs) == 0 {
		return 0
	}

	needsPct := overlapPercent(user.Needs, other.Skills)
	skillsPct := overlapPercent(user.Skills, other.Needs)

	return clampScore(math.Round((needsPct + skillsPct) / 2))
}

// overlapPercent is the share of wanted entries contained, case-insensitively,
// in at least one offered entry.
func overlapPercent(wanted, offered []string) float64 {
	if len(wanted) == 0 {
		return 0
	}

	lowered := make([]string, 0, len(offered))
	for _, o := range offered {
		lowered = append(lowered, strings.ToLower(o))
	}

	matched := 0
	for _, w := range wanted {
		w = strings.ToLower(w)
		for _, o := range lowered {
			if strings.Contains(o, w) {
				matched++
				break
			}
		}
	}

	return 100 * float64(matched) / float64(len(wanted))
}

func clampScore(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
