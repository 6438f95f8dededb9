package mapreduce

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/theme-analyzer/models"
)

// RankThemes returns up to n totals sorted by total, descending. Equal totals
// keep their input order. n <= 0 returns all of them.
func RankThemes(totals []models.ThemeTotal, n int) []models.ThemeTotal {
	ranked := make([]models.ThemeTotal, len(totals))
	copy(ranked, totals)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopThemes returns the ranked themes formatted as "theme:total"
// (e.g., "sports:3").
func TopThemes(totals []models.ThemeTotal, n int) []string {
	ranked := RankThemes(totals, n)
	out := make([]string, len(ranked))
	for i, t := range ranked {
		out[i] = fmt.Sprintf("%s:%d", t.Theme, t.Total)
	}
	return out
}
