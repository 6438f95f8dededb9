// Package mapreduce rolls keyword hits up into per-theme totals and picks
// the winning theme.
package mapreduce

import (
	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/analytics"
)

// Map generates keyword statistics for a single document.
func Map(text string, km *models.KeywordMap, a *analytics.Analytics, mode models.NormalizeMode) []models.KeywordStat {
	return a.KeywordCounts(analytics.Normalize(text, mode), km, mode)
}

// Reduce sums keyword hits per theme. Themes appear in the order of their
// first statistic; themes without hits do not appear at all.
func Reduce(stats []models.KeywordStat) []models.ThemeTotal {
	index := make(map[string]int)
	var totals []models.ThemeTotal

	for _, s := range stats {
		if s.Count <= 0 {
			continue
		}
		i, ok := index[s.Theme]
		if !ok {
			i = len(totals)
			index[s.Theme] = i
			totals = append(totals, models.ThemeTotal{Theme: s.Theme})
		}
		totals[i].Total += s.Count
	}

	return totals
}

// SelectTheme returns the theme with the highest total. On a tie the theme
// that comes first wins, so callers get keyword-source order as the
// tie-break. With no totals it returns models.Undetermined and false.
func SelectTheme(totals []models.ThemeTotal) (string, bool) {
	best := -1
	for i, t := range totals {
		if t.Total <= 0 {
			continue
		}
		if best < 0 || t.Total > totals[best].Total {
			best = i
		}
	}
	if best < 0 {
		return models.Undetermined, false
	}
	return totals[best].Theme, true
}
