// Package analytics counts keyword occurrences in normalized text.
package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dtnitsch/theme-analyzer/models"
)

// Analytics counts theme keywords in text.
type Analytics struct{}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares text or a keyword for matching. Haystack and keyword
// must go through the same mode.
func Normalize(text string, mode models.NormalizeMode) string {
	switch mode {
	case models.NormalizeNFC:
		return strings.ToLower(norm.NFC.String(text))
	case models.NormalizeFold:
		folded, _, err := transform.String(stripMarks, strings.ToLower(text))
		if err != nil {
			return strings.ToLower(text)
		}
		return folded
	default:
		return strings.ToLower(text)
	}
}

// CountOccurrences returns the number of non-overlapping literal occurrences
// of keyword in haystack, scanning left to right. Matches are not bound to
// word boundaries: "cat" is found inside "category". An empty keyword never
// matches.
func CountOccurrences(haystack, keyword string) int {
	if keyword == "" {
		return 0
	}
	return strings.Count(haystack, keyword)
}

// KeywordCounts counts every keyword of every theme in already normalized
// text. Pairs with no hits are omitted; the rest keep keyword map order.
func (a *Analytics) KeywordCounts(normalized string, km *models.KeywordMap, mode models.NormalizeMode) []models.KeywordStat {
	var stats []models.KeywordStat
	for _, theme := range km.Themes() {
		for _, kw := range km.Keywords(theme) {
			count := CountOccurrences(normalized, Normalize(kw, mode))
			if count == 0 {
				continue
			}
			stats = append(stats, models.KeywordStat{
				Theme:   theme,
				Keyword: kw,
				Count:   count,
			})
		}
	}
	return stats
}
