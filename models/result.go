package models

// Undetermined is reported as the theme when no keyword matched.
const Undetermined = "Тематика не определена"

// KeywordStat holds the number of hits of one keyword of one theme.
type KeywordStat struct {
	Theme   string `json:"theme" yaml:"theme"`
	Keyword string `json:"keyword" yaml:"keyword"`
	Count   int    `json:"count" yaml:"count"`
}

// ThemeTotal is the sum of a theme's keyword hits.
type ThemeTotal struct {
	Theme string `json:"theme" yaml:"theme"`
	Total int    `json:"total" yaml:"total"`
}

// AnalysisResult is the outcome of a single analysis run.
type AnalysisResult struct {
	Theme      string        `json:"theme" yaml:"theme"`
	Determined bool          `json:"determined" yaml:"determined"`
	Stats      []KeywordStat `json:"stats" yaml:"stats"`
	Totals     []ThemeTotal  `json:"totals" yaml:"totals"`
}
