package detector

import "github.com/dtnitsch/theme-analyzer/models"

// Observer receives progress of an analysis. Calls happen synchronously on
// the goroutine running Analyze.
type Observer interface {
	AnalysisStarted(textLen, themes int)
	KeywordMatched(stat models.KeywordStat)
	ThemeDetected(theme string, determined bool)
	AnalysisFailed(err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) AnalysisStarted(int, int)          {}
func (NopObserver) KeywordMatched(models.KeywordStat) {}
func (NopObserver) ThemeDetected(string, bool)        {}
func (NopObserver) AnalysisFailed(error)              {}
