// Package common holds helpers shared by the CLI actions.
package common

import (
	"log/slog"

	"github.com/dtnitsch/theme-analyzer/models"
)

// SlogObserver reports keyword loading and analysis progress to a logger.
// It satisfies both keywords.Observer and detector.Observer.
type SlogObserver struct {
	Logger *slog.Logger
}

func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{Logger: logger}
}

func (o *SlogObserver) ThemeLoaded(theme string, keywords int) {
	o.Logger.Debug("loaded keywords for theme", "theme", theme, "keywords", keywords)
}

func (o *SlogObserver) LineSkipped(lineNo int, line string) {
	o.Logger.Debug("skipped malformed keyword line", "line_no", lineNo, "line", line)
}

func (o *SlogObserver) AnalysisStarted(textLen, themes int) {
	o.Logger.Info("analyzing text", "text_bytes", textLen, "themes", themes)
}

func (o *SlogObserver) KeywordMatched(stat models.KeywordStat) {
	o.Logger.Debug("keyword matched", "theme", stat.Theme, "keyword", stat.Keyword, "count", stat.Count)
}

func (o *SlogObserver) ThemeDetected(theme string, determined bool) {
	if !determined {
		o.Logger.Info("no keyword matched, theme undetermined")
		return
	}
	o.Logger.Info("detected text theme", "theme", theme)
}

func (o *SlogObserver) AnalysisFailed(err error) {
	o.Logger.Error("analysis failed", "error", err)
}
