// Package detector determines the theme of a text from keyword statistics.
package detector

import (
	"errors"

	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/analytics"
	"github.com/dtnitsch/theme-analyzer/pkg/mapreduce"
	"github.com/dtnitsch/theme-analyzer/pkg/report"
)

// ErrKeywordsNotLoaded is returned when Analyze gets a nil or empty keyword map.
var ErrKeywordsNotLoaded = errors.New("keywords not loaded")

// Detector runs theme analysis. The zero value is not usable; use New.
// A Detector holds no per-run state and may be reused.
type Detector struct {
	mode      models.NormalizeMode
	observer  Observer
	analytics *analytics.Analytics
}

// Option configures a Detector.
type Option func(*Detector)

// WithObserver sets the observer notified during analysis.
func WithObserver(obs Observer) Option {
	return func(d *Detector) {
		if obs != nil {
			d.observer = obs
		}
	}
}

// WithNormalizeMode sets how text and keywords are normalized.
func WithNormalizeMode(mode models.NormalizeMode) Option {
	return func(d *Detector) {
		if mode != "" {
			d.mode = mode
		}
	}
}

// New creates a Detector. By default it lowercases only and reports nothing.
func New(opts ...Option) *Detector {
	d := &Detector{
		mode:      models.NormalizeLower,
		observer:  NopObserver{},
		analytics: &analytics.Analytics{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Analyze counts keywords of every theme in text and picks the theme with
// the highest total. Text without any match yields an undetermined result,
// not an error.
func (d *Detector) Analyze(text string, km *models.KeywordMap) (*models.AnalysisResult, error) {
	if km.IsEmpty() {
		d.observer.AnalysisFailed(ErrKeywordsNotLoaded)
		return nil, ErrKeywordsNotLoaded
	}

	d.observer.AnalysisStarted(len(text), km.Len())

	stats := mapreduce.Map(text, km, d.analytics, d.mode)
	for _, s := range stats {
		d.observer.KeywordMatched(s)
	}

	totals := mapreduce.Reduce(stats)
	theme, determined := mapreduce.SelectTheme(totals)
	d.observer.ThemeDetected(theme, determined)

	return &models.AnalysisResult{
		Theme:      theme,
		Determined: determined,
		Stats:      stats,
		Totals:     totals,
	}, nil
}

// DetectTheme analyzes text and returns the plain report.
func (d *Detector) DetectTheme(text string, km *models.KeywordMap) (string, error) {
	res, err := d.Analyze(text, km)
	if err != nil {
		return "", err
	}
	return report.Render(res), nil
}
