package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/mapreduce"
)

// Summary is the machine-readable form of an analysis result.
type Summary struct {
	Theme      string               `json:"theme" yaml:"theme"`
	Determined bool                 `json:"determined" yaml:"determined"`
	Stats      []models.KeywordStat `json:"stats" yaml:"stats"`
	Totals     []models.ThemeTotal  `json:"totals" yaml:"totals"`
	Ranking    []string             `json:"ranking" yaml:"ranking"`
}

// BuildSummary converts a result, never returning nil slices so that JSON
// consumers always see arrays.
func BuildSummary(res *models.AnalysisResult) Summary {
	s := Summary{
		Theme:   models.Undetermined,
		Stats:   []models.KeywordStat{},
		Totals:  []models.ThemeTotal{},
		Ranking: []string{},
	}
	if res == nil {
		return s
	}

	s.Theme = res.Theme
	s.Determined = res.Determined
	if len(res.Stats) > 0 {
		s.Stats = res.Stats
	}
	if len(res.Totals) > 0 {
		s.Totals = res.Totals
		s.Ranking = mapreduce.TopThemes(res.Totals, 0)
	}
	return s
}

// JSONFormatter writes the summary as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Format(w io.Writer, res *models.AnalysisResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildSummary(res))
}

// YAMLFormatter writes the summary as YAML.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(w io.Writer, res *models.AnalysisResult) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(BuildSummary(res)); err != nil {
		return err
	}
	return encoder.Close()
}
