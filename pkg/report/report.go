// Package report renders analysis results for people and for tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/theme-analyzer/models"
)

// Fixed strings of the plain report. Downstream consumers match on them.
const (
	Header               = "Результат анализа текста:"
	FooterPrefix         = "Определенная тема: "
	MsgKeywordsNotLoaded = "Ошибка: ключевые слова не загружены."
)

// Formatter writes an analysis result to w.
type Formatter interface {
	Format(w io.Writer, res *models.AnalysisResult) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ParseFormatType resolves a format name. An empty name means plain.
func ParseFormatType(s string) (FormatType, error) {
	switch FormatType(strings.ToLower(s)) {
	case "", FormatPlain:
		return FormatPlain, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want plain, json or yaml)", s)
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return JSONFormatter{}
	case FormatYAML:
		return YAMLFormatter{}
	default:
		return PlainFormatter{}
	}
}

// PlainFormatter writes the human-readable report:
//
//	Результат анализа текста:
//
//	sports - ball: 1
//	sports - goal: 2
//
//	Определенная тема: sports
//
// There is no newline after the last line.
type PlainFormatter struct{}

func (PlainFormatter) Format(w io.Writer, res *models.AnalysisResult) error {
	_, err := io.WriteString(w, Render(res))
	return err
}

// Render returns the plain report as a string.
func Render(res *models.AnalysisResult) string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n\n")

	theme := models.Undetermined
	if res != nil {
		for _, s := range res.Stats {
			fmt.Fprintf(&sb, "%s - %s: %d\n", s.Theme, s.Keyword, s.Count)
		}
		if res.Determined {
			theme = res.Theme
		}
	}

	sb.WriteString("\n")
	sb.WriteString(FooterPrefix)
	sb.WriteString(theme)
	return sb.String()
}
