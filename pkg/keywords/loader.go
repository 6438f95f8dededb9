// Package keywords loads theme keyword definitions from line-oriented sources.
//
// Each line has the form
//
//	theme=keyword one, keyword two, keyword three
//
// Lines without exactly one '=' are skipped, as are lines that end up with
// an empty theme name or no keywords. Skipping is never an error.
package keywords

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/theme-analyzer/models"
)

const maxLineBytes = 1 << 20

// Observer is notified about loader progress. Implementations must not block.
type Observer interface {
	ThemeLoaded(theme string, keywords int)
	LineSkipped(lineNo int, line string)
}

type nopObserver struct{}

func (nopObserver) ThemeLoaded(string, int) {}
func (nopObserver) LineSkipped(int, string) {}

// ParseLine parses a single keyword definition line.
func ParseLine(line string) (theme string, keywords []string, ok bool) {
	if strings.Count(line, "=") != 1 {
		return "", nil, false
	}
	lhs, rhs, _ := strings.Cut(line, "=")

	theme = strings.ToLower(strings.TrimSpace(lhs))
	if theme == "" {
		return "", nil, false
	}

	for _, kw := range strings.Split(strings.TrimSpace(rhs), ",") {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		keywords = append(keywords, kw)
	}
	if len(keywords) == 0 {
		return "", nil, false
	}
	return theme, keywords, true
}

// Parse reads keyword definitions from r until EOF.
func Parse(r io.Reader, obs Observer) (*models.KeywordMap, error) {
	if obs == nil {
		obs = nopObserver{}
	}

	km := models.NewKeywordMap()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		theme, kws, ok := ParseLine(line)
		if !ok {
			obs.LineSkipped(lineNo, line)
			continue
		}
		km.Set(theme, kws)
		obs.ThemeLoaded(theme, len(kws))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords at line %d: %w", lineNo+1, err)
	}

	return km, nil
}

// Load reads keyword definitions from the file at path.
func Load(path string, obs Observer) (*models.KeywordMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer f.Close()

	km, err := Parse(f, obs)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file %s: %w", path, err)
	}
	return km, nil
}
