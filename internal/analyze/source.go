package analyze

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/theme-analyzer/internal/common"
	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/fetcher"
	"github.com/dtnitsch/theme-analyzer/pkg/parser"
	"github.com/dtnitsch/theme-analyzer/pkg/storage"
)

// TextReader resolves a text source argument to the text that is analyzed.
// HTML files and HTML responses are reduced to their visible text.
type TextReader struct {
	Storage *storage.Storage
	Config  *models.Config
}

func (r *TextReader) Read(ctx context.Context, source string) (string, error) {
	p := &parser.Parser{Readability: r.Config.Readability}

	if common.IsURL(source) {
		pageURL := common.SanitizeURL(source)
		doc, err := fetcher.NewFetcher(time.Duration(r.Config.FetchTimeout)).Get(ctx, pageURL)
		if err != nil {
			return "", err
		}
		if parser.IsHTMLContentType(doc.ContentType) {
			return p.ExtractText(doc.URL, string(doc.Body))
		}
		return string(doc.Body), nil
	}

	text, err := r.Storage.ReadText(source)
	if errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("text %w", err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	if parser.IsHTMLPath(source) {
		return p.ExtractText("", text)
	}
	return text, nil
}
