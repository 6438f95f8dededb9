package help

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const ColdstartYAML = `# theme-analyzer Quick Start

keyword_file:
  format: "theme=keyword1, keyword2, ..."
  rules:
    - "One theme per line, exactly one '=' per line"
    - "Theme names are case-insensitive and stored lowercase"
    - "Keywords keep their spelling in reports, matching ignores case"
    - "Lines without a theme or without keywords are skipped"
    - "A repeated theme replaces the earlier keyword list"
  example: |
    спорт=мяч, гол, матч
    технологии=процессор, смартфон

formats:
  plain: "Human readable report (default)"
  json: "Stats, totals and theme ranking as JSON"
  yaml: "Same as json, as YAML"

normalize_modes:
  lower: "Lowercase only (default)"
  nfc: "Unicode NFC, then lowercase"
  fold: "Strip accents, then lowercase"

commands:
  analyze_file: |
    theme-analyzer analyze --keywords keywords.txt text.txt

  analyze_stdin: |
    cat text.txt | theme-analyzer analyze -k keywords.txt -

  analyze_url: |
    theme-analyzer analyze -k keywords.txt --readability "https://example.com/article"

  json_report: |
    theme-analyzer analyze -k keywords.txt --format json -o result.json text.txt

  show_keywords: |
    theme-analyzer keywords show -k keywords.txt

  import_keywords: |
    theme-analyzer keywords import -k keywords.txt --db keywords.db
    theme-analyzer analyze --keywords-db keywords.db text.txt

config_file:
  flag: "--config theme-analyzer.yaml (or .toml)"
  env: "THEME_ANALYZER_CONFIG"
  example: |
    keywords: keywords.txt
    format: plain
    normalize: lower
    readability: false
    fetch_timeout: 30s

matching:
  - "Keywords are counted as substrings, not whole words"
  - "Occurrences do not overlap: 'aa' occurs once in 'aaa'"
  - "A theme scores the sum of its keyword counts"
  - "Ties go to the theme defined first"
  - "No matches: 'Тематика не определена'"

error_behavior:
  - "Missing keyword or text file: exit 2"
  - "No keywords loaded: 'Ошибка: ключевые слова не загружены.', exit 1"
  - "Exit codes: 0=success, 1=usage error, 2=I/O error"
`

// Command returns the coldstart command, which prints the quick start guide.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "coldstart",
		Usage: "Print a quick start guide as YAML",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprint(c.App.Writer, ColdstartYAML)
			return err
		},
	}
}
