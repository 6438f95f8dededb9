package keywords

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/theme-analyzer/internal/common"
	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/db"
)

// errEmptyKeywords is returned by import when the source defines no themes.
var errEmptyKeywords = errors.New("no keyword definitions found")

// ThemeEntry is one theme as printed by 'keywords show'.
type ThemeEntry struct {
	Theme    string   `yaml:"theme"`
	Keywords []string `yaml:"keywords,flow"`
}

// Command returns the keywords command and its subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "keywords",
		Usage: "Inspect and import keyword definitions",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print the loaded keyword map as YAML",
				Flags:  common.KeywordSourceFlags(),
				Action: ShowAction,
			},
			{
				Name:  "import",
				Usage: "Import a keyword file into a SQLite keyword database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "keywords",
						Aliases: []string{"k"},
						Usage:   "Keyword file to import",
						Value:   models.DefaultKeywordsPath,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Keyword database to write",
						Value: db.DefaultDBName,
					},
				},
				Action: ImportAction,
			},
		},
	}
}

func ShowAction(c *cli.Context) error {
	logger := common.Logger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	km, err := common.LoadKeywordMap(cfg, common.NewSlogObserver(logger), logger)
	if err != nil {
		return cli.Exit(err, 2)
	}

	if cfg.KeywordsDB != "" {
		if err := logLatestImport(cfg.KeywordsDB, logger); err != nil {
			logger.Warn("failed to read import history", "error", err)
		}
	}

	entries := make([]ThemeEntry, 0, km.Len())
	for _, theme := range km.Themes() {
		entries = append(entries, ThemeEntry{Theme: theme, Keywords: km.Keywords(theme)})
	}

	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}
	return enc.Close()
}

func logLatestImport(path string, logger *slog.Logger) error {
	database, err := db.Open(path)
	if err != nil {
		return err
	}
	defer database.Close()

	imp, err := database.LatestImport()
	if err != nil || imp == nil {
		return err
	}
	logger.Info("keyword database",
		"path", database.Path(),
		"source", imp.Source,
		"imported", humanize.Time(imp.ImportedAt),
	)
	return nil
}

func ImportAction(c *cli.Context) error {
	logger := common.Logger(c)
	src := c.String("keywords")

	cfg := models.DefaultConfig()
	cfg.KeywordsPath = src
	km, err := common.LoadKeywordMap(cfg, common.NewSlogObserver(logger), logger)
	if err != nil {
		return cli.Exit(err, 2)
	}
	if km.IsEmpty() {
		return cli.Exit(fmt.Errorf("%w in %s", errEmptyKeywords, src), 1)
	}

	database, err := db.Open(c.String("db"))
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to open keyword database: %w", err), 2)
	}
	defer database.Close()

	if err := database.ImportKeywordMap(km, src); err != nil {
		return cli.Exit(err, 2)
	}

	fmt.Fprintf(c.App.Writer, "imported %d themes (%d keywords) into %s\n", km.Len(), km.KeywordCount(), database.Path())
	return nil
}
