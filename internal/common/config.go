package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/db"
	"github.com/dtnitsch/theme-analyzer/pkg/keywords"
)

// GlobalFlags are accepted by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to a YAML or TOML config file",
			EnvVars: []string{"THEME_ANALYZER_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log every loaded theme and keyword match",
		},
	}
}

// KeywordSourceFlags select where keywords are read from.
func KeywordSourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "keywords",
			Aliases: []string{"k"},
			Usage:   "Keyword file with one 'theme=kw1, kw2' definition per line",
			Value:   models.DefaultKeywordsPath,
			EnvVars: []string{"THEME_ANALYZER_KEYWORDS"},
		},
		&cli.StringFlag{
			Name:    "keywords-db",
			Usage:   "SQLite keyword database created by 'keywords import'; takes precedence over --keywords",
			EnvVars: []string{"THEME_ANALYZER_KEYWORDS_DB"},
		},
	}
}

// Logger builds the logger for the current command from the global flags.
func Logger(c *cli.Context) *slog.Logger {
	return NewLogger(c.App.ErrWriter, c.Bool("quiet"), c.Bool("verbose"))
}

// ResolveConfig loads the config file named by --config and applies every
// flag that was set explicitly on top of it.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("keywords") {
		cfg.KeywordsPath = c.String("keywords")
	}
	if c.IsSet("keywords-db") {
		cfg.KeywordsDB = c.String("keywords-db")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("normalize") {
		mode, err := models.ParseNormalizeMode(c.String("normalize"))
		if err != nil {
			return nil, err
		}
		cfg.Normalize = mode
	}
	if c.IsSet("readability") {
		cfg.Readability = c.Bool("readability")
	}
	if c.IsSet("fetch-timeout") {
		cfg.FetchTimeout = models.Duration(c.Duration("fetch-timeout"))
	}

	return cfg, nil
}

// LoadKeywordMap reads the keyword source selected by cfg.
func LoadKeywordMap(cfg *models.Config, obs keywords.Observer, logger *slog.Logger) (*models.KeywordMap, error) {
	if cfg.KeywordsDB != "" {
		if _, err := os.Stat(cfg.KeywordsDB); err != nil {
			return nil, fmt.Errorf("failed to open keyword database: %w", err)
		}
		database, err := db.Open(cfg.KeywordsDB)
		if err != nil {
			return nil, fmt.Errorf("failed to open keyword database: %w", err)
		}
		defer database.Close()

		km, err := database.LoadKeywordMap()
		if err != nil {
			return nil, err
		}
		logger.Info("loaded keywords", "source", database.Path(), "themes", km.Len(), "keywords", km.KeywordCount())
		return km, nil
	}

	km, err := keywords.Load(cfg.KeywordsPath, obs)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded keywords", "source", cfg.KeywordsPath, "themes", km.Len(), "keywords", km.KeywordCount())
	return km, nil
}
