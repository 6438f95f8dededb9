package analyze

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/theme-analyzer/internal/common"
	"github.com/dtnitsch/theme-analyzer/models"
	"github.com/dtnitsch/theme-analyzer/pkg/detector"
	"github.com/dtnitsch/theme-analyzer/pkg/report"
	"github.com/dtnitsch/theme-analyzer/pkg/storage"
)

// Exit codes.
const (
	exitUsage = 1
	exitIO    = 2
)

// Command returns the analyze command.
func Command() *cli.Command {
	flags := append(common.KeywordSourceFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Report format: plain, json or yaml",
			Value:   models.DefaultFormat,
		},
		&cli.StringFlag{
			Name:  "normalize",
			Usage: "Text normalization before matching: lower, nfc or fold",
			Value: string(models.NormalizeLower),
		},
		&cli.BoolFlag{
			Name:  "readability",
			Usage: "For HTML sources, analyze only the main article",
		},
		&cli.DurationFlag{
			Name:  "fetch-timeout",
			Usage: "Timeout for URL text sources",
			Value: models.DefaultFetchTimeout,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the report to a file instead of stdout",
		},
	)

	return &cli.Command{
		Name:      "analyze",
		Usage:     "Detect the theme of a text by counting theme keywords",
		ArgsUsage: "<text-file | - | URL>",
		Flags:     flags,
		Action:    AnalyzeAction,
	}
}

func AnalyzeAction(c *cli.Context) error {
	logger := common.Logger(c).With("run_id", uuid.NewString())

	if c.NArg() != 1 {
		return cli.Exit("exactly one text source is required (a file path, '-' for stdin, or a URL)", exitUsage)
	}
	source := c.Args().First()

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return cli.Exit(err, exitUsage)
	}
	format, err := report.ParseFormatType(cfg.Format)
	if err != nil {
		return cli.Exit(err, exitUsage)
	}

	obs := common.NewSlogObserver(logger)

	km, err := common.LoadKeywordMap(cfg, obs, logger)
	if err != nil {
		logger.Error("failed to load keywords", "error", err)
		return cli.Exit(err, exitIO)
	}

	reader := &TextReader{Storage: &storage.Storage{Stdin: c.App.Reader}, Config: cfg}
	text, err := reader.Read(c.Context, source)
	if err != nil {
		logger.Error("failed to read text source", "source", source, "error", err)
		return cli.Exit(err, exitIO)
	}
	logger.Info("text loaded", "source", source, "size", humanize.Bytes(uint64(len(text))))
	if source != "-" && !common.IsURL(source) {
		if stats, err := reader.Storage.GetFileStats(source); err == nil {
			logger.Debug("text file stats",
				"path", source,
				"file_size", humanize.Bytes(uint64(stats.SizeBytes)),
				"modified", humanize.Time(stats.ModTime),
			)
		}
	}

	d := detector.New(
		detector.WithObserver(obs),
		detector.WithNormalizeMode(cfg.Normalize),
	)
	res, err := d.Analyze(text, km)
	if errors.Is(err, detector.ErrKeywordsNotLoaded) {
		fmt.Fprintln(c.App.Writer, report.MsgKeywordsNotLoaded)
		return cli.Exit("", exitUsage)
	}
	if err != nil {
		return cli.Exit(err, exitUsage)
	}

	return writeReport(c, res, format, logger)
}

func writeReport(c *cli.Context, res *models.AnalysisResult, format report.FormatType, logger *slog.Logger) error {
	var buf bytes.Buffer
	if err := report.NewFormatter(format).Format(&buf, res); err != nil {
		return cli.Exit(fmt.Errorf("failed to format report: %w", err), exitIO)
	}
	if format == report.FormatPlain {
		buf.WriteString("\n")
	}

	if out := c.String("output"); out != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(out, buf.Bytes()); err != nil {
			return cli.Exit(err, exitIO)
		}
		logger.Info("report saved", "path", out, "size", humanize.Bytes(uint64(buf.Len())))
		return nil
	}

	_, err := io.Copy(c.App.Writer, &buf)
	return err
}
