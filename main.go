package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/theme-analyzer/internal/analyze"
	"github.com/dtnitsch/theme-analyzer/internal/common"
	"github.com/dtnitsch/theme-analyzer/internal/keywords"
	"github.com/dtnitsch/theme-analyzer/pkg/help"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "theme-analyzer",
		Usage: "Detect the theme of a text from per-theme keyword counts",
		Flags: common.GlobalFlags(),
		Commands: []*cli.Command{
			analyze.Command(),
			keywords.Command(),
			help.Command(),
		},
	}
}
