package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"titleheat/internal/build"
	"titleheat/internal/query"
	"titleheat/pkg/db"
)

func main() {
	app := &cli.App{
		Name:  "titleheat",
		Usage: "build and query the title-word vs runtime heatmap dataset",
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "load a CSV title table, enrich it and write the cell dataset",
				Action: build.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "path to the CSV title table"},
					&cli.StringFlag{Name: "config", Value: "words.yaml", Usage: "vocabulary and category config"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "dataset.json", Usage: "where to write the dataset artifact"},
					&cli.StringFlag{Name: "db", Value: db.DefaultDBName, Usage: "lookup cache database path"},
					&cli.StringFlag{Name: "tmdb-token", EnvVars: []string{"TMDB_API_TOKEN"}, Usage: "TMDB API read access token"},
					&cli.BoolFlag{Name: "skip-enrich", Usage: "skip metadata lookups entirely"},
					&cli.BoolFlag{Name: "detect-language", Usage: "tag non-English title variants with their detected language"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
				},
			},
			{
				Name:   "cells",
				Usage:  "print the cell grid, optionally narrowed to one word or bucket",
				Action: query.CellsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dataset", Value: "dataset.json", Usage: "dataset artifact to read"},
					&cli.StringFlag{Name: "word", Usage: "only cells for this word (surface forms accepted)"},
					&cli.IntFlag{Name: "bucket", Usage: "only cells in this runtime bucket"},
					&cli.StringFlag{Name: "highlight", Usage: "comma-separated words to emphasise in titles"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
				},
			},
			{
				Name:   "category",
				Usage:  "print the flattened movie list for one category",
				Action: query.CategoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dataset", Value: "dataset.json", Usage: "dataset artifact to read"},
					&cli.StringFlag{Name: "config", Value: "words.yaml", Usage: "vocabulary and category config"},
					&cli.StringFlag{Name: "name", Required: true, Usage: "category name"},
					&cli.StringFlag{Name: "priority", Usage: "comma-separated external ids to pin to the front"},
					&cli.BoolFlag{Name: "highlight", Usage: "emphasise the category's words in titles"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
				},
			},
			{
				Name:   "range",
				Usage:  "print movies from cells whose average views is near a value",
				Action: query.RangeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dataset", Value: "dataset.json", Usage: "dataset artifact to read"},
					&cli.Float64Flag{Name: "value", Required: true, Usage: "view count to center the window on"},
					&cli.Float64Flag{Name: "tolerance", Usage: "window half-width (default: 5% of the spread of cell averages)"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
