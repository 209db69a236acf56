package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/fedoco/apple-slicer/internal/config"
	"github.com/fedoco/apple-slicer/internal/entity"
	"github.com/fedoco/apple-slicer/internal/export"
	"github.com/fedoco/apple-slicer/internal/rates"
	"github.com/fedoco/apple-slicer/internal/render"
	"github.com/fedoco/apple-slicer/internal/sales"
	"github.com/fedoco/apple-slicer/internal/slicer"
)

func main() {
	app := &cli.App{
		Name:  "slicer",
		Usage: "split App Store Connect financial reports by accountable Apple legal entity",
		Description: "Parses the financial reports (*.txt) in the given directory together with the " +
			"matching currency data file and prints sales grouped by the Apple subsidiary " +
			"legally accountable for them, for Reverse Charge invoicing and EU Recapitulative Statements.",
		ArgsUsage: "<directory>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-subtotals",
				Usage: "omit printing of subtotal for each country",
			},
			&cli.BoolFlag{
				Name:  "only-subtotals",
				Usage: "only print subtotal for each country (i.e. skip per product conversion)",
			},
			&cli.BoolFlag{
				Name:  "precise",
				Usage: "format all amounts with 4 decimal places",
			},
			&cli.StringFlag{
				Name:  "currency",
				Usage: "ISO `CODE` of the local currency to convert foreign sales into",
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "BCP 47 `TAG` used for formatting dates and amounts",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "write a filing summary workbook to the xlsx `FILE`",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "slicer:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one argument: the report directory")
	}
	if c.Bool("no-subtotals") && c.Bool("only-subtotals") {
		return errors.New("--no-subtotals and --only-subtotals are mutually exclusive")
	}
	dir := c.Args().First()

	cfg := config.Load()
	if c.IsSet("currency") {
		cfg.LocalCurrency = c.String("currency")
	}
	if c.IsSet("locale") {
		cfg.Locale = c.String("locale")
	}

	// The currency summary is validated first so that a pending or malformed
	// report aborts the run before any sales file is scanned.
	table, err := rates.ParseFile(filepath.Join(dir, cfg.RateFileName))
	if err != nil {
		return err
	}

	data, err := sales.ParseDir(dir, cfg.RateFileName)
	if err != nil {
		return err
	}

	directory := entity.NewDirectory()
	allocation, err := slicer.Allocate(data, table, directory, cfg.LocalCurrency)
	if err != nil {
		return err
	}

	printer, err := render.NewPrinter(os.Stdout, cfg.Locale, render.Options{
		NoSubtotals:   c.Bool("no-subtotals"),
		OnlySubtotals: c.Bool("only-subtotals"),
		Precise:       c.Bool("precise"),
	})
	if err != nil {
		return err
	}
	if err := printer.Print(allocation); err != nil {
		return err
	}

	if path := c.String("export"); path != "" {
		if err := export.WriteWorkbook(path, allocation); err != nil {
			return err
		}
	}

	return nil
}
