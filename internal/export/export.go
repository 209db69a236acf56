package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/fedoco/apple-slicer/internal/slicer"
)

// Summary is the figure set handed to the external tax-filing workflow:
// the revenue attributable to Apple's EU subsidiary for the assessment
// year, as needed for the EU Recapitulative Statement.
type Summary struct {
	AssessmentYear int
	EUTotal        decimal.Decimal
	DateStart      string
	DateEnd        string
}

// BuildSummary derives the filing summary from an allocation. The
// assessment year is taken from the reporting period's start date.
func BuildSummary(a slicer.Allocation) (Summary, error) {
	start, err := time.Parse("01/02/2006", a.DateRange.Start)
	if err != nil {
		return Summary{}, fmt.Errorf("invalid report start date %q: %w", a.DateRange.Start, err)
	}
	return Summary{
		AssessmentYear: start.Year(),
		EUTotal:        a.EUTotal(),
		DateStart:      a.DateRange.Start,
		DateEnd:        a.DateRange.End,
	}, nil
}

// WriteWorkbook writes the allocation summary as an xlsx workbook: a
// Summary sheet with the filing figures and an Entities sheet with the
// per-subsidiary totals.
func WriteWorkbook(path string, a slicer.Allocation) error {
	summary, err := BuildSummary(a)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	// Totals are written as exact decimal strings: a binary-float cell
	// could round-trip a filing figure inexactly.
	rows := [][]interface{}{
		{"Sales date", summary.DateStart + " - " + summary.DateEnd},
		{"Assessment year", summary.AssessmentYear},
		{"Local currency", a.LocalCurrency},
		{"EU total", summary.EUTotal.String()},
	}
	if err := writeRows(f, summarySheet, rows); err != nil {
		return err
	}

	const entitySheet = "Entities"
	if _, err := f.NewSheet(entitySheet); err != nil {
		return fmt.Errorf("creating entity sheet: %w", err)
	}

	entityRows := [][]interface{}{{"Entity", "Countries", "Total in " + a.LocalCurrency}}
	for _, ea := range a.Entities {
		codes := make([]string, 0, len(ea.Countries))
		for _, c := range ea.Countries {
			codes = append(codes, c.Code)
		}
		entityRows = append(entityRows, []interface{}{
			string(ea.Entity), strings.Join(codes, " "), ea.Total.String(),
		})
	}
	if err := writeRows(f, entitySheet, entityRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell := "A" + strconv.Itoa(i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
