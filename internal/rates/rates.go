package rates

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fedoco/apple-slicer/internal/domain"
)

// ErrPendingReport indicates a currency summary of a pending month. Such
// reports contain estimated figures and must not be used for invoicing.
var ErrPendingReport = errors.New("pending month's report contains estimated figures")

// ErrColumnCount indicates a header row with an unexpected column count.
var ErrColumnCount = errors.New("invalid column count")

// ErrNoCurrencyCode indicates a data row whose label lacks a currency code.
var ErrNoCurrencyCode = errors.New("no valid currency code")

// Record holds the conversion data derived for one currency key.
type Record struct {
	// ExchangeRate is the amount of local currency paid out per unit of the
	// record's currency.
	ExchangeRate decimal.Decimal
	// TaxFactor is the fraction of a gross amount retained after local tax
	// withholding, in [0,1].
	TaxFactor decimal.Decimal
	// Adjustment is a one-time correction in the record's own currency,
	// to be applied once per run.
	Adjustment decimal.Decimal
}

// Identity is the record used for amounts that need no conversion:
// exchange rate 1, no withholding, no adjustment.
var Identity = Record{ExchangeRate: decimal.New(1, 0), TaxFactor: decimal.New(1, 0)}

// Table maps currency keys to their conversion records.
type Table map[string]Record

// layout holds the numeric column indices of a currency summary. Reports
// carrying below-threshold earnings have an extra "Balance" column in row 3
// which shifts every numeric column right by one.
type layout struct {
	preTax     int
	adjustment int
	postTax    int
	earnings   int
}

var (
	plainLayout   = layout{preTax: 3, adjustment: 4, postTax: 7, earnings: 9}
	balanceLayout = layout{preTax: 4, adjustment: 5, postTax: 8, earnings: 10}
)

var currencyCodeRegex = regexp.MustCompile(`\(([A-Z]{3})\)$`)

// ParseFile parses the currency summary file at the given path.
func ParseFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("exchange rates data file missing: %q "+
			`(download it from App Store Connect's "Payments & Financial Reports" page): %w`, path, err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a comma-delimited currency summary and derives a Record per
// currency. The exchange rate is calculated from the earnings and post-tax
// columns instead of the report's own "Exchange Rate" column, whose value
// is rounded to 6 decimal places and sometimes not precise enough.
//
// Rows are split line by line so that a fully blank separator line still
// reaches the terminator check below and the physical line count driving
// the row 3 layout switch stays honest.
func Parse(r io.Reader) (Table, error) {
	scanner := bufio.NewScanner(r)

	table := Table{}
	cols := plainLayout
	line := 0

	for scanner.Scan() {
		line++
		fields, err := splitRow(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		// The column count of row 1 identifies the report variant. A pending
		// month's report has 10 columns and only estimated figures.
		if line == 1 {
			if len(fields) == 10 {
				return nil, ErrPendingReport
			}
			if len(fields) != 13 {
				return nil, fmt.Errorf("%w: %d in row 1", ErrColumnCount, len(fields))
			}
		}

		// Row 3 has a "Balance" column if the report contains earnings that
		// haven't surpassed the origin country's payout threshold; its width
		// selects the column layout for the rest of the file.
		if line == 3 {
			switch len(fields) {
			case 12:
				cols = plainLayout
			case 13:
				cols = balanceLayout
			default:
				return nil, fmt.Errorf("%w: %d in row 3", ErrColumnCount, len(fields))
			}
		}

		// Financial data starts at row 4.
		if line < 4 {
			continue
		}

		// The first blank row terminates the data: below it reports list
		// earnings which haven't surpassed the payout threshold.
		if len(fields) == 0 || fields[0] == "" {
			break
		}

		key, err := currencyKey(fields[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		record, ok, err := deriveRecord(fields, cols, key)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", line, key, err)
		}
		if !ok {
			continue
		}
		table[key] = record
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading currency summary: %w", err)
	}

	return table, nil
}

// splitRow parses one physical line as a CSV record. A blank line yields
// an empty record rather than being swallowed, as encoding/csv would do
// when fed the whole file.
func splitRow(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	return reader.Read()
}

// currencyKey extracts the currency code from a row label and resolves the
// ambiguous USD code into a composite key when the label names the
// "Rest of World" region.
func currencyKey(label string) (string, error) {
	m := currencyCodeRegex.FindStringSubmatch(label)
	if m == nil {
		return "", fmt.Errorf("%w in label %q", ErrNoCurrencyCode, label)
	}
	code := m[1]
	if code == domain.USD && domain.IsRestOfWorldLabel(label) {
		return domain.USDRestOfWorld, nil
	}
	return code, nil
}

// deriveRecord computes the conversion record from one data row. It returns
// ok=false for rows that cannot yield an exchange rate (tax withheld with no
// sales in the same period); those are surfaced as warnings, not errors.
func deriveRecord(fields []string, cols layout, key string) (Record, bool, error) {
	if len(fields) <= cols.earnings {
		return Record{}, false, fmt.Errorf("%w: %d", ErrColumnCount, len(fields))
	}

	preTax, err := domain.ParseAmount(fields[cols.preTax])
	if err != nil {
		return Record{}, false, err
	}
	adjustment, err := domain.ParseAmount(fields[cols.adjustment])
	if err != nil {
		return Record{}, false, err
	}
	postTax, err := domain.ParseAmount(fields[cols.postTax])
	if err != nil {
		return Record{}, false, err
	}
	earnings, err := domain.ParseAmount(fields[cols.earnings])
	if err != nil {
		return Record{}, false, err
	}

	// Tax withheld without sales in the same period: no exchange rate can be
	// derived, so the row cannot enter the table.
	if preTax.IsZero() && !postTax.IsZero() {
		slog.Warn("tax withheld without matching sales, excluding currency from rate table",
			"currency", key, "postTax", postTax.String())
		return Record{}, false, nil
	}

	one := decimal.New(1, 0)

	// No payout for this currency: force a zero rate so the currency cannot
	// distort totals.
	if postTax.IsZero() {
		return Record{ExchangeRate: decimal.Zero, TaxFactor: one, Adjustment: adjustment}, true, nil
	}

	taxFactor := one.Sub(preTax.Sub(postTax).Div(preTax).Abs())

	return Record{
		ExchangeRate: earnings.Div(postTax),
		TaxFactor:    taxFactor,
		Adjustment:   adjustment,
	}, true, nil
}

// Resolve returns the conversion record for a currency key. The local
// currency and any key absent from the table resolve to the identity
// record: the amount is already in local currency, with no withholding.
func (t Table) Resolve(key, localCurrency string) Record {
	if key == localCurrency {
		return Identity
	}
	if record, ok := t[key]; ok {
		return record
	}
	return Identity
}
