package rates

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fedoco/apple-slicer/internal/domain"
)

// header returns a comma-delimited row with n placeholder columns.
func header(n int) string {
	fields := make([]string, n)
	for i := range fields {
		fields[i] = "h"
	}
	return strings.Join(fields, ",")
}

// dataRow builds one currency data row with the given numeric fields placed
// at the column positions of the selected layout.
func dataRow(label, preTax, adjustment, postTax, earnings string, balance bool) string {
	n, cols := 12, plainLayout
	if balance {
		n, cols = 13, balanceLayout
	}

	fields := make([]string, n)
	for i := range fields {
		fields[i] = "0"
	}
	fields[0] = label
	fields[cols.preTax] = preTax
	fields[cols.adjustment] = adjustment
	fields[cols.postTax] = postTax
	fields[cols.earnings] = earnings

	for i, f := range fields {
		if strings.Contains(f, ",") {
			fields[i] = `"` + f + `"`
		}
	}
	return strings.Join(fields, ",")
}

// rateFile assembles a currency summary: 13-column header in row 1, a title
// row, the layout-defining row 3 and then the given data rows.
func rateFile(balance bool, rows ...string) string {
	row3 := header(12)
	if balance {
		row3 = header(13)
	}
	lines := append([]string{header(13), "Payments and amounts owed", row3}, rows...)
	return strings.Join(lines, "\n") + "\n"
}

func mustParse(t *testing.T, content string) Table {
	t.Helper()
	table, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return table
}

func TestParseDerivesRateAndTaxFactor(t *testing.T) {
	table := mustParse(t, rateFile(false,
		dataRow("Japan (JPY)", "100", "0", "90", "81", false),
	))

	record, ok := table["JPY"]
	if !ok {
		t.Fatal("JPY missing from table")
	}
	// rate = earnings / post-tax, not the report's rounded rate column
	if !record.ExchangeRate.Equal(decimal.RequireFromString("0.9")) {
		t.Errorf("ExchangeRate = %s, want 0.9", record.ExchangeRate)
	}
	// factor = 1 - |pre - post| / pre
	if !record.TaxFactor.Equal(decimal.RequireFromString("0.9")) {
		t.Errorf("TaxFactor = %s, want 0.9", record.TaxFactor)
	}
}

func TestParseNoWithholding(t *testing.T) {
	table := mustParse(t, rateFile(false,
		dataRow("Switzerland (CHF)", "120.00", "0.00", "120.00", "110.40", false),
	))

	record := table["CHF"]
	if !record.TaxFactor.Equal(decimal.New(1, 0)) {
		t.Errorf("TaxFactor = %s, want 1", record.TaxFactor)
	}
	if !record.ExchangeRate.Equal(decimal.RequireFromString("0.92")) {
		t.Errorf("ExchangeRate = %s, want 0.92", record.ExchangeRate)
	}
}

func TestParseThousandsSeparators(t *testing.T) {
	table := mustParse(t, rateFile(false,
		dataRow("Japan (JPY)", "1,000,000.00", "0.00", "1,000,000.00", "7,400.00", false),
	))

	record := table["JPY"]
	if !record.ExchangeRate.Equal(decimal.RequireFromString("0.0074")) {
		t.Errorf("ExchangeRate = %s, want 0.0074", record.ExchangeRate)
	}
}

func TestParseAdjustment(t *testing.T) {
	table := mustParse(t, rateFile(false,
		dataRow("Americas (USD)", "100.00", "-5.00", "100.00", "92.00", false),
	))

	if !table["USD"].Adjustment.Equal(decimal.RequireFromString("-5")) {
		t.Errorf("Adjustment = %s, want -5", table["USD"].Adjustment)
	}
}

func TestParseUSDRegions(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"english", "Rest of World (USD)"},
		{"french", "Reste du monde (USD)"},
		{"german", "Rest der Welt (USD)"},
		{"italian", "Resto del mondo (USD)"},
		{"spanish", "Resto del mundo (USD)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := mustParse(t, rateFile(false,
				dataRow("Americas (USD)", "100", "0", "100", "92", false),
				dataRow(tt.label, "100", "0", "100", "85", false),
			))

			if len(table) != 2 {
				t.Fatalf("table has %d entries, want 2", len(table))
			}
			if !table[domain.USD].ExchangeRate.Equal(decimal.RequireFromString("0.92")) {
				t.Errorf("USD rate = %s, want 0.92", table[domain.USD].ExchangeRate)
			}
			if !table[domain.USDRestOfWorld].ExchangeRate.Equal(decimal.RequireFromString("0.85")) {
				t.Errorf("USD - RoW rate = %s, want 0.85", table[domain.USDRestOfWorld].ExchangeRate)
			}
		})
	}
}

// Parsing the same data under the 12- and 13-column layouts must yield
// identical records: the balance column only shifts the numeric columns.
func TestParseBalanceColumnShift(t *testing.T) {
	plain := mustParse(t, rateFile(false,
		dataRow("Japan (JPY)", "100", "-1.50", "90", "81", false),
		dataRow("Euro-Zone (EUR)", "50", "0", "50", "50", false),
	))
	shifted := mustParse(t, rateFile(true,
		dataRow("Japan (JPY)", "100", "-1.50", "90", "81", true),
		dataRow("Euro-Zone (EUR)", "50", "0", "50", "50", true),
	))

	if len(plain) != len(shifted) {
		t.Fatalf("table sizes differ: %d vs %d", len(plain), len(shifted))
	}
	for key, want := range plain {
		got, ok := shifted[key]
		if !ok {
			t.Fatalf("%s missing from shifted table", key)
		}
		if !got.ExchangeRate.Equal(want.ExchangeRate) || !got.TaxFactor.Equal(want.TaxFactor) ||
			!got.Adjustment.Equal(want.Adjustment) {
			t.Errorf("%s: records differ: %+v vs %+v", key, got, want)
		}
	}
}

func TestParsePendingReport(t *testing.T) {
	_, err := Parse(strings.NewReader(header(10) + "\n"))
	if !errors.Is(err, ErrPendingReport) {
		t.Fatalf("error = %v, want ErrPendingReport", err)
	}
}

func TestParseInvalidHeaderColumnCount(t *testing.T) {
	_, err := Parse(strings.NewReader(header(12) + "\n"))
	if !errors.Is(err, ErrColumnCount) {
		t.Fatalf("error = %v, want ErrColumnCount", err)
	}
}

func TestParseInvalidRow3ColumnCount(t *testing.T) {
	content := strings.Join([]string{header(13), "title", header(11)}, "\n")
	_, err := Parse(strings.NewReader(content))
	if !errors.Is(err, ErrColumnCount) {
		t.Fatalf("error = %v, want ErrColumnCount", err)
	}
}

func TestParseMissingCurrencyCode(t *testing.T) {
	_, err := Parse(strings.NewReader(rateFile(false,
		dataRow("Americas", "100", "0", "100", "92", false),
	)))
	if !errors.Is(err, ErrNoCurrencyCode) {
		t.Fatalf("error = %v, want ErrNoCurrencyCode", err)
	}
}

func TestParseNonNumericAmount(t *testing.T) {
	_, err := Parse(strings.NewReader(rateFile(false,
		dataRow("Americas (USD)", "abc", "0", "100", "92", false),
	)))
	if err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
}

// Tax withheld without matching sales: the row cannot yield an exchange
// rate, so it is skipped with a warning while the rest of the file parses.
func TestParseTaxWithheldWithoutSales(t *testing.T) {
	table := mustParse(t, rateFile(false,
		dataRow("Japan (JPY)", "0.00", "0.00", "-13.16", "0.00", false),
		dataRow("Euro-Zone (EUR)", "50", "0", "50", "50", false),
	))

	if _, ok := table["JPY"]; ok {
		t.Error("JPY should be excluded from the table")
	}
	if _, ok := table["EUR"]; !ok {
		t.Error("EUR should still be parsed")
	}
}

func TestParseZeroPostTax(t *testing.T) {
	table := mustParse(t, rateFile(false,
		dataRow("Japan (JPY)", "0.00", "0.00", "0.00", "0.00", false),
	))

	record := table["JPY"]
	if !record.ExchangeRate.IsZero() {
		t.Errorf("ExchangeRate = %s, want 0", record.ExchangeRate)
	}
	if !record.TaxFactor.Equal(decimal.New(1, 0)) {
		t.Errorf("TaxFactor = %s, want 1", record.TaxFactor)
	}
}

// Reports list below-threshold earnings after a blank separator row; those
// rows are not data and must not be parsed.
func TestParseStopsAtBlankRow(t *testing.T) {
	blank := strings.Repeat(",", 11)
	table := mustParse(t, rateFile(false,
		dataRow("Euro-Zone (EUR)", "50", "0", "50", "50", false),
		blank,
		dataRow("Mexico (MXN)", "10", "0", "10", "0.50", false),
	))

	if _, ok := table["MXN"]; ok {
		t.Error("below-threshold MXN row should be ignored")
	}
	if len(table) != 1 {
		t.Errorf("table has %d entries, want 1", len(table))
	}
}

// Some summaries separate the below-threshold section with a zero-byte
// line instead of a comma-filled one; it must terminate the feed all the
// same, or below-threshold figures would overwrite genuine records.
func TestParseStopsAtFullyBlankLine(t *testing.T) {
	table := mustParse(t, rateFile(false,
		dataRow("Euro-Zone (EUR)", "50", "0", "50", "50", false),
		"",
		dataRow("Mexico (MXN)", "10", "0", "10", "0.50", false),
	))

	if _, ok := table["MXN"]; ok {
		t.Error("below-threshold MXN row should be ignored")
	}
	if _, ok := table["EUR"]; !ok {
		t.Error("EUR row before the separator should be parsed")
	}
}

func TestResolve(t *testing.T) {
	table := Table{
		"JPY": {ExchangeRate: decimal.RequireFromString("0.0074"), TaxFactor: decimal.RequireFromString("0.9")},
		"EUR": {ExchangeRate: decimal.RequireFromString("2"), TaxFactor: decimal.RequireFromString("0.5")},
	}

	// local currency resolves to identity even when listed
	if got := table.Resolve("EUR", "EUR"); !got.ExchangeRate.Equal(decimal.New(1, 0)) {
		t.Errorf("Resolve(EUR, EUR).ExchangeRate = %s, want 1", got.ExchangeRate)
	}
	// missing key resolves to identity
	if got := table.Resolve("GBP", "EUR"); !got.TaxFactor.Equal(decimal.New(1, 0)) {
		t.Errorf("Resolve(GBP, EUR).TaxFactor = %s, want 1", got.TaxFactor)
	}
	// present key resolves to its record
	if got := table.Resolve("JPY", "EUR"); !got.TaxFactor.Equal(decimal.RequireFromString("0.9")) {
		t.Errorf("Resolve(JPY, EUR).TaxFactor = %s, want 0.9", got.TaxFactor)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("testdata/does_not_exist.csv")
	if err == nil {
		t.Fatal("expected error for missing rate file")
	}
	if !strings.Contains(err.Error(), "App Store Connect") {
		t.Errorf("error should point at the download page, got: %v", err)
	}
}
