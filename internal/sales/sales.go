package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fedoco/apple-slicer/internal/domain"
)

// ErrNoReports indicates that no sales data rows were found in the
// working directory.
var ErrNoReports = errors.New("no valid App Store Connect financial reports (*.txt) found")

// Fixed field positions of the tab-delimited financial report layout.
// These are a compatibility contract with App Store Connect, not
// configurable.
const (
	fieldDateStart = 0
	fieldDateEnd   = 1
	fieldQuantity  = 5
	fieldAmount    = 7
	fieldCurrency  = 8
	fieldProduct   = 12
	fieldCountry   = 17

	minFields = fieldCountry + 1
)

// reportFileRegex matches per-country financial report extracts such as
// "0815_0123456_1215_DE.txt".
var reportFileRegex = regexp.MustCompile(`.*_[A-Z][A-Z]\.txt$`)

// ProductSales accumulates the sales of one product within one country.
type ProductSales struct {
	Product  string
	Quantity int64
	Amount   decimal.Decimal
}

// CountrySales holds the accumulated sales of one country and the currency
// key in effect for it.
type CountrySales struct {
	Code     string
	Currency string
	Products []ProductSales

	productIndex map[string]int
}

// DateRange is the reporting period shared by all report files of a run,
// with dates in the report's MM/DD/YYYY form.
type DateRange struct {
	Start string
	End   string
}

// Data is the result of aggregating all financial reports of a working
// directory: per-country product sales in first-encounter order plus the
// authoritative reporting date range.
type Data struct {
	Countries []CountrySales
	DateRange DateRange

	countryIndex map[string]int
}

// Country returns the accumulated sales for a country code.
func (d *Data) Country(code string) (*CountrySales, bool) {
	i, ok := d.countryIndex[code]
	if !ok {
		return nil, false
	}
	return &d.Countries[i], true
}

// add accumulates one line item. Repeated (country, product) pairs sum
// their quantities and amounts; order of addition is immaterial.
func (d *Data) add(country, product string, quantity int64, amount decimal.Decimal) *CountrySales {
	if d.countryIndex == nil {
		d.countryIndex = map[string]int{}
	}
	i, ok := d.countryIndex[country]
	if !ok {
		i = len(d.Countries)
		d.countryIndex[country] = i
		d.Countries = append(d.Countries, CountrySales{Code: country, productIndex: map[string]int{}})
	}
	cs := &d.Countries[i]

	j, ok := cs.productIndex[product]
	if !ok {
		j = len(cs.Products)
		cs.productIndex[product] = j
		cs.Products = append(cs.Products, ProductSales{Product: product})
	}
	cs.Products[j].Quantity += quantity
	cs.Products[j].Amount = cs.Products[j].Amount.Add(amount)

	return cs
}

// ParseDir aggregates every financial report in the given directory.
// The currency summary file named rateFileName is skipped even though it
// lives in the same directory.
func ParseDir(dir, rateFileName string) (Data, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Data{}, fmt.Errorf("reading report directory: %w", err)
	}

	var data Data
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == rateFileName || !reportFileRegex.MatchString(name) {
			continue
		}
		if err := parseFile(filepath.Join(dir, name), name, &data); err != nil {
			return Data{}, err
		}
	}

	if len(data.Countries) == 0 {
		return Data{}, fmt.Errorf("%w in %s", ErrNoReports, dir)
	}

	return data, nil
}

// parseFile accumulates all data rows of a single report file into data.
func parseFile(path, name string, data *Data) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening report %s: %w", name, err)
	}
	defer f.Close()

	if err := parse(f, name, data); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// parse reads one tab-delimited report. A row is data only if its first
// field contains a date separator; header and total rows are skipped.
func parse(r io.Reader, filename string, data *Data) error {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	line := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		if len(fields) == 0 || !strings.Contains(fields[fieldDateStart], "/") {
			continue
		}
		if len(fields) < minFields {
			return fmt.Errorf("line %d: short data row with %d fields", line, len(fields))
		}

		// The first data row's dates are the authoritative reporting period,
		// assumed identical across all reports of the run.
		if data.DateRange == (DateRange{}) {
			data.DateRange = DateRange{Start: fields[fieldDateStart], End: fields[fieldDateEnd]}
		}

		quantity, err := strconv.ParseInt(fields[fieldQuantity], 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid quantity %q", line, fields[fieldQuantity])
		}
		amount, err := domain.ParseAmount(fields[fieldAmount])
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		cs := data.add(fields[fieldCountry], fields[fieldProduct], quantity, amount)

		// Countries in the "Rest of World" group list their currency as plain
		// USD although the matching exchange rate is keyed "USD - RoW"; the
		// report filename's region tag tells the two apart.
		currency := fields[fieldCurrency]
		if currency == domain.USD && domain.HasRestOfWorldHint(filename) {
			currency = domain.USDRestOfWorld
		}
		cs.Currency = currency
	}

	return nil
}
