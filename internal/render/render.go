package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/fedoco/apple-slicer/internal/domain"
	"github.com/fedoco/apple-slicer/internal/slicer"
)

// Options control the report layout and formatting precision.
type Options struct {
	// NoSubtotals omits the per-country subtotal lines.
	NoSubtotals bool
	// OnlySubtotals prints country subtotals only, skipping the per-product
	// conversion columns.
	OnlySubtotals bool
	// Precise formats every amount with 4 decimal places instead of the
	// locale's standard currency rounding.
	Precise bool
}

// Printer renders an allocation as the human-readable invoicing report,
// formatting dates and amounts for the configured locale.
type Printer struct {
	w    io.Writer
	tag  language.Tag
	opts Options

	// the locale's thousands grouping and decimal mark
	group string
	point string
}

// NewPrinter creates a Printer for the given BCP 47 locale tag.
func NewPrinter(w io.Writer, locale string, opts Options) (*Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	group, point := separators(tag)
	return &Printer{
		w:     w,
		tag:   tag,
		opts:  opts,
		group: group,
		point: point,
	}, nil
}

// separators extracts the locale's grouping and decimal marks from its own
// rendering of a probe number, so the CLDR data stays authoritative.
func separators(tag language.Tag) (group, point string) {
	probe := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234.5, number.Scale(1)))
	i := strings.Index(probe, "234")
	if i < 1 {
		return "", "."
	}
	group = probe[1:i]
	point = probe[i+3 : strings.LastIndex(probe, "5")]
	return group, point
}

// Print writes the full report: sales date range, then per subsidiary the
// billing address and each country's product sales with subtotals and the
// subsidiary total.
func (p *Printer) Print(a slicer.Allocation) error {
	fmt.Fprintf(p.w, "Sales date: %s – %s\n", p.date(a.DateRange.Start), p.date(a.DateRange.End))

	local := localCurrencyLabel(a.LocalCurrency)

	for _, ea := range a.Entities {
		fmt.Fprintf(p.w, "\n\n%s\n", ea.Address)

		for _, country := range ea.Countries {
			fmt.Fprintf(p.w, "\nSales in %s (%s)\n", country.Name, country.Code)
			fmt.Fprintf(p.w, "\tQuantity\tProduct\tAmount\tExchange Rate\tAmount in %s\n", a.LocalCurrency)

			symbol := domain.Symbol(country.Currency)

			for _, product := range country.Products {
				if p.opts.OnlySubtotals {
					fmt.Fprintf(p.w, "\t%d\t%s\t%s %s\n",
						product.Quantity, product.Product, symbol, p.amount(product.Net))
					continue
				}
				// The per-product converted amount is an estimate affected by
				// rounding, hence the 4 fractional digits.
				fmt.Fprintf(p.w, "\t%d\t%s\t%s %s\t%s\t%s %s\n",
					product.Quantity, product.Product, symbol, p.amount(product.Net),
					country.Rate.StringFixed(5), p.precise(product.Local), local)
			}

			if !p.opts.NoSubtotals {
				fmt.Fprintf(p.w, "\n\t\tSubtotal %s:\t%s %s\t%s\t%s %s\n",
					country.Code, symbol, p.amount(country.Subtotal),
					country.Rate.StringFixed(5), p.amount(country.SubtotalLocal), local)
			}
		}

		fmt.Fprintf(p.w, "\n%s Total:\t%s %s\n", ea.Entity, p.amount(ea.Total), local)
	}

	return nil
}

// localCurrencyLabel substitutes the Euro sign for the EUR code in total
// columns, as accountants expect on the printed report.
func localCurrencyLabel(code string) string {
	if code == "EUR" {
		return "€"
	}
	return code
}

// amount formats a monetary value with the locale's grouping and decimal
// mark, rounded to the standard 2 fractional digits unless the precise
// mode is on.
func (p *Printer) amount(d decimal.Decimal) string {
	scale := 2
	if p.opts.Precise {
		scale = 4
	}
	return p.format(d, scale)
}

// precise formats a monetary value with 4 fractional digits regardless of
// the precision mode.
func (p *Printer) precise(d decimal.Decimal) string {
	return p.format(d, 4)
}

// format stays in decimal space: the value is rounded and rendered by the
// decimal type and only regrouped here, so amounts of any magnitude print
// exactly.
func (p *Printer) format(d decimal.Decimal, scale int) string {
	s := d.StringFixed(int32(scale))

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(p.group)
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteString(p.point)
		b.WriteString(fracPart)
	}
	return b.String()
}

// date reformats a report's US-style date for the configured locale.
func (p *Printer) date(s string) string {
	t, err := time.Parse("01/02/2006", s)
	if err != nil {
		return s
	}
	return t.Format(dateLayout(p.tag))
}

// dateLayout picks the short date layout of the locale's base language.
// x/text has no date formatting yet, so the few locales App Store Connect
// localizes reports for are mapped explicitly.
func dateLayout(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "de":
		return "02.01.2006"
	case "fr", "it", "es":
		return "02/01/2006"
	default:
		return "01/02/2006"
	}
}
