package slicer

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fedoco/apple-slicer/internal/entity"
	"github.com/fedoco/apple-slicer/internal/rates"
	"github.com/fedoco/apple-slicer/internal/sales"
)

// ProductAllocation is the taxed and converted revenue of one product in
// one country.
type ProductAllocation struct {
	Product string
	// Quantity passes through from the sales data unchanged.
	Quantity int64
	// Net is the gross amount with local tax withholding removed, in the
	// country's currency.
	Net decimal.Decimal
	// Local is the net amount converted to the reporting currency. Because
	// of rounding it can only serve as an informative estimate; Apple
	// converts per country, not per product.
	Local decimal.Decimal
}

// CountryAllocation is the allocated revenue of one country.
type CountryAllocation struct {
	Code     string
	Name     string
	Currency string
	Rate     decimal.Decimal
	Products []ProductAllocation
	// Subtotal is the sum of per-product net amounts in the country's
	// currency.
	Subtotal decimal.Decimal
	// SubtotalLocal is Subtotal converted to the reporting currency. It is
	// computed from the country total rather than by summing the converted
	// per-product figures, matching Apple's own per-country conversion.
	SubtotalLocal decimal.Decimal
}

// EntityAllocation groups the countries one Apple subsidiary is
// accountable for, with its total in the reporting currency.
type EntityAllocation struct {
	Entity    entity.Handle
	Address   string
	Countries []CountryAllocation
	// Total sums the country subtotals in the reporting currency plus one
	// application of each distinct currency's adjustment.
	Total decimal.Decimal
}

// Allocation is the complete revenue attribution of one reporting period.
type Allocation struct {
	Entities      []EntityAllocation
	DateRange     sales.DateRange
	LocalCurrency string
}

// Allocate partitions the aggregated sales by accountable subsidiary and
// converts them using the exchange rate table. A country code the directory
// cannot attribute is an error: the sale cannot be legally assigned, so it
// must not be dropped silently.
func Allocate(data sales.Data, table rates.Table, dir entity.Directory, localCurrency string) (Allocation, error) {
	allocation := Allocation{
		DateRange:     data.DateRange,
		LocalCurrency: localCurrency,
	}
	entityIndex := map[entity.Handle]int{}

	for _, cs := range data.Countries {
		handle, err := dir.EntityFor(cs.Code)
		if err != nil {
			return Allocation{}, fmt.Errorf("attributing sales: %w", err)
		}
		name, err := dir.CountryName(cs.Code)
		if err != nil {
			return Allocation{}, fmt.Errorf("attributing sales: %w", err)
		}

		i, ok := entityIndex[handle]
		if !ok {
			address, err := dir.Address(handle)
			if err != nil {
				return Allocation{}, fmt.Errorf("attributing sales: %w", err)
			}
			i = len(allocation.Entities)
			entityIndex[handle] = i
			allocation.Entities = append(allocation.Entities, EntityAllocation{Entity: handle, Address: address})
		}

		record := table.Resolve(cs.Currency, localCurrency)
		country := allocateCountry(cs, name, record)

		ea := &allocation.Entities[i]
		ea.Countries = append(ea.Countries, country)
		ea.Total = ea.Total.Add(country.SubtotalLocal)
	}

	applyAdjustments(&allocation, table, localCurrency)

	return allocation, nil
}

// allocateCountry converts one country's product sales using its currency
// record.
func allocateCountry(cs sales.CountrySales, name string, record rates.Record) CountryAllocation {
	country := CountryAllocation{
		Code:     cs.Code,
		Name:     name,
		Currency: cs.Currency,
		Rate:     record.ExchangeRate,
	}

	for _, ps := range cs.Products {
		// Local tax (f. ex. in JPY) is withheld exactly once: the net amount
		// is gross × tax factor.
		net := ps.Amount.Mul(record.TaxFactor)
		country.Products = append(country.Products, ProductAllocation{
			Product:  ps.Product,
			Quantity: ps.Quantity,
			Net:      net,
			Local:    net.Mul(record.ExchangeRate),
		})
		country.Subtotal = country.Subtotal.Add(net)
	}

	country.SubtotalLocal = country.Subtotal.Mul(record.ExchangeRate)
	return country
}

// applyAdjustments adds each distinct currency's one-time adjustment to its
// entity's total, converted at that currency's rate. An adjustment applies
// once per currency, never once per country, even when several of the
// entity's countries share the currency.
func applyAdjustments(allocation *Allocation, table rates.Table, localCurrency string) {
	for i := range allocation.Entities {
		ea := &allocation.Entities[i]

		currencies := lo.Uniq(lo.Map(ea.Countries, func(c CountryAllocation, _ int) string {
			return c.Currency
		}))

		for _, currency := range currencies {
			record := table.Resolve(currency, localCurrency)
			if record.Adjustment.IsZero() {
				continue
			}
			ea.Total = ea.Total.Add(record.Adjustment.Mul(record.ExchangeRate))
		}
	}
}

// EntityTotal returns the reporting-currency total of the given subsidiary,
// zero if it had no sales in the period.
func (a Allocation) EntityTotal(handle entity.Handle) decimal.Decimal {
	for _, ea := range a.Entities {
		if ea.Entity == handle {
			return ea.Total
		}
	}
	return decimal.Zero
}

// EUTotal returns the total revenue attributable to Apple's EU subsidiary,
// the figure required for the EU Recapitulative Statement.
func (a Allocation) EUTotal() decimal.Decimal {
	return a.EntityTotal(entity.Europe)
}
