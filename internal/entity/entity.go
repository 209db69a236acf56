package entity

import (
	"errors"
	"fmt"
)

// Handle identifies one of Apple's legal entities (subsidiaries).
type Handle string

const (
	Australia Handle = "AU"
	Canada    Handle = "CA"
	Europe    Handle = "EU"
	Japan     Handle = "JP"
	LatAm     Handle = "LL"
	US        Handle = "US"
)

// VATIDEurope is the VAT ID of Apple's EU subsidiary.
const VATIDEurope = "IE9700053D"

// ErrUnknownCountry indicates a country code with no subsidiary mapping.
var ErrUnknownCountry = errors.New("unknown country code")

// ErrUnknownEntity indicates an entity handle with no known subsidiary.
var ErrUnknownEntity = errors.New("unknown Apple entity")

// Directory maps country codes to the Apple subsidiary legally accountable
// for sales made there. It is immutable once constructed.
type Directory struct {
	regions []region
}

type region struct {
	handle    Handle
	countries map[string]string
	address   string
}

// NewDirectory builds the directory from the subsidiary assignments of
// Schedule 2, Exhibit A of Apple's "iOS / macOS Paid Applications" contract
// as effective of August, 2023.
func NewDirectory() Directory {
	return Directory{
		regions: []region{
			{Australia, australiaCountries, australiaAddress},
			{Canada, canadaCountries, canadaAddress},
			{Europe, europeCountries, europeAddress},
			{Japan, japanCountries, japanAddress},
			{LatAm, latamCountries, latamAddress},
			{US, usCountries, usAddress},
		},
	}
}

// EntityFor returns the subsidiary handling sales of the given country.
func (d Directory) EntityFor(countryCode string) (Handle, error) {
	for _, r := range d.regions {
		if _, ok := r.countries[countryCode]; ok {
			return r.handle, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCountry, countryCode)
}

// CountryName returns the display name of the country with the given code.
func (d Directory) CountryName(countryCode string) (string, error) {
	for _, r := range d.regions {
		if name, ok := r.countries[countryCode]; ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCountry, countryCode)
}

// Address returns the billing address of the subsidiary with the given handle.
func (d Directory) Address(handle Handle) (string, error) {
	for _, r := range d.regions {
		if r.handle == handle {
			return r.address, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, handle)
}
