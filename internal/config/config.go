package config

import "os"

// Config holds the run configuration. Defaults match the common case of a
// German accountant invoicing in Euro; every value can be overridden via
// environment variable, and the CLI flags take precedence over both.
type Config struct {
	// LocalCurrency is the ISO code of the currency into which foreign
	// sales amounts are converted.
	LocalCurrency string
	// RateFileName is the name of the currency summary file inside the
	// report directory, as downloaded from App Store Connect's
	// "Payments & Financial Reports" page.
	RateFileName string
	// Locale is the BCP 47 tag used for formatting dates and amounts.
	Locale string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		LocalCurrency: envOrDefault("SLICER_CURRENCY", "EUR"),
		RateFileName:  envOrDefault("SLICER_RATE_FILE", "financial_report.csv"),
		Locale:        envOrDefault("SLICER_LOCALE", "de-DE"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
