package domain

import (
	"strings"

	"github.com/samber/lo"
)

// USD is the dollar code that App Store Connect uses for two distinct
// disbursement regions ("Americas" and "Rest of World") with different
// exchange rates, so the bare code is ambiguous as a currency key.
const USD = "USD"

// USDRestOfWorld is the composite currency key for USD earnings from the
// "Rest of World" disbursement region.
const USDRestOfWorld = "USD - RoW"

// restOfWorldLabels are the localized spellings of "Rest of World" observed
// in currency summary rows. App Store Connect currently localizes reports
// for French, German, Italian and Spanish locale settings.
var restOfWorldLabels = []string{"of world", "du monde", "der welt", "del mondo", "del mundo"}

// IsRestOfWorldLabel reports whether a currency row's free-text label names
// the "Rest of World" region in any known localization.
func IsRestOfWorldLabel(label string) bool {
	lower := strings.ToLower(label)
	return lo.SomeBy(restOfWorldLabels, func(l string) bool {
		return strings.Contains(lower, l)
	})
}

// HasRestOfWorldHint reports whether a sales report filename carries the
// "_WW" region tag marking it as a "Rest of World" extract. This is a
// pragmatic heuristic, not a guaranteed signal; it is the authoritative
// region source on the sales side (the label text is authoritative on the
// currency summary side).
func HasRestOfWorldHint(filename string) bool {
	return strings.Contains(filename, "_WW.")
}

// Symbol returns the plain ISO code of a currency key, stripping any
// region tag ("USD - RoW" → "USD").
func Symbol(key string) string {
	if len(key) > 3 {
		return key[:3]
	}
	return key
}
