package territories

import (
	"sort"
	"strings"
)

// Code is the canonical identifier for a territory: an ISO-3166 alpha code
// ("GB"), a UN M.49 numeric region code ("154"), or a grouping code ("EU").
// Canonical form is upper case; run inputs through Normalize before using
// them as lookup keys.
type Code string

// Normalize canonicalizes a raw territory identifier. It trims surrounding
// whitespace and upper-cases the input. It performs no validity check.
func Normalize(input string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(input)))
}

// Dataset is the already-parsed, in-memory input a Knowledge is built from.
// All fields are copied during construction; callers may discard or reuse
// the Dataset afterwards.
type Dataset struct {
	// Containment declares parent -> children edges. Child order is
	// preserved exactly as given.
	Containment []ContainmentEntry
	// Names maps a canonical locale to its territory names, in dataset
	// declaration order.
	Names map[string][]NameEntry
	// Attributes holds the per-territory descriptive records. Its key set
	// is the authoritative universe of valid codes.
	Attributes map[Code]AttributeRecord
}

// ContainmentEntry declares the ordered children of one parent territory.
type ContainmentEntry struct {
	Parent   Code
	Children []Code
}

// NameEntry pairs a territory code with its display name in one locale.
type NameEntry struct {
	Code Code
	Name string
}

// AttributeRecord is the non-localized descriptive data for one territory.
// Pointer fields distinguish "absent from the dataset" from a zero value.
type AttributeRecord struct {
	Population        *int64                        `json:"population,omitempty" yaml:"population,omitempty"`
	GDP               *int64                        `json:"gdp,omitempty" yaml:"gdp,omitempty"`
	LiteracyPercent   *float64                      `json:"literacy_percent,omitempty" yaml:"literacy_percent,omitempty"`
	MeasurementSystem string                        `json:"measurement_system,omitempty" yaml:"measurement_system,omitempty"`
	PaperSize         string                        `json:"paper_size,omitempty" yaml:"paper_size,omitempty"`
	TelephoneCode     int                           `json:"telephone_code,omitempty" yaml:"telephone_code,omitempty"`
	Currencies        []CurrencyPeriod              `json:"currencies,omitempty" yaml:"currencies,omitempty"`
	Languages         map[string]LanguagePopulation `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// CurrencyPeriod is one entry in a territory's currency history. Dates are
// ISO-8601 day strings ("2002-01-01"); an empty To means the period is open.
type CurrencyPeriod struct {
	Currency string `json:"currency" yaml:"currency"`
	From     string `json:"from,omitempty" yaml:"from,omitempty"`
	To       string `json:"to,omitempty" yaml:"to,omitempty"`
}

// LanguagePopulation describes one language spoken in a territory.
type LanguagePopulation struct {
	Percent        float64 `json:"percent" yaml:"percent"`
	Official       bool    `json:"official,omitempty" yaml:"official,omitempty"`
	WritingPercent float64 `json:"writing_percent,omitempty" yaml:"writing_percent,omitempty"`
}

// IsZero reports whether the record carries no data at all. A territory may
// be known to the system yet have an empty record; lookups treat that as
// "no attribute data" rather than as an invalid code.
func (r AttributeRecord) IsZero() bool {
	return r.Population == nil &&
		r.GDP == nil &&
		r.LiteracyPercent == nil &&
		r.MeasurementSystem == "" &&
		r.PaperSize == "" &&
		r.TelephoneCode == 0 &&
		len(r.Currencies) == 0 &&
		len(r.Languages) == 0
}

// CurrencyOn returns the currency in effect on the given ISO-8601 date.
// When periods overlap the latest entry in the history wins.
func (r AttributeRecord) CurrencyOn(date string) (string, bool) {
	for i := len(r.Currencies) - 1; i >= 0; i-- {
		period := r.Currencies[i]
		if period.From != "" && date < period.From {
			continue
		}
		if period.To != "" && date > period.To {
			continue
		}
		return period.Currency, true
	}
	return "", false
}

// OfficialLanguages returns the languages tagged official, sorted.
func (r AttributeRecord) OfficialLanguages() []string {
	if len(r.Languages) == 0 {
		return nil
	}

	out := make([]string, 0, len(r.Languages))
	for lang, population := range r.Languages {
		if population.Official {
			out = append(out, lang)
		}
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy of the record.
func (r AttributeRecord) Clone() AttributeRecord {
	out := r
	if r.Population != nil {
		population := *r.Population
		out.Population = &population
	}
	if r.GDP != nil {
		gdp := *r.GDP
		out.GDP = &gdp
	}
	if r.LiteracyPercent != nil {
		literacy := *r.LiteracyPercent
		out.LiteracyPercent = &literacy
	}
	if len(r.Currencies) > 0 {
		out.Currencies = make([]CurrencyPeriod, len(r.Currencies))
		copy(out.Currencies, r.Currencies)
	}
	if len(r.Languages) > 0 {
		out.Languages = make(map[string]LanguagePopulation, len(r.Languages))
		for lang, population := range r.Languages {
			out.Languages[lang] = population
		}
	}
	return out
}
