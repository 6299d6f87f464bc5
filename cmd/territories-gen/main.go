// Command territories-gen extracts territory names, containment, and
// descriptive data from a CLDR core checkout into the dataset YAML consumed
// by the territories package.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	territories "github.com/zorbash/cldr-territories"
	cldr "golang.org/x/text/unicode/cldr"
	"gopkg.in/yaml.v3"
)

type generatorConfig struct {
	out      string
	cldrPath string
	locales  []string
	codes    map[string]struct{}
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

// datasetDoc mirrors the dataset file shape decoded by the library.
type datasetDoc struct {
	Territories map[string]territories.AttributeRecord `yaml:"territories"`
	Containment map[string][]string                    `yaml:"containment"`
	Names       map[string][]nameEntry                 `yaml:"names"`
}

type nameEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "territories-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag
	var codeList localeFlag

	flag.StringVar(&cfg.out, "out", "dataset.yaml", "path to generated dataset file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to extract names for. Repeat flag to add more.")
	flag.Var(&codeList, "territory", "restrict output to these territory codes. Repeat flag to add more; omit for all.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	cfg.locales = localeList.items

	if len(codeList.items) > 0 {
		cfg.codes = make(map[string]struct{}, len(codeList.items))
		for _, code := range codeList.items {
			cfg.codes[strings.ToUpper(code)] = struct{}{}
		}
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	doc := datasetDoc{
		Territories: make(map[string]territories.AttributeRecord),
		Containment: make(map[string][]string),
		Names:       make(map[string][]nameEntry),
	}

	supplemental := data.Supplemental()
	if supplemental == nil {
		return errors.New("missing supplemental data")
	}

	extractContainment(supplemental, cfg, &doc)
	extractTerritoryInfo(supplemental, cfg, &doc)
	extractCurrencies(supplemental, cfg, doc.Territories)
	extractTelephoneCodes(supplemental, cfg, doc.Territories)

	for _, locale := range cfg.locales {
		ldml := findLDML(data, locale)
		if ldml == nil {
			return fmt.Errorf("missing LDML data for %s", locale)
		}
		entries := extractNames(ldml, cfg)
		if len(entries) == 0 {
			return fmt.Errorf("no territory names for %s", locale)
		}
		doc.Names[locale] = entries
	}

	// Keep the universe closed: every containment endpoint and named code
	// gets at least an empty record.
	for parent, children := range doc.Containment {
		ensureTerritory(doc.Territories, parent)
		for _, child := range children {
			ensureTerritory(doc.Territories, child)
		}
	}

	return writeDataset(cfg.out, doc)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for {
		if candidate == "" {
			break
		}
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		if idx := strings.LastIndex(candidate, "_"); idx >= 0 {
			candidate = candidate[:idx]
			continue
		}
		break
	}
	return data.RawLDML("root")
}

func (cfg generatorConfig) wants(code string) bool {
	if len(cfg.codes) == 0 {
		return true
	}
	_, ok := cfg.codes[strings.ToUpper(code)]
	return ok
}

func extractNames(ldml *cldr.LDML, cfg generatorConfig) []nameEntry {
	if ldml == nil || ldml.LocaleDisplayNames == nil || ldml.LocaleDisplayNames.Territories == nil {
		return nil
	}

	var entries []nameEntry
	seen := make(map[string]struct{})
	for _, territory := range ldml.LocaleDisplayNames.Territories.Territory {
		if territory == nil || territory.Type == "" {
			continue
		}
		// Skip alternate forms ("GB" alt=short -> "UK").
		if territory.Alt != "" {
			continue
		}
		if !cfg.wants(territory.Type) {
			continue
		}
		if _, exists := seen[territory.Type]; exists {
			continue
		}
		seen[territory.Type] = struct{}{}
		entries = append(entries, nameEntry{Code: territory.Type, Name: territory.Data()})
	}
	return entries
}

func extractContainment(supplemental *cldr.SupplementalData, cfg generatorConfig, doc *datasetDoc) {
	if supplemental.TerritoryContainment == nil {
		return
	}

	for _, group := range supplemental.TerritoryContainment.Group {
		if group == nil || group.Type == "" {
			continue
		}
		if group.Status != "" {
			continue
		}
		if !cfg.wants(group.Type) {
			continue
		}

		var children []string
		for _, child := range strings.Fields(group.Contains) {
			if cfg.wants(child) {
				children = append(children, child)
			}
		}
		if len(children) == 0 {
			continue
		}
		doc.Containment[group.Type] = children
	}
}

func extractTerritoryInfo(supplemental *cldr.SupplementalData, cfg generatorConfig, doc *datasetDoc) {
	if supplemental.TerritoryInfo == nil {
		return
	}

	for _, territory := range supplemental.TerritoryInfo.Territory {
		if territory == nil || territory.Type == "" {
			continue
		}
		if !cfg.wants(territory.Type) {
			continue
		}

		record := doc.Territories[territory.Type]
		record.Population = parseInt(territory.Population)
		record.GDP = parseInt(territory.Gdp)
		record.LiteracyPercent = parseFloat(territory.LiteracyPercent)

		for _, lang := range territory.LanguagePopulation {
			if lang == nil || lang.Type == "" {
				continue
			}
			if record.Languages == nil {
				record.Languages = make(map[string]territories.LanguagePopulation)
			}
			population := territories.LanguagePopulation{
				Official: strings.HasPrefix(lang.OfficialStatus, "official"),
			}
			if percent := parseFloat(lang.PopulationPercent); percent != nil {
				population.Percent = *percent
			}
			if percent := parseFloat(lang.WritingPercent); percent != nil {
				population.WritingPercent = *percent
			}
			record.Languages[lang.Type] = population
		}

		doc.Territories[territory.Type] = record
	}
}

func extractCurrencies(supplemental *cldr.SupplementalData, cfg generatorConfig, records map[string]territories.AttributeRecord) {
	if supplemental.CurrencyData == nil {
		return
	}

	for _, region := range supplemental.CurrencyData.Region {
		if region == nil || region.Iso3166 == "" {
			continue
		}
		if !cfg.wants(region.Iso3166) {
			continue
		}

		record := records[region.Iso3166]
		for _, currency := range region.Currency {
			if currency == nil || currency.Iso4217 == "" {
				continue
			}
			record.Currencies = append(record.Currencies, territories.CurrencyPeriod{
				Currency: currency.Iso4217,
				From:     currency.From,
				To:       currency.To,
			})
		}
		if len(record.Currencies) == 0 {
			continue
		}
		sort.SliceStable(record.Currencies, func(i, j int) bool {
			return record.Currencies[i].From < record.Currencies[j].From
		})
		records[region.Iso3166] = record
	}
}

func extractTelephoneCodes(supplemental *cldr.SupplementalData, cfg generatorConfig, records map[string]territories.AttributeRecord) {
	if supplemental.TelephoneCodeData == nil {
		return
	}

	for _, entry := range supplemental.TelephoneCodeData.CodesByTerritory {
		if entry == nil || entry.Territory == "" {
			continue
		}
		if !cfg.wants(entry.Territory) {
			continue
		}
		if len(entry.TelephoneCountryCode) == 0 {
			continue
		}

		code, err := strconv.Atoi(strings.TrimSpace(entry.TelephoneCountryCode[0].Code))
		if err != nil {
			continue
		}

		record := records[strings.ToUpper(entry.Territory)]
		record.TelephoneCode = code
		records[strings.ToUpper(entry.Territory)] = record
	}
}

func ensureTerritory(records map[string]territories.AttributeRecord, code string) {
	if _, ok := records[code]; !ok {
		records[code] = territories.AttributeRecord{}
	}
}

func parseInt(input string) *int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseFloat(input string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return nil
	}
	return &value
}

func writeDataset(out string, doc datasetDoc) error {
	payload, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	if dir := filepath.Dir(out); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	return os.WriteFile(out, payload, 0o644)
}
