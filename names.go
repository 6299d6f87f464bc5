package territories

import (
	"fmt"
	"sort"
)

// NameStore holds one immutable name table per canonical locale, read only
// after construction.
type NameStore struct {
	tables  map[string]*nameTable
	locales []string
}

// nameTable is the per-locale mapping plus the structures derived from it:
// the declaration-ordered code list and the inverted name->code index used
// for translation. When two codes share a display name the first entry in
// table order claims the index slot; the duplicate set is kept so strict
// translation can reject the name instead.
type nameTable struct {
	locale     string
	order      []Code
	names      map[Code]string
	byName     map[string]Code
	duplicates map[string][]Code
}

// newNameStore builds an immutable snapshot from the per-locale name data.
// Locale keys that normalize to the same canonical locale ("en_GB" next to
// "en-GB") and empty codes fail construction instead of corrupting tables.
func newNameStore(data map[string][]NameEntry) (*NameStore, error) {
	store := &NameStore{tables: make(map[string]*nameTable, len(data))}

	for rawLocale, entries := range data {
		locale := normalizeLocale(rawLocale)
		if locale == "" {
			return nil, fmt.Errorf("territories: name table with empty locale code")
		}
		if _, exists := store.tables[locale]; exists {
			return nil, fmt.Errorf("territories: duplicate name table for locale %q", locale)
		}

		table := &nameTable{
			locale: locale,
			order:  make([]Code, 0, len(entries)),
			names:  make(map[Code]string, len(entries)),
			byName: make(map[string]Code, len(entries)),
		}

		for _, entry := range entries {
			code := Normalize(string(entry.Code))
			if code == "" {
				return nil, fmt.Errorf("territories: locale %q declares a name with an empty territory code", locale)
			}
			if _, exists := table.names[code]; exists {
				continue
			}

			table.order = append(table.order, code)
			table.names[code] = entry.Name

			if first, exists := table.byName[entry.Name]; exists {
				if table.duplicates == nil {
					table.duplicates = make(map[string][]Code)
				}
				if len(table.duplicates[entry.Name]) == 0 {
					table.duplicates[entry.Name] = []Code{first}
				}
				table.duplicates[entry.Name] = append(table.duplicates[entry.Name], code)
				continue
			}
			table.byName[entry.Name] = code
		}

		store.tables[locale] = table
		store.locales = append(store.locales, locale)
	}

	// make locales deterministic
	sort.Strings(store.locales)

	return store, nil
}

// Locales returns a slice with all locale codes known to the store.
func (s *NameStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// Has reports whether the store holds a name table for locale.
func (s *NameStore) Has(locale string) bool {
	if s == nil {
		return false
	}
	_, ok := s.tables[locale]
	return ok
}

// Name returns the display name for code in locale and ok=false if missing.
func (s *NameStore) Name(locale string, code Code) (string, bool) {
	table, ok := s.table(locale)
	if !ok {
		return "", false
	}
	name, ok := table.names[code]
	return name, ok
}

// CodeFor returns the code whose display name in locale equals name exactly.
// When several codes share the name, the first one in table order wins.
func (s *NameStore) CodeFor(locale, name string) (Code, bool) {
	table, ok := s.table(locale)
	if !ok {
		return "", false
	}
	code, ok := table.byName[name]
	return code, ok
}

// DuplicateCodes returns every code sharing the display name in locale, in
// table order, when the name is ambiguous; nil otherwise.
func (s *NameStore) DuplicateCodes(locale, name string) []Code {
	table, ok := s.table(locale)
	if !ok || len(table.duplicates) == 0 {
		return nil
	}
	codes := table.duplicates[name]
	if len(codes) == 0 {
		return nil
	}
	out := make([]Code, len(codes))
	copy(out, codes)
	return out
}

// Available returns every code with a name in locale, in declaration order.
func (s *NameStore) Available(locale string) ([]Code, bool) {
	table, ok := s.table(locale)
	if !ok {
		return nil, false
	}
	out := make([]Code, len(table.order))
	copy(out, table.order)
	return out, true
}

// Known returns a copy of the full code->name table for locale.
func (s *NameStore) Known(locale string) (map[Code]string, bool) {
	table, ok := s.table(locale)
	if !ok {
		return nil, false
	}
	out := make(map[Code]string, len(table.names))
	for code, name := range table.names {
		out[code] = name
	}
	return out, true
}

func (s *NameStore) table(locale string) (*nameTable, bool) {
	if s == nil {
		return nil, false
	}
	table, ok := s.tables[locale]
	if !ok || table == nil {
		return nil, false
	}
	return table, true
}
