// Package territories is a read-only knowledge base of geopolitical
// territories: localized display names, a containment hierarchy, descriptive
// attributes, and cross-locale name translation. It is built once from an
// in-memory dataset and is safe for unsynchronized concurrent queries.
package territories

// Knowledge is the public query surface over the containment graph, the
// locale name tables, and the attribute store. Immutable after Build.
type Knowledge struct {
	graph         *ContainmentGraph
	names         *NameStore
	attrs         *AttributeStore
	resolver      LocaleResolver
	current       func() string
	strict        bool
	defaultLocale string
}

// New builds a Knowledge from the supplied options. With no options it
// serves the embedded default dataset.
func New(opts ...Option) (*Knowledge, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// IsValid reports whether input canonicalizes to a code in the authoritative
// territory universe. Never fails; unknown input yields false.
func (k *Knowledge) IsValid(input string) bool {
	if k == nil {
		return false
	}
	return k.attrs.Has(Normalize(input))
}

// Codes returns the authoritative territory universe, sorted.
func (k *Knowledge) Codes() []Code {
	if k == nil {
		return nil
	}
	return k.attrs.Codes()
}

// Locales returns every locale with a name table, sorted.
func (k *Knowledge) Locales() []string {
	if k == nil {
		return nil
	}
	return k.names.Locales()
}

// DefaultLocale returns the locale used when an operation omits one.
func (k *Knowledge) DefaultLocale() string {
	if k == nil {
		return ""
	}
	return k.defaultLocale
}

// Children returns the declared children of input, in source order.
func (k *Knowledge) Children(input string) ([]Code, error) {
	if k == nil {
		return nil, notFoundf("no children declared for %q", input)
	}
	return k.graph.Children(Normalize(input))
}

// Parents returns every territory containing input directly, sorted.
func (k *Knowledge) Parents(input string) ([]Code, error) {
	if k == nil {
		return nil, notFoundf("%q is not contained by any territory", input)
	}
	return k.graph.Parents(Normalize(input))
}

// Contains reports whether parent directly declares child. False, never an
// error, for unknown parents.
func (k *Knowledge) Contains(parent, child string) bool {
	if k == nil {
		return false
	}
	return k.graph.Contains(Normalize(parent), Normalize(child))
}

// AttributesFor returns the descriptive record for input. An identifier
// outside the universe and a known territory without attribute data both
// fail with an error matching ErrNotFound, with distinct messages.
func (k *Knowledge) AttributesFor(input string) (AttributeRecord, error) {
	if k == nil {
		return AttributeRecord{}, &InvalidTerritoryError{Input: input}
	}

	code := Normalize(input)
	record, ok := k.attrs.Record(code)
	if !ok {
		return AttributeRecord{}, &InvalidTerritoryError{Input: input}
	}
	if record.IsZero() {
		return AttributeRecord{}, notFoundf("no attribute data for %q", code)
	}
	return record, nil
}

// NameFor returns the display name of input in the given locale, or in the
// current locale when omitted.
func (k *Knowledge) NameFor(input string, locale ...string) (string, error) {
	if k == nil {
		return "", &InvalidTerritoryError{Input: input}
	}

	resolved, err := k.resolveLocale(locale)
	if err != nil {
		return "", err
	}

	code := Normalize(input)
	if !k.attrs.Has(code) {
		return "", &InvalidTerritoryError{Input: input}
	}

	name, ok := k.names.Name(resolved, code)
	if !ok {
		return "", notFoundf("no name for %q in locale %q", code, resolved)
	}
	return name, nil
}

// Translate maps a display name from one locale's table to the same
// territory's name in another locale, the current locale when omitted. The
// match is exact; no normalization or fuzzy matching is applied. When the
// source name is shared by several territories the first entry in table
// order wins, unless the knowledge base was built WithStrictTranslation.
func (k *Knowledge) Translate(name, fromLocale string, toLocale ...string) (string, error) {
	if k == nil {
		return "", notFoundf("no territory named %q", name)
	}

	from, err := k.resolver.Resolve(fromLocale)
	if err != nil {
		return "", err
	}

	to, err := k.resolveLocale(toLocale)
	if err != nil {
		return "", err
	}

	if k.strict {
		if codes := k.names.DuplicateCodes(from, name); len(codes) > 0 {
			return "", &AmbiguousNameError{Name: name, Locale: from, Codes: codes}
		}
	}

	code, ok := k.names.CodeFor(from, name)
	if !ok {
		return "", notFoundf("no territory named %q in locale %q", name, from)
	}

	translated, ok := k.names.Name(to, code)
	if !ok {
		return "", notFoundf("no name for %q in locale %q", code, to)
	}
	return translated, nil
}

// AvailableTerritories returns every code with a name in the locale, in
// dataset declaration order.
func (k *Knowledge) AvailableTerritories(locale ...string) ([]Code, error) {
	if k == nil {
		return nil, notFoundf("no name tables configured")
	}

	resolved, err := k.resolveLocale(locale)
	if err != nil {
		return nil, err
	}

	codes, ok := k.names.Available(resolved)
	if !ok {
		return nil, notFoundf("no name table for locale %q", resolved)
	}
	return codes, nil
}

// KnownTerritories returns a copy of the full code->name table for the
// locale.
func (k *Knowledge) KnownTerritories(locale ...string) (map[Code]string, error) {
	if k == nil {
		return nil, notFoundf("no name tables configured")
	}

	resolved, err := k.resolveLocale(locale)
	if err != nil {
		return nil, err
	}

	table, ok := k.names.Known(resolved)
	if !ok {
		return nil, notFoundf("no name table for locale %q", resolved)
	}
	return table, nil
}

// resolveLocale picks the current locale when the optional argument is
// omitted, and routes explicit identifiers through the resolver, whose
// failure propagates unchanged.
func (k *Knowledge) resolveLocale(locale []string) (string, error) {
	if len(locale) == 0 || locale[0] == "" {
		return k.current(), nil
	}
	return k.resolver.Resolve(locale[0])
}
