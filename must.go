package territories

// Panicking variants of the fallible query operations, for callers with no
// recovery path (init-time wiring, templates). Each panics with the original
// error when the underlying operation fails.

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// MustNew is New, panicking on construction failure.
func MustNew(opts ...Option) *Knowledge {
	return must(New(opts...))
}

// MustChildren is Children, panicking on failure.
func (k *Knowledge) MustChildren(input string) []Code {
	return must(k.Children(input))
}

// MustParents is Parents, panicking on failure.
func (k *Knowledge) MustParents(input string) []Code {
	return must(k.Parents(input))
}

// MustAttributesFor is AttributesFor, panicking on failure.
func (k *Knowledge) MustAttributesFor(input string) AttributeRecord {
	return must(k.AttributesFor(input))
}

// MustNameFor is NameFor, panicking on failure.
func (k *Knowledge) MustNameFor(input string, locale ...string) string {
	return must(k.NameFor(input, locale...))
}

// MustTranslate is Translate, panicking on failure.
func (k *Knowledge) MustTranslate(name, fromLocale string, toLocale ...string) string {
	return must(k.Translate(name, fromLocale, toLocale...))
}

// MustAvailableTerritories is AvailableTerritories, panicking on failure.
func (k *Knowledge) MustAvailableTerritories(locale ...string) []Code {
	return must(k.AvailableTerritories(locale...))
}

// MustKnownTerritories is KnownTerritories, panicking on failure.
func (k *Knowledge) MustKnownTerritories(locale ...string) map[Code]string {
	return must(k.KnownTerritories(locale...))
}
