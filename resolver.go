package territories

import (
	"golang.org/x/text/language"
)

// LocaleResolver canonicalizes a user-supplied locale identifier or tag into
// one of the locales the knowledge base was built with.
type LocaleResolver interface {
	Resolve(identifier string) (string, error)
}

// ResolverFunc adapters allow bare functions to implement LocaleResolver.
type ResolverFunc func(identifier string) (string, error)

// Resolve implements LocaleResolver for ResolverFunc.
func (fn ResolverFunc) Resolve(identifier string) (string, error) {
	return fn(identifier)
}

// MatchResolver resolves identifiers against a fixed set of supported
// locales: exact hit first, then the parent chain of the identifier, then a
// language.Matcher for script/region variants ("en-US" -> "en").
type MatchResolver struct {
	supported map[string]struct{}
	all       []string
	matcher   language.Matcher
	tags      []string
}

var _ LocaleResolver = (*MatchResolver)(nil)

// NewMatchResolver builds a resolver for the given supported locales.
func NewMatchResolver(locales ...string) *MatchResolver {
	normalized := normalizeLocales(locales)

	resolver := &MatchResolver{
		supported: make(map[string]struct{}, len(normalized)),
		all:       normalized,
	}

	tags := make([]language.Tag, 0, len(normalized))
	for _, locale := range normalized {
		resolver.supported[locale] = struct{}{}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		resolver.tags = append(resolver.tags, locale)
	}

	if len(tags) > 0 {
		resolver.matcher = language.NewMatcher(tags)
	}

	return resolver
}

// Resolve returns the canonical supported locale for identifier, or an
// UnknownLocaleError when nothing in the supported set matches.
func (r *MatchResolver) Resolve(identifier string) (string, error) {
	if r == nil {
		return "", &UnknownLocaleError{Identifier: identifier}
	}

	normalized := normalizeLocale(identifier)
	if normalized == "" {
		return "", &UnknownLocaleError{Identifier: identifier}
	}

	if _, ok := r.supported[normalized]; ok {
		return normalized, nil
	}

	for _, parent := range localeParentChain(normalized) {
		if _, ok := r.supported[parent]; ok {
			return parent, nil
		}
	}

	if r.matcher != nil {
		if desired, err := language.Parse(normalized); err == nil {
			if _, index, confidence := r.matcher.Match(desired); confidence > language.No {
				return r.tags[index], nil
			}
		}
	}

	return "", &UnknownLocaleError{Identifier: identifier}
}

// Supported returns the supported locale set, sorted.
func (r *MatchResolver) Supported() []string {
	if r == nil || len(r.all) == 0 {
		return nil
	}
	out := make([]string, len(r.all))
	copy(out, r.all)
	return out
}
