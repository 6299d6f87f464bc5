package territories

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// localeParentChain returns the parent locales of locale, closest first.
// Parents come from the x/text language tag hierarchy; identifiers the
// parser rejects fall back to truncating at the last hyphen, and both
// sources are merged without duplicates.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}

	appendParent := func(value string) {
		if value == "" || value == "und" {
			return
		}
		if _, exists := seen[value]; exists {
			return
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
	}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			appendParent(parent.String())
		}
	}

	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		appendParent(current)
	}

	return chain
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}
