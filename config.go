package territories

import "fmt"

// Config captures knowledge base setup.
type Config struct {
	DefaultLocale string
	Locales       []string
	Dataset       *Dataset
	Loader        Loader
	Resolver      LocaleResolver
	CurrentLocale func() string

	strictTranslation bool
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options. It hydrates the dataset
// (explicit dataset, then loader, then the embedded default), restricts and
// validates the locale set, and fills resolver and current-locale defaults.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Dataset == nil {
		if cfg.Loader != nil {
			dataset, err := cfg.Loader.Load()
			if err != nil {
				return nil, err
			}
			cfg.Dataset = dataset
		} else {
			dataset, err := DefaultDataset()
			if err != nil {
				return nil, err
			}
			cfg.Dataset = dataset
		}
	}

	if cfg.Dataset == nil {
		cfg.Dataset = &Dataset{}
	}

	if err := cfg.applyLocales(); err != nil {
		return nil, err
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewMatchResolver(cfg.Locales...)
	}

	if cfg.CurrentLocale == nil {
		defaultLocale := cfg.DefaultLocale
		cfg.CurrentLocale = func() string { return defaultLocale }
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale used when an operation omits one.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales restricts the knowledge base to the given locales. Every
// listed locale must have a name table in the dataset.
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithDataset supplies an already-parsed dataset.
func WithDataset(dataset *Dataset) Option {
	return func(c *Config) error {
		c.Dataset = dataset
		return nil
	}
}

// WithLoader supplies a dataset loader, used when no dataset is given.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithLocaleResolver replaces the default matcher-backed locale resolver.
func WithLocaleResolver(resolver LocaleResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithCurrentLocale supplies the process-wide current locale accessor.
func WithCurrentLocale(current func() string) Option {
	return func(c *Config) error {
		c.CurrentLocale = current
		return nil
	}
}

// WithStrictTranslation makes Translate fail with an AmbiguousNameError
// when the source name maps to more than one territory, instead of picking
// the first entry in table order.
func WithStrictTranslation() Option {
	return func(c *Config) error {
		c.strictTranslation = true
		return nil
	}
}

// Build constructs the immutable Knowledge from the configured dataset.
func (cfg *Config) Build() (*Knowledge, error) {
	if cfg == nil || cfg.Dataset == nil {
		return nil, fmt.Errorf("territories: no dataset configured")
	}

	attrs, err := newAttributeStore(cfg.Dataset.Attributes)
	if err != nil {
		return nil, err
	}

	graph, err := newContainmentGraph(cfg.Dataset.Containment, attrs.universe())
	if err != nil {
		return nil, err
	}

	selected, err := cfg.selectNames()
	if err != nil {
		return nil, err
	}

	names, err := newNameStore(selected)
	if err != nil {
		return nil, err
	}

	resolver := cfg.Resolver
	if resolver == nil {
		resolver = NewMatchResolver(names.Locales()...)
	}

	current := cfg.CurrentLocale
	if current == nil {
		defaultLocale := cfg.DefaultLocale
		current = func() string { return defaultLocale }
	}

	return &Knowledge{
		graph:         graph,
		names:         names,
		attrs:         attrs,
		resolver:      resolver,
		current:       current,
		strict:        cfg.strictTranslation,
		defaultLocale: cfg.DefaultLocale,
	}, nil
}

func (cfg *Config) applyLocales() error {
	available := make(map[string]struct{}, len(cfg.Dataset.Names))
	for rawLocale := range cfg.Dataset.Names {
		locale := normalizeLocale(rawLocale)
		if _, exists := available[locale]; exists {
			return fmt.Errorf("territories: duplicate name table for locale %q", locale)
		}
		available[locale] = struct{}{}
	}

	if len(cfg.Locales) > 0 {
		cfg.Locales = normalizeLocales(cfg.Locales)
		for _, locale := range cfg.Locales {
			if _, ok := available[locale]; !ok {
				return fmt.Errorf("territories: locale %q has no name table in dataset", locale)
			}
		}
	} else {
		locales := make([]string, 0, len(available))
		for locale := range available {
			locales = append(locales, locale)
		}
		cfg.Locales = normalizeLocales(locales)
	}

	if cfg.DefaultLocale != "" {
		cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
		if _, ok := available[cfg.DefaultLocale]; !ok {
			return fmt.Errorf("territories: default locale %q has no name table in dataset", cfg.DefaultLocale)
		}
		found := false
		for _, locale := range cfg.Locales {
			if locale == cfg.DefaultLocale {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("territories: default locale %q is not among the configured locales", cfg.DefaultLocale)
		}
	} else if len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
		for _, locale := range cfg.Locales {
			if locale == "en" {
				cfg.DefaultLocale = locale
				break
			}
		}
	}

	return nil
}

// selectNames returns the dataset name tables limited to configured locales.
// Raw keys that normalize to the same locale would otherwise collapse into
// one map slot here, so the collision is rejected before it can pick a
// winner by map iteration order.
func (cfg *Config) selectNames() (map[string][]NameEntry, error) {
	if len(cfg.Dataset.Names) == 0 {
		return nil, nil
	}

	wanted := make(map[string]struct{}, len(cfg.Locales))
	for _, locale := range cfg.Locales {
		wanted[locale] = struct{}{}
	}

	out := make(map[string][]NameEntry, len(wanted))
	for rawLocale, entries := range cfg.Dataset.Names {
		locale := normalizeLocale(rawLocale)
		if _, ok := wanted[locale]; !ok {
			continue
		}
		if _, exists := out[locale]; exists {
			return nil, fmt.Errorf("territories: duplicate name table for locale %q", locale)
		}
		out[locale] = entries
	}
	return out, nil
}
