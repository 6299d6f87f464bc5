package territories

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/default_dataset.yaml
var defaultDatasetYAML []byte

// Loader retrieves the dataset used to seed a Knowledge.
type Loader interface {
	Load() (*Dataset, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() (*Dataset, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (*Dataset, error) {
	return fn()
}

// FileLoader reads dataset files in YAML or JSON form and merges them in
// path order, later files taking precedence per territory, per containment
// parent, and per name-table locale.
type FileLoader struct {
	paths []string
}

// NewFileLoader creates a loader over the given dataset files.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load reads and merges every configured dataset file.
func (l *FileLoader) Load() (*Dataset, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("territories: no loader paths configured")
	}

	merged := &datasetFile{}

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("territories: read %s: %w", path, err)
		}

		src, err := decodeDatasetFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("territories: decode %s: %w", path, err)
		}
		merged.merge(src)
	}

	return merged.dataset(), nil
}

// DefaultDataset returns the dataset embedded in the module: a compact
// CLDR-derived slice of territories, containment, and names.
func DefaultDataset() (*Dataset, error) {
	var file datasetFile
	if err := yaml.Unmarshal(defaultDatasetYAML, &file); err != nil {
		return nil, fmt.Errorf("territories: parse embedded dataset: %w", err)
	}
	return file.dataset(), nil
}

// datasetFile is the on-disk shape of a dataset document.
type datasetFile struct {
	Territories map[string]AttributeRecord `json:"territories" yaml:"territories"`
	Containment map[string][]string        `json:"containment" yaml:"containment"`
	Names       map[string][]nameEntryFile `json:"names" yaml:"names"`
}

type nameEntryFile struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

func decodeDatasetFile(path string, data []byte) (*datasetFile, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var file datasetFile
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return &file, nil
}

// merge overlays src onto f, src taking precedence.
func (f *datasetFile) merge(src *datasetFile) {
	if src == nil {
		return
	}

	if len(src.Territories) > 0 {
		if f.Territories == nil {
			f.Territories = make(map[string]AttributeRecord, len(src.Territories))
		}
		for code, record := range src.Territories {
			f.Territories[code] = record
		}
	}

	if len(src.Containment) > 0 {
		if f.Containment == nil {
			f.Containment = make(map[string][]string, len(src.Containment))
		}
		for parent, children := range src.Containment {
			f.Containment[parent] = append([]string(nil), children...)
		}
	}

	if len(src.Names) > 0 {
		if f.Names == nil {
			f.Names = make(map[string][]nameEntryFile, len(src.Names))
		}
		for locale, entries := range src.Names {
			f.Names[locale] = append([]nameEntryFile(nil), entries...)
		}
	}
}

// dataset converts the file shape into the in-memory Dataset. Containment
// parents are emitted in sorted order for determinism; child order within a
// parent is preserved as declared.
func (f *datasetFile) dataset() *Dataset {
	out := &Dataset{}

	if len(f.Territories) > 0 {
		out.Attributes = make(map[Code]AttributeRecord, len(f.Territories))
		for code, record := range f.Territories {
			out.Attributes[Normalize(code)] = record
		}
	}

	if len(f.Containment) > 0 {
		parents := make([]string, 0, len(f.Containment))
		for parent := range f.Containment {
			parents = append(parents, parent)
		}
		sort.Strings(parents)

		out.Containment = make([]ContainmentEntry, 0, len(parents))
		for _, parent := range parents {
			children := make([]Code, 0, len(f.Containment[parent]))
			for _, child := range f.Containment[parent] {
				children = append(children, Normalize(child))
			}
			out.Containment = append(out.Containment, ContainmentEntry{
				Parent:   Normalize(parent),
				Children: children,
			})
		}
	}

	if len(f.Names) > 0 {
		out.Names = make(map[string][]NameEntry, len(f.Names))
		for locale, entries := range f.Names {
			converted := make([]NameEntry, 0, len(entries))
			for _, entry := range entries {
				converted = append(converted, NameEntry{
					Code: Normalize(entry.Code),
					Name: entry.Name,
				})
			}
			out.Names[normalizeLocale(locale)] = converted
		}
	}

	return out
}
