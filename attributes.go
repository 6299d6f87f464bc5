package territories

import (
	"fmt"
	"sort"
)

// AttributeStore holds the per-territory descriptive records. Its key set is
// the authoritative universe of valid territory codes. Read only after
// construction.
type AttributeStore struct {
	records map[Code]AttributeRecord
	codes   []Code
}

// newAttributeStore builds an immutable snapshot from the attribute data.
// Empty codes and keys that normalize to the same canonical code ("gb" next
// to "GB") fail construction.
func newAttributeStore(data map[Code]AttributeRecord) (*AttributeStore, error) {
	store := &AttributeStore{records: make(map[Code]AttributeRecord, len(data))}

	for rawCode, record := range data {
		code := Normalize(string(rawCode))
		if code == "" {
			return nil, fmt.Errorf("territories: attribute record with empty territory code")
		}
		if _, exists := store.records[code]; exists {
			return nil, fmt.Errorf("territories: duplicate attribute record for %q", code)
		}
		store.records[code] = record.Clone()
		store.codes = append(store.codes, code)
	}

	sort.Slice(store.codes, func(i, j int) bool { return store.codes[i] < store.codes[j] })

	return store, nil
}

// Record returns the attribute record for code and ok=false if absent.
func (s *AttributeStore) Record(code Code) (AttributeRecord, bool) {
	if s == nil {
		return AttributeRecord{}, false
	}
	record, ok := s.records[code]
	if !ok {
		return AttributeRecord{}, false
	}
	return record.Clone(), true
}

// Has reports whether code belongs to the authoritative code universe.
func (s *AttributeStore) Has(code Code) bool {
	if s == nil {
		return false
	}
	_, ok := s.records[code]
	return ok
}

// Codes returns every code in the universe, sorted.
func (s *AttributeStore) Codes() []Code {
	if s == nil || len(s.codes) == 0 {
		return nil
	}
	out := make([]Code, len(s.codes))
	copy(out, s.codes)
	return out
}

// universe exposes the key set for build-time containment validation.
func (s *AttributeStore) universe() map[Code]struct{} {
	if s == nil || len(s.records) == 0 {
		return nil
	}
	out := make(map[Code]struct{}, len(s.records))
	for code := range s.records {
		out[code] = struct{}{}
	}
	return out
}
