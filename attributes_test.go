package territories

import (
	"reflect"
	"testing"
)

func buildTestAttrs(t *testing.T) *AttributeStore {
	t.Helper()

	store, err := newAttributeStore(testDataset().Attributes)
	if err != nil {
		t.Fatalf("newAttributeStore: %v", err)
	}
	return store
}

func TestAttributeStoreRecord(t *testing.T) {
	store := buildTestAttrs(t)

	record, ok := store.Record("GB")
	if !ok {
		t.Fatal("Record(GB) missing")
	}
	if record.Population == nil || *record.Population != 65761117 {
		t.Fatalf("Record(GB).Population = %v, want 65761117", record.Population)
	}

	if _, ok := store.Record("ZZ"); ok {
		t.Fatal("Record(ZZ) should be absent")
	}
}

func TestAttributeStoreRecordReturnsCopy(t *testing.T) {
	store := buildTestAttrs(t)

	record, _ := store.Record("GB")
	*record.Population = 1
	record.Languages["en"] = LanguagePopulation{}

	fresh, _ := store.Record("GB")
	if *fresh.Population != 65761117 {
		t.Fatalf("store mutated through returned record: %d", *fresh.Population)
	}
	if fresh.Languages["en"].Percent != 98 {
		t.Fatalf("languages mutated through returned record: %v", fresh.Languages["en"])
	}
}

func TestAttributeStoreNormalizesKeys(t *testing.T) {
	store, err := newAttributeStore(map[Code]AttributeRecord{
		"gb": {TelephoneCode: 44},
	})
	if err != nil {
		t.Fatalf("newAttributeStore: %v", err)
	}

	if !store.Has("GB") {
		t.Fatal("expected lower-cased input key to canonicalize to GB")
	}
}

func TestAttributeStoreRejectsCollidingKeys(t *testing.T) {
	// "gb" and "GB" normalize to the same code; which record survives
	// would depend on map iteration order, so construction must fail.
	_, err := newAttributeStore(map[Code]AttributeRecord{
		"gb": {TelephoneCode: 44},
		"GB": {TelephoneCode: 45},
	})
	if err == nil {
		t.Fatal("expected colliding codes to fail construction")
	}
}

func TestAttributeStoreRejectsEmptyCode(t *testing.T) {
	if _, err := newAttributeStore(map[Code]AttributeRecord{
		" ": {TelephoneCode: 44},
	}); err == nil {
		t.Fatal("expected empty code to fail construction")
	}
}

func TestAttributeStoreCodesSorted(t *testing.T) {
	store := buildTestAttrs(t)

	want := []Code{"150", "154", "EU", "GB", "IE", "XA", "XB", "XC"}
	if got := store.Codes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}
}
