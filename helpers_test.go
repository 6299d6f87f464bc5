package territories

import "testing"

func intPtr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }

// testDataset is a compact in-code dataset exercising multi-parent
// containment and a duplicated display name.
func testDataset() *Dataset {
	return &Dataset{
		Attributes: map[Code]AttributeRecord{
			"150": {},
			"154": {},
			"EU":  {},
			"GB": {
				Population:        intPtr(65761117),
				GDP:               intPtr(2925000000000),
				LiteracyPercent:   floatPtr(99),
				MeasurementSystem: "UK",
				PaperSize:         "A4",
				TelephoneCode:     44,
				Currencies: []CurrencyPeriod{
					{Currency: "GBP", From: "1694-07-27"},
				},
				Languages: map[string]LanguagePopulation{
					"en": {Percent: 98, Official: true},
					"cy": {Percent: 1, WritingPercent: 0.9},
				},
			},
			"IE": {
				Population:    intPtr(5275004),
				TelephoneCode: 353,
				Currencies: []CurrencyPeriod{
					{Currency: "IEP", From: "1928-02-10", To: "2002-02-09"},
					{Currency: "EUR", From: "2002-01-01"},
				},
			},
			"XA": {Population: intPtr(100)},
			"XB": {Population: intPtr(200)},
			"XC": {Population: intPtr(300)},
		},
		Containment: []ContainmentEntry{
			{Parent: "150", Children: []Code{"154"}},
			{Parent: "154", Children: []Code{"GB", "IE"}},
			{Parent: "EU", Children: []Code{"IE", "XA", "XB"}},
		},
		Names: map[string][]NameEntry{
			"en": {
				{Code: "150", Name: "Europe"},
				{Code: "154", Name: "Northern Europe"},
				{Code: "EU", Name: "European Union"},
				{Code: "GB", Name: "United Kingdom"},
				{Code: "IE", Name: "Ireland"},
				{Code: "XA", Name: "Borderland"},
				{Code: "XB", Name: "Borderland"},
				{Code: "XC", Name: "Farland"},
			},
			"pt": {
				{Code: "150", Name: "Europa"},
				{Code: "154", Name: "Europa Setentrional"},
				{Code: "EU", Name: "União Europeia"},
				{Code: "GB", Name: "Reino Unido"},
				{Code: "IE", Name: "Irlanda"},
				{Code: "XA", Name: "Terra de Fronteira"},
			},
		},
	}
}

func testKnowledge(t *testing.T, opts ...Option) *Knowledge {
	t.Helper()

	kb, err := New(append([]Option{WithDataset(testDataset()), WithDefaultLocale("en")}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return kb
}
