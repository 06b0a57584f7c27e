package services

import "testing"

func TestParseFilterEmpty(t *testing.T) {
	filter, err := ParseFilter("", "", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Category != "" || filter.Name != "" {
		t.Errorf("expected empty string criteria, got %+v", filter)
	}
	if filter.PriceMin != nil || filter.PriceMax != nil || filter.Vaccinated != nil {
		t.Errorf("expected nil pointer criteria, got %+v", filter)
	}
}

func TestParseFilterPrices(t *testing.T) {
	filter, err := ParseFilter("", "100", "500", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.PriceMin == nil || *filter.PriceMin != 100 {
		t.Errorf("expected price_min 100, got %v", filter.PriceMin)
	}
	if filter.PriceMax == nil || *filter.PriceMax != 500 {
		t.Errorf("expected price_max 500, got %v", filter.PriceMax)
	}
}

func TestParseFilterBadPrices(t *testing.T) {
	if _, err := ParseFilter("", "abc", "", "", ""); err == nil {
		t.Error("expected error for non-numeric price_min")
	}
	if _, err := ParseFilter("", "", "12.5", "", ""); err == nil {
		t.Error("expected error for fractional price_max")
	}
	if _, err := ParseFilter("", "-1", "", "", ""); err == nil {
		t.Error("expected error for negative price_min")
	}
}

func TestParseFilterVaccinated(t *testing.T) {
	filter, err := ParseFilter("", "", "", "", "yes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Vaccinated == nil || !*filter.Vaccinated {
		t.Errorf("expected vaccinated=true for yes, got %v", filter.Vaccinated)
	}

	// Anything other than "yes" means not vaccinated.
	filter, err = ParseFilter("", "", "", "", "no")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Vaccinated == nil || *filter.Vaccinated {
		t.Errorf("expected vaccinated=false for no, got %v", filter.Vaccinated)
	}
}

func TestParseFilterTrims(t *testing.T) {
	filter, err := ParseFilter("  Dogs  ", " 10 ", "", "  Rex ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.Category != "Dogs" {
		t.Errorf("expected trimmed category, got %q", filter.Category)
	}
	if filter.Name != "Rex" {
		t.Errorf("expected trimmed name, got %q", filter.Name)
	}
	if filter.PriceMin == nil || *filter.PriceMin != 10 {
		t.Errorf("expected trimmed price_min 10, got %v", filter.PriceMin)
	}
}
