package repositories

import (
	"strings"
	"testing"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestBuildSearchQueryNoCriteria(t *testing.T) {
	repo := NewPetRepository()

	query, args := repo.BuildSearchQuery(PetFilter{})
	if strings.Contains(query, "WHERE") {
		t.Errorf("empty filter must not produce a WHERE clause: %s", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC") {
		t.Errorf("missing ordering clause: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildSearchQueryCategory(t *testing.T) {
	repo := NewPetRepository()

	query, args := repo.BuildSearchQuery(PetFilter{Category: "Dogs"})
	if !strings.Contains(query, "category_id IN (SELECT id FROM categories WHERE name=$1)") {
		t.Errorf("unexpected category clause: %s", query)
	}
	if len(args) != 1 || args[0] != "Dogs" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSearchQueryPriceRange(t *testing.T) {
	repo := NewPetRepository()

	query, args := repo.BuildSearchQuery(PetFilter{PriceMin: intPtr(100), PriceMax: intPtr(500)})
	if !strings.Contains(query, "price >= $1") {
		t.Errorf("missing price floor: %s", query)
	}
	if !strings.Contains(query, "price <= $2") {
		t.Errorf("missing price ceiling: %s", query)
	}
	if len(args) != 2 || args[0] != 100 || args[1] != 500 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildSearchQueryNameSubstring(t *testing.T) {
	repo := NewPetRepository()

	query, args := repo.BuildSearchQuery(PetFilter{Name: "Rex"})
	if !strings.Contains(query, "LOWER(name) LIKE LOWER($1)") {
		t.Errorf("missing case-insensitive name clause: %s", query)
	}
	if len(args) != 1 || args[0] != "%Rex%" {
		t.Errorf("expected wildcard-wrapped arg, got %v", args)
	}
}

func TestBuildSearchQueryVaccinated(t *testing.T) {
	repo := NewPetRepository()

	query, args := repo.BuildSearchQuery(PetFilter{Vaccinated: boolPtr(true)})
	if !strings.Contains(query, "vaccinated = $1") {
		t.Errorf("missing vaccinated clause: %s", query)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("unexpected args: %v", args)
	}

	_, args = repo.BuildSearchQuery(PetFilter{Vaccinated: boolPtr(false)})
	if len(args) != 1 || args[0] != false {
		t.Errorf("explicit false must still bind an arg, got %v", args)
	}
}

func TestBuildSearchQueryCombinesWithAND(t *testing.T) {
	repo := NewPetRepository()

	filter := PetFilter{
		Category:   "Cats",
		PriceMin:   intPtr(50),
		PriceMax:   intPtr(300),
		Name:       "mi",
		Vaccinated: boolPtr(true),
	}
	query, args := repo.BuildSearchQuery(filter)

	if strings.Count(query, " AND ") != 4 {
		t.Errorf("expected 4 AND joins for 5 criteria: %s", query)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d: %v", len(args), args)
	}

	// Placeholder numbering must follow criterion order.
	for i, clause := range []string{
		"categories WHERE name=$1",
		"price >= $2",
		"price <= $3",
		"LOWER($4)",
		"vaccinated = $5",
	} {
		if !strings.Contains(query, clause) {
			t.Errorf("clause %d missing or misnumbered (%q): %s", i+1, clause, query)
		}
	}

	if args[0] != "Cats" || args[1] != 50 || args[2] != 300 || args[3] != "%mi%" || args[4] != true {
		t.Errorf("args out of order: %v", args)
	}
}
