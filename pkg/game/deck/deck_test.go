package deck

import (
	"math/rand"
	"testing"

	"blueprince/pkg/game/rooms"
)

func buildTestDeck(t *testing.T, seed int64) (*Deck, *rooms.Catalog) {
	t.Helper()

	catalog, err := rooms.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	return New(catalog, rand.New(rand.NewSource(seed))), catalog
}

func TestCopiesForRarity(t *testing.T) {
	tests := []struct {
		rarity int
		want   int
	}{
		{0, 7},
		{1, 5},
		{2, 3},
		{3, 1},
		{4, 1},
	}

	for _, tc := range tests {
		if got := CopiesForRarity(tc.rarity); got != tc.want {
			t.Errorf("CopiesForRarity(%v): got %v, want %v", tc.rarity, got, tc.want)
		}
	}
}

func TestNewDeckContents(t *testing.T) {
	d, _ := buildTestDeck(t, 1)

	if got := d.Count(rooms.NameEntranceHall); got != 0 {
		t.Errorf("entrance hall copies: got %v, want 0", got)
	}

	if got := d.Count(rooms.NameAntechamber); got != 1 {
		t.Errorf("antechamber copies: got %v, want 1", got)
	}

	if got := d.Count("Empty"); got != 7 {
		t.Errorf("empty room copies: got %v, want 7", got)
	}

	if got := d.Count("Den"); got != 5 {
		t.Errorf("den copies: got %v, want 5", got)
	}

	if got := d.Count("Garden"); got != 3 {
		t.Errorf("garden copies: got %v, want 3", got)
	}
}

func TestRemove(t *testing.T) {
	d, catalog := buildTestDeck(t, 1)

	goal := catalog.ByName(rooms.NameAntechamber)

	if !d.Remove(goal) {
		t.Fatalf("expected to remove the single antechamber copy")
	}

	if d.Remove(goal) {
		t.Errorf("expected second removal to fail")
	}

	if got := d.Count(rooms.NameAntechamber); got != 0 {
		t.Errorf("antechamber copies after removal: got %v, want 0", got)
	}
}

func TestSampleDistinctRooms(t *testing.T) {
	d, _ := buildTestDeck(t, 42)

	for trial := 0; trial < 50; trial++ {
		picks := d.Sample(d.Cards(), 3)

		if len(picks) != 3 {
			t.Fatalf("sample size: got %v, want 3", len(picks))
		}

		seen := make(map[string]bool)
		for _, b := range picks {
			if seen[b.Name] {
				t.Fatalf("room %q offered twice in one sample", b.Name)
			}
			seen[b.Name] = true
		}
	}
}

func TestSampleSmallPool(t *testing.T) {
	d, catalog := buildTestDeck(t, 7)

	pool := []*rooms.Blueprint{catalog.ByName("Den")}
	picks := d.Sample(pool, 3)

	if len(picks) != 1 {
		t.Errorf("sample from single-room pool: got %v picks, want 1", len(picks))
	}

	if len(d.Sample(nil, 3)) != 0 {
		t.Errorf("sample from empty pool should yield nothing")
	}
}

func TestSamplePrefersCommonRooms(t *testing.T) {
	d, _ := buildTestDeck(t, 99)

	common := 0
	rare := 0
	for trial := 0; trial < 500; trial++ {
		picks := d.Sample(d.Cards(), 1)
		switch picks[0].Name {
		case "Empty":
			common++
		case "Vault", rooms.NameAntechamber:
			rare++
		}
	}

	if common <= rare {
		t.Errorf("rarity weighting looks inverted: common %v, rare %v", common, rare)
	}
}

func TestAddCopies(t *testing.T) {
	d, catalog := buildTestDeck(t, 1)

	furnace := catalog.ByName(rooms.NameFurnace)
	before := d.Count(rooms.NameFurnace)

	d.AddCopies(furnace, 2)

	if got := d.Count(rooms.NameFurnace); got != before+2 {
		t.Errorf("furnace copies: got %v, want %v", got, before+2)
	}
}
