package inventory

import "testing"

func TestStartingInventory(t *testing.T) {
	inv := New()

	tests := []struct {
		resource Resource
		want     int
	}{
		{Steps, 70},
		{Coins, 0},
		{Gems, 2},
		{Keys, 0},
		{Dice, 0},
	}

	for _, tc := range tests {
		if got := inv.Count(tc.resource); got != tc.want {
			t.Errorf("starting %v: got %v, want %v", tc.resource, got, tc.want)
		}
	}

	if inv.ToolCount() != 0 {
		t.Errorf("starting tool count: got %v, want 0", inv.ToolCount())
	}
}

func TestSpend(t *testing.T) {
	inv := New()

	if !inv.Spend(Gems, 2) {
		t.Fatalf("expected to spend 2 gems")
	}

	if got := inv.Count(Gems); got != 0 {
		t.Errorf("gems after spend: got %v, want 0", got)
	}

	if inv.Spend(Gems, 1) {
		t.Errorf("expected spend to fail with 0 gems")
	}

	if got := inv.Count(Gems); got != 0 {
		t.Errorf("failed spend must not change the count: got %v", got)
	}
}

func TestTools(t *testing.T) {
	inv := New()

	if inv.HasTool(Shovel) {
		t.Errorf("shovel should not be held at start")
	}

	inv.Grant(Shovel)
	inv.Grant(Shovel)

	if !inv.HasTool(Shovel) {
		t.Errorf("shovel should be held after Grant")
	}

	if got := inv.ToolCount(); got != 1 {
		t.Errorf("tool count after double grant: got %v, want 1", got)
	}
}
