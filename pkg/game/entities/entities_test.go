package entities

import (
	"math/rand"
	"testing"

	"blueprince/pkg/game/inventory"
)

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestRollLootNeverEmpty(t *testing.T) {
	rng := testRand(1)

	impossible := []lootDrop{{inventory.Gems, 1, 0.0}}

	for trial := 0; trial < 100; trial++ {
		awards := rollLoot(rng, impossible)
		if len(awards) != 1 {
			t.Fatalf("awards: got %v, want the consolation prize", awards)
		}
		if awards[0].Resource != inventory.Coins || awards[0].Amount != consolationCoins {
			t.Fatalf("consolation award: got %+v", awards[0])
		}
	}
}

func TestChestNeedsKeyOrHammer(t *testing.T) {
	chest := &Chest{}
	inv := inventory.New()
	rng := testRand(2)

	msg := chest.Open(inv, rng)
	if chest.Opened() {
		t.Fatalf("chest opened without key or hammer: %q", msg)
	}

	inv.Add(inventory.Keys, 1)
	chest.Open(inv, rng)

	if !chest.Opened() {
		t.Fatalf("chest should open with a key")
	}

	if got := inv.Count(inventory.Keys); got > 1 {
		// The key is spent, though the loot roll may return one.
		t.Errorf("keys after opening: got %v, want at most 1", got)
	}
}

func TestChestHammerKeepsKey(t *testing.T) {
	chest := &Chest{}
	inv := inventory.New()
	inv.Grant(inventory.Hammer)
	inv.Add(inventory.Keys, 3)

	chest.Open(inv, testRand(3))

	if !chest.Opened() {
		t.Fatalf("chest should open with the hammer")
	}

	if got := inv.Count(inventory.Keys); got < 3 {
		t.Errorf("hammer opening must not consume a key: got %v keys", got)
	}
}

func TestChestOpensOnce(t *testing.T) {
	chest := &Chest{}
	inv := inventory.New()
	inv.Grant(inventory.Hammer)
	rng := testRand(4)

	chest.Open(inv, rng)
	coins := inv.Count(inventory.Coins)
	gems := inv.Count(inventory.Gems)

	msg := chest.Open(inv, rng)
	if msg != "The chest is empty." {
		t.Errorf("second open message: got %q", msg)
	}

	if inv.Count(inventory.Coins) != coins || inv.Count(inventory.Gems) != gems {
		t.Errorf("second open must not award loot")
	}
}

func TestLockerIgnoresHammer(t *testing.T) {
	locker := &Locker{}
	inv := inventory.New()
	inv.Grant(inventory.Hammer)

	locker.Open(inv, testRand(5))
	if locker.Opened() {
		t.Fatalf("locker must not open with the hammer")
	}

	inv.Add(inventory.Keys, 1)
	locker.Open(inv, testRand(5))
	if !locker.Opened() {
		t.Fatalf("locker should open with a key")
	}
}

func TestDigSiteNeedsShovel(t *testing.T) {
	site := &DigSite{}
	inv := inventory.New()

	site.Open(inv, testRand(6))
	if site.Opened() {
		t.Fatalf("dig site must not open without the shovel")
	}

	inv.Grant(inventory.Shovel)
	site.Open(inv, testRand(6))
	if !site.Opened() {
		t.Fatalf("dig site should open with the shovel")
	}
}

func TestSpawn(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"chest", "chest"},
		{"locker", "locker"},
		{"dig_site", "dig site"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			obj := Spawn(tc.id)
			if obj == nil {
				t.Fatalf("Spawn(%q) returned nil", tc.id)
			}
			if got := obj.Name(); got != tc.want {
				t.Errorf("name: got %q, want %q", got, tc.want)
			}
		})
	}

	if Spawn("statue") != nil {
		t.Errorf("unknown spawn id should return nil")
	}
}

func TestAwardText(t *testing.T) {
	tests := []struct {
		awards []Award
		want   string
	}{
		{[]Award{{inventory.Coins, 15}}, "15 coins"},
		{[]Award{{inventory.Keys, 1}}, "a key"},
		{[]Award{{inventory.Gems, 1}, {inventory.Coins, 10}}, "a gem and 10 coins"},
		{[]Award{{inventory.Gems, 1}, {inventory.Keys, 1}, {inventory.Coins, 15}}, "a gem, a key and 15 coins"},
	}

	for _, tc := range tests {
		if got := awardText(tc.awards); got != tc.want {
			t.Errorf("awardText(%v): got %q, want %q", tc.awards, got, tc.want)
		}
	}
}
