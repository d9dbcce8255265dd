// Package deck implements the finite draw pile of room blueprints. The pile
// shrinks as rooms are placed and grows when draw effects shuffle copies in.
package deck

import (
	"math/rand"

	"blueprince/pkg/game/rooms"
)

// Deck is a multiset of blueprint instances. Cards of the same room share a
// single *rooms.Blueprint, so pointer equality means "same room".
type Deck struct {
	cards []*rooms.Blueprint
	rng   *rand.Rand
}

// CopiesForRarity returns the number of copies a room starts with in the deck.
func CopiesForRarity(rarity int) int {
	switch {
	case rarity >= 3:
		return 1
	case rarity == 2:
		return 3
	case rarity == 1:
		return 5
	default:
		return 7
	}
}

// New builds the starting deck from a catalog. The Entrance Hall is excluded:
// it is pre-placed on the board and can never be drafted.
func New(catalog *rooms.Catalog, rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	for _, b := range catalog.Rooms {
		if b.Name == rooms.NameEntranceHall {
			continue
		}
		d.AddCopies(b, CopiesForRarity(b.Rarity))
	}

	return d
}

// Size returns the number of cards left in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns the deck contents. Callers must not mutate the slice.
func (d *Deck) Cards() []*rooms.Blueprint {
	return d.cards
}

// Count returns how many copies of the named room remain.
func (d *Deck) Count(name string) int {
	n := 0
	for _, b := range d.cards {
		if b.Name == name {
			n++
		}
	}
	return n
}

// AddCopies shuffles n copies of a blueprint into the deck.
func (d *Deck) AddCopies(b *rooms.Blueprint, n int) {
	for i := 0; i < n; i++ {
		d.cards = append(d.cards, b)
	}
}

// Remove takes one copy of the given room out of the deck. Returns false if
// no copy is left.
func (d *Deck) Remove(b *rooms.Blueprint) bool {
	for i, card := range d.cards {
		if card == b {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Filter returns the cards matching the predicate, in deck order.
func (d *Deck) Filter(keep func(*rooms.Blueprint) bool) []*rooms.Blueprint {
	var out []*rooms.Blueprint
	for _, b := range d.cards {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// Sample draws up to k distinct rooms from the pool by weighted sampling
// without replacement: each pick is a roulette spin over the remaining
// cards' draw weights, and every copy of the chosen room is then removed
// from the running pool so the same room is never offered twice.
func (d *Deck) Sample(pool []*rooms.Blueprint, k int) []*rooms.Blueprint {
	remaining := make([]*rooms.Blueprint, len(pool))
	copy(remaining, pool)

	var picks []*rooms.Blueprint
	for len(picks) < k && len(remaining) > 0 {
		total := 0.0
		for _, b := range remaining {
			total += b.DrawWeight()
		}

		roll := d.rng.Float64() * total
		chosen := remaining[len(remaining)-1]
		for _, b := range remaining {
			roll -= b.DrawWeight()
			if roll <= 0 {
				chosen = b
				break
			}
		}

		picks = append(picks, chosen)

		next := remaining[:0]
		for _, b := range remaining {
			if b != chosen {
				next = append(next, b)
			}
		}
		remaining = next
	}

	return picks
}
