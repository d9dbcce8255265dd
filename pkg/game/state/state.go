package state

import (
	"math/rand"
	"time"

	"blueprince/pkg/engine/world"
	"blueprince/pkg/game/deck"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/rooms"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns the storage representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Message is one line of the in-game message log.
type Message struct {
	Text      string
	Timestamp int64 // Unix milliseconds, used by the renderer to fade lines out
}

// Draft holds the state of an in-progress room selection.
type Draft struct {
	// Candidates are the rooms currently on offer.
	Candidates []*rooms.Blueprint

	// Cursor is the index of the highlighted candidate.
	Cursor int

	// TargetRow/TargetCol is the empty cell being filled.
	TargetRow int
	TargetCol int

	// Entry is the direction the player is moving in, i.e. the side of the
	// new room that must carry a doorway back toward the player.
	Entry world.Direction
}

// Game represents the full state of a single run.
type Game struct {
	Grid        *world.Grid
	CurrentCell *world.Cell

	Inventory *inventory.Inventory
	Deck      *deck.Deck
	Catalog   *rooms.Catalog

	// Rng drives every random decision of the run; seeding it makes the
	// whole run reproducible.
	Rng  *rand.Rand
	Seed int64

	Messages []Message

	// Draft is non-nil while a room selection is open.
	Draft *Draft

	RoomsPlaced int

	Outcome     Outcome
	OutcomeText string

	ShowInventory bool
	QuitRequested bool

	StartedAt time.Time
}

// NewGame creates an empty game shell. The lifecycle layer builds the board,
// deck and starting position.
func NewGame(seed int64) *Game {
	return &Game{
		Inventory: inventory.New(),
		Rng:       rand.New(rand.NewSource(seed)),
		Seed:      seed,
		Messages:  make([]Message, 0),
		StartedAt: time.Now(),
	}
}

// Running returns true while the run has not ended.
func (g *Game) Running() bool {
	return g.Outcome == OutcomeNone && !g.QuitRequested
}

// Drafting returns true while a room selection is open.
func (g *Game) Drafting() bool {
	return g.Draft != nil
}

// Finish records the run outcome. The first outcome wins; later calls are
// ignored so a loss cannot overwrite a win from the same turn.
func (g *Game) Finish(outcome Outcome, text string) {
	if g.Outcome != OutcomeNone {
		return
	}
	g.Outcome = outcome
	g.OutcomeText = text
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, Message{
		Text:      msg,
		Timestamp: time.Now().UnixMilli(),
	})

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]Message, 0)
}
