package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "blueprince/pkg/engine/input"
	"blueprince/pkg/game/assets"
)

// messageEntry is a log line with its timestamp, used for fade-out.
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix milliseconds
}

// snapCell is the render state of one board cell.
type snapCell struct {
	name      string
	colorName string
	image     string
	visited   bool
	goal      bool

	// doorway and lock level per direction, indexed by world.Direction
	ports [4]bool
	locks [4]int

	objectSymbol string
	objectOpened bool
	hasObject    bool
}

// snapCandidate is one draft card.
type snapCandidate struct {
	name      string
	colorName string
	image     string
	cost      int
	rarity    int
}

// renderSnapshot holds a consistent copy of the game state for drawing.
// RenderFrame fills it under lock; Draw only ever reads the snapshot, so the
// game loop and the Ebiten loop never race on live state.
type renderSnapshot struct {
	valid bool

	gridRows  int
	gridCols  int
	playerRow int
	playerCol int
	cells     [][]snapCell

	steps int
	coins int
	gems  int
	keys  int
	dice  int
	tools []string

	showInventory bool

	draftActive bool
	draftCursor int
	draftRow    int
	draftCol    int
	candidates  []snapCandidate

	outcome     string // "none", "win" or "loss"
	outcomeText string

	messages []messageEntry
}

// keyRepeatInfo tracks the repeat state for a held key or button.
type keyRepeatInfo struct {
	firstPressed int64 // Unix milliseconds of the initial press
	lastRepeat   int64 // Unix milliseconds of the last repeat event
}

// EbitenRenderer is the graphical renderer.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	// Tile size in pixels, adjustable with +/-
	tileSize int

	images *assets.Registry

	// Cached room textures, keyed by image id and colour
	tileCache      map[string]*ebiten.Image
	tileCacheMutex sync.Mutex

	// Font sources and faces cached per size
	monoFontSource     *text.GoTextFaceSource
	sansFontSource     *text.GoTextFaceSource
	sansBoldFontSource *text.GoTextFaceSource

	cachedTileFontSize float64
	cachedUIFontSize   float64
	cachedMonoFace     *text.GoTextFace
	cachedSansFace     *text.GoTextFace
	cachedSansBoldFace *text.GoTextFace

	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Log lines currently on screen, kept past the game's short log so they
	// can fade out instead of vanishing
	trackedMessages []messageEntry
	messagesMutex   sync.Mutex

	// Intents flowing from the Ebiten Update loop to the game loop
	inputChan chan engineinput.Intent

	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	// Closed by Shutdown; Update returns ebiten.Termination once closed
	done     chan struct{}
	doneOnce sync.Once

	windowOpenedLogged bool
}
