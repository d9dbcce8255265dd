package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"blueprince/pkg/game/assets"
	"blueprince/pkg/game/config"
	"blueprince/pkg/game/gameplay"
	"blueprince/pkg/game/inventory"
	"blueprince/pkg/game/renderer"
	ebitenrenderer "blueprince/pkg/game/renderer/ebiten"
	"blueprince/pkg/game/renderer/tui"
	"blueprince/pkg/game/rooms"
	"blueprince/pkg/game/state"
	"blueprince/pkg/game/storage"
)

var (
	flagTUI    bool
	flagImages string
	flagRooms  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a new run of the mansion.

Controls:
  Arrows/WASD  - Move (walking into an unbuilt cell opens a draft)
  Enter        - Build the highlighted room
  R            - Reroll the draft (costs a die)
  E/Space      - Interact with the room's object
  I            - Toggle the inventory panel
  Esc          - Quit (or back out of a draft)

Examples:
  blueprince play
  blueprince play --tui
  blueprince play --seed 42
  blueprince play --rooms ./my-rooms.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Render in the terminal instead of a window")
	playCmd.Flags().StringVar(&flagImages, "images", "", "Directory holding room art (overrides config)")
	playCmd.Flags().StringVar(&flagRooms, "rooms", "", "Path to a custom room catalog YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Fatal("could not load settings", "error", err)
	}
	if flagImages != "" {
		cfg.ImagesDir = flagImages
	}
	if cfg.Language != "" {
		gotext.Configure("po", cfg.Language, "default")
	}

	catalog, err := rooms.Load(flagRooms)
	if err != nil {
		log.Fatal("could not load the room catalog", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := gameplay.BuildGame(seed, catalog)
	log.Info("run started", "seed", seed, "rooms", len(catalog.Rooms))

	store, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		log.Warn("run history disabled", "error", err)
		store = nil
	}

	if flagTUI {
		runTerminal(g, store)
		return
	}
	runWindowed(g, store, cfg)
}

// runTerminal plays the run synchronously in the terminal.
func runTerminal(g *state.Game, store *storage.Store) {
	r := tui.New()
	renderer.SetRenderer(r)
	r.Init()

	for !g.QuitRequested {
		r.Clear()
		r.RenderFrame(g)
		gameplay.ProcessIntent(g, r.GetInput())
	}

	finishRun(g, store)
}

// runWindowed plays the run in an Ebiten window. The window loop owns the
// main goroutine; the game loop runs alongside it and shuts the window down
// when the player quits.
func runWindowed(g *state.Game, store *storage.Store, cfg *config.Config) {
	images := assets.NewRegistry(cfg.ImagesDir)
	e := ebitenrenderer.New(images, cfg.TileSize)
	renderer.SetRenderer(e)
	e.Init()

	go func() {
		for !g.QuitRequested {
			e.RenderFrame(g)
			gameplay.ProcessIntent(g, e.GetInput())
		}
		e.RenderFrame(g)
		e.Shutdown()
	}()

	if err := e.Run(); err != nil {
		log.Error("window closed with error", "error", err)
	}

	finishRun(g, store)
}

// finishRun records a completed run. Runs abandoned before an outcome are
// not recorded.
func finishRun(g *state.Game, store *storage.Store) {
	if store == nil {
		return
	}
	defer store.Close()

	if g.Outcome == state.OutcomeNone {
		return
	}

	run := storage.RunRecord{
		Outcome:      g.Outcome.String(),
		RoomsPlaced:  g.RoomsPlaced,
		StepsLeft:    g.Inventory.Count(inventory.Steps),
		Coins:        g.Inventory.Count(inventory.Coins),
		Gems:         g.Inventory.Count(inventory.Gems),
		DurationSecs: int(time.Since(g.StartedAt).Seconds()),
	}

	id, err := store.SaveRun(run)
	if err != nil {
		log.Warn("could not record the run", "error", err)
		return
	}
	log.Info("run recorded", "id", id, "outcome", run.Outcome, "rooms", run.RoomsPlaced)
}
