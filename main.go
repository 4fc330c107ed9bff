package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lunargale/shelfsort/constants"
	"github.com/lunargale/shelfsort/content"
	"github.com/lunargale/shelfsort/engine"
	"github.com/lunargale/shelfsort/events"
	"github.com/lunargale/shelfsort/game"
	"github.com/lunargale/shelfsort/input"
	"github.com/lunargale/shelfsort/render"
)

type Game struct {
	screen   tcell.Screen
	provider engine.TimeProvider
	clock    *engine.Clock
	machine  *input.Machine
	renderer *render.Renderer

	catalog  *game.ProductCatalog
	levelDef *content.LevelDef
	level    *game.Level
	router   *events.Router[*game.Level]
	notices  *notices

	verbose bool
}

func NewGame(productsPath, levelPath string, verbose bool) (*Game, error) {
	products, err := content.LoadProducts(productsPath)
	if err != nil {
		return nil, err
	}
	levelDef, err := content.LoadLevel(levelPath, products)
	if err != nil {
		return nil, err
	}
	catalog, err := game.NewProductCatalog(products)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	provider := engine.NewMonotonicTimeProvider()
	g := &Game{
		screen:   screen,
		provider: provider,
		clock:    engine.NewClock(provider),
		machine:  input.NewMachine(),
		renderer: render.NewRenderer(screen),
		catalog:  catalog,
		levelDef: levelDef,
		notices:  &notices{},
		verbose:  verbose,
	}
	if err := g.restart(); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// restart rebuilds the level from its definition. Each level carries its
// own event queue, so the router is rebuilt against it too
func (g *Game) restart() error {
	level, err := game.NewLevel(g.levelDef, g.catalog, g.provider)
	if err != nil {
		return err
	}
	g.level = level
	g.router = events.NewRouter[*game.Level](level.Events())
	g.router.Register(g.notices)
	if g.verbose {
		g.router.Register(eventLogger{})
	}
	g.notices.Reset()
	g.machine.Reset()
	return nil
}

func (g *Game) handleIntent(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentRestart:
		if err := g.restart(); err != nil {
			log.Printf("restart failed: %v", err)
		}
	case input.IntentResize:
		g.renderer.Resize()
	case input.IntentPress:
		g.level.BeginDrag(g.renderer.ToWorld(in.X, in.Y))
	case input.IntentDrag:
		g.level.MoveDrag(g.renderer.ToWorld(in.X, in.Y))
	case input.IntentRelease:
		g.level.EndDrag(g.renderer.ToWorld(in.X, in.Y))
	}
	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			in := g.machine.Process(ev)
			if in == nil {
				continue
			}
			if !g.handleIntent(in) {
				return
			}

		case <-ticker.C:
			g.clock.Step(g.level)
			g.router.DispatchAll(g.level)
			g.renderer.SetStatus(g.notices.Message())
			g.renderer.Draw(g.level)
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func main() {
	productsPath := flag.String("products", "assets/products.yaml", "product definition file")
	levelPath := flag.String("level", "assets/level.yaml", "level definition file")
	verbose := flag.Bool("v", false, "log game events to stderr")
	flag.Parse()

	g, err := NewGame(*productsPath, *levelPath, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}
