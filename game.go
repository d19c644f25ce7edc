package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/kongclimb/common"
	"github.com/milk9111/kongclimb/entity"
	"github.com/milk9111/kongclimb/level"
	"github.com/milk9111/kongclimb/levelstate"
	"github.com/milk9111/kongclimb/prefabs"
	"github.com/milk9111/kongclimb/render"
	"github.com/milk9111/kongclimb/screen"
	"github.com/milk9111/kongclimb/status"
)

const appName = "kongclimb"

// Game wires the level manager, the screen router and the shared services
// together. It implements both ebiten.Game and levelstate.Game.
type Game struct {
	debug      bool
	startLevel int

	specs   *prefabs.Library
	watcher *prefabs.Watcher

	status  *status.Status
	level   *level.Manager
	screens *screen.Manager
}

func NewGame(startLevel int, debug, watch bool) (*Game, error) {
	specs, err := prefabs.LoadLibrary()
	if err != nil {
		return nil, fmt.Errorf("load prefabs: %w", err)
	}

	g := &Game{
		debug:      debug,
		startLevel: max(startLevel, 1),
		specs:      specs,
		status:     status.New(specs.Game, status.OpenStore(appName)),
		screens:    screen.NewManager(),
	}

	g.level = level.New(level.Options{
		Game:   g,
		Status: g.status,
		Specs:  specs,
		Input:  entity.Keyboard{},
		Log:    levelstate.NewLogger(log.Default(), debug),
	})

	if watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("[game] prefab watcher unavailable: %v", err)
		} else {
			log.Printf("[game] watching %s for changes", prefabs.Dir)
			g.watcher = w
		}
	}

	g.registerScreens()
	g.screens.ChangeScreen(common.ScreenTitle)
	return g, nil
}

func (g *Game) registerScreens() {
	g.screens.Register(common.ScreenTitle, &screen.Menu{
		Title: g.title(),
		Info:  func() string { return fmt.Sprintf("Best: %d", g.status.Best()) },
		Buttons: []screen.Button{
			{Label: "Play", OnClick: g.newRun},
		},
	})
	g.screens.Register(common.ScreenPlaying, screen.NewPlaying(g.level, g.toTitle))
	g.screens.Register(common.ScreenVictory, &screen.Menu{
		Title:    "You saved the princess!",
		Info:     g.summary,
		Buttons:  []screen.Button{{Label: "Play again", OnClick: g.newRun}, {Label: "Title", OnClick: g.toTitle}},
		Backdrop: g.drawLevel,
	})
	g.screens.Register(common.ScreenGameOver, &screen.Menu{
		Title:    "Game Over",
		Info:     g.summary,
		Buttons:  []screen.Button{{Label: "Try again", OnClick: g.newRun}, {Label: "Title", OnClick: g.toTitle}},
		Backdrop: g.drawLevel,
	})
}

func (g *Game) title() string {
	if g.specs.Game.Title != "" {
		return g.specs.Game.Title
	}
	return appName
}

func (g *Game) summary() string {
	return fmt.Sprintf("Score: %d   Best: %d   Levels: %d", g.status.Score(), g.status.Best(), g.status.LevelsCleared())
}

func (g *Game) newRun() {
	g.status.Commit()
	g.status.Reset()
	if err := g.level.Start(g.startLevel); err != nil {
		log.Printf("[game] start level %d: %v", g.startLevel, err)
		return
	}
	g.screens.ChangeScreen(common.ScreenPlaying)
}

func (g *Game) toTitle() {
	g.status.Commit()
	g.screens.ChangeScreen(common.ScreenTitle)
}

func (g *Game) drawLevel(dst *ebiten.Image) {
	g.level.Draw(render.NewScreen(dst))
}

func (g *Game) Update() error {
	g.reloadPrefabs()

	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if id, _ := g.screens.Current(); id == common.ScreenPlaying {
			log.Printf("[game] debug: completing the game")
			g.level.CompleteGame()
		}
	}

	return g.screens.Update()
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, path := range g.watcher.Drain() {
		if err := g.specs.Reload(path); err != nil {
			log.Printf("[game] reload %s: %v", path, err)
			continue
		}
		log.Printf("[game] reloaded %s", path)
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("[game] prefab watcher: %v", err)
	default:
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.screens.Draw(dst)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.WindowWidth()), float64(g.WindowHeight())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher and saves the best score.
func (g *Game) Close() {
	g.status.Commit()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Player() (levelstate.Player, bool) {
	p, ok := g.level.Handler().Player()
	if !ok {
		return nil, false
	}
	return p, true
}

func (g *Game) Objects() []levelstate.GameObject {
	return g.level.Handler().GameObjects()
}

func (g *Game) Status() (levelstate.StatusService, bool) {
	return g.status, g.status != nil
}

func (g *Game) Screens() (levelstate.ScreenManager, bool) {
	return g.screens, g.screens != nil
}

func (g *Game) WindowWidth() int {
	if g.specs.Game.WindowWidth > 0 {
		return g.specs.Game.WindowWidth
	}
	return common.BaseWidth
}

func (g *Game) WindowHeight() int {
	if g.specs.Game.WindowHeight > 0 {
		return g.specs.Game.WindowHeight
	}
	return common.BaseHeight
}
