package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/config"
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/logger"
	"github.com/meghashyamc/optics2d/render"
	"github.com/meghashyamc/optics2d/scene"
	"github.com/meghashyamc/optics2d/scenefile"
)

type GameState int

const (
	GameStateTracing GameState = iota
	GameStateSolved
)

const gameSolvedMessage = "TARGET HIT!"

type Game struct {
	cfg      *config.Config
	logger   logger.Logger
	scene    *scene.Scene
	renderer *render.Renderer
	width    int
	height   int

	sceneName string
	selected  component.Object
	// dragOffset is the cursor position relative to the selected object when the drag began.
	dragOffset geometry.Point
	dragging   bool
	// glow holds the obstacle collision points of the latest trace.
	glow []geometry.Point

	statsTimer  *Timer
	state       GameState
	userMessage string
}

func NewGame(cfg *config.Config) (*Game, error) {
	width, height := cfg.GetWindowWidth(), cfg.GetWindowHeight()
	renderer, err := render.New(width, height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		width:      width,
		height:     height,
		logger:     logger.NewWithLevel(cfg.GetLogLevel()),
		renderer:   renderer,
		statsTimer: NewTimer(time.Duration(cfg.GetStatsInterval()) * time.Second),
		state:      GameStateTracing,
	}

	if err := g.loadScene(); err != nil {
		return nil, err
	}

	g.logger.Info("game initialized", "scene", g.sceneName, "objects", g.scene.Len(), "max_extensions", g.scene.MaxExtensions())
	return g, nil
}

// loadScene replaces the current scene with a fresh copy of the configured one.
func (g *Game) loadScene() error {
	doc, err := scenefile.Open(g.cfg.GetSceneFile())
	if err != nil {
		return err
	}

	s := scene.New(
		scene.WithLogger(g.logger),
		scene.WithMaxExtensions(g.cfg.GetMaxExtensions()),
	)
	if err := doc.Populate(s); err != nil {
		return fmt.Errorf("failed to build scene %q: %w", doc.Name, err)
	}

	g.scene = s
	g.sceneName = doc.Name
	g.selected = nil
	g.dragging = false
	g.glow = nil
	return nil
}

func (g *Game) Run() error {
	g.logger.Info("starting viewer")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) Update() error {
	switch g.state {
	case GameStateTracing:
		return g.updateTracing()
	case GameStateSolved:
		return g.updateSolved()
	}
	return nil
}

func (g *Game) updateTracing() error {
	g.handleInput()
	g.trace()
	return nil
}

func (g *Game) updateSolved() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveSnapshot()
	}
	return nil
}

// trace rebuilds every ray path and collects what the rays ran into.
func (g *Game) trace() {
	report := g.scene.TraceAll()

	g.glow = g.glow[:0]
	for _, obj := range g.scene.Objects() {
		if o, ok := obj.(*component.Obstacle); ok {
			g.glow = append(g.glow, o.ConsumeCollisions()...)
		}
	}

	if g.statsTimer.Tick() {
		stats := g.scene.Stats()
		g.logger.Debug("trace stats", stats.KeyVals()...)
		g.scene.ResetStats()
	}

	if len(report.TargetHits) > 0 && g.allTargetsHit() {
		g.solve()
	}
}

func (g *Game) allTargetsHit() bool {
	found := false
	for _, obj := range g.scene.Objects() {
		t, ok := obj.(*component.Target)
		if !ok {
			continue
		}
		if !t.Hit() {
			return false
		}
		found = true
	}
	return found
}

func (g *Game) solve() {
	g.logger.Info("all targets hit", "scene", g.sceneName)
	g.deselect()
	g.userMessage = gameSolvedMessage
	g.state = GameStateSolved
}

func (g *Game) saveSnapshot() {
	path := g.cfg.GetSnapshotFile()
	if err := g.renderer.SavePNG(g.scene, path); err != nil {
		g.logger.Error("failed to save snapshot", "err", err)
		g.userMessage = "snapshot failed"
		return
	}
	g.logger.Info("snapshot saved", "path", path)
	g.userMessage = "saved " + path
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.drawScene(screen)

	switch g.state {
	case GameStateTracing:
		g.drawHUD(screen)
	case GameStateSolved:
		g.drawSolved(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// Reset reloads the scene from its source, discarding any edits.
func (g *Game) Reset() {
	g.logger.Debug("resetting scene", "scene", g.sceneName)
	if err := g.loadScene(); err != nil {
		g.logger.Error("failed to reload scene", "err", err)
		g.userMessage = "reload failed"
		return
	}
	g.userMessage = ""
	g.state = GameStateTracing
	g.logger.Debug("scene reset complete", "objects", g.scene.Len())
}
