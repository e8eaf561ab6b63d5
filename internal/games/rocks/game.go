// Package rocks hosts a Rocks & Diamonds simulation on the platform:
// it turns input frames into controller cycles, exposes the gravity pass
// to the scheduler and draws the camera viewport into a screen buffer.
package rocks

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/rocks-diamonds/internal/config"
	"github.com/vovakirdan/rocks-diamonds/internal/core"
	rcore "github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

// hudHeight is the number of screen rows above the viewport.
const hudHeight = 1

// Game is one play session of a level.
type Game struct {
	id    string
	title string
	data  []byte // Pristine level bytes, used by Reset
	cfg   config.RocksConfig

	state    *rcore.State
	diamonds int // Diamonds in the level at start
	paused   bool
	last     rcore.MoveResult

	screenW int
	screenH int

	glyphs map[rcore.Tile]rune
}

// StepResult is returned by Step after each controller cycle.
type StepResult struct {
	State     core.GameState
	Move      rcore.MoveResult
	Restarted bool
}

// New creates a session for the given level bytes. The level is validated
// immediately so bad assets fail before the UI starts.
func New(id, title string, data []byte, cfg config.RocksConfig) (*Game, error) {
	g := &Game{
		id:    id,
		title: title,
		data:  append([]byte(nil), data...),
		cfg:   cfg,
	}
	g.glyphs = glyphTable(cfg.Render)

	if err := g.Reset(core.DefaultConfig()); err != nil {
		return nil, err
	}
	return g, nil
}

func glyphTable(r config.RenderConfig) map[rcore.Tile]rune {
	names := map[rcore.Tile]string{
		rcore.Empty:        "empty",
		rcore.Dirt:         "dirt",
		rcore.Wall:         "wall",
		rcore.Rock:         "rock",
		rcore.Diamond:      "diamond",
		rcore.PlayerMarker: "player",
	}
	table := make(map[rcore.Tile]rune, len(names))
	for tile, name := range names {
		table[tile] = r.Glyph(name, tile.Glyph())
	}
	return table
}

// ID returns the level identifier.
func (g *Game) ID() string { return g.id }

// Title returns the level display name.
func (g *Game) Title() string { return g.title }

// Reset restarts the level from its pristine bytes.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	s, err := rcore.NewState(g.data)
	if err != nil {
		return fmt.Errorf("level %s: %w", g.id, err)
	}
	if g.cfg.Camera.Step > 0 {
		s.CameraStep = g.cfg.Camera.Step
	}

	g.state = s
	g.diamonds = s.DiamondsLeft()
	g.paused = false
	g.last = rcore.MoveResult{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	return nil
}

// Resize updates the screen size used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step runs one controller cycle. Pause and Restart are handled here;
// direction actions go to the controller. While paused nothing advances.
func (g *Game) Step(in core.InputFrame) StepResult {
	if in.Has(core.ActionRestart) {
		// The level was validated by New, so Reset cannot fail here.
		_ = g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return StepResult{State: g.State(), Restarted: true}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return StepResult{State: g.State()}
	}

	g.last = g.state.Update(in.Buttons())
	return StepResult{State: g.State(), Move: g.last}
}

// Fall runs one gravity pass unless the session is paused.
func (g *Game) Fall() rcore.FallResult {
	if g.paused {
		return rcore.FallResult{Tick: g.state.Ticks}
	}
	return g.state.Fall()
}

// GravityInterval returns how often the scheduler should call Fall.
func (g *Game) GravityInterval() time.Duration {
	return g.cfg.GravityInterval()
}

// State returns the platform-facing status of the session. A level that
// starts without diamonds is never cleared.
func (g *Game) State() core.GameState {
	left := g.state.DiamondsLeft()
	return core.GameState{
		Score:        g.state.Player.Score,
		DiamondsLeft: left,
		Cleared:      g.diamonds > 0 && left == 0,
		Paused:       g.paused,
	}
}

// Sim exposes the underlying simulation state for snapshots and tests.
func (g *Game) Sim() *rcore.State { return g.state }

// Last returns the outcome of the most recent controller cycle.
func (g *Game) Last() rcore.MoveResult { return g.last }

// Render draws the HUD and the camera viewport into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	g.renderViewport(dst)

	st := g.State()
	switch {
	case st.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case st.Cleared:
		g.renderOverlay(dst, "All diamonds collected!", fmt.Sprintf("Score: %d  R to replay", st.Score))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf("Score: %d  Diamonds: %d", st.Score, st.DiamondsLeft)
	dst.DrawText(0, 0, hud, core.ColorHUD)

	title := g.title
	if x := dst.Width() - len([]rune(title)); x > len(hud)+2 {
		dst.DrawText(x, 0, title, core.ColorMuted)
	}
}

func (g *Game) renderViewport(dst *core.Screen) {
	viewW := dst.Width()
	viewH := dst.Height() - hudHeight
	if viewW <= 0 || viewH <= 0 {
		return
	}

	tile := g.cfg.Camera.TileSize
	if tile <= 0 {
		tile = 1
	}
	line := g.state.LineTransform(tile, viewW, viewH)

	for sy := 0; sy < viewH; sy++ {
		t := line(sy)
		gy := floorDiv(float64(sy)+t.TY, tile)
		for sx := 0; sx < viewW; sx++ {
			gx := floorDiv(float64(sx)+t.TX, tile)
			tl := g.state.Tile(rcore.C(gx, gy))
			dst.SetCell(sx, sy+hudHeight, core.Cell{Rune: g.glyph(tl), Color: tileColor(tl)})
		}
	}
}

// floorDiv maps a pixel coordinate to the grid cell containing it.
func floorDiv(px float64, tile int) int {
	return int(math.Floor(px / float64(tile)))
}

func (g *Game) glyph(t rcore.Tile) rune {
	if r, ok := g.glyphs[t]; ok {
		return r
	}
	return t.Glyph()
}

func tileColor(t rcore.Tile) core.Color {
	switch t {
	case rcore.Dirt:
		return core.ColorDirt
	case rcore.Wall:
		return core.ColorWall
	case rcore.Rock:
		return core.ColorRock
	case rcore.Diamond:
		return core.ColorDiamond
	case rcore.PlayerMarker:
		return core.ColorPlayer
	default:
		return core.ColorDefault
	}
}

func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	boxH := core.Clamp(5, 0, dst.Height())
	box := dst.Bounds().Centered(boxW, boxH)

	dst.DrawBox(box, core.ColorMuted)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorHUD)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorMuted)
}
