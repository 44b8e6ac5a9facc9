// Package game runs the interactive crawl: it owns the levels, the explorer's
// pose, the turn loop, and the HUD, and feeds each frame through the scanner
// and renderer onto a tcell screen.
package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/assets"
	"wireframe-crawler/internal/dungeon"
	"wireframe-crawler/internal/gamemap"
	"wireframe-crawler/internal/perspective"
	"wireframe-crawler/internal/term"
	"wireframe-crawler/internal/vision"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateVictory
	StateQuit
)

// viewDistance is how many tiles ahead one frame scans.
const viewDistance = 6

// hudRows is the screen strip reserved below the viewport.
const hudRows = 5

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	levels   []*dungeon.Level
	levelIdx int
	pose     dungeon.Pose
	state    GameState
	automap  bool
	messages []string
	log      RunLog
}

// New creates a Game on a freshly initialized local terminal screen, loaded
// with the built-in floors.
func New() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	levels, err := LoadLevels()
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return NewWithScreen(screen, levels)
}

// NewWithScreen creates a Game on a caller-owned screen. The caller remains
// responsible for Fini when not using Run.
func NewWithScreen(screen tcell.Screen, levels []*dungeon.Level) (*Game, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels to play")
	}
	g := &Game{
		screen: screen,
		levels: levels,
		log:    NewRunLog(),
	}
	g.enterLevel(0, levels[0].Start)
	g.addMessage("Use WASD or arrow keys. Q/E strafe, F searches the walls, M maps.")
	return g, nil
}

// LoadLevels parses the built-in floor definitions.
func LoadLevels() ([]*dungeon.Level, error) {
	levels := make([]*dungeon.Level, 0, len(assets.Levels))
	for _, def := range assets.Levels {
		lvl, err := dungeon.ParseLevel(def.Name, def.Map, def.Facing)
		if err != nil {
			return nil, fmt.Errorf("load level: %w", err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// Run is the main loop: draw, poll, act, until the player quits or escapes
// the maze.
func (g *Game) Run() {
	defer g.screen.Fini()

	for g.state == StatePlaying {
		g.drawFrame()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			g.processAction(keyToAction(ev))
		case nil:
			return // screen torn down under us (session closed)
		}
	}

	if g.state == StateVictory {
		g.showEndScreen()
	}
}

func (g *Game) level() *dungeon.Level { return g.levels[g.levelIdx] }

// drawFrame renders one complete frame: the first-person view, the optional
// automap overlay, and the HUD.
func (g *Game) drawFrame() {
	g.screen.Clear()
	w, h := g.screen.Size()
	viewH := h - hudRows
	if viewH < 1 {
		viewH = 1
	}

	lvl := g.level()
	records, err := vision.Scan(lvl.Map, lvl.Features, g.pose, viewDistance)
	if err != nil {
		// A bad pose is a state bug upstream; keep the frame alive but make
		// the failure visible instead of rendering silence.
		g.addMessage(fmt.Sprintf("view error: %v", err))
	} else {
		g.markExplored(records)
		prims := perspective.Render(records, w, viewH)
		term.NewRasterizer(g.screen, w, viewH).Draw(prims)
	}

	if g.automap {
		g.drawAutomap(w, viewH)
	}
	g.drawHUD(w, h)
	g.screen.Show()
}

// markExplored marks every tile the scan visited, plus the explorer's own
// tile, for the automap.
func (g *Game) markExplored(records []vision.Record) {
	m := g.level().Map
	m.MarkExplored(g.pose.X, g.pose.Y)
	rx, ry := g.pose.Facing.Right()
	for _, rec := range records {
		cx, cy := g.pose.Ahead(rec.Distance)
		m.MarkExplored(cx, cy)
		m.MarkExplored(cx+rx, cy+ry)
		m.MarkExplored(cx-rx, cy-ry)
	}
}

// processAction handles one player action.
func (g *Game) processAction(action Action) {
	switch action {
	case ActionQuit:
		if g.automap {
			g.automap = false
			return
		}
		g.state = StateQuit

	case ActionTurnLeft:
		g.pose.Facing = g.pose.Facing.TurnLeft()
		g.log.Turns++
	case ActionTurnRight:
		g.pose.Facing = g.pose.Facing.TurnRight()
		g.log.Turns++

	case ActionForward, ActionBackward, ActionStrafeLeft, ActionStrafeRight:
		dx, dy := moveDelta(action, g.pose.Facing)
		g.tryStep(dx, dy)

	case ActionInteract:
		g.interact()

	case ActionSearch:
		g.searchWalls()

	case ActionMap:
		g.automap = !g.automap

	case ActionWait:
		g.addMessage("You listen. The maze is silent.")
	}
}

// interact uses whatever the explorer is standing on.
func (g *Game) interact() {
	lvl := g.level()
	switch lvl.Map.TileAt(g.pose.X, g.pose.Y) {
	case gamemap.TileStairsDown:
		if g.levelIdx+1 >= len(g.levels) {
			g.addMessage("The stairs end in rubble.")
			return
		}
		next := g.levels[g.levelIdx+1]
		g.enterLevel(g.levelIdx+1, next.Start)
	case gamemap.TileStairsUp:
		if g.levelIdx == 0 {
			g.addMessage("Daylight above. The treasure lies the other way.")
			return
		}
		g.climbTo(g.levelIdx - 1)
	case gamemap.TileExit:
		g.state = StateVictory
	default:
		g.addMessage("Nothing to use here.")
	}
}

// climbTo returns to a previous floor, arriving at its descending staircase.
func (g *Game) climbTo(idx int) {
	dest := g.levels[idx]
	pose := dest.Start
	if x, y, ok := findTile(dest.Map, gamemap.TileStairsDown); ok {
		pose = dungeon.Pose{X: x, Y: y, Facing: g.pose.Facing}
	}
	g.enterLevel(idx, pose)
}

func findTile(m *gamemap.GameMap, kind gamemap.TileKind) (int, int, bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.TileAt(x, y) == kind {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// enterLevel switches floors and places the explorer.
func (g *Game) enterLevel(idx int, pose dungeon.Pose) {
	g.levelIdx = idx
	g.pose = pose
	g.log.Visit(g.levels[idx].Name)
	g.addMessage(fmt.Sprintf("You enter %s.", g.levels[idx].Name))
}

// searchWalls probes the four adjacent tiles for concealed doors.
func (g *Game) searchWalls() {
	lvl := g.level()
	g.log.Turns++
	for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		x, y := g.pose.X+d[0], g.pose.Y+d[1]
		door := lvl.Features.Door(x, y)
		if door != nil && door.Hidden {
			door.Hidden = false
			g.log.SecretsFound++
			g.addMessage("Your fingers find a seam. A hidden door!")
			return
		}
	}
	g.addMessage("You feel along the walls and find nothing.")
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

// showEndScreen renders the expedition summary and waits for a key.
func (g *Game) showEndScreen() {
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	for {
		g.screen.Clear()
		w, _ := g.screen.Size()

		y := 1
		term.DrawHLine(g.screen, y, w, tcell.ColorGray)
		y += 2
		term.DrawText(g.screen, 2, y, "YOU STEP INTO DAYLIGHT", gold)
		term.DrawText(g.screen, w-10, y, "[ESCAPED]", green)
		y += 2

		for _, line := range g.log.Lines() {
			term.DrawText(g.screen, 2, y, line[0], dim)
			term.DrawText(g.screen, 22, y, line[1], white)
			y++
		}
		y++
		term.DrawHLine(g.screen, y, w, tcell.ColorGray)
		y += 2
		term.DrawText(g.screen, 2, y, "Press any key to leave the maze behind.", dim)
		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey, nil:
			return
		}
	}
}
