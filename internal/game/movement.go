package game

import (
	"fmt"

	"wireframe-crawler/internal/dungeon"
	"wireframe-crawler/internal/gamemap"
)

// tryStep attempts a one-tile move. Bumping a closed door opens it instead of
// moving; a concealed door behaves as wall until it has been found.
func (g *Game) tryStep(dx, dy int) {
	nx, ny := g.pose.X+dx, g.pose.Y+dy
	lvl := g.level()

	switch lvl.Map.TileAt(nx, ny) {
	case gamemap.TileWall:
		g.addMessage("You bump into cold stone.")
	case gamemap.TileDoor, gamemap.TileHiddenDoor:
		door := lvl.Features.Door(nx, ny)
		if door == nil || door.Hidden {
			g.addMessage("You bump into cold stone.")
			return
		}
		if !door.Open {
			door.Open = true
			g.log.DoorsOpened++
			g.log.Turns++
			g.addMessage("You push the door open.")
			return
		}
		g.moveTo(nx, ny)
	default:
		g.moveTo(nx, ny)
	}
}

// moveTo commits the step and reacts to whatever is on the new tile.
func (g *Game) moveTo(x, y int) {
	g.pose.X, g.pose.Y = x, y
	g.log.Steps++
	g.log.Turns++

	lvl := g.level()
	switch lvl.Map.TileAt(x, y) {
	case gamemap.TileTreasure:
		g.takeTreasure(x, y)
	case gamemap.TileStairsDown:
		g.addMessage("Stairs spiral down into the dark. Press Enter to descend.")
	case gamemap.TileStairsUp:
		g.addMessage("Stairs climb toward the previous floor. Press Enter to ascend.")
	case gamemap.TileExit:
		g.addMessage("A shimmering archway. Press Enter to step through.")
	}

	for _, f := range lvl.Features.At(x, y) {
		if f.Kind == dungeon.FeatureEncounter {
			g.log.Encounters++
			label := f.Label
			if label == "" {
				label = "something"
			}
			g.addMessage(fmt.Sprintf("A %s brushes past you in the dark!", label))
		}
	}
}

// takeTreasure empties the chest and turns its tile back into plain floor.
func (g *Game) takeTreasure(x, y int) {
	lvl := g.level()
	for _, f := range lvl.Features.At(x, y) {
		if f.Kind != dungeon.FeatureTreasure {
			continue
		}
		label := f.Label
		if label == "" {
			label = "an unmarked cache"
		}
		lvl.Features.Remove(f)
		lvl.Map.Set(x, y, gamemap.MakeFloor())
		g.log.TreasuresTaken++
		g.addMessage(fmt.Sprintf("You claim the %s.", label))
		return
	}
}
