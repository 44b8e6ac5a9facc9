package dungeon

import (
	"fmt"
	"strings"

	"wireframe-crawler/internal/gamemap"
)

// Level bundles one maze floor: the tile grid, its fixed features, and the
// pose the player starts from. The grid and feature store are owned here;
// the scanner and renderer only read them.
type Level struct {
	Name     string
	Map      *gamemap.GameMap
	Features *FeatureStore
	Start    Pose
}

// ParseLevel builds a Level from an ASCII map. Rune legend:
//
//	#  wall            .  floor
//	+  closed door     '  open door       %  hidden door
//	<  stairs up       >  stairs down     E  exit portal
//	$  treasure        M  encounter       @  start (on floor)
//
// Lines may have different lengths; missing cells on short lines read as
// wall. The map must contain exactly one '@'.
func ParseLevel(name, text string, startFacing Facing) (*Level, error) {
	if !startFacing.Valid() {
		return nil, fmt.Errorf("level %q: invalid start facing %d", name, startFacing)
	}

	lines := mapLines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("level %q: empty map", name)
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	lvl := &Level{
		Name:     name,
		Map:      gamemap.New(width, len(lines)),
		Features: NewFeatureStore(),
	}
	startCount := 0

	for y, line := range lines {
		for x, r := range line {
			switch r {
			case '#':
				// already wall
			case '.':
				lvl.Map.Set(x, y, gamemap.MakeFloor())
			case '+':
				lvl.Map.Set(x, y, gamemap.Make(gamemap.TileDoor))
				lvl.Features.Add(Feature{X: x, Y: y, Kind: FeatureDoor, Label: "door"})
			case '\'':
				lvl.Map.Set(x, y, gamemap.Make(gamemap.TileDoor))
				lvl.Features.Add(Feature{X: x, Y: y, Kind: FeatureDoor, Open: true, Label: "door"})
			case '%':
				lvl.Map.Set(x, y, gamemap.Make(gamemap.TileHiddenDoor))
				lvl.Features.Add(Feature{X: x, Y: y, Kind: FeatureDoor, Hidden: true, Label: "hidden door"})
			case '<':
				lvl.Map.Set(x, y, gamemap.Make(gamemap.TileStairsUp))
			case '>':
				lvl.Map.Set(x, y, gamemap.Make(gamemap.TileStairsDown))
			case 'E':
				lvl.Map.Set(x, y, gamemap.Make(gamemap.TileExit))
			case '$':
				lvl.Map.Set(x, y, gamemap.Make(gamemap.TileTreasure))
				lvl.Features.Add(Feature{X: x, Y: y, Kind: FeatureTreasure, Label: "treasure chest"})
			case 'M':
				lvl.Map.Set(x, y, gamemap.MakeFloor())
				lvl.Features.Add(Feature{X: x, Y: y, Kind: FeatureEncounter, Label: "lurking shape"})
			case '@':
				lvl.Map.Set(x, y, gamemap.MakeFloor())
				lvl.Start = Pose{X: x, Y: y, Facing: startFacing}
				startCount++
			default:
				return nil, fmt.Errorf("level %q: unknown map rune %q at (%d,%d)", name, r, x, y)
			}
		}
	}

	if startCount != 1 {
		return nil, fmt.Errorf("level %q: want exactly one start '@', got %d", name, startCount)
	}
	return lvl, nil
}

// mapLines splits the map text into rows, dropping blank leading and
// trailing lines so level literals can be indented naturally in source.
func mapLines(text string) []string {
	raw := strings.Split(text, "\n")
	start, end := 0, len(raw)
	for start < end && strings.TrimSpace(raw[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(raw[end-1]) == "" {
		end--
	}
	lines := make([]string, 0, end-start)
	for _, line := range raw[start:end] {
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}
	return lines
}
