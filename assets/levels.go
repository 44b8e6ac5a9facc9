// Package assets holds the built-in maze floors.
package assets

import "wireframe-crawler/internal/dungeon"

// LevelDef is one built-in floor: its display name, the ASCII map in the
// dungeon package's rune legend, and the direction the explorer faces on
// arrival.
type LevelDef struct {
	Name   string
	Map    string
	Facing dungeon.Facing
}

// Levels lists the floors in descent order. The first entry is where a new
// run begins; the last holds the exit portal.
var Levels = []LevelDef{
	{
		Name:   "Gatehouse Vaults",
		Facing: dungeon.East,
		Map: `
###########
#@..+...$.#
#.#.#.###.#
#...#...#.#
###.###.#.#
#M..'...#.#
#.#####.+.#
#.#...#.#.#
#...$.#.#>#
###########
`,
	},
	{
		Name:   "Echoing Halls",
		Facing: dungeon.South,
		Map: `
#############
#<@.#....$..#
#.#.#.####..#
#.#...#..+..#
#.###%#.###.#
#.#...#.#...#
#.#.M.#.#.###
#.#...'.#..M#
#.#####.###.#
#.......%..>#
#############
`,
	},
	{
		Name:   "Heart of the Maze",
		Facing: dungeon.East,
		Map: `
###########
#<@.%...$.#
###.#.###.#
#M..#.#..M#
#.###.#.#.#
#.....#.#.#
#.###.#.#.#
#.#.$.#.#.#
#.#####.#.#
#.......#E#
###########
`,
	},
}
