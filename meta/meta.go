// meta/meta.go
package meta

// WIDTH defines the number of battlefield columns.
const WIDTH = 9

// HEIGHT defines the number of battlefield rows.
const HEIGHT = 6

// WALL_ROW is the row the wall occupies; besiegers stand at WALL_ROW + 1.
const WALL_ROW = 0

// WALL_DURABILITY is the starting durability of each wall column.
const WALL_DURABILITY = 20

// WALL_STRENGTH is the retaliation damage of each wall column.
const WALL_STRENGTH = 4

// MAX_TURNS caps a battle.
const MAX_TURNS = 60

// WAVE_INTERVAL is the number of turns between demo waves.
const WAVE_INTERVAL = 4
