package game

import "fmt"

// ContentKind tags what occupies a cell.
type ContentKind int

const (
	Empty ContentKind = iota
	AttackerContent
	DefenderContent
)

// Cell holds one square of the battlefield: at most one occupant plus the
// terrain flags. A tankard is independent of the occupant; a cell can hold
// both.
type Cell struct {
	Kind     ContentKind
	Occupant *Unit
	Lure     bool
	Block    bool
	Tankard  bool
}

// grid is the cell store. Cells are kept column-major so that straight
// iteration matches the fixed turn order.
type grid struct {
	width  int
	height int
	cells  []Cell
}

func newGrid(width, height int) *grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid dimensions %dx%d", width, height))
	}
	return &grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (g *grid) ValidColumn(x int) bool { return x >= 0 && x < g.width }

func (g *grid) ValidRow(z int) bool { return z >= 0 && z < g.height }

func (g *grid) ValidCell(x, z int) bool { return g.ValidColumn(x) && g.ValidRow(z) }

// index converts coordinates to a cell offset. Passing an invalid cell is a
// programming error, not a game condition.
func (g *grid) index(x, z int) int {
	if !g.ValidCell(x, z) {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d grid", x, z, g.width, g.height))
	}
	return x*g.height + z
}

func (g *grid) ContentAt(x, z int) ContentKind {
	return g.cells[g.index(x, z)].Kind
}

func (g *grid) OccupantAt(x, z int) *Unit {
	return g.cells[g.index(x, z)].Occupant
}

// Place writes cell content. The store is last-write-wins: it does not
// reject a non-empty destination, and pushing relies on that. Callers clear
// the source cell first.
func (g *grid) Place(u *Unit, x, z int, kind ContentKind) {
	i := g.index(x, z)
	g.cells[i].Kind = kind
	g.cells[i].Occupant = u
}

func (g *grid) Clear(x, z int) {
	i := g.index(x, z)
	g.cells[i].Kind = Empty
	g.cells[i].Occupant = nil
}

// IsLure is total: an off-grid probe reports no lure, so units can look
// sideways at the board edge without special-casing.
func (g *grid) IsLure(x, z int) bool {
	if !g.ValidCell(x, z) {
		return false
	}
	return g.cells[x*g.height+z].Lure
}

func (g *grid) IsBlocked(x, z int) bool {
	return g.cells[g.index(x, z)].Block
}

func (g *grid) HasTankard(x, z int) bool {
	return g.cells[g.index(x, z)].Tankard
}

func (g *grid) SetLure(x, z int, lure bool) {
	g.cells[g.index(x, z)].Lure = lure
}

func (g *grid) SetBlock(x, z int, block bool) {
	g.cells[g.index(x, z)].Block = block
}

func (g *grid) SetTankard(x, z int, tankard bool) {
	g.cells[g.index(x, z)].Tankard = tankard
}
