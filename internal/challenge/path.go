package challenge

import "github.com/verte-zerg/captcharun/internal/generator"

// forwardChance is the probability that a path step advances toward the
// far edge instead of stepping sideways.
const forwardChance = 0.7

// GeneratePath walks from a random row of column 0 to the last column.
// Each step moves one column right with probability forwardChance;
// otherwise it moves one row up or down, falling back to a right step when
// the sideways move would leave the grid. The returned walk lists cells in
// visit order and may revisit a cell; every consecutive pair is adjacent.
func GeneratePath(gen *generator.Generator, cols, rows int) []Cell {
	col := 0
	row := gen.Intn(rows)
	walk := []Cell{{Col: col, Row: row}}
	for col < cols-1 {
		if gen.Chance(forwardChance) {
			col++
		} else {
			next := row + gen.Sign()
			if next >= 0 && next < rows {
				row = next
			} else {
				col++
			}
		}
		walk = append(walk, Cell{Col: col, Row: row})
	}
	return walk
}

// PathCells collapses a walk into the set of cells it covers.
func PathCells(walk []Cell) CellSet {
	return NewCellSet(walk...)
}
