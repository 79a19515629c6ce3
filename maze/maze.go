/*
Package maze provides tools for creating rectangular mazes.

It defines the `PrimMaze` structure, a grid of cells that are either walls or
paths, and generates its layout with Randomized Prim's algorithm: starting
from a random cell, the passage network grows by repeatedly picking a random
frontier wall, carving it, and connecting it to the existing network through
the wall between them. The result is a perfect maze, a single connected
passage tree with exactly one route between any two carved cells.

The package includes an injectable randomness source for reproducible
generation and ASCII visualization of the finished maze.
*/
package maze

import (
	"fmt"
	"strings"
)

const (
	maxMazeDimenssion = 4096
)

// PrimMaze represents a rectangular maze consisting of wall and path cells.
type PrimMaze struct {
	Width  int      // Width of the maze (number of columns)
	Height int      // Height of the maze (number of rows)
	Grid   [][]Cell // 2D grid of cell states forming the maze, row-major
	rng    Rand     // Source of random draws during generation
}

// Option configures a PrimMaze at construction time.
type Option func(*PrimMaze)

// WithRand injects the randomness source used by Generate. Mazes built with
// the same dimensions and the same draw sequence are identical.
func WithRand(r Rand) Option {
	return func(m *PrimMaze) {
		m.rng = r
	}
}

// New initializes a new all-wall maze of the given dimensions. The layout is
// carved by a subsequent call to Generate.
func New(width, height int, opts ...Option) (*PrimMaze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimenssion {
		return nil, fmt.Errorf("Invalid maze dimensions")
	}

	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
	}

	m := &PrimMaze{
		Width:  width,
		Height: height,
		Grid:   grid,
		rng:    newClockRand(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// InGrid reports whether the given position lies within the maze bounds.
func (m *PrimMaze) InGrid(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.Height && pos.Col >= 0 && pos.Col < m.Width
}

// CellAt returns the state of the cell at the given position.
//
// The position must be inside the grid; violating that is a defect in the
// caller, not a recoverable condition, so CellAt panics.
func (m *PrimMaze) CellAt(pos CellPosition) Cell {
	if !m.InGrid(pos) {
		panic(fmt.Sprintf("maze: position %d,%d out of %dx%d grid", pos.Row, pos.Col, m.Height, m.Width))
	}
	return m.Grid[pos.Row][pos.Col]
}

// setCell writes the state of the cell at the given position. Same bounds
// contract as CellAt.
func (m *PrimMaze) setCell(pos CellPosition, state Cell) {
	if !m.InGrid(pos) {
		panic(fmt.Sprintf("maze: position %d,%d out of %dx%d grid", pos.Row, pos.Col, m.Height, m.Width))
	}
	m.Grid[pos.Row][pos.Col] = state
}

// frontierCellsMatching returns the positions exactly two cells away from pos
// along a single axis that are inside the grid and currently in the given
// state. The scan order is left, right, top, bottom; keeping it fixed keeps
// generation reproducible for a fixed draw sequence.
func (m *PrimMaze) frontierCellsMatching(pos CellPosition, state Cell) []CellPosition {
	var frontier []CellPosition

	candidates := [4]CellPosition{
		{Row: pos.Row, Col: pos.Col - 2}, // left
		{Row: pos.Row, Col: pos.Col + 2}, // right
		{Row: pos.Row - 2, Col: pos.Col}, // top
		{Row: pos.Row + 2, Col: pos.Col}, // bottom
	}
	for _, c := range candidates {
		if m.InGrid(c) && m.CellAt(c) == state {
			frontier = append(frontier, c)
		}
	}
	return frontier
}

// connectorBetween returns the position of the single cell lying between a
// frontier position and a carved cell position. The two positions must be
// exactly two cells apart along one axis; anything else means the frontier
// bookkeeping is broken, so connectorBetween panics rather than guessing.
func (m *PrimMaze) connectorBetween(frontierPos, cellPos CellPosition) CellPosition {
	switch {
	case cellPos.Row < frontierPos.Row:
		return CellPosition{Row: cellPos.Row + 1, Col: cellPos.Col}
	case cellPos.Row > frontierPos.Row:
		return CellPosition{Row: cellPos.Row - 1, Col: cellPos.Col}
	case cellPos.Col < frontierPos.Col:
		return CellPosition{Row: cellPos.Row, Col: cellPos.Col + 1}
	case cellPos.Col > frontierPos.Col:
		return CellPosition{Row: cellPos.Row, Col: cellPos.Col - 1}
	}
	panic(fmt.Sprintf("maze: connector requested between identical positions %d,%d", cellPos.Row, cellPos.Col))
}

// Generate carves the maze using Randomized Prim's algorithm.
// https://en.wikipedia.org/wiki/Maze_generation_algorithm
//
// A random start cell is carved, then while the frontier is non-empty a
// random frontier wall is carved, joined to a random carved neighbor through
// the wall between them, and its own wall neighbors are queued. Checking
// candidates against the current cell state makes the frontier recomputation
// self-correcting: cells already carved never re-enter a wall scan.
func (m *PrimMaze) Generate() {
	start := CellPosition{Row: m.rng.Intn(m.Height), Col: m.rng.Intn(m.Width)}
	m.setCell(start, Path)

	// Calculate the initial set of frontier cells. The queued set mirrors the
	// frontier slice so a position is never queued twice.
	frontierCells := m.frontierCellsMatching(start, Wall)
	queued := make(map[CellPosition]struct{}, len(frontierCells))
	for _, pos := range frontierCells {
		queued[pos] = struct{}{}
	}

	for len(frontierCells) > 0 {
		// Pick one of the frontier cells at random and carve it
		randomFrontierIndex := m.rng.Intn(len(frontierCells))
		randomFrontierPos := frontierCells[randomFrontierIndex]
		m.setCell(randomFrontierPos, Path)

		// Connect it to the existing network by carving the cell between it
		// and one of its carved neighbors
		neighbors := m.frontierCellsMatching(randomFrontierPos, Path)
		if len(neighbors) > 0 {
			randomNeighbor := neighbors[m.rng.Intn(len(neighbors))]
			m.setCell(m.connectorBetween(randomNeighbor, randomFrontierPos), Path)
		}

		// Queue the new frontier cells, skipping any already queued
		for _, pos := range m.frontierCellsMatching(randomFrontierPos, Wall) {
			if _, included := queued[pos]; included {
				continue
			}
			queued[pos] = struct{}{}
			frontierCells = append(frontierCells, pos)
		}

		// Drop the processed frontier cell, preserving slice order
		frontierCells = append(frontierCells[:randomFrontierIndex], frontierCells[randomFrontierIndex+1:]...)
		delete(queued, randomFrontierPos)
	}
}

// String provides a textual representation of the maze, one line per row,
// walls as full blocks and paths as blanks.
func (m *PrimMaze) String() string {
	var output strings.Builder

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			switch m.Grid[row][col] {
			case Wall:
				output.WriteRune('█')
			case Path:
				output.WriteRune(' ')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
