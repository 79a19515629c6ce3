package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRand always draws 0, pinning generation to a hand-traceable sequence.
type zeroRand struct{}

func (zeroRand) Intn(n int) int { return 0 }

// recordingRand wraps a source and records every draw it hands out.
type recordingRand struct {
	inner Rand
	draws []int
}

func (r *recordingRand) Intn(n int) int {
	v := r.inner.Intn(n)
	r.draws = append(r.draws, v)
	return v
}

func TestNew(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
			_, err := New(dims[0], dims[1])
			assert.Error(t, err, "dimensions %dx%d", dims[0], dims[1])
		}
	})

	t.Run("rejects oversized dimensions", func(t *testing.T) {
		_, err := New(maxMazeDimenssion+1, 5)
		assert.Error(t, err)
	})

	t.Run("starts all walls", func(t *testing.T) {
		m, err := New(4, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, m.Width)
		assert.Equal(t, 3, m.Height)
		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				assert.Equal(t, Wall, m.CellAt(CellPosition{Row: row, Col: col}))
			}
		}
	})
}

func TestInGrid(t *testing.T) {
	m, err := New(3, 3, WithRand(zeroRand{}))
	require.NoError(t, err)

	// Exhaustive sweep around a 3x3 grid, including every out-of-range side.
	for row := -2; row <= 4; row++ {
		for col := -2; col <= 4; col++ {
			inside := row >= 0 && row < 3 && col >= 0 && col < 3
			assert.Equal(t, inside, m.InGrid(CellPosition{Row: row, Col: col}), "position %d,%d", row, col)
		}
	}
}

func TestCellAtOutOfGridPanics(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)

	assert.Panics(t, func() { m.CellAt(CellPosition{Row: -1, Col: 0}) })
	assert.Panics(t, func() { m.CellAt(CellPosition{Row: 0, Col: 3}) })
}

func TestFrontierCellsMatchingScanOrder(t *testing.T) {
	m, err := New(5, 5)
	require.NoError(t, err)

	// All candidates are walls on a fresh grid, so the result is exactly the
	// left, right, top, bottom order.
	got := m.frontierCellsMatching(CellPosition{Row: 2, Col: 2}, Wall)
	assert.Equal(t, []CellPosition{
		{Row: 2, Col: 0},
		{Row: 2, Col: 4},
		{Row: 0, Col: 2},
		{Row: 4, Col: 2},
	}, got)

	// Corner cell only has in-grid candidates to the right and below.
	got = m.frontierCellsMatching(CellPosition{Row: 0, Col: 0}, Wall)
	assert.Equal(t, []CellPosition{
		{Row: 0, Col: 2},
		{Row: 2, Col: 0},
	}, got)
}

func TestConnectorBetween(t *testing.T) {
	m, err := New(5, 5)
	require.NoError(t, err)

	t.Run("midpoint on both axes", func(t *testing.T) {
		assert.Equal(t, CellPosition{Row: 2, Col: 3}, m.connectorBetween(CellPosition{Row: 2, Col: 2}, CellPosition{Row: 2, Col: 4}))
		assert.Equal(t, CellPosition{Row: 2, Col: 1}, m.connectorBetween(CellPosition{Row: 2, Col: 2}, CellPosition{Row: 2, Col: 0}))
		assert.Equal(t, CellPosition{Row: 3, Col: 2}, m.connectorBetween(CellPosition{Row: 2, Col: 2}, CellPosition{Row: 4, Col: 2}))
		assert.Equal(t, CellPosition{Row: 1, Col: 2}, m.connectorBetween(CellPosition{Row: 2, Col: 2}, CellPosition{Row: 0, Col: 2}))
	})

	t.Run("identical positions panic", func(t *testing.T) {
		pos := CellPosition{Row: 1, Col: 1}
		assert.Panics(t, func() { m.connectorBetween(pos, pos) })
	})
}

func TestGenerateSingleCell(t *testing.T) {
	m, err := New(1, 1, WithRand(zeroRand{}))
	require.NoError(t, err)

	m.Generate()
	assert.Equal(t, Path, m.CellAt(CellPosition{Row: 0, Col: 0}))
	assert.Equal(t, " \n", m.String())
}

// With every draw pinned to 0 the 3x3 generation is fully traceable by hand:
// start at (0,0), carve (0,2) connecting through (0,1), carve (2,0)
// connecting through (1,0), carve (2,2) connecting through (2,1). The cells
// (1,1) and (1,2) stay walls.
func TestGenerateZeroDrawTrace(t *testing.T) {
	m, err := New(3, 3, WithRand(zeroRand{}))
	require.NoError(t, err)

	m.Generate()

	wantPath := []CellPosition{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0},
		{2, 0}, {2, 1}, {2, 2},
	}
	for _, pos := range wantPath {
		assert.Equal(t, Path, m.CellAt(pos), "position %d,%d", pos.Row, pos.Col)
	}
	assert.Equal(t, Wall, m.CellAt(CellPosition{Row: 1, Col: 1}))
	assert.Equal(t, Wall, m.CellAt(CellPosition{Row: 1, Col: 2}))

	assert.Equal(t, "   \n ██\n   \n", m.String())
}

func TestGenerateDeterminism(t *testing.T) {
	const seed = 1234

	first, err := New(16, 12, WithRand(NewSeededRand(seed)))
	require.NoError(t, err)
	first.Generate()

	second, err := New(16, 12, WithRand(NewSeededRand(seed)))
	require.NoError(t, err)
	second.Generate()

	assert.Equal(t, first.Grid, second.Grid)
	assert.Equal(t, first.String(), second.String())
}

func TestGenerateConnectivity(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 3}, {5, 5}, {12, 9}, {30, 20}, {7, 1}, {1, 9}}

	for _, size := range sizes {
		width, height := size[0], size[1]
		m, err := New(width, height, WithRand(NewSeededRand(42)))
		require.NoError(t, err)
		m.Generate()

		total := countPathCells(m)
		require.Greater(t, total, 0, "%dx%d maze has no path cells", width, height)

		reached := reachablePathCells(m)
		assert.Equal(t, total, reached, "%dx%d maze is not a single component", width, height)
	}
}

// The carved passages must form a tree over the stepping sub-lattice: with S
// stepping cells and C connector cells, C == S-1 and no other path cells
// exist.
func TestGenerateTreeStructure(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 99} {
		rec := &recordingRand{inner: NewSeededRand(seed)}
		m, err := New(21, 13, WithRand(rec))
		require.NoError(t, err)
		m.Generate()

		require.GreaterOrEqual(t, len(rec.draws), 2)
		startRow, startCol := rec.draws[0], rec.draws[1]

		stepping, connectors := 0, 0
		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				if m.Grid[row][col] != Path {
					continue
				}
				if row%2 == startRow%2 && col%2 == startCol%2 {
					stepping++
				} else {
					connectors++
				}
			}
		}

		assert.Equal(t, stepping-1, connectors, "seed %d", seed)
		assert.Equal(t, stepping+connectors, countPathCells(m), "seed %d", seed)
	}
}

func countPathCells(m *PrimMaze) int {
	count := 0
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col] == Path {
				count++
			}
		}
	}
	return count
}

// reachablePathCells runs a breadth-first traversal over path cells using
// single-step adjacency and returns the number of cells visited from the
// first path cell found.
func reachablePathCells(m *PrimMaze) int {
	var start *CellPosition
	for row := 0; row < m.Height && start == nil; row++ {
		for col := 0; col < m.Width; col++ {
			if m.Grid[row][col] == Path {
				start = &CellPosition{Row: row, Col: col}
				break
			}
		}
	}
	if start == nil {
		return 0
	}

	visited := map[CellPosition]struct{}{*start: {}}
	queue := []CellPosition{*start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]

		for _, delta := range []CellPosition{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			next := CellPosition{Row: cell.Row + delta.Row, Col: cell.Col + delta.Col}
			if !m.InGrid(next) || m.CellAt(next) != Path {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return len(visited)
}
