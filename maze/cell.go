package maze

// Cell represents the state of a single cell in the maze grid.
// Every cell starts out as a Wall and is carved into a Path during generation.
type Cell uint8

const (
	// Wall is an uncarved cell. The zero value, so a freshly allocated grid
	// is all walls.
	Wall Cell = iota

	// Path is a carved cell belonging to the passage network.
	Path
)

// CellPosition represents the position of a cell in the maze grid.
// Two positions are equal when both their row and column match.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}
