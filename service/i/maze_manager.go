package i

import (
	"github.com/beka-birhanu/prim-maze/maze"
	"github.com/google/uuid"
)

// MazeManager defines the interface for generating and retrieving mazes.
type MazeManager interface {
	// Create generates a new maze with the given dimensions and returns it
	// together with its unique ID. A nil seed means a fresh random layout;
	// a non-nil seed pins the layout for reproducibility.
	// Returns an error if the dimensions are invalid.
	Create(width, height int, seed *int64) (uuid.UUID, *maze.PrimMaze, error)

	// ByID retrieves a previously generated maze by its unique ID.
	// Returns an error if the maze is not found.
	ByID(id uuid.UUID) (*maze.PrimMaze, error)
}
