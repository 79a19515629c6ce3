// Package service implements the application services on top of the maze
// core.
package service

import (
	"errors"
	"sync"

	"github.com/beka-birhanu/prim-maze/maze"
	"github.com/google/uuid"
)

var ErrMazeNotFound = errors.New("maze not found")

// MazeService generates mazes and keeps the finished grids in an in-memory
// registry keyed by ID. The registry lives only as long as the process;
// generated mazes are never written to durable storage.
type MazeService struct {
	mu    sync.RWMutex
	mazes map[uuid.UUID]*maze.PrimMaze
}

// NewMazeService initializes a MazeService with an empty registry.
func NewMazeService() *MazeService {
	return &MazeService{
		mazes: make(map[uuid.UUID]*maze.PrimMaze),
	}
}

// Create generates a new maze and registers it under a fresh ID. A non-nil
// seed pins the random draw sequence so the layout is reproducible.
func (s *MazeService) Create(width, height int, seed *int64) (uuid.UUID, *maze.PrimMaze, error) {
	var opts []maze.Option
	if seed != nil {
		opts = append(opts, maze.WithRand(maze.NewSeededRand(*seed)))
	}

	m, err := maze.New(width, height, opts...)
	if err != nil {
		return uuid.Nil, nil, err
	}
	m.Generate()

	id := uuid.New()
	s.mu.Lock()
	s.mazes[id] = m
	s.mu.Unlock()

	return id, m, nil
}

// ByID retrieves a previously generated maze from the registry.
func (s *MazeService) ByID(id uuid.UUID) (*maze.PrimMaze, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mazes[id]
	if !ok {
		return nil, ErrMazeNotFound
	}
	return m, nil
}
