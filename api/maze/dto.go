// Package mazeapi provides structures and utilities for maze generation requests and responses.
package mazeapi

import (
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Seed   *int64 `json:"seed"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID       uuid.UUID `json:"id"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Rendered string    `json:"rendered"`
}
