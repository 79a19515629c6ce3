// Package mazeapi handles maze generation and retrieval over HTTP.
package mazeapi

import (
	"net/http"

	"github.com/beka-birhanu/prim-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze generation operations.
type MazeController struct {
	mazeManager i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(mm i.MazeManager) (*MazeController, error) {
	return &MazeController{
		mazeManager: mm,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.generate)
		mazes.GET("/:ID", mc.mazeInfo)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, m, err := mc.mazeManager.Create(request.Width, request.Height, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &MazeResponse{
		ID:       id,
		Width:    m.Width,
		Height:   m.Height,
		Rendered: m.String(),
	}

	ctx.JSON(http.StatusCreated, response)
}

// mazeInfo retrieves a previously generated maze.
func (mc *MazeController) mazeInfo(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	m, err := mc.mazeManager.ByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Maze"})
		return
	}

	response := &MazeResponse{
		ID:       ID,
		Width:    m.Width,
		Height:   m.Height,
		Rendered: m.String(),
	}

	ctx.JSON(http.StatusOK, response)
}
