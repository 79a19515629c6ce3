package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/prim-maze/api"
	api_i "github.com/beka-birhanu/prim-maze/api/i"
	mazeapi "github.com/beka-birhanu/prim-maze/api/maze"
	"github.com/beka-birhanu/prim-maze/config"
	"github.com/beka-birhanu/prim-maze/maze"
	"github.com/beka-birhanu/prim-maze/service"
	"github.com/beka-birhanu/prim-maze/service/i"
)

// Global variables for dependencies
var (
	mazeManager    i.MazeManager
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func initMazeManager() {
	mazeManager = service.NewMazeService()
	appLogger.Println("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeManager)
	if err != nil {
		appLogger.Printf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Println("Router initialized")
}

// printMaze generates a single maze with the configured dimensions and
// writes it to stdout.
func printMaze() {
	m, err := maze.New(config.Envs.MazeWidth, config.Envs.MazeHeight)
	if err != nil {
		appLogger.Printf("Creating maze: %v", err)
		os.Exit(1)
	}
	m.Generate()
	fmt.Print(m)
}

func main() {
	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)

	if config.Envs.AppMode == config.AppModePrint {
		printMaze()
		return
	}

	// Initialize dependencies and run the HTTP server
	initMazeManager()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
