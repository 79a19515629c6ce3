package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Application run modes.
const (
	AppModePrint = "print" // generate one maze and write it to stdout
	AppModeServe = "serve" // serve mazes over the REST API
)

// Config holds the application's configuration values.
type Config struct {
	AppMode    string // Run mode: print or serve
	MazeWidth  int    // Width of the maze generated in print mode
	MazeHeight int    // Height of the maze generated in print mode
	HostIP     string // Host IP for the server
	RESTPort   int    // Port for the REST API
	GinMode    string // Mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct; every value has a default so the print
	// mode runs with no environment at all
	return Config{
		AppMode:    getEnvWithDefault("APP_MODE", AppModePrint),
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", 30),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", 20),
		HostIP:     getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:   getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:    getEnvWithDefault("GIN_MODE", "release"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer, returning a
// default value if not set and logging a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
