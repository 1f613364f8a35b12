// main.go - Entry point for the health tracking backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"go-health-backend/ai"       // OpenAI chat completions client
	"go-health-backend/config"   // Project config management
	"go-health-backend/database" // Database connection and setup
	"go-health-backend/handlers" // HTTP handlers for API endpoints
	"go-health-backend/routes"   // Route registration

	"github.com/joho/godotenv" // .env file loading
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	_ = godotenv.Load() // Load .env if present (ignored when absent)
	cfg := config.Load() // Load configuration (DB path, JWT secret, OpenAI key)

	db, err := database.Connect(cfg.DBPath) // Connect to the database and migrate
	if err != nil {
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	// STEP 2: Wire handlers and build the router
	summarizer := ai.NewClient(cfg.OpenAIKey, cfg.OpenAIBaseURL) // Upstream LLM client
	h := handlers.New(db, summarizer)                            // Handlers with injected deps
	r := routes.SetupRouter(h)                                   // Register all routes

	// STEP 3: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
