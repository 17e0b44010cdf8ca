/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the hangar engine server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load game content (built-in defaults or a YAML file)
  3. Initialize SQLite save store
  4. Create the composer, session and API handler
  5. Start the game loop and HTTP server with graceful shutdown

COMMAND-LINE FLAGS:
  -port     HTTP server port (default: 8080)
  -db       SQLite database path (default: hangar.db)
            Use ":memory:" for in-memory database
  -content  Path to a YAML content file (default: built-in content)
  -seed     Random seed; 0 seeds from the clock

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the game loop
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
  4. Close database connection
  5. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/hangar.db"

  # Run a reproducible session
  ./server -db=":memory:" -seed=42

  # Run with custom content
  ./server -content="./content/hangar.yaml"

SEE ALSO:
  - api/server.go: Router configuration
  - api/loop.go: Background game loop
  - content/defaults.go: Built-in content
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/hangar-engine/api"
	"github.com/warp/hangar-engine/content"
	"github.com/warp/hangar-engine/core"
	"github.com/warp/hangar-engine/engine"
	"github.com/warp/hangar-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "hangar.db", "SQLite database path")
	contentPath := flag.String("content", "", "YAML content file (empty = built-in)")
	seed := flag.Int64("seed", 0, "random seed (0 = clock)")
	flag.Parse()

	// Load content
	var bundle *core.Content
	var err error
	if *contentPath != "" {
		bundle, err = content.Load(*contentPath)
		if err != nil {
			log.Fatalf("Failed to load content from %s: %v", *contentPath, err)
		}
		log.Printf("Loaded content from %s", *contentPath)
	} else {
		bundle = content.Default()
	}

	// Initialize save store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Seed the session
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Session seed: %d", *seed)

	comp := engine.New(bundle)
	session := api.NewSession(comp, core.NewRand(*seed), time.Now())
	handler := api.NewHandler(session, store, bundle)
	router := api.NewRouter(handler)

	// Start the game loop
	loop := api.NewLoop(session)
	loop.Start()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🛩  Hangar engine on http://localhost:%d", *port)
		log.Printf("📊 API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	loop.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
