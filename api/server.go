/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack and route definitions. This is
  the wiring layer between the browser UI and the game session.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request
  4. CORS:       The game UI is served by a separate dev server

ROUTE GROUPS:
  /api/state            Current game state
  /api/action           Player actions
  /api/tick             Manual tick (headless hosts)
  /api/context          Active UI context
  /api/notifications    Notification drain (poll fallback)
  /api/ws               Notification push (websocket)
  /api/saves/*          Save slots
  /api/content          Content shape for the UI

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Post("/action", h.PostAction)
		r.Post("/tick", h.PostTick)
		r.Post("/context", h.PostContext)
		r.Get("/notifications", h.DrainNotifications)
		r.Get("/ws", h.Websocket)
		r.Get("/content", h.GetContent)

		r.Route("/saves", func(r chi.Router) {
			r.Get("/", h.ListSaves)
			r.Post("/{slot}", h.SaveSlot)
			r.Post("/{slot}/load", h.LoadSlot)
			r.Delete("/{slot}", h.DeleteSlot)
		})
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("hangar-engine API. The frontend lives elsewhere; it knows where.\n"))
	})

	return r
}
