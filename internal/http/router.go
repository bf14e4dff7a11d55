package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"contexta/internal/handlers"
	"contexta/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ChatService service.ChatService
	Pipeline    interface {
		handlers.Ingestor
		handlers.SourceDeleter
	}
	DB        handlers.Pinger
	IndexHTML string // Embedded demo page content
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.ChatService)
	wsHandler := handlers.NewWSHandler(deps.ChatService)
	sessionHandler := handlers.NewSessionHandler()
	ingestHandler := handlers.NewIngestHandler(deps.Pipeline)
	contextHandler := handlers.NewContextHandler(deps.Pipeline)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodGet, "/session", sessionHandler)
		r.Post("/ingest/document", ingestHandler.HandleDocument)
		r.Post("/ingest/image", ingestHandler.HandleImage)
		r.Method(http.MethodDelete, "/context/{sourceType}", contextHandler)
	})

	r.Method(http.MethodGet, "/ws/chat/{sessionID}", wsHandler)
	r.Method(http.MethodGet, "/healthz", healthHandler)

	// Serve the demo chat page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
