package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mwhitaker/punchlist/internal/handler"
	"github.com/mwhitaker/punchlist/internal/middleware"
	"github.com/mwhitaker/punchlist/internal/store"
	ws "github.com/mwhitaker/punchlist/internal/websocket"
)

type Server struct {
	db      *sql.DB
	hub     *ws.Hub
	todoH   *handler.TodoHandler
	pageH   *handler.PageHandler
	exportH *handler.ExportHandler
	logger  *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	todoStore := store.NewTodoStore(db)

	return &Server{
		db:      db,
		hub:     hub,
		todoH:   handler.NewTodoHandler(todoStore, hub, logger.With("component", "todo")),
		pageH:   handler.NewPageHandler(todoStore, logger.With("component", "page")),
		exportH: handler.NewExportHandler(todoStore, logger.With("component", "export")),
		logger:  logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.pageH.Index)

	mux.HandleFunc("POST /todos", s.todoH.Create)
	mux.HandleFunc("POST /todos/reorder", s.todoH.Reorder)
	mux.HandleFunc("POST /todos/{id}/update", s.todoH.Update)
	mux.HandleFunc("POST /todos/{id}/complete", s.todoH.Complete)
	mux.HandleFunc("POST /todos/{id}/restore", s.todoH.Restore)
	mux.HandleFunc("POST /todos/{id}/delete", s.todoH.Delete)
	mux.HandleFunc("GET /todos/{id}/pdf", s.exportH.Download)

	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	mux.HandleFunc("GET /health", s.healthHandler)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
