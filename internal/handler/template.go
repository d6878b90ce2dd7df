package handler

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mwhitaker/punchlist/internal/store"
	"github.com/mwhitaker/punchlist/internal/todo"
	"github.com/mwhitaker/punchlist/internal/view"
)

// PageHandler renders the single page. The visible-list projection runs
// here, server side, from the UI state carried in the query string.
type PageHandler struct {
	store     *store.TodoStore
	templates *template.Template
	logger    *slog.Logger
}

func NewPageHandler(s *store.TodoStore, logger *slog.Logger) *PageHandler {
	funcs := template.FuncMap{
		"formatCost": todo.FormatCost,
		"toJSON": func(v any) string {
			b, err := json.Marshal(v)
			if err != nil {
				return "{}"
			}
			return string(b)
		},
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseGlob("web/templates/*.html"))
	return &PageHandler{store: s, templates: tmpl, logger: logger}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	todos, err := h.store.List()
	if err != nil {
		h.logger.Error("list todos", "error", err)
		http.Error(w, "failed to load todos", http.StatusInternalServerError)
		return
	}

	state := view.StateFromQuery(r.URL.Query())
	visible := view.Visible(todos, state)

	data := map[string]any{
		"Title":   "Punchlist",
		"State":   state,
		"Mode":    string(state.Mode),
		"Query":   state.Encode(),
		"Todos":   visible,
		"Total":   len(todos),
		"Showing": len(visible),
	}
	h.render(w, "layout.html", data)
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("render template", "template", name, "error", err)
	}
}
