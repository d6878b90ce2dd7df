package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mwhitaker/punchlist/internal/store"
	"github.com/mwhitaker/punchlist/internal/todo"
	ws "github.com/mwhitaker/punchlist/internal/websocket"
)

// TodoHandler owns the mutating action endpoints. All of them accept
// form-encoded input and answer JSON; the page script reloads the list
// after a successful mutation.
type TodoHandler struct {
	store  *store.TodoStore
	hub    *ws.Hub
	logger *slog.Logger
}

func NewTodoHandler(s *store.TodoStore, hub *ws.Hub, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{store: s, hub: hub, logger: logger}
}

// todoForm holds the normalized field set shared by create and update.
type todoForm struct {
	title             string
	description       *string
	notes             *string
	contractorHired   bool
	contractorName    *string
	contractorDetails *string
	cost              *int64
}

// parseTodoForm normalizes the submitted fields once, at the boundary:
// optional text collapses to absent when blank, the decimal cost string
// becomes integer cents.
func parseTodoForm(r *http.Request) (*todoForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, todo.ErrInvalidInput
	}

	cost, err := todo.ParseCost(r.FormValue("cost"))
	if err != nil {
		return nil, err
	}

	return &todoForm{
		title:             strings.TrimSpace(r.FormValue("title")),
		description:       todo.NormalizeOptional(r.FormValue("description")),
		notes:             todo.NormalizeOptional(r.FormValue("notes")),
		contractorHired:   r.FormValue("contractor_hired") != "",
		contractorName:    todo.NormalizeOptional(r.FormValue("contractor_name")),
		contractorDetails: todo.NormalizeOptional(r.FormValue("contractor_details")),
		cost:              cost,
	}, nil
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseTodoForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if form.title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	t, err := h.store.Create(form.title, form.description, form.notes,
		form.contractorHired, form.contractorName, form.contractorDetails, form.cost)
	if err != nil {
		h.logger.Error("create todo", "error", err)
		writeError(w, err)
		return
	}

	h.hub.Broadcast(ws.NewMessage("todo", "created", t.ID, nil))
	writeJSON(w, http.StatusCreated, t)
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existing, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get todo", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load todo"})
		return
	}
	if existing == nil {
		// No dedicated not-found signal: a bad id is an operation failure.
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "todo not found"})
		return
	}

	form, err := parseTodoForm(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if form.title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	t, err := h.store.Update(id, form.title, form.description, form.notes,
		form.contractorHired, form.contractorName, form.contractorDetails, form.cost)
	if err != nil {
		h.logger.Error("update todo", "error", err)
		writeError(w, err)
		return
	}

	h.hub.Broadcast(ws.NewMessage("todo", "updated", t.ID, nil))
	writeJSON(w, http.StatusOK, t)
}

func (h *TodoHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, true, "completed")
}

func (h *TodoHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, false, "restored")
}

func (h *TodoHandler) setCompleted(w http.ResponseWriter, r *http.Request, completed bool, action string) {
	id := r.PathValue("id")

	t, err := h.store.SetCompleted(id, completed)
	if err != nil {
		h.logger.Error("set completed", "error", err, "id", id)
		writeError(w, err)
		return
	}
	if t == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "todo not found"})
		return
	}

	h.hub.Broadcast(ws.NewMessage("todo", action, t.ID, nil))
	writeJSON(w, http.StatusOK, t)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.store.Delete(id); err != nil {
		h.logger.Error("delete todo", "error", err, "id", id)
		writeError(w, err)
		return
	}

	h.hub.Broadcast(ws.NewMessage("todo", "deleted", id, nil))
	w.WriteHeader(http.StatusNoContent)
}

// Reorder applies a drag-and-drop result: one form field holding a JSON
// array of {id, sort_order} pairs. Malformed JSON applies nothing.
func (h *TodoHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}

	var assignments []store.Assignment
	if err := json.Unmarshal([]byte(r.FormValue("order")), &assignments); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reorder payload"})
		return
	}
	if len(assignments) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "order is required"})
		return
	}

	if err := h.store.Reorder(assignments); err != nil {
		h.logger.Error("reorder todos", "error", err)
		writeError(w, err)
		return
	}

	h.hub.Broadcast(ws.NewMessage("todo", "reordered", "", nil))
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps domain errors to statuses: validation and malformed
// input are the client's fault, anything else is a storage failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case todo.IsValidation(err), todo.IsInvalidInput(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "operation failed"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
