package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mwhitaker/punchlist/internal/export"
	"github.com/mwhitaker/punchlist/internal/store"
)

// ExportHandler serves a single todo as a downloadable PDF.
type ExportHandler struct {
	store  *store.TodoStore
	logger *slog.Logger
}

func NewExportHandler(s *store.TodoStore, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{store: s, logger: logger}
}

func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	t, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get todo for export", "error", err, "id", id)
		http.Error(w, "failed to load todo", http.StatusInternalServerError)
		return
	}
	if t == nil {
		http.NotFound(w, r)
		return
	}

	doc := export.BuildDocument(t, time.Now())
	data, err := export.RenderPDF(doc)
	if err != nil {
		h.logger.Error("render pdf", "error", err, "id", id)
		http.Error(w, "failed to render pdf", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(t.ID)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
