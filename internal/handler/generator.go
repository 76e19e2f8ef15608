package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/accountgen/internal/crypto"
	"github.com/vaultpass/accountgen/internal/export"
	"github.com/vaultpass/accountgen/internal/model"
	"github.com/vaultpass/accountgen/internal/service"
)

// GeneratorHandler handles HTTP requests for batch generation and export.
type GeneratorHandler struct {
	service  *service.GeneratorService
	exporter *export.Exporter
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, exporter *export.Exporter) *GeneratorHandler {
	return &GeneratorHandler{service: svc, exporter: exporter}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	opts, err := service.Options(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	items, err := h.service.Generate(r.Context(), opts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenerationInProgress):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			slog.Error("generating batch", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.BatchResponse{
		Items:    items,
		Strength: string(crypto.StrengthOf(opts.PasswordLength)),
	})
}

// HandleListItems handles GET /api/v1/items requests.
func (h *GeneratorHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.BatchResponse{
		Items:      h.service.Items(),
		Generating: h.service.Generating(),
	})
}

// HandleExportCSV handles GET /api/v1/items/export.csv requests.
func (h *GeneratorHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", export.CSVContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": export.CSVFilename}))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, export.CSV(h.service.Items()))
}

// HandleExportText handles GET /api/v1/items/export.txt requests.
func (h *GeneratorHandler) HandleExportText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, export.ClipboardText(h.service.Items()))
}

// HandleCopyField handles POST /api/v1/items/{id}/copy?field=username|password requests.
func (h *GeneratorHandler) HandleCopyField(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Item(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		return
	}

	role := model.FieldRole(r.URL.Query().Get("field"))
	if _, ok := role.Value(item); !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("field must be username or password"))
		return
	}

	if err := h.exporter.CopyField(item, role); err != nil {
		slog.Error("copying field", "item_id", item.ID, "role", role, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("clipboard write failed"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleCopyAll handles POST /api/v1/items/copy requests.
func (h *GeneratorHandler) HandleCopyAll(w http.ResponseWriter, r *http.Request) {
	if err := h.exporter.CopyAll(h.service.Items()); err != nil {
		slog.Error("copying batch", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("clipboard write failed"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDownload handles POST /api/v1/items/download requests.
func (h *GeneratorHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	path, err := h.exporter.DownloadCSV(h.service.Items())
	if err != nil {
		slog.Error("saving csv", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("saving csv failed"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
