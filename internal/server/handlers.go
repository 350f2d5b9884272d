package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmezav/empleados-ms/internal/lib/logger/sl"
	"github.com/dmezav/empleados-ms/internal/models"
	"github.com/dmezav/empleados-ms/internal/repository"
)

// EmpleadosHandler serves the empleado endpoints: GET /get and POST /post.
type EmpleadosHandler struct {
	repo repository.EmpleadoRepoIface
	log  *slog.Logger
}

func NewEmpleadosHandler(repo repository.EmpleadoRepoIface, log *slog.Logger) *EmpleadosHandler {
	return &EmpleadosHandler{repo: repo, log: log}
}

// HandleList returns every empleado record ordered by identifier.
func (h *EmpleadosHandler) HandleList(writer http.ResponseWriter, req *http.Request) {
	empleados, err := h.repo.ListEmpleados(req.Context())
	if err != nil {
		h.log.ErrorContext(req.Context(), "Failed to list empleados", sl.Err(err))
		respondError(writer, http.StatusInternalServerError, fmt.Sprintf("db error: %v", err))
		return
	}

	respondJSON(writer, http.StatusOK, empleados)
}

// HandleCreate inserts a new empleado and returns the created record.
func (h *EmpleadosHandler) HandleCreate(writer http.ResponseWriter, req *http.Request) {
	var payload models.NuevoEmpleado
	if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
		respondError(writer, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.Nombres == "" || payload.Telefono == "" {
		respondError(writer, http.StatusBadRequest, "nombres and telefono are required")
		return
	}

	created, err := h.repo.CreateEmpleado(req.Context(), payload.Nombres, payload.Telefono)
	if err != nil {
		h.log.ErrorContext(req.Context(), "Failed to create empleado", sl.Err(err))
		respondError(writer, http.StatusInternalServerError, fmt.Sprintf("insert error: %v", err))
		return
	}

	h.log.InfoContext(req.Context(), "Empleado created", "id", created.ID)
	respondJSON(writer, http.StatusOK, created)
}

func respondJSON(writer http.ResponseWriter, status int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

func respondError(writer http.ResponseWriter, status int, detail string) {
	respondJSON(writer, status, map[string]string{"detail": detail})
}
