package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/reskiapp/reski/internal/store"
)

// goalResponse represents a goal in API responses.
type goalResponse struct {
	ID        int    `json:"id"`
	Cargo     string `json:"cargo"`
	Area      string `json:"area"`
	Demanda   string `json:"demanda"`
	Descricao string `json:"descricao"`
}

func toGoalResponse(g *store.Goal) goalResponse {
	return goalResponse{
		ID:        g.ID,
		Cargo:     g.Cargo,
		Area:      g.Area,
		Demanda:   g.Demanda,
		Descricao: g.Descricao,
	}
}

// pageResponse is the paged list envelope.
type pageResponse struct {
	Content       any `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// pageQuery extracts pageNumber, pageSize and sort direction from the
// request, applying the service defaults.
func pageQuery(r *http.Request) (number, size int, descending bool) {
	number = 0
	size = 50
	if v := r.URL.Query().Get("pageNumber"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			number = n
		}
	}
	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			size = n
		}
	}
	descending = strings.HasSuffix(r.URL.Query().Get("sort"), ",desc")
	return number, size, descending
}

func totalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}

// handleListGoals returns one page of goals.
func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	number, size, descending := pageQuery(r)

	goals, total, err := s.store.ListGoals(number*size, size, descending)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to list goals")
		return
	}

	content := make([]goalResponse, len(goals))
	for i, g := range goals {
		content[i] = toGoalResponse(g)
	}

	writeJSON(w, http.StatusOK, pageResponse{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages(total, size),
		Number:        number,
	})
}

// goalRequest is the request body for creating or updating a goal.
type goalRequest struct {
	Cargo     string `json:"cargo"`
	Area      string `json:"area"`
	Demanda   string `json:"demanda"`
	Descricao string `json:"descricao"`
}

func (g *goalRequest) validate() string {
	if g.Cargo == "" || g.Area == "" || g.Demanda == "" || g.Descricao == "" {
		return "cargo, area, demanda and descricao are required"
	}
	return ""
}

// handleCreateGoal creates a new goal.
func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	goal, err := s.store.CreateGoal(req.Cargo, req.Area, req.Demanda, req.Descricao)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(goal))
}

// handleUpdateGoal replaces a goal by id.
func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid id")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	goal, err := s.store.UpdateGoal(id, req.Cargo, req.Area, req.Demanda, req.Descricao)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "goal not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(goal))
}

// handleDeleteGoal removes a goal by id.
func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid id")
		return
	}

	err = s.store.DeleteGoal(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "goal not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to delete goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
