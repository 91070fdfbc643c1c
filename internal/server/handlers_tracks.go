package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/reskiapp/reski/internal/store"
)

// trackResponse represents a track in API responses.
type trackResponse struct {
	ID          int    `json:"id"`
	Conteudo    string `json:"conteudo"`
	Status      string `json:"status"`
	Competencia string `json:"competencia"`
}

func toTrackResponse(t *store.Track) trackResponse {
	return trackResponse{
		ID:          t.ID,
		Conteudo:    t.Conteudo,
		Status:      t.Status,
		Competencia: t.Competencia,
	}
}

// handleListTracks returns one page of tracks.
func (s *Server) handleListTracks(w http.ResponseWriter, r *http.Request) {
	number, size, descending := pageQuery(r)

	tracks, total, err := s.store.ListTracks(number*size, size, descending)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to list tracks")
		return
	}

	content := make([]trackResponse, len(tracks))
	for i, t := range tracks {
		content[i] = toTrackResponse(t)
	}

	writeJSON(w, http.StatusOK, pageResponse{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages(total, size),
		Number:        number,
	})
}

// trackRequest is the request body for creating or updating a track.
type trackRequest struct {
	Conteudo    string `json:"conteudo"`
	Status      string `json:"status"`
	Competencia string `json:"competencia"`
}

func (t *trackRequest) validate() string {
	if t.Conteudo == "" || t.Competencia == "" {
		return "conteudo and competencia are required"
	}
	return ""
}

// handleCreateTrack creates a new track.
func (s *Server) handleCreateTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	track, err := s.store.CreateTrack(req.Conteudo, req.Status, req.Competencia)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to create track")
		return
	}

	writeJSON(w, http.StatusCreated, toTrackResponse(track))
}

// handleUpdateTrack replaces a track by id.
func (s *Server) handleUpdateTrack(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid id")
		return
	}

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, "invalid_input", msg)
		return
	}

	track, err := s.store.UpdateTrack(id, req.Conteudo, req.Status, req.Competencia)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "track not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to update track")
		return
	}

	writeJSON(w, http.StatusOK, toTrackResponse(track))
}

// handleDeleteTrack removes a track by id.
func (s *Server) handleDeleteTrack(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid id")
		return
	}

	err = s.store.DeleteTrack(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "track not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to delete track")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
