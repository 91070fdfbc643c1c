package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// chatRequest is the assistant request body.
type chatRequest struct {
	Mensagem string `json:"mensagem"`
}

// chatResponse is the assistant response body.
type chatResponse struct {
	Resposta string `json:"resposta"`
}

// competencyKeywords maps message keywords to track competencies.
// Checked in order; the first match wins.
var competencyKeywords = []struct {
	keyword     string
	competencia string
}{
	{"backend", "backend"},
	{"back-end", "backend"},
	{"java", "backend"},
	{"front", "frontend"},
	{"dados", "dados"},
	{"data", "dados"},
	{"sql", "dados"},
	{"devops", "devops"},
	{"mobile", "mobile"},
}

// handleChat answers an assistant message with a track suggestion.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Mensagem) == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "mensagem is required")
		return
	}

	resposta := s.suggest(req.Mensagem)
	s.hub.BroadcastExchange(req.Mensagem, resposta)

	writeJSON(w, http.StatusOK, chatResponse{Resposta: resposta})
}

// suggest builds a reply for the message. When the store holds tracks for
// a recognized competency, the newest one backs the suggestion; otherwise
// the reply is a generic nudge for that competency.
func (s *Server) suggest(mensagem string) string {
	lower := strings.ToLower(mensagem)

	for _, kc := range competencyKeywords {
		if !strings.Contains(lower, kc.keyword) {
			continue
		}

		tracks, err := s.store.TracksByCompetency(kc.competencia)
		if err != nil {
			log.Printf("chat: lookup tracks for %q: %v", kc.competencia, err)
		}
		if len(tracks) > 0 {
			return fmt.Sprintf("Sugiro a trilha %q para evoluir em %s.", tracks[0].Conteudo, kc.competencia)
		}
		return fmt.Sprintf("Para %s, comece registrando uma trilha de estudo com os fundamentos da área.", kc.competencia)
	}

	return "Me conte mais sobre seu objetivo de carreira e eu sugiro trilhas."
}
