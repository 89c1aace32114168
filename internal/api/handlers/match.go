package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
	"github.com/go-chi/chi/v5"
)

type MatchHandler struct {
	matchService *service.MatchService
}

func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

type CreateMatchRequest struct {
	Name string `json:"name"`
}

type MatchResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
	CreatedAt string `json:"createdAt"`
}

func matchResponse(m *domain.Match) MatchResponse {
	return MatchResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		ShortCode: m.ShortCode,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.matchService.CreateMatch(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrMatchNameRequired) {
			http.Error(w, "Match name is required", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [match.Create]: %v", err)
		http.Error(w, "Failed to create match", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(matchResponse(match))
}

func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	idOrCode := chi.URLParam(r, "idOrCode")

	match, err := h.matchService.GetMatch(r.Context(), idOrCode)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [match.Get] idOrCode=%s: %v", idOrCode, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matchResponse(match))
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.GetRecentMatches(r.Context())
	if err != nil {
		log.Printf("ERROR [match.List]: %v", err)
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}

	resp := make([]MatchResponse, len(matches))
	for i := range matches {
		resp[i] = matchResponse(&matches[i])
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
