package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
)

type RosterHandler struct {
	rosterRepo repository.RosterRepository
}

func NewRosterHandler(rosterRepo repository.RosterRepository) *RosterHandler {
	return &RosterHandler{rosterRepo: rosterRepo}
}

func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [roster.List]: %v", err)
		http.Error(w, "Failed to load roster", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(players)
}
