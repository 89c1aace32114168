package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/boudmarinus-tech/ene-chille-app/internal/repository"
)

type FixtureHandler struct {
	fixtureRepo repository.FixtureRepository
}

func NewFixtureHandler(fixtureRepo repository.FixtureRepository) *FixtureHandler {
	return &FixtureHandler{fixtureRepo: fixtureRepo}
}

func (h *FixtureHandler) List(w http.ResponseWriter, r *http.Request) {
	fixtures, err := h.fixtureRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [fixture.List]: %v", err)
		http.Error(w, "Failed to load fixtures", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fixtures)
}
