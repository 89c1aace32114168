package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type VoteHandler struct {
	voteService  *service.VoteService
	matchService *service.MatchService
}

func NewVoteHandler(voteService *service.VoteService, matchService *service.MatchService) *VoteHandler {
	return &VoteHandler{voteService: voteService, matchService: matchService}
}

type SaveStatsRequest struct {
	RosterID string `json:"rosterId"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
}

type MotmVoteRequest struct {
	VoterID string `json:"voterId"`
	First   string `json:"first"`
	Second  string `json:"second"`
	Third   string `json:"third"`
}

type DonkeyVoteRequest struct {
	VoterID     string `json:"voterId"`
	CandidateID string `json:"candidateId"`
	Reason      string `json:"reason"`
}

func (h *VoteHandler) SaveStats(w http.ResponseWriter, r *http.Request) {
	matchID, ok := resolveMatchID(w, r, h.matchService)
	if !ok {
		return
	}

	var req SaveStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rosterID, err := uuid.Parse(req.RosterID)
	if err != nil {
		http.Error(w, "Invalid roster id", http.StatusBadRequest)
		return
	}

	stat, err := h.voteService.SaveStats(r.Context(), matchID, service.SaveStatsInput{
		RosterID: rosterID,
		Goals:    req.Goals,
		Assists:  req.Assists,
	})
	if err != nil {
		writeVoteError(w, "vote.SaveStats", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(stat)
}

func (h *VoteHandler) SubmitMotm(w http.ResponseWriter, r *http.Request) {
	matchID, ok := resolveMatchID(w, r, h.matchService)
	if !ok {
		return
	}

	var req MotmVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	voterID, err := uuid.Parse(req.VoterID)
	if err != nil {
		http.Error(w, "Invalid voter id", http.StatusBadRequest)
		return
	}

	input := service.MotmVoteInput{VoterID: voterID}
	// Unparseable picks stay uuid.Nil; the service rejects those as an
	// incomplete ballot set.
	input.First, _ = uuid.Parse(req.First)
	input.Second, _ = uuid.Parse(req.Second)
	input.Third, _ = uuid.Parse(req.Third)

	if err := h.voteService.SubmitMotm(r.Context(), matchID, input); err != nil {
		writeVoteError(w, "vote.SubmitMotm", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *VoteHandler) SubmitDonkey(w http.ResponseWriter, r *http.Request) {
	matchID, ok := resolveMatchID(w, r, h.matchService)
	if !ok {
		return
	}

	var req DonkeyVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	voterID, err := uuid.Parse(req.VoterID)
	if err != nil {
		http.Error(w, "Invalid voter id", http.StatusBadRequest)
		return
	}
	candidateID, _ := uuid.Parse(req.CandidateID)

	err = h.voteService.SubmitDonkey(r.Context(), matchID, service.DonkeyVoteInput{
		VoterID:     voterID,
		CandidateID: candidateID,
		Reason:      req.Reason,
	})
	if err != nil {
		writeVoteError(w, "vote.SubmitDonkey", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resolveMatchID accepts either a match UUID or a join short code, so
// every match sub-route works with whichever form the client holds.
func resolveMatchID(w http.ResponseWriter, r *http.Request, matchService *service.MatchService) (uuid.UUID, bool) {
	idOrCode := chi.URLParam(r, "idOrCode")

	match, err := matchService.GetMatch(r.Context(), idOrCode)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return uuid.Nil, false
		}
		log.Printf("ERROR [handlers.resolveMatchID] idOrCode=%s: %v", idOrCode, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return uuid.Nil, false
	}
	return match.ID, true
}

func writeVoteError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNeedThreeDistinct),
		errors.Is(err, domain.ErrSelfStatsRequired),
		errors.Is(err, domain.ErrReasonTooLong),
		errors.Is(err, domain.ErrSelfVote),
		errors.Is(err, domain.ErrUnknownPlayer),
		errors.Is(err, domain.ErrNegativeStatValue):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR [%s]: %v", op, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
