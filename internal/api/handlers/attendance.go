package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/boudmarinus-tech/ene-chille-app/internal/domain"
	"github.com/boudmarinus-tech/ene-chille-app/internal/service"
	"github.com/google/uuid"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	matchService      *service.MatchService
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, matchService *service.MatchService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, matchService: matchService}
}

type SaveAttendanceRequest struct {
	RosterID string `json:"rosterId"`
	Status   string `json:"status"`
}

func (h *AttendanceHandler) Save(w http.ResponseWriter, r *http.Request) {
	matchID, ok := resolveMatchID(w, r, h.matchService)
	if !ok {
		return
	}

	var req SaveAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rosterID, err := uuid.Parse(req.RosterID)
	if err != nil {
		http.Error(w, "Invalid roster id", http.StatusBadRequest)
		return
	}

	err = h.attendanceService.Save(r.Context(), matchID, rosterID, domain.AttendanceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAttendance), errors.Is(err, domain.ErrUnknownPlayer):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			log.Printf("ERROR [attendance.Save]: %v", err)
			http.Error(w, "Failed to save attendance", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	matchID, ok := resolveMatchID(w, r, h.matchService)
	if !ok {
		return
	}

	summary, err := h.attendanceService.Summary(r.Context(), matchID)
	if err != nil {
		log.Printf("ERROR [attendance.Get] matchID=%s: %v", matchID, err)
		http.Error(w, "Failed to load attendance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
