package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusconnect/backend/internal/api/middleware"
	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type MatchHandler struct {
	matchService *service.MatchService
}

func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

type MatchesResponse struct {
	Matches []*domain.User `json:"matches"`
}

type SwipeRequest struct {
	TargetUserID string `json:"targetUserId"`
	Action       string `json:"action"`
}

// SwipeTarget is the candidate summary echoed back after a swipe.
type SwipeTarget struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Age       int       `json:"age"`
	Photos    []string  `json:"photos"`
}

type SwipeResponse struct {
	Message    string      `json:"message"`
	Action     string      `json:"action"`
	TargetUser SwipeTarget `json:"targetUser"`
}

func (h *MatchHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := h.matchService.ListCandidates(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("list candidates failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, MatchesResponse{Matches: matches})
}

func (h *MatchHandler) Swipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.TargetUserID == "" || req.Action == "" {
		respondError(w, http.StatusBadRequest, "Target user ID and action are required")
		return
	}

	targetID, err := uuid.Parse(req.TargetUserID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Target user not found")
		return
	}

	result, err := h.matchService.Swipe(r.Context(), userID, targetID, domain.SwipeAction(req.Action))
	if err != nil {
		if errors.Is(err, service.ErrInvalidSwipeAction) {
			respondError(w, http.StatusBadRequest, "Invalid swipe action")
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Target user not found")
			return
		}
		log.Error().Err(err).Msg("swipe failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, SwipeResponse{
		Message: "Swipe recorded successfully",
		Action:  result.Action.String(),
		TargetUser: SwipeTarget{
			ID:        result.Target.ID,
			FirstName: result.Target.FirstName,
			LastName:  result.Target.LastName,
			Age:       result.Target.Age,
			Photos:    result.Target.Photos,
		},
	})
}
