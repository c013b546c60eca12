package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	University string   `json:"university"`
	Major      string   `json:"major"`
	Year       string   `json:"year"`
	Bio        string   `json:"bio"`
	Location   string   `json:"location"`
	Interests  []string `json:"interests"`
	Photos     []string `json:"photos"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Age:        req.Age,
		Gender:     domain.Gender(req.Gender),
		University: req.University,
		Major:      req.Major,
		Year:       req.Year,
		Bio:        req.Bio,
		Location:   req.Location,
		Interests:  req.Interests,
		Photos:     req.Photos,
	})
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			respondError(w, http.StatusBadRequest, "User with this email already exists")
			return
		}
		log.Error().Err(err).Msg("signup failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{
		Message: "Account created successfully",
		Token:   result.Token,
		User:    result.User,
	})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("signin failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{
		Message: "Sign in successful",
		Token:   result.Token,
		User:    result.User,
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		log.Error().Err(err).Msg("forgot password failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Identical response whether or not the account exists.
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "If the email exists, a reset link has been sent",
	})
}
