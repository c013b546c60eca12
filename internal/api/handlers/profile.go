package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/campusconnect/backend/internal/api/middleware"
	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	photoStore     storage.PhotoStore
	cfg            *config.Config
}

func NewProfileHandler(profileService *service.ProfileService, photoStore storage.PhotoStore, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		photoStore:     photoStore,
		cfg:            cfg,
	}
}

// UpdateProfileRequest mirrors the service allow-list. Unknown JSON fields
// are dropped by decoding, so email and password can never be changed here.
type UpdateProfileRequest struct {
	FirstName  *string   `json:"firstName"`
	LastName   *string   `json:"lastName"`
	Age        *int      `json:"age"`
	Gender     *string   `json:"gender"`
	University *string   `json:"university"`
	Major      *string   `json:"major"`
	Year       *string   `json:"year"`
	Bio        *string   `json:"bio"`
	Location   *string   `json:"location"`
	Interests  *[]string `json:"interests"`
}

type ProfileResponse struct {
	User *domain.User `json:"user"`
}

type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type UploadPhotosResponse struct {
	Message string   `json:"message"`
	Photos  []string `json:"photos"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("get profile failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{User: user})
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Age:        req.Age,
		University: req.University,
		Major:      req.Major,
		Year:       req.Year,
		Bio:        req.Bio,
		Location:   req.Location,
		Interests:  req.Interests,
	}
	if req.Gender != nil {
		gender := domain.Gender(*req.Gender)
		input.Gender = &gender
	}

	user, err := h.profileService.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("update profile failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    user,
	})
}

func (h *ProfileHandler) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(h.cfg.MaxPhotoSizeBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No photos uploaded")
		return
	}
	if len(files) > h.cfg.MaxPhotosPerUser {
		respondError(w, http.StatusBadRequest, "Too many photos uploaded")
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Size > h.cfg.MaxPhotoSizeBytes {
			respondError(w, http.StatusBadRequest, "File too large. Maximum size is 5MB.")
			return
		}
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
			respondError(w, http.StatusBadRequest, "Only image files are allowed")
			return
		}

		f, err := fh.Open()
		if err != nil {
			log.Error().Err(err).Msg("open uploaded photo failed")
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		url, err := h.photoStore.Save(r.Context(), fh.Filename, f)
		f.Close()
		if err != nil {
			log.Error().Err(err).Msg("save uploaded photo failed")
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		urls = append(urls, url)
	}

	user, err := h.profileService.AttachPhotos(r.Context(), userID, urls)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Error().Err(err).Msg("attach photos failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, UploadPhotosResponse{
		Message: "Photos uploaded successfully",
		Photos:  user.Photos,
	})
}
