package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"amozeshgah/internal/api/v1/dto"
	"amozeshgah/internal/service"

	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.With().Str("handler", "UserHandler").Logger(),
	}
}

// RegisterRoutes mounts login and dashboard lookup routes
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", h.login)
	mux.HandleFunc("/dashboard", h.dashboard)
}

// login godoc
// @Summary Log in
// @Description Checks a username and plaintext password. No session is issued; callers keep the returned Id and Role.
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} dto.UserEnvelopeDTO
// @Failure 401 {object} dto.ErrorResponseDTO "Invalid username or password"
// @Failure 500 {object} dto.ErrorResponseDTO "Internal server error"
// @Router /login [post]
func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Invalid login payload")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.userService.Login(r.Context(), req.Username, string(req.Password))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.logger.Error().Err(err).Msg("Failed to log in")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, dto.UserEnvelopeDTO{Message: "Login successful", User: user})
}

// dashboard godoc
// @Summary Fetch a user by id
// @Description Looks up the user a dashboard page belongs to.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.DashboardRequestDTO true "User id"
// @Success 200 {object} dto.UserEnvelopeDTO
// @Failure 401 {object} dto.ErrorResponseDTO "Sorry,could not find you"
// @Failure 500 {object} dto.ErrorResponseDTO "Internal server error"
// @Router /dashboard [post]
func (h *UserHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}
	var req dto.DashboardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Invalid dashboard payload")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.userService.Get(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "Sorry,could not find you")
			return
		}
		h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to fetch user")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, dto.UserEnvelopeDTO{Message: "We found you", User: user})
}
