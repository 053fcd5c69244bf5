package handler

import (
	"encoding/json"
	"net/http"

	"amozeshgah/internal/api/v1/dto"
	"amozeshgah/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type PurchaseHandler struct {
	purchaseService service.PurchaseService
	validate        *validator.Validate
	logger          zerolog.Logger
}

func NewPurchaseHandler(purchaseService service.PurchaseService, validate *validator.Validate, logger zerolog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		validate:        validate,
		logger:          logger.With().Str("handler", "PurchaseHandler").Logger(),
	}
}

func (h *PurchaseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/purchase", h.createPurchase)
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Inserts a purchase row. Payment status, method and transaction id keep their database defaults.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseCreateDTO true "Purchase"
// @Success 201 {object} dto.MessageResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to insert purchase"
// @Router /purchase [post]
func (h *PurchaseHandler) createPurchase(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodPost) {
		return
	}
	// Every failure, including ids or amounts that do not coerce, is a 500.
	var req dto.PurchaseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("Invalid purchase payload")
		writeError(w, http.StatusInternalServerError, "Failed to insert purchase")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.logger.Error().Err(err).Msg("Purchase validation failed")
		writeError(w, http.StatusInternalServerError, "Failed to insert purchase")
		return
	}
	req.Canonicalize()
	amount, err := req.Amount.Float64()
	if err != nil {
		h.logger.Error().Err(err).Str("amount", req.Amount.String()).Msg("Invalid purchase amount")
		writeError(w, http.StatusInternalServerError, "Failed to insert purchase")
		return
	}

	p, err := h.purchaseService.Purchase(r.Context(), req.UserID, req.CourseID, amount)
	if err != nil {
		h.logger.Error().Err(err).
			Str("user_id", req.UserID).
			Str("course_id", req.CourseID).
			Msg("Failed to insert purchase")
		writeError(w, http.StatusInternalServerError, "Failed to insert purchase")
		return
	}
	h.logger.Info().Str("purchase_id", p.ID).Str("course_id", p.CourseID).Msg("Purchase recorded")
	writeJSON(w, http.StatusCreated, dto.MessageResponseDTO{Message: "Purchase successful"})
}
