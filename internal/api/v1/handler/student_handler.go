package handler

import (
	"errors"
	"net/http"

	"amozeshgah/internal/service"

	"github.com/rs/zerolog"
)

type StudentHandler struct {
	studentService service.StudentService
	logger         zerolog.Logger
}

func NewStudentHandler(studentService service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		logger:         logger.With().Str("handler", "StudentHandler").Logger(),
	}
}

func (h *StudentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/students", h.listStudents)
}

// listStudents godoc
// @Summary List a tutor's students
// @Description One row per completed purchase of the tutor's courses, newest purchase first.
// @Tags students
// @Produce json
// @Param tutorId query string true "Tutor ID"
// @Success 200 {array} model.StudentPurchase
// @Failure 400 {object} dto.ErrorResponseDTO "tutorId parameter is required"
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to fetch students"
// @Router /students [get]
func (h *StudentHandler) listStudents(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	tutorID := r.URL.Query().Get("tutorId")
	students, err := h.studentService.ListStudents(r.Context(), tutorID)
	if err != nil {
		if errors.Is(err, service.ErrTutorIDRequired) {
			writeError(w, http.StatusBadRequest, "tutorId parameter is required")
			return
		}
		h.logger.Error().Err(err).Str("tutor_id", tutorID).Msg("Failed to fetch students")
		writeError(w, http.StatusInternalServerError, "Failed to fetch students")
		return
	}
	writeJSON(w, http.StatusOK, students)
}
