package handler

import (
	"net/http"

	"amozeshgah/internal/service"

	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		logger:        logger.With().Str("handler", "CourseHandler").Logger(),
	}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/courses", h.listCourses)
}

// listCourses godoc
// @Summary List courses
// @Description Returns every course in the catalog.
// @Tags courses
// @Produce json
// @Success 200 {array} model.Course
// @Failure 500 {object} dto.ErrorResponseDTO "Failed to fetch courses"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch courses")
		writeError(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}
	writeJSON(w, http.StatusOK, courses)
}
