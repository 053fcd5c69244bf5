package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"amozeshgah/internal/model"
	"amozeshgah/internal/service"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

const placeholderImage = "https://placehold.co/300x200?text=Course"

var funcs = template.FuncMap{
	"imageURL": func(ref *string) string {
		if ref == nil || *ref == "" {
			return placeholderImage
		}
		return *ref
	},
	"amount": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
	"date": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
	"initial": func(name string) string {
		r, _ := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError {
			return "U"
		}
		return strings.ToUpper(string(r))
	},
}

type page struct {
	Title       string
	ShowSignOut bool
}

type coursesPage struct {
	page
	UserID  string
	Courses []model.Course
}

type dashboardPage struct {
	page
	Profile       *model.User
	Students      []model.StudentCourses
	StudentsError bool
}

// Handler renders the login, catalog and dashboard pages.
type Handler struct {
	courses  service.CourseService
	users    service.UserService
	students service.StudentService
	tmpl     *template.Template
	logger   zerolog.Logger
}

func NewHandler(courses service.CourseService, users service.UserService, students service.StudentService, logger zerolog.Logger) *Handler {
	tmpl := template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
	return &Handler{
		courses:  courses,
		users:    users,
		students: students,
		tmpl:     tmpl,
		logger:   logger.With().Str("handler", "web").Logger(),
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.index)
	mux.HandleFunc("/login", h.loginPage)
	mux.HandleFunc("/courses", h.coursesPage)
	mux.HandleFunc("/dashboard", h.dashboardPage)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", page{Title: "Login"})
}

func (h *Handler) coursesPage(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListCourses(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch courses for catalog")
		http.Error(w, "Failed to fetch courses", http.StatusInternalServerError)
		return
	}
	h.render(w, "courses.html", coursesPage{
		page:    page{Title: "Courses", ShowSignOut: true},
		UserID:  r.URL.Query().Get("userId"),
		Courses: courses,
	})
}

func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := dashboardPage{page: page{Title: "Dashboard", ShowSignOut: true}}

	profile, err := h.users.Get(r.Context(), userID)
	switch {
	case err == nil:
		data.Profile = profile
	case errors.Is(err, service.ErrUserNotFound):
	default:
		h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch dashboard profile")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	students, err := h.students.ListGroupedStudents(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Str("tutor_id", userID).Msg("Failed to fetch students for dashboard")
		data.StudentsError = true
	}
	data.Students = students

	h.render(w, "dashboard.html", data)
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error().Err(err).Str("template", name).Msg("Failed to render page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
