package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"amozeshgah/internal/api/v1/dto"
	"amozeshgah/internal/model"
	"amozeshgah/internal/service"
)

const (
	aliceID  = "6f1c2b8e-3a4d-4f5e-9a6b-7c8d9e0f1a2b"
	tutorID  = "0b7e4a52-1d2c-4c8e-8f3a-5e6d7c8b9a01"
	courseID = "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a"
)

var errDB = errors.New("connection reset by peer")

type fakeCourseService struct {
	courses []model.Course
	err     error
}

func (f *fakeCourseService) ListCourses(context.Context) ([]model.Course, error) {
	return f.courses, f.err
}

type fakeUserService struct {
	users map[string]model.User
	err   error
}

func (f *fakeUserService) Login(_ context.Context, username, password string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Name == username && u.Password == password {
			return &u, nil
		}
	}
	return nil, service.ErrInvalidCredentials
}

func (f *fakeUserService) Get(_ context.Context, id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, service.ErrUserNotFound
	}
	return &u, nil
}

// fakeStore is an in-memory purchases table shared by the purchase and
// student services so properties can be checked end to end.
type fakeStore struct {
	courses   map[string]model.Course
	users     map[string]model.User
	purchases []model.Purchase
	err       error
}

func (f *fakeStore) Purchase(_ context.Context, userID, courseID string, amount float64) (*model.Purchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[userID]; !ok {
		return nil, errors.New("violates foreign key constraint purchases_user_id_fkey")
	}
	if _, ok := f.courses[courseID]; !ok {
		return nil, errors.New("violates foreign key constraint purchases_course_id_fkey")
	}
	p := model.Purchase{
		ID:            "p-" + userID + "-" + courseID,
		UserID:        userID,
		CourseID:      courseID,
		Amount:        amount,
		PaymentStatus: model.PaymentCompleted,
		PurchaseDate:  time.Now(),
	}
	f.purchases = append(f.purchases, p)
	return &p, nil
}

func (f *fakeStore) ListStudents(_ context.Context, tutorID string) ([]model.StudentPurchase, error) {
	if tutorID == "" {
		return nil, service.ErrTutorIDRequired
	}
	if f.err != nil {
		return nil, f.err
	}
	rows := []model.StudentPurchase{}
	for i := len(f.purchases) - 1; i >= 0; i-- {
		p := f.purchases[i]
		c := f.courses[p.CourseID]
		if c.TutorID != tutorID || p.PaymentStatus != model.PaymentCompleted {
			continue
		}
		u := f.users[p.UserID]
		rows = append(rows, model.StudentPurchase{
			UserID:        u.ID,
			Name:          u.Name,
			Email:         u.Email,
			CourseID:      c.ID,
			CourseTitle:   c.Title,
			Amount:        p.Amount,
			PaymentStatus: p.PaymentStatus,
			PurchaseDate:  p.PurchaseDate,
		})
	}
	return rows, nil
}

func (f *fakeStore) ListGroupedStudents(ctx context.Context, tutorID string) ([]model.StudentCourses, error) {
	rows, err := f.ListStudents(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	return service.GroupByStudent(rows), nil
}

func newStore() *fakeStore {
	return &fakeStore{
		courses: map[string]model.Course{
			courseID: {ID: courseID, Title: "Go Basics", Price: 49.99, TutorID: tutorID},
		},
		users: map[string]model.User{
			aliceID: {ID: aliceID, Name: "alice", Email: "alice@example.com", Role: model.RoleStudent},
			tutorID: {ID: tutorID, Name: "tara", Role: model.RoleTutor},
		},
	}
}

func newValidator() *validator.Validate {
	return dto.NewValidator()
}

func serve(t *testing.T, register func(*http.ServeMux), method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	register(mux)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	return rec
}

var nopLogger = zerolog.Nop()
