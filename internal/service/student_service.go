package service

import (
	"context"
	"errors"

	"amozeshgah/internal/model"
	"amozeshgah/internal/repository"
)

var ErrTutorIDRequired = errors.New("tutorId parameter is required")

type StudentService interface {
	// ListStudents returns one flat row per completed purchase of the tutor's courses.
	ListStudents(ctx context.Context, tutorID string) ([]model.StudentPurchase, error)
	// ListGroupedStudents is ListStudents folded by buyer.
	ListGroupedStudents(ctx context.Context, tutorID string) ([]model.StudentCourses, error)
}

type studentService struct {
	repo repository.PurchaseRepository
}

func NewStudentService(repo repository.PurchaseRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) ListStudents(ctx context.Context, tutorID string) ([]model.StudentPurchase, error) {
	if tutorID == "" {
		return nil, ErrTutorIDRequired
	}
	return s.repo.ListTutorStudents(ctx, tutorID)
}

func (s *studentService) ListGroupedStudents(ctx context.Context, tutorID string) ([]model.StudentCourses, error) {
	rows, err := s.ListStudents(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	return GroupByStudent(rows), nil
}

// GroupByStudent folds flat rows into one entry per buyer. Students appear in
// the order of their first row and each student's courses keep row order.
func GroupByStudent(rows []model.StudentPurchase) []model.StudentCourses {
	groups := []model.StudentCourses{}
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		i, ok := index[row.UserID]
		if !ok {
			i = len(groups)
			index[row.UserID] = i
			groups = append(groups, model.StudentCourses{
				Student: model.StudentProfile{
					UserID:     row.UserID,
					Name:       row.Name,
					Email:      row.Email,
					Profession: row.Profession,
				},
			})
		}
		groups[i].Courses = append(groups[i].Courses, model.EnrolledCourse{
			CourseID:      row.CourseID,
			CourseTitle:   row.CourseTitle,
			PurchaseDate:  row.PurchaseDate,
			PaymentStatus: row.PaymentStatus,
			Amount:        row.Amount,
		})
	}
	return groups
}
