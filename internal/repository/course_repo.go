package repository

import (
	"context"
	"fmt"

	"amozeshgah/internal/database"
	"amozeshgah/internal/model"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
}

type courseRepo struct {
	db database.Provider
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db database.Provider) CourseRepository {
	return &courseRepo{db: db}
}

// ListCourses returns every course row, unfiltered
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listCoursesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Price,
			&c.TutorID,
			&c.Level,
			&c.Category,
			&c.ImageURL,
			&c.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}
