package service

import (
	"context"

	"amozeshgah/internal/model"
	"amozeshgah/internal/repository"
	"amozeshgah/internal/storage"

	"github.com/rs/zerolog"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
}

// courseService is the implementation of CourseService
type courseService struct {
	repo   repository.CourseRepository
	images storage.ImageSigner
	logger zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository, images storage.ImageSigner, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:   repo,
		images: images,
		logger: logger.With().Str("service", "CourseService").Logger(),
	}
}

// ListCourses returns the whole catalog with image references resolved to
// loadable URLs. An image that cannot be signed keeps its stored reference.
func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		ref := courses[i].ImageURL
		if ref == nil || *ref == "" {
			continue
		}
		signed, err := s.images.SignImageURL(ctx, *ref)
		if err != nil {
			s.logger.Warn().Err(err).Str("course_id", courses[i].ID).Msg("Failed to sign course image")
			continue
		}
		courses[i].ImageURL = &signed
	}
	return courses, nil
}
