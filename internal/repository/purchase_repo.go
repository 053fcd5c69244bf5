package repository

import (
	"context"
	"fmt"

	"amozeshgah/internal/database"
	"amozeshgah/internal/model"

	"github.com/google/uuid"
)

type PurchaseRepository interface {
	// CreatePurchase inserts p.ID, p.UserID, p.CourseID and p.Amount. The
	// remaining columns keep their database defaults.
	CreatePurchase(ctx context.Context, p *model.Purchase) error
	// ListTutorStudents returns completed purchases of the tutor's courses,
	// newest first.
	ListTutorStudents(ctx context.Context, tutorID string) ([]model.StudentPurchase, error)
}

type purchaseRepo struct {
	db database.Provider
}

func NewPurchaseRepo(db database.Provider) PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) CreatePurchase(ctx context.Context, p *model.Purchase) error {
	db, err := r.db.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, insertPurchaseQuery, p.ID, p.UserID, p.CourseID, p.Amount); err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}

func (r *purchaseRepo) ListTutorStudents(ctx context.Context, tutorID string) ([]model.StudentPurchase, error) {
	if _, err := uuid.Parse(tutorID); err != nil {
		return []model.StudentPurchase{}, nil
	}

	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, listTutorStudentsQuery, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tutor students: %w", err)
	}
	defer rows.Close()

	students := []model.StudentPurchase{}
	for rows.Next() {
		var s model.StudentPurchase
		if err := rows.Scan(
			&s.UserID,
			&s.Email,
			&s.Name,
			&s.Role,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.IsActive,
			&s.Profession,
			&s.CourseID,
			&s.Amount,
			&s.PaymentStatus,
			&s.PaymentMethod,
			&s.TransactionID,
			&s.PurchaseDate,
			&s.CourseTitle,
			&s.CourseDescription,
			&s.CoursePrice,
			&s.CourseLevel,
			&s.CourseCategory,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tutor student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tutor students: %w", err)
	}
	return students, nil
}
