package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"amozeshgah/internal/database"
	"amozeshgah/internal/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	// FindByCredentials returns nil when no user has this name and password.
	FindByCredentials(ctx context.Context, name, password string) (*model.User, error)
	// GetUserByID returns nil when the id does not match a user.
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

type userRepo struct {
	db database.Provider
}

func NewUserRepo(db database.Provider) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByCredentials(ctx context.Context, name, password string) (*model.User, error) {
	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}
	u, err := scanUser(db.QueryRowContext(ctx, findUserByCredentialsQuery, name, password))
	if err != nil {
		return nil, fmt.Errorf("failed to query user by credentials: %w", err)
	}
	return u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	// ids are uuids; anything else cannot match a row
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}
	u, err := scanUser(db.QueryRowContext(ctx, getUserByIDQuery, id))
	if err != nil {
		return nil, fmt.Errorf("failed to query user by id: %w", err)
	}
	return u, nil
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.Role,
		&u.Profession,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
