package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amozeshgah/internal/model"
)

var userColumnNames = []string{"id", "name", "email", "password", "role", "profession", "is_active", "created_at", "updated_at"}

const aliceID = "6f1c2b8e-3a4d-4f5e-9a6b-7c8d9e0f1a2b"

func aliceRow() *sqlmock.Rows {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(userColumnNames).
		AddRow(aliceID, "alice", "alice@example.com", "1234", "TUTOR", "Engineer", true, now, now)
}

func TestFindByCredentials(t *testing.T) {
	provider, mock := newMock(t)
	repo := NewUserRepo(provider)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1 AND password = $2")).
		WithArgs("alice", "1234").
		WillReturnRows(aliceRow())

	u, err := repo.FindByCredentials(context.Background(), "alice", "1234")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, aliceID, u.ID)
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, model.RoleTutor, u.Role)
	require.NotNil(t, u.Profession)
	assert.Equal(t, "Engineer", *u.Profession)
}

func TestFindByCredentialsNoMatch(t *testing.T) {
	provider, mock := newMock(t)
	repo := NewUserRepo(provider)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1 AND password = $2")).
		WithArgs("alice", "wrong").
		WillReturnRows(sqlmock.NewRows(userColumnNames))

	u, err := repo.FindByCredentials(context.Background(), "alice", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestFindByCredentialsError(t *testing.T) {
	provider, mock := newMock(t)
	repo := NewUserRepo(provider)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WillReturnError(errors.New("timeout"))

	_, err := repo.FindByCredentials(context.Background(), "alice", "1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestGetUserByID(t *testing.T) {
	provider, mock := newMock(t)
	repo := NewUserRepo(provider)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(aliceID).
		WillReturnRows(aliceRow())

	u, err := repo.GetUserByID(context.Background(), aliceID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice@example.com", u.Email)
}

func TestGetUserByIDNotFound(t *testing.T) {
	provider, mock := newMock(t)
	repo := NewUserRepo(provider)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(aliceID).
		WillReturnRows(sqlmock.NewRows(userColumnNames))

	u, err := repo.GetUserByID(context.Background(), aliceID)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetUserByIDMalformedSkipsQuery(t *testing.T) {
	provider, _ := newMock(t)
	repo := NewUserRepo(provider)

	u, err := repo.GetUserByID(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, u)
}
