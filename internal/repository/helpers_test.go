package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	db  *sql.DB
	err error
}

func (p stubProvider) DB(context.Context) (*sql.DB, error) {
	return p.db, p.err
}

func newMock(t *testing.T) (stubProvider, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return stubProvider{db: db}, mock
}
