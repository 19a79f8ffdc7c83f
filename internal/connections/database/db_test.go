package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-bot/internal/config"
)

func TestEnsureSchemaExecutesAllStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schema {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS clients").WillReturnError(errors.New("permission denied"))

	err = EnsureSchema(context.Background(), db)
	assert.ErrorContains(t, err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDSNDefaultsSSLMode(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "cafe", Password: "pw", Database: "cafe"})
	assert.Equal(t, "host=db port=5432 user=cafe password=pw dbname=cafe sslmode=disable", dsn)
}
