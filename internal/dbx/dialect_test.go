package dbx

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		driver  string
		want    Dialect
		wantErr bool
	}{
		{driver: "sqlite", want: SQLite},
		{driver: "sqlite3", want: SQLite},
		{driver: "pgx", want: Postgres},
		{driver: "postgres", want: Postgres},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := DialectFor(tt.driver)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialect_Rebind(t *testing.T) {
	q := `UPDATE users SET password = ? WHERE username = ? AND password = ?`

	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, `UPDATE users SET password = $1 WHERE username = $2 AND password = $3`, Postgres.Rebind(q))
}

func TestDialect_PostgresIsSerializable(t *testing.T) {
	require.NotNil(t, Postgres.TxOptions)
	assert.Equal(t, sql.LevelSerializable, Postgres.TxOptions.Isolation)
	assert.Nil(t, SQLite.TxOptions)
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	dup := fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsUniqueViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}
