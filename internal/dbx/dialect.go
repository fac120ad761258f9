package dbx

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Dialect describes how a supported driver is opened, migrated and
// isolated. Repositories write queries with '?' placeholders and pass
// them through Rebind.
type Dialect struct {
	// Name is also the directory of the dialect's embedded migrations.
	Name string
	// Driver is the database/sql driver name.
	Driver string
	// Goose is the goose dialect.
	Goose string
	// TxOptions are used for multi-statement operations.
	TxOptions *sql.TxOptions
}

var (
	// SQLite transactions are always serializable; the DSN should carry
	// _txlock=immediate so the first read already holds the write lock.
	SQLite = Dialect{
		Name:   "sqlite",
		Driver: "sqlite",
		Goose:  "sqlite3",
	}

	Postgres = Dialect{
		Name:      "postgres",
		Driver:    "pgx",
		Goose:     "pgx",
		TxOptions: &sql.TxOptions{Isolation: sql.LevelSerializable},
	}
)

// DialectFor resolves a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}

// Rebind converts '?' placeholders into the driver's bind style.
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(d.Driver), query)
}
