package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const dbDriver = "sqlite3"

// Sentinel errors surfaced by the store. Callers match with errors.Is.
var (
	// ErrQuotaExceeded is returned when a sender already has the maximum
	// number of letters on record.
	ErrQuotaExceeded = errors.New("sender has already sent the maximum number of letters")

	// ErrLetterNotFound is returned when a lookup or delete matches no letter.
	ErrLetterNotFound = errors.New("letter not found")

	// ErrDuplicateRecipient is returned when a recipient with the same full
	// name already exists in the directory.
	ErrDuplicateRecipient = errors.New("recipient already exists")
)

// DB is the global database connection pool.
var DB *sql.DB

// InitDB opens the SQLite database at the given path and creates tables if
// they don't exist. Write transactions begin with the write lock held
// (_txlock=immediate) so the count-then-insert quota check cannot race.
func InitDB(path string) {
	var err error
	source := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate", path)
	DB, err = sql.Open(dbDriver, source)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	// createTables is defined in migrate.go
	createTables()

	log.Info().Str("path", path).Msg("Database connection initialized")
}
