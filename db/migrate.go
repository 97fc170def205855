package db

import (
	"github.com/rs/zerolog/log"
)

// createTables creates the necessary tables if they don't exist yet.
func createTables() {
	createLettersTableSQL := `
	CREATE TABLE IF NOT EXISTS letters (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recipient TEXT NOT NULL,
		sender TEXT NOT NULL,
		anon INTEGER NOT NULL DEFAULT 0,
		content TEXT NOT NULL,
		message_id TEXT,
		sender_id TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`

	_, err := DB.Exec(createLettersTableSQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create letters table")
	}

	// message_id is the audit-channel cross reference used for retraction.
	createLetterIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_letters_message_id ON letters(message_id);
	CREATE INDEX IF NOT EXISTS idx_letters_sender_id ON letters(sender_id);`

	_, err = DB.Exec(createLetterIndexSQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create letters indexes")
	}

	createRecipientsTableSQL := `
	CREATE TABLE IF NOT EXISTS recipients (
		fullname TEXT PRIMARY KEY,
		is_real INTEGER NOT NULL DEFAULT 0
	);`

	_, err = DB.Exec(createRecipientsTableSQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create recipients table")
	}
}
