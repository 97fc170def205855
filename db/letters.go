package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/MiraiSubject/CoteValentines2023/model"
)

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanLetter scans a row into a Letter struct.
func scanLetter(scanner rowScanner) (*model.Letter, error) {
	var letter model.Letter
	err := scanner.Scan(
		&letter.ID, &letter.Recipient, &letter.SenderName, &letter.Anonymous,
		&letter.Content, &letter.AuditMessageID, &letter.SenderID, &letter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLetterNotFound
		}
		return nil, err
	}
	return &letter, nil
}

const letterColumns = `id, recipient, sender, anon, content, COALESCE(message_id, '') as message_id, sender_id, created_at`

// AddLetter inserts a new letter, enforcing the per-sender quota inside a
// single write transaction. The count and the insert cannot interleave with
// another intake for the same sender because the transaction starts with the
// write lock held (see InitDB). Returns ErrQuotaExceeded when the sender is
// already at maxPerSender letters, otherwise fills in the assigned ID.
func AddLetter(letter *model.Letter, maxPerSender int) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() // Rollback on error

	var count int
	err = tx.QueryRow("SELECT COUNT(*) FROM letters WHERE sender_id = ?", letter.SenderID).Scan(&count)
	if err != nil {
		return err
	}
	if count >= maxPerSender {
		return ErrQuotaExceeded
	}

	var messageID sql.NullString
	if letter.AuditMessageID != "" {
		messageID = sql.NullString{String: letter.AuditMessageID, Valid: true}
	}
	if letter.CreatedAt == 0 {
		letter.CreatedAt = time.Now().Unix()
	}

	res, err := tx.Exec(`INSERT INTO letters(recipient, sender, anon, content, message_id, sender_id, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		letter.Recipient, letter.SenderName, letter.Anonymous, letter.Content,
		messageID, letter.SenderID, letter.CreatedAt,
	)
	if err != nil {
		return err
	}

	letter.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CountLettersBySender returns how many letters a sender currently has stored.
func CountLettersBySender(senderID string) (int, error) {
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM letters WHERE sender_id = ?", senderID).Scan(&count)
	return count, err
}

// GetAllLetters retrieves every stored letter in insertion order.
func GetAllLetters() ([]*model.Letter, error) {
	rows, err := DB.Query("SELECT " + letterColumns + " FROM letters ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []*model.Letter
	for rows.Next() {
		letter, err := scanLetter(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, letter)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return found, nil
}

// DeleteLetterByMessageID deletes the letter whose audit-channel message ID
// matches and returns the deleted row, so the caller can annotate the audit
// message with what was removed. Returns ErrLetterNotFound when no letter
// carries that message ID; a repeated call for the same ID therefore fails
// cleanly without touching anything.
func DeleteLetterByMessageID(messageID string) (*model.Letter, error) {
	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRow("SELECT "+letterColumns+" FROM letters WHERE message_id = ?", messageID)
	letter, err := scanLetter(row)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec("DELETE FROM letters WHERE id = ?", letter.ID); err != nil {
		return nil, err
	}

	return letter, tx.Commit()
}

// DeleteLetter removes a letter by its internal ID.
func DeleteLetter(id int64) error {
	res, err := DB.Exec("DELETE FROM letters WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLetterNotFound
	}
	return nil
}
