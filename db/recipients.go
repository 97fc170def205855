package db

import (
	"errors"
	"strings"

	"github.com/MiraiSubject/CoteValentines2023/model"
	"github.com/mattn/go-sqlite3"
)

// AddRecipient adds a single name to the autocomplete directory.
// The fullname is the primary key; inserting it twice surfaces
// ErrDuplicateRecipient instead of masking the constraint violation.
func AddRecipient(fullName string, isReal bool) error {
	_, err := DB.Exec("INSERT INTO recipients(fullname, is_real) VALUES(?, ?)", fullName, isReal)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDuplicateRecipient
		}
		return err
	}
	return nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// SearchRecipients returns directory entries whose full name contains the
// given text (case-insensitive for ASCII, SQLite LIKE semantics), capped at
// limit results.
func SearchRecipients(query string, limit int) ([]*model.Recipient, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := DB.Query(
		`SELECT fullname, is_real FROM recipients WHERE fullname LIKE ? ESCAPE '\' ORDER BY fullname LIMIT ?`,
		pattern, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []*model.Recipient
	for rows.Next() {
		var rec model.Recipient
		if err := rows.Scan(&rec.FullName, &rec.IsReal); err != nil {
			return nil, err
		}
		found = append(found, &rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return found, nil
}

// ReplaceAllRecipients empties the directory and reinserts the given names in
// one transaction. Blank lines and repeated names are skipped. Returns the
// number of entries the directory holds afterwards.
func ReplaceAllRecipients(names []string, defaultIsReal bool) (int, error) {
	tx, err := DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recipients"); err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO recipients(fullname, is_real) VALUES(?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		res, err := stmt.Exec(name, defaultIsReal)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		count += int(affected)
	}

	return count, tx.Commit()
}
