package letters

import (
	"errors"
	"fmt"
)

// ErrLettersClosed is returned by Submit while the intake gate is closed.
var ErrLettersClosed = errors.New("letters are not being accepted right now")

// ErrEmptyLetter is returned when the sender identity or the letter body is
// missing. The slash command schema already enforces lengths; this is the
// service's own floor.
var ErrEmptyLetter = errors.New("letter is missing a sender or content")

// DispatchError reports a failed bulk publish run. Sent carries how many
// letters went out before the failure.
type DispatchError struct {
	Sent int
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed after %d letters: %v", e.Sent, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
