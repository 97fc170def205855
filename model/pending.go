package model

import "time"

// PendingLetter holds the temporary data of a letter that is being composed
// but has not been confirmed yet.
type PendingLetter struct {
	SenderID   string
	SenderName string
	Recipient  string
	Content    string
	Anonymous  bool
	CreatedAt  time.Time
}
