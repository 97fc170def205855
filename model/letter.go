package model

// Letter represents a stored valentine's letter from the letters table.
type Letter struct {
	ID             int64
	SenderID       string
	SenderName     string
	Recipient      string
	Content        string
	Anonymous      bool
	AuditMessageID string // message ID of the audit-channel log, "" when never logged
	CreatedAt      int64
}
