// Package letters implements the valentine's letter lifecycle: quota-checked
// intake behind a runtime gate, best-effort audit logging with a message-ID
// cross reference, moderator retraction through that cross reference, and the
// throttled bulk publish of everything on record.
package letters

import (
	"sync/atomic"

	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/MiraiSubject/CoteValentines2023/model"
	"github.com/rs/zerolog/log"
)

// MaxLettersPerSender is the fixed per-user quota for the event.
const MaxLettersPerSender = 2

// MessageRecorded is the confirmation shown to the sender after intake.
const MessageRecorded = "Thank you for your message, it has been recorded"

// AuditSink receives every accepted letter and returns the message ID of the
// posted log entry. That ID is the retraction handle for the mods.
type AuditSink interface {
	LogLetter(letter *model.Letter) (string, error)
}

// Service owns the intake gate and orchestrates intake, retraction and the
// bulk publish. The audit sink may be nil when no audit channel is
// configured; intake then proceeds without a cross reference.
type Service struct {
	audit   AuditSink
	allowed atomic.Bool
}

// NewService returns a Service accepting letters, wired to the given audit
// sink (which may be nil).
func NewService(audit AuditSink) *Service {
	s := &Service{audit: audit}
	s.allowed.Store(true)
	return s
}

// Allowed reports whether letters are currently accepted.
func (s *Service) Allowed() bool {
	return s.allowed.Load()
}

// SetAllowed opens or closes the intake gate and returns the previous state.
// The caller is responsible for authorization.
func (s *Service) SetAllowed(allowed bool) bool {
	return s.allowed.Swap(allowed)
}

// Submit records one letter. The order matters: gate first, then the quota
// fast path, then the audit log, then the insert. Audit failures are logged
// and swallowed so a broken audit channel never blocks intake; a persistence
// failure after a successful audit post leaves the audit message orphaned,
// which is surfaced to the caller and left for manual cleanup.
func (s *Service) Submit(senderID, senderName, recipient, content string, anonymous bool) (*model.Letter, error) {
	if !s.Allowed() {
		return nil, ErrLettersClosed
	}
	if senderID == "" || content == "" {
		return nil, ErrEmptyLetter
	}

	count, err := db.CountLettersBySender(senderID)
	if err != nil {
		return nil, err
	}
	if count >= MaxLettersPerSender {
		return nil, db.ErrQuotaExceeded
	}

	letter := &model.Letter{
		SenderID:   senderID,
		SenderName: senderName,
		Recipient:  recipient,
		Content:    content,
		Anonymous:  anonymous,
	}

	if s.audit != nil {
		messageID, err := s.audit.LogLetter(letter)
		if err != nil {
			log.Warn().Err(err).Str("sender", senderID).
				Msg("Could not log letter to the audit channel, recording it without a cross reference")
		} else {
			letter.AuditMessageID = messageID
		}
	}

	// The insert re-checks the quota inside its transaction, so two racing
	// submissions from the same sender cannot both slip past the count above.
	if err := db.AddLetter(letter, MaxLettersPerSender); err != nil {
		if letter.AuditMessageID != "" {
			log.Error().Err(err).Str("audit_message_id", letter.AuditMessageID).
				Msg("Letter was logged but could not be stored; the audit message is now orphaned")
		}
		return nil, err
	}

	return letter, nil
}

// Retract deletes the letter that was logged as the given audit message and
// returns it, so the caller can annotate the audit message with a deletion
// notice. A second call with the same ID finds nothing and returns
// db.ErrLetterNotFound without side effects.
func (s *Service) Retract(auditMessageID string) (*model.Letter, error) {
	return db.DeleteLetterByMessageID(auditMessageID)
}
