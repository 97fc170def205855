package letters

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/MiraiSubject/CoteValentines2023/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	db.InitDB(filepath.Join(t.TempDir(), "test.db"))
}

// stubAudit records calls and plays back a fixed message ID or error.
type stubAudit struct {
	messageID string
	err       error
	calls     int
}

func (a *stubAudit) LogLetter(letter *model.Letter) (string, error) {
	a.calls++
	return a.messageID, a.err
}

const longEnough = "my heart goes out to you"

func TestSubmitGateClosed(t *testing.T) {
	initTestDB(t)
	audit := &stubAudit{messageID: "audit-1"}
	svc := NewService(audit)

	if prev := svc.SetAllowed(false); !prev {
		t.Fatal("gate should default to open")
	}

	_, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, false)
	if !errors.Is(err, ErrLettersClosed) {
		t.Fatalf("want ErrLettersClosed, got %v", err)
	}
	if audit.calls != 0 {
		t.Fatal("closed gate must not touch the audit sink")
	}
	if count, _ := db.CountLettersBySender("sender-a"); count != 0 {
		t.Fatal("closed gate must not touch the store")
	}

	// Reopening lets the same request through.
	if prev := svc.SetAllowed(true); prev {
		t.Fatal("SetAllowed returned the wrong previous state")
	}
	if _, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, false); err != nil {
		t.Fatalf("unexpected error after reopening: %v", err)
	}
}

func TestSubmitQuota(t *testing.T) {
	initTestDB(t)
	svc := NewService(nil)

	for n := 0; n < MaxLettersPerSender; n++ {
		if _, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, false); err != nil {
			t.Fatalf("letter %d: unexpected error: %v", n+1, err)
		}
	}

	_, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, false)
	if !errors.Is(err, db.ErrQuotaExceeded) {
		t.Fatalf("want ErrQuotaExceeded, got %v", err)
	}

	// Another sender is counted independently.
	if _, err := svc.Submit("sender-b", "Kei", "Suzune", longEnough, true); err != nil {
		t.Fatalf("sender-b: unexpected error: %v", err)
	}
}

func TestSubmitWithAudit(t *testing.T) {
	initTestDB(t)
	audit := &stubAudit{messageID: "audit-42"}
	svc := NewService(audit)

	letter, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, true)
	if err != nil {
		t.Fatal(err)
	}
	if audit.calls != 1 {
		t.Fatalf("audit sink called %d times, want 1", audit.calls)
	}
	if letter.AuditMessageID != "audit-42" {
		t.Fatalf("correlation token not captured: %q", letter.AuditMessageID)
	}

	stored, err := db.GetAllLetters()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 1 || stored[0].AuditMessageID != "audit-42" {
		t.Fatalf("correlation token not persisted: %+v", stored)
	}
}

func TestSubmitAuditFailureDoesNotBlockIntake(t *testing.T) {
	initTestDB(t)
	audit := &stubAudit{err: errors.New("channel unreachable")}
	svc := NewService(audit)

	letter, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, false)
	if err != nil {
		t.Fatalf("audit failure must not block intake: %v", err)
	}
	if letter.AuditMessageID != "" {
		t.Fatalf("failed audit must leave no token, got %q", letter.AuditMessageID)
	}
	if count, _ := db.CountLettersBySender("sender-a"); count != 1 {
		t.Fatal("letter was not persisted")
	}
}

func TestSubmitWithoutAuditSink(t *testing.T) {
	initTestDB(t)
	svc := NewService(nil)

	letter, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, false)
	if err != nil {
		t.Fatal(err)
	}
	if letter.AuditMessageID != "" {
		t.Fatalf("no sink configured but token set: %q", letter.AuditMessageID)
	}
}

func TestSubmitRejectsEmpty(t *testing.T) {
	initTestDB(t)
	svc := NewService(nil)

	if _, err := svc.Submit("", "Kiyotaka", "Suzune", longEnough, false); !errors.Is(err, ErrEmptyLetter) {
		t.Fatalf("empty sender: want ErrEmptyLetter, got %v", err)
	}
	if _, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", "", false); !errors.Is(err, ErrEmptyLetter) {
		t.Fatalf("empty content: want ErrEmptyLetter, got %v", err)
	}
}

func TestRetract(t *testing.T) {
	initTestDB(t)
	audit := &stubAudit{messageID: "audit-7"}
	svc := NewService(audit)

	if _, err := svc.Submit("sender-a", "Kiyotaka", "Suzune", longEnough, true); err != nil {
		t.Fatal(err)
	}

	deleted, err := svc.Retract("audit-7")
	if err != nil {
		t.Fatal(err)
	}
	if deleted.SenderName != "Kiyotaka" || deleted.Recipient != "Suzune" || !deleted.Anonymous {
		t.Fatalf("retract returned the wrong letter: %+v", deleted)
	}

	if _, err := svc.Retract("audit-7"); !errors.Is(err, db.ErrLetterNotFound) {
		t.Fatalf("second retract: want ErrLetterNotFound, got %v", err)
	}
	if _, err := svc.Retract("never-existed"); !errors.Is(err, db.ErrLetterNotFound) {
		t.Fatalf("unknown token: want ErrLetterNotFound, got %v", err)
	}
}
