package db

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MiraiSubject/CoteValentines2023/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	InitDB(filepath.Join(t.TempDir(), "test.db"))
}

func testLetter(senderID, messageID string) *model.Letter {
	return &model.Letter{
		SenderID:       senderID,
		SenderName:     "Kiyotaka",
		Recipient:      "Suzune",
		Content:        "143 < 3",
		AuditMessageID: messageID,
	}
}

func TestAddLetterQuota(t *testing.T) {
	initTestDB(t)

	for n := 0; n < 2; n++ {
		if err := AddLetter(testLetter("sender-a", ""), 2); err != nil {
			t.Fatalf("letter %d: unexpected error: %v", n+1, err)
		}
	}

	err := AddLetter(testLetter("sender-a", ""), 2)
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("third letter: want ErrQuotaExceeded, got %v", err)
	}

	count, err := CountLettersBySender("sender-a")
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("sender-a count = %d, want 2", count)
	}

	// Another sender is not affected by sender-a being full.
	if err := AddLetter(testLetter("sender-b", ""), 2); err != nil {
		t.Fatalf("sender-b: unexpected error: %v", err)
	}
}

func TestAddLetterQuotaConcurrent(t *testing.T) {
	initTestDB(t)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for n := 0; n < attempts; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- AddLetter(testLetter("sender-a", ""), 2)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrQuotaExceeded):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 2 {
		t.Fatalf("%d inserts succeeded, want 2", succeeded)
	}

	count, err := CountLettersBySender("sender-a")
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("stored count = %d, want 2", count)
	}
}

func TestDeleteLetterByMessageID(t *testing.T) {
	initTestDB(t)

	letter := testLetter("sender-a", "audit-123")
	if err := AddLetter(letter, 2); err != nil {
		t.Fatal(err)
	}

	if _, err := DeleteLetterByMessageID("no-such-message"); !errors.Is(err, ErrLetterNotFound) {
		t.Fatalf("unknown message: want ErrLetterNotFound, got %v", err)
	}
	if count, _ := CountLettersBySender("sender-a"); count != 1 {
		t.Fatalf("failed delete changed the store, count = %d", count)
	}

	deleted, err := DeleteLetterByMessageID("audit-123")
	if err != nil {
		t.Fatal(err)
	}
	if deleted.ID != letter.ID || deleted.SenderName != "Kiyotaka" || deleted.Recipient != "Suzune" {
		t.Fatalf("deleted the wrong letter: %+v", deleted)
	}

	// Pressing delete twice fails cleanly the second time.
	if _, err := DeleteLetterByMessageID("audit-123"); !errors.Is(err, ErrLetterNotFound) {
		t.Fatalf("second delete: want ErrLetterNotFound, got %v", err)
	}
}

func TestGetAllLettersRoundTrip(t *testing.T) {
	initTestDB(t)

	anon := testLetter("sender-a", "")
	anon.Anonymous = true
	if err := AddLetter(anon, 2); err != nil {
		t.Fatal(err)
	}
	if err := AddLetter(testLetter("sender-b", "audit-9"), 2); err != nil {
		t.Fatal(err)
	}

	found, err := GetAllLetters()
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("got %d letters, want 2", len(found))
	}

	// Insertion order, and the anonymous flag plus the sender identity both
	// survive a round trip (rendering hides the sender, the store must not).
	first := found[0]
	if !first.Anonymous {
		t.Error("anonymous flag lost on round trip")
	}
	if first.SenderID != "sender-a" {
		t.Errorf("sender identity lost: %q", first.SenderID)
	}
	if first.AuditMessageID != "" {
		t.Errorf("letter without audit log got a message ID: %q", first.AuditMessageID)
	}
	if found[1].AuditMessageID != "audit-9" {
		t.Errorf("audit message ID lost: %q", found[1].AuditMessageID)
	}
}

func TestDeleteLetterByID(t *testing.T) {
	initTestDB(t)

	letter := testLetter("sender-a", "")
	if err := AddLetter(letter, 2); err != nil {
		t.Fatal(err)
	}

	if err := DeleteLetter(letter.ID); err != nil {
		t.Fatal(err)
	}
	if err := DeleteLetter(letter.ID); !errors.Is(err, ErrLetterNotFound) {
		t.Fatalf("second delete: want ErrLetterNotFound, got %v", err)
	}
}
