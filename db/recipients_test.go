package db

import (
	"errors"
	"testing"
)

func searchNames(t *testing.T, query string, limit int) []string {
	t.Helper()
	found, err := SearchRecipients(query, limit)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(found))
	for _, rec := range found {
		names = append(names, rec.FullName)
	}
	return names
}

func contains(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}

func TestAddRecipientDuplicate(t *testing.T) {
	initTestDB(t)

	if err := AddRecipient("Alice", true); err != nil {
		t.Fatal(err)
	}
	if err := AddRecipient("Alice", false); !errors.Is(err, ErrDuplicateRecipient) {
		t.Fatalf("want ErrDuplicateRecipient, got %v", err)
	}
}

func TestReplaceAllAndSearch(t *testing.T) {
	initTestDB(t)

	// Pre-existing entries are wiped by the replace.
	if err := AddRecipient("Leftover", false); err != nil {
		t.Fatal(err)
	}

	count, err := ReplaceAllRecipients([]string{"Alice", "Bob", "", "  "}, false)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("replace count = %d, want 2", count)
	}

	names := searchNames(t, "ali", 25)
	if len(names) != 1 || names[0] != "Alice" {
		t.Fatalf(`search("ali") = %v, want ["Alice"]`, names)
	}
	if contains(searchNames(t, "left", 25), "Leftover") {
		t.Fatal("replace did not empty the directory first")
	}

	if err := AddRecipient("Carol", true); err != nil {
		t.Fatal(err)
	}

	names = searchNames(t, "a", 25)
	if !contains(names, "Alice") || !contains(names, "Carol") {
		t.Fatalf(`search("a") = %v, want Alice and Carol`, names)
	}
	if contains(names, "Bob") {
		t.Fatalf(`search("a") = %v, must not contain Bob`, names)
	}
}

func TestSearchLimit(t *testing.T) {
	initTestDB(t)

	names := make([]string, 0, 30)
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f"} {
		for _, prefix := range []string{"Ann", "Amy", "Ava", "Ada", "Abe"} {
			names = append(names, prefix+" "+suffix)
		}
	}
	if _, err := ReplaceAllRecipients(names, false); err != nil {
		t.Fatal(err)
	}

	if got := searchNames(t, "a", 25); len(got) != 25 {
		t.Fatalf("limit not applied, got %d results", len(got))
	}
}

func TestSearchEscapesWildcards(t *testing.T) {
	initTestDB(t)

	if _, err := ReplaceAllRecipients([]string{"Alice", "100% Real"}, false); err != nil {
		t.Fatal(err)
	}

	names := searchNames(t, "%", 25)
	if len(names) != 1 || names[0] != "100% Real" {
		t.Fatalf(`search("%%") = %v, want ["100%% Real"]`, names)
	}
}
