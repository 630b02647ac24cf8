package session

import (
	"testing"

	"taskdash/internal/domain/repository"
)

func TestDiskvStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskvStore(dir)

	cookies, err := store.Load()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if cookies != nil {
		t.Fatalf("expected no cookies, got %v", cookies)
	}

	want := []repository.SessionCookie{{Name: "token", Value: "abc"}}
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	// a second store over the same directory sees the session
	cookies, err = NewDiskvStore(dir).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cookies) != 1 || cookies[0] != want[0] {
		t.Fatalf("expected %v, got %v", want, cookies)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
	cookies, err = NewDiskvStore(dir).Load()
	if err != nil || cookies != nil {
		t.Fatalf("expected cleared session, got %v %v", cookies, err)
	}
}

func TestSaveEmptyClears(t *testing.T) {
	store := NewDiskvStore(t.TempDir())
	if err := store.Save([]repository.SessionCookie{{Name: "token", Value: "abc"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	cookies, err := store.Load()
	if err != nil || cookies != nil {
		t.Fatalf("expected no cookies, got %v %v", cookies, err)
	}
}
