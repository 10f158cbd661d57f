package application

import (
	"context"
	"errors"
	"testing"
)

func newTestNotes() (*NoteService, *fakeNoteRepo) {
	notes := newFakeNoteRepo()
	return NewNoteService(notes, quietLogger(), nil, ""), notes
}

func TestNoteCreateAndList(t *testing.T) {
	svc, _ := newTestNotes()
	ctx := context.Background()

	n, err := svc.Create(ctx, "u1", "buy milk")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n.ID == "" || n.UserID != "u1" || n.Content != "buy milk" {
		t.Fatalf("unexpected note: %+v", n)
	}
	if n.CreatedAt.IsZero() {
		t.Fatal("note missing creation timestamp")
	}

	if _, err := svc.Create(ctx, "u2", "someone else's note"); err != nil {
		t.Fatalf("Create for u2: %v", err)
	}

	got, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != n.ID {
		t.Fatalf("List must only return the caller's notes, got %d", len(got))
	}
}

func TestNoteDeleteOwnership(t *testing.T) {
	svc, _ := newTestNotes()
	ctx := context.Background()

	n, err := svc.Create(ctx, "u1", "mine")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "u2", n.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("foreign delete: got %v, want ErrNotOwner", err)
	}
	// Ownership check must leave the note in place.
	if got, _ := svc.List(ctx, "u1"); len(got) != 1 {
		t.Fatal("note disappeared after rejected delete")
	}

	if err := svc.Delete(ctx, "u1", n.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if got, _ := svc.List(ctx, "u1"); len(got) != 0 {
		t.Fatal("note still listed after delete")
	}

	if err := svc.Delete(ctx, "u1", n.ID); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("repeat delete: got %v, want ErrNoteNotFound", err)
	}
	if err := svc.Delete(ctx, "u1", "missing"); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("unknown id: got %v, want ErrNoteNotFound", err)
	}
}

func TestNoteSearchWithoutBackend(t *testing.T) {
	svc, _ := newTestNotes()

	hits, err := svc.Search(context.Background(), "u1", "milk", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if hits == nil || len(hits) != 0 {
		t.Fatalf("search without a backend must return an empty slice, got %v", hits)
	}
}
