package book

import (
	"errors"
	"testing"

	"github.com/smileynet/rolodex/internal/contact"
)

func mustRecord(t *testing.T, name string) *contact.Record {
	t.Helper()
	rec, err := contact.New(name, "")
	if err != nil {
		t.Fatalf("contact.New(%q) error = %v", name, err)
	}
	return rec
}

func fill(t *testing.T, b *Book, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := b.Add(mustRecord(t, name)); err != nil {
			t.Fatalf("Add(%q) error = %v", name, err)
		}
	}
}

func TestAdd_Duplicate(t *testing.T) {
	// Given a book containing "A"
	b := New()
	original := mustRecord(t, "A")
	if err := b.Add(original); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// When a second record with the same name is added
	err := b.Add(mustRecord(t, "A"))

	// Then the add fails and the original record is untouched
	if !errors.Is(err, ErrDuplicateRecord) {
		t.Fatalf("Add(duplicate) error = %v, want ErrDuplicateRecord", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
	if rec, _ := b.Find("A"); rec != original {
		t.Error("Find() should return the original record, not the rejected one")
	}
}

func TestFind_Absent(t *testing.T) {
	b := New()
	if _, ok := b.Find("nobody"); ok {
		t.Error("Find(absent) ok = true, want false")
	}
}

func TestDelete_Idempotent(t *testing.T) {
	b := New()
	fill(t, b, "A")

	b.Delete("A")
	if b.Len() != 0 {
		t.Fatalf("Len() = %d after delete, want 0", b.Len())
	}

	// Second delete of the same key is a silent no-op.
	b.Delete("A")
	if b.Len() != 0 {
		t.Errorf("Len() = %d after repeated delete, want 0", b.Len())
	}
}

func TestNames_InsertionOrder(t *testing.T) {
	b := New()
	fill(t, b, "C", "A", "B")

	got := b.Names()
	want := []string{"C", "A", "B"}
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}

	// Delete and re-add moves the name to the end.
	b.Delete("C")
	fill(t, b, "C")
	if names := b.Names(); names[len(names)-1] != "C" {
		t.Errorf("Names() = %v, want C last", names)
	}
}

func TestIterate_Chunks(t *testing.T) {
	// Given records inserted in order A..E
	b := New()
	fill(t, b, "A", "B", "C", "D", "E")

	// When iterating with chunk size 2
	cur := b.Iterate(2)

	// Then the slices are exactly [A,B], [C,D], [E]
	want := [][]string{{"A", "B"}, {"C", "D"}, {"E"}}
	for _, wantChunk := range want {
		chunk, ok := cur.Next()
		if !ok {
			t.Fatalf("Next() exhausted early, want chunk %v", wantChunk)
		}
		if len(chunk) != len(wantChunk) {
			t.Fatalf("chunk len = %d, want %d", len(chunk), len(wantChunk))
		}
		for i, name := range wantChunk {
			if chunk[i].Name() != name {
				t.Errorf("chunk[%d] = %q, want %q", i, chunk[i].Name(), name)
			}
		}
	}
	if _, ok := cur.Next(); ok {
		t.Error("Next() after exhaustion ok = true, want false")
	}
}

func TestIterate_DefaultChunkSize(t *testing.T) {
	b := New()
	fill(t, b, "A", "B")

	for _, size := range []int{0, -3} {
		cur := b.Iterate(size)
		chunk, ok := cur.Next()
		if !ok || len(chunk) != 1 {
			t.Errorf("Iterate(%d) first chunk len = %d, want 1", size, len(chunk))
		}
	}
}

func TestIterate_FreshTraversalPerCall(t *testing.T) {
	b := New()
	fill(t, b, "A", "B")

	first := b.Iterate(1)
	first.Next()
	first.Next()

	// A new cursor starts from the beginning regardless of the old one.
	second := b.Iterate(1)
	chunk, ok := second.Next()
	if !ok || chunk[0].Name() != "A" {
		t.Error("second Iterate() should start a fresh traversal at A")
	}
}

func TestIterate_SnapshotsBook(t *testing.T) {
	b := New()
	fill(t, b, "A", "B")

	cur := b.Iterate(1)
	b.Delete("B")

	var seen []string
	for {
		chunk, ok := cur.Next()
		if !ok {
			break
		}
		seen = append(seen, chunk[0].Name())
	}
	if len(seen) != 2 {
		t.Errorf("cursor saw %v, want the snapshot [A B]", seen)
	}
}

func TestIterate_Empty(t *testing.T) {
	b := New()
	if _, ok := b.Iterate(3).Next(); ok {
		t.Error("Next() on an empty book ok = true, want false")
	}
}
