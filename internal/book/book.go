// Package book implements the contacts collection: an insertion-ordered,
// uniqueness-enforcing store of records keyed by client name.
package book

import (
	"errors"
	"fmt"

	"github.com/smileynet/rolodex/internal/contact"
)

// ErrDuplicateRecord indicates an Add for a name that is already present.
var ErrDuplicateRecord = errors.New("book: record already exists")

// Book maps client names to records, preserving insertion order.
// It is not safe for concurrent use; a single caller drives all
// mutation and query calls sequentially.
type Book struct {
	records map[string]*contact.Record
	names   []string
}

// New returns an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Add inserts rec under its name. Fails with ErrDuplicateRecord when
// the name is already taken; the book is left unchanged.
func (b *Book) Add(rec *contact.Record) error {
	name := rec.Name()
	if _, ok := b.records[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRecord, name)
	}
	b.records[name] = rec
	b.names = append(b.names, name)
	return nil
}

// Find returns the record for name. Absence is a normal outcome, not
// an error.
func (b *Book) Find(name string) (*contact.Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name. Deleting an absent name is a
// no-op, so Delete is idempotent.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.names {
		if n == name {
			b.names = append(b.names[:i], b.names[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.names) }

// Names returns the client names in insertion order.
func (b *Book) Names() []string {
	return append([]string(nil), b.names...)
}

// Iterate starts a fresh traversal of the book in insertion order,
// yielding chunks of up to chunkSize records. chunkSize values below 1
// default to 1. The cursor snapshots the book at call time, so later
// mutation does not affect an in-flight traversal.
func (b *Book) Iterate(chunkSize int) *Cursor {
	if chunkSize < 1 {
		chunkSize = 1
	}
	recs := make([]*contact.Record, 0, len(b.names))
	for _, n := range b.names {
		recs = append(recs, b.records[n])
	}
	return &Cursor{records: recs, chunk: chunkSize}
}

// Cursor is a single-pass iterator over a Book snapshot. Each call to
// Book.Iterate returns a fresh Cursor; an exhausted Cursor cannot be
// restarted.
type Cursor struct {
	records []*contact.Record
	chunk   int
	pos     int
}

// Next returns the next chunk of records in insertion order. The final
// chunk may be shorter than the chunk size. ok is false once the
// traversal is exhausted.
func (c *Cursor) Next() ([]*contact.Record, bool) {
	if c.pos >= len(c.records) {
		return nil, false
	}
	end := c.pos + c.chunk
	if end > len(c.records) {
		end = len(c.records)
	}
	out := c.records[c.pos:end]
	c.pos = end
	return out, true
}
