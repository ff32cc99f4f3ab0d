package store

import "context"

// Ref addresses a document by its parent collection path and id. The
// collection may be a nested path such as "shops/abc/barbers".
type Ref struct {
	Collection string
	ID         string
}

func (r Ref) Path() string {
	return r.Collection + "/" + r.ID
}

// Doc is a snapshot of a document. Data is nil when Exists is false.
type Doc struct {
	Ref    Ref
	Exists bool
	Data   map[string]any
}

// Update is one field write applied as part of a partial merge. FieldPath
// may be dotted ("roles.barber") to address a nested field.
type Update struct {
	FieldPath string
	Value     any
}

type sentinel int

const (
	// DeleteField removes the field instead of writing a value.
	DeleteField sentinel = iota
	// ServerTimestamp writes the store's own commit time.
	ServerTimestamp
)

// Store is the slice of a document database the cleanup worker needs:
// point reads, partial-merge updates, deletes, bounded collection pages,
// bounded equality queries and grouped deletes.
type Store interface {
	GetDoc(ctx context.Context, ref Ref) (Doc, error)
	UpdateDoc(ctx context.Context, ref Ref, updates []Update) error
	DeleteDoc(ctx context.Context, ref Ref) error

	// GetPage returns up to limit documents from a collection.
	GetPage(ctx context.Context, collection string, limit int) ([]Doc, error)

	// QueryEq returns up to limit documents whose field equals value.
	QueryEq(ctx context.Context, collection, field string, value any, limit int) ([]Doc, error)

	// DeleteBatch deletes all refs in one grouped commit. Callers chunk
	// to the store's batch limit.
	DeleteBatch(ctx context.Context, refs []Ref) error
}
