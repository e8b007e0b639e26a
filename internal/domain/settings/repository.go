package settings

import (
	"context"
)

// Repository defines the interface for settings persistence.
type Repository interface {
	// Load retrieves the persisted document. When nothing has been stored
	// yet it returns the default document, never an error or a partial
	// record.
	Load(ctx context.Context) (*Document, error)

	// Save persists the document as a single atomic row write. Concurrent
	// writers race at the row level and the last committed write wins;
	// there is no optimistic locking across the read-merge-write cycle.
	Save(ctx context.Context, doc *Document) error
}
