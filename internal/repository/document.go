package repository

import (
	"context"

	"docgen/internal/model"
)

// DocumentRepository persists metadata of archived PDFs. Strictly persistence,
// no business logic.
type DocumentRepository interface {
	// Create inserts a new record and returns it as stored.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns sql.ErrNoRows when no record matches.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a page of records, newest first, and the total matching count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// Delete removes a record by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
