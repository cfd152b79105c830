package store

import (
	"context"

	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
)

// Store is the backing collection for project records. Implementations
// must be safe for concurrent use and must preserve insertion order in
// List. Insert assigns ids from a monotonically increasing counter that
// is never derived from the current count, so ids are not recycled after
// deletions.
type Store interface {
	// List returns all projects in insertion order.
	List(ctx context.Context) ([]domain.Project, error)
	// Get returns the project with the given id or domain.ErrProjectNotFound.
	Get(ctx context.Context, id string) (domain.Project, error)
	// Insert assigns the next id, appends the record, and returns it.
	Insert(ctx context.Context, p domain.Project) (domain.Project, error)
	// Replace overwrites the record with the same id, or returns
	// domain.ErrProjectNotFound.
	Replace(ctx context.Context, p domain.Project) error
	// Delete removes and returns the record, or returns
	// domain.ErrProjectNotFound.
	Delete(ctx context.Context, id string) (domain.Project, error)
	// Seed loads the given records only when the store is empty.
	Seed(ctx context.Context, projects []domain.Project) error
}
