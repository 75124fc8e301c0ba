package catalog

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Product, error)
	// GetByIDs returns the products matching ids in request order. Unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
}
