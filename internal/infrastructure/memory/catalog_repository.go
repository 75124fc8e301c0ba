package memory

import (
	"context"
	"sync"

	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
)

// CatalogRepository keeps products in seed order.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
}

// NewCatalogRepository returns a catalog initialised with products.
func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	r := &CatalogRepository{}
	r.Init(products)
	return r
}

// Init replaces the whole catalog. Later duplicates of an id overwrite earlier ones.
func (r *CatalogRepository) Init(products []domain.Product) {
	list := make([]domain.Product, 0, len(products))
	index := make(map[string]int, len(products))
	for _, p := range products {
		if i, ok := index[p.ID]; ok {
			list[i] = p
			continue
		}
		index[p.ID] = len(list)
		list = append(list, p)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = list
	r.index = index
}

func (r *CatalogRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Product(nil), r.products...), nil
}

func (r *CatalogRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if i, ok := r.index[id]; ok {
			out = append(out, r.products[i])
		}
	}
	return out, nil
}
