package catalog

import (
	"context"
	"fmt"

	"github.com/Zhima-Mochi/minishop-checkout/internal/application"
	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
)

const (
	catalogService   = "catalog-service"
	useCaseGoodsList = "catalog.list"
)

// ListGoodsUseCase returns every product in the catalog.
type ListGoodsUseCase struct {
	repo domain.Repository
	in   application.Instruments
}

func NewListGoodsUseCase(repo domain.Repository, tel observability.Observability) *ListGoodsUseCase {
	return &ListGoodsUseCase{repo: repo, in: application.NewInstruments(tel, catalogService)}
}

func (uc *ListGoodsUseCase) Execute(ctx context.Context, _ struct{}) (_ []domain.Product, err error) {
	ctx, r := uc.in.Begin(ctx, useCaseGoodsList, "ListGoods")
	defer func() { r.Finish(err) }()

	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		r.Mark("CATALOG_LOAD_FAILED")
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	r.With(observability.F("count", len(products)))
	return products, nil
}
