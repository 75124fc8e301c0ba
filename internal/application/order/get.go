package order

import (
	"context"

	"github.com/Zhima-Mochi/minishop-checkout/internal/application"
	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const useCaseOrderGet = "order.get"

type GetOrderUseCase struct {
	repo domain.Repository
	in   application.Instruments
}

func NewGetOrderUseCase(repo domain.Repository, tel observability.Observability) *GetOrderUseCase {
	return &GetOrderUseCase{repo: repo, in: application.NewInstruments(tel, orderService)}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, id string) (_ *domain.Order, err error) {
	ctx, r := uc.in.Begin(ctx, useCaseOrderGet, "GetOrder", attribute.String("order.id", id))
	defer func() { r.Finish(err) }()

	if id == "" {
		r.Mark("ORDER_ID_REQUIRED")
		return nil, domain.ErrMissingID
	}
	entity, err := uc.repo.Get(ctx, id)
	if err != nil {
		r.Mark("ORDER_LOAD_FAILED")
		return nil, wrapRepositoryError(err)
	}
	r.With(observability.F("order_status", string(entity.Status())))
	return entity, nil
}
