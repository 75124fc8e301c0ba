package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zhima-Mochi/minishop-checkout/internal/application"
	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/payment"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

const (
	useCaseOrderPlace   = "order.place"
	useCaseOrderPayment = "order.request_payment"
)

// PlaceOrderUseCase is the first phase of the two-phase checkout. It stores a
// pending order without contacting the gateway.
type PlaceOrderUseCase struct {
	repo        domain.Repository
	catalog     CatalogPort
	idGenerator IDGenerator
	in          application.Instruments
}

func NewPlaceOrderUseCase(repo domain.Repository, catalog CatalogPort, idGen IDGenerator, tel observability.Observability) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		repo:        repo,
		catalog:     catalog,
		idGenerator: idGen,
		in:          application.NewInstruments(tel, orderService),
	}
}

type PlaceOrderResult struct {
	OrderID string
	Total   domain.Total
}

func (uc *PlaceOrderUseCase) Execute(ctx context.Context, cmd CreateOrderInput) (_ *PlaceOrderResult, err error) {
	ctx, r := uc.in.Begin(ctx, useCaseOrderPlace, "PlaceOrder",
		attribute.Int("order.cart_size", len(cmd.Cart)),
	)
	defer func() { r.Finish(err) }()

	items, err := resolveCart(ctx, uc.catalog, cmd.Cart)
	if err != nil {
		r.Mark(cartStatus(err))
		return nil, err
	}
	total := domain.CalculateTotal(items)

	orderID := uc.idGenerator.NewID()
	r.With(observability.F("order_id", orderID))

	entity, err := domain.New(orderID, items, total, cmd.Customer, nil)
	if err != nil {
		r.Mark("DOMAIN_CONSTRUCTION_FAILED")
		return nil, fmt.Errorf("order: construct: %w", err)
	}
	if err = uc.repo.Insert(ctx, entity); err != nil {
		r.Mark("REPO_INSERT_FAILED")
		return nil, wrapRepositoryError(err)
	}
	return &PlaceOrderResult{OrderID: entity.ID, Total: entity.Total}, nil
}

// RequestPaymentUseCase is the second phase: it obtains the payment link for a
// placed order. A gateway failure marks the order failed so it never dangles.
type RequestPaymentUseCase struct {
	repo     domain.Repository
	payments PaymentPort
	in       application.Instruments

	// concurrent requests for the same order share one gateway call
	inflight singleflight.Group
}

func NewRequestPaymentUseCase(repo domain.Repository, payments PaymentPort, tel observability.Observability) *RequestPaymentUseCase {
	return &RequestPaymentUseCase{
		repo:     repo,
		payments: payments,
		in:       application.NewInstruments(tel, orderService),
	}
}

type RequestPaymentInput struct {
	OrderID string
}

func (uc *RequestPaymentUseCase) Execute(ctx context.Context, cmd RequestPaymentInput) (_ *CreateOrderResult, err error) {
	ctx, r := uc.in.Begin(ctx, useCaseOrderPayment, "RequestPayment",
		attribute.String("order.id", cmd.OrderID),
	)
	defer func() { r.Finish(err) }()
	r.With(observability.F("order_id", cmd.OrderID))

	if cmd.OrderID == "" {
		r.Mark("ORDER_ID_REQUIRED")
		return nil, domain.ErrMissingID
	}

	ctx = context.WithoutCancel(ctx)
	v, err, shared := uc.inflight.Do(cmd.OrderID, func() (any, error) {
		return uc.linkOrder(ctx, cmd.OrderID)
	})
	out := v.(linked)
	if out.status != "" {
		r.Mark(out.status)
	}
	if shared {
		r.With(observability.F("shared", true))
	}
	if err != nil {
		return nil, err
	}
	return out.result, nil
}

// linked is the outcome shared by every caller waiting on the same order.
type linked struct {
	result *CreateOrderResult
	status string
}

func (uc *RequestPaymentUseCase) linkOrder(ctx context.Context, orderID string) (linked, error) {
	entity, err := uc.repo.Get(ctx, orderID)
	if err != nil {
		return linked{status: "ORDER_LOAD_FAILED"}, wrapRepositoryError(err)
	}
	if entity.Status() != domain.StatusPending {
		return linked{status: "ORDER_NOT_PENDING"},
			fmt.Errorf("%w: order is %s", domain.ErrInvalidStateTransition, entity.Status())
	}
	if entity.Payment != nil {
		return linked{result: resultFor(entity), status: "ALREADY_LINKED"}, nil
	}

	rec, linkErr := uc.payments.CreateLink(ctx, payment.LinkRequest{
		Reference: entity.ID,
		Total:     entity.Total,
		Customer:  entity.Customer,
	})
	if linkErr != nil {
		failed := linked{status: gatewayStatus(linkErr)}
		if err := entity.PaymentFailed(linkErr.Error()); err != nil {
			return failed, errors.Join(linkErr, err)
		}
		if err := uc.repo.Update(ctx, entity); err != nil {
			return failed, errors.Join(linkErr, wrapRepositoryError(err))
		}
		return failed, linkErr
	}

	if err := entity.AttachPayment(*rec); err != nil {
		return linked{status: "STATE_TRANSITION_FAILED"}, err
	}
	if err := uc.repo.Update(ctx, entity); err != nil {
		return linked{status: "REPO_UPDATE_FAILED"}, wrapRepositoryError(err)
	}
	return linked{result: resultFor(entity)}, nil
}

func resultFor(o *domain.Order) *CreateOrderResult {
	res := &CreateOrderResult{OrderID: o.ID}
	if o.Payment != nil {
		res.PaymentLink = o.Payment.PaymentLink
		res.UniqueCode = o.Payment.UniqueCode
	}
	return res
}
