package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zhima-Mochi/minishop-checkout/internal/application"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/payment"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

const (
	orderService       = "order-service"
	useCaseOrderCreate = "order.create"
)

var (
	ErrConflict   = domain.ErrConflict
	ErrNotFound   = domain.ErrNotFound
	ErrRepository = errors.New("order: repository failure")
)

// CreateOrderUseCase runs the single-shot checkout: resolve the cart, ask the
// gateway for a payment link and persist the order only once the link exists.
type CreateOrderUseCase struct {
	repo        domain.Repository
	catalog     CatalogPort
	payments    PaymentPort
	idGenerator IDGenerator
	in          application.Instruments
}

func NewCreateOrderUseCase(
	repo domain.Repository,
	catalog CatalogPort,
	payments PaymentPort,
	idGen IDGenerator,
	tel observability.Observability,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		repo:        repo,
		catalog:     catalog,
		payments:    payments,
		idGenerator: idGen,
		in:          application.NewInstruments(tel, orderService),
	}
}

type CreateOrderInput struct {
	Cart     []string
	Customer domain.CustomerInfo
}

type CreateOrderResult struct {
	OrderID     string
	PaymentLink string
	UniqueCode  string
}

// Execute performs the order creation flow.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderInput) (_ *CreateOrderResult, err error) {
	ctx, r := uc.in.Begin(ctx, useCaseOrderCreate, "CreateOrder",
		attribute.Int("order.cart_size", len(cmd.Cart)),
	)
	defer func() { r.Finish(err) }()

	if err = uc.payments.Configured(); err != nil {
		r.Mark("CONFIG_MISSING")
		return nil, err
	}

	items, err := resolveCart(ctx, uc.catalog, cmd.Cart)
	if err != nil {
		r.Mark(cartStatus(err))
		return nil, err
	}
	total := domain.CalculateTotal(items)
	orderID := uc.idGenerator.NewID()
	r.With(
		observability.F("order_id", orderID),
		observability.F("amount", total.FormattedAmount()),
		observability.F("currency", total.Currency),
	)
	r.Span().SetAttributes(attribute.String("order.id", orderID))

	// An abandoned request must not leave an issued link without its order.
	ctx = context.WithoutCancel(ctx)

	rec, err := uc.payments.CreateLink(ctx, payment.LinkRequest{
		Reference: orderID,
		Total:     total,
		Customer:  cmd.Customer,
	})
	if err != nil {
		r.Mark(gatewayStatus(err))
		return nil, err
	}

	entity, err := domain.New(orderID, items, total, cmd.Customer, rec)
	if err != nil {
		r.Mark("DOMAIN_CONSTRUCTION_FAILED")
		return nil, fmt.Errorf("order: construct: %w", err)
	}
	if err = uc.repo.Insert(ctx, entity); err != nil {
		r.Mark("REPO_INSERT_FAILED")
		return nil, wrapRepositoryError(err)
	}

	return &CreateOrderResult{
		OrderID:     entity.ID,
		PaymentLink: rec.PaymentLink,
		UniqueCode:  rec.UniqueCode,
	}, nil
}

// resolveCart looks up the cart ids, dropping unknown ones, and rejects
// empty or mixed-currency results.
func resolveCart(ctx context.Context, repo catalog.Repository, ids []string) ([]catalog.Product, error) {
	items, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, wrapRepositoryError(err)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := domain.CheckCurrency(items); err != nil {
		return nil, err
	}
	return items, nil
}

func cartStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "EMPTY_CART"
	case errors.Is(err, domain.ErrMixedCurrency):
		return "MIXED_CURRENCY"
	default:
		return "CATALOG_LOOKUP_FAILED"
	}
}

func gatewayStatus(err error) string {
	switch {
	case errors.Is(err, payment.ErrNotConfigured):
		return "CONFIG_MISSING"
	case errors.Is(err, payment.ErrRejected):
		return "GATEWAY_REJECTED"
	case errors.Is(err, payment.ErrNetwork):
		return "GATEWAY_UNREACHABLE"
	default:
		return "GATEWAY_FAILED"
	}
}

func wrapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domain.ErrConflict):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %w", ErrRepository, err)
	}
}
