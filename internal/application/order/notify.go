package order

import (
	"context"
	"fmt"

	"github.com/Zhima-Mochi/minishop-checkout/internal/application"
	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const useCasePaymentNotified = "order.payment_notified"

// ApplyNotificationUseCase applies a gateway payment notification to its order.
type ApplyNotificationUseCase struct {
	repo domain.Repository
	in   application.Instruments
}

func NewApplyNotificationUseCase(repo domain.Repository, tel observability.Observability) *ApplyNotificationUseCase {
	return &ApplyNotificationUseCase{repo: repo, in: application.NewInstruments(tel, orderService)}
}

func (uc *ApplyNotificationUseCase) Execute(ctx context.Context, evt domain.PaymentNotifiedEvent) (_ domain.Status, err error) {
	ctx, r := uc.in.Begin(ctx, useCasePaymentNotified, "ApplyPaymentNotification",
		attribute.String("order.id", evt.OrderID),
		attribute.String("payment.response_code", evt.ResponseCode),
	)
	defer func() { r.Finish(err) }()
	r.With(
		observability.F("order_id", evt.OrderID),
		observability.F("response_code", evt.ResponseCode),
	)

	if evt.OrderID == "" {
		r.Mark("ORDER_ID_REQUIRED")
		return "", domain.ErrMissingID
	}

	entity, err := uc.repo.Get(ctx, evt.OrderID)
	if err != nil {
		r.Mark("ORDER_LOAD_FAILED")
		return "", wrapRepositoryError(err)
	}

	if evt.Succeeded() {
		err = entity.PaymentSucceeded()
	} else {
		err = entity.PaymentFailed(failureReason(evt))
	}
	if err != nil {
		r.Mark("STATE_TRANSITION_FAILED")
		return entity.Status(), fmt.Errorf("order %s: %w", entity.ID, err)
	}

	if err = uc.repo.Update(ctx, entity); err != nil {
		r.Mark("REPO_UPDATE_FAILED")
		return "", wrapRepositoryError(err)
	}

	r.Span().AddEvent("order."+string(entity.Status()),
		trace.WithAttributes(attribute.String("order.id", entity.ID)),
	)
	return entity.Status(), nil
}

func failureReason(evt domain.PaymentNotifiedEvent) string {
	if evt.ResponseMessage != "" {
		return evt.ResponseMessage
	}
	return "gateway response code " + evt.ResponseCode
}
