package workerpresentation

import (
	"context"

	appOrder "github.com/Zhima-Mochi/minishop-checkout/internal/application/order"
	domorder "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	domoutbox "github.com/Zhima-Mochi/minishop-checkout/internal/domain/outbox"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability/logctx"
)

const notificationWorker = "notification-worker"

// NotificationWorker applies payment.notified events published by the webhook handler.
type NotificationWorker struct {
	subscriber domoutbox.Subscriber
	apply      *appOrder.ApplyNotificationUseCase
	log        observability.Logger
}

func NewNotificationWorker(
	subscriber domoutbox.Subscriber,
	apply *appOrder.ApplyNotificationUseCase,
	tel observability.Observability,
) *NotificationWorker {
	if tel == nil {
		tel = observability.Nop()
	}
	return &NotificationWorker{
		subscriber: subscriber,
		apply:      apply,
		log:        tel.Logger().With(observability.F("service", notificationWorker)),
	}
}

func (w *NotificationWorker) Start() {
	if w.subscriber == nil || w.apply == nil {
		return
	}
	w.subscriber.Subscribe(domorder.PaymentNotifiedEvent{}.EventName(), w.handlePaymentNotified)
}

func (w *NotificationWorker) handlePaymentNotified(ctx context.Context, e domoutbox.Event) error {
	evt, ok := e.(domorder.PaymentNotifiedEvent)
	if !ok {
		logctx.FromOr(ctx, w.log).Warn("payment_notification_unexpected_event",
			observability.F("event", e.EventName()),
		)
		return nil
	}

	ctx = WithEventContext(ctx, logctx.FromOr(ctx, w.log), map[string]string{
		"event": e.EventName(),
	})

	status, err := w.apply.Execute(ctx, evt)
	if err != nil {
		logctx.FromOr(ctx, w.log).Warn("payment_notification_not_applied",
			observability.F("order_id", evt.OrderID),
			observability.Err(err),
		)
		return err
	}

	logctx.FromOr(ctx, w.log).Info("payment_notification_applied",
		observability.F("order_id", evt.OrderID),
		observability.F("order_status", string(status)),
	)
	return nil
}
