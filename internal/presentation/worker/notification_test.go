package workerpresentation

import (
	"context"
	"testing"
	"time"

	appOrder "github.com/Zhima-Mochi/minishop-checkout/internal/application/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	domorder "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/memory"
	infraobs "github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/outbox"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability/logctx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func seedOrder(t *testing.T, repo *memory.OrderRepository, id string) {
	t.Helper()
	cart := []catalog.Product{{ID: "1", Title: "Keyboard", Amount: decimal.RequireFromString("129.99"), Currency: "AUD"}}
	o, err := domorder.New(id, cart, domorder.CalculateTotal(cart), domorder.CustomerInfo{}, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(context.Background(), o))
}

func TestNotificationWorkerAppliesEvents(t *testing.T) {
	repo := memory.NewOrderRepository()
	seedOrder(t, repo, "order_a")
	seedOrder(t, repo, "order_b")

	bus := outbox.NewBus(nil)
	NewNotificationWorker(bus, appOrder.NewApplyNotificationUseCase(repo, nil), nil).Start()
	bus.Start(context.Background())

	require.NoError(t, bus.Publish(context.Background(), domorder.NewPaymentNotifiedEvent("order_a", "0", "")))
	require.NoError(t, bus.Publish(context.Background(), domorder.NewPaymentNotifiedEvent("order_b", "1", "Declined")))
	require.NoError(t, bus.Publish(context.Background(), domorder.NewPaymentNotifiedEvent("order_missing", "0", "")))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, bus.Stop(ctx))

	a, err := repo.Get(context.Background(), "order_a")
	require.NoError(t, err)
	assert.True(t, a.IsCompleted)

	b, err := repo.Get(context.Background(), "order_b")
	require.NoError(t, err)
	assert.True(t, b.IsFailed)
	assert.Equal(t, "Declined", b.FailureReason)
}

func TestWithEventContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zaplogger.Wrap(zap.New(core))

	ctx := WithEventContext(context.Background(), base, map[string]string{
		"event":    "payment.notified",
		"event_id": "evt-1",
		"empty":    "",
	})
	logctx.From(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "evt-1", fields["event_id"])
	assert.Equal(t, "payment.notified", fields["event"])
	assert.NotContains(t, fields, "empty")
	assert.NotContains(t, fields, "trace_id")
}

type stockReserved struct{}

func (stockReserved) EventName() string { return domorder.PaymentNotifiedEvent{}.EventName() }

func TestNotificationWorkerDropsUnexpectedEvent(t *testing.T) {
	reg := prometheus.NewRegistry()
	core, logs := observer.New(zap.InfoLevel)
	tel := infraobs.New(nil, zaplogger.Wrap(zap.New(core)), infraobs.StandardInstruments(prometrics.New(reg, "")))
	repo := memory.NewOrderRepository()

	w := NewNotificationWorker(outbox.NewBus(nil), appOrder.NewApplyNotificationUseCase(repo, tel), tel)
	require.NoError(t, w.handlePaymentNotified(context.Background(), stockReserved{}))

	dropped := logs.FilterMessage("payment_notification_unexpected_event").All()
	require.Len(t, dropped, 1)
	assert.Equal(t, "payment.notified", dropped[0].ContextMap()["event"])

	count, err := testutil.GatherAndCount(reg, "usecase_requests_total")
	require.NoError(t, err)
	assert.Zero(t, count)
}
