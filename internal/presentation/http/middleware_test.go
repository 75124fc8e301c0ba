package httppresentation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appCatalog "github.com/Zhima-Mochi/minishop-checkout/internal/application/catalog"
	appOrder "github.com/Zhima-Mochi/minishop-checkout/internal/application/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/memory"
	infraobs "github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability/logctx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	core, logs := observer.New(zap.InfoLevel)
	tel := infraobs.New(nil, zaplogger.Wrap(zap.New(core)), infraobs.StandardInstruments(prometrics.New(reg, "")))

	orders := memory.NewOrderRepository()
	h := NewHandler(UseCases{
		ListGoods: appCatalog.NewListGoodsUseCase(memory.NewCatalogRepository(memory.SeedProducts()), tel),
		GetOrder:  appOrder.NewGetOrderUseCase(orders, tel),
	}, nil, tel)
	router := h.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/order_abc", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req.WithContext(context.Background()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	expected := `
# HELP http_requests_total Total number of HTTP requests.
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/api/orders/{id}",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"))

	access := logs.FilterMessage("http_access").All()
	require.Len(t, access, 1)
	fields := access[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "/api/orders/{id}", fields["route"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])

	done := logs.FilterMessage("use_case_done").All()
	require.Len(t, done, 1)
	assert.Equal(t, "req-42", done[0].ContextMap()["request_id"])
}

func TestObservabilityMiddlewareGeneratesRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zaplogger.Wrap(zap.New(core))

	var logged bool
	h := ObservabilityMiddleware(base, func(r *http.Request) string { return r.Header.Get(headerRequestID) })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logctx.From(r.Context()).Info("inside")
			logged = true
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Tenant-ID", "acme")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.True(t, logged)
	rid := rec.Header().Get(headerRequestID)
	assert.NotEmpty(t, rid)

	entries := logs.FilterMessage("inside").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, rid, fields["request_id"])
	assert.NotContains(t, fields, "tenant_id")
}
