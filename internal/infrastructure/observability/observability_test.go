package observability

import (
	"testing"

	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallsBackToNop(t *testing.T) {
	p := New(nil, nil, Instruments{})

	assert.NotNil(t, p.Tracer())
	assert.NotNil(t, p.Logger())
	assert.NotPanics(t, func() {
		p.Metrics().Counter(observability.MUsecaseRequests).Add(1)
		p.Metrics().Histogram(observability.MUsecaseDuration).Observe(1)
	})
}

func TestStandardInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := New(nil, nil, StandardInstruments(prometrics.New(reg, "")))

	p.Metrics().Counter(observability.MExternalRequests).Add(1,
		observability.L("peer", "merchantwarrior"),
		observability.L("endpoint", "paylink"),
		observability.L("outcome", observability.OutcomeSuccess),
	)
	p.Metrics().Histogram(observability.MHTTPRequestDuration).Observe(0.01,
		observability.L("method", "GET"),
		observability.L("route", "/health"),
		observability.L("status", "200"),
	)

	n, err := testutil.GatherAndCount(reg, string(observability.MExternalRequests), string(observability.MHTTPRequestDuration))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	unknown := p.Metrics().Counter("nope")
	assert.NotPanics(t, func() { unknown.Add(1) })
}
