package application

import (
	"context"
	"time"

	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability/logctx"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const spanPrefix = "UC."

// Instruments bundles the RED metrics, tracer and base logger every use case shares.
type Instruments struct {
	tracer observability.Tracer
	log    observability.Logger

	reqCounter   observability.Counter   // usecase_requests_total{use_case,outcome}
	durHistogram observability.Histogram // usecase_duration_seconds{use_case}
}

// NewInstruments binds the shared instruments with a fixed service field.
func NewInstruments(tel observability.Observability, service string) Instruments {
	if tel == nil {
		tel = observability.Nop()
	}
	return Instruments{
		tracer:       tel.Tracer(),
		log:          tel.Logger().With(observability.F("service", service)),
		reqCounter:   tel.Metrics().Counter(observability.MUsecaseRequests),
		durHistogram: tel.Metrics().Histogram(observability.MUsecaseDuration),
	}
}

// Run tracks one use case execution. Callers mark a status on notable paths and
// call Finish from a deferred func with the named error result.
type Run struct {
	in      Instruments
	useCase string
	span    trace.Span
	logger  observability.Logger
	start   time.Time

	status string
	fields []observability.Field
}

// Begin opens the UC span and binds a request logger carrying use_case and trace ids.
func (in Instruments) Begin(ctx context.Context, useCase, spanName string, attrs ...attribute.KeyValue) (context.Context, *Run) {
	attrs = append(attrs, attribute.String("use_case", useCase))
	ctx, span := in.tracer.Start(ctx, spanPrefix+spanName, attrs...)

	ctx, logger := logctx.Enrich(ctx, in.log,
		append([]observability.Field{observability.F("use_case", useCase)}, observability.TraceFields(ctx)...)...)

	return ctx, &Run{
		in:      in,
		useCase: useCase,
		span:    span,
		logger:  logger,
		start:   time.Now(),
		status:  "OK",
	}
}

// Mark sets the status code reported in the use_case_done log and span.
func (r *Run) Mark(status string) { r.status = status }

// With appends fields to the use_case_done log.
func (r *Run) With(fields ...observability.Field) { r.fields = append(r.fields, fields...) }

func (r *Run) Finish(err error) {
	lat := time.Since(r.start).Seconds()
	outcome := observability.OutcomeSuccess
	if err != nil {
		outcome = observability.OutcomeError
		if r.status == "OK" {
			r.status = "FAILED"
		}
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, r.status)
	} else {
		r.span.SetStatus(codes.Ok, r.status)
	}
	r.span.End()

	r.in.reqCounter.Add(1,
		observability.L("use_case", r.useCase),
		observability.L("outcome", outcome),
	)
	r.in.durHistogram.Observe(lat,
		observability.L("use_case", r.useCase),
	)

	fields := append([]observability.Field{
		observability.F("outcome", outcome),
		observability.F("status", r.status),
		observability.F("latency_seconds", lat),
	}, r.fields...)
	if err != nil {
		fields = append(fields, observability.F("error", err.Error()))
	}
	r.logger.Info("use_case_done", fields...)
}

// Span returns the use case span for events and attributes.
func (r *Run) Span() trace.Span { return r.span }
