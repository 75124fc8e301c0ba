package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appCatalog "github.com/Zhima-Mochi/minishop-checkout/internal/application/catalog"
	appOrder "github.com/Zhima-Mochi/minishop-checkout/internal/application/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/config"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/id"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/memory"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/merchantwarrior"
	infraobs "github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/oteltrace"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/prometrics"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/observability/zaplogger"
	"github.com/Zhima-Mochi/minishop-checkout/internal/infrastructure/outbox"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/pkg/logging"
	httppresentation "github.com/Zhima-Mochi/minishop-checkout/internal/presentation/http"
	workerpresentation "github.com/Zhima-Mochi/minishop-checkout/internal/presentation/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, envNote := config.Load()

	baseLogger, err := logging.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	systemLogger := logging.System(baseLogger)
	if envNote != "" {
		systemLogger.Debug("config_env_file", zap.String("note", envNote))
	}

	// amounts are emitted as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	tel := infraobs.New(
		oteltrace.New(cfg.ServiceName),
		zaplogger.Wrap(baseLogger),
		infraobs.StandardInstruments(prometrics.New(registry, "")),
	)

	orderRepo := memory.NewOrderRepository()
	catalogRepo := memory.NewCatalogRepository(memory.SeedProducts())
	idGenerator := id.NewReferenceGenerator()
	linker := merchantwarrior.NewClient(cfg, nil, tel)
	if err := linker.Configured(); err != nil {
		systemLogger.Warn("payment_gateway_not_configured", zap.Error(err))
	}

	// In-memory event bus carrying payment notifications to the worker.
	bus := outbox.NewBus(tel.Logger())
	workerpresentation.NewNotificationWorker(bus, appOrder.NewApplyNotificationUseCase(orderRepo, tel), tel).Start()
	bus.Start(context.Background())

	handler := httppresentation.NewHandler(httppresentation.UseCases{
		ListGoods:      appCatalog.NewListGoodsUseCase(catalogRepo, tel),
		CreateOrder:    appOrder.NewCreateOrderUseCase(orderRepo, catalogRepo, linker, idGenerator, tel),
		PlaceOrder:     appOrder.NewPlaceOrderUseCase(orderRepo, catalogRepo, idGenerator, tel),
		RequestPayment: appOrder.NewRequestPaymentUseCase(orderRepo, linker, tel),
		GetOrder:       appOrder.NewGetOrderUseCase(orderRepo, tel),
	}, bus, tel)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	mux.Handle("/", handler.Router())

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		systemLogger.Info("http_server_start", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if busErr := bus.Stop(shutdownCtx); busErr != nil {
			tel.Logger().Warn("event_bus_drain_incomplete", observability.F("error", busErr))
		}
		return err
	})

	if err := g.Wait(); err != nil {
		systemLogger.Error("http_server_error", zap.Error(err))
		return
	}
	systemLogger.Info("http_server_stopped")
}
