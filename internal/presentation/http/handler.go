package httppresentation

import (
	"net/http"

	"github.com/Zhima-Mochi/minishop-checkout/internal/application"
	appOrder "github.com/Zhima-Mochi/minishop-checkout/internal/application/order"
	domainCatalog "github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	domainOrder "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	domoutbox "github.com/Zhima-Mochi/minishop-checkout/internal/domain/outbox"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	componentHTTPHandler = "http_server"
	headerRequestID      = "X-Request-ID"
)

// UseCases lists the application entry points served over HTTP.
type UseCases struct {
	ListGoods      application.UseCase[struct{}, []domainCatalog.Product]
	CreateOrder    application.UseCase[appOrder.CreateOrderInput, *appOrder.CreateOrderResult]
	PlaceOrder     application.UseCase[appOrder.CreateOrderInput, *appOrder.PlaceOrderResult]
	RequestPayment application.UseCase[appOrder.RequestPaymentInput, *appOrder.CreateOrderResult]
	GetOrder       application.UseCase[string, *domainOrder.Order]
}

type Handler struct {
	uc        UseCases
	publisher domoutbox.Publisher
	validate  *validator.Validate

	log          observability.Logger
	reqCounter   observability.Counter   // http_requests_total{method,route,status}
	durHistogram observability.Histogram // http_request_duration_seconds{method,route,status}
}

func NewHandler(uc UseCases, publisher domoutbox.Publisher, tel observability.Observability) *Handler {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Handler{
		uc:           uc,
		publisher:    publisher,
		validate:     newValidator(),
		log:          tel.Logger().With(observability.F("component", componentHTTPHandler)),
		reqCounter:   tel.Metrics().Counter(observability.MHTTPRequests),
		durHistogram: tel.Metrics().Histogram(observability.MHTTPRequestDuration),
	}
}

// Router wires every route behind
// Recoverer → Trace → request logger → HTTP metrics → access log.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		h.withTrace,
		ObservabilityMiddleware(
			h.log,
			func(r *http.Request) string { return r.Header.Get(headerRequestID) },
		),
		h.withHTTPMetrics,
		h.withAccessLog,
	)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})

	r.Get("/health", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/goods", h.handleListGoods)

		r.Post("/orders", h.handleCreateOrder)
		r.Post("/orders/place", h.handlePlaceOrder)
		r.Post("/orders/notify", h.handleNotify)
		r.Get("/orders/{id}", h.handleGetOrder)
		r.Post("/orders/{id}/payment", h.handleRequestPayment)

		r.Get("/format/phone", h.handleFormatPhone)
		r.Get("/format/card", h.handleFormatCard)
	})
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleListGoods(w http.ResponseWriter, r *http.Request) {
	goods, err := h.uc.ListGoods.Execute(r.Context(), struct{}{})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goods)
}
