package httppresentation

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	appOrder "github.com/Zhima-Mochi/minishop-checkout/internal/application/order"
	domainOrder "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability"
	"github.com/Zhima-Mochi/minishop-checkout/internal/observability/logctx"
	"github.com/Zhima-Mochi/minishop-checkout/internal/pkg/phone"
	"github.com/go-chi/chi/v5"
)

const publishTimeout = 300 * time.Millisecond

// customerRequest is the checkout form as posted by the storefront.
type customerRequest struct {
	CustomerName     string `json:"customerName" validate:"required"`
	CustomerEmail    string `json:"customerEmail" validate:"required,email"`
	CustomerPhone    string `json:"customerPhone" validate:"required"`
	PhoneCode        string `json:"phoneCode" validate:"omitempty,iso3166_1_alpha2"`
	CustomerCountry  string `json:"customerCountry" validate:"required"`
	CustomerState    string `json:"customerState"`
	CustomerCity     string `json:"customerCity" validate:"required"`
	CustomerAddress  string `json:"customerAddress" validate:"required"`
	CustomerPostCode string `json:"customerPostCode" validate:"required"`
}

type createOrderRequest struct {
	Cart []string `json:"cart"`
	customerRequest
}

// toInput trims the form and normalises the phone number to +<dial code><digits>.
func (req createOrderRequest) toInput() appOrder.CreateOrderInput {
	c := req.customerRequest
	return appOrder.CreateOrderInput{
		Cart: req.Cart,
		Customer: domainOrder.CustomerInfo{
			Name:     strings.TrimSpace(c.CustomerName),
			Email:    strings.TrimSpace(c.CustomerEmail),
			Phone:    phone.FormatForAPI(c.CustomerPhone, c.PhoneCode),
			Country:  strings.TrimSpace(c.CustomerCountry),
			State:    strings.TrimSpace(c.CustomerState),
			City:     strings.TrimSpace(c.CustomerCity),
			Address:  strings.TrimSpace(c.CustomerAddress),
			PostCode: strings.TrimSpace(c.CustomerPostCode),
		},
	}
}

type createOrderResponse struct {
	ID          string `json:"id"`
	PaymentLink string `json:"paymentLink"`
	UniqueCode  string `json:"uniqueCode"`
}

type placeOrderResponse struct {
	ID    string            `json:"id"`
	Total domainOrder.Total `json:"total"`
}

func (h *Handler) decodeOrderRequest(w http.ResponseWriter, r *http.Request) (createOrderRequest, bool) {
	var req createOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return req, false
	}
	if err := h.validate.StructCtx(r.Context(), req.customerRequest); err != nil {
		logctx.FromOr(r.Context(), h.log).Info("order_request_invalid", observability.Err(err))
		writeValidationError(w, err)
		return req, false
	}
	return req, true
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrderRequest(w, r)
	if !ok {
		return
	}

	result, err := h.uc.CreateOrder.Execute(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createOrderResponse{
		ID:          result.OrderID,
		PaymentLink: result.PaymentLink,
		UniqueCode:  result.UniqueCode,
	})
}

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeOrderRequest(w, r)
	if !ok {
		return
	}

	result, err := h.uc.PlaceOrder.Execute(r.Context(), req.toInput())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, placeOrderResponse{ID: result.OrderID, Total: result.Total})
}

func (h *Handler) handleRequestPayment(w http.ResponseWriter, r *http.Request) {
	result, err := h.uc.RequestPayment.Execute(r.Context(), appOrder.RequestPaymentInput{
		OrderID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, createOrderResponse{
		ID:          result.OrderID,
		PaymentLink: result.PaymentLink,
		UniqueCode:  result.UniqueCode,
	})
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.uc.GetOrder.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type notifyResponse struct {
	Status string `json:"status"`
}

// handleNotify acknowledges a gateway notification and hands it to the
// notification worker through the event bus.
func (h *Handler) handleNotify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ref := r.Form.Get("linkReferenceID")
	if ref == "" {
		ref = r.Form.Get("reference")
	}
	code := r.Form.Get("responseCode")
	if ref == "" || code == "" {
		writeError(w, http.StatusBadRequest, errors.New("linkReferenceID and responseCode are required"))
		return
	}

	logger := logctx.FromOr(r.Context(), h.log).With(
		observability.F("order_id", ref),
		observability.F("response_code", code),
	)

	ctx, cancel := context.WithTimeout(r.Context(), publishTimeout)
	defer cancel()
	evt := domainOrder.NewPaymentNotifiedEvent(ref, code, r.Form.Get("responseMessage"))
	if err := h.publisher.Publish(ctx, evt); err != nil {
		logger.Error("payment_notification_publish_failed", observability.Err(err))
		writeError(w, http.StatusServiceUnavailable, errors.New("notification not accepted"))
		return
	}

	logger.Info("payment_notification_received")
	writeJSON(w, http.StatusOK, notifyResponse{Status: "received"})
}
