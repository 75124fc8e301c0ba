package httppresentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	domainCatalog "github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	domainOrder "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	domainPayment "github.com/Zhima-Mochi/minishop-checkout/internal/domain/payment"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "validation failed",
		Details: validationDetails(err),
	})
}

// writeDomainError maps the error taxonomy onto HTTP status codes. Messages of
// gateway rejections are passed through; other failures stay generic.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainPayment.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, domainOrder.ErrEmptyCart),
		errors.Is(err, domainOrder.ErrMixedCurrency),
		errors.Is(err, domainOrder.ErrValidation),
		errors.Is(err, domainOrder.ErrMissingID):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domainOrder.ErrNotFound),
		errors.Is(err, domainCatalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domainOrder.ErrConflict),
		errors.Is(err, domainOrder.ErrInvalidStateTransition),
		errors.Is(err, domainOrder.ErrPaymentAttached):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, domainPayment.ErrRejected):
		writeError(w, http.StatusBadGateway, err)
	case errors.Is(err, domainPayment.ErrNetwork):
		writeError(w, http.StatusGatewayTimeout, errors.New("payment gateway unavailable"))
	default:
		writeError(w, http.StatusInternalServerError, errors.New("request failed"))
	}
}
