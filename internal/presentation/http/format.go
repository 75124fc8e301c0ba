package httppresentation

import (
	"net/http"

	"github.com/Zhima-Mochi/minishop-checkout/internal/pkg/card"
	"github.com/Zhima-Mochi/minishop-checkout/internal/pkg/phone"
)

type phoneFormatResponse struct {
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	E164      string `json:"e164"`
}

func (h *Handler) handleFormatPhone(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	number, country := q.Get("number"), q.Get("country")

	writeJSON(w, http.StatusOK, phoneFormatResponse{
		Formatted: phone.Format(number, country),
		Valid:     phone.Validate(number, country),
		Error:     phone.Error(number, country),
		E164:      phone.FormatForAPI(number, country),
	})
}

type cardFormatResponse struct {
	Formatted string  `json:"formatted"`
	Type      *string `json:"type"`
	Expiry    string  `json:"expiry,omitempty"`
}

func (h *Handler) handleFormatCard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	resp := cardFormatResponse{
		Formatted: card.FormatNumber(q.Get("number")),
		Expiry:    card.FormatExpiry(q.Get("expiry")),
	}
	if brand, ok := card.Type(q.Get("number")); ok {
		s := string(brand)
		resp.Type = &s
	}
	writeJSON(w, http.StatusOK, resp)
}
