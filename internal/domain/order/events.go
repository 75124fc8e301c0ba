package order

import "time"

// PaymentNotifiedEvent carries a gateway notification for an order. It is
// applied asynchronously so the webhook can be acknowledged right away.
type PaymentNotifiedEvent struct {
	OrderID         string
	ResponseCode    string
	ResponseMessage string
	OccurredAt      time.Time
}

func (PaymentNotifiedEvent) EventName() string { return "payment.notified" }

func NewPaymentNotifiedEvent(orderID, responseCode, responseMessage string) PaymentNotifiedEvent {
	return PaymentNotifiedEvent{
		OrderID:         orderID,
		ResponseCode:    responseCode,
		ResponseMessage: responseMessage,
		OccurredAt:      time.Now().UTC(),
	}
}

// Succeeded reports whether the gateway approved the payment.
func (e PaymentNotifiedEvent) Succeeded() bool {
	return e.ResponseCode == "0"
}
