package order

import (
	"errors"
	"time"

	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
)

var (
	ErrNotFound               = errors.New("order: not found")
	ErrConflict               = errors.New("order: already exists")
	ErrEmptyCart              = errors.New("order: no items found in cart")
	ErrMixedCurrency          = errors.New("order: cart mixes currencies")
	ErrValidation             = errors.New("order: validation failed")
	ErrInvalidStateTransition = errors.New("order: invalid state transition")
	ErrPaymentAttached        = errors.New("order: payment already attached")
	ErrMissingID              = errors.New("order: id is required")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type CustomerInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	State    string `json:"state"`
	City     string `json:"city"`
	Address  string `json:"address"`
	PostCode string `json:"postCode"`
}

// PaymentRecord is the gateway's answer to a successful payment link request.
type PaymentRecord struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	UniqueCode      string `json:"uniqueCode"`
	PaymentLink     string `json:"paymentLink"`
	LinkReferenceID string `json:"linkReferenceID"`
}

type Order struct {
	ID            string            `json:"id"`
	Payment       *PaymentRecord    `json:"payment,omitempty"`
	IsCompleted   bool              `json:"isCompleted"`
	IsFailed      bool              `json:"isFailed"`
	FailureReason string            `json:"failureReason,omitempty"`
	Cart          []catalog.Product `json:"cart"`
	Total         Total             `json:"total"`
	Customer      CustomerInfo      `json:"customerInfo"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// New builds a pending order. The cart is copied so later catalog changes do
// not leak into the stored snapshot.
func New(id string, cart []catalog.Product, total Total, customer CustomerInfo, payment *PaymentRecord) (*Order, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now().UTC()
	o := &Order{
		ID:        id,
		Cart:      append([]catalog.Product(nil), cart...),
		Total:     total,
		Customer:  customer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payment != nil {
		p := *payment
		o.Payment = &p
	}
	return o, nil
}

func (o *Order) Status() Status {
	return o.state().Status()
}

// AttachPayment records the gateway payment link on an order placed without one.
func (o *Order) AttachPayment(p PaymentRecord) error {
	next, err := o.state().OnPaymentLinked(o, p)
	if err != nil {
		return err
	}
	o.apply(next)
	return nil
}

func (o *Order) PaymentSucceeded() error {
	next, err := o.state().OnPaymentSucceeded(o)
	if err != nil {
		return err
	}
	o.apply(next)
	return nil
}

func (o *Order) PaymentFailed(reason string) error {
	next, err := o.state().OnPaymentFailed(o, reason)
	if err != nil {
		return err
	}
	o.apply(next)
	return nil
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Cart = append([]catalog.Product(nil), o.Cart...)
	if o.Payment != nil {
		p := *o.Payment
		clone.Payment = &p
	}
	return &clone
}

func (o *Order) state() State {
	switch {
	case o.IsCompleted:
		return completedState{}
	case o.IsFailed:
		return failedState{}
	default:
		return pendingState{}
	}
}

func (o *Order) apply(s State) {
	o.IsCompleted = s.Status() == StatusCompleted
	o.IsFailed = s.Status() == StatusFailed
	o.touch()
}

func (o *Order) touch() {
	o.UpdatedAt = time.Now().UTC()
}
