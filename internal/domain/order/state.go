package order

// State implements the state pattern for the payment side of an order.
type State interface {
	Status() Status
	OnPaymentLinked(o *Order, p PaymentRecord) (State, error)
	OnPaymentSucceeded(o *Order) (State, error)
	OnPaymentFailed(o *Order, reason string) (State, error)
}

type pendingState struct{}

func (pendingState) Status() Status { return StatusPending }

func (pendingState) OnPaymentLinked(o *Order, p PaymentRecord) (State, error) {
	if o.Payment != nil {
		return nil, ErrPaymentAttached
	}
	o.Payment = &p
	return pendingState{}, nil
}

func (pendingState) OnPaymentSucceeded(o *Order) (State, error) {
	o.FailureReason = ""
	return completedState{}, nil
}

func (pendingState) OnPaymentFailed(o *Order, reason string) (State, error) {
	o.FailureReason = reason
	return failedState{}, nil
}

type completedState struct{}

func (completedState) Status() Status { return StatusCompleted }

func (completedState) OnPaymentLinked(*Order, PaymentRecord) (State, error) {
	return nil, ErrInvalidStateTransition
}

func (completedState) OnPaymentSucceeded(*Order) (State, error) {
	return completedState{}, nil
}

func (completedState) OnPaymentFailed(*Order, string) (State, error) {
	return nil, ErrInvalidStateTransition
}

type failedState struct{}

func (failedState) Status() Status { return StatusFailed }

func (failedState) OnPaymentLinked(*Order, PaymentRecord) (State, error) {
	return nil, ErrInvalidStateTransition
}

// A payment can still settle after an earlier failure notice.
func (failedState) OnPaymentSucceeded(o *Order) (State, error) {
	o.FailureReason = ""
	return completedState{}, nil
}

func (failedState) OnPaymentFailed(o *Order, reason string) (State, error) {
	o.FailureReason = reason
	return failedState{}, nil
}
