package order

import (
	"context"
	"testing"

	domain "github.com/Zhima-Mochi/minishop-checkout/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyNotification(t *testing.T) {
	cases := []struct {
		name    string
		codes   []string
		want    domain.Status
		wantErr error
	}{
		{name: "approved", codes: []string{"0"}, want: domain.StatusCompleted},
		{name: "declined", codes: []string{"5"}, want: domain.StatusFailed},
		{name: "declined then approved", codes: []string{"5", "0"}, want: domain.StatusCompleted},
		{name: "approved twice", codes: []string{"0", "0"}, want: domain.StatusCompleted},
		{name: "approved then declined", codes: []string{"0", "5"}, want: domain.StatusCompleted, wantErr: domain.ErrInvalidStateTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			id := placeOrder(t, f, "1")
			uc := NewApplyNotificationUseCase(f.orders, nil)

			var (
				status domain.Status
				err    error
			)
			for _, code := range tc.codes {
				status, err = uc.Execute(context.Background(), domain.NewPaymentNotifiedEvent(id, code, ""))
			}

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, status)

			stored, err := f.orders.Get(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stored.Status())
		})
	}
}

func TestApplyNotificationFailureReason(t *testing.T) {
	f := newFixture()
	id := placeOrder(t, f, "1")
	uc := NewApplyNotificationUseCase(f.orders, nil)

	_, err := uc.Execute(context.Background(), domain.NewPaymentNotifiedEvent(id, "5", "Card declined"))
	require.NoError(t, err)
	stored, _ := f.orders.Get(context.Background(), id)
	assert.Equal(t, "Card declined", stored.FailureReason)

	_, err = uc.Execute(context.Background(), domain.NewPaymentNotifiedEvent(id, "7", ""))
	require.NoError(t, err)
	stored, _ = f.orders.Get(context.Background(), id)
	assert.Equal(t, "gateway response code 7", stored.FailureReason)
}

func TestApplyNotificationUnknownOrder(t *testing.T) {
	f := newFixture()
	uc := NewApplyNotificationUseCase(f.orders, nil)

	_, err := uc.Execute(context.Background(), domain.NewPaymentNotifiedEvent("order_missing", "0", ""))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.Execute(context.Background(), domain.NewPaymentNotifiedEvent("", "0", ""))
	assert.ErrorIs(t, err, domain.ErrMissingID)
}
