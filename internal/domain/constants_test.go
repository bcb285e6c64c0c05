package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentTransitionsMoveForwardOnly(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{PaymentStatusWaiting, PaymentStatusInput, true},
		{PaymentStatusWaiting, PaymentStatusConfirmed, true},
		{PaymentStatusWaiting, PaymentStatusRejected, true},
		{PaymentStatusInput, PaymentStatusConfirmed, true},
		{PaymentStatusPreauth, PaymentStatusConfirmed, true},
		{PaymentStatusConfirmed, PaymentStatusRefunded, true},

		{PaymentStatusConfirmed, PaymentStatusWaiting, false},
		{PaymentStatusConfirmed, PaymentStatusRejected, false},
		{PaymentStatusRejected, PaymentStatusConfirmed, false},
		{PaymentStatusRefunded, PaymentStatusConfirmed, false},
		{PaymentStatusError, PaymentStatusConfirmed, false},
		{PaymentStatusWaiting, "settled", false},
		{"", PaymentStatusConfirmed, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransitionPayment(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestSelfTransitionIsNotAMove(t *testing.T) {
	statuses := []string{
		PaymentStatusWaiting, PaymentStatusInput, PaymentStatusPreauth,
		PaymentStatusConfirmed, PaymentStatusRejected, PaymentStatusRefunded,
		PaymentStatusError,
	}
	for _, status := range statuses {
		assert.False(t, CanTransitionPayment(status, status), status)
	}
}
