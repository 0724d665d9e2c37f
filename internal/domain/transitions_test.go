package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionSellOrder(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"Pending to completed", OrderStatusPending, OrderStatusCompleted, true},
		{"Pending to declined", OrderStatusPending, OrderStatusDeclined, true},
		{"Pending to reversed", OrderStatusPending, OrderStatusReversed, true},
		{"Reversed to completed", OrderStatusReversed, OrderStatusCompleted, false},
		{"Completed to reversed", OrderStatusCompleted, OrderStatusReversed, false},
		{"Declined to reversed", OrderStatusDeclined, OrderStatusReversed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransitionSellOrder(tc.from, tc.to))
		})
	}
}

func TestCanTransitionReversal(t *testing.T) {
	assert.True(t, CanTransitionReversal(ReversalStatusPending, ReversalStatusApproved))
	assert.True(t, CanTransitionReversal(ReversalStatusPending, ReversalStatusDeclined))
	assert.False(t, CanTransitionReversal(ReversalStatusApproved, ReversalStatusDeclined))
	assert.False(t, CanTransitionReversal(ReversalStatusApproved, ReversalStatusApproved))
	assert.False(t, CanTransitionReversal(ReversalStatusDeclined, ReversalStatusApproved))
}

func TestCanTransitionGiveaway(t *testing.T) {
	cases := []struct {
		name string
		from GiveawayStatus
		to   GiveawayStatus
		want bool
	}{
		{"Active to completed", GiveawayStatusActive, GiveawayStatusCompleted, true},
		{"Active to rejected", GiveawayStatusActive, GiveawayStatusRejected, true},
		{"Active to expired", GiveawayStatusActive, GiveawayStatusExpired, true},
		{"Expired to active", GiveawayStatusExpired, GiveawayStatusActive, false},
		{"Completed to rejected", GiveawayStatusCompleted, GiveawayStatusRejected, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransitionGiveaway(tc.from, tc.to))
		})
	}
}
