package moderation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/aegis/internal/entities"
)

func TestAdvance(t *testing.T) {
	tt := []struct {
		name string
		from entities.TicketStatus
		to   entities.TicketStatus
		ok   bool
	}{
		{name: "new_to_assigned", from: entities.NewTicket, to: entities.AssignedTicket, ok: true},
		{name: "assigned_to_under_consideration", from: entities.AssignedTicket, to: entities.UnderConsiderationTicket, ok: true},
		{name: "under_consideration_to_reviewed", from: entities.UnderConsiderationTicket, to: entities.ReviewedTicket, ok: true},
		{name: "new_to_reviewed", from: entities.NewTicket, to: entities.ReviewedTicket, ok: true},
		{name: "same", from: entities.AssignedTicket, to: entities.AssignedTicket},
		{name: "backward", from: entities.UnderConsiderationTicket, to: entities.NewTicket},
		{name: "out_of_reviewed", from: entities.ReviewedTicket, to: entities.NewTicket},
		{name: "reviewed_to_reviewed", from: entities.ReviewedTicket, to: entities.ReviewedTicket},
		{name: "unknown", from: entities.NewTicket, to: "X"},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			err := Advance(tc.from, tc.to)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrInvalidTransition))
		})
	}
}

func TestAssign(t *testing.T) {
	require.NoError(t, Assign(entities.NewTicket))
	require.NoError(t, Assign(entities.AssignedTicket))
	require.True(t, errors.Is(Assign(entities.UnderConsiderationTicket), ErrInvalidTransition))
	require.True(t, errors.Is(Assign(entities.ReviewedTicket), ErrInvalidTransition))
}

func TestCallsModerator(t *testing.T) {
	require.True(t, CallsModerator("please check @moderator"))
	require.False(t, CallsModerator("please check @Moderator"))
	require.False(t, CallsModerator("moderator"))
}
