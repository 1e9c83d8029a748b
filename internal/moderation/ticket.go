package moderation

import (
	"errors"
	"fmt"

	"github.com/Decentr-net/aegis/internal/entities"
)

// ErrInvalidTransition is returned when ticket can not be moved to requested status.
var ErrInvalidTransition = errors.New("invalid transition")

// nolint:gochecknoglobals
var ticketOrder = map[entities.TicketStatus]int{
	entities.NewTicket:                0,
	entities.AssignedTicket:           1,
	entities.UnderConsiderationTicket: 2,
	entities.ReviewedTicket:           3,
}

// ValidTicketStatus ...
func ValidTicketStatus(s entities.TicketStatus) bool {
	_, ok := ticketOrder[s]
	return ok
}

// IsOpen returns true if ticket is not reviewed yet.
func IsOpen(s entities.TicketStatus) bool {
	return s != entities.ReviewedTicket
}

// Advance checks if ticket can be moved from one status to another.
// Tickets move only forward, reviewed ticket is final.
func Advance(from, to entities.TicketStatus) error {
	f, ok := ticketOrder[from]
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, from)
	}

	t, ok := ticketOrder[to]
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}

	if from == entities.ReviewedTicket {
		return fmt.Errorf("%w: ticket is already reviewed", ErrInvalidTransition)
	}

	if t <= f {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	return nil
}

// Assign checks if ticket can be (re)assigned. Only new and assigned tickets can be.
func Assign(from entities.TicketStatus) error {
	switch from {
	case entities.NewTicket, entities.AssignedTicket:
		return nil
	default:
		return fmt.Errorf("%w: can not assign ticket in %s status", ErrInvalidTransition, from)
	}
}
