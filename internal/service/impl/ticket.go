package impl

import (
	"context"
	"fmt"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/moderation"
	"github.com/Decentr-net/aegis/internal/service"
	"github.com/Decentr-net/aegis/internal/storage"
)

// ReportComment opens report ticket on comment.
func (s srv) ReportComment(ctx context.Context, commentID string, actor string) (*entities.ModerationTicket, error) {
	var ticket *entities.ModerationTicket

	if err := s.inTx(ctx, func(t tx) error {
		if _, err := t.actor(ctx, actor); err != nil {
			return err
		}

		c, err := t.GetComment(ctx, commentID)
		if err != nil {
			return wrapStorageError(err, "failed to get comment")
		}

		ticket, err = t.createTicket(ctx, entities.CommentReportTicket, c.ID)
		return err
	}); err != nil {
		return nil, err
	}

	return ticket, nil
}

// AssignTicket makes actor responsible for the ticket.
func (s srv) AssignTicket(ctx context.Context, ticketID string, actor string) error {
	return s.inTx(ctx, func(t tx) error {
		m, err := t.moderator(ctx, actor)
		if err != nil {
			return err
		}

		ticket, err := t.LockTicket(ctx, ticketID)
		if err != nil {
			return wrapStorageError(err, "failed to lock ticket")
		}

		if err := moderation.Assign(ticket.Status); err != nil {
			return fmt.Errorf("failed to assign %s ticket: %w", ticket.Status, err)
		}

		return t.updateTicket(ctx, ticket, entities.AssignedTicket, m.ID)
	})
}

// AdvanceTicket moves ticket forward. Ticket without moderator is assigned to the actor.
func (s srv) AdvanceTicket(ctx context.Context, ticketID string, status entities.TicketStatus, actor string) error {
	if !moderation.ValidTicketStatus(status) {
		return fmt.Errorf("%w: invalid ticket status %q", service.ErrInvalidRequest, status)
	}

	return s.inTx(ctx, func(t tx) error {
		m, err := t.moderator(ctx, actor)
		if err != nil {
			return err
		}

		ticket, err := t.LockTicket(ctx, ticketID)
		if err != nil {
			return wrapStorageError(err, "failed to lock ticket")
		}

		if err := moderation.Advance(ticket.Status, status); err != nil {
			return fmt.Errorf("failed to move ticket from %s to %s: %w", ticket.Status, status, err)
		}

		moderator := m.ID
		if ticket.Moderator != nil {
			moderator = *ticket.Moderator
		}

		return t.updateTicket(ctx, ticket, status, moderator)
	})
}

func (t tx) updateTicket(ctx context.Context, ticket *entities.ModerationTicket, status entities.TicketStatus, moderator string) error {
	if err := t.UpdateTicket(ctx, ticket.ID, &storage.UpdateTicketParams{
		Status:    status,
		Moderator: &moderator,
		UpdatedAt: t.now,
	}); err != nil {
		return wrapStorageError(err, "failed to update ticket")
	}

	log.WithField("ticket", ticket.ID).WithField("moderator", moderator).
		WithField("from", ticket.Status).WithField("to", status).Info("ticket updated")

	return nil
}
