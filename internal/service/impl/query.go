package impl

import (
	"context"
	"fmt"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/service"
)

// GetArticleRating ...
func (s srv) GetArticleRating(ctx context.Context, articleID string) (int, error) {
	r, err := s.s.GetArticleRating(ctx, articleID)
	if err != nil {
		return 0, wrapStorageError(err, "failed to get article rating")
	}

	return r.Value, nil
}

// GetAuthorRating ...
func (s srv) GetAuthorRating(ctx context.Context, userID string) (int, error) {
	p, err := s.s.GetProfile(ctx, userID)
	if err != nil {
		return 0, wrapStorageError(err, "failed to get profile")
	}

	return p.Rating, nil
}

// ListUnreadNotices returns unread notices, the most recent first.
func (s srv) ListUnreadNotices(ctx context.Context, kind entities.NoticeKind, recipient string) ([]*entities.Notice, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: invalid notice kind %q", service.ErrInvalidRequest, kind)
	}

	l, err := s.s.ListUnreadNotices(ctx, kind, recipient)
	if err != nil {
		return nil, wrapStorageError(err, "failed to list notices")
	}

	return l, nil
}

// MarkNoticeRead marks recipient's notice as read.
func (s srv) MarkNoticeRead(ctx context.Context, kind entities.NoticeKind, noticeID string, recipient string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: invalid notice kind %q", service.ErrInvalidRequest, kind)
	}

	if err := s.s.MarkNoticeRead(ctx, kind, noticeID, recipient); err != nil {
		return wrapStorageError(err, "failed to mark notice read")
	}

	return nil
}

// MarkAllNoticesRead marks all recipient's notices of the kind as read and returns count of changed notices.
func (s srv) MarkAllNoticesRead(ctx context.Context, kind entities.NoticeKind, recipient string) (int64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: invalid notice kind %q", service.ErrInvalidRequest, kind)
	}

	n, err := s.s.MarkAllNoticesRead(ctx, kind, recipient)
	if err != nil {
		return 0, wrapStorageError(err, "failed to mark notices read")
	}

	return n, nil
}

// CountTickets returns count of tickets per kind and status.
func (s srv) CountTickets(ctx context.Context) ([]entities.TicketCount, error) {
	c, err := s.s.CountTickets(ctx)
	if err != nil {
		return nil, wrapStorageError(err, "failed to count tickets")
	}

	return c, nil
}

// CountModeratorTickets returns count of moderator's tickets per kind and status.
func (s srv) CountModeratorTickets(ctx context.Context, moderator string) ([]entities.TicketCount, error) {
	c, err := s.s.CountModeratorTickets(ctx, moderator)
	if err != nil {
		return nil, wrapStorageError(err, "failed to count moderator's tickets")
	}

	return c, nil
}
