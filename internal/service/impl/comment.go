package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/moderation"
	"github.com/Decentr-net/aegis/internal/notice"
	"github.com/Decentr-net/aegis/internal/service"
)

// PostComment creates comment on article. Comment which calls moderator opens a report ticket.
func (s srv) PostComment(ctx context.Context, articleID string, text string, actor string) (*entities.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment is empty", service.ErrInvalidRequest)
	}

	var c *entities.Comment

	if err := s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return err
		}

		a, err := t.GetArticle(ctx, articleID)
		if err != nil {
			return wrapStorageError(err, "failed to get article")
		}

		r, err := t.LockArticleRating(ctx, a.ID)
		if err != nil {
			return wrapStorageError(err, "failed to lock article rating")
		}

		c = &entities.Comment{
			ID:        uuid.New().String(),
			ArticleID: a.ID,
			Author:    u.ID,
			Text:      text,
			CreatedAt: t.now,
		}

		if err := t.CreateComment(ctx, c); err != nil {
			return wrapStorageError(err, "failed to create comment")
		}

		if err := t.recalcArticle(ctx, r); err != nil {
			return err
		}

		if a.Author != u.ID {
			name, err := t.name(ctx, u)
			if err != nil {
				return err
			}

			if err := t.notices.Activity(ctx, a.Author, u.ID, notice.ArticleCommented(name, a.Title)); err != nil {
				return err
			}
		}

		if moderation.CallsModerator(text) {
			if _, err := t.createTicket(ctx, entities.CommentReportTicket, c.ID); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return c, nil
}

// DeleteComment removes comment by moderator and notifies its author.
func (s srv) DeleteComment(ctx context.Context, commentID string, actor string) error {
	return s.inTx(ctx, func(t tx) error {
		m, err := t.moderator(ctx, actor)
		if err != nil {
			return err
		}

		c, err := t.GetComment(ctx, commentID)
		if err != nil {
			return wrapStorageError(err, "failed to get comment")
		}

		r, err := t.LockArticleRating(ctx, c.ArticleID)
		if err != nil {
			return wrapStorageError(err, "failed to lock article rating")
		}

		if err := t.Storage.DeleteComment(ctx, c.ID); err != nil {
			return wrapStorageError(err, "failed to delete comment")
		}

		if err := t.recalcArticle(ctx, r); err != nil {
			return err
		}

		log.WithField("comment", c.ID).WithField("moderator", m.ID).Info("comment removed")

		return t.notices.Account(ctx, c.Author, m.ID, notice.CommentRemoved(c.Text))
	})
}

// ToggleCommentLike toggles actor's like on comment. Comment author's rating follows the like.
func (s srv) ToggleCommentLike(ctx context.Context, commentID string, actor string) error {
	return s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return skipForbidden(err, "toggle_comment_like")
		}

		c, err := t.GetComment(ctx, commentID)
		if err != nil {
			return wrapStorageError(err, "failed to get comment")
		}

		p, err := t.LockProfile(ctx, c.Author)
		if err != nil {
			return wrapStorageError(err, "failed to lock comment author's profile")
		}

		added, err := t.Storage.ToggleCommentLike(ctx, c.ID, u.ID)
		if err != nil {
			return wrapStorageError(err, "failed to toggle comment like")
		}

		delta := -1
		if added {
			delta = 1
		}

		if err := t.addRating(ctx, p, delta); err != nil {
			return err
		}

		if !added || c.Author == u.ID {
			return nil
		}

		name, err := t.name(ctx, u)
		if err != nil {
			return err
		}

		return t.notices.Activity(ctx, c.Author, u.ID, notice.CommentLiked(name, c.Text))
	})
}

// PostReply creates reply on comment.
func (s srv) PostReply(ctx context.Context, commentID string, text string, actor string) (*entities.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: reply is empty", service.ErrInvalidRequest)
	}

	var r *entities.Reply

	if err := s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return err
		}

		c, err := t.GetComment(ctx, commentID)
		if err != nil {
			return wrapStorageError(err, "failed to get comment")
		}

		r = &entities.Reply{
			ID:        uuid.New().String(),
			CommentID: c.ID,
			Author:    u.ID,
			Text:      text,
			CreatedAt: t.now,
		}

		if err := t.CreateReply(ctx, r); err != nil {
			return wrapStorageError(err, "failed to create reply")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return r, nil
}
