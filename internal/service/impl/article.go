package impl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/moderation"
	"github.com/Decentr-net/aegis/internal/notice"
	"github.com/Decentr-net/aegis/internal/service"
)

// CreateArticle creates not blocked article of the actor with zero rating.
func (s srv) CreateArticle(ctx context.Context, a *entities.Article, actor string) error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", service.ErrInvalidRequest)
	}

	if a.Status == "" {
		a.Status = entities.DraftStatus
	}

	if !a.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", service.ErrInvalidRequest, a.Status)
	}

	return s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return err
		}

		if a.Author == "" {
			a.Author = u.ID
		}

		if a.Author != u.ID {
			return fmt.Errorf("%w: article can be created only by its author", service.ErrPermissionDenied)
		}

		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		a.Blocked = false
		a.CreatedAt = t.now

		if err := t.Storage.CreateArticle(ctx, a); err != nil {
			return wrapStorageError(err, "failed to create article")
		}

		return t.recalcAuthor(ctx, a.Author)
	})
}

// SetArticleStatus changes article's status and blocked flag.
// Author can change status only, moderator can change both. Author's resubmission of blocked article opens
// re-moderation ticket, moderator's changes are reported to the author.
func (s srv) SetArticleStatus(
	ctx context.Context,
	articleID string,
	status entities.ArticleStatus,
	blocked bool,
	actor string,
) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", service.ErrInvalidRequest, status)
	}

	return s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return err
		}

		a, err := t.LockArticle(ctx, articleID)
		if err != nil {
			return wrapStorageError(err, "failed to lock article")
		}

		byAuthor := a.Author == u.ID

		if !byAuthor && !u.IsModerator() {
			return fmt.Errorf("%w: actor is neither author nor moderator", service.ErrPermissionDenied)
		}

		if !u.IsModerator() && blocked != a.Blocked {
			return fmt.Errorf("%w: only moderator can change blocked flag", service.ErrPermissionDenied)
		}

		before, after := a.State(), entities.ArticleState{Status: status, Blocked: blocked}
		if before == after {
			return nil
		}

		if err := t.SetArticleState(ctx, a.ID, after); err != nil {
			return wrapStorageError(err, "failed to set article state")
		}

		log.WithField("article", a.ID).WithField("actor", u.ID).
			WithField("from", moderation.Classify(before)).WithField("to", moderation.Classify(after)).
			Debug("article state changed")

		if byAuthor {
			if !moderation.NeedsReModeration(before, after, true) {
				return nil
			}

			_, err := t.createTicket(ctx, entities.ArticleReModerationTicket, a.ID)
			return err
		}

		return t.notices.Account(ctx, a.Author, u.ID, moderation.ArticleFragments(a.Title, before, after)...)
	})
}

// DeleteArticle deletes article with everything attached to it and recalculates author's rating.
func (s srv) DeleteArticle(ctx context.Context, articleID string, actor string) error {
	return s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return err
		}

		// rating is locked first like in toggles and comments
		if _, err := t.LockArticleRating(ctx, articleID); err != nil {
			return wrapStorageError(err, "failed to lock article rating")
		}

		a, err := t.LockArticle(ctx, articleID)
		if err != nil {
			return wrapStorageError(err, "failed to lock article")
		}

		if a.Author != u.ID && !u.IsModerator() {
			return fmt.Errorf("%w: actor is neither author nor moderator", service.ErrPermissionDenied)
		}

		if err := t.Storage.DeleteArticle(ctx, a.ID); err != nil {
			return wrapStorageError(err, "failed to delete article")
		}

		return t.recalcAuthor(ctx, a.Author)
	})
}

// ToggleLike toggles actor's like on article.
func (s srv) ToggleLike(ctx context.Context, articleID string, actor string) error {
	return s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return skipForbidden(err, "toggle_like")
		}

		a, err := t.GetArticle(ctx, articleID)
		if err != nil {
			return wrapStorageError(err, "failed to get article")
		}

		r, err := t.LockArticleRating(ctx, a.ID)
		if err != nil {
			return wrapStorageError(err, "failed to lock article rating")
		}

		added, err := t.ToggleArticleLike(ctx, a.ID, u.ID)
		if err != nil {
			return wrapStorageError(err, "failed to toggle like")
		}

		if err := t.recalcArticle(ctx, r); err != nil {
			return err
		}

		if !added || a.Author == u.ID {
			return nil
		}

		name, err := t.name(ctx, u)
		if err != nil {
			return err
		}

		return t.notices.Activity(ctx, a.Author, u.ID, notice.ArticleLiked(name, a.Title))
	})
}
