// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/notice"
	"github.com/Decentr-net/aegis/internal/rating"
	"github.com/Decentr-net/aegis/internal/service"
	"github.com/Decentr-net/aegis/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// service ...
type srv struct {
	s   storage.Storage
	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage, now func() time.Time) service.Service {
	return srv{
		s:   s,
		now: now,
	}
}

// tx is a storage transaction with everything an intent needs.
// All steps of one intent see the same time.
type tx struct {
	storage.Storage

	notices notice.Dispatcher
	now     time.Time
}

func (s srv) inTx(ctx context.Context, f func(t tx) error) error {
	now := s.now().UTC()

	return s.s.InTx(ctx, func(st storage.Storage) error {
		return f(tx{
			Storage: st,
			notices: notice.New(st, func() time.Time { return now }),
			now:     now,
		})
	})
}

// actor returns acting user if the user is authenticated and not banned.
func (t tx) actor(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: actor is not authenticated", service.ErrPermissionDenied)
	}

	u, err := t.GetUser(ctx, id)
	if err != nil {
		return nil, wrapStorageError(err, "failed to get actor")
	}

	if u.IsBanned(t.now) {
		return nil, fmt.Errorf("%w: actor is banned", service.ErrPermissionDenied)
	}

	return u, nil
}

// moderator returns acting user if the user is allowed to moderate.
func (t tx) moderator(ctx context.Context, id string) (*entities.User, error) {
	u, err := t.actor(ctx, id)
	if err != nil {
		return nil, err
	}

	if !u.IsModerator() {
		return nil, fmt.Errorf("%w: actor is not a moderator", service.ErrPermissionDenied)
	}

	return u, nil
}

// name returns the name user is shown with in notices.
func (t tx) name(ctx context.Context, u *entities.User) (string, error) {
	p, err := t.GetProfile(ctx, u.ID)
	if err != nil {
		return "", wrapStorageError(err, "failed to get profile")
	}

	if p.DisplayName != "" {
		return p.DisplayName, nil
	}

	return u.Username, nil
}

// recalcArticle recalculates locked article rating and author's rating if article's rating is changed.
func (t tx) recalcArticle(ctx context.Context, r *entities.ArticleRating) error {
	c, err := t.GetArticleCounters(ctx, r.ArticleID)
	if err != nil {
		return wrapStorageError(err, "failed to get article counters")
	}

	v := rating.Article(c.Likes, c.Comments)
	if v == r.Value {
		return nil
	}

	if err := t.SetArticleRating(ctx, r.ArticleID, v); err != nil {
		return wrapStorageError(err, "failed to set article rating")
	}

	log.WithField("article", r.ArticleID).WithField("from", r.Value).WithField("to", v).Debug("article rating changed")

	r.Value = v

	return t.recalcAuthor(ctx, r.Author)
}

// recalcAuthor replaces the last article contribution in author's rating with the actual one.
func (t tx) recalcAuthor(ctx context.Context, author string) error {
	p, err := t.LockProfile(ctx, author)
	if err != nil {
		return wrapStorageError(err, "failed to lock profile")
	}

	ratings, err := t.ListAuthorArticleRatings(ctx, author)
	if err != nil {
		return wrapStorageError(err, "failed to list author's articles ratings")
	}

	contribution := rating.Contribution(ratings)

	if err := t.SetProfileRating(ctx, author,
		rating.Author(p.Rating, p.LastArticleRatingContribution, contribution),
		contribution,
	); err != nil {
		return wrapStorageError(err, "failed to set profile rating")
	}

	return nil
}

// addRating adds delta to profile's rating keeping article contribution untouched.
func (t tx) addRating(ctx context.Context, p *entities.Profile, delta int) error {
	if err := t.SetProfileRating(ctx, p.UserID, rating.Add(p.Rating, delta), p.LastArticleRatingContribution); err != nil {
		return wrapStorageError(err, "failed to set profile rating")
	}

	return nil
}

func (t tx) createTicket(ctx context.Context, kind entities.TicketKind, subject string) (*entities.ModerationTicket, error) {
	ticket := &entities.ModerationTicket{
		ID:        uuid.New().String(),
		Kind:      kind,
		Subject:   subject,
		Status:    entities.NewTicket,
		CreatedAt: t.now,
		UpdatedAt: t.now,
	}

	if err := t.CreateTicket(ctx, ticket); err != nil {
		return nil, wrapStorageError(err, "failed to create ticket")
	}

	log.WithField("kind", kind).WithField("subject", subject).Info("moderation ticket created")

	return ticket, nil
}

// skipForbidden turns permission errors into silent no-op. It is used by toggles which mirror permissive UI guard.
func skipForbidden(err error, intent string) error {
	if errors.Is(err, service.ErrPermissionDenied) {
		log.WithError(err).WithField("intent", intent).Debug("skip intent")
		return nil
	}

	return err
}

func wrapStorageError(err error, msg string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%s: %w", msg, service.ErrNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%s: %w", msg, service.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
