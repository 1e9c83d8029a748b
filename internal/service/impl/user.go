package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/moderation"
	"github.com/Decentr-net/aegis/internal/notice"
	"github.com/Decentr-net/aegis/internal/service"
)

// CreateUser creates user with profile.
func (s srv) CreateUser(ctx context.Context, u *entities.User, p *entities.Profile) error {
	if u.ID == "" || u.Username == "" {
		return fmt.Errorf("%w: id and username are required", service.ErrInvalidRequest)
	}

	if u.Role == "" {
		u.Role = entities.RegularRole
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}

	if p == nil {
		p = &entities.Profile{}
	}
	p.UserID = u.ID

	return s.inTx(ctx, func(t tx) error {
		if err := t.CreateUser(ctx, u, p); err != nil {
			return wrapStorageError(err, "failed to create user")
		}

		return nil
	})
}

// SetBan sets user's ban fields and notifies user about the difference.
func (s srv) SetBan(ctx context.Context, userID string, permanent bool, expiry *time.Time, actor string) error {
	return s.setBan(ctx, userID, actor, func(entities.Ban, time.Time) entities.Ban {
		return entities.Ban{Permanent: permanent, Expiry: expiry}
	})
}

// TempBan bans user for TemporaryBanDuration. Permanent ban is kept as is.
func (s srv) TempBan(ctx context.Context, userID string, actor string) error {
	return s.setBan(ctx, userID, actor, func(b entities.Ban, now time.Time) entities.Ban {
		expiry := now.Add(moderation.TemporaryBanDuration)
		return entities.Ban{Permanent: b.Permanent, Expiry: &expiry}
	})
}

func (s srv) setBan(ctx context.Context, userID, actor string, f func(entities.Ban, time.Time) entities.Ban) error {
	return s.inTx(ctx, func(t tx) error {
		m, err := t.moderator(ctx, actor)
		if err != nil {
			return err
		}

		u, err := t.LockUser(ctx, userID)
		if err != nil {
			return wrapStorageError(err, "failed to lock user")
		}

		before := u.Ban()
		after := f(before, t.now)

		if err := t.SetBan(ctx, userID, after); err != nil {
			return wrapStorageError(err, "failed to set ban")
		}

		log.WithField("user", userID).WithField("moderator", m.ID).
			WithField("permanent", after.Permanent).WithField("expiry", after.Expiry).Info("ban changed")

		return t.notices.Account(ctx, userID, m.ID, moderation.BanFragments(before, after, t.now)...)
	})
}

// ToggleStar toggles actor's star on author. Author's rating follows the star.
func (s srv) ToggleStar(ctx context.Context, authorID string, actor string) error {
	return s.inTx(ctx, func(t tx) error {
		u, err := t.actor(ctx, actor)
		if err != nil {
			return skipForbidden(err, "toggle_star")
		}

		p, err := t.LockProfile(ctx, authorID)
		if err != nil {
			return wrapStorageError(err, "failed to lock author's profile")
		}

		added, err := t.ToggleStar(ctx, authorID, u.ID)
		if err != nil {
			return wrapStorageError(err, "failed to toggle star")
		}

		delta := -1
		if added {
			delta = 1
		}

		if err := t.addRating(ctx, p, delta); err != nil {
			return err
		}

		if !added || authorID == u.ID {
			return nil
		}

		name, err := t.name(ctx, u)
		if err != nil {
			return err
		}

		return t.notices.Activity(ctx, authorID, u.ID, notice.AuthorStarred(name))
	})
}
