package moderation

import (
	"fmt"
	"time"

	"github.com/Decentr-net/aegis/internal/entities"
)

// BanTimeLayout is used to render ban expiration in notices.
const BanTimeLayout = "02.01.2006 15:04:05 MST"

// TemporaryBanDuration is used by moderator's quick ban.
const TemporaryBanDuration = 14 * 24 * time.Hour

// BanFragments compares ban fields field by field and returns notice fragments.
// Nil is returned when user should not be notified.
func BanFragments(before, after entities.Ban, now time.Time) []string {
	if before.Permanent != after.Permanent {
		if after.Permanent {
			return []string{"Your account has been banned by a moderator permanently."}
		}

		out := []string{"The permanent ban has been lifted from your account."}
		if after.TemporaryInEffect(now) {
			out = append(out, temporaryBanned(*after.Expiry))
		}

		return out
	}

	if after.Permanent || sameTime(before.Expiry, after.Expiry) {
		return nil
	}

	switch was, is := before.TemporaryInEffect(now), after.TemporaryInEffect(now); {
	case !was && is:
		return []string{temporaryBanned(*after.Expiry)}
	case was && !is:
		return []string{"The temporary ban has been lifted from your account."}
	default:
		// prolonged ban and changes of an already expired ban are not notified
		return nil
	}
}

func temporaryBanned(till time.Time) string {
	return fmt.Sprintf("Your account has been banned by a moderator until %s.", till.Format(BanTimeLayout))
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Equal(*b)
}
