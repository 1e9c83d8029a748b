package moderation

import (
	"fmt"

	"github.com/Decentr-net/aegis/internal/entities"
)

// Classification describes the meaning of article's status and blocked flag combination.
type Classification string

const (
	// Regular article is not touched by moderation.
	Regular Classification = "regular"
	// ForCorrection means that article was sent back to author.
	ForCorrection Classification = "for_correction"
	// ForReModeration means that article was corrected and published but awaits moderator.
	ForReModeration Classification = "for_re_moderation"
)

// Classify ...
func Classify(st entities.ArticleState) Classification {
	switch {
	case st.Blocked && st.Status == entities.DraftStatus:
		return ForCorrection
	case st.Blocked && st.Status == entities.ActiveStatus:
		return ForReModeration
	default:
		return Regular
	}
}

// NeedsReModeration returns true if author resubmits corrected article:
// it was blocked and moved from draft to active by its own author.
func NeedsReModeration(before, after entities.ArticleState, byAuthor bool) bool {
	if !byAuthor || !before.Blocked || before.Status == after.Status {
		return false
	}

	return before.Status == entities.DraftStatus && after.Status == entities.ActiveStatus
}

// ArticleFragments returns fragments of the notice sent to the author when moderator changes article's state.
// The first fragment explains status change, the second one explains blocking. Empty fragments are omitted.
func ArticleFragments(title string, before, after entities.ArticleState) []string {
	var status, block string

	if before.Status == entities.ActiveStatus && after.Status == entities.DraftStatus {
		switch {
		case !before.Blocked && after.Blocked:
			status = fmt.Sprintf("A moderator has sent your article %q back for correction.", title)
		case before.Blocked && after.Blocked:
			status = fmt.Sprintf("Your article %q has not passed moderation. "+
				"Please be more careful, stricter measures may be taken next time.", title)
		}
	}

	if after.Blocked && (before.Status != after.Status || !before.Blocked) {
		block = "The article is blocked for publication. " +
			"To publish it again you need to correct it and get a moderator's approval."
	}

	if before.Blocked && !after.Blocked {
		status = fmt.Sprintf("A moderator has lifted the block from your article %q. "+
			"You can publish it again.", title)
	}

	out := make([]string, 0, 2)
	for _, v := range []string{status, block} {
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}
