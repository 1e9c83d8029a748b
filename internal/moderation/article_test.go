package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/aegis/internal/entities"
)

var (
	draft         = entities.ArticleState{Status: entities.DraftStatus}
	draftBlocked  = entities.ArticleState{Status: entities.DraftStatus, Blocked: true}
	active        = entities.ArticleState{Status: entities.ActiveStatus}
	activeBlocked = entities.ArticleState{Status: entities.ActiveStatus, Blocked: true}
)

func TestClassify(t *testing.T) {
	require.Equal(t, ForCorrection, Classify(draftBlocked))
	require.Equal(t, ForReModeration, Classify(activeBlocked))
	require.Equal(t, Regular, Classify(active))
	require.Equal(t, Regular, Classify(draft))
}

func TestNeedsReModeration(t *testing.T) {
	require.True(t, NeedsReModeration(draftBlocked, activeBlocked, true))
	require.True(t, NeedsReModeration(draftBlocked, active, true))
	require.False(t, NeedsReModeration(draftBlocked, activeBlocked, false), "moderator does not resubmit")
	require.False(t, NeedsReModeration(draft, active, true), "article was not blocked")
	require.False(t, NeedsReModeration(draftBlocked, draft, true), "status is not changed")
	require.False(t, NeedsReModeration(activeBlocked, draftBlocked, true))
}

func TestArticleFragments(t *testing.T) {
	const blockedFragment = "The article is blocked for publication. " +
		"To publish it again you need to correct it and get a moderator's approval."

	tt := []struct {
		name   string
		before entities.ArticleState
		after  entities.ArticleState
		want   []string
	}{
		{
			name:   "sent_for_correction",
			before: active,
			after:  draftBlocked,
			want: []string{
				`A moderator has sent your article "title" back for correction.`,
				blockedFragment,
			},
		},
		{
			name:   "failed_re_moderation",
			before: activeBlocked,
			after:  draftBlocked,
			want: []string{
				`Your article "title" has not passed moderation. Please be more careful, stricter measures may be taken next time.`,
				blockedFragment,
			},
		},
		{
			name:   "blocked_in_place",
			before: active,
			after:  activeBlocked,
			want:   []string{blockedFragment},
		},
		{
			name:   "block_lifted",
			before: activeBlocked,
			after:  active,
			want:   []string{`A moderator has lifted the block from your article "title". You can publish it again.`},
		},
		{
			name:   "archived",
			before: active,
			after:  entities.ArticleState{Status: entities.ArchivedStatus},
			want:   []string{},
		},
		{
			name:   "nothing_changed",
			before: draftBlocked,
			after:  draftBlocked,
			want:   []string{},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ArticleFragments("title", tc.before, tc.after))
		})
	}
}
