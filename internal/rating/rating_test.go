package rating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArticle(t *testing.T) {
	tt := []struct {
		name     string
		likes    int
		comments int
		want     int
	}{
		{name: "empty", want: 0},
		{name: "likes only", likes: 3, want: 3},
		{name: "four comments give nothing", comments: 4, want: 0},
		{name: "five comments give one point", comments: 5, want: 1},
		{name: "mixed", likes: 3, comments: 7, want: 4},
		{name: "negative drift", likes: -3, comments: 1, want: 0},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Article(tc.likes, tc.comments))
		})
	}
}

func TestContribution(t *testing.T) {
	require.Zero(t, Contribution(nil))
	require.Equal(t, 7, Contribution([]int{7}))
	require.Equal(t, 2, Contribution([]int{1, 2, 3}))
	require.Equal(t, 2, Contribution([]int{1, 2}))
	require.Equal(t, 1, Contribution([]int{0, 1, 1}))
}

func TestAuthor(t *testing.T) {
	require.Equal(t, 5, Author(4, 1, 2))
	require.Equal(t, 2, Author(0, 3, 2), "drift must be clamped before adding")
	require.Equal(t, 0, Author(1, 1, 0))
}

func TestAdd(t *testing.T) {
	require.Equal(t, 1, Add(0, 1))
	require.Equal(t, 0, Add(0, -1))
	require.Equal(t, 2, Add(3, -1))
}
