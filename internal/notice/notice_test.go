package notice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/storage/mock"
)

var timestamp = time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)

func now() time.Time { return timestamp }

func TestDispatcher_Account(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStorage(ctrl)
	d := New(s, now)

	s.EXPECT().CreateNotice(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *entities.Notice) error {
		assert.NotEmpty(t, n.ID)
		assert.Equal(t, entities.AccountNotice, n.Kind)
		assert.Equal(t, "user", n.Recipient)
		assert.Equal(t, "moderator", n.Sender)
		assert.Equal(t, "first\nsecond", n.Message)
		assert.False(t, n.IsRead)
		assert.Equal(t, timestamp, n.CreatedAt)
		return nil
	})

	require.NoError(t, d.Account(context.Background(), "user", "moderator", "first", "", "second"))
}

func TestDispatcher_Account_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStorage(ctrl)
	d := New(s, now)

	require.NoError(t, d.Account(context.Background(), "user", "moderator"))
	require.NoError(t, d.Account(context.Background(), "user", "moderator", "", ""))
}

func TestDispatcher_Self(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStorage(ctrl)
	d := New(s, now)

	require.NoError(t, d.Account(context.Background(), "user", "user", "message"))
	require.NoError(t, d.Activity(context.Background(), "user", "user", "message"))
}

func TestDispatcher_Activity(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStorage(ctrl)
	d := New(s, now)

	errTest := errors.New("test")

	s.EXPECT().CreateNotice(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *entities.Notice) error {
		assert.Equal(t, entities.ActivityNotice, n.Kind)
		assert.Equal(t, "message", n.Message)
		return nil
	})
	require.NoError(t, d.Activity(context.Background(), "author", "reader", "message"))

	s.EXPECT().CreateNotice(gomock.Any(), gomock.Any()).Return(errTest)
	require.True(t, errors.Is(d.Activity(context.Background(), "author", "reader", "message"), errTest))
}

func TestPreview(t *testing.T) {
	short := strings.Repeat("a", 60)
	require.Equal(t, short, Preview(short))

	long := strings.Repeat("б", 61)
	require.Equal(t, strings.Repeat("б", 60)+"...", Preview(long))
}

func TestMessages(t *testing.T) {
	require.Equal(t, "A moderator has removed your comment: text", CommentRemoved("text"))
	require.Equal(t, "bob liked your article: title", ArticleLiked("bob", "title"))
	require.Equal(t, "bob raised your rank!", AuthorStarred("bob"))
	require.Equal(t, "bob liked your comment: text", CommentLiked("bob", "text"))
	require.Equal(t, "bob left a comment on your article: title", ArticleCommented("bob", "title"))
}
