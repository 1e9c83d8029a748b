package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/storage"
)

var (
	ctx       = context.Background()
	timestamp = time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newStorage(t *testing.T, users ...string) storage.Storage {
	s := New()

	for _, v := range users {
		require.NoError(t, s.CreateUser(ctx,
			&entities.User{ID: v, Username: v, Role: entities.RegularRole, CreatedAt: timestamp},
			&entities.Profile{DisplayName: v},
		))
	}

	return s
}

func createArticle(t *testing.T, s storage.Storage, id, author string) {
	require.NoError(t, s.CreateArticle(ctx, &entities.Article{
		ID:        id,
		Author:    author,
		Title:     id,
		Status:    entities.ActiveStatus,
		CreatedAt: timestamp,
	}))
}

func createComment(t *testing.T, s storage.Storage, id, article, author string) {
	require.NoError(t, s.CreateComment(ctx, &entities.Comment{
		ID:        id,
		ArticleID: article,
		Author:    author,
		Text:      "text",
		CreatedAt: timestamp,
	}))
}

func TestMemory_InTx(t *testing.T) {
	s := newStorage(t, "alice")
	errTest := errors.New("test")

	require.True(t, errors.Is(s.InTx(ctx, func(s storage.Storage) error {
		require.NoError(t, s.SetProfileRating(ctx, "alice", 10, 1))
		return errTest
	}), errTest))

	p, err := s.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Rating)

	require.NoError(t, s.InTx(ctx, func(s storage.Storage) error {
		require.Error(t, s.InTx(ctx, func(storage.Storage) error { return nil }))
		return s.SetProfileRating(ctx, "alice", 10, 1)
	}))

	p, err = s.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Rating)
	assert.Equal(t, 1, p.LastArticleRatingContribution)
}

func TestMemory_InTx_Canceled(t *testing.T) {
	s := newStorage(t, "alice")

	c, cancel := context.WithCancel(ctx)

	require.True(t, errors.Is(s.InTx(c, func(s storage.Storage) error {
		cancel()
		return s.SetProfileRating(ctx, "alice", 10, 1)
	}), context.Canceled))

	p, err := s.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Rating)
}

func TestMemory_User(t *testing.T) {
	s := newStorage(t, "alice")

	require.True(t, errors.Is(s.CreateUser(ctx, &entities.User{ID: "alice", Username: "x"}, &entities.Profile{}),
		storage.ErrAlreadyExists))
	require.True(t, errors.Is(s.CreateUser(ctx, &entities.User{ID: "x", Username: "alice"}, &entities.Profile{}),
		storage.ErrAlreadyExists))

	expiry := timestamp.Add(time.Hour)
	require.NoError(t, s.SetBan(ctx, "alice", entities.Ban{Expiry: &expiry}))

	// returned entity does not share memory with storage
	u, err := s.GetUser(ctx, "alice")
	require.NoError(t, err)
	*u.BanExpiry = timestamp
	u, err = s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, expiry, *u.BanExpiry)
	assert.True(t, u.IsBanned(timestamp))

	require.NoError(t, s.InTx(ctx, func(s storage.Storage) error {
		u, err := s.LockUser(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, expiry, *u.BanExpiry)
		return nil
	}))

	require.True(t, errors.Is(s.SetBan(ctx, "bob", entities.Ban{}), storage.ErrNotFound))
	_, err = s.GetUser(ctx, "bob")
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.LockUser(ctx, "bob")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestMemory_ToggleStar(t *testing.T) {
	s := newStorage(t, "alice", "bob")

	added, err := s.ToggleStar(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, added)

	p, err := s.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, p.Stars)

	added, err = s.ToggleStar(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, added)

	p, err = s.GetProfile(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, p.Stars)

	_, err = s.ToggleStar(ctx, "alice", "carol")
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.ToggleStar(ctx, "carol", "alice")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestMemory_SetProfileRating_Negative(t *testing.T) {
	s := newStorage(t, "alice")

	require.Error(t, s.SetProfileRating(ctx, "alice", -1, 0))
	require.True(t, errors.Is(s.SetProfileRating(ctx, "bob", 1, 0), storage.ErrNotFound))
}

func TestMemory_Article(t *testing.T) {
	s := newStorage(t, "alice", "bob")
	createArticle(t, s, "a1", "alice")
	createArticle(t, s, "a2", "alice")

	require.True(t, errors.Is(s.CreateArticle(ctx, &entities.Article{ID: "a1", Author: "alice"}),
		storage.ErrAlreadyExists))
	require.True(t, errors.Is(s.CreateArticle(ctx, &entities.Article{ID: "a3", Author: "carol"}),
		storage.ErrNotFound))

	r, err := s.GetArticleRating(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entities.ArticleRating{ArticleID: "a1", Author: "alice"}, *r)

	require.NoError(t, s.SetArticleState(ctx, "a1", entities.ArticleState{Status: entities.DraftStatus, Blocked: true}))
	a, err := s.LockArticle(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entities.ArticleState{Status: entities.DraftStatus, Blocked: true}, a.State())

	require.NoError(t, s.SetArticleRating(ctx, "a1", 3))
	require.Error(t, s.SetArticleRating(ctx, "a1", -1))

	ratings, err := s.ListAuthorArticleRatings(ctx, "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 0}, ratings)

	ratings, err = s.ListAuthorArticleRatings(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestMemory_ArticleCounters(t *testing.T) {
	s := newStorage(t, "alice", "bob")
	createArticle(t, s, "a1", "alice")

	added, err := s.ToggleArticleLike(ctx, "a1", "bob")
	require.NoError(t, err)
	assert.True(t, added)
	createComment(t, s, "c1", "a1", "bob")
	createComment(t, s, "c2", "a1", "alice")

	c, err := s.GetArticleCounters(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entities.ArticleCounters{Likes: 1, Comments: 2}, *c)

	added, err = s.ToggleArticleLike(ctx, "a1", "bob")
	require.NoError(t, err)
	assert.False(t, added)
	require.NoError(t, s.DeleteComment(ctx, "c1"))

	c, err = s.GetArticleCounters(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entities.ArticleCounters{Likes: 0, Comments: 1}, *c)

	_, err = s.GetArticleCounters(ctx, "a2")
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.ToggleArticleLike(ctx, "a2", "bob")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestMemory_DeleteArticle(t *testing.T) {
	s := newStorage(t, "alice", "bob")
	createArticle(t, s, "a1", "alice")
	createComment(t, s, "c1", "a1", "bob")
	require.NoError(t, s.CreateReply(ctx, &entities.Reply{ID: "r1", CommentID: "c1", Author: "alice", Text: "reply"}))
	_, err := s.ToggleArticleLike(ctx, "a1", "bob")
	require.NoError(t, err)
	_, err = s.ToggleCommentLike(ctx, "c1", "alice")
	require.NoError(t, err)
	require.NoError(t, s.CreateTicket(ctx, &entities.ModerationTicket{
		ID: "t1", Kind: entities.CommentReportTicket, Subject: "c1", Status: entities.NewTicket,
	}))
	require.NoError(t, s.CreateTicket(ctx, &entities.ModerationTicket{
		ID: "t2", Kind: entities.ArticleReModerationTicket, Subject: "a1", Status: entities.NewTicket,
	}))

	require.NoError(t, s.DeleteArticle(ctx, "a1"))

	_, err = s.GetArticle(ctx, "a1")
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.GetArticleRating(ctx, "a1")
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.GetComment(ctx, "c1")
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.LockTicket(ctx, "t1")
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.LockTicket(ctx, "t2")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	c, err := s.CountTickets(ctx)
	require.NoError(t, err)
	assert.Empty(t, c)

	require.True(t, errors.Is(s.DeleteArticle(ctx, "a1"), storage.ErrNotFound))
}

func TestMemory_Comment(t *testing.T) {
	s := newStorage(t, "alice", "bob")
	createArticle(t, s, "a1", "alice")
	createComment(t, s, "c1", "a1", "bob")

	require.True(t, errors.Is(s.CreateComment(ctx, &entities.Comment{ID: "c2", ArticleID: "a2", Author: "bob"}),
		storage.ErrNotFound))
	require.True(t, errors.Is(s.CreateComment(ctx, &entities.Comment{ID: "c2", ArticleID: "a1", Author: "carol"}),
		storage.ErrNotFound))

	c, err := s.GetComment(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, entities.Comment{ID: "c1", ArticleID: "a1", Author: "bob", Text: "text", CreatedAt: timestamp}, *c)

	added, err := s.ToggleCommentLike(ctx, "c1", "alice")
	require.NoError(t, err)
	assert.True(t, added)

	require.True(t, errors.Is(s.CreateReply(ctx, &entities.Reply{ID: "r1", CommentID: "c2"}), storage.ErrNotFound))
	require.True(t, errors.Is(s.DeleteComment(ctx, "c2"), storage.ErrNotFound))
}

func TestMemory_Tickets(t *testing.T) {
	s := newStorage(t, "alice", "mod")
	createArticle(t, s, "a1", "alice")
	createComment(t, s, "c1", "a1", "alice")

	for _, v := range []entities.ModerationTicket{
		{ID: "t1", Kind: entities.CommentReportTicket, Subject: "c1", Status: entities.NewTicket},
		{ID: "t2", Kind: entities.CommentReportTicket, Subject: "c1", Status: entities.NewTicket},
		{ID: "t3", Kind: entities.ArticleReModerationTicket, Subject: "a1", Status: entities.NewTicket},
	} {
		v := v
		require.NoError(t, s.CreateTicket(ctx, &v))
	}

	require.True(t, errors.Is(s.CreateTicket(ctx, &entities.ModerationTicket{
		ID: "t4", Kind: entities.CommentReportTicket, Subject: "c2",
	}), storage.ErrNotFound))
	require.Error(t, s.CreateTicket(ctx, &entities.ModerationTicket{ID: "t4", Kind: "unknown", Subject: "c1"}))

	mod := "mod"
	require.NoError(t, s.UpdateTicket(ctx, "t1", &storage.UpdateTicketParams{
		Status: entities.AssignedTicket, Moderator: &mod, UpdatedAt: timestamp,
	}))
	require.NoError(t, s.UpdateTicket(ctx, "t3", &storage.UpdateTicketParams{
		Status: entities.ReviewedTicket, Moderator: &mod, UpdatedAt: timestamp,
	}))

	ghost := "ghost"
	require.True(t, errors.Is(s.UpdateTicket(ctx, "t2", &storage.UpdateTicketParams{
		Status: entities.AssignedTicket, Moderator: &ghost,
	}), storage.ErrNotFound))
	require.True(t, errors.Is(s.UpdateTicket(ctx, "t5", &storage.UpdateTicketParams{}), storage.ErrNotFound))

	ticket, err := s.LockTicket(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, entities.AssignedTicket, ticket.Status)
	require.NotNil(t, ticket.Moderator)
	assert.Equal(t, "mod", *ticket.Moderator)
	assert.Equal(t, "c1", ticket.Subject)

	c, err := s.CountTickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.TicketCount{
		{Kind: entities.ArticleReModerationTicket, Status: entities.ReviewedTicket, Count: 1},
		{Kind: entities.CommentReportTicket, Status: entities.AssignedTicket, Count: 1},
		{Kind: entities.CommentReportTicket, Status: entities.NewTicket, Count: 1},
	}, c)

	c, err = s.CountModeratorTickets(ctx, "mod")
	require.NoError(t, err)
	assert.Equal(t, []entities.TicketCount{
		{Kind: entities.CommentReportTicket, Status: entities.AssignedTicket, Count: 1},
	}, c)
}

func TestMemory_Notices(t *testing.T) {
	s := newStorage(t, "alice", "bob")

	for i, v := range []string{"n1", "n2", "n3"} {
		require.NoError(t, s.CreateNotice(ctx, &entities.Notice{
			ID:        v,
			Kind:      entities.ActivityNotice,
			Recipient: "alice",
			Sender:    "bob",
			Message:   v,
			CreatedAt: timestamp.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, s.CreateNotice(ctx, &entities.Notice{
		ID: "n4", Kind: entities.AccountNotice, Recipient: "alice", Sender: "mod", Message: "account",
	}))

	require.True(t, errors.Is(s.CreateNotice(ctx, &entities.Notice{
		ID: "n5", Kind: entities.AccountNotice, Recipient: "carol",
	}), storage.ErrNotFound))
	require.Error(t, s.CreateNotice(ctx, &entities.Notice{ID: "n5", Kind: "unknown", Recipient: "alice"}))

	l, err := s.ListUnreadNotices(ctx, entities.ActivityNotice, "alice")
	require.NoError(t, err)
	require.Len(t, l, 3)
	assert.Equal(t, "n3", l[0].ID)
	assert.Equal(t, "n1", l[2].ID)

	require.NoError(t, s.MarkNoticeRead(ctx, entities.ActivityNotice, "n2", "alice"))
	require.True(t, errors.Is(s.MarkNoticeRead(ctx, entities.ActivityNotice, "n1", "bob"), storage.ErrNotFound))
	require.True(t, errors.Is(s.MarkNoticeRead(ctx, entities.AccountNotice, "n1", "alice"), storage.ErrNotFound))

	l, err = s.ListUnreadNotices(ctx, entities.ActivityNotice, "alice")
	require.NoError(t, err)
	require.Len(t, l, 2)

	n, err := s.MarkAllNoticesRead(ctx, entities.ActivityNotice, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	l, err = s.ListUnreadNotices(ctx, entities.ActivityNotice, "alice")
	require.NoError(t, err)
	assert.Empty(t, l)

	l, err = s.ListUnreadNotices(ctx, entities.AccountNotice, "alice")
	require.NoError(t, err)
	require.Len(t, l, 1)
	assert.Equal(t, "mod", l[0].Sender)
}
