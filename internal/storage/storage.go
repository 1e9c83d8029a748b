// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Decentr-net/aegis/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
// Lock* methods return an entity and hold an exclusive lock on it until the end of transaction;
// outside of InTx they behave like Get* methods.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u *entities.User, p *entities.Profile) error
	GetUser(ctx context.Context, id string) (*entities.User, error)
	LockUser(ctx context.Context, id string) (*entities.User, error)
	SetBan(ctx context.Context, id string, ban entities.Ban) error

	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)
	LockProfile(ctx context.Context, userID string) (*entities.Profile, error)
	SetProfileRating(ctx context.Context, userID string, rating, contribution int) error
	ToggleStar(ctx context.Context, userID, starredBy string) (bool, error)

	CreateArticle(ctx context.Context, a *entities.Article) error
	GetArticle(ctx context.Context, id string) (*entities.Article, error)
	LockArticle(ctx context.Context, id string) (*entities.Article, error)
	SetArticleState(ctx context.Context, id string, st entities.ArticleState) error
	DeleteArticle(ctx context.Context, id string) error
	ToggleArticleLike(ctx context.Context, articleID, likedBy string) (bool, error)
	GetArticleCounters(ctx context.Context, articleID string) (*entities.ArticleCounters, error)

	GetArticleRating(ctx context.Context, articleID string) (*entities.ArticleRating, error)
	LockArticleRating(ctx context.Context, articleID string) (*entities.ArticleRating, error)
	SetArticleRating(ctx context.Context, articleID string, value int) error
	ListAuthorArticleRatings(ctx context.Context, author string) ([]int, error)

	CreateComment(ctx context.Context, c *entities.Comment) error
	GetComment(ctx context.Context, id string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	ToggleCommentLike(ctx context.Context, commentID, likedBy string) (bool, error)
	CreateReply(ctx context.Context, r *entities.Reply) error

	CreateTicket(ctx context.Context, t *entities.ModerationTicket) error
	LockTicket(ctx context.Context, id string) (*entities.ModerationTicket, error)
	UpdateTicket(ctx context.Context, id string, p *UpdateTicketParams) error
	CountTickets(ctx context.Context) ([]entities.TicketCount, error)
	CountModeratorTickets(ctx context.Context, moderator string) ([]entities.TicketCount, error)

	CreateNotice(ctx context.Context, n *entities.Notice) error
	ListUnreadNotices(ctx context.Context, kind entities.NoticeKind, recipient string) ([]*entities.Notice, error)
	MarkNoticeRead(ctx context.Context, kind entities.NoticeKind, id, recipient string) error
	MarkAllNoticesRead(ctx context.Context, kind entities.NoticeKind, recipient string) (int64, error)
}

// UpdateTicketParams ...
type UpdateTicketParams struct {
	Status    entities.TicketStatus
	Moderator *string
	UpdatedAt time.Time
}
