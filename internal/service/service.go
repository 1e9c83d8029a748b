// Package service contains interface for service business-logic.
// Every mutating method is a mutation intent: it receives the acting user explicitly, applies the primary change,
// recalculates derived ratings and creates notices and moderation tickets within one transaction.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/moderation"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrNotFound is returned when referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when actor is banned or is not allowed to perform an action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidTransition is returned when moderation ticket can not be moved to requested status.
	ErrInvalidTransition = moderation.ErrInvalidTransition
	// ErrInvalidRequest is returned when intent is malformed.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAlreadyExists ...
	ErrAlreadyExists = errors.New("already exists")
)

// Service ...
type Service interface {
	CreateUser(ctx context.Context, u *entities.User, p *entities.Profile) error
	SetBan(ctx context.Context, userID string, permanent bool, expiry *time.Time, actor string) error
	TempBan(ctx context.Context, userID string, actor string) error

	CreateArticle(ctx context.Context, a *entities.Article, actor string) error
	SetArticleStatus(ctx context.Context, articleID string, status entities.ArticleStatus, blocked bool, actor string) error
	DeleteArticle(ctx context.Context, articleID string, actor string) error
	ToggleLike(ctx context.Context, articleID string, actor string) error
	ToggleStar(ctx context.Context, authorID string, actor string) error

	PostComment(ctx context.Context, articleID string, text string, actor string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, commentID string, actor string) error
	ToggleCommentLike(ctx context.Context, commentID string, actor string) error
	PostReply(ctx context.Context, commentID string, text string, actor string) (*entities.Reply, error)

	ReportComment(ctx context.Context, commentID string, actor string) (*entities.ModerationTicket, error)
	AssignTicket(ctx context.Context, ticketID string, actor string) error
	AdvanceTicket(ctx context.Context, ticketID string, status entities.TicketStatus, actor string) error

	GetArticleRating(ctx context.Context, articleID string) (int, error)
	GetAuthorRating(ctx context.Context, userID string) (int, error)
	ListUnreadNotices(ctx context.Context, kind entities.NoticeKind, recipient string) ([]*entities.Notice, error)
	MarkNoticeRead(ctx context.Context, kind entities.NoticeKind, noticeID string, recipient string) error
	MarkAllNoticesRead(ctx context.Context, kind entities.NoticeKind, recipient string) (int64, error)
	CountTickets(ctx context.Context) ([]entities.TicketCount, error)
	CountModeratorTickets(ctx context.Context, moderator string) ([]entities.TicketCount, error)
}
