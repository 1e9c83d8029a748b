package intent

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/metrics"
	"github.com/Decentr-net/aegis/internal/service"
)

//go:generate mockgen -destination=./mock/applier.go -package=mock -source=applier.go

var log = logrus.WithField("layer", "intent").WithField("package", "intent")

// Applier applies decoded intents on behalf of actor.
type Applier interface {
	// Apply returns created entity for intents which create one (comment, reply, ticket, article) and nil otherwise.
	Apply(ctx context.Context, actor string, v interface{}) (interface{}, error)
}

type applier struct {
	srv service.Service
}

// New returns new instance of Applier.
func New(srv service.Service) Applier {
	return applier{
		srv: srv,
	}
}

func (a applier) Apply(ctx context.Context, actor string, v interface{}) (interface{}, error) {
	start := time.Now()

	kind, out, err := a.apply(ctx, actor, v)

	metrics.ObserveIntent(string(kind), err, time.Since(start))

	if err != nil {
		log.WithField("kind", kind).WithField("actor", actor).WithError(err).Debug("intent is rejected")
		return nil, err
	}

	return out, nil
}

func (a applier) apply(ctx context.Context, actor string, v interface{}) (Kind, interface{}, error) {
	switch v := v.(type) {
	case *SetBan:
		return SetBanKind, nil, a.srv.SetBan(ctx, v.UserID, v.Permanent, v.Expiry, actor)

	case *TempBan:
		return TempBanKind, nil, a.srv.TempBan(ctx, v.UserID, actor)

	case *CreateArticle:
		article := &entities.Article{
			ID:       v.ID,
			Category: v.Category,
			Title:    v.Title,
			Subtitle: v.Subtitle,
			Text:     v.Text,
			Status:   v.Status,
		}
		if err := a.srv.CreateArticle(ctx, article, actor); err != nil {
			return CreateArticleKind, nil, err
		}
		return CreateArticleKind, article, nil

	case *SetArticleStatus:
		return SetArticleStatusKind, nil, a.srv.SetArticleStatus(ctx, v.ArticleID, v.Status, v.Blocked, actor)

	case *DeleteArticle:
		return DeleteArticleKind, nil, a.srv.DeleteArticle(ctx, v.ArticleID, actor)

	case *ToggleLike:
		return ToggleLikeKind, nil, a.srv.ToggleLike(ctx, v.ArticleID, actor)

	case *ToggleStar:
		return ToggleStarKind, nil, a.srv.ToggleStar(ctx, v.AuthorID, actor)

	case *PostComment:
		c, err := a.srv.PostComment(ctx, v.ArticleID, v.Text, actor)
		if err != nil {
			return PostCommentKind, nil, err
		}
		return PostCommentKind, c, nil

	case *DeleteComment:
		return DeleteCommentKind, nil, a.srv.DeleteComment(ctx, v.CommentID, actor)

	case *ToggleCommentLike:
		return ToggleCommentLikeKind, nil, a.srv.ToggleCommentLike(ctx, v.CommentID, actor)

	case *PostReply:
		r, err := a.srv.PostReply(ctx, v.CommentID, v.Text, actor)
		if err != nil {
			return PostReplyKind, nil, err
		}
		return PostReplyKind, r, nil

	case *ReportComment:
		t, err := a.srv.ReportComment(ctx, v.CommentID, actor)
		if err != nil {
			return ReportCommentKind, nil, err
		}
		return ReportCommentKind, t, nil

	case *AssignTicket:
		return AssignTicketKind, nil, a.srv.AssignTicket(ctx, v.TicketID, actor)

	case *AdvanceTicket:
		return AdvanceTicketKind, nil, a.srv.AdvanceTicket(ctx, v.TicketID, v.Status, actor)

	default:
		return "unknown", nil, fmt.Errorf("%w: %T", ErrUnknownKind, v)
	}
}
