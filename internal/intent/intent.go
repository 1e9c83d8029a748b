// Package intent contains mutation intents and applies them to the service.
package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Decentr-net/aegis/internal/entities"
)

// ErrUnknownKind is returned when intent kind is not supported.
var ErrUnknownKind = errors.New("unknown intent kind")

// Kind is a name of intent in its wire form.
type Kind string

const (
	SetBanKind            Kind = "set_ban"
	TempBanKind           Kind = "temp_ban"
	CreateArticleKind     Kind = "create_article"
	SetArticleStatusKind  Kind = "set_article_status"
	DeleteArticleKind     Kind = "delete_article"
	ToggleLikeKind        Kind = "toggle_like"
	ToggleStarKind        Kind = "toggle_star"
	PostCommentKind       Kind = "post_comment"
	DeleteCommentKind     Kind = "delete_comment"
	ToggleCommentLikeKind Kind = "toggle_comment_like"
	PostReplyKind         Kind = "post_reply"
	ReportCommentKind     Kind = "report_comment"
	AssignTicketKind      Kind = "assign_ticket"
	AdvanceTicketKind     Kind = "advance_ticket"
)

// Anonymous returns true if intent of the kind is accepted without actor. Such intents are silently skipped.
func (k Kind) Anonymous() bool {
	switch k {
	case ToggleLikeKind, ToggleStarKind, ToggleCommentLikeKind:
		return true
	default:
		return false
	}
}

// Envelope is a wire form of intent.
type Envelope struct {
	Actor   string          `json:"actor"`
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// SetBan ...
type SetBan struct {
	UserID    string     `json:"user_id"`
	Permanent bool       `json:"permanent"`
	Expiry    *time.Time `json:"expiry,omitempty"`
}

// TempBan ...
type TempBan struct {
	UserID string `json:"user_id"`
}

// CreateArticle ...
type CreateArticle struct {
	ID       string                 `json:"id,omitempty"`
	Category string                 `json:"category"`
	Title    string                 `json:"title"`
	Subtitle string                 `json:"subtitle"`
	Text     string                 `json:"text"`
	Status   entities.ArticleStatus `json:"status"`
}

// SetArticleStatus ...
type SetArticleStatus struct {
	ArticleID string                 `json:"article_id"`
	Status    entities.ArticleStatus `json:"status"`
	Blocked   bool                   `json:"blocked"`
}

// DeleteArticle ...
type DeleteArticle struct {
	ArticleID string `json:"article_id"`
}

// ToggleLike ...
type ToggleLike struct {
	ArticleID string `json:"article_id"`
}

// ToggleStar ...
type ToggleStar struct {
	AuthorID string `json:"author_id"`
}

// PostComment ...
type PostComment struct {
	ArticleID string `json:"article_id"`
	Text      string `json:"text"`
}

// DeleteComment ...
type DeleteComment struct {
	CommentID string `json:"comment_id"`
}

// ToggleCommentLike ...
type ToggleCommentLike struct {
	CommentID string `json:"comment_id"`
}

// PostReply ...
type PostReply struct {
	CommentID string `json:"comment_id"`
	Text      string `json:"text"`
}

// ReportComment ...
type ReportComment struct {
	CommentID string `json:"comment_id"`
}

// AssignTicket ...
type AssignTicket struct {
	TicketID string `json:"ticket_id"`
}

// AdvanceTicket ...
type AdvanceTicket struct {
	TicketID string                `json:"ticket_id"`
	Status   entities.TicketStatus `json:"status"`
}

// Decode returns typed intent from its envelope.
func Decode(e Envelope) (interface{}, error) {
	var v interface{}

	switch e.Kind {
	case SetBanKind:
		v = &SetBan{}
	case TempBanKind:
		v = &TempBan{}
	case CreateArticleKind:
		v = &CreateArticle{}
	case SetArticleStatusKind:
		v = &SetArticleStatus{}
	case DeleteArticleKind:
		v = &DeleteArticle{}
	case ToggleLikeKind:
		v = &ToggleLike{}
	case ToggleStarKind:
		v = &ToggleStar{}
	case PostCommentKind:
		v = &PostComment{}
	case DeleteCommentKind:
		v = &DeleteComment{}
	case ToggleCommentLikeKind:
		v = &ToggleCommentLike{}
	case PostReplyKind:
		v = &PostReply{}
	case ReportCommentKind:
		v = &ReportComment{}
	case AssignTicketKind:
		v = &AssignTicket{}
	case AdvanceTicketKind:
		v = &AdvanceTicket{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}

	if len(e.Payload) == 0 {
		return nil, fmt.Errorf("payload of %s is empty", e.Kind)
	}

	if err := json.Unmarshal(e.Payload, v); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", e.Kind, err)
	}

	return v, nil
}
