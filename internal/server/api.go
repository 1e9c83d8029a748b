package server

import (
	"github.com/Decentr-net/aegis/internal/entities"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// IntentResponse ...
// swagger:model
type IntentResponse struct {
	// Entity created by intent if any.
	Created interface{} `json:"created,omitempty"`
}

// Article ...
type Article struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Text      string `json:"text"`
	Status    string `json:"status"`
	Blocked   bool   `json:"blocked"`
	CreatedAt int64  `json:"createdAt"`
}

// Comment ...
type Comment struct {
	ID        string `json:"id"`
	ArticleID string `json:"articleId"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// Reply ...
type Reply struct {
	ID        string `json:"id"`
	CommentID string `json:"commentId"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// Ticket ...
type Ticket struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Subject   string  `json:"subject"`
	Moderator *string `json:"moderator,omitempty"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// RatingResponse ...
// swagger:model
type RatingResponse struct {
	Rating int `json:"rating"`
}

// Notice ...
// swagger:model
type Notice struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
}

// MarkReadResponse ...
// swagger:model
type MarkReadResponse struct {
	// Count of notices marked as read.
	Count int64 `json:"count"`
}

// TicketCount ...
// swagger:model
type TicketCount struct {
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func toAPICreated(v interface{}) interface{} {
	switch v := v.(type) {
	case *entities.Article:
		return Article{
			ID:        v.ID,
			Author:    v.Author,
			Category:  v.Category,
			Title:     v.Title,
			Subtitle:  v.Subtitle,
			Text:      v.Text,
			Status:    string(v.Status),
			Blocked:   v.Blocked,
			CreatedAt: v.CreatedAt.Unix(),
		}
	case *entities.Comment:
		return Comment{
			ID:        v.ID,
			ArticleID: v.ArticleID,
			Author:    v.Author,
			Text:      v.Text,
			CreatedAt: v.CreatedAt.Unix(),
		}
	case *entities.Reply:
		return Reply{
			ID:        v.ID,
			CommentID: v.CommentID,
			Author:    v.Author,
			Text:      v.Text,
			CreatedAt: v.CreatedAt.Unix(),
		}
	case *entities.ModerationTicket:
		return Ticket{
			ID:        v.ID,
			Kind:      string(v.Kind),
			Subject:   v.Subject,
			Moderator: v.Moderator,
			Status:    string(v.Status),
			CreatedAt: v.CreatedAt.Unix(),
			UpdatedAt: v.UpdatedAt.Unix(),
		}
	default:
		return nil
	}
}

func toAPINotices(l []*entities.Notice) []Notice {
	out := make([]Notice, len(l))
	for i, v := range l {
		out[i] = Notice{
			ID:        v.ID,
			Sender:    v.Sender,
			Message:   v.Message,
			CreatedAt: v.CreatedAt.Unix(),
		}
	}

	return out
}

func toAPITicketCounts(l []entities.TicketCount) []TicketCount {
	out := make([]TicketCount, len(l))
	for i, v := range l {
		out[i] = TicketCount{
			Kind:   string(v.Kind),
			Status: string(v.Status),
			Count:  v.Count,
		}
	}

	return out
}
