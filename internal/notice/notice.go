// Package notice creates account and activity notices.
package notice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/aegis/internal/entities"
)

var log = logrus.WithField("layer", "service").WithField("package", "notice")

// previewLength is a maximal count of runes of a comment quoted in notices.
const previewLength = 60

// Creator persists notices.
type Creator interface {
	CreateNotice(ctx context.Context, n *entities.Notice) error
}

// Dispatcher creates one notice per call. It never changes other entities.
type Dispatcher struct {
	c   Creator
	now func() time.Time
}

// New creates new instance of Dispatcher.
func New(c Creator, now func() time.Time) Dispatcher {
	return Dispatcher{
		c:   c,
		now: now,
	}
}

// Account creates notice from moderator. Fragments are joined into one message.
// Nothing is created when all fragments are empty or moderator is the recipient.
func (d Dispatcher) Account(ctx context.Context, recipient, moderator string, fragments ...string) error {
	parts := make([]string, 0, len(fragments))
	for _, v := range fragments {
		if v != "" {
			parts = append(parts, v)
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return d.create(ctx, entities.AccountNotice, recipient, moderator, strings.Join(parts, "\n"))
}

// Activity creates notice about other user's activity.
func (d Dispatcher) Activity(ctx context.Context, recipient, sender, message string) error {
	return d.create(ctx, entities.ActivityNotice, recipient, sender, message)
}

func (d Dispatcher) create(ctx context.Context, kind entities.NoticeKind, recipient, sender, message string) error {
	if recipient == sender {
		log.WithField("recipient", recipient).WithField("kind", kind).Debug("skip notice to self")
		return nil
	}

	if err := d.c.CreateNotice(ctx, &entities.Notice{
		ID:        uuid.New().String(),
		Kind:      kind,
		Recipient: recipient,
		Sender:    sender,
		Message:   message,
		CreatedAt: d.now().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to create %s notice: %w", kind, err)
	}

	return nil
}

// Preview cuts text to previewLength runes and adds ellipsis if text is longer.
func Preview(text string) string {
	r := []rune(text)
	if len(r) <= previewLength {
		return text
	}

	return string(r[:previewLength]) + "..."
}

// CommentRemoved ...
func CommentRemoved(text string) string {
	return fmt.Sprintf("A moderator has removed your comment: %s", Preview(text))
}

// ArticleLiked ...
func ArticleLiked(sender, title string) string {
	return fmt.Sprintf("%s liked your article: %s", sender, title)
}

// AuthorStarred ...
func AuthorStarred(sender string) string {
	return fmt.Sprintf("%s raised your rank!", sender)
}

// CommentLiked ...
func CommentLiked(sender, text string) string {
	return fmt.Sprintf("%s liked your comment: %s", sender, Preview(text))
}

// ArticleCommented ...
func ArticleCommented(sender, title string) string {
	return fmt.Sprintf("%s left a comment on your article: %s", sender, title)
}
