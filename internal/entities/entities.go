// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Role ...
type Role string

const (
	// RegularRole ...
	RegularRole Role = "regular"
	// ModeratorRole ...
	ModeratorRole Role = "moderator"
)

// User ...
type User struct {
	ID        string
	Username  string
	Role      Role
	Banned    bool
	BanExpiry *time.Time
	CreatedAt time.Time
}

// IsModerator ...
func (u User) IsModerator() bool {
	return u.Role == ModeratorRole
}

// Ban returns snapshot of user's ban fields.
func (u User) Ban() Ban {
	return Ban{Permanent: u.Banned, Expiry: u.BanExpiry}
}

// IsBanned returns true if user is banned permanently or temporary ban is still in effect at now.
func (u User) IsBanned(now time.Time) bool {
	return u.Ban().InEffect(now)
}

// Ban is a snapshot of user's ban fields.
type Ban struct {
	Permanent bool
	Expiry    *time.Time
}

// InEffect ...
func (b Ban) InEffect(now time.Time) bool {
	return b.Permanent || b.TemporaryInEffect(now)
}

// TemporaryInEffect returns true if temporary ban expires after now.
func (b Ban) TemporaryInEffect(now time.Time) bool {
	return b.Expiry != nil && b.Expiry.After(now)
}

// Profile is an author profile. It is created together with user.
type Profile struct {
	UserID      string
	DisplayName string
	Bio         string
	Avatar      string
	Stars       uint32
	Rating      int
	// LastArticleRatingContribution is the part of Rating which came from articles' ratings last time.
	LastArticleRatingContribution int
}

// ArticleStatus ...
type ArticleStatus string

const (
	// DraftStatus ...
	DraftStatus ArticleStatus = "D"
	// ActiveStatus ...
	ActiveStatus ArticleStatus = "A"
	// ArchivedStatus ...
	ArchivedStatus ArticleStatus = "H"
)

// Valid ...
func (s ArticleStatus) Valid() bool {
	switch s {
	case DraftStatus, ActiveStatus, ArchivedStatus:
		return true
	default:
		return false
	}
}

// Article ...
type Article struct {
	ID        string
	Author    string
	Category  string
	Title     string
	Subtitle  string
	Text      string
	Status    ArticleStatus
	Blocked   bool
	CreatedAt time.Time
}

// ArticleState is a snapshot of article's moderation fields.
type ArticleState struct {
	Status  ArticleStatus
	Blocked bool
}

// State ...
func (a Article) State() ArticleState {
	return ArticleState{Status: a.Status, Blocked: a.Blocked}
}

// ArticleRating ...
type ArticleRating struct {
	ArticleID string
	Author    string
	Value     int
}

// ArticleCounters contains raw counters rating is calculated from.
type ArticleCounters struct {
	Likes    int
	Comments int
}

// Comment ...
type Comment struct {
	ID        string
	ArticleID string
	Author    string
	Text      string
	CreatedAt time.Time
}

// Reply is an answer to a comment.
type Reply struct {
	ID        string
	CommentID string
	Author    string
	Text      string
	CreatedAt time.Time
}

// TicketKind ...
type TicketKind string

const (
	// CommentReportTicket is created when comment asks for moderator.
	CommentReportTicket TicketKind = "comment_report"
	// ArticleReModerationTicket is created when author resubmits blocked article.
	ArticleReModerationTicket TicketKind = "article_re_moderation"
)

// Valid ...
func (k TicketKind) Valid() bool {
	return k == CommentReportTicket || k == ArticleReModerationTicket
}

// TicketStatus ...
type TicketStatus string

const (
	// NewTicket ...
	NewTicket TicketStatus = "N"
	// AssignedTicket ...
	AssignedTicket TicketStatus = "A"
	// UnderConsiderationTicket ...
	UnderConsiderationTicket TicketStatus = "U"
	// ReviewedTicket ...
	ReviewedTicket TicketStatus = "R"
)

// ModerationTicket ...
type ModerationTicket struct {
	ID        string
	Kind      TicketKind
	Subject   string
	Moderator *string
	Status    TicketStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TicketCount is a number of tickets with the same kind and status.
type TicketCount struct {
	Kind   TicketKind
	Status TicketStatus
	Count  int
}

// NoticeKind ...
type NoticeKind string

const (
	// AccountNotice is sent by moderator: bans, blocks, removals.
	AccountNotice NoticeKind = "account"
	// ActivityNotice is sent by other users' activity: likes, stars, comments.
	ActivityNotice NoticeKind = "activity"
)

// Valid ...
func (k NoticeKind) Valid() bool {
	return k == AccountNotice || k == ActivityNotice
}

// Notice ...
type Notice struct {
	ID        string
	Kind      NoticeKind
	Recipient string
	// Sender is an issuing moderator for account notices and an acting user for activity notices.
	Sender    string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
