// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type userDTO struct {
	ID        string       `db:"id"`
	Username  string       `db:"username"`
	Role      string       `db:"role"`
	Banned    bool         `db:"banned"`
	BanExpiry sql.NullTime `db:"ban_expiry"`
	CreatedAt time.Time    `db:"created_at"`
}

type profileDTO struct {
	UserID       string `db:"user_id"`
	DisplayName  string `db:"display_name"`
	Bio          string `db:"bio"`
	Avatar       string `db:"avatar"`
	Stars        uint32 `db:"stars"`
	Rating       int    `db:"rating"`
	Contribution int    `db:"last_article_rating_contribution"`
}

type articleDTO struct {
	ID        string    `db:"id"`
	Author    string    `db:"author"`
	Category  string    `db:"category"`
	Title     string    `db:"title"`
	Subtitle  string    `db:"subtitle"`
	Text      string    `db:"text"`
	Status    string    `db:"status"`
	Blocked   bool      `db:"blocked"`
	CreatedAt time.Time `db:"created_at"`
}

type articleRatingDTO struct {
	ArticleID string `db:"article_id"`
	Author    string `db:"author"`
	Value     int    `db:"value"`
}

type commentDTO struct {
	ID        string    `db:"id"`
	ArticleID string    `db:"article_id"`
	Author    string    `db:"author"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type ticketDTO struct {
	ID        string         `db:"id"`
	Kind      string         `db:"kind"`
	CommentID sql.NullString `db:"comment_id"`
	ArticleID sql.NullString `db:"article_id"`
	Moderator sql.NullString `db:"moderator"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type ticketCountDTO struct {
	Kind   string `db:"kind"`
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type noticeDTO struct {
	ID        string    `db:"id"`
	Recipient string    `db:"recipient"`
	Sender    string    `db:"sender"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return nil
	}

	return db.PingContext(ctx)
}

func (s pg) CreateUser(ctx context.Context, u *entities.User, p *entities.Profile) error {
	user := userDTO{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Banned:    u.Banned,
		BanExpiry: toNullTime(u.BanExpiry),
		CreatedAt: u.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO "user"(id, username, role, banned, ban_expiry, created_at)
			VALUES(:id, :username, :role, :banned, :ban_expiry, :created_at)
		`, user,
	); err != nil {
		return wrapExecError(err)
	}

	profile := profileDTO{
		UserID:      u.ID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Avatar:      p.Avatar,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO author_profile(user_id, display_name, bio, avatar)
			VALUES(:user_id, :display_name, :bio, :avatar)
		`, profile,
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

const userSelect = `SELECT id, username, role, banned, ban_expiry, created_at FROM "user" WHERE id = $1`

func (s pg) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return s.getUser(ctx, userSelect, id)
}

func (s pg) LockUser(ctx context.Context, id string) (*entities.User, error) {
	// NO KEY UPDATE does not block foreign key checks of rows referencing the user.
	return s.getUser(ctx, userSelect+` FOR NO KEY UPDATE`, id)
}

func (s pg) getUser(ctx context.Context, query, id string) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u, query, id); err != nil {
		return nil, wrapQueryError(err)
	}

	return toUser(u), nil
}

func (s pg) SetBan(ctx context.Context, id string, ban entities.Ban) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE "user" SET banned=$2, ban_expiry=$3 WHERE id=$1`,
		id, ban.Permanent, toNullTime(ban.Expiry),
	)

	return checkAffected(res, err)
}

const profileSelect = `
	SELECT p.user_id, p.display_name, p.bio, p.avatar, p.rating, p.last_article_rating_contribution,
		(SELECT count(*) FROM star WHERE star.user_id = p.user_id) AS stars
	FROM author_profile p
	WHERE p.user_id = $1
`

func (s pg) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	return s.getProfile(ctx, profileSelect, userID)
}

func (s pg) LockProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	return s.getProfile(ctx, profileSelect+` FOR UPDATE OF p`, userID)
}

func (s pg) getProfile(ctx context.Context, query, userID string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, query, userID); err != nil {
		return nil, wrapQueryError(err)
	}

	return &entities.Profile{
		UserID:                        p.UserID,
		DisplayName:                   p.DisplayName,
		Bio:                           p.Bio,
		Avatar:                        p.Avatar,
		Stars:                         p.Stars,
		Rating:                        p.Rating,
		LastArticleRatingContribution: p.Contribution,
	}, nil
}

func (s pg) SetProfileRating(ctx context.Context, userID string, rating, contribution int) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE author_profile SET rating=$2, last_article_rating_contribution=$3 WHERE user_id=$1`,
		userID, rating, contribution,
	)

	return checkAffected(res, err)
}

func (s pg) ToggleStar(ctx context.Context, userID, starredBy string) (bool, error) {
	return s.toggle(ctx, "star", "user_id", "starred_by", userID, starredBy)
}

func (s pg) CreateArticle(ctx context.Context, a *entities.Article) error {
	article := articleDTO{
		ID:        a.ID,
		Author:    a.Author,
		Category:  a.Category,
		Title:     a.Title,
		Subtitle:  a.Subtitle,
		Text:      a.Text,
		Status:    string(a.Status),
		Blocked:   a.Blocked,
		CreatedAt: a.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO article(id, author, category, title, subtitle, text, status, blocked, created_at)
			VALUES(:id, :author, :category, :title, :subtitle, :text, :status, :blocked, :created_at)
		`, article,
	); err != nil {
		return wrapExecError(err)
	}

	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO article_rating(article_id, author, value) VALUES($1, $2, 0)`,
		a.ID, a.Author,
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

const articleSelect = `
	SELECT id, author, category, title, subtitle, text, status, blocked, created_at
	FROM article
	WHERE id = $1
`

func (s pg) GetArticle(ctx context.Context, id string) (*entities.Article, error) {
	return s.getArticle(ctx, articleSelect, id)
}

func (s pg) LockArticle(ctx context.Context, id string) (*entities.Article, error) {
	return s.getArticle(ctx, articleSelect+` FOR UPDATE`, id)
}

func (s pg) getArticle(ctx context.Context, query, id string) (*entities.Article, error) {
	var a articleDTO

	if err := sqlx.GetContext(ctx, s.ext, &a, query, id); err != nil {
		return nil, wrapQueryError(err)
	}

	return &entities.Article{
		ID:        a.ID,
		Author:    a.Author,
		Category:  a.Category,
		Title:     a.Title,
		Subtitle:  a.Subtitle,
		Text:      a.Text,
		Status:    entities.ArticleStatus(a.Status),
		Blocked:   a.Blocked,
		CreatedAt: a.CreatedAt.UTC(),
	}, nil
}

func (s pg) SetArticleState(ctx context.Context, id string, st entities.ArticleState) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE article SET status=$2, blocked=$3 WHERE id=$1`,
		id, string(st.Status), st.Blocked,
	)

	return checkAffected(res, err)
}

func (s pg) DeleteArticle(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM article WHERE id=$1`, id)

	return checkAffected(res, err)
}

func (s pg) ToggleArticleLike(ctx context.Context, articleID, likedBy string) (bool, error) {
	return s.toggle(ctx, "article_like", "article_id", "liked_by", articleID, likedBy)
}

func (s pg) GetArticleCounters(ctx context.Context, articleID string) (*entities.ArticleCounters, error) {
	var c struct {
		Likes    int `db:"likes"`
		Comments int `db:"comments"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT
				(SELECT count(*) FROM article_like WHERE article_id = a.id) AS likes,
				(SELECT count(*) FROM comment WHERE article_id = a.id) AS comments
			FROM article a
			WHERE a.id = $1
		`, articleID,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return &entities.ArticleCounters{
		Likes:    c.Likes,
		Comments: c.Comments,
	}, nil
}

const articleRatingSelect = `SELECT article_id, author, value FROM article_rating WHERE article_id = $1`

func (s pg) GetArticleRating(ctx context.Context, articleID string) (*entities.ArticleRating, error) {
	return s.getArticleRating(ctx, articleRatingSelect, articleID)
}

func (s pg) LockArticleRating(ctx context.Context, articleID string) (*entities.ArticleRating, error) {
	return s.getArticleRating(ctx, articleRatingSelect+` FOR UPDATE`, articleID)
}

func (s pg) getArticleRating(ctx context.Context, query, articleID string) (*entities.ArticleRating, error) {
	var r articleRatingDTO

	if err := sqlx.GetContext(ctx, s.ext, &r, query, articleID); err != nil {
		return nil, wrapQueryError(err)
	}

	return &entities.ArticleRating{
		ArticleID: r.ArticleID,
		Author:    r.Author,
		Value:     r.Value,
	}, nil
}

func (s pg) SetArticleRating(ctx context.Context, articleID string, value int) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE article_rating SET value=$2 WHERE article_id=$1`, articleID, value)

	return checkAffected(res, err)
}

func (s pg) ListAuthorArticleRatings(ctx context.Context, author string) ([]int, error) {
	var out []int

	if err := sqlx.SelectContext(ctx, s.ext, &out,
		`SELECT value FROM article_rating WHERE author = $1`, author,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return out, nil
}

func (s pg) CreateComment(ctx context.Context, c *entities.Comment) error {
	comment := commentDTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO comment(id, article_id, author, text, created_at)
			VALUES(:id, :article_id, :author, :text, :created_at)
		`, comment,
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) GetComment(ctx context.Context, id string) (*entities.Comment, error) {
	var c commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT id, article_id, author, text, created_at FROM comment WHERE id = $1`, id,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return &entities.Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.UTC(),
	}, nil
}

func (s pg) DeleteComment(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM comment WHERE id=$1`, id)

	return checkAffected(res, err)
}

func (s pg) ToggleCommentLike(ctx context.Context, commentID, likedBy string) (bool, error) {
	return s.toggle(ctx, "comment_like", "comment_id", "liked_by", commentID, likedBy)
}

func (s pg) CreateReply(ctx context.Context, r *entities.Reply) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO reply(id, comment_id, author, text, created_at) VALUES($1, $2, $3, $4, $5)
		`, r.ID, r.CommentID, r.Author, r.Text, r.CreatedAt.UTC(),
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) CreateTicket(ctx context.Context, t *entities.ModerationTicket) error {
	ticket := ticketDTO{
		ID:        t.ID,
		Kind:      string(t.Kind),
		Moderator: toNullString(t.Moderator),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	}

	switch t.Kind {
	case entities.CommentReportTicket:
		ticket.CommentID = sql.NullString{String: t.Subject, Valid: true}
	case entities.ArticleReModerationTicket:
		ticket.ArticleID = sql.NullString{String: t.Subject, Valid: true}
	default:
		return fmt.Errorf("unknown ticket kind %q", t.Kind)
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO moderation_ticket(id, kind, comment_id, article_id, moderator, status, created_at, updated_at)
			VALUES(:id, :kind, :comment_id, :article_id, :moderator, :status, :created_at, :updated_at)
		`, ticket,
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) LockTicket(ctx context.Context, id string) (*entities.ModerationTicket, error) {
	var t ticketDTO

	if err := sqlx.GetContext(ctx, s.ext, &t, `
			SELECT id, kind, comment_id, article_id, moderator, status, created_at, updated_at
			FROM moderation_ticket
			WHERE id = $1
			FOR UPDATE
		`, id,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	out := &entities.ModerationTicket{
		ID:        t.ID,
		Kind:      entities.TicketKind(t.Kind),
		Subject:   t.CommentID.String,
		Status:    entities.TicketStatus(t.Status),
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	}

	if t.ArticleID.Valid {
		out.Subject = t.ArticleID.String
	}

	if t.Moderator.Valid {
		out.Moderator = &t.Moderator.String
	}

	return out, nil
}

func (s pg) UpdateTicket(ctx context.Context, id string, p *storage.UpdateTicketParams) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE moderation_ticket SET status=$2, moderator=$3, updated_at=$4 WHERE id=$1`,
		id, string(p.Status), toNullString(p.Moderator), p.UpdatedAt.UTC(),
	)

	return checkAffected(res, err)
}

func (s pg) CountTickets(ctx context.Context) ([]entities.TicketCount, error) {
	return s.countTickets(ctx, `
		SELECT kind, status, count(*) AS count FROM moderation_ticket
		GROUP BY kind, status
		ORDER BY kind, status
	`)
}

func (s pg) CountModeratorTickets(ctx context.Context, moderator string) ([]entities.TicketCount, error) {
	return s.countTickets(ctx, `
		SELECT kind, status, count(*) AS count FROM moderation_ticket
		WHERE moderator = $1 AND status <> 'R'
		GROUP BY kind, status
		ORDER BY kind, status
	`, moderator)
}

func (s pg) countTickets(ctx context.Context, query string, args ...interface{}) ([]entities.TicketCount, error) {
	var c []ticketCountDTO

	if err := sqlx.SelectContext(ctx, s.ext, &c, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]entities.TicketCount, len(c))
	for i, v := range c {
		out[i] = entities.TicketCount{
			Kind:   entities.TicketKind(v.Kind),
			Status: entities.TicketStatus(v.Status),
			Count:  v.Count,
		}
	}

	return out, nil
}

// noticeTable returns table and sender column for notice kind.
func noticeTable(kind entities.NoticeKind) (string, string, error) {
	switch kind {
	case entities.AccountNotice:
		return "account_notice", "moderator", nil
	case entities.ActivityNotice:
		return "activity_notice", "sender", nil
	default:
		return "", "", fmt.Errorf("unknown notice kind %q", kind)
	}
}

func (s pg) CreateNotice(ctx context.Context, n *entities.Notice) error {
	table, sender, err := noticeTable(n.Kind)
	if err != nil {
		return err
	}

	if _, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s(id, recipient, %s, message, is_read, created_at) VALUES($1, $2, $3, $4, $5, $6)`,
			table, sender),
		n.ID, n.Recipient, n.Sender, n.Message, n.IsRead, n.CreatedAt.UTC(),
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) ListUnreadNotices(ctx context.Context, kind entities.NoticeKind, recipient string) ([]*entities.Notice, error) {
	table, sender, err := noticeTable(kind)
	if err != nil {
		return nil, err
	}

	var n []*noticeDTO

	if err := sqlx.SelectContext(ctx, s.ext, &n, fmt.Sprintf(`
			SELECT id, recipient, %s AS sender, message, is_read, created_at FROM %s
			WHERE recipient = $1 AND NOT is_read
			ORDER BY created_at DESC, seq DESC
		`, sender, table), recipient,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notice, len(n))
	for i, v := range n {
		out[i] = &entities.Notice{
			ID:        v.ID,
			Kind:      kind,
			Recipient: v.Recipient,
			Sender:    v.Sender,
			Message:   v.Message,
			IsRead:    v.IsRead,
			CreatedAt: v.CreatedAt.UTC(),
		}
	}

	return out, nil
}

func (s pg) MarkNoticeRead(ctx context.Context, kind entities.NoticeKind, id, recipient string) error {
	table, _, err := noticeTable(kind)
	if err != nil {
		return err
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET is_read=TRUE WHERE id=$1 AND recipient=$2`, table),
		id, recipient,
	)

	return checkAffected(res, err)
}

func (s pg) MarkAllNoticesRead(ctx context.Context, kind entities.NoticeKind, recipient string) (int64, error) {
	table, _, err := noticeTable(kind)
	if err != nil {
		return 0, err
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET is_read=TRUE WHERE recipient=$1 AND NOT is_read`, table),
		recipient,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c, nil
}

// toggle removes relation between owner and user or creates it if there was no one.
// It returns true when relation is created.
func (s pg) toggle(ctx context.Context, table, ownerColumn, userColumn, owner, user string) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s=$1 AND %s=$2`, table, ownerColumn, userColumn),
		owner, user,
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c > 0 {
		return false, nil
	}

	if _, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s(%s, %s) VALUES($1, $2)`, table, ownerColumn, userColumn),
		owner, user,
	); err != nil {
		return false, wrapExecError(err)
	}

	return true, nil
}

func toUser(u userDTO) *entities.User {
	out := &entities.User{
		ID:        u.ID,
		Username:  u.Username,
		Role:      entities.Role(u.Role),
		Banned:    u.Banned,
		CreatedAt: u.CreatedAt.UTC(),
	}

	if u.BanExpiry.Valid {
		t := u.BanExpiry.Time.UTC()
		out.BanExpiry = &t
	}

	return out
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func wrapQueryError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	return fmt.Errorf("failed to query: %w", err)
}

func wrapExecError(err error) error {
	if err, ok := err.(*pq.Error); ok {
		switch err.Code {
		case foreignKeyViolation:
			return storage.ErrNotFound
		case uniqueViolation:
			return storage.ErrAlreadyExists
		}
	}

	return fmt.Errorf("failed to exec: %w", err)
}

func checkAffected(res sql.Result, err error) error {
	if err != nil {
		return wrapExecError(err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}
