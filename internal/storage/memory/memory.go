// Package memory is an in-memory implementation of storage interface.
// Transactions are serialized by a single mutex and applied on a copy of data, so failed transaction leaves no trace.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/storage"
)

type pair struct {
	owner string
	user  string
}

type data struct {
	users    map[string]entities.User
	profiles map[string]entities.Profile
	stars    map[pair]struct{}

	articles     map[string]entities.Article
	ratings      map[string]entities.ArticleRating
	articleLikes map[pair]struct{}

	comments     map[string]entities.Comment
	commentLikes map[pair]struct{}
	replies      map[string]entities.Reply

	tickets map[string]entities.ModerationTicket

	notices map[entities.NoticeKind][]entities.Notice
}

func newData() *data {
	return &data{
		users:        map[string]entities.User{},
		profiles:     map[string]entities.Profile{},
		stars:        map[pair]struct{}{},
		articles:     map[string]entities.Article{},
		ratings:      map[string]entities.ArticleRating{},
		articleLikes: map[pair]struct{}{},
		comments:     map[string]entities.Comment{},
		commentLikes: map[pair]struct{}{},
		replies:      map[string]entities.Reply{},
		tickets:      map[string]entities.ModerationTicket{},
		notices:      map[entities.NoticeKind][]entities.Notice{},
	}
}

func (d *data) clone() *data {
	out := newData()

	for k, v := range d.users {
		out.users[k] = v
	}
	for k, v := range d.profiles {
		out.profiles[k] = v
	}
	for k := range d.stars {
		out.stars[k] = struct{}{}
	}
	for k, v := range d.articles {
		out.articles[k] = v
	}
	for k, v := range d.ratings {
		out.ratings[k] = v
	}
	for k := range d.articleLikes {
		out.articleLikes[k] = struct{}{}
	}
	for k, v := range d.comments {
		out.comments[k] = v
	}
	for k := range d.commentLikes {
		out.commentLikes[k] = struct{}{}
	}
	for k, v := range d.replies {
		out.replies[k] = v
	}
	for k, v := range d.tickets {
		out.tickets[k] = v
	}
	for k, v := range d.notices {
		out.notices[k] = append([]entities.Notice(nil), v...)
	}

	return out
}

type memory struct {
	mu   *sync.Mutex
	root **data
	tx   *data
}

// New creates new instance of memory storage.
func New() storage.Storage {
	d := newData()

	return memory{
		mu:   &sync.Mutex{},
		root: &d,
	}
}

// view locks storage if it is not a transaction and returns data to work with.
func (s memory) view() (*data, func()) {
	if s.tx != nil {
		return s.tx, func() {}
	}

	s.mu.Lock()

	return *s.root, s.mu.Unlock
}

func (s memory) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	if s.tx != nil {
		return fmt.Errorf("can not run InTx in tx")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := (*s.root).clone()

	if err := f(memory{mu: s.mu, root: s.root, tx: tx}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	*s.root = tx

	return nil
}

func (s memory) Ping(_ context.Context) error {
	return nil
}

func (s memory) CreateUser(_ context.Context, u *entities.User, p *entities.Profile) error {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.users[u.ID]; ok {
		return storage.ErrAlreadyExists
	}

	for _, v := range d.users {
		if v.Username == u.Username {
			return storage.ErrAlreadyExists
		}
	}

	user := *u
	user.BanExpiry = copyTime(u.BanExpiry)
	d.users[u.ID] = user
	d.profiles[u.ID] = entities.Profile{
		UserID:      u.ID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		Avatar:      p.Avatar,
	}

	return nil
}

func (s memory) GetUser(_ context.Context, id string) (*entities.User, error) {
	d, unlock := s.view()
	defer unlock()

	u, ok := d.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	u.BanExpiry = copyTime(u.BanExpiry)

	return &u, nil
}

func (s memory) SetBan(_ context.Context, id string, ban entities.Ban) error {
	d, unlock := s.view()
	defer unlock()

	u, ok := d.users[id]
	if !ok {
		return storage.ErrNotFound
	}

	u.Banned, u.BanExpiry = ban.Permanent, copyTime(ban.Expiry)
	d.users[id] = u

	return nil
}

func (s memory) GetProfile(_ context.Context, userID string) (*entities.Profile, error) {
	d, unlock := s.view()
	defer unlock()

	return d.profile(userID)
}

func (s memory) LockUser(ctx context.Context, id string) (*entities.User, error) {
	return s.GetUser(ctx, id)
}

func (s memory) LockProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	return s.GetProfile(ctx, userID)
}

func (d *data) profile(userID string) (*entities.Profile, error) {
	p, ok := d.profiles[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	p.Stars = 0
	for k := range d.stars {
		if k.owner == userID {
			p.Stars++
		}
	}

	return &p, nil
}

func (s memory) SetProfileRating(_ context.Context, userID string, rating, contribution int) error {
	d, unlock := s.view()
	defer unlock()

	p, ok := d.profiles[userID]
	if !ok {
		return storage.ErrNotFound
	}

	if rating < 0 {
		return fmt.Errorf("rating can not be negative")
	}

	p.Rating, p.LastArticleRatingContribution = rating, contribution
	d.profiles[userID] = p

	return nil
}

func (s memory) ToggleStar(_ context.Context, userID, starredBy string) (bool, error) {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.profiles[userID]; !ok {
		return false, storage.ErrNotFound
	}

	return toggle(d.stars, d.users, pair{owner: userID, user: starredBy})
}

func (s memory) CreateArticle(_ context.Context, a *entities.Article) error {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.users[a.Author]; !ok {
		return storage.ErrNotFound
	}

	if _, ok := d.articles[a.ID]; ok {
		return storage.ErrAlreadyExists
	}

	d.articles[a.ID] = *a
	d.ratings[a.ID] = entities.ArticleRating{ArticleID: a.ID, Author: a.Author}

	return nil
}

func (s memory) GetArticle(_ context.Context, id string) (*entities.Article, error) {
	d, unlock := s.view()
	defer unlock()

	a, ok := d.articles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &a, nil
}

func (s memory) LockArticle(ctx context.Context, id string) (*entities.Article, error) {
	return s.GetArticle(ctx, id)
}

func (s memory) SetArticleState(_ context.Context, id string, st entities.ArticleState) error {
	d, unlock := s.view()
	defer unlock()

	a, ok := d.articles[id]
	if !ok {
		return storage.ErrNotFound
	}

	a.Status, a.Blocked = st.Status, st.Blocked
	d.articles[id] = a

	return nil
}

func (s memory) DeleteArticle(_ context.Context, id string) error {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.articles[id]; !ok {
		return storage.ErrNotFound
	}

	for k, v := range d.comments {
		if v.ArticleID == id {
			d.deleteComment(k)
		}
	}

	for k := range d.articleLikes {
		if k.owner == id {
			delete(d.articleLikes, k)
		}
	}

	for k, v := range d.tickets {
		if v.Kind == entities.ArticleReModerationTicket && v.Subject == id {
			delete(d.tickets, k)
		}
	}

	delete(d.ratings, id)
	delete(d.articles, id)

	return nil
}

func (s memory) ToggleArticleLike(_ context.Context, articleID, likedBy string) (bool, error) {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.articles[articleID]; !ok {
		return false, storage.ErrNotFound
	}

	return toggle(d.articleLikes, d.users, pair{owner: articleID, user: likedBy})
}

func (s memory) GetArticleCounters(_ context.Context, articleID string) (*entities.ArticleCounters, error) {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.articles[articleID]; !ok {
		return nil, storage.ErrNotFound
	}

	var out entities.ArticleCounters

	for k := range d.articleLikes {
		if k.owner == articleID {
			out.Likes++
		}
	}

	for _, v := range d.comments {
		if v.ArticleID == articleID {
			out.Comments++
		}
	}

	return &out, nil
}

func (s memory) GetArticleRating(_ context.Context, articleID string) (*entities.ArticleRating, error) {
	d, unlock := s.view()
	defer unlock()

	r, ok := d.ratings[articleID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &r, nil
}

func (s memory) LockArticleRating(ctx context.Context, articleID string) (*entities.ArticleRating, error) {
	return s.GetArticleRating(ctx, articleID)
}

func (s memory) SetArticleRating(_ context.Context, articleID string, value int) error {
	d, unlock := s.view()
	defer unlock()

	r, ok := d.ratings[articleID]
	if !ok {
		return storage.ErrNotFound
	}

	if value < 0 {
		return fmt.Errorf("rating can not be negative")
	}

	r.Value = value
	d.ratings[articleID] = r

	return nil
}

func (s memory) ListAuthorArticleRatings(_ context.Context, author string) ([]int, error) {
	d, unlock := s.view()
	defer unlock()

	var out []int
	for _, v := range d.ratings {
		if v.Author == author {
			out = append(out, v.Value)
		}
	}

	return out, nil
}

func (s memory) CreateComment(_ context.Context, c *entities.Comment) error {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.articles[c.ArticleID]; !ok {
		return storage.ErrNotFound
	}

	if _, ok := d.users[c.Author]; !ok {
		return storage.ErrNotFound
	}

	d.comments[c.ID] = *c

	return nil
}

func (s memory) GetComment(_ context.Context, id string) (*entities.Comment, error) {
	d, unlock := s.view()
	defer unlock()

	c, ok := d.comments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &c, nil
}

func (s memory) DeleteComment(_ context.Context, id string) error {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.comments[id]; !ok {
		return storage.ErrNotFound
	}

	d.deleteComment(id)

	return nil
}

func (d *data) deleteComment(id string) {
	for k := range d.commentLikes {
		if k.owner == id {
			delete(d.commentLikes, k)
		}
	}

	for k, v := range d.replies {
		if v.CommentID == id {
			delete(d.replies, k)
		}
	}

	for k, v := range d.tickets {
		if v.Kind == entities.CommentReportTicket && v.Subject == id {
			delete(d.tickets, k)
		}
	}

	delete(d.comments, id)
}

func (s memory) ToggleCommentLike(_ context.Context, commentID, likedBy string) (bool, error) {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.comments[commentID]; !ok {
		return false, storage.ErrNotFound
	}

	return toggle(d.commentLikes, d.users, pair{owner: commentID, user: likedBy})
}

func (s memory) CreateReply(_ context.Context, r *entities.Reply) error {
	d, unlock := s.view()
	defer unlock()

	if _, ok := d.comments[r.CommentID]; !ok {
		return storage.ErrNotFound
	}

	d.replies[r.ID] = *r

	return nil
}

func (s memory) CreateTicket(_ context.Context, t *entities.ModerationTicket) error {
	d, unlock := s.view()
	defer unlock()

	switch t.Kind {
	case entities.CommentReportTicket:
		if _, ok := d.comments[t.Subject]; !ok {
			return storage.ErrNotFound
		}
	case entities.ArticleReModerationTicket:
		if _, ok := d.articles[t.Subject]; !ok {
			return storage.ErrNotFound
		}
	default:
		return fmt.Errorf("unknown ticket kind %q", t.Kind)
	}

	ticket := *t
	ticket.Moderator = copyString(t.Moderator)
	d.tickets[t.ID] = ticket

	return nil
}

func (s memory) LockTicket(_ context.Context, id string) (*entities.ModerationTicket, error) {
	d, unlock := s.view()
	defer unlock()

	t, ok := d.tickets[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	t.Moderator = copyString(t.Moderator)

	return &t, nil
}

func (s memory) UpdateTicket(_ context.Context, id string, p *storage.UpdateTicketParams) error {
	d, unlock := s.view()
	defer unlock()

	t, ok := d.tickets[id]
	if !ok {
		return storage.ErrNotFound
	}

	if p.Moderator != nil {
		if _, ok := d.users[*p.Moderator]; !ok {
			return storage.ErrNotFound
		}
	}

	t.Status, t.Moderator, t.UpdatedAt = p.Status, copyString(p.Moderator), p.UpdatedAt
	d.tickets[id] = t

	return nil
}

func (s memory) CountTickets(_ context.Context) ([]entities.TicketCount, error) {
	d, unlock := s.view()
	defer unlock()

	return d.countTickets(func(entities.ModerationTicket) bool { return true }), nil
}

func (s memory) CountModeratorTickets(_ context.Context, moderator string) ([]entities.TicketCount, error) {
	d, unlock := s.view()
	defer unlock()

	return d.countTickets(func(t entities.ModerationTicket) bool {
		return t.Moderator != nil && *t.Moderator == moderator && t.Status != entities.ReviewedTicket
	}), nil
}

func (d *data) countTickets(filter func(t entities.ModerationTicket) bool) []entities.TicketCount {
	type key struct {
		kind   entities.TicketKind
		status entities.TicketStatus
	}

	m := map[key]int{}
	for _, v := range d.tickets {
		if filter(v) {
			m[key{kind: v.Kind, status: v.Status}]++
		}
	}

	out := make([]entities.TicketCount, 0, len(m))
	for k, v := range m {
		out = append(out, entities.TicketCount{Kind: k.kind, Status: k.status, Count: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Status < out[j].Status
	})

	return out
}

func (s memory) CreateNotice(_ context.Context, n *entities.Notice) error {
	d, unlock := s.view()
	defer unlock()

	if !n.Kind.Valid() {
		return fmt.Errorf("unknown notice kind %q", n.Kind)
	}

	if _, ok := d.users[n.Recipient]; !ok {
		return storage.ErrNotFound
	}

	d.notices[n.Kind] = append(d.notices[n.Kind], *n)

	return nil
}

func (s memory) ListUnreadNotices(_ context.Context, kind entities.NoticeKind, recipient string) ([]*entities.Notice, error) {
	d, unlock := s.view()
	defer unlock()

	var out []*entities.Notice

	// notices are appended in creation order, so the reversed walk gives the most recent first
	list := d.notices[kind]
	for i := len(list) - 1; i >= 0; i-- {
		if n := list[i]; n.Recipient == recipient && !n.IsRead {
			out = append(out, &n)
		}
	}

	return out, nil
}

func (s memory) MarkNoticeRead(_ context.Context, kind entities.NoticeKind, id, recipient string) error {
	d, unlock := s.view()
	defer unlock()

	list := d.notices[kind]
	for i := range list {
		if list[i].ID == id && list[i].Recipient == recipient {
			list[i].IsRead = true
			return nil
		}
	}

	return storage.ErrNotFound
}

func (s memory) MarkAllNoticesRead(_ context.Context, kind entities.NoticeKind, recipient string) (int64, error) {
	d, unlock := s.view()
	defer unlock()

	var c int64

	list := d.notices[kind]
	for i := range list {
		if list[i].Recipient == recipient && !list[i].IsRead {
			list[i].IsRead = true
			c++
		}
	}

	return c, nil
}

func toggle(set map[pair]struct{}, users map[string]entities.User, p pair) (bool, error) {
	if _, ok := set[p]; ok {
		delete(set, p)
		return false, nil
	}

	if _, ok := users[p.user]; !ok {
		return false, storage.ErrNotFound
	}

	set[p] = struct{}{}

	return true, nil
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	v := *t

	return &v
}
