package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/intent"
	imock "github.com/Decentr-net/aegis/internal/intent/mock"
	"github.com/Decentr-net/aegis/internal/service"
	"github.com/Decentr-net/aegis/internal/service/mock"
)

var timestamp = time.Unix(100, 0)

type pinger func(ctx context.Context) error

func (p pinger) Ping(ctx context.Context) error {
	return p(ctx)
}

func Test_postIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := imock.NewMockApplier(ctrl)

	a.EXPECT().Apply(gomock.Any(), "alice", &intent.PostComment{
		ArticleID: "article",
		Text:      "hello",
	}).Return(&entities.Comment{
		ID:        "comment",
		ArticleID: "article",
		Author:    "alice",
		Text:      "hello",
		CreatedAt: timestamp,
	}, nil)

	router := chi.NewRouter()
	srv := server{a: a}
	router.Post("/v1/intents", srv.postIntent)

	r, err := http.NewRequest(http.MethodPost, "/v1/intents", strings.NewReader(
		`{"actor":"alice","kind":"post_comment","payload":{"article_id":"article","text":"hello"}}`,
	))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"created": {
		"id": "comment",
		"articleId": "article",
		"author": "alice",
		"text": "hello",
		"createdAt": 100
	}
}
	`, w.Body.String())
}

func Test_postIntent_NoResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := imock.NewMockApplier(ctrl)

	a.EXPECT().Apply(gomock.Any(), "alice", &intent.ToggleLike{ArticleID: "article"}).Return(nil, nil)

	router := chi.NewRouter()
	srv := server{a: a}
	router.Post("/v1/intents", srv.postIntent)

	r, err := http.NewRequest(http.MethodPost, "/v1/intents", strings.NewReader(
		`{"actor":"alice","kind":"toggle_like","payload":{"article_id":"article"}}`,
	))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func Test_postIntent_NoActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	a := imock.NewMockApplier(ctrl)

	a.EXPECT().Apply(gomock.Any(), "", &intent.ToggleStar{AuthorID: "alice"}).Return(nil, nil)

	router := chi.NewRouter()
	srv := server{a: a}
	router.Post("/v1/intents", srv.postIntent)

	r, err := http.NewRequest(http.MethodPost, "/v1/intents", strings.NewReader(
		`{"kind":"toggle_star","payload":{"author_id":"alice"}}`,
	))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func Test_postIntent_BadRequest(t *testing.T) {
	tt := []struct {
		name string
		body string
	}{
		{
			name: "invalid json",
			body: `{"actor":`,
		},
		{
			name: "no actor",
			body: `{"kind":"post_comment","payload":{"article_id":"article","text":"hello"}}`,
		},
		{
			name: "unknown kind",
			body: `{"actor":"alice","kind":"destroy","payload":{}}`,
		},
		{
			name: "no payload",
			body: `{"actor":"alice","kind":"toggle_like"}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router := chi.NewRouter()
			srv := server{a: imock.NewMockApplier(ctrl)}
			router.Post("/v1/intents", srv.postIntent)

			r, err := http.NewRequest(http.MethodPost, "/v1/intents", strings.NewReader(tc.body))
			require.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func Test_postIntent_Errors(t *testing.T) {
	tt := []struct {
		err  error
		code int
		body string
	}{
		{
			err:  service.ErrNotFound,
			code: http.StatusNotFound,
			body: `{"error":"not found"}`,
		},
		{
			err:  service.ErrPermissionDenied,
			code: http.StatusForbidden,
			body: `{"error":"permission denied"}`,
		},
		{
			err:  service.ErrInvalidTransition,
			code: http.StatusConflict,
			body: fmt.Sprintf(`{"error":"%s"}`, service.ErrInvalidTransition),
		},
		{
			err:  service.ErrAlreadyExists,
			code: http.StatusConflict,
			body: `{"error":"already exists"}`,
		},
		{
			err:  fmt.Errorf("title is empty: %w", service.ErrInvalidRequest),
			code: http.StatusBadRequest,
			body: `{"error":"failed to apply toggle_like: title is empty: invalid request"}`,
		},
		{
			err:  errors.New("connection refused"),
			code: http.StatusInternalServerError,
			body: `{"error":"internal error"}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(fmt.Sprint(tc.code, tc.err), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			a := imock.NewMockApplier(ctrl)

			a.EXPECT().Apply(gomock.Any(), "alice", gomock.Any()).Return(nil, tc.err)

			router := chi.NewRouter()
			srv := server{a: a}
			router.Post("/v1/intents", srv.postIntent)

			r, err := http.NewRequest(http.MethodPost, "/v1/intents", strings.NewReader(
				`{"actor":"alice","kind":"toggle_like","payload":{"article_id":"article"}}`,
			))
			require.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func Test_getArticleRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetArticleRating(gomock.Any(), "article").Return(7, nil)
	s.EXPECT().GetArticleRating(gomock.Any(), "unknown").Return(0, service.ErrNotFound)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/articles/{id}/rating", srv.getArticleRating)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/articles/article/rating", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rating":7}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/articles/unknown/rating", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_getAuthorRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetAuthorRating(gomock.Any(), "alice").Return(12, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/authors/{id}/rating", srv.getAuthorRating)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/authors/alice/rating", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rating":12}`, w.Body.String())
}

func Test_listNotices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListUnreadNotices(gomock.Any(), entities.ActivityNotice, "alice").Return([]*entities.Notice{
		{
			ID:        "1",
			Kind:      entities.ActivityNotice,
			Recipient: "alice",
			Sender:    "bob",
			Message:   "bob liked your article",
			CreatedAt: timestamp,
		},
	}, nil)
	s.EXPECT().ListUnreadNotices(gomock.Any(), entities.NoticeKind("spam"), "alice").
		Return(nil, fmt.Errorf("unknown kind: %w", service.ErrInvalidRequest))

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/users/{id}/notices/{kind}", srv.listNotices)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/alice/notices/activity", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
	{
		"id": "1",
		"sender": "bob",
		"message": "bob liked your article",
		"createdAt": 100
	}
]
	`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/alice/notices/spam", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_listNotices_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListUnreadNotices(gomock.Any(), entities.AccountNotice, "alice").Return(nil, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/users/{id}/notices/{kind}", srv.listNotices)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/alice/notices/account", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func Test_markNoticesRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().MarkNoticeRead(gomock.Any(), entities.AccountNotice, "n1", "alice").Return(nil)
	s.EXPECT().MarkNoticeRead(gomock.Any(), entities.AccountNotice, "n2", "alice").Return(service.ErrNotFound)
	s.EXPECT().MarkAllNoticesRead(gomock.Any(), entities.ActivityNotice, "alice").Return(int64(3), nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Post("/v1/users/{id}/notices/{kind}/read", srv.markAllNoticesRead)
	router.Post("/v1/users/{id}/notices/{kind}/{notice}/read", srv.markNoticeRead)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/users/alice/notices/account/n1/read", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/users/alice/notices/account/n2/read", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/users/alice/notices/activity/read", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":3}`, w.Body.String())
}

func Test_getQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().CountTickets(gomock.Any()).Return([]entities.TicketCount{
		{Kind: entities.CommentReportTicket, Status: entities.NewTicket, Count: 2},
		{Kind: entities.ArticleReModerationTicket, Status: entities.AssignedTicket, Count: 1},
	}, nil)
	s.EXPECT().CountModeratorTickets(gomock.Any(), "mod").Return([]entities.TicketCount{
		{Kind: entities.CommentReportTicket, Status: entities.ReviewedTicket, Count: 5},
	}, nil)

	router := chi.NewRouter()
	srv := server{s: s}
	router.Get("/v1/moderation/queue", srv.getQueue)
	router.Get("/v1/moderation/queue/{moderator}", srv.getModeratorQueue)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/moderation/queue", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
	{"kind":"comment_report","status":"N","count":2},
	{"kind":"article_re_moderation","status":"A","count":1}
]
	`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/moderation/queue/mod", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"kind":"comment_report","status":"R","count":5}]`, w.Body.String())
}

func Test_health(t *testing.T) {
	var healthy bool

	router := chi.NewRouter()
	srv := server{p: pinger(func(ctx context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("connection refused")
	})}
	router.Get("/health", srv.health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	healthy = true

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"dev","commit":"undefined"}`, w.Body.String())
}

func TestSetupRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().CountTickets(gomock.Any()).Return([]entities.TicketCount{}, nil).Times(1)

	router := chi.NewRouter()
	SetupRouter(s, imock.NewMockApplier(ctrl), pinger(func(context.Context) error { return nil }), router, time.Second, time.Minute)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/moderation/queue/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	}
}
