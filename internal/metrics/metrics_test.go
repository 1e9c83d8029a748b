package metrics

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
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/service"
)

func TestResult(t *testing.T) {
	tt := []struct {
		err    error
		result string
	}{
		{nil, "ok"},
		{fmt.Errorf("failed: %w", service.ErrNotFound), "not_found"},
		{service.ErrPermissionDenied, "permission_denied"},
		{service.ErrInvalidTransition, "invalid_transition"},
		{service.ErrInvalidRequest, "invalid_request"},
		{service.ErrAlreadyExists, "already_exists"},
		{errors.New("test"), "error"},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.result, func(t *testing.T) {
			assert.Equal(t, tc.result, result(tc.err))
		})
	}
}

func TestObserveIntent(t *testing.T) {
	before := testutil.ToFloat64(intentsCounter.WithLabelValues("toggle_like", "ok"))

	ObserveIntent("toggle_like", nil, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(intentsCounter.WithLabelValues("toggle_like", "ok")))
}

func TestQueueCollector(t *testing.T) {
	c := NewQueueCollector(func(context.Context) ([]entities.TicketCount, error) {
		return []entities.TicketCount{
			{Kind: entities.CommentReportTicket, Status: entities.NewTicket, Count: 3},
			{Kind: entities.ArticleReModerationTicket, Status: entities.AssignedTicket, Count: 1},
		}, nil
	}, time.Second)

	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(`
# HELP aegis_moderation_tickets The current count of moderation tickets by kind and status.
# TYPE aegis_moderation_tickets gauge
aegis_moderation_tickets{kind="article_re_moderation",status="A"} 1
aegis_moderation_tickets{kind="comment_report",status="N"} 3
`)))
}

func TestQueueCollector_Error(t *testing.T) {
	c := NewQueueCollector(func(context.Context) ([]entities.TicketCount, error) {
		return nil, errors.New("test")
	}, time.Second)

	assert.Zero(t, testutil.CollectAndCount(c))
}

func TestMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/v1/articles/{id}/rating", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(reqCnt.WithLabelValues("404", http.MethodGet, "/v1/articles/{id}/rating"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/articles/1/rating", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(reqCnt.WithLabelValues("404", http.MethodGet, "/v1/articles/{id}/rating")))
}
