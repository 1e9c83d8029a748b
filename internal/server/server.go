// Package server Aegis
//
// The Aegis is a service which maintains ratings, moderation tickets and notices of a publishing platform.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"context"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/Decentr-net/aegis/internal/intent"
	"github.com/Decentr-net/aegis/internal/metrics"
	mm "github.com/Decentr-net/aegis/internal/middleware"
	"github.com/Decentr-net/aegis/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 64 * 1024

// Pinger checks if dependency is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

type server struct {
	s service.Service
	a intent.Applier
	p Pinger
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, a intent.Applier, p Pinger, r chi.Router, timeout, queueTTL time.Duration) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		middleware.Recoverer,
		metrics.Middleware,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
		a: a,
		p: p,
	}

	r.Get("/health", srv.health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/intents", srv.postIntent)

		r.Get("/articles/{id}/rating", srv.getArticleRating)
		r.Get("/authors/{id}/rating", srv.getAuthorRating)

		r.Get("/users/{id}/notices/{kind}", srv.listNotices)
		r.Post("/users/{id}/notices/{kind}/read", srv.markAllNoticesRead)
		r.Post("/users/{id}/notices/{kind}/{notice}/read", srv.markNoticeRead)

		r.Get("/moderation/queue", mm.Cached(queueTTL, srv.getQueue))
		r.Get("/moderation/queue/{moderator}", srv.getModeratorQueue)
	})
}
