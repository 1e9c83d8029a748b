package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/intent"
	mm "github.com/Decentr-net/aegis/internal/middleware"
	"github.com/Decentr-net/aegis/internal/service"
)

// nolint:gochecknoglobals
var (
	log = logrus.WithField("layer", "api").WithField("package", "server")

	version = "dev"
	commit  = "undefined"
)

// HealthResponse ...
// swagger:model
type HealthResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (s server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.p.Ping(r.Context()); err != nil {
		mm.GetLogger(r.Context()).WithError(err).Error("storage is unavailable")
		writeError(w, http.StatusServiceUnavailable, "storage is unavailable")
		return
	}

	writeOK(w, http.StatusOK, HealthResponse{
		Version: version,
		Commit:  commit,
	})
}

func (s server) postIntent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /intents Intents PostIntent
	//
	// Applies mutation intent on behalf of actor.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   description: intent envelope with actor, kind and kind specific payload
	//   example: {"actor": "5b1a...", "kind": "toggle_like", "payload": {"article_id": "c3e0..."}}
	// responses:
	//   '200':
	//     description: intent is applied
	//     schema:
	//       "$ref": "#/definitions/IntentResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: actor is not allowed to perform intent
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: referenced entity not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: conflicting state
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var e intent.Envelope
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if e.Actor == "" && !e.Kind.Anonymous() {
		writeError(w, http.StatusBadRequest, "actor is required")
		return
	}

	v, err := intent.Decode(e)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.a.Apply(r.Context(), e.Actor, v)
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to apply %s: %w", e.Kind, err))
		return
	}

	writeOK(w, http.StatusOK, IntentResponse{Created: toAPICreated(created)})
}

func (s server) getArticleRating(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /articles/{id}/rating Ratings GetArticleRating
	//
	// Returns article's rating.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: rating
	//     schema:
	//       "$ref": "#/definitions/RatingResponse"
	//   '404':
	//     description: article not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	v, err := s.s.GetArticleRating(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to get article rating: %w", err))
		return
	}

	writeOK(w, http.StatusOK, RatingResponse{Rating: v})
}

func (s server) getAuthorRating(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/rating Ratings GetAuthorRating
	//
	// Returns author's rating.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: rating
	//     schema:
	//       "$ref": "#/definitions/RatingResponse"
	//   '404':
	//     description: author not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	v, err := s.s.GetAuthorRating(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to get author rating: %w", err))
		return
	}

	writeOK(w, http.StatusOK, RatingResponse{Rating: v})
}

func (s server) listNotices(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/notices/{kind} Notices ListNotices
	//
	// Returns unread notices of user, most recent first.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// - name: kind
	//   in: path
	//   required: true
	//   type: string
	//   enum: [account, activity]
	// responses:
	//   '200':
	//     description: notices
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Notice"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	l, err := s.s.ListUnreadNotices(r.Context(), entities.NoticeKind(chi.URLParam(r, "kind")), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to list notices: %w", err))
		return
	}

	writeOK(w, http.StatusOK, toAPINotices(l))
}

func (s server) markNoticeRead(w http.ResponseWriter, r *http.Request) {
	err := s.s.MarkNoticeRead(r.Context(),
		entities.NoticeKind(chi.URLParam(r, "kind")),
		chi.URLParam(r, "notice"),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to mark notice read: %w", err))
		return
	}

	writeOK(w, http.StatusOK, MarkReadResponse{Count: 1})
}

func (s server) markAllNoticesRead(w http.ResponseWriter, r *http.Request) {
	n, err := s.s.MarkAllNoticesRead(r.Context(), entities.NoticeKind(chi.URLParam(r, "kind")), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to mark notices read: %w", err))
		return
	}

	writeOK(w, http.StatusOK, MarkReadResponse{Count: n})
}

func (s server) getQueue(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /moderation/queue Moderation GetQueue
	//
	// Returns count of moderation tickets grouped by kind and status.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: counts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/TicketCount"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	l, err := s.s.CountTickets(r.Context())
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to count tickets: %w", err))
		return
	}

	writeOK(w, http.StatusOK, toAPITicketCounts(l))
}

func (s server) getModeratorQueue(w http.ResponseWriter, r *http.Request) {
	l, err := s.s.CountModeratorTickets(r.Context(), chi.URLParam(r, "moderator"))
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("failed to count moderator tickets: %w", err))
		return
	}

	writeOK(w, http.StatusOK, toAPITicketCounts(l))
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, service.ErrPermissionDenied.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		writeError(w, http.StatusConflict, service.ErrInvalidTransition.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		writeError(w, http.StatusConflict, service.ErrAlreadyExists.Error())
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, intent.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		mm.GetLogger(r.Context()).WithError(err).Error("internal error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}
