// Package subscribe handles newsletter signup. Subscribing is
// idempotent: an address that is already on the list gets the same OK
// response as a new one.
package subscribe

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	subscriberstore "github.com/stashdir/stashd/internal/app/store/subscribers"
	"github.com/stashdir/stashd/internal/app/system/normalize"
	"github.com/stashdir/stashd/internal/app/system/timeouts"
)

// Handler owns the subscribe endpoint.
type Handler struct {
	Subscribers *subscriberstore.Store
	Log         *zap.Logger
	ErrLog      *uierrors.ErrorLogger
}

// NewHandler constructs a subscribe Handler.
func NewHandler(subs *subscriberstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Subscribers: subs, Log: logger, ErrLog: errLog}
}

type request struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type response struct {
	Subscribed bool `json:"subscribed"`
}

// Serve handles POST /api/subscribe.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		h.ErrLog.BadRequest(w, "Invalid JSON body.")
		return
	}

	email := normalize.Email(req.Email)
	if !normalize.ValidEmail(email) {
		h.ErrLog.BadRequest(w, "Please enter a valid email address.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Subscribers.Upsert(ctx, email, req.Source); err != nil {
		h.ErrLog.LogServerError(w, r, "subscribe upsert failed", err, "Could not save your subscription.")
		return
	}

	h.Log.Info("subscriber added", zap.String("source", req.Source))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response{Subscribed: true})
}
