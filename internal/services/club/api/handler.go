// Package api serves the club JSON REST endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	apperrors "github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/errors"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/httpx"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/id"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/timeouts"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage"
)

const maxBodyBytes = 64 << 10

// Options configures handler behavior.
type Options struct {
	// JoinOpen accepts new guild members when true.
	JoinOpen bool
	// Now stamps new records; defaults to time.Now.
	Now func() time.Time
	// NewID mints record ids; defaults to id.NewID.
	NewID func() (string, error)
}

// Handler serves /api routes backed by the club store.
type Handler struct {
	members       storage.MemberStore
	registrations storage.RegistrationStore
	joinOpen      bool
	now           func() time.Time
	newID         func() (string, error)
}

// NewHandler builds a handler over members and registrations.
func NewHandler(members storage.MemberStore, registrations storage.RegistrationStore, opts Options) *Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = id.NewID
	}
	return &Handler{
		members:       members,
		registrations: registrations,
		joinOpen:      opts.JoinOpen,
		now:           opts.Now,
		newID:         opts.NewID,
	}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	get := httpx.RequireMethod(http.MethodGet)
	post := httpx.RequireMethod(http.MethodPost)

	mux.Handle("/api/join", httpx.Chain(http.HandlerFunc(h.join), post))
	mux.Handle("/api/register", httpx.Chain(http.HandlerFunc(h.register), post))
	mux.Handle("/api/members", httpx.Chain(http.HandlerFunc(h.listMembers), get))
	mux.Handle("/api/members/count", httpx.Chain(http.HandlerFunc(h.countMembers), get))
	mux.Handle("/api/members/{id}", httpx.Chain(http.HandlerFunc(h.getMember), get))
	mux.Handle("/api/registrations", httpx.Chain(http.HandlerFunc(h.listRegistrations), get))
	mux.Handle("/api/registrations/count", httpx.Chain(http.HandlerFunc(h.countRegistrations), get))
	mux.Handle("/api/registrations/{id}", httpx.Chain(http.HandlerFunc(h.getRegistration), get))
	mux.Handle("/api/", httpx.NotFoundJSON())
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	if !h.joinOpen {
		writeError(w, r, apperrors.New(apperrors.CodeJoinClosed, msgJoinClosed))
		return
	}
	var req joinRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	member, err := req.member()
	if err != nil {
		writeError(w, r, err)
		return
	}
	member.ID, err = h.newID()
	if err != nil {
		writeError(w, r, err)
		return
	}
	member.JoinedAt = h.now().UTC()

	ctx, cancel := storeContext(r)
	defer cancel()
	if err := h.members.CreateMember(ctx, member); err != nil {
		writeError(w, r, mapStoreError(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, httpx.Envelope{Success: true, Message: msgJoined, Data: member})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	registration, err := req.registration()
	if err != nil {
		writeError(w, r, err)
		return
	}
	registration.ID, err = h.newID()
	if err != nil {
		writeError(w, r, err)
		return
	}
	registration.RegisteredAt = h.now().UTC()

	ctx, cancel := storeContext(r)
	defer cancel()
	if err := h.registrations.CreateRegistration(ctx, registration); err != nil {
		writeError(w, r, mapStoreError(err))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, httpx.Envelope{Success: true, Message: msgRegistered, Data: registration})
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()
	members, err := h.members.ListMembers(ctx)
	if err != nil {
		logFailure(r, "list members", err)
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, httpx.Envelope{Message: "Error fetching members"})
		return
	}
	count := len(members)
	_ = httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{Success: true, Count: &count, Data: members})
}

func (h *Handler) getMember(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()
	member, err := h.members.GetMember(ctx, r.PathValue("id"))
	if err != nil {
		writeError(w, r, mapLookupError(err, msgMemberNotFound))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{Success: true, Data: member})
}

// countMembers degrades to zero so the landing page counter still renders.
func (h *Handler) countMembers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()
	count, err := h.members.CountMembers(ctx)
	if err != nil {
		logFailure(r, "count members", err)
		count = 0
	}
	_ = httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{Success: true, Count: &count})
}

func (h *Handler) listRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()
	registrations, err := h.registrations.ListRegistrations(ctx)
	if err != nil {
		logFailure(r, "list registrations", err)
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, httpx.Envelope{Message: "Error fetching registrations"})
		return
	}
	count := len(registrations)
	_ = httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{Success: true, Count: &count, Data: registrations})
}

func (h *Handler) countRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()
	count, err := h.registrations.CountRegistrations(ctx)
	if err != nil {
		logFailure(r, "count registrations", err)
		_ = httpx.WriteJSON(w, http.StatusInternalServerError, httpx.Envelope{Message: "Error counting registrations"})
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{Success: true, Count: &count})
}

func (h *Handler) getRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()
	registration, err := h.registrations.GetRegistration(ctx, r.PathValue("id"))
	if err != nil {
		writeError(w, r, mapLookupError(err, msgRegNotFound))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, httpx.Envelope{Success: true, Data: registration})
}

func storeContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(httpx.RequestContext(r), timeouts.StoreQuery)
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return apperrors.Wrap(apperrors.CodeBodyInvalid, msgBodyInvalid, err)
	}
	return nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		return apperrors.Wrap(apperrors.CodeEmailTaken, msgEmailTaken, err)
	case errors.Is(err, storage.ErrRollNumberTaken):
		return apperrors.Wrap(apperrors.CodeRollNumberTaken, msgRollNumberTaken, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return apperrors.Wrap(apperrors.CodeEmailTaken, msgEmailTaken, err)
	}
	return err
}

func mapLookupError(err error, notFound string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.Wrap(apperrors.CodeNotFound, notFound, err)
	}
	return err
}

// writeError answers with the domain status and message; anything else is
// logged and reported as a generic server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logFailure(r, "request", err)
	}
	_ = httpx.WriteJSON(w, status, httpx.Envelope{Message: apperrors.UserMessage(err, msgServerError)})
}

func logFailure(r *http.Request, op string, err error) {
	log.Printf("api %s failed method=%s path=%s request_id=%s err=%v", op, r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
}
