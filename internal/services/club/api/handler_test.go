package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/services/club/storage"
)

type fakeStore struct {
	mu            sync.Mutex
	members       []storage.Member
	registrations []storage.Registration
	createErr     error
	countErr      error
	listErr       error
}

func (f *fakeStore) CreateMember(_ context.Context, m storage.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.members {
		if existing.Email == m.Email {
			return storage.ErrEmailTaken
		}
	}
	f.members = append(f.members, m)
	return nil
}

func (f *fakeStore) GetMember(_ context.Context, id string) (storage.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return storage.Member{}, storage.ErrNotFound
}

func (f *fakeStore) ListMembers(context.Context) ([]storage.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]storage.Member, 0, len(f.members))
	for i := len(f.members) - 1; i >= 0; i-- {
		out = append(out, f.members[i])
	}
	return out, nil
}

func (f *fakeStore) CountMembers(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.members), nil
}

func (f *fakeStore) CreateRegistration(_ context.Context, r storage.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.registrations {
		if existing.Email == r.Email {
			return storage.ErrEmailTaken
		}
		if existing.RollNumber == r.RollNumber {
			return storage.ErrRollNumberTaken
		}
	}
	f.registrations = append(f.registrations, r)
	return nil
}

func (f *fakeStore) GetRegistration(_ context.Context, id string) (storage.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.registrations {
		if r.ID == id {
			return r, nil
		}
	}
	return storage.Registration{}, storage.ErrNotFound
}

func (f *fakeStore) ListRegistrations(context.Context) ([]storage.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]storage.Registration, 0, len(f.registrations))
	for i := len(f.registrations) - 1; i >= 0; i-- {
		out = append(out, f.registrations[i])
	}
	return out, nil
}

func (f *fakeStore) CountRegistrations(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.registrations), nil
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func newTestMux(store *fakeStore, joinOpen bool) *http.ServeMux {
	seq := 0
	h := NewHandler(store, store, Options{
		JoinOpen: joinOpen,
		Now:      func() time.Time { return time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC) },
		NewID: func() (string, error) {
			seq++
			return "id-" + string(rune('a'+seq-1)), nil
		},
	})
	mux := http.NewServeMux()
	h.Register(mux)
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, apiResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, reader))
	var resp apiResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return rr.Code, resp
}

func silenceLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestJoinNormalizesAndStores(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	mux := newTestMux(store, true)
	status, resp := do(t, mux, http.MethodPost, "/api/join", `{
		"name": "  Asha Rao ",
		"email": " Asha@Example.COM ",
		"phone": "+91 98765-43210 99",
		"section": " b ",
		"interest": "Game Development",
		"message": "hi"
	}`)
	if status != http.StatusCreated || !resp.Success {
		t.Fatalf("status = %d resp = %+v", status, resp)
	}
	if resp.Message != msgJoined {
		t.Fatalf("message = %q", resp.Message)
	}

	got := store.members[0]
	if got.Name != "Asha Rao" || got.Email != "asha@example.com" || got.Section != "B" {
		t.Fatalf("member = %+v", got)
	}
	if got.Phone != "9198765432" {
		t.Fatalf("phone = %q, want first 10 digits", got.Phone)
	}
	if got.ID != "id-a" || got.JoinedAt.IsZero() {
		t.Fatalf("member id/time = %q %v", got.ID, got.JoinedAt)
	}
}

func TestJoinValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{name: "missing interest", body: `{"name":"Asha","email":"a@b.co"}`, status: 400, message: msgJoinRequired},
		{name: "short name", body: `{"name":"A","email":"a@b.co","interest":"Art"}`, status: 400, message: msgNameTooShort},
		{name: "bad email", body: `{"name":"Asha","email":"asha-at-example","interest":"Art"}`, status: 400, message: msgEmailInvalid},
		{name: "short phone", body: `{"name":"Asha","email":"a@b.co","interest":"Art","phone":"12345"}`, status: 400, message: msgPhoneInvalid},
		{name: "malformed body", body: `{"name":`, status: 400, message: msgBodyInvalid},
		{name: "wrong field type", body: `{"name":5}`, status: 400, message: msgBodyInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			store := &fakeStore{}
			status, resp := do(t, newTestMux(store, true), http.MethodPost, "/api/join", tc.body)
			if status != tc.status || resp.Success || resp.Message != tc.message {
				t.Fatalf("status = %d resp = %+v; want %d %q", status, resp, tc.status, tc.message)
			}
			if len(store.members) != 0 {
				t.Fatal("invalid submission was stored")
			}
		})
	}
}

func TestJoinTruncatesMessage(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	long := strings.Repeat("é", 600)
	body, _ := json.Marshal(map[string]string{"name": "Asha", "email": "a@b.co", "interest": "Art", "message": long})
	status, _ := do(t, newTestMux(store, true), http.MethodPost, "/api/join", string(body))
	if status != http.StatusCreated {
		t.Fatalf("status = %d", status)
	}
	if got := []rune(store.members[0].Message); len(got) != 500 {
		t.Fatalf("message runes = %d, want 500", len(got))
	}
}

func TestJoinDuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	mux := newTestMux(store, true)
	body := `{"name":"Asha","email":"asha@example.com","interest":"Art"}`
	if status, _ := do(t, mux, http.MethodPost, "/api/join", body); status != http.StatusCreated {
		t.Fatalf("first join status = %d", status)
	}
	status, resp := do(t, mux, http.MethodPost, "/api/join", `{"name":"Asha","email":"ASHA@example.com","interest":"Art"}`)
	if status != http.StatusConflict || resp.Success || resp.Message != msgEmailTaken {
		t.Fatalf("status = %d resp = %+v", status, resp)
	}
}

func TestJoinClosed(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	status, resp := do(t, newTestMux(store, false), http.MethodPost, "/api/join", `{"name":"Asha","email":"a@b.co","interest":"Art"}`)
	if status != http.StatusForbidden || resp.Message != msgJoinClosed {
		t.Fatalf("status = %d resp = %+v", status, resp)
	}
}

func TestJoinStoreFailureHidesDetails(t *testing.T) {
	logs := silenceLog(t)

	store := &fakeStore{createErr: errors.New("disk on fire")}
	status, resp := do(t, newTestMux(store, true), http.MethodPost, "/api/join", `{"name":"Asha","email":"a@b.co","interest":"Art"}`)
	if status != http.StatusInternalServerError || resp.Message != msgServerError {
		t.Fatalf("status = %d resp = %+v", status, resp)
	}
	if !strings.Contains(logs.String(), "disk on fire") {
		t.Fatalf("expected cause in logs, got %q", logs.String())
	}
}

func TestRegisterFlow(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	mux := newTestMux(store, true)
	valid := `{"name":"Ravi","email":"Ravi@Example.com","phone":"9876543210","rollNumber":"21bce1234","branch":"CSE","year":"2nd Year","section":"a","interest":"Design"}`

	status, resp := do(t, mux, http.MethodPost, "/api/register", valid)
	if status != http.StatusCreated || resp.Message != msgRegistered {
		t.Fatalf("status = %d resp = %+v", status, resp)
	}
	var data storage.Registration
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.RollNumber != "21BCE1234" || data.Section != "A" || data.Email != "ravi@example.com" {
		t.Fatalf("registration = %+v", data)
	}

	status, resp = do(t, mux, http.MethodPost, "/api/register", valid)
	if status != http.StatusConflict || resp.Message != msgEmailTaken {
		t.Fatalf("duplicate email: status = %d resp = %+v", status, resp)
	}

	status, resp = do(t, mux, http.MethodPost, "/api/register", strings.Replace(valid, "Ravi@Example.com", "other@example.com", 1))
	if status != http.StatusConflict || resp.Message != msgRollNumberTaken {
		t.Fatalf("duplicate roll: status = %d resp = %+v", status, resp)
	}

	status, resp = do(t, mux, http.MethodPost, "/api/register", `{"name":"Ravi","email":"r@x.io"}`)
	if status != http.StatusBadRequest || resp.Message != msgRegisterRequired {
		t.Fatalf("missing fields: status = %d resp = %+v", status, resp)
	}
}

func TestListsAndCounts(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	mux := newTestMux(store, true)
	for _, email := range []string{"one@example.com", "two@example.com"} {
		do(t, mux, http.MethodPost, "/api/join", `{"name":"Member","email":"`+email+`","interest":"Art"}`)
	}

	status, resp := do(t, mux, http.MethodGet, "/api/members", "")
	if status != http.StatusOK || resp.Count == nil || *resp.Count != 2 {
		t.Fatalf("list members: status = %d resp = %+v", status, resp)
	}
	var members []storage.Member
	if err := json.Unmarshal(resp.Data, &members); err != nil {
		t.Fatalf("decode members: %v", err)
	}
	if members[0].Email != "two@example.com" {
		t.Fatalf("first member = %q, want newest first", members[0].Email)
	}

	status, resp = do(t, mux, http.MethodGet, "/api/members/count", "")
	if status != http.StatusOK || *resp.Count != 2 {
		t.Fatalf("count members: status = %d resp = %+v", status, resp)
	}

	status, resp = do(t, mux, http.MethodGet, "/api/registrations", "")
	if status != http.StatusOK || *resp.Count != 0 || string(resp.Data) != "[]" {
		t.Fatalf("list registrations: status = %d resp = %+v", status, resp)
	}

	status, resp = do(t, mux, http.MethodGet, "/api/registrations/count", "")
	if status != http.StatusOK || *resp.Count != 0 || !resp.Success {
		t.Fatalf("count registrations: status = %d resp = %+v", status, resp)
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	mux := newTestMux(store, true)
	do(t, mux, http.MethodPost, "/api/join", `{"name":"Asha","email":"asha@example.com","interest":"Art"}`)
	do(t, mux, http.MethodPost, "/api/register", `{"name":"Ravi","email":"ravi@example.com","phone":"9876543210","rollNumber":"21bce1234","branch":"CSE","year":"2nd Year","section":"a","interest":"Design"}`)

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantMessage string
		wantField   string
	}{
		{name: "member", method: http.MethodGet, path: "/api/members/id-a", wantStatus: http.StatusOK, wantField: "asha@example.com"},
		{name: "registration", method: http.MethodGet, path: "/api/registrations/id-b", wantStatus: http.StatusOK, wantField: "21BCE1234"},
		{name: "missing member", method: http.MethodGet, path: "/api/members/id-z", wantStatus: http.StatusNotFound, wantMessage: msgMemberNotFound},
		{name: "missing registration", method: http.MethodGet, path: "/api/registrations/id-a", wantStatus: http.StatusNotFound, wantMessage: msgRegNotFound},
		{name: "count still wins", method: http.MethodGet, path: "/api/members/count", wantStatus: http.StatusOK},
		{name: "nested path", method: http.MethodGet, path: "/api/members/id-a/extra", wantStatus: http.StatusNotFound, wantMessage: "Route not found"},
		{name: "post rejected", method: http.MethodPost, path: "/api/members/id-a", wantStatus: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := do(t, mux, tc.method, tc.path, "")
			if status != tc.wantStatus {
				t.Fatalf("status = %d, want %d (resp %+v)", status, tc.wantStatus, resp)
			}
			if tc.wantMessage != "" && resp.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", resp.Message, tc.wantMessage)
			}
			if tc.wantField != "" && !strings.Contains(string(resp.Data), tc.wantField) {
				t.Fatalf("data = %s, want %q", resp.Data, tc.wantField)
			}
		})
	}
}

func TestGetByIDStoreFailureHidesDetails(t *testing.T) {
	logs := silenceLog(t)

	mux := http.NewServeMux()
	store := &failingLookup{}
	NewHandler(store, store, Options{}).Register(mux)
	status, resp := do(t, mux, http.MethodGet, "/api/members/id-a", "")
	if status != http.StatusInternalServerError || resp.Message != msgServerError {
		t.Fatalf("status = %d resp = %+v", status, resp)
	}
	if !strings.Contains(logs.String(), "disk on fire") {
		t.Fatalf("expected cause in logs, got %q", logs.String())
	}
}

type failingLookup struct {
	fakeStore
}

func (*failingLookup) GetMember(context.Context, string) (storage.Member, error) {
	return storage.Member{}, errors.New("disk on fire")
}

func (*failingLookup) GetRegistration(context.Context, string) (storage.Registration, error) {
	return storage.Registration{}, errors.New("disk on fire")
}

func TestCountFailureModes(t *testing.T) {
	silenceLog(t)

	store := &fakeStore{countErr: errors.New("locked"), listErr: errors.New("locked")}
	mux := newTestMux(store, true)

	status, resp := do(t, mux, http.MethodGet, "/api/members/count", "")
	if status != http.StatusOK || !resp.Success || resp.Count == nil || *resp.Count != 0 {
		t.Fatalf("members count should degrade to zero: status = %d resp = %+v", status, resp)
	}

	status, resp = do(t, mux, http.MethodGet, "/api/registrations/count", "")
	if status != http.StatusInternalServerError || resp.Success {
		t.Fatalf("registrations count should fail: status = %d resp = %+v", status, resp)
	}

	status, resp = do(t, mux, http.MethodGet, "/api/members", "")
	if status != http.StatusInternalServerError || resp.Message != "Error fetching members" {
		t.Fatalf("list members failure: status = %d resp = %+v", status, resp)
	}
}

func TestUnknownAPIRouteAndMethod(t *testing.T) {
	t.Parallel()

	mux := newTestMux(&fakeStore{}, true)
	status, resp := do(t, mux, http.MethodGet, "/api/nope", "")
	if status != http.StatusNotFound || resp.Message != "Route not found" {
		t.Fatalf("status = %d resp = %+v", status, resp)
	}
	status, _ = do(t, mux, http.MethodGet, "/api/join", "")
	if status != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", status)
	}
}
