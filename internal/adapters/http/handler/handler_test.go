package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-timeoff/internal/adapters/apiservice"
	"github.com/ogurasousui/codex-timeoff/internal/adapters/repository/memory"
	"github.com/ogurasousui/codex-timeoff/internal/core/session"
	"github.com/ogurasousui/codex-timeoff/internal/core/timeoff"
	"github.com/ogurasousui/codex-timeoff/internal/core/user"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time {
	return time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Status int             `json:"status"`
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	store, err := memory.NewStore(memory.DefaultSeed(), memory.WithLatency(0))
	require.NoError(t, err)

	sessions := session.NewService(memory.NewSessionStore(), user.DefaultCurrentUserID, nil)
	users := user.NewService(memory.NewUserRepository(store), sessions, store)
	requests := timeoff.NewService(memory.NewRequestRepository(store), memory.NewUserRepository(store), fixedClock{}, store)

	h, err := New(apiservice.New(users, requests, sessions, zap.NewNop()), zap.NewNop())
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	rec, env := do(t, newTestHandler(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"ok"`, string(env.Data))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHandler_Users(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec, env := do(t, h, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users []apiservice.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 4)

	rec, env = do(t, h, http.MethodGet, "/api/users/user-3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var manager apiservice.User
	require.NoError(t, json.Unmarshal(env.Data, &manager))
	assert.Equal(t, "Michael Davis", manager.Name)

	rec, env = do(t, h, http.MethodGet, "/api/users/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", env.Error)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestHandler_SessionIsolation(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec, env := do(t, h, http.MethodPost, "/api/session/switch", `{"userId":"user-3"}`, SessionHeader, "tab-a")
	require.Equal(t, http.StatusOK, rec.Code)
	var s apiservice.Session
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, "tab-a", s.SessionID)
	assert.Equal(t, "user-3", s.UserID)

	_, env = do(t, h, http.MethodGet, "/api/users/me", "", SessionHeader, "tab-a")
	var me apiservice.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "user-3", me.ID)

	_, env = do(t, h, http.MethodGet, "/api/users/me", "", SessionHeader, "tab-b")
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "user-1", me.ID)

	_, env = do(t, h, http.MethodGet, "/api/session", "")
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, session.DefaultID, s.SessionID)
	assert.Equal(t, "user-1", s.UserID)

	rec, env = do(t, h, http.MethodPost, "/api/session/switch", `{"userId":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "userId is a required field", env.Error)
}

func TestHandler_SwitchUserIssuesSession(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec, env := do(t, h, http.MethodPost, "/api/session/switch", `{"userId":"user-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var s apiservice.Session
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.NotEmpty(t, s.SessionID)
	assert.NotEqual(t, session.DefaultID, s.SessionID)
	assert.Equal(t, s.SessionID, rec.Header().Get(SessionHeader))
	assert.Equal(t, "user-2", s.UserID)

	_, env = do(t, h, http.MethodGet, "/api/users/me", "", SessionHeader, s.SessionID)
	var me apiservice.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "user-2", me.ID)

	_, env = do(t, h, http.MethodGet, "/api/users/me", "")
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, user.DefaultCurrentUserID, me.ID, "default session is untouched")

	rec, _ = do(t, h, http.MethodPost, "/api/session/switch", `{"userId":"user-3"}`, SessionHeader, "tab-a")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(SessionHeader), "existing session id is kept")
}

func TestHandler_ListRequests(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec, env := do(t, h, http.MethodGet, "/api/timeoff?employeeId=user-1&sort=start_date", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var requests []apiservice.TimeOffRequest
	require.NoError(t, json.Unmarshal(env.Data, &requests))
	require.Len(t, requests, 2)
	assert.Equal(t, "request-1", requests[0].ID)
	assert.Equal(t, "request-3", requests[1].ID)

	_, env = do(t, h, http.MethodGet, "/api/timeoff?managerId=user-3&status=approved", "")
	require.NoError(t, json.Unmarshal(env.Data, &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "request-2", requests[0].ID)

	_, env = do(t, h, http.MethodGet, "/api/timeoff?managerId=user-4", "")
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, env = do(t, h, http.MethodGet, "/api/timeoff", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "employeeId or managerId is required", env.Error)

	rec, env = do(t, h, http.MethodGet, "/api/timeoff?employeeId=user-1&managerId=user-3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "employeeId and managerId are mutually exclusive", env.Error)

	rec, _ = do(t, h, http.MethodGet, "/api/timeoff?employeeId=user-1&sort=random", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Board(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec, env := do(t, h, http.MethodGet, "/api/timeoff/board?managerId=user-3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var board apiservice.Board
	require.NoError(t, json.Unmarshal(env.Data, &board))
	assert.Len(t, board.Pending, 1)
	assert.Len(t, board.Approved, 1)
	assert.Len(t, board.Denied, 1)

	rec, _ = do(t, h, http.MethodGet, "/api/timeoff/board", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/timeoff/board?employeeId=user-1&managerId=user-3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "employeeId and managerId are mutually exclusive", env.Error)
}

func TestHandler_CreateAndDecide(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec, env := do(t, h, http.MethodPost, "/api/timeoff",
		`{"employeeId":"user-2","startDate":"2024-07-15","endDate":"2024-07-20","reason":"Annual vacation"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created apiservice.TimeOffRequest
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "user-3", created.ManagerID)
	assert.Equal(t, "Emily Johnson", created.EmployeeName)

	rec, env = do(t, h, http.MethodPatch, "/api/timeoff/"+created.ID, `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var decided apiservice.TimeOffRequest
	require.NoError(t, json.Unmarshal(env.Data, &decided))
	assert.Equal(t, "approved", decided.Status)

	rec, env = do(t, h, http.MethodGet, "/api/timeoff/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &decided))
	assert.Equal(t, "approved", decided.Status)
}

func TestHandler_CreateDefaultsToSessionUser(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	_, _ = do(t, h, http.MethodPost, "/api/session/switch", `{"userId":"user-2"}`, SessionHeader, "tab-a")
	rec, env := do(t, h, http.MethodPost, "/api/timeoff",
		`{"startDate":"2024-09-01","endDate":"2024-09-02","reason":"Moving"}`, SessionHeader, "tab-a")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created apiservice.TimeOffRequest
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "user-2", created.EmployeeID)
}

func TestHandler_CreateValidation(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	cases := []struct {
		name    string
		body    string
		wantErr string
		wantSt  int
	}{
		{
			name:    "blank reason",
			body:    `{"employeeId":"user-1","startDate":"2024-07-15","endDate":"2024-07-20","reason":"   "}`,
			wantErr: "reason is a required field",
			wantSt:  http.StatusBadRequest,
		},
		{
			name:    "missing start date",
			body:    `{"employeeId":"user-1","endDate":"2024-07-20","reason":"x"}`,
			wantErr: "startDate is a required field",
			wantSt:  http.StatusBadRequest,
		},
		{
			name:   "malformed date",
			body:   `{"employeeId":"user-1","startDate":"07/15/2024","endDate":"2024-07-20","reason":"x"}`,
			wantSt: http.StatusBadRequest,
		},
		{
			name:    "unknown field",
			body:    `{"employeeId":"user-1","startDate":"2024-07-15","endDate":"2024-07-20","reason":"x","extra":1}`,
			wantErr: "Invalid request body",
			wantSt:  http.StatusBadRequest,
		},
		{
			name:    "unknown employee",
			body:    `{"employeeId":"user-404","startDate":"2024-07-15","endDate":"2024-07-20","reason":"x"}`,
			wantErr: "Employee not found",
			wantSt:  http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec, env := do(t, h, http.MethodPost, "/api/timeoff", tc.body)
			assert.Equal(t, tc.wantSt, rec.Code)
			assert.Equal(t, tc.wantSt, env.Status)
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, env.Error)
			}
			assert.JSONEq(t, "null", string(orNull(env.Data)))
		})
	}
}

func TestHandler_UpdateStatusValidation(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec, _ := do(t, h, http.MethodPatch, "/api/timeoff/request-1", `{"status":"pending"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := do(t, h, http.MethodPatch, "/api/timeoff/request-404", `{"status":"denied"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Request not found", env.Error)
}

func TestHandler_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	h.Mux.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec, env := do(t, h, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", env.Error)
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
