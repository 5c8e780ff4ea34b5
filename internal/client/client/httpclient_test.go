package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wallmagic/internal/common"
)

/*************
 * helpers
 *************/

type capturedRequest struct {
	method string
	path   string
	header http.Header
	body   map[string]any
}

// newCapturingServer records the last request and answers with the given
// status and JSON body.
func newCapturingServer(t *testing.T, status int, responseBody string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.header = r.Header.Clone()
		captured.body = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&captured.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func newClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	c, err := NewWallMagicClientService(baseURL)
	require.NoError(t, err)
	return c
}

const authResultBody = `{
	"message": "registered",
	"user": {"id": 1, "email": "alice@example.com", "username": "alice", "full_name": null, "created_at": "2025-06-01T12:00:00Z"},
	"token": {"access_token": "tok-1", "token_type": "bearer", "expires_in": 1800}
}`

/*************
 * Register
 *************/

func TestRegister_SendsPayloadAndStoresToken(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusCreated, authResultBody)
	c := newClient(t, srv.URL)

	res, err := c.Register(context.Background(), "alice@example.com", "alice", []byte("password123"), "Alice Anderson")
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, captured.method)
	require.Equal(t, "/api/v1/register", captured.path)
	require.Equal(t, "application/json", captured.header.Get("Content-Type"))
	require.Equal(t, "alice@example.com", captured.body["email"])
	require.Equal(t, "alice", captured.body["username"])
	require.Equal(t, "password123", captured.body["password"])
	require.Equal(t, "Alice Anderson", captured.body["full_name"])

	require.Equal(t, "registered", res.Message)
	require.Equal(t, "tok-1", c.accessToken)
}

func TestRegister_OmitsEmptyFullName(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusCreated, authResultBody)
	c := newClient(t, srv.URL)

	_, err := c.Register(context.Background(), "alice@example.com", "alice", []byte("password123"), "")
	require.NoError(t, err)

	_, present := captured.body["full_name"]
	require.False(t, present, "empty full_name must be omitted from the payload")
}

func TestRegister_ConflictSurfacesDetail(t *testing.T) {
	srv, _ := newCapturingServer(t, http.StatusConflict, `{"detail": "Email already registered"}`)
	c := newClient(t, srv.URL)

	_, err := c.Register(context.Background(), "alice@example.com", "alice", []byte("password123"), "")
	require.Error(t, err)
	require.ErrorContains(t, err, "Email already registered")
	require.NotErrorIs(t, err, ErrUnauthorized)
	require.NotErrorIs(t, err, ErrUnavailable)
}

/*************
 * Login
 *************/

func TestLogin_StoresToken(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusOK, authResultBody)
	c := newClient(t, srv.URL)

	res, err := c.Login(context.Background(), "alice@example.com", []byte("password123"))
	require.NoError(t, err)

	require.Equal(t, "/api/v1/login", captured.path)
	require.Equal(t, "alice@example.com", captured.body["email"])
	require.Equal(t, "password123", captured.body["password"])
	require.Equal(t, "tok-1", c.accessToken)
	require.Equal(t, "alice", res.User.Username)
}

func TestLogin_UnauthorizedMapsSentinel(t *testing.T) {
	srv, _ := newCapturingServer(t, http.StatusUnauthorized, `{"detail": "Invalid email or password"}`)
	c := newClient(t, srv.URL)

	_, err := c.Login(context.Background(), "alice@example.com", []byte("wrong"))
	require.ErrorIs(t, err, ErrUnauthorized)
	require.ErrorContains(t, err, "Invalid email or password")
	require.Empty(t, c.accessToken)
}

func TestLogout_DropsToken(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusUnauthorized, `{"detail": "Not authenticated"}`)
	c := newClient(t, srv.URL)
	c.accessToken = "tok-9"

	c.Logout()
	require.Empty(t, c.accessToken)

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, captured.header.Get(common.AuthorizationHeaderName))
}

/*************
 * Me
 *************/

func TestMe_SendsBearerToken(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusOK,
		`{"id": 1, "email": "alice@example.com", "username": "alice", "full_name": null, "created_at": "2025-06-01T12:00:00Z"}`)
	c := newClient(t, srv.URL)
	c.accessToken = "tok-9"

	view, err := c.Me(context.Background())
	require.NoError(t, err)

	require.Equal(t, "/api/v1/me", captured.path)
	require.Equal(t, common.BearerSchemePrefix+"tok-9", captured.header.Get(common.AuthorizationHeaderName))
	require.Equal(t, "alice", view.Username)
}

func TestMe_NoTokenNoHeader(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusUnauthorized, `{"detail": "Not authenticated"}`)
	c := newClient(t, srv.URL)

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, captured.header.Get(common.AuthorizationHeaderName))
}

/*************
 * Health
 *************/

func TestHealth_OK(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusOK,
		`{"status": "healthy", "app_name": "WallMagic", "version": "1.0.0", "timestamp": "2025-06-01T12:00:00Z"}`)
	c := newClient(t, srv.URL)

	st, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/health", captured.path)
	require.Equal(t, "healthy", st.Status)
}

func TestHealth_DegradedReturnsUnavailable(t *testing.T) {
	srv, _ := newCapturingServer(t, http.StatusOK,
		`{"status": "starting", "app_name": "WallMagic", "version": "1.0.0", "timestamp": "2025-06-01T12:00:00Z"}`)
	c := newClient(t, srv.URL)

	_, err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHealth_ServerDownReturnsUnavailable(t *testing.T) {
	srv, _ := newCapturingServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	c := newClient(t, url)
	_, err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

/*************
 * error mapping details
 *************/

func TestMapError_FallsBackToHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)

	c := newClient(t, srv.URL)
	_, err := c.Health(context.Background())
	require.Error(t, err)
	require.ErrorContains(t, err, "418")
}

func TestBaseURL_TrailingSlashTrimmed(t *testing.T) {
	srv, captured := newCapturingServer(t, http.StatusOK,
		`{"status": "healthy", "app_name": "WallMagic", "version": "1.0.0", "timestamp": "t"}`)
	c := newClient(t, srv.URL+"/")

	_, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/health", captured.path)
}
