package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wallmagic/internal/common"
)

// Token carries the bearer token material issued by the server.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserView is the public account representation returned by the API.
type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult is the response of the register and login endpoints.
type AuthResult struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
	Token   Token    `json:"token"`
}

// HealthStatus is the response of the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type registerRequest struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// HTTPClient talks to the WallMagic HTTP API. It remembers the access token
// from the last successful register or login and sends it on authorized calls.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewWallMagicClientService(baseURL string) (*HTTPClient, error) {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 12 * time.Second},
	}, nil
}

func (s *HTTPClient) Register(ctx context.Context, email string, username string, password []byte, fullName string) (*AuthResult, error) {

	req := registerRequest{Email: email, Username: username, Password: string(password)}
	if fullName != "" {
		req.FullName = &fullName
	}

	var res AuthResult
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/register", req, &res, false); err != nil {
		return nil, err
	}

	s.accessToken = res.Token.AccessToken

	return &res, nil
}

func (s *HTTPClient) Login(ctx context.Context, email string, password []byte) (*AuthResult, error) {

	req := loginRequest{Email: email, Password: string(password)}

	var res AuthResult
	if err := s.doJSON(ctx, http.MethodPost, "/api/v1/login", req, &res, false); err != nil {
		return nil, err
	}

	s.accessToken = res.Token.AccessToken

	return &res, nil
}

// Logout discards the stored access token. Tokens are stateless, so there is
// nothing to revoke on the server; authorized calls fail with ErrUnauthorized
// until the next successful login.
func (s *HTTPClient) Logout() {
	s.accessToken = ""
}

func (s *HTTPClient) Me(ctx context.Context) (*UserView, error) {

	var view UserView
	if err := s.doJSON(ctx, http.MethodGet, "/api/v1/me", nil, &view, true); err != nil {
		return nil, err
	}

	return &view, nil
}

func (s *HTTPClient) Health(ctx context.Context) (*HealthStatus, error) {

	var st HealthStatus
	if err := s.doJSON(ctx, http.MethodGet, "/health", nil, &st, false); err != nil {
		return nil, err
	}

	if st.Status != "healthy" {
		return nil, ErrUnavailable
	}

	return &st, nil
}

// doJSON sends one request and decodes the JSON response into out (when out
// is non-nil). Transport failures map to ErrUnavailable, a 401 maps to
// ErrUnauthorized, and other error statuses surface the server's detail text.
func (s *HTTPClient) doJSON(ctx context.Context, method string, path string, body any, out any, authorized bool) error {

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized && s.accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerSchemePrefix+s.accessToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return s.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (s *HTTPClient) mapError(resp *http.Response) error {
	var er errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&er)

	detail := er.Detail
	if detail == "" {
		detail = resp.Status
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	}

	return fmt.Errorf("server error: %s", detail)
}
