package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client represents a Supabase client
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        strings.TrimRight(url, "/"),
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Error is returned for any response with a 4xx or 5xx status
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Body)
}

// User represents a Supabase user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the token pair issued by Supabase Auth
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Query executes a PostgREST select on a table.
// Values are passed through verbatim, e.g. {"user_id": "eq.123", "order": "date.desc"}.
func (c *Client) Query(ctx context.Context, table string, query map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, c.restURL(table, query), nil, "")
}

// Insert inserts a record into a Supabase table and returns the stored representation
func (c *Client) Insert(ctx context.Context, table string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, c.restURL(table, nil), payload, "")
}

// DeleteWhere deletes records matching a query
func (c *Client) DeleteWhere(ctx context.Context, table string, query map[string]string) error {
	_, err := c.do(ctx, http.MethodDelete, c.restURL(table, query), nil, "")
	return err
}

// VerifyToken verifies a JWT token with Supabase
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	body, err := c.do(ctx, http.MethodGet, c.URL+"/auth/v1/user", nil, token)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}

// SignInWithPassword exchanges email and password for a session
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, c.URL+"/auth/v1/token?grant_type=password", email, password)
}

// SignUp registers a new auth user and returns its first session
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.authenticate(ctx, c.URL+"/auth/v1/signup", email, password)
}

func (c *Client) authenticate(ctx context.Context, endpoint, email, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, payload, "")
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &session, nil
}

func (c *Client) restURL(table string, query map[string]string) string {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	if len(query) == 0 {
		return endpoint
	}

	q := url.Values{}
	for key, value := range query {
		q.Set(key, value)
	}
	return endpoint + "?" + q.Encode()
}

// do sends a request authorized with the user token when given, otherwise the service key
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, userToken string) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)

	if userToken != "" {
		req.Header.Set("Authorization", "Bearer "+userToken)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
