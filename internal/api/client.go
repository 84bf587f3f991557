// Package api implements the HTTP client used by every domain service. It
// attaches the session's bearer token to outgoing requests, tags each request
// with an id for server-side correlation, and transparently refreshes an
// expired access token exactly once before resubmitting the original request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/bloodstream/bloodstream-go/internal/logging"
	"github.com/bloodstream/bloodstream-go/internal/models"
	"github.com/bloodstream/bloodstream-go/internal/notify"
	"github.com/bloodstream/bloodstream-go/internal/session"
)

const refreshPath = "/auth/refresh"

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:5000/api".
	BaseURL string

	// Session supplies tokens and receives refreshed credentials. Required.
	Session *session.Store

	// Notifier surfaces request failures to the user. Defaults to a
	// logger-backed notifier.
	Notifier notify.Notifier

	// LoginRedirect runs after the session expired and was cleared, so the
	// host application can send the user back to its login surface.
	LoginRedirect func()

	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client

	Timeout time.Duration
	Logger  logging.Logger
}

// Client is a JSON-over-HTTP client bound to one session store.
// Safe for concurrent use.
type Client struct {
	baseURL       string
	http          *http.Client
	session       *session.Store
	notifier      notify.Notifier
	log           logging.Logger
	loginRedirect func()
	refreshGroup  singleflight.Group
}

func New(opts Options) *Client {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:       strings.TrimSuffix(opts.BaseURL, "/"),
		http:          httpClient,
		session:       opts.Session,
		notifier:      notifier,
		log:           log,
		loginRedirect: opts.LoginRedirect,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do runs one logical request. On 401 it refreshes the session and resubmits
// the identical request once; a second 401, or a failed refresh, expires the
// session.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	status, respBody, err := c.roundTrip(ctx, method, path, payload)
	if err != nil {
		return c.transportFail(ctx, method, path, err)
	}

	if status == http.StatusUnauthorized {
		if c.session.RefreshToken() == "" {
			// never logged in, or already expired; nothing to refresh
			return c.fail(ctx, method, path, status, respBody)
		}
		if err := c.refreshSession(ctx); err != nil {
			return c.expireSession(ctx, err)
		}
		status, respBody, err = c.roundTrip(ctx, method, path, payload)
		if err != nil {
			return c.transportFail(ctx, method, path, err)
		}
		if status == http.StatusUnauthorized {
			return c.expireSession(ctx, errors.New("request unauthorized after token refresh"))
		}
	}

	if status < 200 || status >= 300 {
		return c.fail(ctx, method, path, status, respBody)
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// roundTrip sends one HTTP request and reads the full response. The bearer
// token is read at send time so a resubmitted request picks up the token the
// refresh committed to the session store.
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, b, nil
}

// refreshSession exchanges the stored refresh token for fresh credentials.
// Concurrent requests that hit 401 together share a single in-flight
// exchange; they all observe the same outcome.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return nil, c.exchangeRefreshToken(ctx)
	})
	return err
}

func (c *Client) exchangeRefreshToken(ctx context.Context) error {
	refresh := c.session.RefreshToken()
	if refresh == "" {
		return errors.New("no refresh token")
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refresh})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("refreshing token: %s (status %d)", messageFrom(b), resp.StatusCode)
	}

	var auth models.AuthResponse
	if err := json.Unmarshal(b, &auth); err != nil {
		return fmt.Errorf("decoding refresh response: %w", err)
	}
	// commit before the caller resubmits anything
	if err := c.session.SetAuth(ctx, auth); err != nil {
		return fmt.Errorf("storing refreshed credentials: %w", err)
	}
	c.log.Debug(ctx, "access token refreshed")
	return nil
}

func (c *Client) expireSession(ctx context.Context, cause error) error {
	if err := c.session.Logout(ctx); err != nil {
		c.log.Error(ctx, "clearing expired session", "error", err)
	}
	c.log.Warn(ctx, "session expired", "error", cause)
	c.notifier.Notify(notify.Notice{
		Severity: notify.SeverityError,
		Message:  "Session expired. Please login again.",
		Duration: notify.DefaultNoticeDuration,
	})
	if c.loginRedirect != nil {
		c.loginRedirect()
	}
	return fmt.Errorf("%w: %v", ErrSessionExpired, cause)
}

func (c *Client) fail(ctx context.Context, method, path string, status int, body []byte) error {
	msg := messageFrom(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	c.log.Warn(ctx, "request failed", "method", method, "path", path, "status", status, "message", msg)
	c.notifier.Notify(notify.Notice{
		Severity: notify.SeverityError,
		Message:  msg,
		Duration: notify.DefaultNoticeDuration,
	})
	return &APIError{Status: status, Message: msg}
}

func (c *Client) transportFail(ctx context.Context, method, path string, err error) error {
	c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
	c.notifier.Notify(notify.Notice{
		Severity: notify.SeverityError,
		Message:  "Could not reach the server. Please try again.",
		Duration: notify.DefaultNoticeDuration,
	})
	return fmt.Errorf("%s %s: %w", method, path, err)
}

// messageFrom pulls the backend's human-readable error out of a response
// body shaped like {"message": "..."}.
func messageFrom(body []byte) string {
	var m models.MessageResponse
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	return m.Message
}
