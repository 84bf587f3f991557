package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodstream/bloodstream-go/internal/models"
	"github.com/bloodstream/bloodstream-go/internal/notify"
	"github.com/bloodstream/bloodstream-go/internal/session"
)

func authedStore(t *testing.T, access, refresh string) *session.Store {
	t.Helper()
	store := session.NewStore(nil, nil)
	err := store.SetAuth(context.Background(), models.AuthResponse{
		User:         models.User{ID: "u1", Role: models.RoleDonor},
		Token:        access,
		RefreshToken: refresh,
	})
	require.NoError(t, err)
	return store
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		writeJSON(t, w, http.StatusOK, map[string]bool{"ok": true})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: authedStore(t, "T1", "R1")})
	require.NoError(t, c.Get(context.Background(), "/ping", nil))

	assert.Equal(t, "Bearer T1", gotAuth)
	_, err := uuid.Parse(gotRequestID)
	assert.NoError(t, err, "X-Request-ID should be a uuid")
}

func TestNoBearerWithoutSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, map[string]bool{"ok": true})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: session.NewStore(nil, nil)})
	require.NoError(t, c.Get(context.Background(), "/ping", nil))
	assert.Empty(t, gotAuth)
}

func TestDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body models.LoginCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body.Email)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "T1"})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: session.NewStore(nil, nil)})
	var out models.AuthResponse
	err := c.Post(context.Background(), "/auth/login", models.LoginCredentials{Email: "a@b.c", Password: "x"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "T1", out.Token)
}

func TestErrorDecodesMessageAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.MessageResponse{Message: "request already matched"})
	}))
	defer srv.Close()

	rec := notify.NewRecordingNotifier()
	c := New(Options{BaseURL: srv.URL, Session: session.NewStore(nil, nil), Notifier: rec})

	err := c.Get(context.Background(), "/requests/1", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "request already matched", apiErr.Message)
	assert.Equal(t, http.StatusConflict, StatusOf(err))

	notices := rec.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.SeverityError, notices[0].Severity)
	assert.Equal(t, "request already matched", notices[0].Message)
}

func TestErrorWithoutMessageFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: session.NewStore(nil, nil), Notifier: notify.NewRecordingNotifier()})
	err := c.Get(context.Background(), "/requests", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestRefreshAndRetryUsesNewToken(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer T2":
			writeJSON(t, w, http.StatusOK, map[string]string{"id": "42"})
		default:
			writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "token expired"})
		}
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "R1", body["refreshToken"])
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "T2", RefreshToken: "R2"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := authedStore(t, "T1", "R1")
	rec := notify.NewRecordingNotifier()
	c := New(Options{BaseURL: srv.URL, Session: store, Notifier: rec})

	var out map[string]string
	require.NoError(t, c.Get(context.Background(), "/things", &out))
	assert.Equal(t, "42", out["id"])

	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, "T2", store.AccessToken())
	assert.Equal(t, "R2", store.RefreshToken())
	assert.Empty(t, rec.Notices(), "a successful refresh must be invisible to the user")
}

func TestConcurrentRequestsShareOneRefresh(t *testing.T) {
	var (
		refreshCalls int32
		unauthorized int32
	)
	bothRejected := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer T2" {
			writeJSON(t, w, http.StatusOK, map[string]bool{"ok": true})
			return
		}
		if atomic.AddInt32(&unauthorized, 1) == 2 {
			close(bothRejected)
		}
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "token expired"})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		// hold the exchange until both callers have seen their 401, so both
		// are waiting on the same in-flight refresh
		<-bothRejected
		time.Sleep(50 * time.Millisecond)
		atomic.AddInt32(&refreshCalls, 1)
		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "T2", RefreshToken: "R2"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: authedStore(t, "T1", "R1")})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.Get(context.Background(), "/things", nil)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
}

func TestRefreshFailureExpiresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "token expired"})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "refresh token expired"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := authedStore(t, "T1", "R1")
	rec := notify.NewRecordingNotifier()
	redirected := false
	c := New(Options{
		BaseURL:       srv.URL,
		Session:       store,
		Notifier:      rec,
		LoginRedirect: func() { redirected = true },
	})

	err := c.Get(context.Background(), "/things", nil)
	require.ErrorIs(t, err, ErrSessionExpired)

	assert.False(t, store.Authenticated())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.True(t, redirected)

	notices := rec.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.SeverityError, notices[0].Severity)
	assert.Equal(t, "Session expired. Please login again.", notices[0].Message)
}

func TestSecondUnauthorizedExpiresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/things", func(w http.ResponseWriter, r *http.Request) {
		// keeps rejecting even the refreshed token
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "nope"})
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "T2", RefreshToken: "R2"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := authedStore(t, "T1", "R1")
	c := New(Options{BaseURL: srv.URL, Session: store, Notifier: notify.NewRecordingNotifier()})

	err := c.Get(context.Background(), "/things", nil)
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, store.Authenticated())
}

func TestUnauthorizedWithoutRefreshTokenIsPlainError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEqual(t, "/auth/refresh", r.URL.Path, "no refresh should be attempted")
		writeJSON(t, w, http.StatusUnauthorized, models.MessageResponse{Message: "invalid credentials"})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: session.NewStore(nil, nil), Notifier: notify.NewRecordingNotifier()})
	err := c.Post(context.Background(), "/auth/login", models.LoginCredentials{Email: "a@b.c", Password: "bad"}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

func TestTransportErrorNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	rec := notify.NewRecordingNotifier()
	c := New(Options{BaseURL: srv.URL, Session: session.NewStore(nil, nil), Notifier: rec})

	err := c.Get(context.Background(), "/things", nil)
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	require.Len(t, rec.Notices(), 1)
	assert.Equal(t, notify.SeverityError, rec.Notices()[0].Severity)
}

func TestNoContentResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Session: authedStore(t, "T1", "R1")})
	var out models.MessageResponse
	require.NoError(t, c.Delete(context.Background(), "/notifications/1", &out))
	assert.Empty(t, out.Message)
}
