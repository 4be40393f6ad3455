package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egiraffe/egiraffe-cli/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, discardLogger())
	require.NoError(t, err)
	return c
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestHTTPClient_UsesPUTAndJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		writeJSON(t, w, map[string]any{"success": true, "uploads": []any{}})
	}))

	_, err := c.GetUploads(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]string{"course_id": "c1"}, gotBody)
}

func TestHTTPClient_DomainError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": false, "message": "wrong email or password"})
	}))

	err := c.Login(context.Background(), LoginRequest{Email: "a@b.at", Password: "hunter22"})
	require.Error(t, err)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "wrong email or password", domainErr.Message)
}

func TestHTTPClient_DomainErrorKeepsServerMessageOnErrorStatus(t *testing.T) {
	// A failure envelope must win over the HTTP status so the
	// server-supplied message reaches the user.
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		writeJSON(t, w, map[string]any{"success": false, "message": "insufficient permissions"})
	}))

	_, err := c.GetAllUsers(context.Background())

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "insufficient permissions", domainErr.Message)
}

func TestHTTPClient_TransportError_NonJSONBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>nginx</html>"))
	}))

	_, err := c.GetMe(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusBadGateway, transportErr.Status)
}

func TestHTTPClient_TransportError_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, discardLogger())
	require.NoError(t, err)

	pingErr := c.Ping(context.Background())
	require.Error(t, pingErr)

	var transportErr *TransportError
	require.ErrorAs(t, pingErr, &transportErr)
	assert.ErrorIs(t, pingErr, ErrUnavailable)
}

func TestHTTPClient_SessionCookiePersistsAcrossCalls(t *testing.T) {
	var sawCookie bool
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cr3t", Path: "/"})
			writeJSON(t, w, map[string]any{"success": true, "email": "a@b.at"})
		case "/api/v1/get/me":
			cookie, err := r.Cookie("session")
			sawCookie = err == nil && cookie.Value == "s3cr3t"
			writeJSON(t, w, map[string]any{"success": true, "user": map[string]any{
				"id": "u1", "first_names": "Eva", "last_name": "Muster", "totp_enabled": false, "user_role": 1,
			}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	ctx := context.Background()
	require.NoError(t, c.Login(ctx, LoginRequest{Email: "a@b.at", Password: "hunter22"}))

	user, err := c.GetMe(ctx)
	require.NoError(t, err)
	assert.True(t, sawCookie, "session cookie from login must accompany later calls")
	assert.Equal(t, "u1", user.ID)
}

func TestHTTPClient_ValidationRunsBeforeNetwork(t *testing.T) {
	requests := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		writeJSON(t, w, map[string]any{"success": true})
	}))

	err := c.Login(context.Background(), LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Zero(t, requests, "invalid payloads must not be sent")
}

func TestHTTPClient_RegisterValidation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": true})
	}))

	err := c.Register(context.Background(), RegisterRequest{
		FirstNames: "Eva", LastName: "Muster", Email: "eva@student.tugraz.at", Password: "short",
	})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "password", validationErrs[0].Field())
}
