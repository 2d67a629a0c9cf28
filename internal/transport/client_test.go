package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarly/bazarly-go/internal/config"
	"github.com/bazarly/bazarly-go/internal/logger"
	"github.com/bazarly/bazarly-go/internal/store"
)

// fakeCreds is an in-memory credential store for transport tests. It counts
// Delete calls so erasure idempotence can be asserted.
type fakeCreds struct {
	mu      sync.Mutex
	values  map[string]string
	getErr  error
	deletes int
}

func newFakeCreds() *fakeCreds {
	return &fakeCreds{values: make(map[string]string)}
}

func (f *fakeCreds) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", store.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeCreds) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeCreds) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	delete(f.values, key)
	return nil
}

func (f *fakeCreds) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}

func newTestClient(t *testing.T, baseURL string, creds store.CredentialStore) *Client {
	t.Helper()

	c, err := New(config.ClientAPI{BaseURL: baseURL, RequestTimeout: 5 * time.Second}, creds, logger.Nop())
	require.NoError(t, err)
	return c
}

func Test_normalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("https://api.example.test/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", got)

	got, err = normalizeBaseURL("api.example.test")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", got)

	_, err = normalizeBaseURL("")
	require.Error(t, err)

	_, err = normalizeBaseURL("   ")
	require.Error(t, err)
}

func TestClient_Get_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	creds := newFakeCreds()
	require.NoError(t, creds.Set(context.Background(), store.KeyAuthToken, "tok-1"))

	c := newTestClient(t, srv.URL, creds)
	_, err := c.Get(context.Background(), "/items", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestClient_AuthEndpoint_NeverCarriesToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	creds := newFakeCreds()
	require.NoError(t, creds.Set(context.Background(), store.KeyAuthToken, "stale-token"))

	c := newTestClient(t, srv.URL, creds)
	_, err := c.Post(context.Background(), "/auth/login", map[string]string{"emailOrPhone": "u@test.com"})
	require.NoError(t, err)

	assert.Empty(t, gotAuth, "auth endpoints must never receive the stored token")
}

func TestClient_NoTokenStored_NoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newFakeCreds())
	_, err := c.Get(context.Background(), "/items", nil)
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
}

func TestClient_StoreReadFailure_TreatedAsAbsent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	creds := newFakeCreds()
	creds.getErr = io.ErrUnexpectedEOF

	c := newTestClient(t, srv.URL, creds)
	_, err := c.Get(context.Background(), "/items", nil)
	require.NoError(t, err, "a broken credential store must not fail the request")

	assert.Empty(t, gotAuth)
}

// A non-auth GET returns 401 while a valid token is stored: the token is
// erased, the hook fires, and the call rejects with SessionExpired.
func TestClient_SessionExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ctx := context.Background()
	creds := newFakeCreds()
	require.NoError(t, creds.Set(ctx, store.KeyAuthToken, "valid-token"))

	hookFired := false
	c := newTestClient(t, srv.URL, creds)
	c.SetSessionExpiredHook(func() { hookFired = true })

	_, err := c.Get(ctx, "/items", nil)
	require.Error(t, err)

	assert.True(t, IsKind(err, KindSessionExpired))
	assert.True(t, hookFired)

	_, err = creds.Get(ctx, store.KeyAuthToken)
	assert.ErrorIs(t, err, store.ErrKeyNotFound, "token must be erased")
}

// Invoking the inbound stage twice for the same failed request must erase the
// token only once.
func TestClient_Inbound_ErasureIsIdempotent(t *testing.T) {
	ctx := context.Background()
	creds := newFakeCreds()
	require.NoError(t, creds.Set(ctx, store.KeyAuthToken, "tok"))

	c := newTestClient(t, "https://api.example.test", creds)

	d := NewDescriptor(http.MethodGet, "/items")
	err := c.inbound(ctx, d, http.StatusUnauthorized, nil)
	assert.True(t, IsKind(err, KindSessionExpired))

	err = c.inbound(ctx, d, http.StatusUnauthorized, nil)
	assert.True(t, IsKind(err, KindSessionExpired), "second pass still reports expiry")

	assert.Equal(t, 1, creds.deleteCount(), "store must be mutated exactly once")
}

// Invalid login credentials are a client error, not session expiry: the 401
// goes through the classifier and the store stays untouched.
func TestClient_AuthEndpoint401_IsNotSessionExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	creds := newFakeCreds()
	hookFired := false

	c := newTestClient(t, srv.URL, creds)
	c.SetSessionExpiredHook(func() { hookFired = true })

	_, err := c.Post(context.Background(), "/auth/login", map[string]string{"password": "wrong"})
	require.Error(t, err)

	classified, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, classified.Kind)
	assert.Equal(t, "Invalid credentials", classified.Message)
	assert.False(t, hookFired)
	assert.Zero(t, creds.deleteCount())
}

func TestClient_ConnectionFailure_ClassifiedNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := newTestClient(t, srv.URL, newFakeCreds())
	_, err := c.Get(context.Background(), "/items", nil)
	require.Error(t, err)

	classified, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, classified.Kind)
	assert.True(t, classified.Retryable)
}

func TestClient_Timeout_ClassifiedNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := New(config.ClientAPI{BaseURL: srv.URL, RequestTimeout: 50 * time.Millisecond}, newFakeCreds(), logger.Nop())
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/slow", nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
}

func TestClient_Post_SendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"42"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newFakeCreds())
	body, err := c.Post(context.Background(), "/items", map[string]string{"title": "bike"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "bike", gotBody["title"])
	assert.JSONEq(t, `{"id":"42"}`, string(body))
}

func TestClient_QueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newFakeCreds())

	_, err := c.Get(context.Background(), "/items", url.Values{"page": {"2"}})
	require.NoError(t, err)

	assert.Equal(t, "page=2", gotQuery)
}

func TestClient_FailureStatus_Classified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"title is required"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newFakeCreds())
	_, err := c.Post(context.Background(), "/items", map[string]string{})
	require.Error(t, err)

	classified, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, classified.Kind)
	assert.Equal(t, "title is required", classified.Message)
}

func TestClient_Do_ExposesHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "abc123")
		w.Write([]byte(`{"message":"User logged in"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newFakeCreds())
	resp, err := c.Do(context.Background(), NewDescriptor(http.MethodPost, "/auth/login"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc123", resp.Header.Get("Authorization"))
}

func TestClient_Verbs(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, newFakeCreds())
	ctx := context.Background()

	_, err := c.Put(ctx, "/items/1", map[string]string{"title": "new"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)

	_, err = c.Patch(ctx, "/items/1", map[string]string{"price": "5"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)

	_, err = c.Delete(ctx, "/items/1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}
