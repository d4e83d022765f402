//go:build unit

package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricing-admin-api/client"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiJ9.payload.signature"

// recordingServer captures each request so tests can assert on headers,
// paths and bodies after the call.
type recordingServer struct {
	*httptest.Server
	requests []*http.Request
	bodies   [][]byte
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) *recordingServer {
	t.Helper()

	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		rs.requests = append(rs.requests, r.Clone(r.Context()))
		rs.bodies = append(rs.bodies, body)
		handler(w, r)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	require.NotEmpty(t, rs.requests)
	return rs.requests[len(rs.requests)-1]
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the bare token from a plain-text body", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(testToken))
		})
		store := client.NewMemoryTokenStore()
		c := client.New(srv.URL, client.WithTokenStore(store))

		require.NoError(t, c.Login(ctx, "operator", "password123"))

		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, testToken, token)

		req := srv.lastRequest(t)
		assert.Equal(t, "/api/auth/login", req.URL.Path)
		assert.Empty(t, req.Header.Get("Authorization"), "login must not carry a Bearer header")
	})

	t.Run("a held token never rides on the login request", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(testToken))
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save("eyJhbGciOiJIUzI1NiJ9.stale.signature"))
		c := client.New(srv.URL, client.WithTokenStore(store))

		require.NoError(t, c.Login(ctx, "operator", "password123"))

		assert.Empty(t, srv.lastRequest(t).Header.Get("Authorization"),
			"login must not replay a stored token")

		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, testToken, token, "the fresh token replaces the stale one")
	})

	t.Run("accepts a wrapped token envelope", func(t *testing.T) {
		for _, field := range []string{"token", "access_token"} {
			t.Run(field, func(t *testing.T) {
				srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					_ = json.NewEncoder(w).Encode(map[string]string{field: testToken})
				})
				store := client.NewMemoryTokenStore()
				c := client.New(srv.URL, client.WithTokenStore(store))

				require.NoError(t, c.Login(ctx, "operator", "password123"))

				token, err := store.Token()
				require.NoError(t, err)
				assert.Equal(t, testToken, token)
			})
		}
	})

	t.Run("rejects a body that is not a token", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		c := client.New(srv.URL)

		err := c.Login(ctx, "operator", "password123")
		assert.ErrorIs(t, err, client.ErrMalformedToken)
	})

	t.Run("401 maps to ErrInvalidLogin", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		c := client.New(srv.URL)

		err := c.Login(ctx, "operator", "wrong-password")
		assert.ErrorIs(t, err, client.ErrInvalidLogin)
	})
}

func TestClient_BearerHeader(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated calls replay the stored token", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save(testToken))
		c := client.New(srv.URL, client.WithTokenStore(store))

		_, err := c.FindBySKU(ctx, "SKU-1001", nil)
		require.NoError(t, err)

		req := srv.lastRequest(t)
		assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
	})

	t.Run("calls go out without a header when nothing is stored", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		c := client.New(srv.URL)

		_, err := c.FindBySKU(ctx, "SKU-1001", nil)
		assert.ErrorIs(t, err, client.ErrUnauthorized)
		assert.Empty(t, srv.lastRequest(t).Header.Get("Authorization"))
	})

	t.Run("a 401 drops the stored token", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save(testToken))
		c := client.New(srv.URL, client.WithTokenStore(store))

		_, err := c.Me(ctx)
		assert.ErrorIs(t, err, client.ErrUnauthorized)

		_, err = store.Token()
		assert.ErrorIs(t, err, client.ErrNoToken)
	})
}

func TestClient_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the token even on server error", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save(testToken))
		c := client.New(srv.URL, client.WithTokenStore(store))

		err := c.Logout(ctx)
		assert.Error(t, err)

		_, err = store.Token()
		assert.ErrorIs(t, err, client.ErrNoToken)
	})

	t.Run("204 succeeds", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		c := client.New(srv.URL)

		assert.NoError(t, c.Logout(ctx))
	})
}

func TestClient_Me(t *testing.T) {
	ctx := context.Background()

	srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":       uuid.New().String(),
			"username": "test.operator",
			"role":     "operator",
			"tenantId": "tenant-1",
			"storeId":  "store-1",
			"isActive": true,
		})
	})
	store := client.NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	c := client.New(srv.URL, client.WithTokenStore(store))

	user, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test.operator", user.Username)
	assert.Equal(t, "operator", user.Role)
	require.NotNil(t, user.TenantID)
	assert.Equal(t, "tenant-1", *user.TenantID)
	assert.Equal(t, "/api/auth/me", srv.lastRequest(t).URL.Path)
}

func draft() client.IntervalDraft {
	return client.IntervalDraft{
		IntervalID: uuid.New(),
		Key: client.IntervalKey{
			TenantID: "tenant-1",
			StoreID:  "store-1",
			SKUID:    "SKU-1001",
		},
		EffectivePriceCent: 1999,
		Currency:           "USD",
		StartAtUTC:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestClient_FindBySKU(t *testing.T) {
	ctx := context.Background()

	srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	store := client.NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	c := client.New(srv.URL, client.WithTokenStore(store))

	at := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	intervals, err := c.FindBySKU(ctx, "SKU-1001", &at)
	require.NoError(t, err)
	assert.Empty(t, intervals)

	req := srv.lastRequest(t)
	assert.Equal(t, "/api/prices/lookup", req.URL.Path)
	assert.Equal(t, "SKU-1001", req.URL.Query().Get("skuId"))
	assert.Equal(t, "2026-03-15T12:00:00Z", req.URL.Query().Get("at"))
}

func TestClient_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns missing ids and submits the batch", func(t *testing.T) {
		var received []client.IntervalDraft
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			ids := make([]string, len(received))
			for i, d := range received {
				ids[i] = d.IntervalID.String()
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"intervalIds": ids})
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save(testToken))
		c := client.New(srv.URL, client.WithTokenStore(store))

		withID := draft()
		withoutID := draft()
		withoutID.IntervalID = uuid.Nil

		ids, err := c.Create(ctx, []client.IntervalDraft{withID, withoutID})
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.Equal(t, withID.IntervalID, ids[0])
		assert.NotEqual(t, uuid.Nil, ids[1], "missing id should be assigned client-side")
		require.Len(t, received, 2)
		assert.NotEqual(t, uuid.Nil, received[1].IntervalID)
	})

	t.Run("a bad draft fails before anything goes on the wire", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should be sent")
		})
		c := client.New(srv.URL)

		testCases := []struct {
			name   string
			mutate func(d *client.IntervalDraft)
			errIs  error
		}{
			{name: "missing tenant", mutate: func(d *client.IntervalDraft) { d.Key.TenantID = "" }, errIs: client.ErrMissingTenantID},
			{name: "missing store", mutate: func(d *client.IntervalDraft) { d.Key.StoreID = " " }, errIs: client.ErrMissingStoreID},
			{name: "missing sku", mutate: func(d *client.IntervalDraft) { d.Key.SKUID = "" }, errIs: client.ErrMissingSKUID},
			{name: "bad currency", mutate: func(d *client.IntervalDraft) { d.Currency = "DOLLARS" }, errIs: client.ErrInvalidCurrency},
			{name: "negative price", mutate: func(d *client.IntervalDraft) { d.EffectivePriceCent = -1 }, errIs: client.ErrNegativePrice},
			{name: "end before start", mutate: func(d *client.IntervalDraft) {
				end := d.StartAtUTC.Add(-time.Hour)
				d.EndAtUTC = &end
			}, errIs: client.ErrInvalidValidity},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				bad := draft()
				tc.mutate(&bad)

				_, err := c.Create(ctx, []client.IntervalDraft{draft(), bad})
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("empty batch is rejected locally", func(t *testing.T) {
		c := client.New("http://unused.invalid")

		_, err := c.Create(ctx, nil)
		assert.ErrorIs(t, err, client.ErrEmptyBatch)
	})

	t.Run("409 maps to ErrConflict", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save(testToken))
		c := client.New(srv.URL, client.WithTokenStore(store))

		_, err := c.Create(ctx, []client.IntervalDraft{draft()})
		assert.ErrorIs(t, err, client.ErrConflict)
	})
}

func TestClient_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("puts to the interval path and decodes the echo", func(t *testing.T) {
		d := draft()
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"intervalId": d.IntervalID.String(),
				"key":        d.Key,
				"currency":   d.Currency,
			})
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save(testToken))
		c := client.New(srv.URL, client.WithTokenStore(store))

		updated, err := c.Update(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, d.IntervalID, updated.IntervalID)
		assert.Equal(t, "/api/prices/"+d.IntervalID.String(), srv.lastRequest(t).URL.Path)
	})

	t.Run("zero id is rejected locally", func(t *testing.T) {
		c := client.New("http://unused.invalid")

		d := draft()
		d.IntervalID = uuid.Nil
		_, err := c.Update(ctx, d)
		assert.Error(t, err)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		store := client.NewMemoryTokenStore()
		require.NoError(t, store.Save(testToken))
		c := client.New(srv.URL, client.WithTokenStore(store))

		_, err := c.Update(ctx, draft())
		assert.ErrorIs(t, err, client.ErrNotFound)
	})
}

func TestClient_DeleteBySKU(t *testing.T) {
	ctx := context.Background()

	srv := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"deleted":3}`))
	})
	store := client.NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	c := client.New(srv.URL, client.WithTokenStore(store))

	deleted, err := c.DeleteBySKU(ctx, "SKU-1001")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	req := srv.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/prices/delete", req.URL.Path)
	assert.Equal(t, "SKU-1001", req.URL.Query().Get("skuId"))
}
